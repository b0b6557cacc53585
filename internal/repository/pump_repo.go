package repository

import (
	"context"

	"go-fuelstation/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PumpRepository interface {
	FindAll(ctx context.Context) ([]model.Pump, error)
	FindByID(ctx context.Context, id uint) (*model.Pump, error)
	Save(ctx context.Context, pump *model.Pump) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type pumpRepo struct {
	db *gorm.DB
}

func NewPumpRepo(db *gorm.DB) PumpRepository {
	return &pumpRepo{db}
}

// The fuel type is never preloaded: Pump.AfterFind fills it from the
// snapshot columns.

func (r *pumpRepo) FindAll(ctx context.Context) ([]model.Pump, error) {
	var pumps []model.Pump
	err := r.db.WithContext(ctx).Order("id ASC").Find(&pumps).Error
	return pumps, translate(err)
}

func (r *pumpRepo) FindByID(ctx context.Context, id uint) (*model.Pump, error) {
	var pump model.Pump
	if err := r.db.WithContext(ctx).First(&pump, id).Error; err != nil {
		return nil, translate(err)
	}
	return &pump, nil
}

// Save never writes through to the fuel catalog.
func (r *pumpRepo) Save(ctx context.Context, pump *model.Pump) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(pump).Error)
}

func (r *pumpRepo) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Delete(&model.Pump{}, id).Error)
}

func (r *pumpRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Pump{}).Count(&n).Error
	return n, translate(err)
}
