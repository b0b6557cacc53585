package repository

import (
	"context"

	"go-fuelstation/internal/model"

	"gorm.io/gorm"
)

type FuelTypeRepository interface {
	FindAll(ctx context.Context) ([]model.FuelType, error)
	FindByID(ctx context.Context, id uint) (*model.FuelType, error)
	Save(ctx context.Context, fuelType *model.FuelType) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type fuelTypeRepo struct {
	db *gorm.DB
}

func NewFuelTypeRepo(db *gorm.DB) FuelTypeRepository {
	return &fuelTypeRepo{db}
}

func (r *fuelTypeRepo) FindAll(ctx context.Context) ([]model.FuelType, error) {
	var fuelTypes []model.FuelType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&fuelTypes).Error
	return fuelTypes, translate(err)
}

func (r *fuelTypeRepo) FindByID(ctx context.Context, id uint) (*model.FuelType, error) {
	var fuelType model.FuelType
	if err := r.db.WithContext(ctx).First(&fuelType, id).Error; err != nil {
		return nil, translate(err)
	}
	return &fuelType, nil
}

// Save inserts when the id is zero and replaces every column otherwise.
func (r *fuelTypeRepo) Save(ctx context.Context, fuelType *model.FuelType) error {
	return translate(r.db.WithContext(ctx).Save(fuelType).Error)
}

func (r *fuelTypeRepo) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Delete(&model.FuelType{}, id).Error)
}

func (r *fuelTypeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.FuelType{}).Count(&n).Error
	return n, translate(err)
}
