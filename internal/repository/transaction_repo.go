package repository

import (
	"context"

	"go-fuelstation/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	FindAll(ctx context.Context) ([]model.Transaction, error)
	FindByID(ctx context.Context, id uint) (*model.Transaction, error)
	Delete(ctx context.Context, id uint) error
	GetTotals(ctx context.Context) (*TransactionTotals, error)
}

// TransactionTotals aggregates every recorded transaction
type TransactionTotals struct {
	Count      int64           `json:"count"`
	Litres     decimal.Decimal `json:"litres"`
	TotalValue decimal.Decimal `json:"total_value"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(ctx context.Context, tx *model.Transaction) error {
	tx.PumpID = tx.Pump.ID
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(tx).Error)
}

// FindAll returns the history most recent first.
func (r *transactionRepo) FindAll(ctx context.Context) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.WithContext(ctx).Preload("Pump").Order("id DESC").Find(&transactions).Error
	return transactions, translate(err)
}

func (r *transactionRepo) FindByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.db.WithContext(ctx).Preload("Pump").First(&transaction, id).Error; err != nil {
		return nil, translate(err)
	}
	return &transaction, nil
}

// Delete of an unknown id affects no rows and is not an error.
func (r *transactionRepo) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Delete(&model.Transaction{}, id).Error)
}

func (r *transactionRepo) GetTotals(ctx context.Context) (*TransactionTotals, error) {
	var totals TransactionTotals

	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(`
			COUNT(*) AS count,
			COALESCE(SUM(litres), 0) AS litres,
			COALESCE(SUM(total_value), 0) AS total_value
		`).
		Scan(&totals).Error
	if err != nil {
		return nil, translate(err)
	}

	// some drivers sum numerics as floating point
	totals.Litres = totals.Litres.Round(model.LitresScale)
	totals.TotalValue = totals.TotalValue.Round(model.ValueScale)

	return &totals, nil
}
