package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FuelType is an entry of the fuel catalog.
type FuelType struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(50);not null" json:"name" validate:"required,max=50"`
	PricePerLitre decimal.Decimal `gorm:"type:numeric(10,3);not null" json:"price_per_litre"`
}

func (FuelType) TableName() string {
	return "fuel_types"
}

// BeforeSave keeps the price at the column scale so snapshots taken from an
// unsaved value match what the database stores.
func (f *FuelType) BeforeSave(tx *gorm.DB) error {
	f.PricePerLitre = f.PricePerLitre.Round(PriceScale)
	return nil
}
