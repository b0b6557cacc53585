package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pump is a dispensing unit bound to exactly one fuel type.
//
// The bound fuel type is stored twice: as a foreign key, so the catalog
// cannot drop a fuel type still in use, and as a name/price snapshot taken
// when the pump was last saved. Reads always expose the snapshot.
type Pump struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Name       string   `gorm:"type:varchar(50);not null" json:"name" validate:"required,max=50"`
	FuelTypeID uint     `gorm:"not null;index" json:"-"`
	FuelType   FuelType `gorm:"foreignKey:FuelTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"fuel_type" validate:"-"`

	FuelName          string          `gorm:"type:varchar(50);not null" json:"-"`
	FuelPricePerLitre decimal.Decimal `gorm:"type:numeric(10,3);not null" json:"-"`
}

func (Pump) TableName() string {
	return "pumps"
}

// BeforeSave copies the resolved fuel type into the snapshot columns.
func (p *Pump) BeforeSave(tx *gorm.DB) error {
	p.FuelTypeID = p.FuelType.ID
	p.FuelName = p.FuelType.Name
	p.FuelPricePerLitre = p.FuelType.PricePerLitre.Round(PriceScale)
	return nil
}

// AfterFind rebuilds the inlined fuel type from the snapshot.
func (p *Pump) AfterFind(tx *gorm.DB) error {
	p.FuelType = FuelType{
		ID:            p.FuelTypeID,
		Name:          p.FuelName,
		PricePerLitre: p.FuelPricePerLitre,
	}
	return nil
}
