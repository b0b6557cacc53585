package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scales of the stored decimal columns.
const (
	LitresScale = 3
	ValueScale  = 2
	PriceScale  = 3
)

// Transaction is one fueling event. Both quantities are stored even though
// the caller supplies only one of them.
type Transaction struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	PumpID        uint            `gorm:"not null;index" json:"pump_id"`
	Pump          Pump            `gorm:"foreignKey:PumpID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"pump"`
	Timestamp     time.Time       `gorm:"column:recorded_at;not null;index" json:"timestamp"`
	Litres        decimal.Decimal `gorm:"type:numeric(10,3);not null" json:"litres"`
	TotalValue    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_value"`
	PricePerLitre decimal.Decimal `gorm:"type:numeric(10,3);not null" json:"price_per_litre"` // price applied at recording time
}

func (Transaction) TableName() string {
	return "transactions"
}
