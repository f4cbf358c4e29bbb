package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WasteItem struct {
	gorm.Model

	Name       string          `gorm:"uniqueIndex;size:64" json:"name"`
	PricePerKg decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price_per_kg"`
	IsActive   bool            `gorm:"default:true" json:"is_active"`

	LocalPrices []UnitPrice `gorm:"foreignKey:WasteItemID"`
}

// UnitPrice is a harga lokal: a per-unit override of the catalog price.
type UnitPrice struct {
	gorm.Model

	UnitID      uint `gorm:"index:idx_unit_item,unique"`
	WasteItemID uint `gorm:"index:idx_unit_item,unique"`

	PricePerKg decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price_per_kg"`
}
