package models

import "gorm.io/gorm"

type Unit struct {
	gorm.Model

	UnitCode string `gorm:"uniqueIndex;size:32" json:"unit_code"`
	Name     string `gorm:"size:128;not null" json:"name"`
	Address  string `gorm:"size:255" json:"address"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Accounts     []Account     `gorm:"foreignKey:UnitID"`
	Transactions []Transaction `gorm:"foreignKey:UnitID"`
	LocalPrices  []UnitPrice   `gorm:"foreignKey:UnitID"`
}
