package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "ADMIN"
	RolePetugas = "PETUGAS"
	RoleNasabah = "NASABAH"
)

type Account struct {
	gorm.Model

	Nickname string `gorm:"uniqueIndex;size:32" json:"nickname"`
	FullName string `gorm:"size:128" json:"full_name"`
	Role     string `gorm:"size:16;index;not null" json:"role"`

	// UnitID is nil only for ADMIN accounts.
	UnitID *uint `gorm:"index" json:"unit_id"`
	Unit   *Unit `gorm:"constraint:OnUpdate:CASCADE" json:"-"`

	PinHash        string          `gorm:"size:128" json:"-"`
	Balance        decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"balance"`
	IsActive       bool            `gorm:"default:true" json:"is_active"`
	IsBlocked      bool            `gorm:"default:false" json:"is_blocked"`
	FailedAttempts int             `gorm:"default:0" json:"-"`
	MustChangePin  bool            `gorm:"default:false" json:"must_change_pin"`

	Transactions []Transaction `gorm:"foreignKey:NasabahID"`
}
