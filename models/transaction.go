package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TrxDeposit    = "DEPOSIT"
	TrxWithdrawal = "WITHDRAWAL"
)

const (
	DepositCommunity = "COMMUNITY"
	DepositOcean     = "OCEAN"
)

// Transaction is an immutable ledger row. Monetary columns are written once
// at commit and never updated; corrections happen as new rows.
type Transaction struct {
	gorm.Model

	RefID string `gorm:"size:64;uniqueIndex" json:"ref_id"`

	TrxType        string `gorm:"size:16;index" json:"trx_type"`
	DepositSubtype string `gorm:"size:16" json:"deposit_subtype,omitempty"`

	UnitID    uint `gorm:"index" json:"unit_id"`
	PetugasID uint `gorm:"index" json:"petugas_id"`
	NasabahID uint `gorm:"index" json:"nasabah_id"`

	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(14,2)" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(14,2)" json:"balance_after"`

	Detail datatypes.JSON `gorm:"type:jsonb" json:"detail,omitempty"`

	Lines []TransactionLine `gorm:"foreignKey:TransactionID" json:"lines,omitempty"`
}

// TransactionLine carries the price snapshot taken at commit time; later
// catalog or harga lokal changes never touch it.
type TransactionLine struct {
	gorm.Model

	TransactionID uint `gorm:"index"`
	WasteItemID   uint `gorm:"index"`

	WasteItemName string          `gorm:"size:64" json:"waste_item_name"`
	WeightKg      decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"weight_kg"`
	PricePerKg    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price_per_kg"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"subtotal"`
}
