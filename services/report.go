package services

import (
	"time"

	"banksampah/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type HistoryFilter struct {
	UnitID    *uint
	NasabahID *uint
	TrxType   string
	From      *time.Time
	To        *time.Time
	// BeforeID is the keyset cursor: only rows older than this id. Clients
	// paging under concurrent inserts pass the last id they saw so new rows
	// cannot push already-served rows onto the next page.
	BeforeID *uint
	Page     int
	Limit    int
}

type Page struct {
	Items []models.Transaction `json:"items"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

type Summary struct {
	DepositTotal    decimal.Decimal `json:"deposit_total"`
	WithdrawalTotal decimal.Decimal `json:"withdrawal_total"`
	Net             decimal.Decimal `json:"net"`
	TrxCount        int64           `json:"trx_count"`
}

// ListTransactions is the read path for dashboards and history views. The
// sort key (created_at desc, id desc) is deterministic, so rows inserted
// while a client pages through never shift pages already served.
func ListTransactions(db *gorm.DB, f HistoryFilter) (Page, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	q := db.Model(&models.Transaction{})
	if f.UnitID != nil {
		q = q.Where("unit_id = ?", *f.UnitID)
	}
	if f.NasabahID != nil {
		q = q.Where("nasabah_id = ?", *f.NasabahID)
	}
	if f.TrxType != "" {
		q = q.Where("trx_type = ?", f.TrxType)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}
	if f.BeforeID != nil {
		q = q.Where("id < ?", *f.BeforeID)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page{}, err
	}

	var items []models.Transaction
	err := q.Session(&gorm.Session{}).Preload("Lines").
		Order("created_at DESC, id DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&items).Error
	if err != nil {
		return Page{}, err
	}

	return Page{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

// Summarize totals the ledger for one unit, or globally when unitID is nil.
func Summarize(db *gorm.DB, unitID *uint) (Summary, error) {
	base := db.Model(&models.Transaction{})
	if unitID != nil {
		base = base.Where("unit_id = ?", *unitID)
	}

	var sum Summary
	if err := base.Session(&gorm.Session{}).Count(&sum.TrxCount).Error; err != nil {
		return Summary{}, err
	}

	type row struct {
		TrxType string
		Total   decimal.Decimal
	}
	var rows []row
	err := base.Session(&gorm.Session{}).
		Select("trx_type, COALESCE(SUM(amount), 0) AS total").
		Group("trx_type").
		Scan(&rows).Error
	if err != nil {
		return Summary{}, err
	}

	sum.DepositTotal = decimal.Zero
	sum.WithdrawalTotal = decimal.Zero
	for _, r := range rows {
		switch r.TrxType {
		case models.TrxDeposit:
			sum.DepositTotal = r.Total
		case models.TrxWithdrawal:
			sum.WithdrawalTotal = r.Total
		}
	}
	sum.Net = sum.DepositTotal.Sub(sum.WithdrawalTotal)
	return sum, nil
}
