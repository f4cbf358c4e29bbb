package services

import (
	"encoding/json"
	"errors"
	"strings"

	"banksampah/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DepositLineInput struct {
	WasteItemID uint            `json:"item_id"`
	WeightKg    decimal.Decimal `json:"weight_kg"`
}

type DepositInput struct {
	UnitID    uint               `json:"unit_id"`
	PetugasID uint               `json:"petugas_id"`
	NasabahID uint               `json:"nasabah_id"`
	Subtype   string             `json:"deposit_subtype"`
	RefID     string             `json:"ref_id"`
	Lines     []DepositLineInput `json:"lines"`
}

type WithdrawalInput struct {
	UnitID    uint            `json:"unit_id"`
	PetugasID uint            `json:"petugas_id"`
	NasabahID uint            `json:"nasabah_id"`
	Amount    decimal.Decimal `json:"amount"`
	RefID     string          `json:"ref_id"`
}

// classifyLockError maps a failed row-lock read onto the taxonomy. The
// Postgres lock-not-available failure (NOWAIT) becomes the retryable
// ErrContention; everything else passes through.
func classifyLockError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if strings.Contains(err.Error(), "55P03") || strings.Contains(err.Error(), "could not obtain lock") {
		return ErrContention
	}
	return err
}

// isDuplicateRef recognizes a unique-index collision on ref_id, the losing
// side of two racing submits with the same fresh ref.
func isDuplicateRef(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "UNIQUE constraint failed")
}

// lockAccount takes the row lock the balance read-modify-write runs under.
// NOWAIT keeps the wait bounded: a held lock surfaces as ErrContention for
// the caller to retry instead of queueing behind it. SQLite (tests) has a
// single writer and rejects FOR UPDATE, so the clause is skipped there.
func lockAccount(tx *gorm.DB, accountID uint) (models.Account, error) {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"})
	}

	var acc models.Account
	if err := q.First(&acc, accountID).Error; err != nil {
		return models.Account{}, classifyLockError(err)
	}
	return acc, nil
}

// findByRef implements the idempotent replay: a retried request carrying a
// known ref_id gets the stored transaction back, never a second application.
// The match is scoped to the acting parties, so a ref belonging to another
// petugas or unit never replays — the caller falls through and is rejected
// by the unique index instead of being handed someone else's transaction.
func findByRef(db *gorm.DB, refID string, unitID, petugasID, nasabahID uint) (models.Transaction, bool, error) {
	var trx models.Transaction
	err := db.Preload("Lines").
		Where("ref_id = ? AND unit_id = ? AND petugas_id = ? AND nasabah_id = ?",
			refID, unitID, petugasID, nasabahID).
		First(&trx).Error
	if err == nil {
		return trx, true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Transaction{}, false, nil
	}
	return models.Transaction{}, false, err
}

// resolveDuplicateRef handles the loser of a same-ref write race. If the
// winning row belongs to the same parties it is the stored result; a ref
// taken by anyone else is a client error.
func resolveDuplicateRef(db *gorm.DB, refID string, unitID, petugasID, nasabahID uint) (models.Transaction, error) {
	trx, found, err := findByRef(db, refID, unitID, petugasID, nasabahID)
	if err != nil {
		return models.Transaction{}, err
	}
	if found {
		return trx, nil
	}
	return models.Transaction{}, ErrValidation
}

func loadLedgerParties(db *gorm.DB, unitID, petugasID, nasabahID uint, op Operation) (models.Account, models.Account, error) {
	var petugas models.Account
	if err := db.Where("id = ? AND is_active = true", petugasID).First(&petugas).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Account{}, models.Account{}, ErrNotFound
		}
		return models.Account{}, models.Account{}, err
	}

	var nasabah models.Account
	if err := db.Where("id = ? AND is_active = true", nasabahID).First(&nasabah).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Account{}, models.Account{}, ErrNotFound
		}
		return models.Account{}, models.Account{}, err
	}

	if err := Authorize(ActorFromAccount(petugas), ActorFromAccount(nasabah), op); err != nil {
		return models.Account{}, models.Account{}, err
	}

	// The recorded unit must be the petugas's own unit.
	if petugas.UnitID == nil || *petugas.UnitID != unitID {
		return models.Account{}, models.Account{}, ErrUnitMismatch
	}

	return petugas, nasabah, nil
}

// RecordDeposit validates the whole batch, snapshots a price for every line
// and applies the total to the nasabah balance in one atomic unit. A single
// bad line rejects the entire deposit before anything is written.
func RecordDeposit(db *gorm.DB, in DepositInput) (models.Transaction, error) {
	if in.RefID == "" {
		in.RefID = uuid.New().String()
	}

	if len(in.Lines) == 0 {
		return models.Transaction{}, ErrValidation
	}
	if in.Subtype != models.DepositCommunity && in.Subtype != models.DepositOcean {
		return models.Transaction{}, ErrValidation
	}
	for _, line := range in.Lines {
		if !line.WeightKg.IsPositive() {
			return models.Transaction{}, ErrValidation
		}
	}

	if _, _, err := loadLedgerParties(db, in.UnitID, in.PetugasID, in.NasabahID, OpDeposit); err != nil {
		return models.Transaction{}, err
	}

	// Replay only after the actor has cleared authorization for these
	// parties; a known ref never shortcuts the permission check.
	if trx, found, err := findByRef(db, in.RefID, in.UnitID, in.PetugasID, in.NasabahID); err != nil {
		return models.Transaction{}, err
	} else if found {
		return trx, nil
	}

	detail, _ := json.Marshal(in)

	var trx models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		// Price resolution happens inside the unit of work so the batch
		// either prices completely or fails before any mutation.
		lines := make([]models.TransactionLine, 0, len(in.Lines))
		total := decimal.Zero
		for _, lin := range in.Lines {
			item, price, err := resolveItemPrice(tx, in.UnitID, lin.WasteItemID)
			if err != nil {
				return err
			}

			subtotal := lin.WeightKg.Mul(price).Round(2)
			total = total.Add(subtotal)
			lines = append(lines, models.TransactionLine{
				WasteItemID:   lin.WasteItemID,
				WasteItemName: item.Name,
				WeightKg:      lin.WeightKg,
				PricePerKg:    price,
				Subtotal:      subtotal,
			})
		}

		nasabah, err := lockAccount(tx, in.NasabahID)
		if err != nil {
			return err
		}

		before := nasabah.Balance
		nasabah.Balance = nasabah.Balance.Add(total)
		if err := tx.Save(&nasabah).Error; err != nil {
			return err
		}

		trx = models.Transaction{
			RefID:          in.RefID,
			TrxType:        models.TrxDeposit,
			DepositSubtype: in.Subtype,
			UnitID:         in.UnitID,
			PetugasID:      in.PetugasID,
			NasabahID:      in.NasabahID,
			Amount:         total,
			BalanceBefore:  before,
			BalanceAfter:   nasabah.Balance,
			Detail:         datatypes.JSON(detail),
			Lines:          lines,
		}
		return tx.Create(&trx).Error
	})
	if err != nil {
		if isDuplicateRef(err) {
			return resolveDuplicateRef(db, in.RefID, in.UnitID, in.PetugasID, in.NasabahID)
		}
		return models.Transaction{}, err
	}

	return trx, nil
}

// RecordWithdrawal debits the nasabah balance. The sufficiency check and the
// decrement share one locked unit of work, so two concurrent withdrawals can
// never both pass against a stale balance.
func RecordWithdrawal(db *gorm.DB, in WithdrawalInput) (models.Transaction, error) {
	if in.RefID == "" {
		in.RefID = uuid.New().String()
	}

	if !in.Amount.IsPositive() {
		return models.Transaction{}, ErrValidation
	}

	if _, _, err := loadLedgerParties(db, in.UnitID, in.PetugasID, in.NasabahID, OpWithdrawal); err != nil {
		return models.Transaction{}, err
	}

	if trx, found, err := findByRef(db, in.RefID, in.UnitID, in.PetugasID, in.NasabahID); err != nil {
		return models.Transaction{}, err
	} else if found {
		return trx, nil
	}

	detail, _ := json.Marshal(in)

	var trx models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		nasabah, err := lockAccount(tx, in.NasabahID)
		if err != nil {
			return err
		}

		if nasabah.Balance.LessThan(in.Amount) {
			return ErrInsufficientFunds
		}

		before := nasabah.Balance
		nasabah.Balance = nasabah.Balance.Sub(in.Amount)
		if err := tx.Save(&nasabah).Error; err != nil {
			return err
		}

		trx = models.Transaction{
			RefID:         in.RefID,
			TrxType:       models.TrxWithdrawal,
			UnitID:        in.UnitID,
			PetugasID:     in.PetugasID,
			NasabahID:     in.NasabahID,
			Amount:        in.Amount,
			BalanceBefore: before,
			BalanceAfter:  nasabah.Balance,
			Detail:        datatypes.JSON(detail),
		}
		return tx.Create(&trx).Error
	})
	if err != nil {
		if isDuplicateRef(err) {
			return resolveDuplicateRef(db, in.RefID, in.UnitID, in.PetugasID, in.NasabahID)
		}
		return models.Transaction{}, err
	}

	return trx, nil
}

// ReplayBalance recomputes a nasabah balance from the full ledger. It is the
// reconciliation tool, never the hot path.
func ReplayBalance(db *gorm.DB, nasabahID uint) (decimal.Decimal, error) {
	var trxs []models.Transaction
	if err := db.Where("nasabah_id = ?", nasabahID).Order("id asc").Find(&trxs).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, trx := range trxs {
		switch trx.TrxType {
		case models.TrxDeposit:
			total = total.Add(trx.Amount)
		case models.TrxWithdrawal:
			total = total.Sub(trx.Amount)
		}
	}
	return total, nil
}
