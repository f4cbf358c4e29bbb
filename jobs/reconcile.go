package jobs

import (
	"log"
	"os"
	"strconv"
	"time"

	"banksampah/database"
	"banksampah/models"
	"banksampah/services"
	"banksampah/task"
)

// StartLedgerScheduler runs the reconciliation replay and the session sweep
// in the background. The replay compares every nasabah balance against the
// full ledger sum; the hot path maintains balances incrementally, this is
// the audit that keeps it honest.
func StartLedgerScheduler() {
	interval := 30 * time.Minute
	if v, err := strconv.Atoi(os.Getenv("RECONCILE_INTERVAL_MINUTES")); err == nil && v > 0 {
		interval = time.Duration(v) * time.Minute
	}

	tickerReconcile := time.NewTicker(interval)
	go func() {
		for {
			<-tickerReconcile.C
			ReconcileBalances()
		}
	}()

	tickerSweep := time.NewTicker(1 * time.Hour)
	go func() {
		for {
			<-tickerSweep.C
			task.CleanupExpiredSessions()
		}
	}()
}

func ReconcileBalances() {
	var accounts []models.Account
	if err := database.DB.Where("role = ?", models.RoleNasabah).Find(&accounts).Error; err != nil {
		log.Printf("❌ Reconcile: failed to load accounts: %v", err)
		return
	}

	mismatches := 0
	for _, acc := range accounts {
		replayed, err := services.ReplayBalance(database.DB, acc.ID)
		if err != nil {
			log.Printf("❌ Reconcile: replay failed for account %d: %v", acc.ID, err)
			continue
		}
		if !replayed.Equal(acc.Balance) {
			mismatches++
			log.Printf("⚠️  Reconcile: account %d balance %s != ledger %s", acc.ID, acc.Balance, replayed)
		}
	}

	if mismatches == 0 {
		log.Printf("✅ Reconcile: %d nasabah balances match the ledger", len(accounts))
	} else {
		log.Printf("❌ Reconcile: %d of %d nasabah balances drifted", mismatches, len(accounts))
	}
}
