package services

import (
	"errors"
	"testing"

	"banksampah/models"
)

func TestCreateAccountRoles(t *testing.T) {
	db := setupTestDB(t)
	unit := createUnit(t, db, "melati")
	admin := createAccount(t, db, "root", models.RoleAdmin, nil)
	petugas := createAccount(t, db, "budi", models.RolePetugas, &unit.ID)
	cfg := testGateConfig()

	// ADMIN opens staff accounts.
	staff, err := CreateAccount(db, plainHasher{}, cfg, ActorFromAccount(admin), NewAccountInput{
		Nickname: "lina", Role: models.RolePetugas, UnitID: &unit.ID,
	})
	if err != nil {
		t.Fatalf("admin creates petugas: %v", err)
	}
	if !staff.MustChangePin || staff.PinHash != "h:"+cfg.DefaultPin {
		t.Fatalf("new account should start on default pin with forced change")
	}

	// PETUGAS opens nasabah in its own unit.
	if _, err := CreateAccount(db, plainHasher{}, cfg, ActorFromAccount(petugas), NewAccountInput{
		Nickname: "siti", Role: models.RoleNasabah, UnitID: &unit.ID,
	}); err != nil {
		t.Fatalf("petugas creates nasabah: %v", err)
	}

	// PETUGAS may not open staff accounts.
	if _, err := CreateAccount(db, plainHasher{}, cfg, ActorFromAccount(petugas), NewAccountInput{
		Nickname: "evil", Role: models.RolePetugas, UnitID: &unit.ID,
	}); !errors.Is(err, ErrInsufficientAuthority) {
		t.Fatalf("petugas creates petugas: want ErrInsufficientAuthority, got %v", err)
	}

	// PETUGAS may not open nasabah in another unit.
	other := createUnit(t, db, "kenanga")
	if _, err := CreateAccount(db, plainHasher{}, cfg, ActorFromAccount(petugas), NewAccountInput{
		Nickname: "wati", Role: models.RoleNasabah, UnitID: &other.ID,
	}); !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("cross-unit nasabah: want ErrUnitMismatch, got %v", err)
	}
}

func TestCreateAccountValidation(t *testing.T) {
	db := setupTestDB(t)
	unit := createUnit(t, db, "melati")
	admin := createAccount(t, db, "root", models.RoleAdmin, nil)
	cfg := testGateConfig()

	// ADMIN accounts are unit-less; staff accounts need a live unit.
	if _, err := CreateAccount(db, plainHasher{}, cfg, ActorFromAccount(admin), NewAccountInput{
		Nickname: "root2", Role: models.RoleAdmin, UnitID: &unit.ID,
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("admin with unit: want ErrValidation, got %v", err)
	}
	if _, err := CreateAccount(db, plainHasher{}, cfg, ActorFromAccount(admin), NewAccountInput{
		Nickname: "lina", Role: models.RolePetugas,
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("petugas without unit: want ErrValidation, got %v", err)
	}

	dead := createUnit(t, db, "mati")
	dead.IsActive = false
	db.Save(&dead)
	if _, err := CreateAccount(db, plainHasher{}, cfg, ActorFromAccount(admin), NewAccountInput{
		Nickname: "lina", Role: models.RolePetugas, UnitID: &dead.ID,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive unit: want ErrNotFound, got %v", err)
	}

	if _, err := CreateAccount(db, plainHasher{}, cfg, ActorFromAccount(admin), NewAccountInput{
		Nickname: "root", Role: models.RolePetugas, UnitID: &unit.ID,
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("duplicate nickname: want ErrValidation, got %v", err)
	}

	if _, err := CreateAccount(db, plainHasher{}, cfg, ActorFromAccount(admin), NewAccountInput{
		Nickname: "x", Role: "SUPERVISOR", UnitID: &unit.ID,
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown role: want ErrValidation, got %v", err)
	}
}

func TestDeactivateAccountKeepsLedgerRows(t *testing.T) {
	f := newLedgerFixture(t)
	f.deposit(t, "2")

	if err := DeactivateAccount(f.db, f.nasabah.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	var acc models.Account
	if err := f.db.First(&acc, f.nasabah.ID).Error; err != nil {
		t.Fatalf("account row should survive deactivation: %v", err)
	}
	if acc.IsActive {
		t.Fatalf("account still active")
	}

	var count int64
	f.db.Model(&models.Transaction{}).Where("nasabah_id = ?", f.nasabah.ID).Count(&count)
	if count != 1 {
		t.Fatalf("ledger rows lost on deactivation: %d", count)
	}

	// A deactivated nasabah takes no further transactions.
	_, err := RecordDeposit(f.db, DepositInput{
		UnitID: f.unit.ID, PetugasID: f.petugas.ID, NasabahID: f.nasabah.ID,
		Subtype: models.DepositCommunity,
		Lines:   []DepositLineInput{{WasteItemID: f.plastic.ID, WeightKg: dec(t, "1")}},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("deposit to deactivated account: want ErrNotFound, got %v", err)
	}
}
