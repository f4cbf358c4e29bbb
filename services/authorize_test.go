package services

import (
	"errors"
	"testing"

	"banksampah/models"
)

func uintPtr(v uint) *uint { return &v }

func TestAuthorizeCoversEveryRolePair(t *testing.T) {
	roles := []string{models.RoleAdmin, models.RolePetugas, models.RoleNasabah}
	ops := []Operation{
		OpDeposit, OpWithdrawal, OpCreateNasabah, OpCreateStaff,
		OpResetPin, OpUnblock, OpSetLocalPrice, OpViewHistory,
		OpChangeOwnPin, OpDeactivate,
	}

	// Every combination must land on Allow or a named deny reason; nothing
	// falls through to an unclassified error.
	for _, actorRole := range roles {
		for _, targetRole := range roles {
			for _, sameUnit := range []bool{true, false} {
				for _, op := range ops {
					actorUnit := uintPtr(1)
					targetUnit := uintPtr(1)
					if !sameUnit {
						targetUnit = uintPtr(2)
					}
					if actorRole == models.RoleAdmin {
						actorUnit = nil
					}
					if targetRole == models.RoleAdmin {
						targetUnit = nil
					}

					err := Authorize(
						Actor{AccountID: 1, Role: actorRole, UnitID: actorUnit},
						Actor{AccountID: 2, Role: targetRole, UnitID: targetUnit},
						op,
					)
					if err != nil && !errors.Is(err, ErrInsufficientAuthority) && !errors.Is(err, ErrUnitMismatch) {
						t.Fatalf("actor=%s target=%s sameUnit=%v op=%s: unclassified result %v",
							actorRole, targetRole, sameUnit, op, err)
					}
				}
			}
		}
	}
}

func TestAuthorizeAdminTargetsAnyUnit(t *testing.T) {
	admin := Actor{AccountID: 1, Role: models.RoleAdmin}
	nasabahU2 := Actor{AccountID: 2, Role: models.RoleNasabah, UnitID: uintPtr(2)}

	if err := Authorize(admin, nasabahU2, OpResetPin); err != nil {
		t.Fatalf("admin reset-pin on any unit should be allowed: %v", err)
	}
	if err := Authorize(admin, nasabahU2, OpUnblock); err != nil {
		t.Fatalf("admin unblock on any unit should be allowed: %v", err)
	}
	if err := Authorize(admin, Actor{AccountID: 3, Role: models.RoleAdmin}, OpCreateStaff); err != nil {
		t.Fatalf("admin may create admin: %v", err)
	}
}

func TestAuthorizePetugasScopedToOwnUnit(t *testing.T) {
	petugasU1 := Actor{AccountID: 10, Role: models.RolePetugas, UnitID: uintPtr(1)}
	nasabahU1 := Actor{AccountID: 20, Role: models.RoleNasabah, UnitID: uintPtr(1)}
	nasabahU2 := Actor{AccountID: 21, Role: models.RoleNasabah, UnitID: uintPtr(2)}

	if err := Authorize(petugasU1, nasabahU1, OpDeposit); err != nil {
		t.Fatalf("same-unit deposit should be allowed: %v", err)
	}
	if err := Authorize(petugasU1, nasabahU1, OpResetPin); err != nil {
		t.Fatalf("same-unit reset-pin should be allowed: %v", err)
	}

	if err := Authorize(petugasU1, nasabahU2, OpResetPin); !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("cross-unit reset-pin: want ErrUnitMismatch, got %v", err)
	}
	if err := Authorize(petugasU1, nasabahU2, OpWithdrawal); !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("cross-unit withdrawal: want ErrUnitMismatch, got %v", err)
	}
}

func TestAuthorizeNeverTargetsSeniorRole(t *testing.T) {
	petugasU1 := Actor{AccountID: 10, Role: models.RolePetugas, UnitID: uintPtr(1)}
	admin := Actor{AccountID: 1, Role: models.RoleAdmin}
	nasabahU1 := Actor{AccountID: 20, Role: models.RoleNasabah, UnitID: uintPtr(1)}

	if err := Authorize(petugasU1, admin, OpResetPin); !errors.Is(err, ErrInsufficientAuthority) {
		t.Fatalf("petugas on admin: want ErrInsufficientAuthority, got %v", err)
	}
	if err := Authorize(nasabahU1, petugasU1, OpResetPin); !errors.Is(err, ErrInsufficientAuthority) {
		t.Fatalf("nasabah on petugas: want ErrInsufficientAuthority, got %v", err)
	}

	// The seniority deny must not differ by operation, or it leaks the
	// target's role.
	samePetugas := Actor{AccountID: 11, Role: models.RolePetugas, UnitID: uintPtr(1)}
	if err := Authorize(petugasU1, samePetugas, OpResetPin); !errors.Is(err, ErrInsufficientAuthority) {
		t.Fatalf("petugas on petugas: want ErrInsufficientAuthority, got %v", err)
	}
}

func TestAuthorizeNasabahSelfOnly(t *testing.T) {
	self := Actor{AccountID: 20, Role: models.RoleNasabah, UnitID: uintPtr(1)}
	other := Actor{AccountID: 21, Role: models.RoleNasabah, UnitID: uintPtr(1)}

	if err := Authorize(self, self, OpViewHistory); err != nil {
		t.Fatalf("nasabah views own history: %v", err)
	}
	if err := Authorize(self, self, OpChangeOwnPin); err != nil {
		t.Fatalf("nasabah changes own pin: %v", err)
	}
	if err := Authorize(self, other, OpViewHistory); !errors.Is(err, ErrInsufficientAuthority) {
		t.Fatalf("nasabah on other nasabah: want ErrInsufficientAuthority, got %v", err)
	}
	if err := Authorize(self, self, OpWithdrawal); !errors.Is(err, ErrInsufficientAuthority) {
		t.Fatalf("nasabah cannot self-withdraw: want ErrInsufficientAuthority, got %v", err)
	}
}
