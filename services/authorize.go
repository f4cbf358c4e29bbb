package services

import "banksampah/models"

type Operation string

const (
	OpDeposit       Operation = "DEPOSIT"
	OpWithdrawal    Operation = "WITHDRAWAL"
	OpCreateNasabah Operation = "CREATE_NASABAH"
	OpCreateStaff   Operation = "CREATE_STAFF"
	OpResetPin      Operation = "RESET_PIN"
	OpUnblock       Operation = "UNBLOCK"
	OpSetLocalPrice Operation = "SET_LOCAL_PRICE"
	OpViewHistory   Operation = "VIEW_HISTORY"
	OpChangeOwnPin  Operation = "CHANGE_OWN_PIN"
	OpDeactivate    Operation = "DEACTIVATE"
)

// Actor is the identity taken from a verified session. It is the only
// trusted input to authorization; request bodies never feed it.
type Actor struct {
	AccountID uint
	Role      string
	UnitID    *uint
}

func ActorFromAccount(acc models.Account) Actor {
	return Actor{AccountID: acc.ID, Role: acc.Role, UnitID: acc.UnitID}
}

var roleRank = map[string]int{
	models.RoleNasabah: 0,
	models.RolePetugas: 1,
	models.RoleAdmin:   2,
}

var petugasOps = map[Operation]bool{
	OpDeposit:       true,
	OpWithdrawal:    true,
	OpCreateNasabah: true,
	OpSetLocalPrice: true,
	OpResetPin:      true,
	OpUnblock:       true,
	OpDeactivate:    true,
	OpViewHistory:   true,
}

var adminOps = map[Operation]bool{
	OpCreateStaff: true,
	OpResetPin:    true,
	OpUnblock:     true,
	OpDeactivate:  true,
	OpViewHistory: true,
}

// Authorize is the single decision point for privileged actions. It is pure:
// no storage access, no side effects. Denials never reveal whether the target
// exists, only that the actor lacks standing for it.
func Authorize(actor Actor, target Actor, op Operation) error {
	// Anyone may act on themselves for self-scoped operations.
	if actor.AccountID == target.AccountID && actor.AccountID != 0 {
		if op == OpViewHistory || op == OpChangeOwnPin {
			return nil
		}
	}

	// Nobody targets a role senior to their own, whatever the operation.
	if roleRank[target.Role] > roleRank[actor.Role] {
		return ErrInsufficientAuthority
	}

	switch actor.Role {
	case models.RoleAdmin:
		if !adminOps[op] {
			return ErrInsufficientAuthority
		}
		return nil

	case models.RolePetugas:
		if !petugasOps[op] {
			return ErrInsufficientAuthority
		}
		if target.Role != models.RoleNasabah {
			return ErrInsufficientAuthority
		}
		if actor.UnitID == nil || target.UnitID == nil || *actor.UnitID != *target.UnitID {
			return ErrUnitMismatch
		}
		return nil

	case models.RoleNasabah:
		// Self-scoped cases returned above; anything else is out of reach.
		return ErrInsufficientAuthority

	default:
		return ErrInsufficientAuthority
	}
}
