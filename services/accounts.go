package services

import (
	"errors"

	"banksampah/models"

	"gorm.io/gorm"
)

type NewAccountInput struct {
	Nickname string `json:"nickname"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	UnitID   *uint  `json:"unit_id"`
}

// CreateAccount opens an account on the default PIN with a forced change at
// first login. ADMIN opens PETUGAS/ADMIN accounts; PETUGAS opens NASABAH
// accounts inside its own unit.
func CreateAccount(db *gorm.DB, h PinHasher, cfg GateConfig, actor Actor, in NewAccountInput) (models.Account, error) {
	switch in.Role {
	case models.RoleNasabah:
		if err := Authorize(actor, Actor{Role: models.RoleNasabah, UnitID: in.UnitID}, OpCreateNasabah); err != nil {
			return models.Account{}, err
		}
	case models.RolePetugas, models.RoleAdmin:
		if err := Authorize(actor, Actor{Role: in.Role, UnitID: in.UnitID}, OpCreateStaff); err != nil {
			return models.Account{}, err
		}
	default:
		return models.Account{}, ErrValidation
	}

	if in.Nickname == "" {
		return models.Account{}, ErrValidation
	}

	// ADMIN is the only unit-less role.
	if in.Role == models.RoleAdmin {
		if in.UnitID != nil {
			return models.Account{}, ErrValidation
		}
	} else {
		if in.UnitID == nil {
			return models.Account{}, ErrValidation
		}
		var unit models.Unit
		if err := db.Where("id = ? AND is_active = true", *in.UnitID).First(&unit).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Account{}, ErrNotFound
			}
			return models.Account{}, err
		}
	}

	var existing models.Account
	if err := db.Where("nickname = ?", in.Nickname).First(&existing).Error; err == nil {
		return models.Account{}, ErrValidation
	}

	hash, err := h.Hash(cfg.DefaultPin)
	if err != nil {
		return models.Account{}, err
	}

	acc := models.Account{
		Nickname:      in.Nickname,
		FullName:      in.FullName,
		Role:          in.Role,
		UnitID:        in.UnitID,
		PinHash:       hash,
		IsActive:      true,
		MustChangePin: true,
	}
	if err := db.Create(&acc).Error; err != nil {
		return models.Account{}, err
	}
	return acc, nil
}

// DeactivateAccount retires an account without deleting it, keeping every
// ledger reference intact.
func DeactivateAccount(db *gorm.DB, targetID uint) error {
	var acc models.Account
	if err := db.First(&acc, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	acc.IsActive = false
	return db.Save(&acc).Error
}

// FindTarget loads a privileged action's target account.
func FindTarget(db *gorm.DB, targetID uint) (models.Account, error) {
	var acc models.Account
	if err := db.First(&acc, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Account{}, ErrNotFound
		}
		return models.Account{}, err
	}
	return acc, nil
}
