package services

import (
	"errors"
	"os"
	"strconv"
	"time"

	"banksampah/models"

	"gorm.io/gorm"
)

// PinHasher keeps the hashing primitive out of the gate: the gate only ever
// sees a stored hash and a presented PIN.
type PinHasher interface {
	Hash(pin string) (string, error)
	Verify(hash, pin string) bool
}

type GateConfig struct {
	AttemptLimit int
	DefaultPin   string
	SessionTTL   time.Duration
}

func GateConfigFromEnv() GateConfig {
	cfg := GateConfig{
		AttemptLimit: 5,
		DefaultPin:   "123456",
		SessionTTL:   12 * time.Hour,
	}

	if v, err := strconv.Atoi(os.Getenv("PIN_ATTEMPT_LIMIT")); err == nil && v > 0 {
		cfg.AttemptLimit = v
	}
	if v := os.Getenv("DEFAULT_PIN"); v != "" {
		cfg.DefaultPin = v
	}
	if v, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS")); err == nil && v > 0 {
		cfg.SessionTTL = time.Duration(v) * time.Hour
	}

	return cfg
}

// ValidatePinFormat enforces the PIN rule: exactly six numeric digits.
func ValidatePinFormat(pin string) bool {
	if len(pin) != 6 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Authenticate verifies a nickname/PIN pair. Every counter or block mutation
// is saved before returning, so a caller never acts on unsaved gate state.
// Unknown nickname, blocked account and wrong PIN are indistinguishable to
// the caller.
func Authenticate(db *gorm.DB, h PinHasher, cfg GateConfig, nickname, pin string) (models.Account, error) {
	var acc models.Account
	if err := db.Where("nickname = ? AND is_active = true", nickname).First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Account{}, ErrInvalidCredentials
		}
		return models.Account{}, err
	}

	if acc.IsBlocked {
		return models.Account{}, ErrInvalidCredentials
	}

	if !h.Verify(acc.PinHash, pin) {
		acc.FailedAttempts++
		if acc.FailedAttempts >= cfg.AttemptLimit {
			acc.IsBlocked = true
		}
		if err := db.Save(&acc).Error; err != nil {
			return models.Account{}, err
		}
		return models.Account{}, ErrInvalidCredentials
	}

	if acc.FailedAttempts != 0 {
		acc.FailedAttempts = 0
		if err := db.Save(&acc).Error; err != nil {
			return models.Account{}, err
		}
	}

	return acc, nil
}

func NewSession(db *gorm.DB, cfg GateConfig, accountID uint) (models.Session, error) {
	sess := models.Session{
		AccountID: accountID,
		ExpiresAt: time.Now().Add(cfg.SessionTTL),
	}
	if err := db.Create(&sess).Error; err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// ChangePin rotates the caller's own PIN and clears the forced-change flag.
func ChangePin(db *gorm.DB, h PinHasher, cfg GateConfig, accountID uint, oldPin, newPin string) error {
	var acc models.Account
	if err := db.First(&acc, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !h.Verify(acc.PinHash, oldPin) {
		return ErrInvalidCredentials
	}
	if !ValidatePinFormat(newPin) || newPin == cfg.DefaultPin {
		return ErrInvalidFormat
	}

	hash, err := h.Hash(newPin)
	if err != nil {
		return err
	}

	acc.PinHash = hash
	acc.MustChangePin = false
	return db.Save(&acc).Error
}

// ResetPin puts the target back on the default PIN and forces a change at
// next login. The caller must already have passed Authorize.
func ResetPin(db *gorm.DB, h PinHasher, cfg GateConfig, targetID uint) error {
	var acc models.Account
	if err := db.First(&acc, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	hash, err := h.Hash(cfg.DefaultPin)
	if err != nil {
		return err
	}

	acc.PinHash = hash
	acc.MustChangePin = true
	acc.FailedAttempts = 0
	return db.Save(&acc).Error
}

func Unblock(db *gorm.DB, targetID uint) error {
	var acc models.Account
	if err := db.First(&acc, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !acc.IsBlocked {
		return ErrNotBlocked
	}

	acc.IsBlocked = false
	acc.FailedAttempts = 0
	return db.Save(&acc).Error
}

func Block(db *gorm.DB, targetID uint) error {
	var acc models.Account
	if err := db.First(&acc, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if acc.IsBlocked {
		return ErrAlreadyBlocked
	}

	acc.IsBlocked = true
	return db.Save(&acc).Error
}
