package services

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidFormat         = errors.New("invalid pin format")
	ErrInsufficientAuthority = errors.New("insufficient authority")
	ErrUnitMismatch          = errors.New("unit mismatch")
	ErrValidation            = errors.New("validation failed")
	ErrItemNotFound          = errors.New("waste item not found")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrContention            = errors.New("account row contended, retry")
	ErrNotFound              = errors.New("record not found")
	ErrAlreadyBlocked        = errors.New("account already blocked")
	ErrNotBlocked            = errors.New("account is not blocked")
)
