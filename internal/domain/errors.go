package domain

import "errors"

// Domain errors
var (
	ErrInvalidName          = errors.New("invalid item name")
	ErrDuplicateItem        = errors.New("item already exists")
	ErrItemNotFound         = errors.New("item not found")
	ErrItemInUse            = errors.New("item is still used by a transaction")
	ErrDuplicateTransaction = errors.New("transaction already exists")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidSchema        = errors.New("transaction field set is invalid")
	ErrUnknownType          = errors.New("unknown transaction type")
	ErrInvalidAmount        = errors.New("amount must be numeric")
	ErrNegativeAmount       = errors.New("amount must be non-negative")
	ErrUnknownAccount       = errors.New("unknown account")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrUnknownSubcategory   = errors.New("unknown subcategory")
	ErrInvalidDate          = errors.New("invalid date format")
	ErrSameAccountTransfer  = errors.New("cannot transfer to the same account")
	ErrAccountNotSelected   = errors.New("transfer account not selected")
	ErrStorage              = errors.New("storage failure")
)

// Validation constants
const (
	MaxNameLength = 255
)
