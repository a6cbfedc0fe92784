package domain

import (
	"fmt"
	"slices"
	"time"
)

// Pure validation rules for the data store. None of these functions mutate
// their arguments or touch storage; the store calls them before persisting.

// CheckAddable verifies that name can be added to existing.
func CheckAddable(name string, existing []string) error {
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %d characters exceeds the %d character limit", ErrInvalidName, len(name), MaxNameLength)
	}
	if slices.Contains(existing, name) {
		return fmt.Errorf("%w: %q", ErrDuplicateItem, name)
	}
	return nil
}

// CheckRemovable verifies that name is present in existing.
func CheckRemovable(name string, existing []string) error {
	if !slices.Contains(existing, name) {
		return fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	return nil
}

// AccountInUse reports whether any transaction references the account.
func AccountInUse(name string, transactions []Transaction) bool {
	for _, tx := range transactions {
		if tx.Account == name {
			return true
		}
	}
	return false
}

// CategoryInUse reports whether any transaction references the category.
func CategoryInUse(name string, transactions []Transaction) bool {
	for _, tx := range transactions {
		if tx.Category == name {
			return true
		}
	}
	return false
}

// SubcategoryInUse reports whether any transaction references the subcategory.
func SubcategoryInUse(name string, transactions []Transaction) bool {
	for _, tx := range transactions {
		if tx.Subcategory == name {
			return true
		}
	}
	return false
}

// ValidateTransaction checks a transaction against the current metadata.
// The exact-field-set rule is carried by the Transaction type itself and by
// strict decoding at the persistence and HTTP boundaries; the checks here run
// in order and the first failure wins.
func ValidateTransaction(tx Transaction, meta *Metadata) error {
	if !ValidTransactionType(tx.Type) {
		return fmt.Errorf("%w: %q", ErrUnknownType, tx.Type)
	}
	if tx.Amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, tx.Amount)
	}
	if !slices.Contains(meta.Accounts, tx.Account) {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, tx.Account)
	}
	if !slices.Contains(meta.Categories, tx.Category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, tx.Category)
	}
	if !slices.Contains(meta.Subcategories, tx.Subcategory) {
		return fmt.Errorf("%w: %q", ErrUnknownSubcategory, tx.Subcategory)
	}
	if _, err := time.Parse(DateFormat, tx.Date); err != nil {
		return fmt.Errorf("%w: %q, must be YYYY/MM/DD", ErrInvalidDate, tx.Date)
	}
	return nil
}
