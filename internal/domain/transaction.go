package domain

import (
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
	// Withdraw and deposit are the derived pair a transfer is recorded as.
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeDeposit  TransactionType = "deposit"
)

// DateFormat is the only accepted layout for transaction dates (YYYY/MM/DD).
const DateFormat = "2006/01/02"

// BankTransferCategory is the reserved category assigned to both legs of a
// transfer. Transfer legs carry the empty subcategory.
const BankTransferCategory = "banktransfer"

// Transaction is a single ledger entry. The field set is fixed: exactly these
// seven fields, matching the columns of the ledger file. Amounts are stored as
// non-negative magnitudes; the type carries the direction.
type Transaction struct {
	Date        string          `json:"date"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Account     string          `json:"account"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Note        string          `json:"note"`
}

// Equal reports structural equality over all seven fields.
func (t Transaction) Equal(other Transaction) bool {
	return t.Date == other.Date &&
		t.Type == other.Type &&
		t.Amount.Equal(other.Amount) &&
		t.Account == other.Account &&
		t.Category == other.Category &&
		t.Subcategory == other.Subcategory &&
		t.Note == other.Note
}

// SignedAmount returns the amount with the direction implied by the type:
// income and deposit add to an account, every other type draws from it.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.Type {
	case TransactionTypeIncome, TransactionTypeDeposit:
		return t.Amount
	default:
		return t.Amount.Neg()
	}
}

// ValidTransactionType reports whether t is one of the accepted types.
func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer,
		TransactionTypeWithdraw, TransactionTypeDeposit:
		return true
	}
	return false
}

// LedgerRepository persists the ordered transaction list. Save fully replaces
// the stored ledger; Load preserves insertion order.
type LedgerRepository interface {
	Exists() bool
	Load() ([]Transaction, error)
	Save(transactions []Transaction) error
}
