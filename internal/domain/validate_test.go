package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func validTransaction() Transaction {
	return Transaction{
		Date:        "2018/01/03",
		Type:        TransactionTypeIncome,
		Amount:      decimal.RequireFromString("94.00"),
		Account:     "N26",
		Category:    "salary",
		Subcategory: "evotec",
		Note:        "may",
	}
}

func TestValidateTransaction_Accepts_WellFormedRecord(t *testing.T) {
	meta := ExampleMetadata()

	if err := ValidateTransaction(validTransaction(), meta); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestValidateTransaction_Rejections(t *testing.T) {
	meta := ExampleMetadata()

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{
			name:    "unknown type",
			mutate:  func(tx *Transaction) { tx.Type = "invalid_type" },
			wantErr: ErrUnknownType,
		},
		{
			name:    "negative amount",
			mutate:  func(tx *Transaction) { tx.Amount = decimal.RequireFromString("-94.0") },
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "unknown account",
			mutate:  func(tx *Transaction) { tx.Account = "Unknown_Account" },
			wantErr: ErrUnknownAccount,
		},
		{
			name:    "unknown category",
			mutate:  func(tx *Transaction) { tx.Category = "Unknown_Category" },
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "unknown subcategory",
			mutate:  func(tx *Transaction) { tx.Subcategory = "Unknown_Subcategory" },
			wantErr: ErrUnknownSubcategory,
		},
		{
			name:    "dashed date",
			mutate:  func(tx *Transaction) { tx.Date = "01-03-2018" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "incomplete date",
			mutate:  func(tx *Transaction) { tx.Date = "2018/01" },
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := ValidateTransaction(tx, meta)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTransaction() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTransaction_ChecksTypeBeforeReferences(t *testing.T) {
	meta := ExampleMetadata()

	tx := validTransaction()
	tx.Type = "invalid_type"
	tx.Account = "Unknown_Account"

	// First failure wins: the type check runs before the reference checks.
	if err := ValidateTransaction(tx, meta); !errors.Is(err, ErrUnknownType) {
		t.Errorf("Expected ErrUnknownType, got %v", err)
	}
}

func TestValidateTransaction_AcceptsEmptyCategoryAndSubcategory(t *testing.T) {
	meta := ExampleMetadata()

	tx := validTransaction()
	tx.Category = ""
	tx.Subcategory = ""

	if err := ValidateTransaction(tx, meta); err != nil {
		t.Fatalf("Expected empty category/subcategory to validate, got %v", err)
	}
}

func TestCheckAddable(t *testing.T) {
	existing := []string{"N26", "Wallet"}

	if err := CheckAddable("C24", existing); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := CheckAddable("N26", existing); !errors.Is(err, ErrDuplicateItem) {
		t.Errorf("Expected ErrDuplicateItem, got %v", err)
	}
	if err := CheckAddable(strings.Repeat("x", MaxNameLength+1), existing); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", err)
	}
}

func TestCheckRemovable(t *testing.T) {
	existing := []string{"N26", "Wallet"}

	if err := CheckRemovable("Wallet", existing); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := CheckRemovable("C24", existing); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestInUseCheckers(t *testing.T) {
	transactions := ExampleTransactions()

	tests := []struct {
		name  string
		check func(string, []Transaction) bool
		value string
		want  bool
	}{
		{"account referenced", AccountInUse, "N26", true},
		{"account unreferenced", AccountInUse, "Revolut", false},
		{"category referenced", CategoryInUse, "bar", true},
		{"category unreferenced", CategoryInUse, "rent", false},
		{"subcategory referenced", SubcategoryInUse, "alcohol", true},
		{"empty subcategory referenced", SubcategoryInUse, "", true},
		{"subcategory unreferenced", SubcategoryInUse, "wine", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.value, transactions); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
