package service

import (
	"errors"
	"testing"

	"github.com/fedem-p/BudgetApp2.0/internal/domain"
	"github.com/shopspring/decimal"
)

func TestTransfer_Success(t *testing.T) {
	store, ledgerRepo, _ := newSeededStore(t)
	saves := ledgerRepo.SaveCalls

	result, err := store.Transfer(TransferInput{
		Date:        "2021/02/01",
		Amount:      decimal.RequireFromString("10.00"),
		FromAccount: "N26",
		ToAccount:   "C24",
		Note:        "rebalance",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Withdraw.Type != domain.TransactionTypeWithdraw || result.Withdraw.Account != "N26" {
		t.Errorf("Unexpected withdraw leg: %+v", result.Withdraw)
	}
	if result.Deposit.Type != domain.TransactionTypeDeposit || result.Deposit.Account != "C24" {
		t.Errorf("Unexpected deposit leg: %+v", result.Deposit)
	}
	if result.Withdraw.Category != domain.BankTransferCategory || result.Withdraw.Subcategory != "" {
		t.Errorf("Expected banktransfer category and empty subcategory, got %+v", result.Withdraw)
	}

	// Both legs land at the end of the ledger, withdraw first.
	ledger := store.Transactions()
	if len(ledger) != 10 {
		t.Fatalf("Expected 10 ledger entries, got %d", len(ledger))
	}
	if !ledger[8].Equal(result.Withdraw) || !ledger[9].Equal(result.Deposit) {
		t.Errorf("Expected withdraw then deposit appended")
	}

	// One flush for the whole transfer.
	if ledgerRepo.SaveCalls != saves+1 {
		t.Errorf("Expected a single ledger write, got %d", ledgerRepo.SaveCalls-saves)
	}

	if got := store.AccountBalance("N26"); !got.Equal(decimal.RequireFromString("24.5")) {
		t.Errorf("Expected N26 balance 24.5, got %s", got)
	}
	if got := store.AccountBalance("C24"); !got.Equal(decimal.RequireFromString("60")) {
		t.Errorf("Expected C24 balance 60, got %s", got)
	}
}

func TestTransfer_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   TransferInput
		wantErr error
	}{
		{
			name: "same account",
			input: TransferInput{
				Date: "2021/02/01", Amount: decimal.New(1, 0),
				FromAccount: "N26", ToAccount: "N26",
			},
			wantErr: domain.ErrSameAccountTransfer,
		},
		{
			name: "from account not selected",
			input: TransferInput{
				Date: "2021/02/01", Amount: decimal.New(1, 0),
				FromAccount: "", ToAccount: "N26",
			},
			wantErr: domain.ErrAccountNotSelected,
		},
		{
			name: "to account not selected",
			input: TransferInput{
				Date: "2021/02/01", Amount: decimal.New(1, 0),
				FromAccount: "N26", ToAccount: "",
			},
			wantErr: domain.ErrAccountNotSelected,
		},
		{
			name: "unknown destination",
			input: TransferInput{
				Date: "2021/02/01", Amount: decimal.New(1, 0),
				FromAccount: "N26", ToAccount: "Sparkasse",
			},
			wantErr: domain.ErrUnknownAccount,
		},
		{
			name: "negative amount",
			input: TransferInput{
				Date: "2021/02/01", Amount: decimal.New(-1, 0),
				FromAccount: "N26", ToAccount: "C24",
			},
			wantErr: domain.ErrNegativeAmount,
		},
		{
			name: "bad date",
			input: TransferInput{
				Date: "01-02-2021", Amount: decimal.New(1, 0),
				FromAccount: "N26", ToAccount: "C24",
			},
			wantErr: domain.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, ledgerRepo, _ := newSeededStore(t)
			saves := ledgerRepo.SaveCalls

			_, err := store.Transfer(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Transfer() error = %v, want %v", err, tt.wantErr)
			}

			// A rejected transfer must not touch the ledger: no partial leg
			// is recorded and nothing is written to disk.
			if len(store.Transactions()) != 8 {
				t.Errorf("Expected ledger untouched, got %d entries", len(store.Transactions()))
			}
			if ledgerRepo.SaveCalls != saves {
				t.Errorf("Expected no ledger write for a rejected transfer")
			}
		})
	}
}

func TestTransfer_SaveFailureLeavesMemoryUntouched(t *testing.T) {
	store, ledgerRepo, _ := newSeededStore(t)
	ledgerRepo.SaveErr = domain.ErrStorage

	_, err := store.Transfer(TransferInput{
		Date:        "2021/02/01",
		Amount:      decimal.RequireFromString("10.00"),
		FromAccount: "N26",
		ToAccount:   "C24",
	})
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("Expected ErrStorage, got %v", err)
	}
	if len(store.Transactions()) != 8 {
		t.Errorf("Expected ledger untouched after failed save, got %d entries", len(store.Transactions()))
	}
}
