package service

import (
	"fmt"
	"slices"

	"github.com/fedem-p/BudgetApp2.0/internal/domain"
	"github.com/shopspring/decimal"
)

// TransferInput holds the input for moving funds between two accounts.
type TransferInput struct {
	Date        string
	Amount      decimal.Decimal
	FromAccount string
	ToAccount   string
	Note        string
}

// TransferResult holds the two ledger entries a transfer was recorded as.
type TransferResult struct {
	Withdraw domain.Transaction
	Deposit  domain.Transaction
}

// Transfer records a withdraw leg on the source account and a deposit leg on
// the destination account, both under the reserved banktransfer category and
// the empty subcategory. Both legs are validated before either is appended
// and the ledger is written once, so a failing leg leaves it untouched.
func (s *Store) Transfer(input TransferInput) (*TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.FromAccount == "" || input.ToAccount == "" {
		return nil, domain.ErrAccountNotSelected
	}
	if input.FromAccount == input.ToAccount {
		return nil, fmt.Errorf("%w: %q", domain.ErrSameAccountTransfer, input.FromAccount)
	}

	withdraw := domain.Transaction{
		Date:        input.Date,
		Type:        domain.TransactionTypeWithdraw,
		Amount:      input.Amount,
		Account:     input.FromAccount,
		Category:    domain.BankTransferCategory,
		Subcategory: "",
		Note:        input.Note,
	}
	deposit := domain.Transaction{
		Date:        input.Date,
		Type:        domain.TransactionTypeDeposit,
		Amount:      input.Amount,
		Account:     input.ToAccount,
		Category:    domain.BankTransferCategory,
		Subcategory: "",
		Note:        input.Note,
	}

	for _, leg := range []domain.Transaction{withdraw, deposit} {
		if err := domain.ValidateTransaction(leg, s.meta); err != nil {
			return nil, err
		}
		for _, existing := range s.transactions {
			if existing.Equal(leg) {
				return nil, fmt.Errorf("%w: identical entry already in ledger", domain.ErrDuplicateTransaction)
			}
		}
	}

	updated := append(slices.Clone(s.transactions), withdraw, deposit)
	if err := s.commitLedger(updated, input.FromAccount, input.ToAccount); err != nil {
		return nil, err
	}
	return &TransferResult{Withdraw: withdraw, Deposit: deposit}, nil
}
