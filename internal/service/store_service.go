package service

import (
	"fmt"
	"slices"
	"sync"

	"github.com/fedem-p/BudgetApp2.0/internal/domain"
	"github.com/shopspring/decimal"
)

// Store owns the in-memory copy of the metadata and the ledger and is the
// only writer of the two data files. Every mutation validates first, writes
// the affected file through, and only then commits the in-memory state, so
// memory and disk never diverge on a failed save.
//
// All public operations are safe for concurrent use: the original store ran
// on a single GUI thread, but here it sits behind an HTTP server.
type Store struct {
	ledgerRepo domain.LedgerRepository
	metaRepo   domain.MetadataRepository

	mu           sync.RWMutex
	meta         *domain.Metadata
	transactions []domain.Transaction
	balances     map[string]decimal.Decimal
}

// NewStore creates a Store over the given repositories. Initialize must be
// called before any other operation.
func NewStore(ledgerRepo domain.LedgerRepository, metaRepo domain.MetadataRepository) *Store {
	return &Store{
		ledgerRepo: ledgerRepo,
		metaRepo:   metaRepo,
		balances:   make(map[string]decimal.Decimal),
	}
}

// DataDirEmpty reports whether neither data file exists yet. A directory
// holding only one of the two files is not considered empty.
func (s *Store) DataDirEmpty() bool {
	return !s.ledgerRepo.Exists() && !s.metaRepo.Exists()
}

// Initialize seeds both data files with the example dataset when neither
// exists, then loads both into memory. When exactly one file is present the
// store refuses to guess and fails with a storage error naming the gap.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledgerExists := s.ledgerRepo.Exists()
	metaExists := s.metaRepo.Exists()

	switch {
	case !ledgerExists && !metaExists:
		if err := s.metaRepo.Save(domain.ExampleMetadata()); err != nil {
			return err
		}
		if err := s.ledgerRepo.Save(domain.ExampleTransactions()); err != nil {
			return err
		}
	case !ledgerExists:
		return fmt.Errorf("%w: metadata file exists but the ledger file is missing", domain.ErrStorage)
	case !metaExists:
		return fmt.Errorf("%w: ledger file exists but the metadata file is missing", domain.ErrStorage)
	}

	meta, err := s.metaRepo.Load()
	if err != nil {
		return err
	}
	transactions, err := s.ledgerRepo.Load()
	if err != nil {
		return err
	}

	s.meta = meta
	s.transactions = transactions
	s.balances = make(map[string]decimal.Decimal)
	return nil
}

// Accounts returns a copy of the account names, in insertion order.
func (s *Store) Accounts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.meta.Accounts)
}

// Categories returns a copy of the category names, in insertion order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.meta.Categories)
}

// Subcategories returns a copy of the subcategory names, in insertion order.
func (s *Store) Subcategories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.meta.Subcategories)
}

// Transactions returns a copy of the ledger, in insertion order.
func (s *Store) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.transactions)
}

// HasAccount reports whether the account name is known.
func (s *Store) HasAccount(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.meta.Accounts, name)
}

// AccountBalance returns the account's net balance: the sum of the signed
// amounts of every transaction on the account, rounded to two decimal
// places. Balances are computed lazily and cached per account; transaction
// mutations drop the affected account's cached value. An account with no
// transactions balances to zero.
func (s *Store) AccountBalance(account string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	if balance, ok := s.balances[account]; ok {
		return balance
	}

	balance := decimal.Zero
	for _, tx := range s.transactions {
		if tx.Account == account {
			balance = balance.Add(tx.SignedAmount())
		}
	}
	balance = balance.Round(2)
	s.balances[account] = balance
	return balance
}

// AddAccount appends a new account name and writes the metadata through.
func (s *Store) AddAccount(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := domain.CheckAddable(name, s.meta.Accounts); err != nil {
		return err
	}
	updated := s.meta.Clone()
	updated.Accounts = append(updated.Accounts, name)
	return s.commitMetadata(updated)
}

// RemoveAccount removes an account name. It fails while any transaction
// still references the account.
func (s *Store) RemoveAccount(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := domain.CheckRemovable(name, s.meta.Accounts); err != nil {
		return err
	}
	if domain.AccountInUse(name, s.transactions) {
		return fmt.Errorf("%w: account %q", domain.ErrItemInUse, name)
	}
	updated := s.meta.Clone()
	updated.Accounts = removeFirst(updated.Accounts, name)
	if err := s.commitMetadata(updated); err != nil {
		return err
	}
	delete(s.balances, name)
	return nil
}

// AddCategory appends a new category name and writes the metadata through.
func (s *Store) AddCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := domain.CheckAddable(name, s.meta.Categories); err != nil {
		return err
	}
	updated := s.meta.Clone()
	updated.Categories = append(updated.Categories, name)
	return s.commitMetadata(updated)
}

// RemoveCategory removes a category name. It fails while any transaction
// still references the category.
func (s *Store) RemoveCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := domain.CheckRemovable(name, s.meta.Categories); err != nil {
		return err
	}
	if domain.CategoryInUse(name, s.transactions) {
		return fmt.Errorf("%w: category %q", domain.ErrItemInUse, name)
	}
	updated := s.meta.Clone()
	updated.Categories = removeFirst(updated.Categories, name)
	return s.commitMetadata(updated)
}

// AddSubcategory appends a new subcategory name and writes the metadata
// through.
func (s *Store) AddSubcategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := domain.CheckAddable(name, s.meta.Subcategories); err != nil {
		return err
	}
	updated := s.meta.Clone()
	updated.Subcategories = append(updated.Subcategories, name)
	return s.commitMetadata(updated)
}

// RemoveSubcategory removes a subcategory name. It fails while any
// transaction still references the subcategory.
func (s *Store) RemoveSubcategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := domain.CheckRemovable(name, s.meta.Subcategories); err != nil {
		return err
	}
	if domain.SubcategoryInUse(name, s.transactions) {
		return fmt.Errorf("%w: subcategory %q", domain.ErrItemInUse, name)
	}
	updated := s.meta.Clone()
	updated.Subcategories = removeFirst(updated.Subcategories, name)
	return s.commitMetadata(updated)
}

// AddTransaction validates and appends a transaction, then writes the ledger
// through. An exact duplicate of an existing ledger entry is rejected.
func (s *Store) AddTransaction(tx domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.transactions {
		if existing.Equal(tx) {
			return fmt.Errorf("%w: identical entry already in ledger", domain.ErrDuplicateTransaction)
		}
	}
	if err := domain.ValidateTransaction(tx, s.meta); err != nil {
		return err
	}
	return s.commitLedger(append(slices.Clone(s.transactions), tx), tx.Account)
}

// RemoveTransaction removes the first ledger entry structurally equal to tx
// and writes the ledger through.
func (s *Store) RemoveTransaction(tx domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.transactions {
		if existing.Equal(tx) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: no identical entry in ledger", domain.ErrTransactionNotFound)
	}
	updated := slices.Delete(slices.Clone(s.transactions), idx, idx+1)
	return s.commitLedger(updated, tx.Account)
}

// commitMetadata writes the updated metadata through and swaps it in.
// Callers hold the write lock.
func (s *Store) commitMetadata(updated *domain.Metadata) error {
	if err := s.metaRepo.Save(updated); err != nil {
		return err
	}
	s.meta = updated
	return nil
}

// commitLedger writes the updated ledger through, swaps it in and drops the
// cached balances of the touched accounts. Callers hold the write lock.
func (s *Store) commitLedger(updated []domain.Transaction, accounts ...string) error {
	if err := s.ledgerRepo.Save(updated); err != nil {
		return err
	}
	s.transactions = updated
	for _, account := range accounts {
		delete(s.balances, account)
	}
	return nil
}

func removeFirst(list []string, name string) []string {
	if i := slices.Index(list, name); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}
