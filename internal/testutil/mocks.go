// Package testutil provides hand-written repository mocks shared by the
// service and handler tests.
package testutil

import (
	"fmt"
	"slices"

	"github.com/fedem-p/BudgetApp2.0/internal/domain"
)

// MockLedgerRepository is an in-memory implementation of
// domain.LedgerRepository.
type MockLedgerRepository struct {
	Present   bool
	Saved     []domain.Transaction
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// NewMockLedgerRepository creates an empty MockLedgerRepository.
func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{}
}

// SeededMockLedgerRepository creates a MockLedgerRepository pre-loaded with
// the example dataset.
func SeededMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{Present: true, Saved: domain.ExampleTransactions()}
}

// Exists reports whether the mock holds a saved ledger.
func (m *MockLedgerRepository) Exists() bool {
	return m.Present
}

// Load returns the saved transactions.
func (m *MockLedgerRepository) Load() ([]domain.Transaction, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if !m.Present {
		return nil, fmt.Errorf("%w: ledger file missing", domain.ErrStorage)
	}
	return slices.Clone(m.Saved), nil
}

// Save stores the transactions in memory.
func (m *MockLedgerRepository) Save(transactions []domain.Transaction) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = slices.Clone(transactions)
	m.Present = true
	return nil
}

// MockMetadataRepository is an in-memory implementation of
// domain.MetadataRepository.
type MockMetadataRepository struct {
	Present   bool
	Saved     *domain.Metadata
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// NewMockMetadataRepository creates an empty MockMetadataRepository.
func NewMockMetadataRepository() *MockMetadataRepository {
	return &MockMetadataRepository{}
}

// SeededMockMetadataRepository creates a MockMetadataRepository pre-loaded
// with the example dataset.
func SeededMockMetadataRepository() *MockMetadataRepository {
	return &MockMetadataRepository{Present: true, Saved: domain.ExampleMetadata()}
}

// Exists reports whether the mock holds saved metadata.
func (m *MockMetadataRepository) Exists() bool {
	return m.Present
}

// Load returns the saved metadata.
func (m *MockMetadataRepository) Load() (*domain.Metadata, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if !m.Present {
		return nil, fmt.Errorf("%w: metadata file missing", domain.ErrStorage)
	}
	return m.Saved.Clone(), nil
}

// Save stores the metadata in memory.
func (m *MockMetadataRepository) Save(meta *domain.Metadata) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = meta.Clone()
	m.Present = true
	return nil
}
