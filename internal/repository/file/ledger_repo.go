// Package file implements the store repositories over plain files in a
// single data directory: the ledger as a CSV file and the metadata as a
// JSON document.
package file

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/fedem-p/BudgetApp2.0/internal/domain"
	"github.com/shopspring/decimal"
)

// LedgerFileName is the name of the ledger file inside the data directory.
const LedgerFileName = "data.csv"

// ledgerHeader is the exact column set of the ledger file, in order.
var ledgerHeader = []string{"date", "type", "amount", "account", "category", "subcategory", "note"}

// LedgerRepository persists transactions as a CSV file.
type LedgerRepository struct {
	path string
}

// NewLedgerRepository creates a LedgerRepository rooted at dataDir.
func NewLedgerRepository(dataDir string) *LedgerRepository {
	return &LedgerRepository{path: filepath.Join(dataDir, LedgerFileName)}
}

// Exists reports whether the ledger file is present.
func (r *LedgerRepository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// Load reads all transactions, preserving file order. Empty cells load as
// empty strings; an empty amount cell loads as zero.
func (r *LedgerRepository) Load() ([]domain.Transaction, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrStorage, r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(ledgerHeader)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrStorage, r.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", domain.ErrStorage, r.path)
	}
	if !slices.Equal(rows[0], ledgerHeader) {
		return nil, fmt.Errorf("%w: %s: header %v, want %v", domain.ErrStorage, r.path, rows[0], ledgerHeader)
	}

	transactions := make([]domain.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		amount := decimal.Zero
		if row[2] != "" {
			amount, err = decimal.NewFromString(row[2])
			if err != nil {
				return nil, fmt.Errorf("%w: %s: row %d: bad amount %q", domain.ErrStorage, r.path, i+2, row[2])
			}
		}
		transactions = append(transactions, domain.Transaction{
			Date:        row[0],
			Type:        domain.TransactionType(row[1]),
			Amount:      amount,
			Account:     row[3],
			Category:    row[4],
			Subcategory: row[5],
			Note:        row[6],
		})
	}
	return transactions, nil
}

// Save replaces the ledger file with the given transactions. Amounts are
// written with decimal.String, which preserves the scale they were parsed
// with, so an unmodified load/save cycle reproduces the file byte for byte.
func (r *LedgerRepository) Save(transactions []domain.Transaction) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ledgerHeader); err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, r.path, err)
	}
	for _, tx := range transactions {
		row := []string{
			tx.Date,
			string(tx.Type),
			tx.Amount.String(),
			tx.Account,
			tx.Category,
			tx.Subcategory,
			tx.Note,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, r.path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, r.path, err)
	}

	if err := writeAtomic(r.path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, r.path, err)
	}
	return nil
}
