package domain

import "github.com/shopspring/decimal"

// Example dataset written on first run, when neither data file exists yet.
// The default balances derived from it (N26 34.50, C24 50.00, Wallet 15.98)
// are part of the first-run contract and covered by tests.

// ExampleMetadata returns the metadata seeded on first run.
func ExampleMetadata() *Metadata {
	return &Metadata{
		Accounts: []string{"N26", "C24", "Wallet"},
		Categories: []string{
			"salary", "gift", "bar", "transport", "grocery", "banktransfer", "",
		},
		Subcategories: []string{
			"food", "evotec", "family", "alcohol", "public transport", "",
		},
	}
}

// ExampleTransactions returns the ledger seeded on first run.
func ExampleTransactions() []Transaction {
	return []Transaction{
		{Date: "2018/01/03", Type: TransactionTypeIncome, Amount: amt("94.00"), Account: "N26", Category: "salary", Subcategory: "evotec", Note: "may"},
		{Date: "2018/01/02", Type: TransactionTypeIncome, Amount: amt("39.48"), Account: "Wallet", Category: "gift", Subcategory: "family", Note: "christmas"},
		{Date: "2018/05/11", Type: TransactionTypeExpense, Amount: amt("7.00"), Account: "Wallet", Category: "bar", Subcategory: "alcohol", Note: "beer"},
		{Date: "2018/05/18", Type: TransactionTypeExpense, Amount: amt("9.50"), Account: "N26", Category: "transport", Subcategory: "public transport", Note: "bus"},
		{Date: "2018/05/11", Type: TransactionTypeExpense, Amount: amt("7.00"), Account: "Wallet", Category: "bar", Subcategory: "alcohol", Note: "wine"},
		{Date: "2018/05/18", Type: TransactionTypeExpense, Amount: amt("9.50"), Account: "Wallet", Category: "grocery", Subcategory: "food", Note: "penny"},
		{Date: "2020/12/10", Type: TransactionTypeWithdraw, Amount: amt("50.00"), Account: "N26", Category: BankTransferCategory, Subcategory: "", Note: "to Wallet"},
		{Date: "2020/12/16", Type: TransactionTypeDeposit, Amount: amt("50.00"), Account: "C24", Category: BankTransferCategory, Subcategory: "", Note: "from room"},
	}
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
