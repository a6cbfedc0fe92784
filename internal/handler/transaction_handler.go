package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fedem-p/BudgetApp2.0/internal/domain"
	"github.com/fedem-p/BudgetApp2.0/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	store *service.Store
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(store *service.Store) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// TransactionRequest carries a full transaction record. Every field is
// required and no extra fields are accepted: the ledger record shape is
// exactly these seven fields.
type TransactionRequest struct {
	Date        *string `json:"date"`
	Type        *string `json:"type"`
	Amount      *string `json:"amount"`
	Account     *string `json:"account"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	Note        *string `json:"note"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Account     string `json:"account"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Note        string `json:"note"`
}

// CreateTransferRequest represents the create transfer request body
type CreateTransferRequest struct {
	Date        *string `json:"date"`
	Amount      *string `json:"amount"`
	FromAccount *string `json:"fromAccount"`
	ToAccount   *string `json:"toAccount"`
	Note        string  `json:"note"`
}

// TransferResponse represents a recorded transfer. The pair ID correlates
// the two legs in the response; it is not part of the ledger records.
type TransferResponse struct {
	PairID   string              `json:"pairId"`
	Withdraw TransactionResponse `json:"withdraw"`
	Deposit  TransactionResponse `json:"deposit"`
}

// CreateTransaction appends a new transaction to the ledger
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	tx, ok, errResp := h.bindTransaction(c)
	if !ok {
		return errResp
	}

	if err := h.store.AddTransaction(tx); err != nil {
		return DomainError(c, err)
	}
	return c.JSON(http.StatusCreated, toTransactionResponse(tx))
}

// GetTransactions lists the full ledger in insertion order
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	transactions := h.store.Transactions()
	response := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		response = append(response, toTransactionResponse(tx))
	}
	return c.JSON(http.StatusOK, response)
}

// DeleteTransaction removes the ledger entry identical to the request body
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	tx, ok, errResp := h.bindTransaction(c)
	if !ok {
		return errResp
	}

	if err := h.store.RemoveTransaction(tx); err != nil {
		return DomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateTransfer records a withdraw/deposit pair between two accounts
func (h *TransactionHandler) CreateTransfer(c echo.Context) error {
	var req CreateTransferRequest
	if err := decodeStrict(c, &req); err != nil {
		return NewValidationError(c, "Invalid request body: "+err.Error(), nil)
	}

	var missing []ValidationError
	for field, value := range map[string]*string{
		"date": req.Date, "amount": req.Amount,
		"fromAccount": req.FromAccount, "toAccount": req.ToAccount,
	} {
		if value == nil {
			missing = append(missing, ValidationError{Field: field, Message: "Field is required"})
		}
	}
	if len(missing) > 0 {
		return NewValidationError(c, "Validation failed", missing)
	}

	amount, err := decimal.NewFromString(*req.Amount)
	if err != nil {
		return NewValidationError(c, fmt.Sprintf("%v: %q", domain.ErrInvalidAmount, *req.Amount), nil)
	}

	result, err := h.store.Transfer(service.TransferInput{
		Date:        *req.Date,
		Amount:      amount,
		FromAccount: *req.FromAccount,
		ToAccount:   *req.ToAccount,
		Note:        req.Note,
	})
	if err != nil {
		return DomainError(c, err)
	}

	return c.JSON(http.StatusCreated, TransferResponse{
		PairID:   uuid.NewString(),
		Withdraw: toTransactionResponse(result.Withdraw),
		Deposit:  toTransactionResponse(result.Deposit),
	})
}

// bindTransaction decodes and shape-checks a full transaction record. When
// the request is rejected it writes the problem response and returns ok
// false together with the write result.
func (h *TransactionHandler) bindTransaction(c echo.Context) (domain.Transaction, bool, error) {
	var req TransactionRequest
	if err := decodeStrict(c, &req); err != nil {
		return domain.Transaction{}, false, NewValidationError(c, fmt.Sprintf("%v: %v", domain.ErrInvalidSchema, err), nil)
	}

	var missing []ValidationError
	for field, value := range map[string]*string{
		"date": req.Date, "type": req.Type, "amount": req.Amount,
		"account": req.Account, "category": req.Category,
		"subcategory": req.Subcategory, "note": req.Note,
	} {
		if value == nil {
			missing = append(missing, ValidationError{Field: field, Message: "Field is required"})
		}
	}
	if len(missing) > 0 {
		return domain.Transaction{}, false, NewValidationError(c, domain.ErrInvalidSchema.Error(), missing)
	}

	amount, err := decimal.NewFromString(*req.Amount)
	if err != nil {
		return domain.Transaction{}, false, NewValidationError(c, fmt.Sprintf("%v: %q", domain.ErrInvalidAmount, *req.Amount), nil)
	}

	return domain.Transaction{
		Date:        *req.Date,
		Type:        domain.TransactionType(*req.Type),
		Amount:      amount,
		Account:     *req.Account,
		Category:    *req.Category,
		Subcategory: *req.Subcategory,
		Note:        *req.Note,
	}, true, nil
}

// decodeStrict decodes a JSON body rejecting unknown fields.
func decodeStrict(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func toTransactionResponse(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		Date:        tx.Date,
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Account:     tx.Account,
		Category:    tx.Category,
		Subcategory: tx.Subcategory,
		Note:        tx.Note,
	}
}
