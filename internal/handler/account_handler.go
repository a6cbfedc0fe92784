package handler

import (
	"net/http"

	"github.com/fedem-p/BudgetApp2.0/internal/service"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	store *service.Store
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(store *service.Store) *AccountHandler {
	return &AccountHandler{store: store}
}

// NameRequest identifies an account, category or subcategory by name. The
// name rides in the body rather than the path because the empty string is a
// legal category and subcategory name.
type NameRequest struct {
	Name *string `json:"name"`
}

// AccountResponse represents an account and its derived balance
type AccountResponse struct {
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

// CreateAccount adds a new account name
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Name == nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	}

	if err := h.store.AddAccount(*req.Name); err != nil {
		return DomainError(c, err)
	}
	return c.JSON(http.StatusCreated, AccountResponse{
		Name:    *req.Name,
		Balance: h.store.AccountBalance(*req.Name).StringFixed(2),
	})
}

// GetAccounts lists all accounts with their balances
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	accounts := h.store.Accounts()
	response := make([]AccountResponse, 0, len(accounts))
	for _, name := range accounts {
		response = append(response, AccountResponse{
			Name:    name,
			Balance: h.store.AccountBalance(name).StringFixed(2),
		})
	}
	return c.JSON(http.StatusOK, response)
}

// GetAccountBalance returns the balance of a single account
func (h *AccountHandler) GetAccountBalance(c echo.Context) error {
	name := c.Param("name")
	if !h.store.HasAccount(name) {
		return NewNotFoundError(c, "Unknown account: "+name)
	}
	return c.JSON(http.StatusOK, AccountResponse{
		Name:    name,
		Balance: h.store.AccountBalance(name).StringFixed(2),
	})
}

// DeleteAccount removes an account name
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Name == nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	}

	if err := h.store.RemoveAccount(*req.Name); err != nil {
		return DomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
