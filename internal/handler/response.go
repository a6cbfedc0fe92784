package handler

import (
	"errors"
	"net/http"

	"github.com/fedem-p/BudgetApp2.0/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation = "https://budgetapp.app/errors/validation"
	ErrorTypeNotFound   = "https://budgetapp.app/errors/not-found"
	ErrorTypeConflict   = "https://budgetapp.app/errors/conflict"
	ErrorTypeInternal   = "https://budgetapp.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewConflictError creates a conflict error response
func NewConflictError(c echo.Context, detail string) error {
	return c.JSON(http.StatusConflict, ProblemDetails{
		Type:     ErrorTypeConflict,
		Title:    "Conflict",
		Status:   http.StatusConflict,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// DomainError maps a store error onto the matching problem response:
// duplicates and still-in-use conflicts map to 409, lookups of absent items
// to 404, storage failures to 500 and every validation failure to 400.
func DomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateItem),
		errors.Is(err, domain.ErrDuplicateTransaction),
		errors.Is(err, domain.ErrItemInUse):
		return NewConflictError(c, err.Error())
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return NewNotFoundError(c, err.Error())
	case errors.Is(err, domain.ErrStorage):
		log.Error().Err(err).Msg("Storage failure")
		return NewInternalError(c, "Storage failure")
	default:
		return NewValidationError(c, err.Error(), nil)
	}
}
