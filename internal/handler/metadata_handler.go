package handler

import (
	"net/http"

	"github.com/fedem-p/BudgetApp2.0/internal/service"
	"github.com/labstack/echo/v4"
)

// MetadataHandler handles category and subcategory HTTP requests
type MetadataHandler struct {
	store *service.Store
}

// NewMetadataHandler creates a new MetadataHandler
func NewMetadataHandler(store *service.Store) *MetadataHandler {
	return &MetadataHandler{store: store}
}

// CreateCategory adds a new category name
func (h *MetadataHandler) CreateCategory(c echo.Context) error {
	return h.create(c, h.store.AddCategory)
}

// GetCategories lists all category names
func (h *MetadataHandler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Categories())
}

// DeleteCategory removes a category name
func (h *MetadataHandler) DeleteCategory(c echo.Context) error {
	return h.delete(c, h.store.RemoveCategory)
}

// CreateSubcategory adds a new subcategory name
func (h *MetadataHandler) CreateSubcategory(c echo.Context) error {
	return h.create(c, h.store.AddSubcategory)
}

// GetSubcategories lists all subcategory names
func (h *MetadataHandler) GetSubcategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Subcategories())
}

// DeleteSubcategory removes a subcategory name
func (h *MetadataHandler) DeleteSubcategory(c echo.Context) error {
	return h.delete(c, h.store.RemoveSubcategory)
}

func (h *MetadataHandler) create(c echo.Context, add func(string) error) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Name == nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	}

	if err := add(*req.Name); err != nil {
		return DomainError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"name": *req.Name})
}

func (h *MetadataHandler) delete(c echo.Context, remove func(string) error) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Name == nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	}

	if err := remove(*req.Name); err != nil {
		return DomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
