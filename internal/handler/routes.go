package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, accountHandler *AccountHandler, metadataHandler *MetadataHandler, transactionHandler *TransactionHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Account routes. Deletes are body-identified because names are
	// user-chosen strings.
	accounts := api.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:name/balance", accountHandler.GetAccountBalance)
	accounts.DELETE("", accountHandler.DeleteAccount)

	// Category routes
	categories := api.Group("/categories")
	categories.POST("", metadataHandler.CreateCategory)
	categories.GET("", metadataHandler.GetCategories)
	categories.DELETE("", metadataHandler.DeleteCategory)

	// Subcategory routes
	subcategories := api.Group("/subcategories")
	subcategories.POST("", metadataHandler.CreateSubcategory)
	subcategories.GET("", metadataHandler.GetSubcategories)
	subcategories.DELETE("", metadataHandler.DeleteSubcategory)

	// Transaction routes. Transactions have no IDs; deletes are identified
	// by the full record.
	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.DELETE("", transactionHandler.DeleteTransaction)
	transactions.POST("/transfers", transactionHandler.CreateTransfer)
}
