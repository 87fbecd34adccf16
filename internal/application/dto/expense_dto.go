package dto

import "github.com/shopspring/decimal"

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
}

// CreateExpenseCategoryRequest body para POST /api/expenses/categories.
type CreateExpenseCategoryRequest struct {
	Name string `json:"name"`
}
