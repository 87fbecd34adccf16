package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory representa una categoría de gasto operativo.
type ExpenseCategory struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
}

// Expense representa un gasto operativo de la empresa.
type Expense struct {
	ID         string
	CategoryID string
	Amount     decimal.Decimal // estrictamente positivo
	Note       string
	CreatedBy  string
	CreatedAt  time.Time
}
