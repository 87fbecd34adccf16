package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ExpenseCategoryRepository define el puerto de persistencia para categorías de gasto.
type ExpenseCategoryRepository interface {
	Create(category *entity.ExpenseCategory) error
	GetByID(id string) (*entity.ExpenseCategory, error)
	List() ([]*entity.ExpenseCategory, error)
	Delete(id string) error
}

// ExpenseRepository define el puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Delete(id string) error
	List(from, to *time.Time, categoryID string, limit, offset int) ([]*entity.Expense, error)
	SumAmount(from, to *time.Time) (decimal.Decimal, error)
}
