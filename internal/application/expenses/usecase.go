package expenses

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/ledger"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ExpensesUseCase gestiona categorías de gasto y gastos operativos.
type ExpensesUseCase struct {
	categoryRepo repository.ExpenseCategoryRepository
	expenseRepo  repository.ExpenseRepository
}

// NewExpensesUseCase construye el caso de uso.
func NewExpensesUseCase(categoryRepo repository.ExpenseCategoryRepository, expenseRepo repository.ExpenseRepository) *ExpensesUseCase {
	return &ExpensesUseCase{categoryRepo: categoryRepo, expenseRepo: expenseRepo}
}

// CreateCategory crea una categoría de gasto. Nombre duplicado retorna ErrDuplicate.
func (uc *ExpensesUseCase) CreateCategory(ctx context.Context, in dto.CreateExpenseCategoryRequest) (*entity.ExpenseCategory, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.ExpenseCategory{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lista todas las categorías de gasto.
func (uc *ExpensesUseCase) ListCategories(ctx context.Context) ([]*entity.ExpenseCategory, error) {
	return uc.categoryRepo.List()
}

// CreateExpense registra un gasto. El monto debe ser estrictamente positivo y
// la categoría debe existir.
func (uc *ExpensesUseCase) CreateExpense(ctx context.Context, actorID string, in dto.CreateExpenseRequest) (*entity.Expense, error) {
	if in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := ledger.ValidateAmount(in.Amount); err != nil {
		return nil, err
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	expense := &entity.Expense{
		ID:         uuid.New().String(),
		CategoryID: in.CategoryID,
		Amount:     in.Amount.Round(2),
		Note:       in.Note,
		CreatedBy:  actorID,
		CreatedAt:  time.Now(),
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense elimina un gasto.
func (uc *ExpensesUseCase) DeleteExpense(ctx context.Context, id string) error {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(id)
}

// ListExpenses lista gastos filtrados por rango de fechas y categoría.
func (uc *ExpensesUseCase) ListExpenses(ctx context.Context, from, to *time.Time, categoryID string, page dto.PageRequest) ([]*entity.Expense, error) {
	page.DefaultPage()
	return uc.expenseRepo.List(from, to, categoryID, page.Limit, page.Offset)
}
