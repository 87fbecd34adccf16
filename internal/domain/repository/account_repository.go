package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// BankAccountRepository define el puerto de persistencia para BankAccount (DIP).
type BankAccountRepository interface {
	Create(account *entity.BankAccount) error
	GetByID(id string) (*entity.BankAccount, error)
	Update(account *entity.BankAccount) error
	List() ([]*entity.BankAccount, error)
}

// BankTransactionRepository define el puerto de persistencia para los asientos
// de las cuentas bancarias. Los asientos son inmutables: alta, baja y consulta.
type BankTransactionRepository interface {
	Create(tx *entity.BankTransaction) error
	GetByID(id string) (*entity.BankTransaction, error)
	Delete(id string) error
	// ListByAccount filtra por rango de fechas inclusivo en ambos extremos;
	// from/to nil = sin límite. txType vacío = ambas direcciones.
	ListByAccount(accountID string, from, to *time.Time, txType string) ([]*entity.BankTransaction, error)
	// SumByType suma los montos de una dirección dentro del rango (cero si no hay filas).
	SumByType(accountID, txType string, from, to *time.Time) (decimal.Decimal, error)
}
