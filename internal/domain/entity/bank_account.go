package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount representa una cuenta bancaria, billetera móvil o caja de efectivo.
// OpeningBalance es el saldo inicial; el saldo actual se deriva de las transacciones.
type BankAccount struct {
	ID             string
	Name           string // ej. "Ecobank", "MoMo", "Caja"
	BankName       string
	AccountNumber  string
	OpeningBalance decimal.Decimal
	IsActive       bool
	Notes          string
	CreatedAt      time.Time
}
