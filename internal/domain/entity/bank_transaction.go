package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de una transacción bancaria.
const (
	TxTypeCredit = "credit" // abono
	TxTypeDebit  = "debit"  // cargo
)

// BankTransaction representa un movimiento fechado contra una cuenta bancaria.
// Inmutable una vez creada; solo se permite eliminarla.
type BankTransaction struct {
	ID        string
	AccountID string
	TxType    string // credit | debit
	Title     string
	Amount    decimal.Decimal // estrictamente positivo
	Date      time.Time       // fecha contable (solo día)
	Reference string
	Notes     string
	CreatedBy string // UserID
	CreatedAt time.Time
}
