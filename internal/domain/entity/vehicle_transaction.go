package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de una transacción de vehículo.
const (
	VehicleTxIncome  = "income"
	VehicleTxExpense = "expense"
)

// VehicleTransaction representa un ingreso o gasto fechado de un vehículo.
type VehicleTransaction struct {
	ID        string
	VehicleID string
	TxType    string // income | expense
	Title     string
	Amount    decimal.Decimal // estrictamente positivo
	Date      time.Time
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}
