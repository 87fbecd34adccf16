package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN         = "IN"         // entrada (recepción)
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste compensatorio
)

// Motivos de salida de stock.
const (
	OutReasonSold        = "sold"
	OutReasonDisposed    = "disposed"
	OutReasonTransferred = "transferred"
)

// StockMovement representa un ajuste de entrada o salida sobre el saldo de un
// producto. El libro de movimientos es append-only: nunca se elimina un
// movimiento; una corrección se registra como ADJUSTMENT compensatorio.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string          // IN | OUT | ADJUSTMENT
	Quantity  int             // positivo entrada/ajuste+, negativo salida/ajuste-
	UnitPrice decimal.Decimal // precio de compra en entradas; cero en salidas
	WeightKg  decimal.Decimal // kg movidos (productos boxed_weight); cero en método unit
	Reason    string          // sold | disposed | transferred (solo OUT)
	Reference string          // ej. ID de la venta que generó la salida
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}
