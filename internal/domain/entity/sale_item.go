package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem representa una línea de venta: producto, cantidad y precio unitario.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}

// LineTotal devuelve cantidad × precio unitario.
func (i *SaleItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(int64(i.Quantity)).Mul(i.UnitPrice)
}
