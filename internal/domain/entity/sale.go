package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta.
const (
	SaleTypeRetail    = "retail"
	SaleTypeWholesale = "wholesale"
)

// Métodos de pago.
const (
	PaymentCash = "cash"
	PaymentMomo = "momo" // dinero móvil
	PaymentCard = "card"
)

// Sale representa una venta POS. Se crea primero la cabecera (sin ítems) y los
// ítems se agregan de a uno; SubtotalAmount/TotalAmount se recalculan al
// agregar o quitar cada ítem.
type Sale struct {
	ID             string
	SaleType       string // retail | wholesale
	CustomerName   string
	CustomerPhone  string
	PaymentMethod  string // cash | momo | card
	Discount       decimal.Decimal
	SubtotalAmount decimal.Decimal // Σ line totals
	VATAmount      decimal.Decimal
	TotalAmount    decimal.Decimal // subtotal + IVA - descuento
	Note           string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
