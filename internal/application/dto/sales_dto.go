package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest body para POST /api/sales (cabecera sin ítems).
type CreateSaleRequest struct {
	SaleType      string          `json:"sale_type"`      // retail | wholesale
	PaymentMethod string          `json:"payment_method"` // cash | momo | card
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Discount      decimal.Decimal `json:"discount,omitempty"`
	Note          string          `json:"note,omitempty"`
}

// AddSaleItemRequest body para POST /api/sales/:id/items.
// UnitPrice en cero = tomar el precio del producto según el tipo de venta.
type AddSaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price,omitempty"`
}

// SaleResponse cabecera de venta con totales actuales.
type SaleResponse struct {
	ID             string          `json:"id"`
	SaleType       string          `json:"sale_type"`
	PaymentMethod  string          `json:"payment_method"`
	CustomerName   string          `json:"customer_name,omitempty"`
	CustomerPhone  string          `json:"customer_phone,omitempty"`
	Discount       decimal.Decimal `json:"discount"`
	SubtotalAmount decimal.Decimal `json:"subtotal_amount"`
	VATAmount      decimal.Decimal `json:"vat_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CreatedAt      string          `json:"created_at"`
}
