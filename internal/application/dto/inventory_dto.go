package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU              string          `json:"sku,omitempty"`
	Name             string          `json:"name"`
	CategoryID       string          `json:"category_id,omitempty"`
	TrackMethod      string          `json:"track_method"` // unit | boxed_weight
	UnitPrice        decimal.Decimal `json:"unit_price"`
	WholesalePrice   decimal.Decimal `json:"wholesale_price"`
	MinQuantityAlert int             `json:"min_quantity_alert,omitempty"`
	BoxWeightKg      decimal.Decimal `json:"box_weight_kg,omitempty"` // obligatorio en boxed_weight
}

// UpdateProductRequest body para PUT /api/products/:id. Cambios parciales;
// el método de seguimiento y el peso por caja son inmutables.
type UpdateProductRequest struct {
	SKU              *string          `json:"sku,omitempty"`
	Name             *string          `json:"name,omitempty"`
	CategoryID       *string          `json:"category_id,omitempty"`
	UnitPrice        *decimal.Decimal `json:"unit_price,omitempty"`
	WholesalePrice   *decimal.Decimal `json:"wholesale_price,omitempty"`
	MinQuantityAlert *int             `json:"min_quantity_alert,omitempty"`
}

// StockInRequest body para POST /api/inventory/stock-in.
type StockInRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes,omitempty"`
}

// StockOutRequest body para POST /api/inventory/stock-out.
type StockOutRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"` // sold | disposed | transferred
	Notes     string `json:"notes,omitempty"`
}

// AdjustStockRequest body para POST /api/inventory/adjustments.
type AdjustStockRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"` // con signo: positivo suma, negativo resta
	Notes     string `json:"notes,omitempty"`
}

// ReceiveBoxesRequest body para POST /api/inventory/boxes/receive.
type ReceiveBoxesRequest struct {
	ProductID string `json:"product_id"`
	Boxes     int    `json:"boxes"`
	Notes     string `json:"notes,omitempty"`
}

// ConsumeWeightRequest body para POST /api/inventory/boxes/consume.
type ConsumeWeightRequest struct {
	ProductID string          `json:"product_id"`
	WeightKg  decimal.Decimal `json:"weight_kg"`
	Reason    string          `json:"reason"` // sold | disposed | transferred
	Notes     string          `json:"notes,omitempty"`
}

// ProductStockResponse estado de stock de un producto.
type ProductStockResponse struct {
	ProductID         string          `json:"product_id"`
	TrackMethod       string          `json:"track_method"`
	Quantity          int             `json:"quantity"`
	BoxesInStock      int             `json:"boxes_in_stock,omitempty"`
	BoxRemainingKg    decimal.Decimal `json:"box_remaining_kg,omitempty"`
	AvailableWeightKg decimal.Decimal `json:"available_weight_kg,omitempty"`
	BelowMinAlert     bool            `json:"below_min_alert"`
}
