package dto

import "github.com/shopspring/decimal"

// CreateVehicleRequest body para POST /api/assets/vehicles.
type CreateVehicleRequest struct {
	Name        string `json:"name"`
	PlateNumber string `json:"plate_number"`
	Description string `json:"description,omitempty"`
}

// AddVehicleTransactionRequest body para POST /api/assets/vehicles/:id/transactions.
type AddVehicleTransactionRequest struct {
	TxType string          `json:"tx_type"` // income | expense
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"` // YYYY-MM-DD
	Notes  string          `json:"notes,omitempty"`
}

// VehicleSummaryResponse ingresos, gastos y neto de un vehículo.
type VehicleSummaryResponse struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}
