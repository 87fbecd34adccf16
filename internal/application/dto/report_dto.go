package dto

import "github.com/shopspring/decimal"

// SummaryResponse totales del período para el reporte general.
type SummaryResponse struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// DailyPoint un día de la serie ventas vs gastos.
type DailyPoint struct {
	Day      string          `json:"day"` // YYYY-MM-DD
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
}
