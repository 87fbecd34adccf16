package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyTotal un punto de la serie diaria ventas vs gastos.
type DailyTotal struct {
	Day      time.Time
	Sales    decimal.Decimal
	Expenses decimal.Decimal
}

// ReportRepository consultas de solo lectura para el módulo de reportes.
type ReportRepository interface {
	// SalesTotal suma TotalAmount de las ventas del período (cero si no hay filas).
	SalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// ExpensesTotal suma los gastos del período.
	ExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// DailySeries agrupa ventas y gastos por día para el gráfico del dashboard.
	DailySeries(ctx context.Context, from, to time.Time) ([]DailyTotal, error)
}
