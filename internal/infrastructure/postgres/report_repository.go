package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el módulo de reportes.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesTotal suma TotalAmount de las ventas del período (cero si no hay filas).
func (r *ReportRepo) SalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE created_at BETWEEN $1 AND $2`,
		from, to,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sales total: %w", err)
	}
	return sum, nil
}

// ExpensesTotal suma los gastos del período (cero si no hay filas).
func (r *ReportRepo) ExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE created_at BETWEEN $1 AND $2`,
		from, to,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("expenses total: %w", err)
	}
	return sum, nil
}

// DailySeries agrupa ventas y gastos por día para el gráfico del dashboard.
// FULL JOIN de ambas series por día; días sin actividad en una serie salen en cero.
func (r *ReportRepo) DailySeries(ctx context.Context, from, to time.Time) ([]repository.DailyTotal, error) {
	query := `
		WITH daily_sales AS (
			SELECT date_trunc('day', created_at) AS day, SUM(total_amount) AS total
			FROM sales WHERE created_at BETWEEN $1 AND $2
			GROUP BY 1
		), daily_expenses AS (
			SELECT date_trunc('day', created_at) AS day, SUM(amount) AS total
			FROM expenses WHERE created_at BETWEEN $1 AND $2
			GROUP BY 1
		)
		SELECT COALESCE(s.day, e.day) AS day,
		       COALESCE(s.total, 0)   AS sales,
		       COALESCE(e.total, 0)   AS expenses
		FROM daily_sales s
		FULL OUTER JOIN daily_expenses e ON s.day = e.day
		ORDER BY day ASC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily series: %w", err)
	}
	defer rows.Close()
	var series []repository.DailyTotal
	for rows.Next() {
		var d repository.DailyTotal
		if err := rows.Scan(&d.Day, &d.Sales, &d.Expenses); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		series = append(series, d)
	}
	return series, rows.Err()
}
