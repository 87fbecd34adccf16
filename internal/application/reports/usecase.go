package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/finance"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ReportsUseCase reportes de solo lectura: resumen del período y serie diaria
// ventas vs gastos para el dashboard.
type ReportsUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(reportRepo repository.ReportRepository) *ReportsUseCase {
	return &ReportsUseCase{reportRepo: reportRepo}
}

// parseRange interpreta el rango [from, to] inclusivo. Vacíos = últimos 30 días.
func parseRange(in dto.DateRangeRequest) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
	if in.From != "" {
		parsed, err := time.Parse(finance.DateLayout, in.From)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		from = parsed
	}
	if in.To != "" {
		parsed, err := time.Parse(finance.DateLayout, in.To)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		// Fin de día para que el límite superior sea inclusivo
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return from, to, nil
}

// Summary devuelve ventas, gastos y neto del período.
func (uc *ReportsUseCase) Summary(ctx context.Context, in dto.DateRangeRequest) (*dto.SummaryResponse, error) {
	from, to, err := parseRange(in)
	if err != nil {
		return nil, err
	}
	sales, err := uc.reportRepo.SalesTotal(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.reportRepo.ExpensesTotal(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		From:     from.Format(finance.DateLayout),
		To:       to.Format(finance.DateLayout),
		Sales:    sales.Round(2),
		Expenses: expenses.Round(2),
		Net:      sales.Sub(expenses).Round(2),
	}, nil
}

// DailySeries devuelve la serie diaria de ventas y gastos del período.
func (uc *ReportsUseCase) DailySeries(ctx context.Context, in dto.DateRangeRequest) ([]dto.DailyPoint, error) {
	from, to, err := parseRange(in)
	if err != nil {
		return nil, err
	}
	series, err := uc.reportRepo.DailySeries(ctx, from, to)
	if err != nil {
		return nil, err
	}
	points := make([]dto.DailyPoint, 0, len(series))
	for _, row := range series {
		points = append(points, dto.DailyPoint{
			Day:      row.Day.Format(finance.DateLayout),
			Sales:    row.Sales.Round(2),
			Expenses: row.Expenses.Round(2),
		})
	}
	return points, nil
}
