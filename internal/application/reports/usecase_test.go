package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/finance"
	"github.com/jhoicas/Gestion-api/internal/application/reports"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fakeReportRepo responde totales fijos y captura el rango consultado.
type fakeReportRepo struct {
	sales    decimal.Decimal
	expenses decimal.Decimal
	series   []repository.DailyTotal

	lastFrom time.Time
	lastTo   time.Time
}

func (r *fakeReportRepo) SalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	r.lastFrom, r.lastTo = from, to
	return r.sales, nil
}

func (r *fakeReportRepo) ExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.expenses, nil
}

func (r *fakeReportRepo) DailySeries(ctx context.Context, from, to time.Time) ([]repository.DailyTotal, error) {
	r.lastFrom, r.lastTo = from, to
	return r.series, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_NetoEsVentasMenosGastos(t *testing.T) {
	repo := &fakeReportRepo{sales: dec("1500.00"), expenses: dec("420.50")}
	uc := reports.NewReportsUseCase(repo)

	summary, err := uc.Summary(context.Background(), dto.DateRangeRequest{From: "2026-08-01", To: "2026-08-31"})
	require.NoError(t, err)

	assert.True(t, summary.Sales.Equal(dec("1500.00")))
	assert.True(t, summary.Expenses.Equal(dec("420.50")))
	assert.True(t, summary.Net.Equal(dec("1079.50")), "neto: %s", summary.Net)
	assert.Equal(t, "2026-08-01", summary.From)
	assert.Equal(t, "2026-08-31", summary.To)
}

func TestSummary_LimiteSuperiorInclusivo(t *testing.T) {
	repo := &fakeReportRepo{sales: decimal.Zero, expenses: decimal.Zero}
	uc := reports.NewReportsUseCase(repo)

	_, err := uc.Summary(context.Background(), dto.DateRangeRequest{From: "2026-08-01", To: "2026-08-31"})
	require.NoError(t, err)

	// El límite superior cubre el día completo del 31
	assert.Equal(t, 31, repo.lastTo.Day())
	assert.Equal(t, 23, repo.lastTo.Hour())
}

func TestSummary_RangoVacioUsaUltimos30Dias(t *testing.T) {
	repo := &fakeReportRepo{sales: decimal.Zero, expenses: decimal.Zero}
	uc := reports.NewReportsUseCase(repo)

	_, err := uc.Summary(context.Background(), dto.DateRangeRequest{})
	require.NoError(t, err)

	days := repo.lastTo.Sub(repo.lastFrom).Hours() / 24
	assert.InDelta(t, 30, days, 0.01)
}

func TestSummary_RangoInvertidoRechazado(t *testing.T) {
	uc := reports.NewReportsUseCase(&fakeReportRepo{})

	_, err := uc.Summary(context.Background(), dto.DateRangeRequest{From: "2026-08-31", To: "2026-08-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummary_FechaMalFormadaRechazada(t *testing.T) {
	uc := reports.NewReportsUseCase(&fakeReportRepo{})

	_, err := uc.Summary(context.Background(), dto.DateRangeRequest{From: "31/08/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// DailySeries
// ──────────────────────────────────────────────────────────────────────────────

func TestDailySeries_FormateaDias(t *testing.T) {
	day1, _ := time.Parse(finance.DateLayout, "2026-08-01")
	day2, _ := time.Parse(finance.DateLayout, "2026-08-02")
	repo := &fakeReportRepo{series: []repository.DailyTotal{
		{Day: day1, Sales: dec("100.00"), Expenses: dec("20.00")},
		{Day: day2, Sales: dec("0"), Expenses: dec("35.00")},
	}}
	uc := reports.NewReportsUseCase(repo)

	points, err := uc.DailySeries(context.Background(), dto.DateRangeRequest{From: "2026-08-01", To: "2026-08-02"})
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, "2026-08-01", points[0].Day)
	assert.True(t, points[0].Sales.Equal(dec("100.00")))
	assert.True(t, points[1].Expenses.Equal(dec("35.00")))
}
