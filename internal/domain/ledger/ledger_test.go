package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateAmount
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateAmount_PositivoPasa(t *testing.T) {
	assert.NoError(t, ledger.ValidateAmount(dec("0.01")))
	assert.NoError(t, ledger.ValidateAmount(dec("1500.00")))
}

func TestValidateAmount_CeroYNegativoRechazados(t *testing.T) {
	assert.ErrorIs(t, ledger.ValidateAmount(decimal.Zero), domain.ErrInvalidInput)
	assert.ErrorIs(t, ledger.ValidateAmount(dec("-5.00")), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Summarize — balance = saldo inicial + créditos - débitos
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_BalanceConSaldoInicial(t *testing.T) {
	entries := []ledger.Entry{
		{Direction: ledger.Credit, Amount: dec("200.00")},
		{Direction: ledger.Credit, Amount: dec("50.50")},
		{Direction: ledger.Debit, Amount: dec("75.25")},
	}
	s := ledger.Summarize(dec("1000.00"), entries)

	assert.True(t, s.Credits.Equal(dec("250.50")), "créditos: %s", s.Credits)
	assert.True(t, s.Debits.Equal(dec("75.25")), "débitos: %s", s.Debits)
	assert.True(t, s.Balance.Equal(dec("1175.25")), "balance: %s", s.Balance)
}

func TestSummarize_SinAsientos(t *testing.T) {
	s := ledger.Summarize(dec("300.00"), nil)

	assert.True(t, s.Credits.IsZero())
	assert.True(t, s.Debits.IsZero())
	assert.True(t, s.Balance.Equal(dec("300.00")), "sin asientos el balance es el saldo inicial")
}

// El balance puede quedar negativo: el libro refleja sobregiros sin recortarlos.
func TestSummarize_BalanceNegativoPermitido(t *testing.T) {
	entries := []ledger.Entry{
		{Direction: ledger.Debit, Amount: dec("500.00")},
	}
	s := ledger.Summarize(dec("100.00"), entries)

	assert.True(t, s.Balance.Equal(dec("-400.00")), "balance: %s", s.Balance)
}

// El resultado no depende del orden de los asientos.
func TestSummarize_IndependienteDelOrden(t *testing.T) {
	a := []ledger.Entry{
		{Direction: ledger.Credit, Amount: dec("10.00")},
		{Direction: ledger.Debit, Amount: dec("4.00")},
		{Direction: ledger.Credit, Amount: dec("6.00")},
	}
	b := []ledger.Entry{a[2], a[0], a[1]}

	sa := ledger.Summarize(decimal.Zero, a)
	sb := ledger.Summarize(decimal.Zero, b)

	assert.True(t, sa.Balance.Equal(sb.Balance))
	assert.True(t, sa.Credits.Equal(sb.Credits))
	assert.True(t, sa.Debits.Equal(sb.Debits))
}
