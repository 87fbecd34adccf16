package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain"
)

// Direction distingue los dos sentidos de un asiento: crédito suma al balance,
// débito resta. Los módulos mapean sus propios pares (credit/debit,
// income/expense) a este tipo.
type Direction int

const (
	Credit Direction = iota
	Debit
)

// Entry es la vista mínima de un asiento para el cálculo de balances.
type Entry struct {
	Direction Direction
	Amount    decimal.Decimal
}

// Summary totales de un conjunto de asientos sobre un saldo inicial.
type Summary struct {
	Credits decimal.Decimal
	Debits  decimal.Decimal
	Balance decimal.Decimal // opening + credits - debits
}

// ValidateAmount aplica el invariante de los asientos: monto estrictamente positivo.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Summarize calcula créditos, débitos y balance de un conjunto finito de
// asientos. El resultado es independiente del orden de inserción; la ausencia
// de asientos produce sumas en cero.
func Summarize(opening decimal.Decimal, entries []Entry) Summary {
	credits := decimal.Zero
	debits := decimal.Zero
	for _, e := range entries {
		switch e.Direction {
		case Credit:
			credits = credits.Add(e.Amount)
		case Debit:
			debits = debits.Add(e.Amount)
		}
	}
	return Summary{
		Credits: credits,
		Debits:  debits,
		Balance: opening.Add(credits).Sub(debits),
	}
}
