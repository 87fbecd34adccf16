package dto

import "github.com/shopspring/decimal"

// CreateAccountRequest body para POST /api/finance/accounts.
type CreateAccountRequest struct {
	Name           string          `json:"name"`
	BankName       string          `json:"bank_name,omitempty"`
	AccountNumber  string          `json:"account_number,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Notes          string          `json:"notes,omitempty"`
}

// UpdateAccountRequest body para PUT /api/finance/accounts/:id.
type UpdateAccountRequest struct {
	Name          *string `json:"name,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// AddTransactionRequest body para POST /api/finance/accounts/:id/transactions.
type AddTransactionRequest struct {
	TxType    string          `json:"tx_type"` // credit | debit
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"` // YYYY-MM-DD
	Reference string          `json:"reference,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// LedgerSummaryResponse totales de un libro sobre su saldo inicial.
type LedgerSummaryResponse struct {
	Credits decimal.Decimal `json:"credits"`
	Debits  decimal.Decimal `json:"debits"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountRow una cuenta con su balance histórico (listado de cuentas).
type AccountRow struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	BankName       string          `json:"bank_name,omitempty"`
	AccountNumber  string          `json:"account_number,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	IsActive       bool            `json:"is_active"`
	Credits        decimal.Decimal `json:"credits"`
	Debits         decimal.Decimal `json:"debits"`
	Balance        decimal.Decimal `json:"balance"`
}
