package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/finance"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	accounts map[string]*entity.BankAccount
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*entity.BankAccount)}
}

func (r *fakeAccountRepo) Create(a *entity.BankAccount) error {
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) Update(a *entity.BankAccount) error {
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) List() ([]*entity.BankAccount, error) {
	var out []*entity.BankAccount
	for _, a := range r.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAccountRepo) Delete(id string) error {
	delete(r.accounts, id)
	return nil
}

type fakeTxRepo struct {
	txs map[string]*entity.BankTransaction
}

func newFakeTxRepo() *fakeTxRepo {
	return &fakeTxRepo{txs: make(map[string]*entity.BankTransaction)}
}

func (r *fakeTxRepo) Create(tx *entity.BankTransaction) error {
	cp := *tx
	r.txs[tx.ID] = &cp
	return nil
}

func (r *fakeTxRepo) GetByID(id string) (*entity.BankTransaction, error) {
	tx, ok := r.txs[id]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (r *fakeTxRepo) Delete(id string) error {
	delete(r.txs, id)
	return nil
}

func inRange(date time.Time, from, to *time.Time) bool {
	if from != nil && date.Before(*from) {
		return false
	}
	if to != nil && date.After(*to) {
		return false
	}
	return true
}

func (r *fakeTxRepo) ListByAccount(accountID string, from, to *time.Time, txType string) ([]*entity.BankTransaction, error) {
	var out []*entity.BankTransaction
	for _, tx := range r.txs {
		if tx.AccountID != accountID {
			continue
		}
		if txType != "" && tx.TxType != txType {
			continue
		}
		if !inRange(tx.Date, from, to) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (r *fakeTxRepo) SumByType(accountID, txType string, from, to *time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, tx := range r.txs {
		if tx.AccountID == accountID && tx.TxType == txType && inRange(tx.Date, from, to) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum, nil
}

func buildFinanceUseCase() (*finance.FinanceUseCase, *fakeTxRepo) {
	txRepo := newFakeTxRepo()
	return finance.NewFinanceUseCase(newFakeAccountRepo(), txRepo), txRepo
}

func createAccount(t *testing.T, uc *finance.FinanceUseCase, opening string) *entity.BankAccount {
	t.Helper()
	account, err := uc.CreateAccount(dto.CreateAccountRequest{
		Name:           "Cuenta corriente",
		BankName:       "Banco Central",
		OpeningBalance: dec(opening),
	})
	require.NoError(t, err)
	return account
}

func addTx(t *testing.T, uc *finance.FinanceUseCase, accountID, txType, amount, date string) *entity.BankTransaction {
	t.Helper()
	tx, err := uc.AddTransaction(accountID, "user-1", dto.AddTransactionRequest{
		TxType: txType,
		Title:  "Asiento de prueba",
		Amount: dec(amount),
		Date:   date,
	})
	require.NoError(t, err)
	return tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuentas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAccount_SaldoInicialNegativoRechazado(t *testing.T) {
	uc, _ := buildFinanceUseCase()

	_, err := uc.CreateAccount(dto.CreateAccountRequest{Name: "X", OpeningBalance: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateAccount(dto.CreateAccountRequest{OpeningBalance: dec("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")
}

func TestUpdateAccount_ParcialSinTocarSaldoInicial(t *testing.T) {
	uc, _ := buildFinanceUseCase()
	account := createAccount(t, uc, "500.00")

	name := "Cuenta de ahorros"
	inactive := false
	updated, err := uc.UpdateAccount(account.ID, dto.UpdateAccountRequest{Name: &name, IsActive: &inactive})
	require.NoError(t, err)

	assert.Equal(t, "Cuenta de ahorros", updated.Name)
	assert.False(t, updated.IsActive)
	assert.True(t, updated.OpeningBalance.Equal(dec("500.00")))
	// Los campos no enviados quedan como estaban
	assert.Equal(t, "Banco Central", updated.BankName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Balance derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestAllTimeSummary_SaldoInicialMasCreditosMenosDebitos(t *testing.T) {
	uc, _ := buildFinanceUseCase()
	account := createAccount(t, uc, "1000.00")

	addTx(t, uc, account.ID, entity.TxTypeCredit, "250.50", "2026-01-10")
	addTx(t, uc, account.ID, entity.TxTypeDebit, "75.25", "2026-01-15")

	summary, err := uc.AllTimeSummary(account.ID)
	require.NoError(t, err)

	assert.True(t, summary.Credits.Equal(dec("250.50")))
	assert.True(t, summary.Debits.Equal(dec("75.25")))
	// 1000 + 250.50 - 75.25 = 1175.25
	assert.True(t, summary.Balance.Equal(dec("1175.25")), "balance: %s", summary.Balance)
}

func TestDeleteTransaction_ElBalanceLoRefleja(t *testing.T) {
	uc, _ := buildFinanceUseCase()
	account := createAccount(t, uc, "100.00")

	tx := addTx(t, uc, account.ID, entity.TxTypeDebit, "40.00", "2026-02-01")

	summary, err := uc.AllTimeSummary(account.ID)
	require.NoError(t, err)
	assert.True(t, summary.Balance.Equal(dec("60.00")))

	require.NoError(t, uc.DeleteTransaction(tx.ID))

	summary, err = uc.AllTimeSummary(account.ID)
	require.NoError(t, err)
	assert.True(t, summary.Balance.Equal(dec("100.00")), "el balance se recalcula sin el asiento borrado")
}

func TestRangedSummary_SoloAsientosDelRango(t *testing.T) {
	uc, _ := buildFinanceUseCase()
	account := createAccount(t, uc, "0")

	addTx(t, uc, account.ID, entity.TxTypeCredit, "100.00", "2026-01-05")
	addTx(t, uc, account.ID, entity.TxTypeCredit, "200.00", "2026-02-05")
	addTx(t, uc, account.ID, entity.TxTypeDebit, "30.00", "2026-02-10")
	addTx(t, uc, account.ID, entity.TxTypeDebit, "999.00", "2026-03-01")

	from, _ := time.Parse(finance.DateLayout, "2026-02-01")
	to, _ := time.Parse(finance.DateLayout, "2026-02-28")

	summary, err := uc.RangedSummary(account.ID, from, to)
	require.NoError(t, err)

	assert.True(t, summary.Credits.Equal(dec("200.00")))
	assert.True(t, summary.Debits.Equal(dec("30.00")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones de asientos
// ──────────────────────────────────────────────────────────────────────────────

func TestAddTransaction_Validaciones(t *testing.T) {
	uc, _ := buildFinanceUseCase()
	account := createAccount(t, uc, "0")

	_, err := uc.AddTransaction(account.ID, "user-1", dto.AddTransactionRequest{
		TxType: "transferencia", Title: "X", Amount: dec("10"), Date: "2026-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "dirección desconocida")

	_, err = uc.AddTransaction(account.ID, "user-1", dto.AddTransactionRequest{
		TxType: entity.TxTypeCredit, Title: "X", Amount: dec("0"), Date: "2026-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto no positivo")

	_, err = uc.AddTransaction(account.ID, "user-1", dto.AddTransactionRequest{
		TxType: entity.TxTypeCredit, Title: "X", Amount: dec("10"), Date: "01/01/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha fuera de formato")

	_, err = uc.AddTransaction("no-existe", "user-1", dto.AddTransactionRequest{
		TxType: entity.TxTypeCredit, Title: "X", Amount: dec("10"), Date: "2026-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListTransactions_FiltroPorDireccion(t *testing.T) {
	uc, _ := buildFinanceUseCase()
	account := createAccount(t, uc, "0")

	addTx(t, uc, account.ID, entity.TxTypeCredit, "10.00", "2026-01-01")
	addTx(t, uc, account.ID, entity.TxTypeDebit, "5.00", "2026-01-02")

	credits, err := uc.ListTransactions(account.ID, nil, nil, entity.TxTypeCredit)
	require.NoError(t, err)
	require.Len(t, credits, 1)
	assert.Equal(t, entity.TxTypeCredit, credits[0].TxType)

	_, err = uc.ListTransactions(account.ID, nil, nil, "otro")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
