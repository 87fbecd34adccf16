package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/ledger"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// DateLayout formato de fechas contables en la API.
const DateLayout = "2006-01-02"

// FinanceUseCase gestiona cuentas bancarias y su libro de transacciones.
// El balance nunca se almacena: se deriva de saldo inicial + créditos - débitos.
type FinanceUseCase struct {
	accountRepo repository.BankAccountRepository
	txRepo      repository.BankTransactionRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(accountRepo repository.BankAccountRepository, txRepo repository.BankTransactionRepository) *FinanceUseCase {
	return &FinanceUseCase{accountRepo: accountRepo, txRepo: txRepo}
}

// CreateAccount crea una cuenta bancaria con su saldo inicial.
func (uc *FinanceUseCase) CreateAccount(in dto.CreateAccountRequest) (*entity.BankAccount, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OpeningBalance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	account := &entity.BankAccount{
		ID:             uuid.New().String(),
		Name:           in.Name,
		BankName:       in.BankName,
		AccountNumber:  in.AccountNumber,
		OpeningBalance: in.OpeningBalance,
		IsActive:       true,
		Notes:          in.Notes,
		CreatedAt:      time.Now(),
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateAccount aplica cambios parciales a la cuenta. El saldo inicial es inmutable.
func (uc *FinanceUseCase) UpdateAccount(id string, in dto.UpdateAccountRequest) (*entity.BankAccount, error) {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.BankName != nil {
		account.BankName = *in.BankName
	}
	if in.AccountNumber != nil {
		account.AccountNumber = *in.AccountNumber
	}
	if in.Notes != nil {
		account.Notes = *in.Notes
	}
	if in.IsActive != nil {
		account.IsActive = *in.IsActive
	}
	if err := uc.accountRepo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

// ListAccounts devuelve todas las cuentas con su balance histórico y el total general.
func (uc *FinanceUseCase) ListAccounts() ([]dto.AccountRow, decimal.Decimal, error) {
	accounts, err := uc.accountRepo.List()
	if err != nil {
		return nil, decimal.Zero, err
	}
	rows := make([]dto.AccountRow, 0, len(accounts))
	total := decimal.Zero
	for _, a := range accounts {
		summary, err := uc.AllTimeSummary(a.ID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		rows = append(rows, dto.AccountRow{
			ID:             a.ID,
			Name:           a.Name,
			BankName:       a.BankName,
			AccountNumber:  a.AccountNumber,
			OpeningBalance: a.OpeningBalance,
			IsActive:       a.IsActive,
			Credits:        summary.Credits,
			Debits:         summary.Debits,
			Balance:        summary.Balance,
		})
		total = total.Add(summary.Balance)
	}
	return rows, total, nil
}

// AddTransaction registra un asiento inmutable contra la cuenta.
// Valida monto estrictamente positivo, dirección y fecha antes de mutar nada.
func (uc *FinanceUseCase) AddTransaction(accountID, actorID string, in dto.AddTransactionRequest) (*entity.BankTransaction, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if in.TxType != entity.TxTypeCredit && in.TxType != entity.TxTypeDebit {
		return nil, domain.ErrInvalidInput
	}
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := ledger.ValidateAmount(in.Amount); err != nil {
		return nil, err
	}
	date, err := time.Parse(DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	tx := &entity.BankTransaction{
		ID:        uuid.New().String(),
		AccountID: accountID,
		TxType:    in.TxType,
		Title:     in.Title,
		Amount:    in.Amount,
		Date:      date,
		Reference: in.Reference,
		Notes:     in.Notes,
		CreatedBy: actorID,
		CreatedAt: time.Now(),
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// DeleteTransaction elimina el asiento; los balances posteriores lo reflejan
// porque siempre se recalculan desde las filas.
func (uc *FinanceUseCase) DeleteTransaction(txID string) error {
	tx, err := uc.txRepo.GetByID(txID)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	return uc.txRepo.Delete(txID)
}

// AllTimeSummary balance histórico completo de la cuenta:
// saldo inicial + Σ créditos - Σ débitos sin filtro de fechas.
func (uc *FinanceUseCase) AllTimeSummary(accountID string) (*ledger.Summary, error) {
	return uc.summary(accountID, nil, nil)
}

// RangedSummary balance del rango [from, to], inclusivo en ambos extremos.
// El saldo inicial de la cuenta participa igual que en el histórico; los
// llamadores que quieran solo el neto del período restan Credits - Debits.
func (uc *FinanceUseCase) RangedSummary(accountID string, from, to time.Time) (*ledger.Summary, error) {
	return uc.summary(accountID, &from, &to)
}

func (uc *FinanceUseCase) summary(accountID string, from, to *time.Time) (*ledger.Summary, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	credits, err := uc.txRepo.SumByType(accountID, entity.TxTypeCredit, from, to)
	if err != nil {
		return nil, err
	}
	debits, err := uc.txRepo.SumByType(accountID, entity.TxTypeDebit, from, to)
	if err != nil {
		return nil, err
	}
	summary := ledger.Summarize(account.OpeningBalance, []ledger.Entry{
		{Direction: ledger.Credit, Amount: credits},
		{Direction: ledger.Debit, Amount: debits},
	})
	return &summary, nil
}

// ListTransactions asientos de la cuenta, filtrables por rango inclusivo y dirección.
func (uc *FinanceUseCase) ListTransactions(accountID string, from, to *time.Time, txType string) ([]*entity.BankTransaction, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if txType != "" && txType != entity.TxTypeCredit && txType != entity.TxTypeDebit {
		return nil, domain.ErrInvalidInput
	}
	return uc.txRepo.ListByAccount(accountID, from, to, txType)
}
