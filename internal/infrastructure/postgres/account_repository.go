package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)
var _ repository.BankTransactionRepository = (*BankTransactionRepo)(nil)

// BankAccountRepo implementación de BankAccountRepository sobre PostgreSQL.
type BankAccountRepo struct {
	q Querier
}

// NewBankAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

// Create persiste una cuenta bancaria.
func (r *BankAccountRepo) Create(account *entity.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (id, name, bank_name, account_number, opening_balance, is_active, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.BankName, account.AccountNumber,
		account.OpeningBalance, account.IsActive, account.Notes, account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *BankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	query := `
		SELECT id, name, bank_name, account_number, opening_balance, is_active, notes, created_at
		FROM bank_accounts WHERE id = $1`
	var a entity.BankAccount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.BankName, &a.AccountNumber, &a.OpeningBalance,
		&a.IsActive, &a.Notes, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account: %w", err)
	}
	return &a, nil
}

// Update actualiza los datos de una cuenta (incluido el saldo inicial).
func (r *BankAccountRepo) Update(account *entity.BankAccount) error {
	query := `
		UPDATE bank_accounts SET name = $2, bank_name = $3, account_number = $4,
			opening_balance = $5, is_active = $6, notes = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.BankName, account.AccountNumber,
		account.OpeningBalance, account.IsActive, account.Notes,
	)
	if err != nil {
		return fmt.Errorf("update bank account: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todas las cuentas ordenadas por nombre.
func (r *BankAccountRepo) List() ([]*entity.BankAccount, error) {
	query := `
		SELECT id, name, bank_name, account_number, opening_balance, is_active, notes, created_at
		FROM bank_accounts ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankAccount
	for rows.Next() {
		var a entity.BankAccount
		if err := rows.Scan(&a.ID, &a.Name, &a.BankName, &a.AccountNumber, &a.OpeningBalance,
			&a.IsActive, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// BankTransactionRepo implementación de BankTransactionRepository sobre PostgreSQL.
type BankTransactionRepo struct {
	q Querier
}

// NewBankTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBankTransactionRepository(q Querier) *BankTransactionRepo {
	return &BankTransactionRepo{q: q}
}

// Create persiste un asiento bancario.
func (r *BankTransactionRepo) Create(tx *entity.BankTransaction) error {
	query := `
		INSERT INTO bank_transactions (id, account_id, tx_type, title, amount, date, reference, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.AccountID, tx.TxType, tx.Title, tx.Amount, tx.Date,
		tx.Reference, tx.Notes, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bank transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *BankTransactionRepo) GetByID(id string) (*entity.BankTransaction, error) {
	query := `
		SELECT id, account_id, tx_type, title, amount, date, reference, notes, created_by, created_at
		FROM bank_transactions WHERE id = $1`
	var t entity.BankTransaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.AccountID, &t.TxType, &t.Title, &t.Amount, &t.Date,
		&t.Reference, &t.Notes, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank transaction: %w", err)
	}
	return &t, nil
}

// Delete elimina un asiento por ID.
func (r *BankTransactionRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM bank_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bank transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByAccount lista asientos de una cuenta. from/to nil = sin límite; el
// rango es inclusivo en ambos extremos. txType vacío = ambas direcciones.
func (r *BankTransactionRepo) ListByAccount(accountID string, from, to *time.Time, txType string) ([]*entity.BankTransaction, error) {
	query := `
		SELECT id, account_id, tx_type, title, amount, date, reference, notes, created_by, created_at
		FROM bank_transactions
		WHERE account_id = $1
		  AND ($2::date IS NULL OR date >= $2)
		  AND ($3::date IS NULL OR date <= $3)
		  AND ($4 = '' OR tx_type = $4)
		ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, accountID, from, to, txType)
	if err != nil {
		return nil, fmt.Errorf("list bank transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankTransaction
	for rows.Next() {
		var t entity.BankTransaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.TxType, &t.Title, &t.Amount, &t.Date,
			&t.Reference, &t.Notes, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bank transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// SumByType suma los montos de una dirección dentro del rango inclusivo (cero si no hay filas).
func (r *BankTransactionRepo) SumByType(accountID, txType string, from, to *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM bank_transactions
		WHERE account_id = $1 AND tx_type = $2
		  AND ($3::date IS NULL OR date >= $3)
		  AND ($4::date IS NULL OR date <= $4)`
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, accountID, txType, from, to).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum bank transactions: %w", err)
	}
	return sum, nil
}
