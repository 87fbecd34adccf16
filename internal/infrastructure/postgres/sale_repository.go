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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, sale_type, customer_name, customer_phone, payment_method, discount,
	subtotal_amount, vat_amount, total_amount, note, created_by, created_at, updated_at`

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.SaleType, &s.CustomerName, &s.CustomerPhone, &s.PaymentMethod, &s.Discount,
		&s.SubtotalAmount, &s.VATAmount, &s.TotalAmount, &s.Note, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, sale_type, customer_name, customer_phone, payment_method, discount,
			subtotal_amount, vat_amount, total_amount, note, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.SaleType, sale.CustomerName, sale.CustomerPhone, sale.PaymentMethod,
		sale.Discount, sale.SubtotalAmount, sale.VATAmount, sale.TotalAmount, sale.Note,
		sale.CreatedBy, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetForUpdate bloquea la cabecera de la venta (SELECT FOR UPDATE) dentro de una tx.
// Venta inexistente retorna ErrNotFound.
func (r *SaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 FOR UPDATE`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("lock sale: %w", err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// UpdateTotals persiste subtotal, IVA y total recalculados.
func (r *SaleRepo) UpdateTotals(sale *entity.Sale) error {
	query := `
		UPDATE sales SET subtotal_amount = $2, vat_amount = $3, total_amount = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.SubtotalAmount, sale.VATAmount, sale.TotalAmount, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale totals: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ventas filtradas por rango de fechas inclusivo, las más recientes primero.
func (r *SaleRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + `
		FROM sales
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at <= $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.SaleType, &s.CustomerName, &s.CustomerPhone, &s.PaymentMethod, &s.Discount,
			&s.SubtotalAmount, &s.VATAmount, &s.TotalAmount, &s.Note, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetItemByID obtiene una línea de venta por ID.
func (r *SaleRepo) GetItemByID(id string) (*entity.SaleItem, error) {
	query := `SELECT id, sale_id, product_id, quantity, unit_price, created_at FROM sale_items WHERE id = $1`
	var i entity.SaleItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.SaleID, &i.ProductID, &i.Quantity, &i.UnitPrice, &i.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale item: %w", err)
	}
	return &i, nil
}

// DeleteItem elimina una línea de venta.
func (r *SaleRepo) DeleteItem(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sale_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListItems lista las líneas de una venta en orden de inserción.
func (r *SaleRepo) ListItems(saleID string) ([]*entity.SaleItem, error) {
	query := `SELECT id, sale_id, product_id, quantity, unit_price, created_at
		FROM sale_items WHERE sale_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var i entity.SaleItem
		if err := rows.Scan(&i.ID, &i.SaleID, &i.ProductID, &i.Quantity, &i.UnitPrice, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// SumLineTotals devuelve Σ(quantity × unit_price) de los ítems de la venta (cero si no hay).
func (r *SaleRepo) SumLineTotals(saleID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity * unit_price), 0) FROM sale_items WHERE sale_id = $1`, saleID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sale items: %w", err)
	}
	return sum, nil
}
