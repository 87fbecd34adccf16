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

var _ repository.VehicleRepository = (*VehicleRepo)(nil)
var _ repository.VehicleTransactionRepository = (*VehicleTransactionRepo)(nil)

// VehicleRepo implementación de VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

// Create persiste un vehículo. Placa duplicada retorna ErrDuplicate.
func (r *VehicleRepo) Create(vehicle *entity.Vehicle) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO vehicles (id, name, plate_number, description, created_at) VALUES ($1, $2, $3, $4, $5)`,
		vehicle.ID, vehicle.Name, vehicle.PlateNumber, vehicle.Description, vehicle.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID.
func (r *VehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, plate_number, description, created_at FROM vehicles WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.PlateNumber, &v.Description, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

// GetByPlate obtiene un vehículo por placa.
func (r *VehicleRepo) GetByPlate(plateNumber string) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, plate_number, description, created_at FROM vehicles WHERE plate_number = $1`, plateNumber,
	).Scan(&v.ID, &v.Name, &v.PlateNumber, &v.Description, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle by plate: %w", err)
	}
	return &v, nil
}

// List lista todos los vehículos ordenados por nombre.
func (r *VehicleRepo) List() ([]*entity.Vehicle, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, plate_number, description, created_at FROM vehicles ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.PlateNumber, &v.Description, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Delete elimina un vehículo por ID.
func (r *VehicleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}

// VehicleTransactionRepo implementación de VehicleTransactionRepository sobre PostgreSQL.
type VehicleTransactionRepo struct {
	q Querier
}

// NewVehicleTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleTransactionRepository(q Querier) *VehicleTransactionRepo {
	return &VehicleTransactionRepo{q: q}
}

// Create persiste un asiento del libro del vehículo.
func (r *VehicleTransactionRepo) Create(tx *entity.VehicleTransaction) error {
	query := `
		INSERT INTO vehicle_transactions (id, vehicle_id, tx_type, title, amount, date, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.VehicleID, tx.TxType, tx.Title, tx.Amount, tx.Date,
		tx.Notes, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vehicle transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *VehicleTransactionRepo) GetByID(id string) (*entity.VehicleTransaction, error) {
	query := `
		SELECT id, vehicle_id, tx_type, title, amount, date, notes, created_by, created_at
		FROM vehicle_transactions WHERE id = $1`
	var t entity.VehicleTransaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.VehicleID, &t.TxType, &t.Title, &t.Amount, &t.Date,
		&t.Notes, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle transaction: %w", err)
	}
	return &t, nil
}

// Delete elimina un asiento por ID.
func (r *VehicleTransactionRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM vehicle_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByVehicle lista asientos de un vehículo con rango de fechas inclusivo;
// txType vacío = ambas direcciones.
func (r *VehicleTransactionRepo) ListByVehicle(vehicleID string, from, to *time.Time, txType string) ([]*entity.VehicleTransaction, error) {
	query := `
		SELECT id, vehicle_id, tx_type, title, amount, date, notes, created_by, created_at
		FROM vehicle_transactions
		WHERE vehicle_id = $1
		  AND ($2::date IS NULL OR date >= $2)
		  AND ($3::date IS NULL OR date <= $3)
		  AND ($4 = '' OR tx_type = $4)
		ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, vehicleID, from, to, txType)
	if err != nil {
		return nil, fmt.Errorf("list vehicle transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.VehicleTransaction
	for rows.Next() {
		var t entity.VehicleTransaction
		if err := rows.Scan(&t.ID, &t.VehicleID, &t.TxType, &t.Title, &t.Amount, &t.Date,
			&t.Notes, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// SumByType suma los montos de una dirección dentro del rango inclusivo (cero si no hay filas).
func (r *VehicleTransactionRepo) SumByType(vehicleID, txType string, from, to *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM vehicle_transactions
		WHERE vehicle_id = $1 AND tx_type = $2
		  AND ($3::date IS NULL OR date >= $3)
		  AND ($4::date IS NULL OR date <= $4)`
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, vehicleID, txType, from, to).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum vehicle transactions: %w", err)
	}
	return sum, nil
}
