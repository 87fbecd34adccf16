package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)
var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un perfil de empleado.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, user_id, full_name, phone, salary, ssnit_number, date_of_birth, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.UserID, employee.FullName, employee.Phone,
		employee.Salary, employee.SSNITNumber, employee.DateOfBirth, employee.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `
		SELECT id, user_id, full_name, phone, salary, ssnit_number, date_of_birth, created_at
		FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.UserID, &e.FullName, &e.Phone, &e.Salary, &e.SSNITNumber, &e.DateOfBirth, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update actualiza el perfil de un empleado.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees SET user_id = $2, full_name = $3, phone = $4, salary = $5,
			ssnit_number = $6, date_of_birth = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.UserID, employee.FullName, employee.Phone,
		employee.Salary, employee.SSNITNumber, employee.DateOfBirth,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista empleados, con búsqueda opcional por nombre (ILIKE).
func (r *EmployeeRepo) List(search string) ([]*entity.Employee, error) {
	query := `
		SELECT id, user_id, full_name, phone, salary, ssnit_number, date_of_birth, created_at
		FROM employees
		WHERE ($1 = '' OR full_name ILIKE '%' || $1 || '%')
		ORDER BY full_name ASC`
	rows, err := r.q.Query(context.Background(), query, search)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.UserID, &e.FullName, &e.Phone, &e.Salary,
			&e.SSNITNumber, &e.DateOfBirth, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina el perfil de un empleado.
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// AttendanceRepo implementación de AttendanceRepository sobre PostgreSQL.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Create persiste una sesión de asistencia.
func (r *AttendanceRepo) Create(log *entity.AttendanceLog) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO attendance_logs (id, employee_id, clock_in, clock_out) VALUES ($1, $2, $3, $4)`,
		log.ID, log.EmployeeID, log.ClockIn, log.ClockOut,
	)
	if err != nil {
		return fmt.Errorf("insert attendance log: %w", err)
	}
	return nil
}

// GetOpenSession devuelve la sesión abierta (clock_out NULL) del empleado, o nil.
func (r *AttendanceRepo) GetOpenSession(employeeID string) (*entity.AttendanceLog, error) {
	query := `
		SELECT id, employee_id, clock_in, clock_out
		FROM attendance_logs
		WHERE employee_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC LIMIT 1`
	var l entity.AttendanceLog
	err := r.q.QueryRow(context.Background(), query, employeeID).Scan(
		&l.ID, &l.EmployeeID, &l.ClockIn, &l.ClockOut,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open session: %w", err)
	}
	return &l, nil
}

// Update persiste el cierre de una sesión.
func (r *AttendanceRepo) Update(log *entity.AttendanceLog) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE attendance_logs SET clock_out = $2 WHERE id = $1`,
		log.ID, log.ClockOut,
	)
	if err != nil {
		return fmt.Errorf("update attendance log: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRecent lista las sesiones más recientes.
func (r *AttendanceRepo) ListRecent(limit int) ([]*entity.AttendanceLog, error) {
	query := `
		SELECT id, employee_id, clock_in, clock_out
		FROM attendance_logs ORDER BY clock_in DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list attendance logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AttendanceLog
	for rows.Next() {
		var l entity.AttendanceLog
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.ClockIn, &l.ClockOut); err != nil {
			return nil, fmt.Errorf("scan attendance log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
