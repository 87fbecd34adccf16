package employees_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/employees"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*entity.Employee)}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) List(search string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	delete(r.employees, id)
	return nil
}

type fakeAttendanceRepo struct {
	logs []*entity.AttendanceLog
}

func (r *fakeAttendanceRepo) Create(log *entity.AttendanceLog) error {
	cp := *log
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *fakeAttendanceRepo) GetOpenSession(employeeID string) (*entity.AttendanceLog, error) {
	for _, l := range r.logs {
		if l.EmployeeID == employeeID && l.ClockOut == nil {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) Update(log *entity.AttendanceLog) error {
	for i, l := range r.logs {
		if l.ID == log.ID {
			cp := *log
			r.logs[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeAttendanceRepo) ListRecent(limit int) ([]*entity.AttendanceLog, error) {
	if limit > len(r.logs) {
		limit = len(r.logs)
	}
	return r.logs[:limit], nil
}

func buildEmployeesUseCase() (*employees.EmployeesUseCase, *fakeAttendanceRepo) {
	attendanceRepo := &fakeAttendanceRepo{}
	return employees.NewEmployeesUseCase(newFakeEmployeeRepo(), attendanceRepo), attendanceRepo
}

func createEmployee(t *testing.T, uc *employees.EmployeesUseCase) *entity.Employee {
	t.Helper()
	e, err := uc.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		FullName: "Ana Pérez",
		Salary:   decimal.RequireFromString("1200.00"),
	})
	require.NoError(t, err)
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// Empleados
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEmployee_ParseaFechaDeNacimiento(t *testing.T) {
	uc, _ := buildEmployeesUseCase()

	e, err := uc.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		FullName:    "Luis Gómez",
		DateOfBirth: "1990-06-15",
	})
	require.NoError(t, err)

	require.NotNil(t, e.DateOfBirth)
	assert.Equal(t, 1990, e.DateOfBirth.Year())
	assert.Equal(t, time.June, e.DateOfBirth.Month())
}

func TestCreateEmployee_Validaciones(t *testing.T) {
	uc, _ := buildEmployeesUseCase()

	_, err := uc.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{FullName: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		FullName:    "X",
		DateOfBirth: "15/06/1990",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha fuera de formato")
}

func TestGetEmployee_Inexistente(t *testing.T) {
	uc, _ := buildEmployeesUseCase()

	_, err := uc.GetEmployee(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Asistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestClockIn_AbreSesion(t *testing.T) {
	uc, attendanceRepo := buildEmployeesUseCase()
	e := createEmployee(t, uc)

	log, err := uc.ClockIn(context.Background(), e.ID)
	require.NoError(t, err)

	assert.Equal(t, e.ID, log.EmployeeID)
	assert.Nil(t, log.ClockOut)
	assert.Len(t, attendanceRepo.logs, 1)
}

func TestClockIn_DobleEntradaRechazada(t *testing.T) {
	uc, _ := buildEmployeesUseCase()
	e := createEmployee(t, uc)

	_, err := uc.ClockIn(context.Background(), e.ID)
	require.NoError(t, err)

	// Con una sesión abierta no se puede volver a marcar entrada
	_, err = uc.ClockIn(context.Background(), e.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestClockOut_CierraLaSesionAbierta(t *testing.T) {
	uc, attendanceRepo := buildEmployeesUseCase()
	e := createEmployee(t, uc)

	_, err := uc.ClockIn(context.Background(), e.ID)
	require.NoError(t, err)

	closed, err := uc.ClockOut(context.Background(), e.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.ClockOut)
	assert.False(t, closed.ClockOut.Before(closed.ClockIn))

	// Cerrada la sesión, se puede abrir una nueva
	_, err = uc.ClockIn(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Len(t, attendanceRepo.logs, 2)
}

func TestClockOut_SinSesionAbierta(t *testing.T) {
	uc, _ := buildEmployeesUseCase()
	e := createEmployee(t, uc)

	_, err := uc.ClockOut(context.Background(), e.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestClockIn_EmpleadoInexistente(t *testing.T) {
	uc, _ := buildEmployeesUseCase()

	_, err := uc.ClockIn(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
