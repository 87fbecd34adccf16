package employees

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/finance"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// EmployeesUseCase gestiona perfiles de empleados y sesiones de asistencia.
// Un empleado tiene a lo sumo una sesión abierta: un segundo clock-in sin
// clock-out previo es rechazado con ErrConflict.
type EmployeesUseCase struct {
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
}

// NewEmployeesUseCase construye el caso de uso.
func NewEmployeesUseCase(employeeRepo repository.EmployeeRepository, attendanceRepo repository.AttendanceRepository) *EmployeesUseCase {
	return &EmployeesUseCase{employeeRepo: employeeRepo, attendanceRepo: attendanceRepo}
}

// CreateEmployee registra un perfil de empleado.
func (uc *EmployeesUseCase) CreateEmployee(ctx context.Context, in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" || in.Salary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var dob *time.Time
	if in.DateOfBirth != "" {
		parsed, err := time.Parse(finance.DateLayout, in.DateOfBirth)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dob = &parsed
	}
	employee := &entity.Employee{
		ID:          uuid.New().String(),
		UserID:      in.UserID,
		FullName:    fullName,
		Phone:       in.Phone,
		Salary:      in.Salary.Round(2),
		SSNITNumber: in.SSNITNumber,
		DateOfBirth: dob,
		CreatedAt:   time.Now(),
	}
	if err := uc.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// GetEmployee devuelve un empleado por ID.
func (uc *EmployeesUseCase) GetEmployee(ctx context.Context, id string) (*entity.Employee, error) {
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return employee, nil
}

// ListEmployees lista empleados, con búsqueda opcional por nombre.
func (uc *EmployeesUseCase) ListEmployees(ctx context.Context, search string) ([]*entity.Employee, error) {
	return uc.employeeRepo.List(strings.TrimSpace(search))
}

// DeleteEmployee elimina el perfil de un empleado.
func (uc *EmployeesUseCase) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := uc.GetEmployee(ctx, id); err != nil {
		return err
	}
	return uc.employeeRepo.Delete(id)
}

// ClockIn abre una sesión de asistencia. Si el empleado ya tiene una sesión
// abierta retorna ErrConflict.
func (uc *EmployeesUseCase) ClockIn(ctx context.Context, employeeID string) (*entity.AttendanceLog, error) {
	if _, err := uc.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	open, err := uc.attendanceRepo.GetOpenSession(employeeID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrConflict
	}
	session := &entity.AttendanceLog{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		ClockIn:    time.Now(),
	}
	if err := uc.attendanceRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// ClockOut cierra la sesión abierta del empleado. Sin sesión abierta retorna
// ErrConflict.
func (uc *EmployeesUseCase) ClockOut(ctx context.Context, employeeID string) (*entity.AttendanceLog, error) {
	if _, err := uc.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	open, err := uc.attendanceRepo.GetOpenSession(employeeID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	open.ClockOut = &now
	if err := uc.attendanceRepo.Update(open); err != nil {
		return nil, err
	}
	return open, nil
}

// RecentAttendance lista las sesiones de asistencia más recientes.
func (uc *EmployeesUseCase) RecentAttendance(ctx context.Context, limit int) ([]*entity.AttendanceLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return uc.attendanceRepo.ListRecent(limit)
}
