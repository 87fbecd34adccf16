package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	List(search string) ([]*entity.Employee, error)
	Delete(id string) error
}

// AttendanceRepository define el puerto para las sesiones de asistencia.
type AttendanceRepository interface {
	Create(log *entity.AttendanceLog) error
	// GetOpenSession devuelve la sesión abierta (clock_out NULL) del empleado, o nil.
	GetOpenSession(employeeID string) (*entity.AttendanceLog, error)
	Update(log *entity.AttendanceLog) error
	ListRecent(limit int) ([]*entity.AttendanceLog, error)
}
