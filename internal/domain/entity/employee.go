package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa el perfil de un empleado.
type Employee struct {
	ID          string
	UserID      string // opcional: cuenta de acceso asociada
	FullName    string
	Phone       string
	Salary      decimal.Decimal
	SSNITNumber string
	DateOfBirth *time.Time
	CreatedAt   time.Time
}

// AttendanceLog representa una sesión de asistencia (entrada/salida).
// ClockOut nil = sesión abierta; un empleado tiene a lo sumo una sesión abierta.
type AttendanceLog struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
}
