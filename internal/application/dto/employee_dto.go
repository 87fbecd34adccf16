package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	FullName    string          `json:"full_name"`
	Phone       string          `json:"phone,omitempty"`
	Salary      decimal.Decimal `json:"salary,omitempty"`
	SSNITNumber string          `json:"ssnit_number,omitempty"`
	DateOfBirth string          `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	UserID      string          `json:"user_id,omitempty"`
}

// AttendanceLogResponse una sesión de asistencia.
type AttendanceLogResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	ClockIn    string `json:"clock_in"`
	ClockOut   string `json:"clock_out,omitempty"` // vacío = sesión abierta
}
