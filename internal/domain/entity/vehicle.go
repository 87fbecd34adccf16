package entity

import "time"

// Vehicle representa un vehículo de la empresa con su propio libro de ingresos/gastos.
// No tiene saldo inicial: el balance parte de cero.
type Vehicle struct {
	ID          string
	Name        string
	PlateNumber string // único
	Description string
	CreatedAt   time.Time
}
