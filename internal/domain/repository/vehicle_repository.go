package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// VehicleRepository define el puerto de persistencia para Vehicle (DIP).
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(id string) (*entity.Vehicle, error)
	GetByPlate(plateNumber string) (*entity.Vehicle, error)
	List() ([]*entity.Vehicle, error)
	Delete(id string) error
}

// VehicleTransactionRepository define el puerto para el libro de ingresos/gastos por vehículo.
type VehicleTransactionRepository interface {
	Create(tx *entity.VehicleTransaction) error
	GetByID(id string) (*entity.VehicleTransaction, error)
	Delete(id string) error
	ListByVehicle(vehicleID string, from, to *time.Time, txType string) ([]*entity.VehicleTransaction, error)
	SumByType(vehicleID, txType string, from, to *time.Time) (decimal.Decimal, error)
}
