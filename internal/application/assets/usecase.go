package assets

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/finance"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/ledger"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// AssetsUseCase gestiona vehículos y su libro de ingresos/gastos.
// Un vehículo no tiene saldo inicial: income juega el rol de crédito y
// expense el de débito sobre un opening de cero.
type AssetsUseCase struct {
	vehicleRepo repository.VehicleRepository
	txRepo      repository.VehicleTransactionRepository
}

// NewAssetsUseCase construye el caso de uso.
func NewAssetsUseCase(vehicleRepo repository.VehicleRepository, txRepo repository.VehicleTransactionRepository) *AssetsUseCase {
	return &AssetsUseCase{vehicleRepo: vehicleRepo, txRepo: txRepo}
}

// CreateVehicle registra un vehículo. La placa es única.
func (uc *AssetsUseCase) CreateVehicle(in dto.CreateVehicleRequest) (*entity.Vehicle, error) {
	if in.Name == "" || in.PlateNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.vehicleRepo.GetByPlate(in.PlateNumber); existing != nil {
		return nil, domain.ErrDuplicate
	}
	vehicle := &entity.Vehicle{
		ID:          uuid.New().String(),
		Name:        in.Name,
		PlateNumber: in.PlateNumber,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.vehicleRepo.Create(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// ListVehicles devuelve todos los vehículos.
func (uc *AssetsUseCase) ListVehicles() ([]*entity.Vehicle, error) {
	return uc.vehicleRepo.List()
}

// AddTransaction registra un ingreso o gasto del vehículo. Monto estrictamente positivo.
func (uc *AssetsUseCase) AddTransaction(vehicleID, actorID string, in dto.AddVehicleTransactionRequest) (*entity.VehicleTransaction, error) {
	vehicle, err := uc.vehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	if in.TxType != entity.VehicleTxIncome && in.TxType != entity.VehicleTxExpense {
		return nil, domain.ErrInvalidInput
	}
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := ledger.ValidateAmount(in.Amount); err != nil {
		return nil, err
	}
	date, err := time.Parse(finance.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	tx := &entity.VehicleTransaction{
		ID:        uuid.New().String(),
		VehicleID: vehicleID,
		TxType:    in.TxType,
		Title:     in.Title,
		Amount:    in.Amount,
		Date:      date,
		Notes:     in.Notes,
		CreatedBy: actorID,
		CreatedAt: time.Now(),
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// DeleteTransaction elimina el asiento del libro del vehículo.
func (uc *AssetsUseCase) DeleteTransaction(txID string) error {
	tx, err := uc.txRepo.GetByID(txID)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	return uc.txRepo.Delete(txID)
}

// AllTimeSummary ingresos, gastos y neto históricos del vehículo.
func (uc *AssetsUseCase) AllTimeSummary(vehicleID string) (*ledger.Summary, error) {
	return uc.summary(vehicleID, nil, nil)
}

// RangedSummary ingresos, gastos y neto del rango [from, to] inclusivo.
func (uc *AssetsUseCase) RangedSummary(vehicleID string, from, to time.Time) (*ledger.Summary, error) {
	return uc.summary(vehicleID, &from, &to)
}

func (uc *AssetsUseCase) summary(vehicleID string, from, to *time.Time) (*ledger.Summary, error) {
	vehicle, err := uc.vehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	income, err := uc.txRepo.SumByType(vehicleID, entity.VehicleTxIncome, from, to)
	if err != nil {
		return nil, err
	}
	expense, err := uc.txRepo.SumByType(vehicleID, entity.VehicleTxExpense, from, to)
	if err != nil {
		return nil, err
	}
	// Saldo inicial implícito en cero: ingreso mapea a crédito, gasto a débito
	summary := ledger.Summarize(decimal.Zero, []ledger.Entry{
		{Direction: ledger.Credit, Amount: income},
		{Direction: ledger.Debit, Amount: expense},
	})
	return &summary, nil
}

// ListTransactions asientos del vehículo filtrables por rango y dirección.
func (uc *AssetsUseCase) ListTransactions(vehicleID string, from, to *time.Time, txType string) ([]*entity.VehicleTransaction, error) {
	vehicle, err := uc.vehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	if txType != "" && txType != entity.VehicleTxIncome && txType != entity.VehicleTxExpense {
		return nil, domain.ErrInvalidInput
	}
	return uc.txRepo.ListByVehicle(vehicleID, from, to, txType)
}
