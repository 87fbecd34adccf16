package assets_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/assets"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeVehicleRepo struct {
	vehicles map[string]*entity.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[string]*entity.Vehicle)}
}

func (r *fakeVehicleRepo) Create(v *entity.Vehicle) error {
	cp := *v
	r.vehicles[v.ID] = &cp
	return nil
}

func (r *fakeVehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVehicleRepo) GetByPlate(plateNumber string) (*entity.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.PlateNumber == plateNumber {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVehicleRepo) List() ([]*entity.Vehicle, error) {
	var out []*entity.Vehicle
	for _, v := range r.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVehicleRepo) Delete(id string) error {
	delete(r.vehicles, id)
	return nil
}

type fakeVehicleTxRepo struct {
	txs map[string]*entity.VehicleTransaction
}

func newFakeVehicleTxRepo() *fakeVehicleTxRepo {
	return &fakeVehicleTxRepo{txs: make(map[string]*entity.VehicleTransaction)}
}

func (r *fakeVehicleTxRepo) Create(tx *entity.VehicleTransaction) error {
	cp := *tx
	r.txs[tx.ID] = &cp
	return nil
}

func (r *fakeVehicleTxRepo) GetByID(id string) (*entity.VehicleTransaction, error) {
	tx, ok := r.txs[id]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (r *fakeVehicleTxRepo) Delete(id string) error {
	delete(r.txs, id)
	return nil
}

func inRange(date time.Time, from, to *time.Time) bool {
	if from != nil && date.Before(*from) {
		return false
	}
	if to != nil && date.After(*to) {
		return false
	}
	return true
}

func (r *fakeVehicleTxRepo) ListByVehicle(vehicleID string, from, to *time.Time, txType string) ([]*entity.VehicleTransaction, error) {
	var out []*entity.VehicleTransaction
	for _, tx := range r.txs {
		if tx.VehicleID != vehicleID {
			continue
		}
		if txType != "" && tx.TxType != txType {
			continue
		}
		if !inRange(tx.Date, from, to) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (r *fakeVehicleTxRepo) SumByType(vehicleID, txType string, from, to *time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, tx := range r.txs {
		if tx.VehicleID == vehicleID && tx.TxType == txType && inRange(tx.Date, from, to) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum, nil
}

func buildAssetsUseCase() *assets.AssetsUseCase {
	return assets.NewAssetsUseCase(newFakeVehicleRepo(), newFakeVehicleTxRepo())
}

func createVehicle(t *testing.T, uc *assets.AssetsUseCase, plate string) *entity.Vehicle {
	t.Helper()
	v, err := uc.CreateVehicle(dto.CreateVehicleRequest{Name: "Camión 1", PlateNumber: plate})
	require.NoError(t, err)
	return v
}

func addVehicleTx(t *testing.T, uc *assets.AssetsUseCase, vehicleID, txType, amount, date string) *entity.VehicleTransaction {
	t.Helper()
	tx, err := uc.AddTransaction(vehicleID, "user-1", dto.AddVehicleTransactionRequest{
		TxType: txType,
		Title:  "Asiento de prueba",
		Amount: dec(amount),
		Date:   date,
	})
	require.NoError(t, err)
	return tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Vehículos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateVehicle_PlacaDuplicadaRechazada(t *testing.T) {
	uc := buildAssetsUseCase()
	createVehicle(t, uc, "ABC-123")

	_, err := uc.CreateVehicle(dto.CreateVehicleRequest{Name: "Camión 2", PlateNumber: "ABC-123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro del vehículo — saldo inicial implícito en cero
// ──────────────────────────────────────────────────────────────────────────────

func TestAllTimeSummary_NetoSobreSaldoInicialCero(t *testing.T) {
	uc := buildAssetsUseCase()
	v := createVehicle(t, uc, "ABC-123")

	addVehicleTx(t, uc, v.ID, entity.VehicleTxIncome, "800.00", "2026-03-01")
	addVehicleTx(t, uc, v.ID, entity.VehicleTxExpense, "250.50", "2026-03-10")

	summary, err := uc.AllTimeSummary(v.ID)
	require.NoError(t, err)

	assert.True(t, summary.Credits.Equal(dec("800.00")), "ingresos: %s", summary.Credits)
	assert.True(t, summary.Debits.Equal(dec("250.50")), "gastos: %s", summary.Debits)
	// Sin saldo inicial: neto = ingresos - gastos
	assert.True(t, summary.Balance.Equal(dec("549.50")), "neto: %s", summary.Balance)
}

func TestAllTimeSummary_NetoNegativoPermitido(t *testing.T) {
	uc := buildAssetsUseCase()
	v := createVehicle(t, uc, "ABC-123")

	addVehicleTx(t, uc, v.ID, entity.VehicleTxExpense, "300.00", "2026-03-01")

	summary, err := uc.AllTimeSummary(v.ID)
	require.NoError(t, err)
	assert.True(t, summary.Balance.Equal(dec("-300.00")), "neto: %s", summary.Balance)
}

func TestRangedSummary_SoloAsientosDelRango(t *testing.T) {
	uc := buildAssetsUseCase()
	v := createVehicle(t, uc, "ABC-123")

	addVehicleTx(t, uc, v.ID, entity.VehicleTxIncome, "100.00", "2026-01-15")
	addVehicleTx(t, uc, v.ID, entity.VehicleTxIncome, "400.00", "2026-02-15")
	addVehicleTx(t, uc, v.ID, entity.VehicleTxExpense, "50.00", "2026-02-20")

	from, _ := time.Parse("2006-01-02", "2026-02-01")
	to, _ := time.Parse("2006-01-02", "2026-02-28")

	summary, err := uc.RangedSummary(v.ID, from, to)
	require.NoError(t, err)

	assert.True(t, summary.Credits.Equal(dec("400.00")))
	assert.True(t, summary.Debits.Equal(dec("50.00")))
	assert.True(t, summary.Balance.Equal(dec("350.00")))
}

func TestDeleteTransaction_ElNetoLoRefleja(t *testing.T) {
	uc := buildAssetsUseCase()
	v := createVehicle(t, uc, "ABC-123")

	tx := addVehicleTx(t, uc, v.ID, entity.VehicleTxExpense, "120.00", "2026-03-01")
	require.NoError(t, uc.DeleteTransaction(tx.ID))

	summary, err := uc.AllTimeSummary(v.ID)
	require.NoError(t, err)
	assert.True(t, summary.Balance.IsZero())
}

func TestAddTransaction_DireccionInvalida(t *testing.T) {
	uc := buildAssetsUseCase()
	v := createVehicle(t, uc, "ABC-123")

	_, err := uc.AddTransaction(v.ID, "user-1", dto.AddVehicleTransactionRequest{
		TxType: "credit", Title: "X", Amount: dec("10"), Date: "2026-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el libro de vehículos usa income|expense")
}
