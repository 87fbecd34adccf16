package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Gestion-api/internal/domain/inventory"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

// StockUseCase registra movimientos de stock de forma transaccional
// (IN, OUT, ADJUSTMENT) con bloqueo de fila (SELECT FOR UPDATE) sobre el
// producto y Commit/Rollback. El libro de movimientos es append-only; el
// retiro por encima del disponible se rechaza de manera uniforme (misma
// política que las ventas) y se deja registro en el log.
type StockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	log         *logger.Logger
}

// NewStockUseCase construye el caso de uso. movRepo atado al pool se usa solo
// para consultas de historial; las escrituras van por el TxRunner.
func NewStockUseCase(txRunner TxRunner, productRepo repository.ProductRepository, movRepo repository.StockMovementRepository, log *logger.Logger) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo, log: log.WithModule("inventory")}
}

func validOutReason(reason string) bool {
	switch reason {
	case entity.OutReasonSold, entity.OutReasonDisposed, entity.OutReasonTransferred:
		return true
	}
	return false
}

// StockIn registra una recepción: movimiento IN y suma al saldo del producto.
// Sin tope superior.
func (uc *StockUseCase) StockIn(ctx context.Context, actorID string, in dto.StockInRequest) error {
	if in.ProductID == "" || in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	if err := uc.requireUnitTracked(in.ProductID); err != nil {
		return err
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		product.Quantity += in.Quantity
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Type:      entity.MovementTypeIN,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			Notes:     in.Notes,
			CreatedBy: actorID,
			CreatedAt: now,
		}
		return movRepo.Create(mov)
	})
}

// StockOut registra una salida: movimiento OUT y resta del saldo. Retirar más
// de lo disponible retorna ErrInsufficientStock indicando el stock actual y no
// muta nada.
func (uc *StockUseCase) StockOut(ctx context.Context, actorID string, in dto.StockOutRequest) error {
	if in.ProductID == "" || in.Quantity <= 0 || !validOutReason(in.Reason) {
		return domain.ErrInvalidInput
	}
	if err := uc.requireUnitTracked(in.ProductID); err != nil {
		return err
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if in.Quantity > product.Quantity {
			uc.log.Warn().
				Str("product_id", product.ID).
				Int("requested", in.Quantity).
				Int("available", product.Quantity).
				Msg("salida rechazada por stock insuficiente")
			return fmt.Errorf("%w: disponible %d", domain.ErrInsufficientStock, product.Quantity)
		}
		product.Quantity -= in.Quantity
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Type:      entity.MovementTypeOUT,
			Quantity:  -in.Quantity,
			Reason:    in.Reason,
			Notes:     in.Notes,
			CreatedBy: actorID,
			CreatedAt: now,
		}
		return movRepo.Create(mov)
	})
}

// Adjust registra un ajuste compensatorio con signo. Es el mecanismo de
// corrección del libro: los movimientos nunca se eliminan ni se revierten.
func (uc *StockUseCase) Adjust(ctx context.Context, actorID string, in dto.AdjustStockRequest) error {
	if in.ProductID == "" || in.Quantity == 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.requireUnitTracked(in.ProductID); err != nil {
		return err
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if in.Quantity < 0 && -in.Quantity > product.Quantity {
			return fmt.Errorf("%w: disponible %d", domain.ErrInsufficientStock, product.Quantity)
		}
		product.Quantity += in.Quantity
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Type:      entity.MovementTypeADJUSTMENT,
			Quantity:  in.Quantity,
			Notes:     in.Notes,
			CreatedBy: actorID,
			CreatedAt: now,
		}
		return movRepo.Create(mov)
	})
}

// ReceiveBoxes recepción de cajas selladas para productos boxed_weight.
func (uc *StockUseCase) ReceiveBoxes(ctx context.Context, actorID string, in dto.ReceiveBoxesRequest) error {
	if in.ProductID == "" || in.Boxes <= 0 {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if err := domaininv.ReceiveBoxes(product, in.Boxes); err != nil {
			return err
		}
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Type:      entity.MovementTypeIN,
			Quantity:  in.Boxes,
			WeightKg:  product.BoxWeightKg.Mul(decimal.NewFromInt(int64(in.Boxes))),
			Notes:     in.Notes,
			CreatedBy: actorID,
			CreatedAt: now,
		}
		return movRepo.Create(mov)
	})
}

// ConsumeWeight descuenta kg de un producto boxed_weight consumiendo cajas en
// orden FIFO (agota la caja actual, pasa a la siguiente). Exceder el peso
// disponible se rechaza con ErrInsufficientStock.
func (uc *StockUseCase) ConsumeWeight(ctx context.Context, actorID string, in dto.ConsumeWeightRequest) error {
	if in.ProductID == "" || !in.WeightKg.GreaterThan(decimal.Zero) || !validOutReason(in.Reason) {
		return domain.ErrInvalidInput
	}
	// Los pesos son punto fijo de 2 decimales; más precisión se rechaza
	if !in.WeightKg.Equal(in.WeightKg.Round(2)) {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		available := domaininv.AvailableWeightKg(product)
		if err := domaininv.ConsumeWeight(product, in.WeightKg); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				uc.log.Warn().
					Str("product_id", product.ID).
					Str("requested_kg", in.WeightKg.String()).
					Str("available_kg", available.String()).
					Msg("consumo rechazado por peso insuficiente")
				return fmt.Errorf("%w: disponible %s kg", domain.ErrInsufficientStock, available)
			}
			return err
		}
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Type:      entity.MovementTypeOUT,
			WeightKg:  in.WeightKg.Neg(),
			Reason:    in.Reason,
			Notes:     in.Notes,
			CreatedBy: actorID,
			CreatedAt: now,
		}
		return movRepo.Create(mov)
	})
}

// ListMovements historial de movimientos de todos los productos, filtrado por
// rango de fechas inclusivo.
func (uc *StockUseCase) ListMovements(ctx context.Context, from, to *time.Time, page dto.PageRequest) ([]*entity.StockMovement, error) {
	page.DefaultPage()
	return uc.movRepo.List(from, to, page.Limit, page.Offset)
}

// ListMovementsByProduct historial de movimientos de un producto.
func (uc *StockUseCase) ListMovementsByProduct(ctx context.Context, productID string, from, to *time.Time, page dto.PageRequest) ([]*entity.StockMovement, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	return uc.movRepo.ListByProduct(productID, from, to, page.Limit, page.Offset)
}

// requireUnitTracked valida fuera de la tx que el producto exista y use método unit.
func (uc *StockUseCase) requireUnitTracked(productID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.IsWeighted() {
		return domain.ErrInvalidInput
	}
	return nil
}
