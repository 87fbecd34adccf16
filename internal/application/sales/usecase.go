package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

// SalesUseCase compone ventas POS: cabecera primero, ítems de a uno. Cada
// ítem valida y descuenta stock, registra la salida en el libro de
// movimientos con referencia a la venta y recalcula los totales, todo dentro
// de una transacción con el producto y la cabecera bloqueados por fila.
// Quitar un ítem restaura el stock mediante un ADJUSTMENT compensatorio.
type SalesUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	vatRate  decimal.Decimal
	log      *logger.Logger
}

// NewSalesUseCase construye el caso de uso. vatRate es la tasa de IVA como
// string decimal ("0.15"); inválida o vacía cuenta como cero.
func NewSalesUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, vatRate string, log *logger.Logger) *SalesUseCase {
	rate, err := decimal.NewFromString(vatRate)
	if err != nil || rate.IsNegative() {
		rate = decimal.Zero
	}
	return &SalesUseCase{txRunner: txRunner, saleRepo: saleRepo, vatRate: rate, log: log.WithModule("sales")}
}

func validSaleType(s string) bool {
	return s == entity.SaleTypeRetail || s == entity.SaleTypeWholesale
}

func validPaymentMethod(s string) bool {
	switch s {
	case entity.PaymentCash, entity.PaymentMomo, entity.PaymentCard:
		return true
	}
	return false
}

// CreateSale crea la cabecera de la venta con totales en cero.
func (uc *SalesUseCase) CreateSale(ctx context.Context, actorID string, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if !validSaleType(in.SaleType) || !validPaymentMethod(in.PaymentMethod) || in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sale := &entity.Sale{
		ID:             uuid.New().String(),
		SaleType:       in.SaleType,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		PaymentMethod:  in.PaymentMethod,
		Discount:       in.Discount.Round(2),
		SubtotalAmount: decimal.Zero,
		VATAmount:      decimal.Zero,
		TotalAmount:    decimal.Zero,
		Note:           in.Note,
		CreatedBy:      actorID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// AddItem agrega una línea a la venta: bloquea el producto, valida que la
// cantidad no exceda el stock, descuenta, registra el movimiento OUT con
// motivo sold y referencia a la venta, y recalcula los totales. Cantidad
// mayor al stock disponible se rechaza con ErrInsufficientStock sin mutar
// nada.
func (uc *SalesUseCase) AddItem(ctx context.Context, saleID, actorID string, in dto.AddSaleItemRequest) (*entity.Sale, error) {
	if saleID == "" || in.ProductID == "" || in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Sale
	err := uc.txRunner.Run(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) error {
		sale, err := saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product.IsWeighted() {
			// Las ventas por peso pasan por el consumo de cajas, no por líneas de venta.
			return domain.ErrInvalidInput
		}
		if in.Quantity > product.Quantity {
			uc.log.Warn().
				Str("sale_id", sale.ID).
				Str("product_id", product.ID).
				Int("requested", in.Quantity).
				Int("available", product.Quantity).
				Msg("ítem rechazado por stock insuficiente")
			return fmt.Errorf("%w: disponible %d", domain.ErrInsufficientStock, product.Quantity)
		}

		price := in.UnitPrice
		if price.IsZero() {
			price = product.UnitPrice
			if sale.SaleType == entity.SaleTypeWholesale && product.WholesalePrice.GreaterThan(decimal.Zero) {
				price = product.WholesalePrice
			}
		}

		now := time.Now()
		item := &entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: product.ID,
			Quantity:  in.Quantity,
			UnitPrice: price.Round(2),
			CreatedAt: now,
		}
		if err := saleRepo.CreateItem(item); err != nil {
			return err
		}

		product.Quantity -= in.Quantity
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementTypeOUT,
			Quantity:  -in.Quantity,
			UnitPrice: item.UnitPrice,
			Reason:    entity.OutReasonSold,
			Reference: sale.ID,
			CreatedBy: actorID,
			CreatedAt: now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		if err := uc.recalcTotals(saleRepo, sale, now); err != nil {
			return err
		}
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveItem quita una línea de la venta. El stock se restaura con un
// ADJUSTMENT compensatorio (el movimiento OUT original nunca se elimina) y
// los totales se recalculan.
func (uc *SalesUseCase) RemoveItem(ctx context.Context, saleID, itemID, actorID string) (*entity.Sale, error) {
	if saleID == "" || itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Sale
	err := uc.txRunner.Run(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) error {
		sale, err := saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		item, err := saleRepo.GetItemByID(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.SaleID != sale.ID {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(item.ProductID)
		if err != nil {
			return err
		}

		if err := saleRepo.DeleteItem(item.ID); err != nil {
			return err
		}

		now := time.Now()
		product.Quantity += item.Quantity
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementTypeADJUSTMENT,
			Quantity:  item.Quantity,
			Reference: sale.ID,
			Notes:     "reverso de línea de venta",
			CreatedBy: actorID,
			CreatedAt: now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		if err := uc.recalcTotals(saleRepo, sale, now); err != nil {
			return err
		}
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// recalcTotals recomputa subtotal, IVA y total desde las líneas persistidas.
// Total = subtotal + IVA - descuento, nunca negativo.
func (uc *SalesUseCase) recalcTotals(saleRepo repository.SaleRepository, sale *entity.Sale, now time.Time) error {
	subtotal, err := saleRepo.SumLineTotals(sale.ID)
	if err != nil {
		return err
	}
	sale.SubtotalAmount = subtotal.Round(2)
	sale.VATAmount = subtotal.Mul(uc.vatRate).Round(2)
	total := sale.SubtotalAmount.Add(sale.VATAmount).Sub(sale.Discount)
	if total.IsNegative() {
		total = decimal.Zero.Round(2)
	}
	sale.TotalAmount = total
	sale.UpdatedAt = now
	return saleRepo.UpdateTotals(sale)
}

// GetSale devuelve la cabecera de la venta.
func (uc *SalesUseCase) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// ListSales lista ventas filtradas por rango de fechas (inclusive, opcional).
func (uc *SalesUseCase) ListSales(ctx context.Context, from, to *time.Time, page dto.PageRequest) ([]*entity.Sale, error) {
	page.DefaultPage()
	return uc.saleRepo.List(from, to, page.Limit, page.Offset)
}

// ListItems lista las líneas de una venta.
func (uc *SalesUseCase) ListItems(ctx context.Context, saleID string) ([]*entity.SaleItem, error) {
	if _, err := uc.GetSale(ctx, saleID); err != nil {
		return nil, err
	}
	return uc.saleRepo.ListItems(saleID)
}
