package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus ítems.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// GetForUpdate bloquea la cabecera de la venta dentro de una tx.
	GetForUpdate(id string) (*entity.Sale, error)
	// UpdateTotals persiste subtotal, IVA y total recalculados.
	UpdateTotals(sale *entity.Sale) error
	List(from, to *time.Time, limit, offset int) ([]*entity.Sale, error)

	CreateItem(item *entity.SaleItem) error
	GetItemByID(id string) (*entity.SaleItem, error)
	DeleteItem(id string) error
	ListItems(saleID string) ([]*entity.SaleItem, error)
	// SumLineTotals devuelve Σ(quantity × unit_price) de los ítems de la venta (cero si no hay).
	SumLineTotals(saleID string) (decimal.Decimal, error)
}
