package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de seguimiento de stock de un producto.
const (
	TrackMethodUnit        = "unit"         // unidades enteras
	TrackMethodBoxedWeight = "boxed_weight" // cajas selladas de peso conocido (ej. caja de 30kg)
)

// Product representa un producto del inventario. Exactamente un método de
// seguimiento aplica por producto: por unidades (Quantity) o por peso en cajas
// (BoxWeightKg, BoxesInStock, BoxRemainingKg). Quantity nunca es negativo.
type Product struct {
	ID               string
	SKU              string
	Name             string
	CategoryID       string
	TrackMethod      string          // unit | boxed_weight
	UnitPrice        decimal.Decimal // precio al detalle
	WholesalePrice   decimal.Decimal
	Quantity         int // saldo actual (método unit)
	MinQuantityAlert int

	// Seguimiento por peso (método boxed_weight).
	// BoxesInStock incluye la caja actualmente en consumo.
	BoxWeightKg    decimal.Decimal // capacidad de cada caja en kg
	BoxesInStock   int
	BoxRemainingKg decimal.Decimal // kg restantes en la caja actual; 0 = caja llena sin abrir

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWeighted indica si el producto se sigue por peso en cajas.
func (p *Product) IsWeighted() bool {
	return p.TrackMethod == TrackMethodBoxedWeight
}
