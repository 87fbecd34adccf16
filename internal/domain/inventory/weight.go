package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// AvailableWeightKg calcula el peso total disponible de un producto boxed_weight:
// el peso completo de las cajas selladas más lo que resta en la caja actual.
// BoxRemainingKg en cero con cajas en stock significa caja actual llena sin abrir.
// Resultado redondeado a 2 decimales.
func AvailableWeightKg(p *entity.Product) decimal.Decimal {
	return availableWeight(p).Round(2)
}

// availableWeight es el peso disponible exacto, sin redondear. Las
// comparaciones de consumo usan este valor: redondear hacia arriba permitiría
// retirar más de lo que hay en las cajas.
func availableWeight(p *entity.Product) decimal.Decimal {
	if !p.IsWeighted() || p.BoxesInStock <= 0 || !p.BoxWeightKg.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}

	bw := p.BoxWeightKg
	br := p.BoxRemainingKg
	if br.IsNegative() {
		br = decimal.Zero
	}
	// Caja actual sin abrir: cuenta completa
	if br.IsZero() {
		br = bw
	}

	sealed := decimal.NewFromInt(int64(p.BoxesInStock - 1)).Mul(bw)
	return sealed.Add(br)
}

// ConsumeWeight descuenta kg del producto consumiendo cajas en orden FIFO:
// agota la caja actual, decrementa BoxesInStock y abre la siguiente caja llena
// hasta cubrir lo solicitado. Retorna ErrInsufficientStock si kg excede el
// peso disponible y ErrInvalidInput si kg no es positivo; en ambos casos el
// producto queda intacto.
func ConsumeWeight(p *entity.Product, kg decimal.Decimal) error {
	if !p.IsWeighted() || !kg.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if kg.GreaterThan(availableWeight(p)) {
		return domain.ErrInsufficientStock
	}

	remaining := kg
	for remaining.GreaterThan(decimal.Zero) {
		// Abrir la caja actual si está sin inicializar
		if p.BoxRemainingKg.LessThanOrEqual(decimal.Zero) {
			p.BoxRemainingKg = p.BoxWeightKg
		}

		take := decimal.Min(p.BoxRemainingKg, remaining)
		p.BoxRemainingKg = p.BoxRemainingKg.Sub(take)
		remaining = remaining.Sub(take)

		// Caja agotada: pasa a la siguiente caja llena
		if p.BoxRemainingKg.IsZero() {
			p.BoxesInStock--
			if p.BoxesInStock > 0 {
				p.BoxRemainingKg = p.BoxWeightKg
			}
		}
	}
	return nil
}

// ReceiveBoxes agrega cajas selladas al stock del producto.
func ReceiveBoxes(p *entity.Product, boxes int) error {
	if !p.IsWeighted() || boxes <= 0 {
		return domain.ErrInvalidInput
	}
	p.BoxesInStock += boxes
	return nil
}
