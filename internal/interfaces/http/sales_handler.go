package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/application/finance"
)

// SalesHandler maneja el punto de venta: cabeceras e ítems.
type SalesHandler struct {
	uc *sales.SalesUseCase
}

// NewSalesHandler construye el handler de ventas.
func NewSalesHandler(uc *sales.SalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

func saleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:             s.ID,
		SaleType:       s.SaleType,
		PaymentMethod:  s.PaymentMethod,
		CustomerName:   s.CustomerName,
		CustomerPhone:  s.CustomerPhone,
		Discount:       s.Discount,
		SubtotalAmount: s.SubtotalAmount,
		VATAmount:      s.VATAmount,
		TotalAmount:    s.TotalAmount,
		CreatedAt:      s.CreatedAt.Format(finance.DateLayout),
	}
}

// Create godoc
// @Summary      Crear venta (cabecera sin ítems)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "sale_type, payment_method"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.CreateSale(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saleResponse(sale))
}

// AddItem godoc
// @Summary      Agregar ítem a una venta
// @Description  Valida que la cantidad no exceda el stock del producto,
//
//	descuenta y recalcula los totales en la misma transacción. Cantidad mayor
//	al disponible responde 409 sin modificar nada.
//
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.AddSaleItemRequest  true  "product_id, quantity; unit_price 0 = precio del producto"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/items [post]
func (h *SalesHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddSaleItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.AddItem(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saleResponse(sale))
}

// RemoveItem godoc
// @Summary      Quitar ítem de una venta
// @Description  Restaura el stock con un ajuste compensatorio y recalcula los totales.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID de la venta"
// @Param        itemID  path  string  true  "ID del ítem"
// @Success      200   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/items/{itemID} [delete]
func (h *SalesHandler) RemoveItem(c *fiber.Ctx) error {
	sale, err := h.uc.RemoveItem(c.Context(), c.Params("id"), c.Params("itemID"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saleResponse(sale))
}

// GetByID godoc
// @Summary      Obtener venta con sus ítems
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.uc.ListItems(c.Context(), sale.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"sale": saleResponse(sale), "items": items})
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "YYYY-MM-DD"
// @Param        to      query  string  false  "YYYY-MM-DD"
// @Param        limit   query  int     false  "máx. resultados (def. 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	from, to, ok := parseRangeQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	list, err := h.uc.ListSales(c.Context(), from, to, pageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, saleResponse(s))
	}
	return c.JSON(out)
}
