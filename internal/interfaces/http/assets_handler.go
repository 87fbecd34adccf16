package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/assets"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/finance"
)

// AssetsHandler maneja vehículos y sus libros de ingresos/gastos.
type AssetsHandler struct {
	uc *assets.AssetsUseCase
}

// NewAssetsHandler construye el handler de activos.
func NewAssetsHandler(uc *assets.AssetsUseCase) *AssetsHandler {
	return &AssetsHandler{uc: uc}
}

// CreateVehicle godoc
// @Summary      Registrar vehículo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVehicleRequest  true  "name, plate_number"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/vehicles [post]
func (h *AssetsHandler) CreateVehicle(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	vehicle, err := h.uc.CreateVehicle(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

// ListVehicles godoc
// @Summary      Listar vehículos
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /api/assets/vehicles [get]
func (h *AssetsHandler) ListVehicles(c *fiber.Ctx) error {
	list, err := h.uc.ListVehicles()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// AddTransaction godoc
// @Summary      Registrar ingreso o gasto de un vehículo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vehículo"
// @Param        body  body  dto.AddVehicleTransactionRequest  true  "tx_type, title, amount, date"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/vehicles/{id}/transactions [post]
func (h *AssetsHandler) AddTransaction(c *fiber.Ctx) error {
	var in dto.AddVehicleTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.AddTransaction(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// DeleteTransaction godoc
// @Summary      Eliminar asiento del libro de un vehículo
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        txID  path  string  true  "ID del asiento"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/transactions/{txID} [delete]
func (h *AssetsHandler) DeleteTransaction(c *fiber.Ctx) error {
	if err := h.uc.DeleteTransaction(c.Params("txID")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "asiento eliminado"})
}

// ListTransactions godoc
// @Summary      Listar asientos de un vehículo
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID del vehículo"
// @Param        from     query  string  false  "YYYY-MM-DD"
// @Param        to       query  string  false  "YYYY-MM-DD"
// @Param        tx_type  query  string  false  "income | expense"
// @Success      200  {array}  map[string]interface{}
// @Router       /api/assets/vehicles/{id}/transactions [get]
func (h *AssetsHandler) ListTransactions(c *fiber.Ctx) error {
	from, to, ok := parseRangeQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	list, err := h.uc.ListTransactions(c.Params("id"), from, to, c.Query("tx_type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Summary godoc
// @Summary      Resumen de ingresos/gastos de un vehículo
// @Description  Sin from/to devuelve el resumen histórico completo (el balance
//
//	del vehículo parte de cero). Con from/to, el del rango inclusivo.
//
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del vehículo"
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.VehicleSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/vehicles/{id}/summary [get]
func (h *AssetsHandler) Summary(c *fiber.Ctx) error {
	fromStr, toStr := c.Query("from"), c.Query("to")
	if (fromStr == "") != (toStr == "") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to van juntos"})
	}
	if fromStr == "" {
		summary, err := h.uc.AllTimeSummary(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.VehicleSummaryResponse{Income: summary.Credits, Expenses: summary.Debits, Net: summary.Balance})
	}
	from, err := time.Parse(finance.DateLayout, fromStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha from inválida"})
	}
	to, err := time.Parse(finance.DateLayout, toStr)
	if err != nil || to.Before(from) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha to inválida"})
	}
	summary, err := h.uc.RangedSummary(c.Params("id"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.VehicleSummaryResponse{Income: summary.Credits, Expenses: summary.Debits, Net: summary.Balance})
}
