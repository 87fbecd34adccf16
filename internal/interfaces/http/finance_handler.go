package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/finance"
)

// FinanceHandler maneja cuentas bancarias y sus libros de transacciones.
type FinanceHandler struct {
	uc *finance.FinanceUseCase
}

// NewFinanceHandler construye el handler de finanzas.
func NewFinanceHandler(uc *finance.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// CreateAccount godoc
// @Summary      Crear cuenta bancaria
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "name, opening_balance"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/finance/accounts [post]
func (h *FinanceHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	account, err := h.uc.CreateAccount(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// UpdateAccount godoc
// @Summary      Actualizar cuenta bancaria
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.UpdateAccountRequest  true  "campos a actualizar"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/finance/accounts/{id} [put]
func (h *FinanceHandler) UpdateAccount(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	account, err := h.uc.UpdateAccount(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

// ListAccounts godoc
// @Summary      Listar cuentas con balances históricos
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/finance/accounts [get]
func (h *FinanceHandler) ListAccounts(c *fiber.Ctx) error {
	rows, total, err := h.uc.ListAccounts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"accounts": rows, "total_balance": total})
}

// AddTransaction godoc
// @Summary      Registrar asiento bancario
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.AddTransactionRequest  true  "tx_type, title, amount, date"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/finance/accounts/{id}/transactions [post]
func (h *FinanceHandler) AddTransaction(c *fiber.Ctx) error {
	var in dto.AddTransactionRequest
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
// @Summary      Eliminar asiento bancario
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        txID  path  string  true  "ID del asiento"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/finance/transactions/{txID} [delete]
func (h *FinanceHandler) DeleteTransaction(c *fiber.Ctx) error {
	if err := h.uc.DeleteTransaction(c.Params("txID")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "asiento eliminado"})
}

// ListTransactions godoc
// @Summary      Listar asientos de una cuenta
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID de la cuenta"
// @Param        from     query  string  false  "YYYY-MM-DD"
// @Param        to       query  string  false  "YYYY-MM-DD"
// @Param        tx_type  query  string  false  "credit | debit"
// @Success      200  {array}   map[string]interface{}
// @Router       /api/finance/accounts/{id}/transactions [get]
func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
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
// @Summary      Resumen del libro de una cuenta
// @Description  Sin from/to devuelve el resumen histórico completo (saldo inicial
//
//	incluido). Con from/to devuelve el resumen del rango inclusivo.
//
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID de la cuenta"
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.LedgerSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/accounts/{id}/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	fromStr, toStr := c.Query("from"), c.Query("to")
	if (fromStr == "") != (toStr == "") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to van juntos"})
	}
	if fromStr == "" {
		summary, err := h.uc.AllTimeSummary(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.LedgerSummaryResponse{Credits: summary.Credits, Debits: summary.Debits, Balance: summary.Balance})
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
	return c.JSON(dto.LedgerSummaryResponse{Credits: summary.Credits, Debits: summary.Debits, Balance: summary.Balance})
}
