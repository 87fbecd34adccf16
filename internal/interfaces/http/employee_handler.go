package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/employees"
)

// EmployeeHandler maneja perfiles de empleados y asistencia.
type EmployeeHandler struct {
	uc *employees.EmployeesUseCase
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *employees.EmployeesUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "full_name; salary, ssnit_number opcionales"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.uc.CreateEmployee(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// GetByID godoc
// @Summary      Obtener empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.uc.GetEmployee(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "búsqueda por nombre"
// @Success      200  {array}  map[string]interface{}
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListEmployees(c.Context(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteEmployee(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "empleado eliminado"})
}

// ClockIn godoc
// @Summary      Marcar entrada
// @Description  Un empleado tiene a lo sumo una sesión abierta: una segunda
//
//	entrada sin salida previa responde 409.
//
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      201  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/clock-in [post]
func (h *EmployeeHandler) ClockIn(c *fiber.Ctx) error {
	session, err := h.uc.ClockIn(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// ClockOut godoc
// @Summary      Marcar salida
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/clock-out [post]
func (h *EmployeeHandler) ClockOut(c *fiber.Ctx) error {
	session, err := h.uc.ClockOut(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// RecentAttendance godoc
// @Summary      Sesiones de asistencia recientes
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máx. sesiones (def. 50)"
// @Success      200  {array}  dto.AttendanceLogResponse
// @Router       /api/employees/attendance [get]
func (h *EmployeeHandler) RecentAttendance(c *fiber.Ctx) error {
	list, err := h.uc.RecentAttendance(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
