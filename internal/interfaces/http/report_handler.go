package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/reports"
)

// ReportHandler maneja los reportes del dashboard.
type ReportHandler struct {
	uc *reports.ReportsUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.ReportsUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de ventas y gastos del período
// @Description  Sin from/to usa los últimos 30 días.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	in := dto.DateRangeRequest{From: c.Query("from"), To: c.Query("to")}
	out, err := h.uc.Summary(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DailySeries godoc
// @Summary      Serie diaria ventas vs gastos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.DailyPoint
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) DailySeries(c *fiber.Ctx) error {
	in := dto.DateRangeRequest{From: c.Query("from"), To: c.Query("to")}
	out, err := h.uc.DailySeries(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
