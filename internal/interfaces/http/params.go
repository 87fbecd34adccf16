package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/finance"
)

// parseRangeQuery lee ?from=YYYY-MM-DD&to=YYYY-MM-DD. Vacíos = nil (sin límite).
// El extremo superior se corre a fin de día para que el rango sea inclusivo.
func parseRangeQuery(c *fiber.Ctx) (from, to *time.Time, ok bool) {
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(finance.DateLayout, v)
		if err != nil {
			return nil, nil, false
		}
		from = &parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(finance.DateLayout, v)
		if err != nil {
			return nil, nil, false
		}
		endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, false
	}
	return from, to, true
}

// pageQuery lee limit/offset con valores por defecto.
func pageQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	page.DefaultPage()
	return page
}
