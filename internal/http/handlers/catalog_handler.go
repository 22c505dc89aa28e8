package handlers

import (
	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the read-only browse page; all mutation goes through
// the JSON API.
type CatalogHandler struct {
	Prods *services.ProductService
}

// GET /
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	ps, err := h.Prods.List()
	if err != nil {
		applog.Error(c, "catalog.home.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load inventory"})
	}
	return c.Render("index", fiber.Map{"Products": domain.Views(ps)})
}
