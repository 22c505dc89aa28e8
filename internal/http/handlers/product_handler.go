package handlers

import (
	"errors"

	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Prods *services.ProductService
}

// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ps, err := h.Prods.List()
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not fetch products"})
	}
	return c.JSON(domain.Views(ps))
}

// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	p, err := h.Prods.Create(in)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
		}
		applog.Error(c, "products.create.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save product"})
	}
	applog.Audit(c, "products.create", map[string]any{"product": p.ID, "user": c.Locals("userID")})
	return c.Status(fiber.StatusCreated).JSON(p.View())
}

// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	var patch services.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	p, err := h.Prods.Update(id, patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
		}
		applog.Error(c, "products.update.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save product"})
	}
	applog.Audit(c, "products.update", map[string]any{"product": id, "user": c.Locals("userID")})
	return c.JSON(p.View())
}

// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err := h.Prods.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		applog.Error(c, "products.delete.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not delete product"})
	}
	applog.Audit(c, "products.delete", map[string]any{"product": id, "user": c.Locals("userID")})
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
