package handlers

import (
	"errors"

	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type credentialsBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body credentialsBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	name, ok := validate.DisplayName(body.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		applog.Security(c, "auth.register.fail", map[string]any{"reason": "bad_email"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid email"})
	}
	if !validate.Password(body.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "password must be 6-72 characters"})
	}

	u, token, err := h.Auth.Register(name, email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			applog.Security(c, "auth.register.fail", map[string]any{"email": email, "reason": "duplicate"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email already exists"})
		}
		applog.Error(c, "auth.register.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not register"})
	}

	applog.Audit(c, "auth.register.success", map[string]any{"email": email})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": u, "token": token})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body credentialsBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_email_format"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid credentials"})
	}

	u, token, err := h.Auth.Login(email, body.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid credentials"})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.JSON(fiber.Map{"user": u, "token": token})
}
