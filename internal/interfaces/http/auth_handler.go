package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/modus-trade/modus-api/internal/application/auth"
	"github.com/modus-trade/modus-api/internal/application/dto"
)

// AuthHandler maneja registro y login (público).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register registra un usuario. POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	fieldErrors := map[string]string{}
	if in.Email == "" {
		fieldErrors["email"] = "requerido"
	}
	if in.Password == "" {
		fieldErrors["password"] = "requerido"
	}
	if len(fieldErrors) > 0 {
		return failValidation(c, fieldErrors)
	}
	resp, err := h.uc.RegisterUser(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login autentica y devuelve un JWT. POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}
