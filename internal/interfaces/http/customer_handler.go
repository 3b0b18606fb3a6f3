package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create crea un cliente. POST /api/v1/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID obtiene un cliente. GET /api/v1/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// Update actualiza un cliente. PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// List lista clientes. GET /api/v1/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return failValidation(c, map[string]string{"query": "parámetros inválidos"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}
