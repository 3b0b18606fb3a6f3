package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/application/usecase"
)

// DemandHandler maneja las peticiones HTTP de demandas (protegido).
type DemandHandler struct {
	uc *usecase.DemandUseCase
}

// NewDemandHandler construye el handler.
func NewDemandHandler(uc *usecase.DemandUseCase) *DemandHandler {
	return &DemandHandler{uc: uc}
}

// Create crea una demanda en estado DRAFT. POST /api/v1/demands
func (h *DemandHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDemandRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID obtiene una demanda con sus líneas. GET /api/v1/demands/:id
func (h *DemandHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus cambia el estado de una demanda según el flujo permitido.
// PATCH /api/v1/demands/:id/status
func (h *DemandHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateDemandStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// List lista demandas. GET /api/v1/demands
func (h *DemandHandler) List(c *fiber.Ctx) error {
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
