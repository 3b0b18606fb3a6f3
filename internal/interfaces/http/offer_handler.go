package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/application/usecase"
)

// OfferHandler maneja las peticiones HTTP de ofertas (protegido).
type OfferHandler struct {
	uc *usecase.OfferUseCase
}

// NewOfferHandler construye el handler.
func NewOfferHandler(uc *usecase.OfferUseCase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

// Create crea una oferta en estado DRAFT con sus totales calculados.
// POST /api/v1/offers
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID obtiene una oferta con sus líneas. GET /api/v1/offers/:id
func (h *OfferHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus cambia el estado de una oferta; ACCEPTED y REJECTED congelan.
// PATCH /api/v1/offers/:id/status
func (h *OfferHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOfferStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// List lista ofertas. GET /api/v1/offers
func (h *OfferHandler) List(c *fiber.Ctx) error {
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
