package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create crea un producto. POST /api/v1/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID obtiene un producto. GET /api/v1/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// Update actualiza un producto. PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// List lista productos con búsqueda opcional (insensible a acentos).
// GET /api/v1/products?q=...&limit=...&offset=...
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return failValidation(c, map[string]string{"query": "parámetros inválidos"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}
