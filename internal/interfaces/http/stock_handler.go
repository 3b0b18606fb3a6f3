package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP del libro de movimientos y la
// proyección de stock (protegido).
type StockHandler struct {
	uc      *stock.UseCase
	queries *stock.Queries
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase, queries *stock.Queries) *StockHandler {
	return &StockHandler{uc: uc, queries: queries}
}

// RecordMovement registra un movimiento directo (IN u OUT).
// POST /api/v1/stock/movements
func (h *StockHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	fieldErrors := map[string]string{}
	if in.ProductID == "" {
		fieldErrors["productId"] = "requerido"
	}
	if in.WarehouseID == "" {
		fieldErrors["warehouseId"] = "requerido"
	}
	if in.Type == "" {
		fieldErrors["type"] = "requerido"
	}
	if len(fieldErrors) > 0 {
		return failValidation(c, fieldErrors)
	}
	err := h.uc.RecordMovement(c.Context(), stock.MovementInput{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Note:        in.Note,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Transfer registra un traslado entre bodegas (dos movimientos atómicos).
// POST /api/v1/stock/transfers
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return failValidation(c, map[string]string{"body": "cuerpo inválido"})
	}
	fieldErrors := map[string]string{}
	if in.ProductID == "" {
		fieldErrors["productId"] = "requerido"
	}
	if in.SourceWarehouseID == "" {
		fieldErrors["sourceWarehouseId"] = "requerido"
	}
	if in.TargetWarehouseID == "" {
		fieldErrors["targetWarehouseId"] = "requerido"
	}
	if len(fieldErrors) > 0 {
		return failValidation(c, fieldErrors)
	}
	err := h.uc.Transfer(c.Context(), stock.TransferInput{
		ProductID:         in.ProductID,
		SourceWarehouseID: in.SourceWarehouseID,
		TargetWarehouseID: in.TargetWarehouseID,
		Quantity:          in.Quantity,
		Note:              in.Note,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// History devuelve el historial de movimientos de un producto.
// GET /api/v1/stock/movements?productId=...
func (h *StockHandler) History(c *fiber.Ctx) error {
	productID := c.Query("productId")
	if productID == "" {
		return failValidation(c, map[string]string{"productId": "requerido"})
	}
	movements, err := h.queries.History(productID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(movements)
}

// Overview devuelve el resumen de stock: por bodega si viene warehouseId,
// global si no.
// GET /api/v1/stock?warehouseId=...
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouseId")
	var (
		rows []dto.StockSummaryRow
		err  error
	)
	if warehouseID == "" {
		rows, err = h.queries.GlobalOverview()
	} else {
		rows, err = h.queries.Overview(warehouseID)
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

// CurrentStock devuelve la cantidad disponible de un producto en una bodega.
// GET /api/v1/stock/:productId?warehouseId=...
func (h *StockHandler) CurrentStock(c *fiber.Ctx) error {
	productID := c.Params("productId")
	warehouseID := c.Query("warehouseId")
	if warehouseID == "" {
		return failValidation(c, map[string]string{"warehouseId": "requerido"})
	}
	qty, err := h.queries.CurrentStock(productID, warehouseID)
	if err != nil {
		return fail(c, err)
	}
	// Cantidad escalar, sin sobre: el cuerpo es el número JSON.
	c.Type("json")
	return c.SendString(qty.String())
}
