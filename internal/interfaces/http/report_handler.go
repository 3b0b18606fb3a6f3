package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/modus-trade/modus-api/internal/application/usecase"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard devuelve los agregados del tablero. GET /api/v1/reports/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.uc.Dashboard()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// StockPDF devuelve el reporte global de stock en PDF.
// GET /api/v1/reports/stock/pdf
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	data, err := h.uc.StockReportPDF(c.Context())
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-stock.pdf"`)
	return c.Send(data)
}
