package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/modus-trade/modus-api/internal/application/dto"
	"github.com/modus-trade/modus-api/internal/domain"
)

// statusText etiquetas cortas por código HTTP para el campo "error" del sobre.
var statusText = map[int]string{
	fiber.StatusBadRequest:          "Bad Request",
	fiber.StatusUnauthorized:        "Unauthorized",
	fiber.StatusForbidden:           "Forbidden",
	fiber.StatusNotFound:            "Not Found",
	fiber.StatusConflict:            "Conflict",
	fiber.StatusInternalServerError: "Internal Server Error",
}

// envelope construye el sobre de error estándar de la API.
func envelope(c *fiber.Ctx, status int, errorCode, message string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     statusText[status],
		Message:   message,
		Path:      c.Path(),
		ErrorCode: errorCode,
	}
}

// fail responde con el sobre de error. El código HTTP y errorCode salen del
// error de dominio; cualquier error desconocido es un 500 genérico (el
// detalle va al log, no al cliente).
func fail(c *fiber.Ctx, err error) error {
	status, code, msg := mapDomainError(err)
	return c.Status(status).JSON(envelope(c, status, code, msg))
}

// failValidation responde 400 con fieldErrors por campo.
func failValidation(c *fiber.Ctx, fieldErrors map[string]string) error {
	resp := envelope(c, fiber.StatusBadRequest, "VALIDATION", "datos inválidos")
	resp.FieldErrors = fieldErrors
	return c.Status(fiber.StatusBadRequest).JSON(resp)
}

// failUnauthorized responde 401 con un errorCode específico (middleware).
func failUnauthorized(c *fiber.Ctx, errorCode, message string) error {
	return c.Status(fiber.StatusUnauthorized).
		JSON(envelope(c, fiber.StatusUnauthorized, errorCode, message))
}

func mapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return fiber.StatusBadRequest, "INVALID_QUANTITY", domain.ErrInvalidQuantity.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", err.Error()
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest, "BUSINESS_ERROR", err.Error()
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest, "BUSINESS_ERROR", domain.ErrEmailAlreadyExists.Error()
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, "BUSINESS_ERROR", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", domain.ErrUnauthorized.Error()
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", domain.ErrForbidden.Error()
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "RESOURCE_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK", domain.ErrInsufficientStock.Error()
	case errors.Is(err, domain.ErrIntegrity):
		return fiber.StatusInternalServerError, "INTEGRITY", domain.ErrIntegrity.Error()
	default:
		return fiber.StatusInternalServerError, "INTERNAL_ERROR", "error interno del servidor"
	}
}
