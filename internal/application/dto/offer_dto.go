package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOfferRequest cuerpo para crear oferta con sus líneas.
type CreateOfferRequest struct {
	DemandID   *string            `json:"demandId"`
	CustomerID string             `json:"customerId"`
	Currency   string             `json:"currency"`
	ValidUntil *time.Time         `json:"validUntil"`
	Items      []OfferItemRequest `json:"items"`
}

// OfferItemRequest línea de oferta en la petición.
type OfferItemRequest struct {
	ProductID string           `json:"productId"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unitPrice"`
	Discount  *decimal.Decimal `json:"discount"`
}

// UpdateOfferStatusRequest cuerpo de PATCH /offers/:id/status.
type UpdateOfferStatusRequest struct {
	Status string `json:"status"`
}

// OfferItemResponse línea de oferta con el producto resuelto.
type OfferItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// OfferResponse representación HTTP de una oferta.
type OfferResponse struct {
	ID           string              `json:"id"`
	DemandID     *string             `json:"demandId,omitempty"`
	CustomerID   string              `json:"customerId"`
	CustomerName string              `json:"customerName"`
	Status       string              `json:"status"`
	TotalAmount  decimal.Decimal     `json:"totalAmount"`
	Currency     string              `json:"currency"`
	ValidUntil   *time.Time          `json:"validUntil,omitempty"`
	Items        []OfferItemResponse `json:"items"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// OfferListResponse listado paginado de ofertas.
type OfferListResponse struct {
	Items []OfferResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
