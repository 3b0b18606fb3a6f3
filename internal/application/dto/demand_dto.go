package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDemandRequest cuerpo para crear demanda con sus líneas.
type CreateDemandRequest struct {
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	RequesterName string              `json:"requesterName"`
	Priority      string              `json:"priority"`
	DueDate       *time.Time          `json:"dueDate"`
	Items         []DemandItemRequest `json:"items"`
}

// DemandItemRequest línea de demanda en la petición.
type DemandItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note"`
}

// UpdateDemandStatusRequest cuerpo de PATCH /demands/:id/status.
type UpdateDemandStatusRequest struct {
	Status string `json:"status"`
}

// DemandItemResponse línea de demanda con el producto resuelto.
type DemandItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity"`
	Note        string          `json:"note"`
}

// DemandResponse representación HTTP de una demanda.
type DemandResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	RequesterName string               `json:"requesterName"`
	Status        string               `json:"status"`
	Priority      string               `json:"priority"`
	DueDate       *time.Time           `json:"dueDate,omitempty"`
	Items         []DemandItemResponse `json:"items"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// DemandListResponse listado paginado de demandas.
type DemandListResponse struct {
	Items []DemandResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
