package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest cuerpo de POST /stock/movements.
// Type admite IN u OUT; los traslados van por POST /stock/transfers.
type RecordMovementRequest struct {
	ProductID   string          `json:"productId"`
	WarehouseID string          `json:"warehouseId"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Note        string          `json:"note"`
}

// TransferRequest cuerpo de POST /stock/transfers.
type TransferRequest struct {
	ProductID         string          `json:"productId"`
	SourceWarehouseID string          `json:"sourceWarehouseId"`
	TargetWarehouseID string          `json:"targetWarehouseId"`
	Quantity          decimal.Decimal `json:"quantity"`
	Note              string          `json:"note"`
}

// StockSummaryRow una fila de resumen de stock (por bodega o global).
type StockSummaryRow struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// MovementResponse un movimiento del historial, con referencias resueltas.
type MovementResponse struct {
	ID              string          `json:"id"`
	ProductName     string          `json:"productName"`
	WarehouseName   string          `json:"warehouseName"`
	Type            string          `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	TransferGroupID *string         `json:"transferGroupId,omitempty"`
	Note            string          `json:"note"`
	CreatedAt       time.Time       `json:"createdAt"`
}
