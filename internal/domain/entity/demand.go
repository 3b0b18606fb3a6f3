package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una demanda. Transiciones: CANCELLED es terminal;
// PROCESSED solo admite pasar a CANCELLED.
const (
	DemandStatusDraft     = "DRAFT"
	DemandStatusPending   = "PENDING"
	DemandStatusProcessed = "PROCESSED"
	DemandStatusCancelled = "CANCELLED"
)

// Prioridades de una demanda.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// Demand es una solicitud de mercancía de un cliente interno o externo.
type Demand struct {
	ID            string
	Title         string
	Description   string
	RequesterName string
	Status        string
	Priority      string
	DueDate       *time.Time
	Items         []DemandItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DemandItem línea de una demanda.
type DemandItem struct {
	ID        string
	DemandID  string
	ProductID string
	Quantity  decimal.Decimal
	Note      string
}

// ValidDemandStatus indica si el estado pertenece al vocabulario.
func ValidDemandStatus(s string) bool {
	switch s {
	case DemandStatusDraft, DemandStatusPending, DemandStatusProcessed, DemandStatusCancelled:
		return true
	}
	return false
}
