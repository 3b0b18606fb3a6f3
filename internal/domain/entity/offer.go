package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una oferta. ACCEPTED y REJECTED son terminales.
const (
	OfferStatusDraft    = "DRAFT"
	OfferStatusSent     = "SENT"
	OfferStatusAccepted = "ACCEPTED"
	OfferStatusRejected = "REJECTED"
)

// Offer es una cotización a un cliente, opcionalmente ligada a una demanda.
type Offer struct {
	ID          string
	DemandID    *string
	CustomerID  string
	Status      string
	TotalAmount decimal.Decimal
	Currency    string // etiqueta informativa, sin conversión
	ValidUntil  *time.Time
	Items       []OfferItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OfferItem línea de una oferta con su total calculado.
type OfferItem struct {
	ID         string
	OfferID    string
	ProductID  string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	Discount   decimal.Decimal
	TotalPrice decimal.Decimal
}

// ValidOfferStatus indica si el estado pertenece al vocabulario.
func ValidOfferStatus(s string) bool {
	switch s {
	case OfferStatusDraft, OfferStatusSent, OfferStatusAccepted, OfferStatusRejected:
		return true
	}
	return false
}

// Finalized indica si la oferta quedó congelada (no admite cambio de estado).
func (o *Offer) Finalized() bool {
	return o.Status == OfferStatusAccepted || o.Status == OfferStatusRejected
}
