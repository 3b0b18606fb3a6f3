package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de stock. TRANSFER_IN/TRANSFER_OUT solo
// existen como pareja de un traslado (comparten TransferGroupID).
const (
	MovementTypeIN          = "IN"
	MovementTypeOUT         = "OUT"
	MovementTypeTRANSFERIN  = "TRANSFER_IN"
	MovementTypeTRANSFEROUT = "TRANSFER_OUT"
)

// StockMovement es un evento inmutable del libro de stock (append-only).
// La cantidad siempre se guarda positiva; el signo lo da el tipo.
// Un movimiento nunca se actualiza ni se elimina: las correcciones son
// movimientos nuevos.
type StockMovement struct {
	ID              string
	ProductID       string
	WarehouseID     string
	Type            string
	Quantity        decimal.Decimal
	TransferGroupID *string // solo en TRANSFER_IN / TRANSFER_OUT
	Note            string
	CreatedAt       time.Time
}

// ValidMovementType indica si el tipo pertenece al vocabulario del libro.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeTRANSFERIN, MovementTypeTRANSFEROUT:
		return true
	}
	return false
}

// Inbound indica si el movimiento suma stock.
func (m *StockMovement) Inbound() bool {
	return m.Type == MovementTypeIN || m.Type == MovementTypeTRANSFERIN
}

// Signed devuelve la contribución del movimiento al fold de stock:
// +Quantity para IN/TRANSFER_IN, -Quantity para OUT/TRANSFER_OUT.
func (m *StockMovement) Signed() decimal.Decimal {
	if m.Inbound() {
		return m.Quantity
	}
	return m.Quantity.Neg()
}
