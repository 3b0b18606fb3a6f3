package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto comercializado (SKU único).
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Unit        string // unidad de medida: kg, un, lt...
	UnitPrice   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
