package entity

import "time"

// Warehouse representa una bodega física.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	Active    bool
	CreatedAt time.Time
}
