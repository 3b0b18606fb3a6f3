package dto

import "time"

// CreateWarehouseRequest cuerpo para crear bodega.
type CreateWarehouseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// UpdateWarehouseRequest cuerpo para actualizar bodega (campos opcionales).
type UpdateWarehouseRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Active   *bool   `json:"active"`
}

// WarehouseResponse representación HTTP de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// WarehouseListResponse listado paginado de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
