package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CreateLocationRequest entrada para crear una ubicación dentro de una bodega.
// Capacity cero u omitida significa sin límite.
type CreateLocationRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=100"`
	Type     string          `json:"type"` // bin | rack | shelf | floor
	Capacity decimal.Decimal `json:"capacity"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID          string          `json:"id"`
	WarehouseID string          `json:"warehouse_id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Capacity    decimal.Decimal `json:"capacity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LocationListResponse lista de ubicaciones de una bodega.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
