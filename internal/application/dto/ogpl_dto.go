package dto

import "time"

// CreateOgplRequest body para POST /api/ogpls.
// LrIDs son las reservas a cargar; los demás campos son passthrough
// del movimiento de vehículo.
type CreateOgplRequest struct {
	OgplNo      string   `json:"ogpl_no"`
	VehicleNo   string   `json:"vehicle_no"`
	DriverName  string   `json:"driver_name"`
	FromStation string   `json:"from_station"`
	ToStation   string   `json:"to_station"`
	LrIDs       []string `json:"lr_ids" validate:"required,min=1"`
}

// UpdateOgplLrsRequest body para PATCH /api/ogpls/:id/lrs (edición masiva
// de membresía: agregar y quitar reservas del manifiesto).
type UpdateOgplLrsRequest struct {
	Add    []string `json:"add,omitempty"`
	Remove []string `json:"remove,omitempty"`
}

// OgplResponse salida de un OGPL.
type OgplResponse struct {
	ID          string    `json:"id"`
	OgplNo      string    `json:"ogpl_no"`
	VehicleNo   string    `json:"vehicle_no"`
	DriverName  string    `json:"driver_name"`
	FromStation string    `json:"from_station"`
	ToStation   string    `json:"to_station"`
	LrIDs       []string  `json:"lr_ids"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OgplListResponse lista paginada de OGPLs.
type OgplListResponse struct {
	Items []OgplResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
