package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookingRequest entrada para registrar una reserva (LR).
// La creación ocurre aguas arriba del motor: inserta el registro con
// status=booked; de ahí en adelante solo mutan los motores de OGPL y bodega.
type CreateBookingRequest struct {
	LrNo         string          `json:"lr_no" validate:"required"`
	SenderName   string          `json:"sender_name"`
	ReceiverName string          `json:"receiver_name"`
	FromStation  string          `json:"from_station"`
	ToStation    string          `json:"to_station"`
	Amount       decimal.Decimal `json:"amount"`
}

// BookingResponse salida de una reserva.
type BookingResponse struct {
	ID                         string          `json:"id"`
	SenderName                 string          `json:"sender_name"`
	ReceiverName               string          `json:"receiver_name"`
	FromStation                string          `json:"from_station"`
	ToStation                  string          `json:"to_station"`
	Amount                     decimal.Decimal `json:"amount"`
	Status                     string          `json:"status"`
	WarehouseStatus            *string         `json:"warehouse_status,omitempty"`
	CurrentWarehouseLocationID *string         `json:"current_warehouse_location_id,omitempty"`
	CreatedAt                  time.Time       `json:"created_at"`
	UpdatedAt                  time.Time       `json:"updated_at"`
}

// BookingListResponse lista paginada de reservas.
type BookingListResponse struct {
	Items []BookingResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
