package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InboundRequest body para POST /api/inventory/inbound.
// BookingID es opcional: si resuelve a una reserva existente, el recibo
// actualiza su puntero de bodega como efecto secundario.
type InboundRequest struct {
	LocationID string          `json:"location_id" validate:"required"`
	ItemID     string          `json:"item_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	Status     string          `json:"status,omitempty"`
	BookingID  string          `json:"booking_id,omitempty"`
}

// OutboundRequest body para POST /api/inventory/outbound.
type OutboundRequest struct {
	LocationID string          `json:"location_id" validate:"required"`
	ItemID     string          `json:"item_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	BookingID  string          `json:"booking_id,omitempty"`
}

// TransferRequest body para POST /api/inventory/transfer.
type TransferRequest struct {
	FromLocationID string          `json:"from_location_id" validate:"required"`
	ToLocationID   string          `json:"to_location_id" validate:"required"`
	ItemID         string          `json:"item_id" validate:"required"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// QuantityResponse cantidad resultante tras un movimiento o consulta.
type QuantityResponse struct {
	LocationID string          `json:"location_id"`
	ItemID     string          `json:"item_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// MovementResponse registro de auditoría de un movimiento.
type MovementResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	LocationID    string          `json:"location_id"`
	ItemID        string          `json:"item_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	BookingID     string          `json:"booking_id,omitempty"`
	Date          time.Time       `json:"date"`
}
