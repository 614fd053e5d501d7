package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una reserva (LR).
// La secuencia documentada es: booked → in_transit → unloaded →
// out_for_delivery → delivered. El motor no salta estados por sí mismo;
// cada transición la dispara una operación concreta (carga en OGPL,
// descarga, inicio de reparto, prueba de entrega).
const (
	StatusBooked         = "booked"
	StatusInTransit      = "in_transit"
	StatusUnloaded       = "unloaded"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
)

// Sub-estado de bodega, ortogonal al estado principal. Lo manejan
// exclusivamente las operaciones de inventario (inbound/outbound),
// nunca las de OGPL.
const (
	WarehouseStatusInWarehouse = "in_warehouse"
	WarehouseStatusInTransit   = "in_transit"
)

// Booking representa una reserva de transporte (LR): un envío rastreado
// desde la recogida hasta la entrega.
//
// Invariante: CurrentWarehouseLocationID != nil ⟺ WarehouseStatus == in_warehouse.
// El puntero de ubicación solo es no-nulo mientras la carga descansa
// físicamente en una bodega.
type Booking struct {
	ID                         string // número de LR, asignado aguas arriba
	SenderName                 string
	ReceiverName               string
	FromStation                string
	ToStation                  string
	Amount                     decimal.Decimal
	Status                     string
	WarehouseStatus            *string // in_warehouse | in_transit | nil
	CurrentWarehouseLocationID *string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// IsValidStatus verifica que s pertenezca al vocabulario de estados.
func IsValidStatus(s string) bool {
	switch s {
	case StatusBooked, StatusInTransit, StatusUnloaded, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// InWarehouse indica si la carga de la reserva descansa en una bodega.
func (b *Booking) InWarehouse() bool {
	return b.WarehouseStatus != nil && *b.WarehouseStatus == WarehouseStatusInWarehouse
}

// SetInWarehouse fija el puntero de ubicación y el sub-estado de bodega
// de forma conjunta, preservando el invariante puntero⟺sub-estado.
func (b *Booking) SetInWarehouse(locationID string, now time.Time) {
	ws := WarehouseStatusInWarehouse
	b.WarehouseStatus = &ws
	b.CurrentWarehouseLocationID = &locationID
	b.UpdatedAt = now
}

// ClearWarehouse limpia el puntero de ubicación y marca la carga como
// en tránsito (despachada de bodega).
func (b *Booking) ClearWarehouse(now time.Time) {
	ws := WarehouseStatusInTransit
	b.WarehouseStatus = &ws
	b.CurrentWarehouseLocationID = nil
	b.UpdatedAt = now
}
