package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado descriptivo de un registro de inventario.
const InventoryStatusAvailable = "available"

// InventoryRecord representa la cantidad de un ítem en una ubicación.
// Clave: (LocationID, ItemID) — a lo sumo un registro por clave. Se crea
// perezosamente en el primer inbound y nunca se borra: cantidad cero es un
// estado terminal válido.
//
// Invariante: Quantity >= 0 después de toda operación.
type InventoryRecord struct {
	LocationID  string
	ItemID      string
	Quantity    decimal.Decimal
	Status      string
	LastMovedAt time.Time
}

// Tipos de movimiento de inventario.
const (
	MovementTypeInbound  = "INBOUND"
	MovementTypeOutbound = "OUTBOUND"
	MovementTypeTransfer = "TRANSFER"
)

// InventoryMovement es el rastro de auditoría de cada mutación de inventario.
// Un TRANSFER genera dos registros (salida y entrada) con el mismo TransactionID.
type InventoryMovement struct {
	ID            string
	TransactionID string
	LocationID    string
	ItemID        string
	Type          string
	Quantity      decimal.Decimal // positiva entrada, negativa salida
	BookingID     string          // opcional: LR asociado al movimiento
	Date          time.Time
	CreatedAt     time.Time
}
