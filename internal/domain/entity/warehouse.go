package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse representa una bodega física donde se almacena carga en tránsito.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tipos de ubicación dentro de una bodega.
const (
	LocationTypeBin   = "bin"
	LocationTypeRack  = "rack"
	LocationTypeShelf = "shelf"
	LocationTypeFloor = "floor"
)

// Location representa un slot de almacenamiento direccionable dentro de una
// bodega (bin, rack, estante o piso). Capacity cero significa sin límite.
type Location struct {
	ID          string
	WarehouseID string
	Name        string
	Type        string
	Capacity    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
