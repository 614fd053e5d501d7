package repository

import "github.com/jhoicas/logistica-api/internal/domain/entity"

// InventoryRepository define el puerto para consultar/actualizar el
// inventario por (ubicación, ítem). Get devuelve (nil, nil) si no hay
// registro: la ausencia equivale a cantidad cero, no a error.
type InventoryRepository interface {
	Get(locationID, itemID string) (*entity.InventoryRecord, error)
	Upsert(record *entity.InventoryRecord) error
	ListByLocation(locationID string) ([]*entity.InventoryRecord, error)
}

// InventoryMovementRepository guarda el rastro de auditoría de movimientos.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	ListByLocation(locationID string, limit, offset int) ([]*entity.InventoryMovement, error)
}
