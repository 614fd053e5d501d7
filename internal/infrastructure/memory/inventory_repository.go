package memory

import (
	"sync"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)
var _ repository.InventoryMovementRepository = (*MovementRepo)(nil)

// InventoryRepo almacén en memoria de registros de inventario,
// indexado por clave (locationID, itemID).
type InventoryRepo struct {
	mu      sync.RWMutex
	records map[string]entity.InventoryRecord
}

// NewInventoryRepository construye el almacén vacío.
func NewInventoryRepository() *InventoryRepo {
	return &InventoryRepo{records: make(map[string]entity.InventoryRecord)}
}

func invKey(locationID, itemID string) string {
	return locationID + "|" + itemID
}

// Get devuelve una copia del registro, o (nil, nil) si no existe
// (la ausencia equivale a cantidad cero para el motor).
func (r *InventoryRepo) Get(locationID, itemID string) (*entity.InventoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[invKey(locationID, itemID)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Upsert inserta o sobreescribe el registro por clave.
func (r *InventoryRepo) Upsert(record *entity.InventoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[invKey(record.LocationID, record.ItemID)] = *record
	return nil
}

// ListByLocation devuelve los registros de una ubicación.
func (r *InventoryRepo) ListByLocation(locationID string) ([]*entity.InventoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.InventoryRecord
	for _, rec := range r.records {
		if rec.LocationID == locationID {
			out := rec
			result = append(result, &out)
		}
	}
	return result, nil
}

// MovementRepo almacén en memoria del rastro de auditoría de movimientos.
type MovementRepo struct {
	mu        sync.RWMutex
	movements []entity.InventoryMovement
}

// NewMovementRepository construye el almacén vacío.
func NewMovementRepository() *MovementRepo {
	return &MovementRepo{}
}

// Create agrega el movimiento al rastro.
func (r *MovementRepo) Create(movement *entity.InventoryMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, *movement)
	return nil
}

// ListByLocation devuelve los movimientos de una ubicación en orden de llegada.
func (r *MovementRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.InventoryMovement
	for i := range r.movements {
		if r.movements[i].LocationID == locationID {
			out := r.movements[i]
			result = append(result, &out)
		}
	}
	return paginate(result, limit, offset), nil
}
