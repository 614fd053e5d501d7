package memory

import (
	"sync"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)
var _ repository.LocationRepository = (*LocationRepo)(nil)

// WarehouseRepo almacén en memoria de bodegas.
type WarehouseRepo struct {
	mu         sync.RWMutex
	warehouses map[string]entity.Warehouse
}

// NewWarehouseRepository construye el almacén vacío.
func NewWarehouseRepository() *WarehouseRepo {
	return &WarehouseRepo{warehouses: make(map[string]entity.Warehouse)}
}

// Create inserta la bodega.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warehouses[warehouse.ID] = *warehouse
	return nil
}

// GetByID devuelve una copia de la bodega, o (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// List lista bodegas con paginación.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Warehouse
	for _, w := range r.warehouses {
		out := w
		result = append(result, &out)
	}
	return paginate(result, limit, offset), nil
}

// LocationRepo almacén en memoria de ubicaciones.
type LocationRepo struct {
	mu        sync.RWMutex
	locations map[string]entity.Location
}

// NewLocationRepository construye el almacén vacío.
func NewLocationRepository() *LocationRepo {
	return &LocationRepo{locations: make(map[string]entity.Location)}
}

// Create inserta la ubicación.
func (r *LocationRepo) Create(location *entity.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations[location.ID] = *location
	return nil
}

// GetByID devuelve una copia de la ubicación, o (nil, nil) si no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// ListByWarehouse lista las ubicaciones de una bodega con paginación.
func (r *LocationRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Location
	for _, l := range r.locations {
		if l.WarehouseID == warehouseID {
			out := l
			result = append(result, &out)
		}
	}
	return paginate(result, limit, offset), nil
}
