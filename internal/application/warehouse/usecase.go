package warehouse

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// UseCase registra bodegas y ubicaciones. No guarda estado más allá de la
// inserción; existe porque inbound/outbound validan contra la tabla de
// ubicaciones.
type UseCase struct {
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(warehouseRepo repository.WarehouseRepository, locationRepo repository.LocationRepository) *UseCase {
	return &UseCase{warehouseRepo: warehouseRepo, locationRepo: locationRepo}
}

// CreateWarehouse crea una bodega. El nombre es obligatorio.
func (uc *UseCase) CreateWarehouse(in dto.CreateWarehouseRequest) (*entity.Warehouse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// GetWarehouse obtiene una bodega por ID.
func (uc *UseCase) GetWarehouse(id string) (*entity.Warehouse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrWarehouseNotFound, id)
	}
	return warehouse, nil
}

// ListWarehouses lista bodegas con paginación.
func (uc *UseCase) ListWarehouses(limit, offset int) ([]*entity.Warehouse, error) {
	return uc.warehouseRepo.List(limit, offset)
}

// CreateLocation crea una ubicación dentro de una bodega existente.
// El nombre es obligatorio y la bodega referenciada debe existir.
func (uc *UseCase) CreateLocation(warehouseID string, in dto.CreateLocationRequest) (*entity.Location, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Capacity.IsNegative() {
		return nil, fmt.Errorf("%w: capacity no puede ser negativa", domain.ErrInvalidInput)
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrWarehouseNotFound, warehouseID)
	}
	locType := in.Type
	if locType == "" {
		locType = entity.LocationTypeBin
	}
	now := time.Now()
	location := &entity.Location{
		ID:          uuid.New().String(),
		WarehouseID: warehouse.ID,
		Name:        in.Name,
		Type:        locType,
		Capacity:    in.Capacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetLocation obtiene una ubicación por ID.
func (uc *UseCase) GetLocation(id string) (*entity.Location, error) {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, id)
	}
	return location, nil
}

// ListLocations lista las ubicaciones de una bodega.
func (uc *UseCase) ListLocations(warehouseID string, limit, offset int) ([]*entity.Location, error) {
	return uc.locationRepo.ListByWarehouse(warehouseID, limit, offset)
}
