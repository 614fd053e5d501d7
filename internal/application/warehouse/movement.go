package warehouse

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/journal"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

// MovementUseCase es el motor de inventario de bodega: recibe (inbound),
// despacha (outbound) y traslada (transfer) cantidades por (ubicación, ítem),
// y mantiene el puntero de bodega de la reserva asociada.
//
// Serialización: cada mutación toma un lock por clave (ubicación|ítem), de
// modo que el check-then-act de outbound nunca se intercala con otra
// mutación de la misma clave y la cantidad jamás queda negativa.
//
// Contrato del efecto secundario sobre la reserva: la actualización del
// puntero de bodega NO es transaccional con la mutación de inventario. Si el
// BookingID no resuelve, el inventario igual se confirma y el fallo queda
// registrado en el log.
type MovementUseCase struct {
	inventoryRepo repository.InventoryRepository
	movementRepo  repository.InventoryMovementRepository
	locationRepo  repository.LocationRepository
	bookingRepo   repository.BookingRepository
	log           *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex // por clave locationID|itemID
}

// NewMovementUseCase construye el motor de inventario.
func NewMovementUseCase(
	inventoryRepo repository.InventoryRepository,
	movementRepo repository.InventoryMovementRepository,
	locationRepo repository.LocationRepository,
	bookingRepo repository.BookingRepository,
	log *logger.Logger,
) *MovementUseCase {
	return &MovementUseCase{
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		locationRepo:  locationRepo,
		bookingRepo:   bookingRepo,
		log:           log,
		locks:         make(map[string]*sync.Mutex),
	}
}

// keyLock devuelve el mutex de la clave (ubicación, ítem), creándolo si no existe.
func (uc *MovementUseCase) keyLock(locationID, itemID string) *sync.Mutex {
	key := locationID + "|" + itemID
	uc.mu.Lock()
	defer uc.mu.Unlock()
	l, ok := uc.locks[key]
	if !ok {
		l = &sync.Mutex{}
		uc.locks[key] = l
	}
	return l
}

// Inbound recibe cantidad de un ítem en una ubicación. Crea el registro de
// inventario perezosamente en el primer recibo y devuelve la cantidad
// resultante. Si in.BookingID resuelve, fija el puntero de bodega de esa
// reserva (in_warehouse) como efecto secundario de mejor esfuerzo.
func (uc *MovementUseCase) Inbound(in dto.InboundRequest) (decimal.Decimal, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return decimal.Zero, err
	}
	if location == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, in.LocationID)
	}

	l := uc.keyLock(in.LocationID, in.ItemID)
	l.Lock()
	defer l.Unlock()

	now := time.Now()
	newQty, err := uc.applyInbound(location, in.ItemID, in.Quantity, in.Status, now)
	if err != nil {
		return decimal.Zero, err
	}

	uc.audit(&entity.InventoryMovement{
		TransactionID: uuid.New().String(),
		LocationID:    in.LocationID,
		ItemID:        in.ItemID,
		Type:          entity.MovementTypeInbound,
		Quantity:      in.Quantity,
		BookingID:     in.BookingID,
		Date:          now,
	})

	if in.BookingID != "" {
		uc.attachBooking(in.BookingID, in.LocationID, now)
	}
	return newQty, nil
}

// Outbound despacha cantidad de un ítem desde una ubicación. Exige un
// registro con cantidad suficiente; de lo contrario falla con inventario
// insuficiente y sin mutación alguna. Si in.BookingID resuelve, limpia el
// puntero de bodega de la reserva (in_transit), mejor esfuerzo.
func (uc *MovementUseCase) Outbound(in dto.OutboundRequest) (decimal.Decimal, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return decimal.Zero, err
	}
	if location == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, in.LocationID)
	}

	l := uc.keyLock(in.LocationID, in.ItemID)
	l.Lock()
	defer l.Unlock()

	now := time.Now()
	newQty, err := uc.applyOutbound(in.LocationID, in.ItemID, in.Quantity, now)
	if err != nil {
		return decimal.Zero, err
	}

	uc.audit(&entity.InventoryMovement{
		TransactionID: uuid.New().String(),
		LocationID:    in.LocationID,
		ItemID:        in.ItemID,
		Type:          entity.MovementTypeOutbound,
		Quantity:      in.Quantity.Neg(),
		BookingID:     in.BookingID,
		Date:          now,
	})

	if in.BookingID != "" {
		uc.detachBooking(in.BookingID, now)
	}
	return newQty, nil
}

// Transfer traslada cantidad entre dos ubicaciones como una sola operación
// atómica: valida ambas ubicaciones y la suficiencia del origen antes de
// mutar, toma ambos locks en orden determinista y aplica débito y crédito
// juntos. Un fallo en cualquiera de los dos lados deja ambos saldos intactos,
// así que la cantidad total del ítem en el sistema nunca cambia.
func (uc *MovementUseCase) Transfer(in dto.TransferRequest) error {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.FromLocationID == in.ToLocationID {
		return fmt.Errorf("%w: origen y destino no pueden ser la misma ubicación", domain.ErrInvalidInput)
	}
	from, err := uc.locationRepo.GetByID(in.FromLocationID)
	if err != nil {
		return err
	}
	if from == nil {
		return fmt.Errorf("%w: origen %s", domain.ErrLocationNotFound, in.FromLocationID)
	}
	to, err := uc.locationRepo.GetByID(in.ToLocationID)
	if err != nil {
		return err
	}
	if to == nil {
		return fmt.Errorf("%w: destino %s", domain.ErrLocationNotFound, in.ToLocationID)
	}

	// Orden determinista de los locks para evitar deadlock entre
	// transferencias cruzadas A→B y B→A concurrentes.
	first, second := uc.keyLock(in.FromLocationID, in.ItemID), uc.keyLock(in.ToLocationID, in.ItemID)
	if in.ToLocationID < in.FromLocationID {
		first, second = second, first
	}
	first.Lock()
	defer first.Unlock()
	second.Lock()
	defer second.Unlock()

	now := time.Now()
	source, err := uc.inventoryRepo.Get(in.FromLocationID, in.ItemID)
	if err != nil {
		return err
	}
	if source == nil || source.Quantity.LessThan(in.Quantity) {
		return fmt.Errorf("%w: ubicación %s, ítem %s", domain.ErrInsufficientStock, in.FromLocationID, in.ItemID)
	}
	prevSourceQty := source.Quantity
	prevSourceMovedAt := source.LastMovedAt

	j := journal.New()
	source.Quantity = source.Quantity.Sub(in.Quantity)
	source.LastMovedAt = now
	if err := uc.inventoryRepo.Upsert(source); err != nil {
		return err
	}
	j.Record(func() error {
		source.Quantity = prevSourceQty
		source.LastMovedAt = prevSourceMovedAt
		return uc.inventoryRepo.Upsert(source)
	})

	if _, err := uc.applyInbound(to, in.ItemID, in.Quantity, "", now); err != nil {
		// Crédito rechazado (p. ej. capacidad del destino): devolver el
		// débito al origen antes de propagar.
		j.Revert()
		return err
	}

	txID := uuid.New().String()
	uc.audit(&entity.InventoryMovement{
		TransactionID: txID,
		LocationID:    in.FromLocationID,
		ItemID:        in.ItemID,
		Type:          entity.MovementTypeTransfer,
		Quantity:      in.Quantity.Neg(),
		Date:          now,
	})
	uc.audit(&entity.InventoryMovement{
		TransactionID: txID,
		LocationID:    in.ToLocationID,
		ItemID:        in.ItemID,
		Type:          entity.MovementTypeTransfer,
		Quantity:      in.Quantity,
		Date:          now,
	})
	return nil
}

// GetInventory devuelve la cantidad actual de un ítem en una ubicación.
// La ausencia de registro equivale a cero, no a error.
func (uc *MovementUseCase) GetInventory(locationID, itemID string) (decimal.Decimal, error) {
	record, err := uc.inventoryRepo.Get(locationID, itemID)
	if err != nil {
		return decimal.Zero, err
	}
	if record == nil {
		return decimal.Zero, nil
	}
	return record.Quantity, nil
}

// ListMovements devuelve el rastro de auditoría de una ubicación.
func (uc *MovementUseCase) ListMovements(locationID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	return uc.movementRepo.ListByLocation(locationID, limit, offset)
}

// applyInbound suma cantidad al registro (creándolo si no existe) y valida
// la capacidad de la ubicación cuando es positiva. El caller debe tener el
// lock de la clave.
func (uc *MovementUseCase) applyInbound(location *entity.Location, itemID string, qty decimal.Decimal, status string, now time.Time) (decimal.Decimal, error) {
	record, err := uc.inventoryRepo.Get(location.ID, itemID)
	if err != nil {
		return decimal.Zero, err
	}
	if record == nil {
		record = &entity.InventoryRecord{
			LocationID: location.ID,
			ItemID:     itemID,
			Quantity:   decimal.Zero,
			Status:     entity.InventoryStatusAvailable,
		}
	}
	newQty := record.Quantity.Add(qty)
	if location.Capacity.GreaterThan(decimal.Zero) && newQty.GreaterThan(location.Capacity) {
		return decimal.Zero, fmt.Errorf("%w: ubicación %s", domain.ErrCapacityExceeded, location.ID)
	}
	record.Quantity = newQty
	record.LastMovedAt = now
	if status != "" {
		record.Status = status
	}
	if err := uc.inventoryRepo.Upsert(record); err != nil {
		return decimal.Zero, err
	}
	return newQty, nil
}

// applyOutbound resta cantidad tras verificar suficiencia. El caller debe
// tener el lock de la clave. Un fallo no deja mutación alguna.
func (uc *MovementUseCase) applyOutbound(locationID, itemID string, qty decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	record, err := uc.inventoryRepo.Get(locationID, itemID)
	if err != nil {
		return decimal.Zero, err
	}
	if record == nil || record.Quantity.LessThan(qty) {
		return decimal.Zero, fmt.Errorf("%w: ubicación %s, ítem %s", domain.ErrInsufficientStock, locationID, itemID)
	}
	record.Quantity = record.Quantity.Sub(qty)
	record.LastMovedAt = now
	if err := uc.inventoryRepo.Upsert(record); err != nil {
		return decimal.Zero, err
	}
	return record.Quantity, nil
}

// attachBooking fija el puntero de bodega de la reserva recibida. Mejor
// esfuerzo: un BookingID que no resuelve no revierte el inventario.
func (uc *MovementUseCase) attachBooking(bookingID, locationID string, now time.Time) {
	booking, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil || booking == nil {
		uc.log.Warn().Str("booking_id", bookingID).Err(err).
			Msg("inbound: reserva no encontrada, puntero de bodega sin actualizar")
		return
	}
	booking.SetInWarehouse(locationID, now)
	if err := uc.bookingRepo.Update(booking); err != nil {
		uc.log.Warn().Str("booking_id", bookingID).Err(err).
			Msg("inbound: fallo al actualizar el puntero de bodega")
	}
}

// detachBooking limpia el puntero de bodega de la reserva despachada.
func (uc *MovementUseCase) detachBooking(bookingID string, now time.Time) {
	booking, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil || booking == nil {
		uc.log.Warn().Str("booking_id", bookingID).Err(err).
			Msg("outbound: reserva no encontrada, puntero de bodega sin limpiar")
		return
	}
	booking.ClearWarehouse(now)
	if err := uc.bookingRepo.Update(booking); err != nil {
		uc.log.Warn().Str("booking_id", bookingID).Err(err).
			Msg("outbound: fallo al limpiar el puntero de bodega")
	}
}

// audit guarda el registro de movimiento. Un fallo del rastro de auditoría
// no revierte la mutación de inventario ya confirmada.
func (uc *MovementUseCase) audit(mov *entity.InventoryMovement) {
	mov.ID = uuid.New().String()
	mov.CreatedAt = mov.Date
	if err := uc.movementRepo.Create(mov); err != nil {
		uc.log.Warn().Str("location_id", mov.LocationID).Str("item_id", mov.ItemID).Err(err).
			Msg("fallo al guardar el movimiento de inventario")
	}
}
