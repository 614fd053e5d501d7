package warehouse_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/warehouse"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/infrastructure/memory"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testItem = "caja-carpas"
	locA     = "loc-a"
	locB     = "loc-b"
)

type movementFixture struct {
	uc        *warehouse.MovementUseCase
	bookings  *memory.BookingRepo
	locations *memory.LocationRepo
	inventory *memory.InventoryRepo
	movements *memory.MovementRepo
}

// newMovementFixture arma el motor con dos ubicaciones (locA y locB, esta
// última con la capacidad indicada; cero = sin límite).
func newMovementFixture(t *testing.T, capacityB decimal.Decimal) *movementFixture {
	t.Helper()
	bookings := memory.NewBookingRepository()
	locations := memory.NewLocationRepository()
	inventory := memory.NewInventoryRepository()
	movements := memory.NewMovementRepository()

	now := time.Now()
	require.NoError(t, locations.Create(&entity.Location{
		ID: locA, WarehouseID: "wh-1", Name: "Rack A1", Type: entity.LocationTypeRack,
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, locations.Create(&entity.Location{
		ID: locB, WarehouseID: "wh-1", Name: "Bin B1", Type: entity.LocationTypeBin,
		Capacity: capacityB, CreatedAt: now, UpdatedAt: now,
	}))

	log := logger.New(logger.Config{Level: "error"})
	return &movementFixture{
		uc:        warehouse.NewMovementUseCase(inventory, movements, locations, bookings, log),
		bookings:  bookings,
		locations: locations,
		inventory: inventory,
		movements: movements,
	}
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func (f *movementFixture) onHand(t *testing.T, locationID string) decimal.Decimal {
	t.Helper()
	q, err := f.uc.GetInventory(locationID, testItem)
	require.NoError(t, err)
	return q
}

// ──────────────────────────────────────────────────────────────────────────────
// Inbound
// ──────────────────────────────────────────────────────────────────────────────

func TestInbound_CreaRegistroYAcumula(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)

	// Primer recibo crea el registro perezosamente.
	q, err := f.uc.Inbound(dto.InboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(5)})
	require.NoError(t, err)
	assert.True(t, qty(5).Equal(q), "el primer recibo debe dejar cantidad 5, obtuvo %s", q)

	// Segundo recibo acumula sobre el mismo registro.
	q, err = f.uc.Inbound(dto.InboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(5)})
	require.NoError(t, err)
	assert.True(t, qty(10).Equal(q), "recibir 5+5 debe dejar cantidad 10, obtuvo %s", q)
}

func TestInbound_CantidadNoPositivaRechazada(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)
	_, err := f.uc.Inbound(dto.InboundRequest{LocationID: locA, ItemID: testItem, Quantity: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Inbound(dto.InboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(-3)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInbound_UbicacionInexistente(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)
	_, err := f.uc.Inbound(dto.InboundRequest{LocationID: "no-existe", ItemID: testItem, Quantity: qty(1)})
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestInbound_CapacidadExcedida(t *testing.T) {
	f := newMovementFixture(t, qty(10))

	_, err := f.uc.Inbound(dto.InboundRequest{LocationID: locB, ItemID: testItem, Quantity: qty(8)})
	require.NoError(t, err)

	_, err = f.uc.Inbound(dto.InboundRequest{LocationID: locB, ItemID: testItem, Quantity: qty(5)})
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded,
		"recibir por encima de la capacidad debe rechazarse")
	assert.True(t, qty(8).Equal(f.onHand(t, locB)),
		"la cantidad no debe cambiar tras el rechazo por capacidad")
}

// El puntero de bodega de la reserva se fija junto con el recibo.
func TestInbound_ActualizaPunteroDeBodega(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)
	now := time.Now()
	require.NoError(t, f.bookings.Create(&entity.Booking{
		ID: "LR-010", Status: entity.StatusUnloaded, CreatedAt: now, UpdatedAt: now,
	}))

	_, err := f.uc.Inbound(dto.InboundRequest{
		LocationID: locA, ItemID: testItem, Quantity: qty(3), BookingID: "LR-010",
	})
	require.NoError(t, err)

	b, err := f.bookings.GetByID("LR-010")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, b.InWarehouse(), "la reserva debe quedar in_warehouse tras el recibo")
	require.NotNil(t, b.CurrentWarehouseLocationID)
	assert.Equal(t, locA, *b.CurrentWarehouseLocationID)
	assert.Equal(t, entity.StatusUnloaded, b.Status,
		"el estado principal de la reserva no cambia por operaciones de bodega")
}

// Efecto secundario de mejor esfuerzo: una reserva que no resuelve no
// impide confirmar el inventario.
func TestInbound_ReservaInexistenteNoRevierteInventario(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)

	q, err := f.uc.Inbound(dto.InboundRequest{
		LocationID: locA, ItemID: testItem, Quantity: qty(4), BookingID: "LR-fantasma",
	})
	require.NoError(t, err, "el recibo debe confirmarse aunque la reserva no exista")
	assert.True(t, qty(4).Equal(q))
}

// ──────────────────────────────────────────────────────────────────────────────
// Outbound
// ──────────────────────────────────────────────────────────────────────────────

func TestOutbound_DespachaYLimpiaPuntero(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)
	now := time.Now()
	require.NoError(t, f.bookings.Create(&entity.Booking{
		ID: "LR-020", Status: entity.StatusUnloaded, CreatedAt: now, UpdatedAt: now,
	}))

	_, err := f.uc.Inbound(dto.InboundRequest{
		LocationID: locA, ItemID: testItem, Quantity: qty(10), BookingID: "LR-020",
	})
	require.NoError(t, err)

	q, err := f.uc.Outbound(dto.OutboundRequest{
		LocationID: locA, ItemID: testItem, Quantity: qty(4), BookingID: "LR-020",
	})
	require.NoError(t, err)
	assert.True(t, qty(6).Equal(q), "despachar 4 de 10 debe dejar 6, obtuvo %s", q)

	b, err := f.bookings.GetByID("LR-020")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.False(t, b.InWarehouse())
	assert.Nil(t, b.CurrentWarehouseLocationID,
		"despachar debe limpiar el puntero de ubicación de la reserva")
	require.NotNil(t, b.WarehouseStatus)
	assert.Equal(t, entity.WarehouseStatusInTransit, *b.WarehouseStatus)
}

func TestOutbound_InventarioInsuficienteSinMutacion(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)

	_, err := f.uc.Inbound(dto.InboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(3)})
	require.NoError(t, err)

	_, err = f.uc.Outbound(dto.OutboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(5)})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, qty(3).Equal(f.onHand(t, locA)),
		"un despacho rechazado no debe mutar la cantidad")
}

func TestOutbound_RegistroInexistenteEsInsuficiente(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)
	_, err := f.uc.Outbound(dto.OutboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(1)})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"despachar sin registro previo equivale a inventario insuficiente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transfer: débito y crédito como una sola operación
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_ConservaLaCantidadTotal(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)

	_, err := f.uc.Inbound(dto.InboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(10)})
	require.NoError(t, err)

	err = f.uc.Transfer(dto.TransferRequest{
		FromLocationID: locA, ToLocationID: locB, ItemID: testItem, Quantity: qty(6),
	})
	require.NoError(t, err)

	assert.True(t, qty(4).Equal(f.onHand(t, locA)))
	assert.True(t, qty(6).Equal(f.onHand(t, locB)))
}

func TestTransfer_OrigenInsuficienteDejaAmbosIntactos(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)

	_, err := f.uc.Inbound(dto.InboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(2)})
	require.NoError(t, err)

	err = f.uc.Transfer(dto.TransferRequest{
		FromLocationID: locA, ToLocationID: locB, ItemID: testItem, Quantity: qty(5),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, qty(2).Equal(f.onHand(t, locA)))
	assert.True(t, decimal.Zero.Equal(f.onHand(t, locB)))
}

// Fallo del lado del crédito (capacidad del destino): el débito ya aplicado
// al origen debe revertirse y ambos saldos quedar como estaban.
func TestTransfer_CreditoRechazadoRevierteDebito(t *testing.T) {
	f := newMovementFixture(t, qty(5))

	_, err := f.uc.Inbound(dto.InboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(10)})
	require.NoError(t, err)
	_, err = f.uc.Inbound(dto.InboundRequest{LocationID: locB, ItemID: testItem, Quantity: qty(4)})
	require.NoError(t, err)

	err = f.uc.Transfer(dto.TransferRequest{
		FromLocationID: locA, ToLocationID: locB, ItemID: testItem, Quantity: qty(3),
	})
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	assert.True(t, qty(10).Equal(f.onHand(t, locA)),
		"el débito del origen debe revertirse cuando el destino rechaza el crédito")
	assert.True(t, qty(4).Equal(f.onHand(t, locB)))
}

// Un traslado totalmente revertido no deja rastro en el registro del origen:
// además de la cantidad, LastMovedAt vuelve a su valor previo.
func TestTransfer_RevertidoRestauraLastMovedAt(t *testing.T) {
	f := newMovementFixture(t, qty(5))

	_, err := f.uc.Inbound(dto.InboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(10)})
	require.NoError(t, err)
	_, err = f.uc.Inbound(dto.InboundRequest{LocationID: locB, ItemID: testItem, Quantity: qty(4)})
	require.NoError(t, err)

	before, err := f.inventory.Get(locA, testItem)
	require.NoError(t, err)
	require.NotNil(t, before)

	err = f.uc.Transfer(dto.TransferRequest{
		FromLocationID: locA, ToLocationID: locB, ItemID: testItem, Quantity: qty(3),
	})
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	after, err := f.inventory.Get(locA, testItem)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.True(t, before.Quantity.Equal(after.Quantity))
	assert.True(t, before.LastMovedAt.Equal(after.LastMovedAt),
		"un traslado revertido no debe avanzar LastMovedAt del origen")
}

func TestTransfer_MismaUbicacionRechazada(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)
	err := f.uc.Transfer(dto.TransferRequest{
		FromLocationID: locA, ToLocationID: locA, ItemID: testItem, Quantity: qty(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Las dos filas de auditoría de un traslado comparten transaction_id.
func TestTransfer_AuditoriaCompartida(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)

	_, err := f.uc.Inbound(dto.InboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(10)})
	require.NoError(t, err)
	err = f.uc.Transfer(dto.TransferRequest{
		FromLocationID: locA, ToLocationID: locB, ItemID: testItem, Quantity: qty(7),
	})
	require.NoError(t, err)

	outA, err := f.uc.ListMovements(locA, 10, 0)
	require.NoError(t, err)
	inB, err := f.uc.ListMovements(locB, 10, 0)
	require.NoError(t, err)

	var debit, credit *entity.InventoryMovement
	for _, m := range outA {
		if m.Type == entity.MovementTypeTransfer {
			debit = m
		}
	}
	for _, m := range inB {
		if m.Type == entity.MovementTypeTransfer {
			credit = m
		}
	}
	require.NotNil(t, debit, "el origen debe tener una fila de traslado")
	require.NotNil(t, credit, "el destino debe tener una fila de traslado")
	assert.Equal(t, debit.TransactionID, credit.TransactionID,
		"ambas filas del traslado deben compartir transaction_id")
	assert.True(t, qty(-7).Equal(debit.Quantity), "el débito se registra con signo negativo")
	assert.True(t, qty(7).Equal(credit.Quantity))
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetInventory_SinRegistroEsCero(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)
	q, err := f.uc.GetInventory(locA, "item-desconocido")
	require.NoError(t, err)
	assert.True(t, decimal.Zero.Equal(q), "sin registro la cantidad consultable es cero")
}

func TestListMovements_RastroPorUbicacion(t *testing.T) {
	f := newMovementFixture(t, decimal.Zero)

	_, err := f.uc.Inbound(dto.InboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(5)})
	require.NoError(t, err)
	_, err = f.uc.Outbound(dto.OutboundRequest{LocationID: locA, ItemID: testItem, Quantity: qty(2)})
	require.NoError(t, err)

	trail, err := f.uc.ListMovements(locA, 10, 0)
	require.NoError(t, err)
	require.Len(t, trail, 2)
	assert.Equal(t, entity.MovementTypeInbound, trail[0].Type)
	assert.Equal(t, entity.MovementTypeOutbound, trail[1].Type)
	assert.True(t, qty(-2).Equal(trail[1].Quantity))
}
