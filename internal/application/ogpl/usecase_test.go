package ogpl_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/ogpl"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type ogplFixture struct {
	uc       *ogpl.UseCase
	bookings *memory.BookingRepo
	ogpls    *memory.OgplRepo
}

func newOgplFixture(t *testing.T, lrIDs ...string) *ogplFixture {
	t.Helper()
	bookings := memory.NewBookingRepository()
	ogpls := memory.NewOgplRepository()
	now := time.Now()
	for _, id := range lrIDs {
		require.NoError(t, bookings.Create(&entity.Booking{
			ID:           id,
			SenderName:   "Remitente " + id,
			ReceiverName: "Destinatario " + id,
			FromStation:  "BOG",
			ToStation:    "MDE",
			Amount:       decimal.NewFromInt(50000),
			Status:       entity.StatusBooked,
			CreatedAt:    now,
			UpdatedAt:    now,
		}))
	}
	return &ogplFixture{
		uc:       ogpl.NewUseCase(ogpls, bookings),
		bookings: bookings,
		ogpls:    ogpls,
	}
}

func (f *ogplFixture) bookingStatus(t *testing.T, lrID string) string {
	t.Helper()
	b, err := f.bookings.GetByID(lrID)
	require.NoError(t, err)
	require.NotNil(t, b, "la reserva %s debe existir", lrID)
	return b.Status
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida completo: booked → in_transit → unloaded →
// out_for_delivery → delivered
// ──────────────────────────────────────────────────────────────────────────────

func TestOgpl_CicloDeVidaCompleto(t *testing.T) {
	f := newOgplFixture(t, "LR-001", "LR-002")

	created, err := f.uc.CreateOgpl(dto.CreateOgplRequest{
		OgplNo:      "OGPL-2026-001",
		VehicleNo:   "WXY-123",
		DriverName:  "Carlos Pérez",
		FromStation: "BOG",
		ToStation:   "MDE",
		LrIDs:       []string{"LR-001", "LR-002"},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.OgplStatusCreated, created.Status)
	assert.Equal(t, entity.StatusInTransit, f.bookingStatus(t, "LR-001"),
		"crear el OGPL debe pasar cada reserva cargada a in_transit")
	assert.Equal(t, entity.StatusInTransit, f.bookingStatus(t, "LR-002"))

	unloaded, err := f.uc.CompleteUnloading(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OgplStatusUnloaded, unloaded.Status,
		"el manifiesto debe quedar en unloaded tras la descarga")
	assert.Equal(t, entity.StatusUnloaded, f.bookingStatus(t, "LR-001"))
	assert.Equal(t, entity.StatusUnloaded, f.bookingStatus(t, "LR-002"))

	_, err = f.uc.StartDelivery("LR-001")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOutForDelivery, f.bookingStatus(t, "LR-001"))

	delivered, err := f.uc.MarkDelivered("LR-001")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, delivered.Status)
	assert.Equal(t, entity.StatusDelivered, f.bookingStatus(t, "LR-001"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad de CreateOgpl: un id inválido a mitad de la lista deshace todo
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOgpl_IdInvalidoRevierteTodo(t *testing.T) {
	f := newOgplFixture(t, "LR-001", "LR-003")

	// LR-002 no existe: la creación debe fallar y deshacer la transición
	// ya aplicada a LR-001.
	created, err := f.uc.CreateOgpl(dto.CreateOgplRequest{
		OgplNo: "OGPL-2026-002",
		LrIDs:  []string{"LR-001", "LR-002", "LR-003"},
	})
	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound,
		"el error debe identificar la reserva que no resolvió")
	assert.Contains(t, err.Error(), "LR-002")

	assert.Equal(t, entity.StatusBooked, f.bookingStatus(t, "LR-001"),
		"LR-001 debe volver a booked tras el rollback")
	assert.Equal(t, entity.StatusBooked, f.bookingStatus(t, "LR-003"),
		"LR-003 nunca fue tocada y debe seguir en booked")

	// El registro tentativo del manifiesto tampoco debe sobrevivir.
	list, err := f.ogpls.List(10, 0)
	require.NoError(t, err)
	assert.Empty(t, list, "el OGPL tentativo debe eliminarse en el rollback")
}

func TestCreateOgpl_ListaVaciaRechazada(t *testing.T) {
	f := newOgplFixture(t)
	_, err := f.uc.CreateOgpl(dto.CreateOgplRequest{OgplNo: "OGPL-X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Doble carga: una reserva ya in_transit no puede entrar a un segundo OGPL.
func TestCreateOgpl_DobleCargaRechazada(t *testing.T) {
	f := newOgplFixture(t, "LR-001", "LR-002")

	first, err := f.uc.CreateOgpl(dto.CreateOgplRequest{
		OgplNo: "OGPL-A",
		LrIDs:  []string{"LR-001"},
	})
	require.NoError(t, err)

	_, err = f.uc.CreateOgpl(dto.CreateOgplRequest{
		OgplNo: "OGPL-B",
		LrIDs:  []string{"LR-002", "LR-001"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"cargar una reserva ya en tránsito debe fallar con conflicto")

	// El rollback del segundo intento no debe afectar al primer OGPL.
	assert.Equal(t, entity.StatusInTransit, f.bookingStatus(t, "LR-001"))
	assert.Equal(t, entity.StatusBooked, f.bookingStatus(t, "LR-002"),
		"LR-002 debe volver a booked tras el rollback del segundo OGPL")

	got, err := f.uc.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OgplStatusCreated, got.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad de CompleteUnloading
// ──────────────────────────────────────────────────────────────────────────────

func TestCompleteUnloading_ReservaDesaparecidaRevierte(t *testing.T) {
	f := newOgplFixture(t, "LR-001", "LR-002")

	created, err := f.uc.CreateOgpl(dto.CreateOgplRequest{
		OgplNo: "OGPL-2026-003",
		LrIDs:  []string{"LR-001", "LR-002"},
	})
	require.NoError(t, err)

	// Simular una reserva desaparecida entre carga y descarga.
	f.bookings.Delete("LR-002")

	_, err = f.uc.CompleteUnloading(created.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	assert.Equal(t, entity.StatusInTransit, f.bookingStatus(t, "LR-001"),
		"LR-001 debe restaurarse a in_transit tras el rollback de la descarga")

	got, err := f.uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OgplStatusCreated, got.Status,
		"el manifiesto no debe quedar en unloaded si la descarga falló")
}

func TestCompleteUnloading_OgplInexistente(t *testing.T) {
	f := newOgplFixture(t)
	_, err := f.uc.CompleteUnloading("no-existe")
	assert.ErrorIs(t, err, domain.ErrOgplNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Membresía: agregar y quitar reservas de un OGPL existente
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateLrs_AgregarYQuitar(t *testing.T) {
	f := newOgplFixture(t, "LR-001", "LR-002", "LR-003")

	created, err := f.uc.CreateOgpl(dto.CreateOgplRequest{
		OgplNo: "OGPL-2026-004",
		LrIDs:  []string{"LR-001"},
	})
	require.NoError(t, err)

	updated, err := f.uc.UpdateLrs(created.ID, dto.UpdateOgplLrsRequest{
		Add:    []string{"LR-002", "LR-003"},
		Remove: []string{"LR-001"},
	})
	require.NoError(t, err)

	assert.False(t, updated.ContainsLr("LR-001"))
	assert.True(t, updated.ContainsLr("LR-002"))
	assert.True(t, updated.ContainsLr("LR-003"))

	assert.Equal(t, entity.StatusBooked, f.bookingStatus(t, "LR-001"),
		"la reserva quitada debe volver a booked")
	assert.Equal(t, entity.StatusInTransit, f.bookingStatus(t, "LR-002"),
		"la reserva agregada debe pasar a in_transit")
	assert.Equal(t, entity.StatusInTransit, f.bookingStatus(t, "LR-003"))
}

// Idempotencia por id: agregar un id ya presente o quitar uno ausente no hace nada.
func TestUpdateLrs_IdempotentePorId(t *testing.T) {
	f := newOgplFixture(t, "LR-001")

	created, err := f.uc.CreateOgpl(dto.CreateOgplRequest{
		OgplNo: "OGPL-2026-005",
		LrIDs:  []string{"LR-001"},
	})
	require.NoError(t, err)

	updated, err := f.uc.UpdateLrs(created.ID, dto.UpdateOgplLrsRequest{
		Add:    []string{"LR-001"},
		Remove: []string{"LR-999"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"LR-001"}, updated.LrIDs)
	assert.Equal(t, entity.StatusInTransit, f.bookingStatus(t, "LR-001"))
}

func TestUpdateLrs_AgregarReservaEnTransitoFalla(t *testing.T) {
	f := newOgplFixture(t, "LR-001", "LR-002")

	first, err := f.uc.CreateOgpl(dto.CreateOgplRequest{
		OgplNo: "OGPL-A",
		LrIDs:  []string{"LR-001"},
	})
	require.NoError(t, err)

	second, err := f.uc.CreateOgpl(dto.CreateOgplRequest{
		OgplNo: "OGPL-B",
		LrIDs:  []string{"LR-002"},
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateLrs(second.ID, dto.UpdateOgplLrsRequest{Add: []string{"LR-001"}})
	assert.ErrorIs(t, err, domain.ErrConflict,
		"una reserva que ya viaja en otro OGPL no puede agregarse")

	got, err := f.uc.GetByID(first.ID)
	require.NoError(t, err)
	assert.True(t, got.ContainsLr("LR-001"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallo de la escritura del manifiesto durante la edición de membresía
// ──────────────────────────────────────────────────────────────────────────────

// ogplRepoConFallo envuelve el almacén en memoria y permite rechazar las
// escrituras de Update, para ejercitar la compensación por id de UpdateLrs.
type ogplRepoConFallo struct {
	*memory.OgplRepo
	failUpdate bool
}

func (r *ogplRepoConFallo) Update(o *entity.Ogpl) error {
	if r.failUpdate {
		return errors.New("escritura del manifiesto rechazada")
	}
	return r.OgplRepo.Update(o)
}

func newFlakyFixture(t *testing.T, lrIDs ...string) (*ogpl.UseCase, *memory.BookingRepo, *ogplRepoConFallo) {
	t.Helper()
	bookings := memory.NewBookingRepository()
	ogpls := &ogplRepoConFallo{OgplRepo: memory.NewOgplRepository()}
	now := time.Now()
	for _, id := range lrIDs {
		require.NoError(t, bookings.Create(&entity.Booking{
			ID: id, Status: entity.StatusBooked, CreatedAt: now, UpdatedAt: now,
		}))
	}
	return ogpl.NewUseCase(ogpls, bookings), bookings, ogpls
}

// Si la escritura del manifiesto falla al agregar, la reserva no puede quedar
// in_transit fuera de todo OGPL: estado y membresía cambian juntos por id.
func TestUpdateLrs_FalloDelManifiestoRestauraLaReservaAgregada(t *testing.T) {
	uc, bookings, ogpls := newFlakyFixture(t, "LR-001", "LR-002")

	created, err := uc.CreateOgpl(dto.CreateOgplRequest{
		OgplNo: "OGPL-2026-006",
		LrIDs:  []string{"LR-001"},
	})
	require.NoError(t, err)

	ogpls.failUpdate = true
	_, err = uc.UpdateLrs(created.ID, dto.UpdateOgplLrsRequest{Add: []string{"LR-002"}})
	require.Error(t, err, "el fallo del almacén debe propagarse")

	b, err := bookings.GetByID("LR-002")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, entity.StatusBooked, b.Status,
		"la reserva agregada debe volver a booked si la membresía no se persistió")

	got, err := ogpls.OgplRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, got.ContainsLr("LR-002"),
		"el manifiesto persistido no debe contener la reserva cuya escritura falló")
}

// Simétrico al anterior: si la escritura falla al quitar, la reserva vuelve a
// in_transit y sigue perteneciendo al manifiesto persistido.
func TestUpdateLrs_FalloDelManifiestoRestauraLaReservaQuitada(t *testing.T) {
	uc, bookings, ogpls := newFlakyFixture(t, "LR-001")

	created, err := uc.CreateOgpl(dto.CreateOgplRequest{
		OgplNo: "OGPL-2026-007",
		LrIDs:  []string{"LR-001"},
	})
	require.NoError(t, err)

	ogpls.failUpdate = true
	_, err = uc.UpdateLrs(created.ID, dto.UpdateOgplLrsRequest{Remove: []string{"LR-001"}})
	require.Error(t, err)

	b, err := bookings.GetByID("LR-001")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, entity.StatusInTransit, b.Status,
		"la reserva quitada debe volver a in_transit si la membresía no se persistió")

	got, err := ogpls.OgplRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, got.ContainsLr("LR-001"),
		"el manifiesto persistido debe conservar la reserva cuya salida falló")
}
