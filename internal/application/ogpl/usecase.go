package ogpl

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/journal"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// UseCase es el motor de OGPL: crea manifiestos de tránsito, transiciona
// las reservas cargadas y descarga el manifiesto en destino, con semántica
// todo-o-nada sobre el conjunto de reservas.
//
// mu serializa las operaciones multi-reserva: un CreateOgpl o
// CompleteUnloading termina completo antes de que otra llamada toque las
// mismas reservas, lo que preserva el contrato de rollback del Journal.
type UseCase struct {
	mu          sync.Mutex
	ogplRepo    repository.OgplRepository
	bookingRepo repository.BookingRepository
}

// NewUseCase construye el motor de OGPL.
func NewUseCase(ogplRepo repository.OgplRepository, bookingRepo repository.BookingRepository) *UseCase {
	return &UseCase{ogplRepo: ogplRepo, bookingRepo: bookingRepo}
}

// CreateOgpl registra un manifiesto y pasa cada reserva de la lista a
// in_transit, en el orden dado. Si alguna reserva no existe (o ya viaja en
// otro OGPL), la operación es atómica: se deshacen las transiciones ya
// aplicadas, se elimina el registro tentativo del manifiesto y se devuelve
// el error identificando la reserva problemática.
func (uc *UseCase) CreateOgpl(in dto.CreateOgplRequest) (*entity.Ogpl, error) {
	if len(in.LrIDs) == 0 {
		return nil, fmt.Errorf("%w: lr_ids no puede estar vacío", domain.ErrInvalidInput)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := time.Now()
	ogpl := &entity.Ogpl{
		ID:          uuid.New().String(),
		OgplNo:      in.OgplNo,
		VehicleNo:   in.VehicleNo,
		DriverName:  in.DriverName,
		FromStation: in.FromStation,
		ToStation:   in.ToStation,
		LrIDs:       append([]string(nil), in.LrIDs...),
		Status:      entity.OgplStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Registro tentativo: si algo falla más abajo, el journal lo elimina.
	if err := uc.ogplRepo.Create(ogpl); err != nil {
		return nil, err
	}
	j := journal.New()
	j.Record(func() error { return uc.ogplRepo.Delete(ogpl.ID) })

	for _, lrID := range in.LrIDs {
		booking, err := uc.bookingRepo.GetByID(lrID)
		if err != nil {
			j.Revert()
			return nil, err
		}
		if booking == nil {
			j.Revert()
			return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, lrID)
		}
		if booking.Status == entity.StatusInTransit {
			// Doble carga: la reserva ya viaja en otro OGPL.
			j.Revert()
			return nil, fmt.Errorf("%w: la reserva %s ya está en tránsito", domain.ErrConflict, lrID)
		}
		prev := booking.Status
		booking.Status = entity.StatusInTransit
		booking.UpdatedAt = now
		if err := uc.bookingRepo.Update(booking); err != nil {
			j.Revert()
			return nil, err
		}
		j.Record(func() error { return uc.restoreStatus(lrID, prev) })
	}

	return ogpl, nil
}

// CompleteUnloading marca la llegada del OGPL: cada reserva cargada pasa a
// unloaded, en orden, y solo después el manifiesto mismo queda en unloaded.
// Si una reserva no resuelve a mitad del recorrido, se restauran los
// estados previos de las ya transicionadas y se propaga el error; el
// estado del manifiesto no cambia.
func (uc *UseCase) CompleteUnloading(ogplID string) (*entity.Ogpl, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ogpl, err := uc.ogplRepo.GetByID(ogplID)
	if err != nil {
		return nil, err
	}
	if ogpl == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrOgplNotFound, ogplID)
	}

	now := time.Now()
	j := journal.New()
	for _, lrID := range ogpl.LrIDs {
		booking, err := uc.bookingRepo.GetByID(lrID)
		if err != nil {
			j.Revert()
			return nil, err
		}
		if booking == nil {
			j.Revert()
			return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, lrID)
		}
		prev := booking.Status
		booking.Status = entity.StatusUnloaded
		booking.UpdatedAt = now
		if err := uc.bookingRepo.Update(booking); err != nil {
			j.Revert()
			return nil, err
		}
		j.Record(func() error { return uc.restoreStatus(lrID, prev) })
	}

	ogpl.Status = entity.OgplStatusUnloaded
	ogpl.UpdatedAt = now
	if err := uc.ogplRepo.Update(ogpl); err != nil {
		j.Revert()
		return nil, err
	}
	return ogpl, nil
}

// GetByID obtiene un OGPL por identificador.
func (uc *UseCase) GetByID(ogplID string) (*entity.Ogpl, error) {
	ogpl, err := uc.ogplRepo.GetByID(ogplID)
	if err != nil {
		return nil, err
	}
	if ogpl == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrOgplNotFound, ogplID)
	}
	return ogpl, nil
}

// List lista OGPLs con paginación.
func (uc *UseCase) List(limit, offset int) ([]*entity.Ogpl, error) {
	return uc.ogplRepo.List(limit, offset)
}

// restoreStatus devuelve una reserva a su estado previo (compensación del
// journal). Si la reserva desapareció entre tanto no hay nada que restaurar.
func (uc *UseCase) restoreStatus(lrID, prev string) error {
	booking, err := uc.bookingRepo.GetByID(lrID)
	if err != nil {
		return err
	}
	if booking == nil {
		return nil
	}
	booking.Status = prev
	booking.UpdatedAt = time.Now()
	return uc.bookingRepo.Update(booking)
}
