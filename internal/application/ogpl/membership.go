package ogpl

import (
	"fmt"
	"time"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/journal"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// UpdateLrs edita la membresía de un OGPL existente: las reservas agregadas
// pasan a in_transit y entran a LrIDs; las quitadas vuelven a booked y salen
// de LrIDs. La operación es idempotente por id (agregar un id ya presente o
// quitar uno ausente no hace nada), pero estado de reserva y membresía
// cambian juntos para cada id procesado: nunca queda un id en LrIDs cuya
// reserva no fue transicionada, ni al revés.
func (uc *UseCase) UpdateLrs(ogplID string, in dto.UpdateOgplLrsRequest) (*entity.Ogpl, error) {
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

	for _, lrID := range in.Add {
		if ogpl.ContainsLr(lrID) {
			continue
		}
		booking, err := uc.bookingRepo.GetByID(lrID)
		if err != nil {
			return nil, err
		}
		if booking == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, lrID)
		}
		if booking.Status == entity.StatusInTransit {
			return nil, fmt.Errorf("%w: la reserva %s ya está en tránsito", domain.ErrConflict, lrID)
		}
		prev := booking.Status
		booking.Status = entity.StatusInTransit
		booking.UpdatedAt = now
		if err := uc.bookingRepo.Update(booking); err != nil {
			return nil, err
		}
		j := journal.New()
		j.Record(func() error { return uc.restoreStatus(lrID, prev) })
		ogpl.LrIDs = append(ogpl.LrIDs, lrID)
		ogpl.UpdatedAt = now
		// Persistir por id mantiene acoplados estado y membresía: si la
		// escritura del manifiesto falla, la reserva vuelve a su estado
		// previo en vez de quedar in_transit fuera de todo OGPL.
		if err := uc.ogplRepo.Update(ogpl); err != nil {
			j.Revert()
			return nil, err
		}
	}

	for _, lrID := range in.Remove {
		if !ogpl.ContainsLr(lrID) {
			continue
		}
		booking, err := uc.bookingRepo.GetByID(lrID)
		if err != nil {
			return nil, err
		}
		if booking == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, lrID)
		}
		prev := booking.Status
		booking.Status = entity.StatusBooked
		booking.UpdatedAt = now
		if err := uc.bookingRepo.Update(booking); err != nil {
			return nil, err
		}
		j := journal.New()
		j.Record(func() error { return uc.restoreStatus(lrID, prev) })
		ogpl.RemoveLr(lrID)
		ogpl.UpdatedAt = now
		if err := uc.ogplRepo.Update(ogpl); err != nil {
			j.Revert()
			return nil, err
		}
	}

	return ogpl, nil
}
