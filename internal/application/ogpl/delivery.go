package ogpl

import (
	"fmt"
	"time"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// StartDelivery pasa una reserva descargada a reparto (out_for_delivery).
func (uc *UseCase) StartDelivery(bookingID string) (*entity.Booking, error) {
	return uc.setStatus(bookingID, entity.StatusOutForDelivery)
}

// MarkDelivered cierra la reserva con la prueba de entrega (delivered).
func (uc *UseCase) MarkDelivered(bookingID string) (*entity.Booking, error) {
	return uc.setStatus(bookingID, entity.StatusDelivered)
}

func (uc *UseCase) setStatus(bookingID, status string) (*entity.Booking, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	booking, err := uc.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, bookingID)
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	if err := uc.bookingRepo.Update(booking); err != nil {
		return nil, err
	}
	return booking, nil
}
