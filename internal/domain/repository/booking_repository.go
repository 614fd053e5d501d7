package repository

import "github.com/jhoicas/logistica-api/internal/domain/entity"

// BookingRepository define el puerto de persistencia para Booking (DIP).
// GetByID devuelve (nil, nil) si la reserva no existe; la ausencia la
// interpreta cada caso de uso, no el adaptador.
type BookingRepository interface {
	Create(booking *entity.Booking) error
	GetByID(id string) (*entity.Booking, error)
	Update(booking *entity.Booking) error
	ListByStatus(status string, limit, offset int) ([]*entity.Booking, error)
}
