// Package memory implementa los puertos de persistencia sobre mapas en
// memoria protegidos por mutex. Es el almacén de los tests del motor y un
// driver utilizable sin base de datos (STORAGE_DRIVER=memory).
//
// Los adaptadores guardan y devuelven copias: el caller muta su copia y la
// confirma con Update/Upsert, igual que con una fila de base de datos.
package memory

import (
	"sync"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo almacén en memoria de reservas.
type BookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]entity.Booking
}

// NewBookingRepository construye el almacén vacío.
func NewBookingRepository() *BookingRepo {
	return &BookingRepo{bookings: make(map[string]entity.Booking)}
}

// Create inserta la reserva.
func (r *BookingRepo) Create(booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.ID] = copyBooking(*booking)
	return nil
}

// GetByID devuelve una copia de la reserva, o (nil, nil) si no existe.
func (r *BookingRepo) GetByID(id string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	out := copyBooking(b)
	return &out, nil
}

// Update sobreescribe la reserva.
func (r *BookingRepo) Update(booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.ID] = copyBooking(*booking)
	return nil
}

// Delete elimina la reserva. Existe para que los tests puedan simular una
// reserva desaparecida entre creación y descarga del OGPL.
func (r *BookingRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bookings, id)
}

// ListByStatus lista reservas por estado (vacío = todas) con paginación.
func (r *BookingRepo) ListByStatus(status string, limit, offset int) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Booking
	for _, b := range r.bookings {
		if status == "" || b.Status == status {
			out := copyBooking(b)
			result = append(result, &out)
		}
	}
	return paginate(result, limit, offset), nil
}

// copyBooking copia el struct incluyendo los punteros anulables.
func copyBooking(b entity.Booking) entity.Booking {
	if b.WarehouseStatus != nil {
		ws := *b.WarehouseStatus
		b.WarehouseStatus = &ws
	}
	if b.CurrentWarehouseLocationID != nil {
		loc := *b.CurrentWarehouseLocationID
		b.CurrentWarehouseLocationID = &loc
	}
	return b
}

// paginate aplica limit/offset sobre un slice ya filtrado.
func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
