package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// UseCase es el punto de inserción aguas arriba de los motores: registra la
// reserva (LR) con status=booked. A partir de ahí solo la mutan el motor de
// OGPL y el de inventario.
type UseCase struct {
	repo repository.BookingRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.BookingRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create registra una reserva nueva con estado inicial booked.
func (uc *UseCase) Create(in dto.CreateBookingRequest) (*entity.Booking, error) {
	if strings.TrimSpace(in.LrNo) == "" {
		return nil, fmt.Errorf("%w: lr_no es requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByID(in.LrNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe la reserva %s", domain.ErrDuplicate, in.LrNo)
	}
	now := time.Now()
	booking := &entity.Booking{
		ID:           in.LrNo,
		SenderName:   in.SenderName,
		ReceiverName: in.ReceiverName,
		FromStation:  in.FromStation,
		ToStation:    in.ToStation,
		Amount:       in.Amount,
		Status:       entity.StatusBooked,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetByID obtiene una reserva por número de LR.
func (uc *UseCase) GetByID(id string) (*entity.Booking, error) {
	booking, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, id)
	}
	return booking, nil
}

// ListByStatus lista reservas filtradas por estado (vacío = todas).
func (uc *UseCase) ListByStatus(status string, limit, offset int) ([]*entity.Booking, error) {
	if status != "" && !entity.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
	}
	return uc.repo.ListByStatus(status, limit, offset)
}
