package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación del puerto BookingRepository sobre PostgreSQL.
type BookingRepo struct {
	q Querier
}

// NewBookingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBookingRepository(q Querier) *BookingRepo {
	return &BookingRepo{q: q}
}

// Create persiste una nueva reserva.
func (r *BookingRepo) Create(booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, sender_name, receiver_name, from_station, to_station,
			amount, status, warehouse_status, current_warehouse_location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		booking.ID, booking.SenderName, booking.ReceiverName, booking.FromStation, booking.ToStation,
		booking.Amount, booking.Status, booking.WarehouseStatus, booking.CurrentWarehouseLocationID,
		booking.CreatedAt, booking.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, booking.ID)
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por número de LR, o (nil, nil) si no existe.
func (r *BookingRepo) GetByID(id string) (*entity.Booking, error) {
	query := `
		SELECT id, sender_name, receiver_name, from_station, to_station,
			amount, status, warehouse_status, current_warehouse_location_id, created_at, updated_at
		FROM bookings WHERE id = $1`
	var b entity.Booking
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.SenderName, &b.ReceiverName, &b.FromStation, &b.ToStation,
		&b.Amount, &b.Status, &b.WarehouseStatus, &b.CurrentWarehouseLocationID,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

// Update actualiza una reserva existente.
func (r *BookingRepo) Update(booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET sender_name = $2, receiver_name = $3, from_station = $4, to_station = $5,
			amount = $6, status = $7, warehouse_status = $8,
			current_warehouse_location_id = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		booking.ID, booking.SenderName, booking.ReceiverName, booking.FromStation, booking.ToStation,
		booking.Amount, booking.Status, booking.WarehouseStatus, booking.CurrentWarehouseLocationID,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

// ListByStatus lista reservas por estado (vacío = todas) con paginación.
func (r *BookingRepo) ListByStatus(status string, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, sender_name, receiver_name, from_station, to_station,
			amount, status, warehouse_status, current_warehouse_location_id, created_at, updated_at
		FROM bookings
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var result []*entity.Booking
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(
			&b.ID, &b.SenderName, &b.ReceiverName, &b.FromStation, &b.ToStation,
			&b.Amount, &b.Status, &b.WarehouseStatus, &b.CurrentWarehouseLocationID,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		result = append(result, &b)
	}
	return result, rows.Err()
}
