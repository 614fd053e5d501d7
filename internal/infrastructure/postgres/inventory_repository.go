package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)
var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene el registro de un ítem en una ubicación, o (nil, nil) si no existe.
func (r *InventoryRepo) Get(locationID, itemID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT location_id, item_id, quantity, status, last_moved_at
		FROM inventory WHERE location_id = $1 AND item_id = $2`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, locationID, itemID).Scan(
		&rec.LocationID, &rec.ItemID, &rec.Quantity, &rec.Status, &rec.LastMovedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &rec, nil
}

// Upsert inserta o actualiza el registro por (ubicación, ítem).
func (r *InventoryRepo) Upsert(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (location_id, item_id, quantity, status, last_moved_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (location_id, item_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, status = EXCLUDED.status,
			last_moved_at = EXCLUDED.last_moved_at`
	_, err := r.q.Exec(context.Background(), query,
		record.LocationID, record.ItemID, record.Quantity, record.Status, record.LastMovedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// ListByLocation devuelve los registros de una ubicación.
func (r *InventoryRepo) ListByLocation(locationID string) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT location_id, item_id, quantity, status, last_moved_at
		FROM inventory WHERE location_id = $1 ORDER BY item_id`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var result []*entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(&rec.LocationID, &rec.ItemID, &rec.Quantity, &rec.Status, &rec.LastMovedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		result = append(result, &rec)
	}
	return result, rows.Err()
}

// InventoryMovementRepo implementación del rastro de auditoría sobre PostgreSQL.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create guarda un movimiento de inventario.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, transaction_id, location_id, item_id, type,
			quantity, booking_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.TransactionID, movement.LocationID, movement.ItemID, movement.Type,
		movement.Quantity, movement.BookingID, movement.Date, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory movement: %w", err)
	}
	return nil
}

// ListByLocation devuelve los movimientos de una ubicación, más recientes primero.
func (r *InventoryMovementRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, transaction_id, location_id, item_id, type, quantity, booking_id, date, created_at
		FROM inventory_movements
		WHERE location_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory movements: %w", err)
	}
	defer rows.Close()

	var result []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.LocationID, &m.ItemID, &m.Type,
			&m.Quantity, &m.BookingID, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory movement: %w", err)
		}
		result = append(result, &m)
	}
	return result, rows.Err()
}
