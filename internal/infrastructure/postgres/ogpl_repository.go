package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.OgplRepository = (*OgplRepo)(nil)

// OgplRepo implementación del puerto OgplRepository sobre PostgreSQL.
// LrIDs se guarda como text[]; el array es la lista autoritativa de
// reservas sobre el manifiesto.
type OgplRepo struct {
	q Querier
}

// NewOgplRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOgplRepository(q Querier) *OgplRepo {
	return &OgplRepo{q: q}
}

// Create persiste un nuevo OGPL.
func (r *OgplRepo) Create(ogpl *entity.Ogpl) error {
	query := `
		INSERT INTO ogpls (id, ogpl_no, vehicle_no, driver_name, from_station, to_station,
			lr_ids, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		ogpl.ID, ogpl.OgplNo, ogpl.VehicleNo, ogpl.DriverName, ogpl.FromStation, ogpl.ToStation,
		ogpl.LrIDs, ogpl.Status, ogpl.CreatedAt, ogpl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ogpl: %w", err)
	}
	return nil
}

// GetByID obtiene un OGPL por ID, o (nil, nil) si no existe.
func (r *OgplRepo) GetByID(id string) (*entity.Ogpl, error) {
	query := `
		SELECT id, ogpl_no, vehicle_no, driver_name, from_station, to_station,
			lr_ids, status, created_at, updated_at
		FROM ogpls WHERE id = $1`
	var o entity.Ogpl
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OgplNo, &o.VehicleNo, &o.DriverName, &o.FromStation, &o.ToStation,
		&o.LrIDs, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ogpl: %w", err)
	}
	return &o, nil
}

// Update actualiza un OGPL existente (membresía y estado).
func (r *OgplRepo) Update(ogpl *entity.Ogpl) error {
	query := `
		UPDATE ogpls
		SET ogpl_no = $2, vehicle_no = $3, driver_name = $4, from_station = $5,
			to_station = $6, lr_ids = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ogpl.ID, ogpl.OgplNo, ogpl.VehicleNo, ogpl.DriverName, ogpl.FromStation,
		ogpl.ToStation, ogpl.LrIDs, ogpl.Status, ogpl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ogpl: %w", err)
	}
	return nil
}

// Delete elimina un OGPL (deshace un registro tentativo fallido).
func (r *OgplRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ogpls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ogpl: %w", err)
	}
	return nil
}

// List lista OGPLs con paginación.
func (r *OgplRepo) List(limit, offset int) ([]*entity.Ogpl, error) {
	query := `
		SELECT id, ogpl_no, vehicle_no, driver_name, from_station, to_station,
			lr_ids, status, created_at, updated_at
		FROM ogpls
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ogpls: %w", err)
	}
	defer rows.Close()

	var result []*entity.Ogpl
	for rows.Next() {
		var o entity.Ogpl
		if err := rows.Scan(
			&o.ID, &o.OgplNo, &o.VehicleNo, &o.DriverName, &o.FromStation, &o.ToStation,
			&o.LrIDs, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ogpl: %w", err)
		}
		result = append(result, &o)
	}
	return result, rows.Err()
}
