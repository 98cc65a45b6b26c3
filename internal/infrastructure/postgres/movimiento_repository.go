package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/flipcam/flipcam-api/internal/domain/entity"
	"github.com/flipcam/flipcam-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

const movimientoColumns = `id, tipo, monto, descripcion, fecha, equipo_id, metadata, creado_por, created_at`

// Create persiste un movimiento nuevo.
func (r *MovimientoRepo) Create(ctx context.Context, mov *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, tipo, monto, descripcion, fecha, equipo_id, metadata, creado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.Tipo, mov.Monto, mov.Descripcion, mov.Fecha,
		mov.EquipoID, mov.Metadata, mov.CreadoPor, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil, nil si no existe.
func (r *MovimientoRepo) GetByID(ctx context.Context, id string) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos WHERE id = $1`
	var m entity.Movimiento
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Tipo, &m.Monto, &m.Descripcion, &m.Fecha,
		&m.EquipoID, &m.Metadata, &m.CreadoPor, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// ListRecent lista los movimientos más recientes ordenados por fecha descendente.
func (r *MovimientoRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos ORDER BY fecha DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(&m.ID, &m.Tipo, &m.Monto, &m.Descripcion, &m.Fecha,
			&m.EquipoID, &m.Metadata, &m.CreadoPor, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un movimiento existente.
func (r *MovimientoRepo) Update(ctx context.Context, mov *entity.Movimiento) error {
	query := `
		UPDATE movimientos SET tipo = $2, monto = $3, descripcion = $4, fecha = $5, equipo_id = $6, metadata = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.Tipo, mov.Monto, mov.Descripcion, mov.Fecha, mov.EquipoID, mov.Metadata,
	)
	if err != nil {
		return fmt.Errorf("update movimiento: %w", err)
	}
	return nil
}

// Delete borra un movimiento por ID. Devuelve false si la fila ya no existía.
func (r *MovimientoRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM movimientos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete movimiento: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
