package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/flipcam/flipcam-api/internal/domain/entity"
	"github.com/flipcam/flipcam-api/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación del puerto InventarioRepository sobre PostgreSQL (usable con pool o tx).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

const inventarioColumns = `id, titulo, marca, modelo, estado, costo, precio_venta, fecha_ingreso, fecha_venta, notas, creado_por, actualizado_por`

// Create persiste un item nuevo.
func (r *InventarioRepo) Create(ctx context.Context, item *entity.ItemInventario) error {
	query := `
		INSERT INTO inventario (id, titulo, marca, modelo, estado, costo, precio_venta, fecha_ingreso, fecha_venta, notas, creado_por, actualizado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Titulo, item.Marca, item.Modelo, item.Estado, item.Costo,
		item.PrecioVenta, item.FechaIngreso, item.FechaVenta, item.Notas,
		item.CreadoPor, item.ActualizadoPor,
	)
	if err != nil {
		return fmt.Errorf("insert item inventario: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID. Devuelve nil, nil si no existe.
func (r *InventarioRepo) GetByID(ctx context.Context, id string) (*entity.ItemInventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventario WHERE id = $1`
	var i entity.ItemInventario
	err := r.q.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Titulo, &i.Marca, &i.Modelo, &i.Estado, &i.Costo,
		&i.PrecioVenta, &i.FechaIngreso, &i.FechaVenta, &i.Notas,
		&i.CreadoPor, &i.ActualizadoPor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item inventario: %w", err)
	}
	return &i, nil
}

// ListAll lista todos los items ordenados por fecha de ingreso descendente.
func (r *InventarioRepo) ListAll(ctx context.Context) ([]*entity.ItemInventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventario ORDER BY fecha_ingreso DESC`
	return r.list(ctx, query)
}

// ListNoVendidos lista los items con estado distinto de vendido.
func (r *InventarioRepo) ListNoVendidos(ctx context.Context) ([]*entity.ItemInventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventario WHERE estado <> $1 ORDER BY fecha_ingreso DESC`
	return r.list(ctx, query, entity.EstadoVendido)
}

func (r *InventarioRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ItemInventario, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemInventario
	for rows.Next() {
		var i entity.ItemInventario
		if err := rows.Scan(&i.ID, &i.Titulo, &i.Marca, &i.Modelo, &i.Estado, &i.Costo,
			&i.PrecioVenta, &i.FechaIngreso, &i.FechaVenta, &i.Notas,
			&i.CreadoPor, &i.ActualizadoPor); err != nil {
			return nil, fmt.Errorf("scan item inventario: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza un item existente.
func (r *InventarioRepo) Update(ctx context.Context, item *entity.ItemInventario) error {
	query := `
		UPDATE inventario SET titulo = $2, marca = $3, modelo = $4, estado = $5, costo = $6,
			precio_venta = $7, fecha_venta = $8, notas = $9, actualizado_por = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Titulo, item.Marca, item.Modelo, item.Estado, item.Costo,
		item.PrecioVenta, item.FechaVenta, item.Notas, item.ActualizadoPor,
	)
	if err != nil {
		return fmt.Errorf("update item inventario: %w", err)
	}
	return nil
}

// Delete borra un item por ID. Devuelve false si la fila ya no existía.
func (r *InventarioRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventario WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete item inventario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
