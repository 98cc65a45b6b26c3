package repository

import (
	"context"

	"github.com/flipcam/flipcam-api/internal/domain/entity"
)

// MovimientoRepository define el puerto de persistencia para Movimiento (DIP).
type MovimientoRepository interface {
	Create(ctx context.Context, mov *entity.Movimiento) error
	GetByID(ctx context.Context, id string) (*entity.Movimiento, error)
	// ListRecent devuelve los movimientos más recientes ordenados por fecha descendente.
	ListRecent(ctx context.Context, limit int) ([]*entity.Movimiento, error)
	Update(ctx context.Context, mov *entity.Movimiento) error
	// Delete devuelve false si la fila ya no existía (borrado idempotente).
	Delete(ctx context.Context, id string) (bool, error)
}
