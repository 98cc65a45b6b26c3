package repository

import (
	"context"

	"github.com/flipcam/flipcam-api/internal/domain/entity"
)

// KPIRepository lee el agregado financiero precomputado (vista v_kpis, read-only).
type KPIRepository interface {
	// GetBase devuelve la única fila del agregado. Error si la vista no responde.
	GetBase(ctx context.Context) (*entity.KPIBase, error)
}
