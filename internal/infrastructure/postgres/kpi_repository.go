package postgres

import (
	"context"
	"fmt"

	"github.com/flipcam/flipcam-api/internal/domain/entity"
	"github.com/flipcam/flipcam-api/internal/domain/repository"
)

var _ repository.KPIRepository = (*KPIRepo)(nil)

// KPIRepo lee el agregado financiero de la vista v_kpis (read-only).
type KPIRepo struct {
	q Querier
}

// NewKPIRepository construye el adaptador de lectura de KPIs.
func NewKPIRepository(q Querier) *KPIRepo {
	return &KPIRepo{q: q}
}

// GetBase lee la única fila de v_kpis. La vista agrega movimientos, por lo que
// siempre devuelve una fila (ceros con la tabla vacía); un error aquí es de upstream.
func (r *KPIRepo) GetBase(ctx context.Context) (*entity.KPIBase, error) {
	query := `SELECT caja_actual, capital, utilidad FROM v_kpis`
	var k entity.KPIBase
	err := r.q.QueryRow(ctx, query).Scan(&k.CajaActual, &k.Capital, &k.Utilidad)
	if err != nil {
		return nil, fmt.Errorf("get kpis: %w", err)
	}
	return &k, nil
}
