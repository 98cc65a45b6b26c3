package usecase_test

import (
	"context"
	"sort"

	"github.com/flipcam/flipcam-api/internal/application/usecase"
	"github.com/flipcam/flipcam-api/internal/domain/entity"
	"github.com/flipcam/flipcam-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovimientoRepo struct {
	items map[string]*entity.Movimiento
}

func newFakeMovimientoRepo() *fakeMovimientoRepo {
	return &fakeMovimientoRepo{items: map[string]*entity.Movimiento{}}
}

func (r *fakeMovimientoRepo) Create(_ context.Context, mov *entity.Movimiento) error {
	cp := *mov
	r.items[mov.ID] = &cp
	return nil
}

func (r *fakeMovimientoRepo) GetByID(_ context.Context, id string) (*entity.Movimiento, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovimientoRepo) ListRecent(_ context.Context, limit int) ([]*entity.Movimiento, error) {
	list := make([]*entity.Movimiento, 0, len(r.items))
	for _, m := range r.items {
		cp := *m
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeMovimientoRepo) Update(_ context.Context, mov *entity.Movimiento) error {
	cp := *mov
	r.items[mov.ID] = &cp
	return nil
}

func (r *fakeMovimientoRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

type fakeInventarioRepo struct {
	items map[string]*entity.ItemInventario
}

func newFakeInventarioRepo() *fakeInventarioRepo {
	return &fakeInventarioRepo{items: map[string]*entity.ItemInventario{}}
}

func (r *fakeInventarioRepo) Create(_ context.Context, item *entity.ItemInventario) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInventarioRepo) GetByID(_ context.Context, id string) (*entity.ItemInventario, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeInventarioRepo) ListAll(_ context.Context) ([]*entity.ItemInventario, error) {
	list := make([]*entity.ItemInventario, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FechaIngreso.After(list[j].FechaIngreso) })
	return list, nil
}

func (r *fakeInventarioRepo) ListNoVendidos(ctx context.Context) ([]*entity.ItemInventario, error) {
	all, _ := r.ListAll(ctx)
	var list []*entity.ItemInventario
	for _, it := range all {
		if it.Estado != entity.EstadoVendido {
			list = append(list, it)
		}
	}
	return list, nil
}

func (r *fakeInventarioRepo) Update(_ context.Context, item *entity.ItemInventario) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInventarioRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes (sin transacción real).
type fakeTxRunner struct {
	mov *fakeMovimientoRepo
	inv *fakeInventarioRepo
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	invRepo repository.InventarioRepository,
) error) error {
	return fn(r.mov, r.inv)
}
