package http_test

import (
	"context"
	"sort"

	"github.com/flipcam/flipcam-api/internal/application/usecase"
	"github.com/flipcam/flipcam-api/internal/domain/entity"
	"github.com/flipcam/flipcam-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria para los tests de extremo a extremo de la API.
// Mismos contratos que los repositorios Postgres, sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	movimientos map[string]*entity.Movimiento
	inventario  map[string]*entity.ItemInventario
	usuarios    map[string]*entity.Usuario
	kpiBase     entity.KPIBase
}

func newMemStore() *memStore {
	return &memStore{
		movimientos: map[string]*entity.Movimiento{},
		inventario:  map[string]*entity.ItemInventario{},
		usuarios:    map[string]*entity.Usuario{},
	}
}

// --- MovimientoRepository ---

type memMovimientoRepo struct{ s *memStore }

func (r *memMovimientoRepo) Create(_ context.Context, mov *entity.Movimiento) error {
	cp := *mov
	r.s.movimientos[mov.ID] = &cp
	return nil
}

func (r *memMovimientoRepo) GetByID(_ context.Context, id string) (*entity.Movimiento, error) {
	m, ok := r.s.movimientos[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMovimientoRepo) ListRecent(_ context.Context, limit int) ([]*entity.Movimiento, error) {
	list := make([]*entity.Movimiento, 0, len(r.s.movimientos))
	for _, m := range r.s.movimientos {
		cp := *m
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *memMovimientoRepo) Update(_ context.Context, mov *entity.Movimiento) error {
	cp := *mov
	r.s.movimientos[mov.ID] = &cp
	return nil
}

func (r *memMovimientoRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.s.movimientos[id]
	delete(r.s.movimientos, id)
	return ok, nil
}

// --- InventarioRepository ---

type memInventarioRepo struct{ s *memStore }

func (r *memInventarioRepo) Create(_ context.Context, item *entity.ItemInventario) error {
	cp := *item
	r.s.inventario[item.ID] = &cp
	return nil
}

func (r *memInventarioRepo) GetByID(_ context.Context, id string) (*entity.ItemInventario, error) {
	it, ok := r.s.inventario[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memInventarioRepo) ListAll(_ context.Context) ([]*entity.ItemInventario, error) {
	list := make([]*entity.ItemInventario, 0, len(r.s.inventario))
	for _, it := range r.s.inventario {
		cp := *it
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FechaIngreso.After(list[j].FechaIngreso) })
	return list, nil
}

func (r *memInventarioRepo) ListNoVendidos(_ context.Context) ([]*entity.ItemInventario, error) {
	all, _ := r.ListAll(context.Background())
	out := make([]*entity.ItemInventario, 0, len(all))
	for _, it := range all {
		if !it.Vendido() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memInventarioRepo) Update(_ context.Context, item *entity.ItemInventario) error {
	cp := *item
	r.s.inventario[item.ID] = &cp
	return nil
}

func (r *memInventarioRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.s.inventario[id]
	delete(r.s.inventario, id)
	return ok, nil
}

// --- UsuarioRepository ---

type memUsuarioRepo struct{ s *memStore }

func (r *memUsuarioRepo) Create(_ context.Context, user *entity.Usuario) error {
	cp := *user
	r.s.usuarios[user.ID] = &cp
	return nil
}

func (r *memUsuarioRepo) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	u, ok := r.s.usuarios[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUsuarioRepo) FindByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range r.s.usuarios {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// --- KPIRepository ---

type memKPIRepo struct{ s *memStore }

func (r *memKPIRepo) GetBase(context.Context) (*entity.KPIBase, error) {
	base := r.s.kpiBase
	return &base, nil
}

// --- TxRunner ---

// memTxRunner ejecuta el callback directamente sobre el almacén compartido.
// El test no necesita atomicidad real, solo que ambos repos vean los mismos datos.
type memTxRunner struct{ s *memStore }

func (tx *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	invRepo repository.InventarioRepository,
) error) error {
	return fn(&memMovimientoRepo{s: tx.s}, &memInventarioRepo{s: tx.s})
}

var _ usecase.TxRunner = (*memTxRunner)(nil)
