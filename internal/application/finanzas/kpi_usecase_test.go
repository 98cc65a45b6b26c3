package finanzas_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flipcam/flipcam-api/internal/application/finanzas"
	"github.com/flipcam/flipcam-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: agregado fijo + inventario en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeKPIRepo struct {
	base *entity.KPIBase
	err  error
}

func (r *fakeKPIRepo) GetBase(context.Context) (*entity.KPIBase, error) {
	return r.base, r.err
}

type fakeInventario struct {
	noVendidos []*entity.ItemInventario
}

func (r *fakeInventario) Create(context.Context, *entity.ItemInventario) error { return nil }
func (r *fakeInventario) GetByID(context.Context, string) (*entity.ItemInventario, error) {
	return nil, nil
}
func (r *fakeInventario) ListAll(context.Context) ([]*entity.ItemInventario, error) {
	return r.noVendidos, nil
}
func (r *fakeInventario) ListNoVendidos(context.Context) ([]*entity.ItemInventario, error) {
	return r.noVendidos, nil
}
func (r *fakeInventario) Update(context.Context, *entity.ItemInventario) error { return nil }
func (r *fakeInventario) Delete(context.Context, string) (bool, error)         { return false, nil }

func item(costo int64, precioVenta *int64) *entity.ItemInventario {
	it := &entity.ItemInventario{
		Titulo: "item",
		Estado: entity.EstadoEnStock,
		Costo:  decimal.NewFromInt(costo),
	}
	if precioVenta != nil {
		p := decimal.NewFromInt(*precioVenta)
		it.PrecioVenta = &p
	}
	return it
}

func int64Ptr(n int64) *int64 { return &n }

func TestKPIs_SumasAsimetricas(t *testing.T) {
	// Dos items no vendidos: costo {100, 200}, precio de venta {150, null}.
	// La inversión suma todos los costos; las ventas pendientes solo los precios definidos.
	base := &entity.KPIBase{
		CajaActual: decimal.NewFromInt(50),
		Capital:    decimal.NewFromInt(1000),
		Utilidad:   decimal.NewFromInt(200),
	}
	inv := &fakeInventario{noVendidos: []*entity.ItemInventario{
		item(100, int64Ptr(150)),
		item(200, nil),
	}}
	uc := finanzas.NewKPIUseCase(&fakeKPIRepo{base: base}, inv)

	out, err := uc.GetResumen(context.Background())
	require.NoError(t, err)

	assert.True(t, out.InversionEnInventario.Equal(decimal.NewFromInt(300)),
		"inversión = 100 + 200, el item sin precio también aporta su costo")
	assert.True(t, out.VentasPotencialesPendientes.Equal(decimal.NewFromInt(150)),
		"ventas pendientes solo suman precios definidos")
	assert.True(t, out.UtilidadProyectada.Equal(decimal.NewFromInt(350)), "200 + 150")
	assert.True(t, out.CashProyectado.Equal(decimal.NewFromInt(200)), "50 + 150")
}

func TestKPIs_ROIConCapitalCero(t *testing.T) {
	base := &entity.KPIBase{
		CajaActual: decimal.NewFromInt(100),
		Capital:    decimal.Zero,
		Utilidad:   decimal.NewFromInt(80),
	}
	uc := finanzas.NewKPIUseCase(&fakeKPIRepo{base: base}, &fakeInventario{})

	out, err := uc.GetResumen(context.Background())
	require.NoError(t, err)

	assert.True(t, out.ROI.IsZero(), "capital cero no divide: roi = 0")
	assert.True(t, out.ROIProyectado.IsZero(), "capital cero no divide: roi proyectado = 0")
}

func TestKPIs_ROI(t *testing.T) {
	base := &entity.KPIBase{
		CajaActual: decimal.NewFromInt(500),
		Capital:    decimal.NewFromInt(1000),
		Utilidad:   decimal.NewFromInt(250),
	}
	inv := &fakeInventario{noVendidos: []*entity.ItemInventario{
		item(100, int64Ptr(350)),
	}}
	uc := finanzas.NewKPIUseCase(&fakeKPIRepo{base: base}, inv)

	out, err := uc.GetResumen(context.Background())
	require.NoError(t, err)

	assert.True(t, out.ROI.Equal(decimal.NewFromInt(25)), "250/1000*100 = 25")
	assert.True(t, out.ROIProyectado.Equal(decimal.NewFromInt(60)), "(250+350)/1000*100 = 60")
}

func TestKPIs_ErrorDeAgregadoSePropaga(t *testing.T) {
	uc := finanzas.NewKPIUseCase(&fakeKPIRepo{err: errors.New("vista caída")}, &fakeInventario{})

	_, err := uc.GetResumen(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vista caída")
}

func TestKPIs_InventarioVacio(t *testing.T) {
	base := &entity.KPIBase{
		CajaActual: decimal.NewFromInt(10),
		Capital:    decimal.NewFromInt(10),
		Utilidad:   decimal.Zero,
	}
	uc := finanzas.NewKPIUseCase(&fakeKPIRepo{base: base}, &fakeInventario{})

	out, err := uc.GetResumen(context.Background())
	require.NoError(t, err)

	assert.True(t, out.InversionEnInventario.IsZero())
	assert.True(t, out.VentasPotencialesPendientes.IsZero())
	assert.True(t, out.CashProyectado.Equal(decimal.NewFromInt(10)))
}
