package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flipcam/flipcam-api/internal/application/dto"
	"github.com/flipcam/flipcam-api/internal/application/usecase"
	"github.com/flipcam/flipcam-api/internal/domain"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

func nuevoMovimientoUC() (*usecase.MovimientoUseCase, *fakeMovimientoRepo) {
	repo := newFakeMovimientoRepo()
	return usecase.NewMovimientoUseCase(repo), repo
}

func crearMovimiento(t *testing.T, uc *usecase.MovimientoUseCase, tipo string, monto int64) *dto.MovimientoResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), testUserID, dto.CreateMovimientoRequest{
		Tipo:  tipo,
		Monto: decimal.NewFromInt(monto),
	})
	require.NoError(t, err)
	return out
}

func TestMovimientoCreate_TipoFueraDeEnumeracion(t *testing.T) {
	uc, _ := nuevoMovimientoUC()
	_, err := uc.Create(context.Background(), testUserID, dto.CreateMovimientoRequest{
		Tipo:  "prestamo",
		Monto: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo fuera de la enumeración debe rechazarse")
}

func TestMovimientoCreate_MontoNoPositivo(t *testing.T) {
	uc, _ := nuevoMovimientoUC()
	for _, monto := range []int64{0, -50} {
		_, err := uc.Create(context.Background(), testUserID, dto.CreateMovimientoRequest{
			Tipo:  "gasto",
			Monto: decimal.NewFromInt(monto),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto %d debe rechazarse", monto)
	}
}

func TestMovimientoCreate_EstampaCreadoPor(t *testing.T) {
	uc, repo := nuevoMovimientoUC()
	out := crearMovimiento(t, uc, "capital", 1000)

	guardado, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.Equal(t, testUserID, guardado.CreadoPor, "el dueño se estampa desde la sesión")
	assert.False(t, guardado.Fecha.IsZero(), "fecha por defecto es ahora")
}

func TestMovimientoUpdate_DescripcionVaciaNormalizaANull(t *testing.T) {
	uc, _ := nuevoMovimientoUC()
	desc := "venta cámara"
	out, err := uc.Create(context.Background(), testUserID, dto.CreateMovimientoRequest{
		Tipo:        "venta",
		Monto:       decimal.NewFromInt(500),
		Descripcion: &desc,
	})
	require.NoError(t, err)

	vacia := ""
	updated, err := uc.Update(context.Background(), dto.UpdateMovimientoRequest{
		ID:          out.ID,
		Descripcion: &vacia,
	})
	require.NoError(t, err)

	assert.Nil(t, updated.Descripcion, "descripción vacía debe quedar en null")
	assert.Equal(t, "venta", updated.Tipo, "tipo no tocado debe quedar intacto")
	assert.True(t, updated.Monto.Equal(decimal.NewFromInt(500)), "monto no tocado debe quedar intacto")
}

func TestMovimientoUpdate_SinCampos(t *testing.T) {
	uc, _ := nuevoMovimientoUC()
	out := crearMovimiento(t, uc, "gasto", 20)

	_, err := uc.Update(context.Background(), dto.UpdateMovimientoRequest{ID: out.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin campos actualizables debe rechazarse")
}

func TestMovimientoUpdate_NoEncontrado(t *testing.T) {
	uc, _ := nuevoMovimientoUC()
	tipo := "gasto"
	_, err := uc.Update(context.Background(), dto.UpdateMovimientoRequest{
		ID:   "11111111-1111-1111-1111-111111111111",
		Tipo: &tipo,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovimientoDelete_Idempotente(t *testing.T) {
	uc, _ := nuevoMovimientoUC()
	out := crearMovimiento(t, uc, "retiro", 300)

	found, err := uc.Delete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.True(t, found, "primer borrado encuentra la fila")

	// Segundo borrado con el mismo id: no es error, solo found=false
	found, err = uc.Delete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.False(t, found, "segundo borrado no encuentra la fila pero no falla")
}
