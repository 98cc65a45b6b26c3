// Package finanzas contiene el caso de uso de lectura de KPIs financieros
// y sus proyecciones sobre el inventario pendiente.
package finanzas

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/flipcam/flipcam-api/internal/application/dto"
	"github.com/flipcam/flipcam-api/internal/domain/repository"
)

var cien = decimal.NewFromInt(100)

// KPIUseCase arma el resumen financiero: el agregado precomputado por el
// almacén (caja, capital, utilidad) más las proyecciones derivadas del
// inventario aún no vendido.
//
// Cálculo puro y determinista en cada lectura; nada se persiste.
type KPIUseCase struct {
	kpiRepo repository.KPIRepository
	invRepo repository.InventarioRepository
}

// NewKPIUseCase construye el caso de uso.
func NewKPIUseCase(kpiRepo repository.KPIRepository, invRepo repository.InventarioRepository) *KPIUseCase {
	return &KPIUseCase{kpiRepo: kpiRepo, invRepo: invRepo}
}

// GetResumen devuelve el agregado actual fusionado con los campos derivados.
//
// Sobre los items con estado ≠ vendido:
//   - inversion_en_inventario suma todos los costos.
//   - ventas_potenciales_pendientes suma solo los precios de venta definidos;
//     un item sin precio aporta 0 aquí pero sí aporta su costo a la inversión.
//     La asimetría es intencional (contabilidad conservadora de la inversión).
func (uc *KPIUseCase) GetResumen(ctx context.Context) (*dto.KPIResponse, error) {
	base, err := uc.kpiRepo.GetBase(ctx)
	if err != nil {
		return nil, fmt.Errorf("kpis: leer agregado: %w", err)
	}

	items, err := uc.invRepo.ListNoVendidos(ctx)
	if err != nil {
		return nil, fmt.Errorf("kpis: inventario pendiente: %w", err)
	}

	inversion := decimal.Zero
	ventasPendientes := decimal.Zero
	for _, item := range items {
		inversion = inversion.Add(item.Costo)
		if item.PrecioVenta != nil {
			ventasPendientes = ventasPendientes.Add(*item.PrecioVenta)
		}
	}

	utilidadProyectada := base.Utilidad.Add(ventasPendientes)
	cashProyectado := base.CajaActual.Add(ventasPendientes)

	// ROI = utilidad / capital * 100, con guarda para capital <= 0
	roi := decimal.Zero
	roiProyectado := decimal.Zero
	if base.Capital.Sign() > 0 {
		roi = base.Utilidad.Div(base.Capital).Mul(cien)
		roiProyectado = utilidadProyectada.Div(base.Capital).Mul(cien)
	}

	return &dto.KPIResponse{
		CajaActual:                  base.CajaActual,
		Capital:                     base.Capital,
		Utilidad:                    base.Utilidad,
		InversionEnInventario:       inversion,
		VentasPotencialesPendientes: ventasPendientes,
		UtilidadProyectada:          utilidadProyectada,
		CashProyectado:              cashProyectado,
		ROI:                         roi,
		ROIProyectado:               roiProyectado,
	}, nil
}
