package dto

import "github.com/shopspring/decimal"

// KPIResponse agregado financiero almacenado más las proyecciones derivadas en lectura.
// Las proyecciones asumen que todo item pendiente se vende a su precio listado.
type KPIResponse struct {
	// Valores precomputados por el almacén (vista v_kpis)
	CajaActual decimal.Decimal `json:"caja_actual"`
	Capital    decimal.Decimal `json:"capital"`
	Utilidad   decimal.Decimal `json:"utilidad"`

	// Derivados en cada lectura; nunca se persisten
	InversionEnInventario       decimal.Decimal `json:"inversion_en_inventario"`
	VentasPotencialesPendientes decimal.Decimal `json:"ventas_potenciales_pendientes"`
	UtilidadProyectada          decimal.Decimal `json:"utilidad_proyectada"`
	CashProyectado              decimal.Decimal `json:"cash_proyectado"`
	ROI                         decimal.Decimal `json:"roi"`            // utilidad / capital * 100
	ROIProyectado               decimal.Decimal `json:"roi_proyectado"` // utilidad proyectada / capital * 100
}
