package entity

import "github.com/shopspring/decimal"

// KPIBase agregado financiero precomputado por el almacén (vista v_kpis).
// La aplicación lo lee; nunca lo escribe.
type KPIBase struct {
	CajaActual decimal.Decimal
	Capital    decimal.Decimal
	Utilidad   decimal.Decimal
}
