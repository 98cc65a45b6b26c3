package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	TipoCapital = "capital"
	TipoCompra  = "compra"
	TipoVenta   = "venta"
	TipoGasto   = "gasto"
	TipoRetiro  = "retiro"
)

// TipoValido verifica que el tipo pertenezca a la enumeración fija.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoCapital, TipoCompra, TipoVenta, TipoGasto, TipoRetiro:
		return true
	}
	return false
}

// Movimiento representa un evento que afecta la caja: aporte de capital,
// compra o venta de un equipo, gasto operativo o retiro de socios.
// CreadoPor se estampa en el servidor con el actor de la sesión; nunca viene del cliente.
type Movimiento struct {
	ID          string
	Tipo        string
	Monto       decimal.Decimal // siempre > 0; el signo lo determina Tipo
	Descripcion *string
	Fecha       time.Time
	EquipoID    *string // referencia opcional al item de inventario asociado
	Metadata    json.RawMessage
	CreadoPor   string
	CreatedAt   time.Time
}
