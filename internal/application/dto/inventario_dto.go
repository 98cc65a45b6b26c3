package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventarioRequest entrada para crear un item de inventario.
// Costo es puntero para distinguir "ausente" de cero (costo es requerido, cero es válido).
type CreateInventarioRequest struct {
	Titulo      string           `json:"titulo"`
	Marca       *string          `json:"marca"`
	Modelo      *string          `json:"modelo"`
	Estado      string           `json:"estado"`
	Costo       *decimal.Decimal `json:"costo"`
	PrecioVenta *decimal.Decimal `json:"precio_venta"`
	Notas       *string          `json:"notas"`
}

// UpdateInventarioRequest actualización parcial: un campo nil se deja intacto;
// un texto vacío o un precio no positivo limpian el campo (pasan a null).
type UpdateInventarioRequest struct {
	ID          string           `json:"id"`
	Titulo      *string          `json:"titulo"`
	Marca       *string          `json:"marca"`
	Modelo      *string          `json:"modelo"`
	Estado      *string          `json:"estado"`
	Costo       *decimal.Decimal `json:"costo"`
	PrecioVenta *decimal.Decimal `json:"precio_venta"`
	Notas       *string          `json:"notas"`
	FechaVenta  *time.Time       `json:"fecha_venta"`
}

// DeleteInventarioRequest el identificador viaja en el cuerpo.
type DeleteInventarioRequest struct {
	ID string `json:"id"`
}

// ItemInventarioResponse salida de un item de inventario.
type ItemInventarioResponse struct {
	ID             string           `json:"id"`
	Titulo         string           `json:"titulo"`
	Marca          *string          `json:"marca"`
	Modelo         *string          `json:"modelo"`
	Estado         string           `json:"estado"`
	Costo          decimal.Decimal  `json:"costo"`
	PrecioVenta    *decimal.Decimal `json:"precio_venta"`
	FechaIngreso   time.Time        `json:"fecha_ingreso"`
	FechaVenta     *time.Time       `json:"fecha_venta"`
	Notas          *string          `json:"notas"`
	CreadoPor      string           `json:"creado_por"`
	ActualizadoPor string           `json:"actualizado_por"`
}
