package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un item de inventario. El flujo típico es
// en_stock ⇄ reservado ⇄ pendiente → vendido, pero la API acepta cualquier
// valor de la enumeración; el workflow lo administra el cliente.
const (
	EstadoEnStock   = "en_stock"
	EstadoReservado = "reservado"
	EstadoPendiente = "pendiente"
	EstadoVendido   = "vendido"
)

// EstadoValido verifica que el estado pertenezca a la enumeración fija.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoEnStock, EstadoReservado, EstadoPendiente, EstadoVendido:
		return true
	}
	return false
}

// ItemInventario representa una unidad física en reventa (una cámara).
// FechaVenta se estampa exactamente cuando el estado transiciona a vendido.
type ItemInventario struct {
	ID             string
	Titulo         string
	Marca          *string
	Modelo         *string
	Estado         string
	Costo          decimal.Decimal  // >= 0, requerido
	PrecioVenta    *decimal.Decimal // opcional, >= 0
	FechaIngreso   time.Time
	FechaVenta     *time.Time
	Notas          *string
	CreadoPor      string
	ActualizadoPor string
}

// Vendido indica si el item ya salió del inventario.
func (i *ItemInventario) Vendido() bool {
	return i.Estado == EstadoVendido
}
