package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovimientoRequest entrada para crear un movimiento. Los campos que no
// aparecen aquí se descartan silenciosamente en el parseo (whitelist tipada).
// El actor dueño no se acepta del cliente: se estampa desde la sesión.
type CreateMovimientoRequest struct {
	Tipo        string          `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion *string         `json:"descripcion"`
	Fecha       *time.Time      `json:"fecha"`
	EquipoID    *string         `json:"equipo_id"`
	Metadata    json.RawMessage `json:"metadata"`
}

// UpdateMovimientoRequest entrada para actualizar un movimiento (parcial).
// Un campo nil se deja intacto; descripcion vacía se normaliza a null.
type UpdateMovimientoRequest struct {
	ID          string           `json:"id"`
	Tipo        *string          `json:"tipo"`
	Monto       *decimal.Decimal `json:"monto"`
	Descripcion *string          `json:"descripcion"`
	Fecha       *time.Time       `json:"fecha"`
	EquipoID    *string          `json:"equipo_id"`
	Metadata    json.RawMessage  `json:"metadata"`
}

// HasChanges indica si la petición trae al menos un campo actualizable.
func (r UpdateMovimientoRequest) HasChanges() bool {
	return r.Tipo != nil || r.Monto != nil || r.Descripcion != nil ||
		r.Fecha != nil || r.EquipoID != nil || len(r.Metadata) > 0
}

// DeleteMovimientoRequest el identificador viaja en el cuerpo.
type DeleteMovimientoRequest struct {
	ID string `json:"id"`
}

// MovimientoResponse salida de un movimiento.
type MovimientoResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion *string         `json:"descripcion"`
	Fecha       time.Time       `json:"fecha"`
	EquipoID    *string         `json:"equipo_id"`
	Metadata    json.RawMessage `json:"metadata"`
	CreadoPor   string          `json:"creado_por"`
	CreatedAt   time.Time       `json:"created_at"`
}
