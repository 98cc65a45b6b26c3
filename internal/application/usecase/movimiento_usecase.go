package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flipcam/flipcam-api/internal/application/dto"
	"github.com/flipcam/flipcam-api/internal/domain"
	"github.com/flipcam/flipcam-api/internal/domain/entity"
	"github.com/flipcam/flipcam-api/internal/domain/repository"
)

// movimientosListLimit tope de filas en el listado (las 100 más recientes).
const movimientosListLimit = 100

// MovimientoUseCase casos de uso CRUD para movimientos de caja.
type MovimientoUseCase struct {
	repo repository.MovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(repo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{repo: repo}
}

// List devuelve hasta 100 movimientos ordenados por fecha descendente.
func (uc *MovimientoUseCase) List(ctx context.Context) ([]dto.MovimientoResponse, error) {
	list, err := uc.repo.ListRecent(ctx, movimientosListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovimientoResponse(m))
	}
	return out, nil
}

// Create valida tipo y monto y persiste un movimiento nuevo.
// CreadoPor se estampa con el actor de la sesión; nunca viene del cliente.
func (uc *MovimientoUseCase) Create(ctx context.Context, userID string, in dto.CreateMovimientoRequest) (*dto.MovimientoResponse, error) {
	if !entity.TipoValido(in.Tipo) {
		return nil, fmt.Errorf("tipo inválido: %w", domain.ErrInvalidInput)
	}
	if in.Monto.Sign() <= 0 {
		return nil, fmt.Errorf("monto inválido: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	mov := &entity.Movimiento{
		ID:          uuid.New().String(),
		Tipo:        in.Tipo,
		Monto:       in.Monto,
		Descripcion: in.Descripcion,
		Fecha:       fecha,
		EquipoID:    in.EquipoID,
		Metadata:    in.Metadata,
		CreadoPor:   userID,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return toMovimientoResponse(mov), nil
}

// Update aplica solo los campos presentes en la petición.
// Una descripción vacía se normaliza a null; tipo y monto se revalidan si vienen.
func (uc *MovimientoUseCase) Update(ctx context.Context, in dto.UpdateMovimientoRequest) (*dto.MovimientoResponse, error) {
	if in.ID == "" {
		return nil, fmt.Errorf("id de movimiento requerido: %w", domain.ErrInvalidInput)
	}
	if !in.HasChanges() {
		return nil, fmt.Errorf("sin campos para actualizar: %w", domain.ErrInvalidInput)
	}
	if in.Tipo != nil && !entity.TipoValido(*in.Tipo) {
		return nil, fmt.Errorf("tipo inválido: %w", domain.ErrInvalidInput)
	}
	if in.Monto != nil && in.Monto.Sign() <= 0 {
		return nil, fmt.Errorf("monto inválido: %w", domain.ErrInvalidInput)
	}

	mov, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}

	if in.Tipo != nil {
		mov.Tipo = *in.Tipo
	}
	if in.Monto != nil {
		mov.Monto = *in.Monto
	}
	if in.Descripcion != nil {
		if *in.Descripcion == "" {
			mov.Descripcion = nil
		} else {
			mov.Descripcion = in.Descripcion
		}
	}
	if in.Fecha != nil {
		mov.Fecha = *in.Fecha
	}
	if in.EquipoID != nil {
		if *in.EquipoID == "" {
			mov.EquipoID = nil
		} else {
			mov.EquipoID = in.EquipoID
		}
	}
	if len(in.Metadata) > 0 {
		mov.Metadata = in.Metadata
	}

	if err := uc.repo.Update(ctx, mov); err != nil {
		return nil, err
	}
	return toMovimientoResponse(mov), nil
}

// Delete borra un movimiento. Devuelve found=false si la fila ya no existía;
// el handler lo trata como éxito (borrado idempotente, tolera doble submit de la UI).
func (uc *MovimientoUseCase) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("id de movimiento requerido: %w", domain.ErrInvalidInput)
	}
	return uc.repo.Delete(ctx, id)
}

func toMovimientoResponse(m *entity.Movimiento) *dto.MovimientoResponse {
	if m == nil {
		return nil
	}
	return &dto.MovimientoResponse{
		ID:          m.ID,
		Tipo:        m.Tipo,
		Monto:       m.Monto,
		Descripcion: m.Descripcion,
		Fecha:       m.Fecha,
		EquipoID:    m.EquipoID,
		Metadata:    m.Metadata,
		CreadoPor:   m.CreadoPor,
		CreatedAt:   m.CreatedAt,
	}
}
