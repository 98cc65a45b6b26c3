package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flipcam/flipcam-api/internal/application/dto"
	"github.com/flipcam/flipcam-api/internal/domain"
	"github.com/flipcam/flipcam-api/internal/domain/entity"
	"github.com/flipcam/flipcam-api/internal/domain/repository"
)

// InventarioUseCase casos de uso CRUD para items de inventario.
//
// Los efectos cruzados inventario → movimiento (compra al dar de alta, venta al
// pasar a vendido) se ejecutan en una transacción explícita vía TxRunner, en
// lugar de triggers en la base: el item y su movimiento se confirman juntos.
type InventarioUseCase struct {
	repo repository.InventarioRepository
	tx   TxRunner
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(repo repository.InventarioRepository, tx TxRunner) *InventarioUseCase {
	return &InventarioUseCase{repo: repo, tx: tx}
}

// List devuelve todos los items ordenados por fecha de ingreso descendente.
func (uc *InventarioUseCase) List(ctx context.Context) ([]dto.ItemInventarioResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemInventarioResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Create da de alta un item. Estado por defecto en_stock. Si el costo es mayor
// a cero registra además el movimiento de compra en la misma transacción.
func (uc *InventarioUseCase) Create(ctx context.Context, userID string, in dto.CreateInventarioRequest) (*dto.ItemInventarioResponse, error) {
	if in.Titulo == "" {
		return nil, fmt.Errorf("titulo es requerido: %w", domain.ErrInvalidInput)
	}
	if in.Costo == nil {
		return nil, fmt.Errorf("costo es requerido: %w", domain.ErrInvalidInput)
	}
	if in.Costo.Sign() < 0 {
		return nil, fmt.Errorf("costo inválido: %w", domain.ErrInvalidInput)
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoEnStock
	}
	if !entity.EstadoValido(estado) {
		return nil, fmt.Errorf("estado inválido: %w", domain.ErrInvalidInput)
	}
	precioVenta, err := normalizarPrecio(in.PrecioVenta)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.ItemInventario{
		ID:             uuid.New().String(),
		Titulo:         in.Titulo,
		Marca:          normalizarTexto(in.Marca),
		Modelo:         normalizarTexto(in.Modelo),
		Estado:         estado,
		Costo:          *in.Costo,
		PrecioVenta:    precioVenta,
		FechaIngreso:   now,
		Notas:          normalizarTexto(in.Notas),
		CreadoPor:      userID,
		ActualizadoPor: userID,
	}
	if item.Estado == entity.EstadoVendido {
		item.FechaVenta = &now
	}

	err = uc.tx.Run(ctx, func(movRepo repository.MovimientoRepository, invRepo repository.InventarioRepository) error {
		if err := invRepo.Create(ctx, item); err != nil {
			return err
		}
		if item.Costo.Sign() > 0 {
			if err := movRepo.Create(ctx, movimientoDeCompra(item, userID, now)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update aplica los campos presentes en la petición (parcial). La transición a
// vendido estampa fecha_venta una única vez y registra el movimiento de venta
// en la misma transacción: repetir el PUT con estado=vendido no duplica nada.
func (uc *InventarioUseCase) Update(ctx context.Context, userID string, in dto.UpdateInventarioRequest) (*dto.ItemInventarioResponse, error) {
	if in.ID == "" {
		return nil, fmt.Errorf("id es requerido: %w", domain.ErrInvalidInput)
	}

	item, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	yaVendido := item.Vendido()

	if in.Titulo != nil {
		if *in.Titulo == "" {
			return nil, fmt.Errorf("titulo no puede ser vacío: %w", domain.ErrInvalidInput)
		}
		item.Titulo = *in.Titulo
	}
	if in.Marca != nil {
		item.Marca = normalizarTexto(in.Marca)
	}
	if in.Modelo != nil {
		item.Modelo = normalizarTexto(in.Modelo)
	}
	if in.Notas != nil {
		item.Notas = normalizarTexto(in.Notas)
	}
	if in.Costo != nil {
		if in.Costo.Sign() < 0 {
			return nil, fmt.Errorf("costo inválido: %w", domain.ErrInvalidInput)
		}
		item.Costo = *in.Costo
	}
	if in.PrecioVenta != nil {
		precio, err := normalizarPrecio(in.PrecioVenta)
		if err != nil {
			return nil, err
		}
		item.PrecioVenta = precio
	}
	if in.Estado != nil {
		if !entity.EstadoValido(*in.Estado) {
			return nil, fmt.Errorf("estado inválido: %w", domain.ErrInvalidInput)
		}
		item.Estado = *in.Estado
	}
	if in.FechaVenta != nil {
		item.FechaVenta = in.FechaVenta
	}
	item.ActualizadoPor = userID

	now := time.Now()
	recienVendido := item.Vendido() && !yaVendido
	if recienVendido && item.FechaVenta == nil {
		item.FechaVenta = &now
	}

	if recienVendido && item.PrecioVenta != nil && item.PrecioVenta.Sign() > 0 {
		err = uc.tx.Run(ctx, func(movRepo repository.MovimientoRepository, invRepo repository.InventarioRepository) error {
			if err := invRepo.Update(ctx, item); err != nil {
				return err
			}
			return movRepo.Create(ctx, movimientoDeVenta(item, userID, now))
		})
	} else {
		err = uc.repo.Update(ctx, item)
	}
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete borra un item físicamente. found=false si ya no existía.
func (uc *InventarioUseCase) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("id es requerido: %w", domain.ErrInvalidInput)
	}
	return uc.repo.Delete(ctx, id)
}

// movimientoDeCompra movimiento de caja por el alta de un item (sale el costo).
func movimientoDeCompra(item *entity.ItemInventario, userID string, now time.Time) *entity.Movimiento {
	desc := "Compra inventario: " + item.Titulo
	return &entity.Movimiento{
		ID:          uuid.New().String(),
		Tipo:        entity.TipoCompra,
		Monto:       item.Costo,
		Descripcion: &desc,
		Fecha:       now,
		EquipoID:    &item.ID,
		CreadoPor:   userID,
		CreatedAt:   now,
	}
}

// movimientoDeVenta movimiento de caja por la venta de un item (entra el precio).
func movimientoDeVenta(item *entity.ItemInventario, userID string, now time.Time) *entity.Movimiento {
	desc := "Venta inventario: " + item.Titulo
	return &entity.Movimiento{
		ID:          uuid.New().String(),
		Tipo:        entity.TipoVenta,
		Monto:       *item.PrecioVenta,
		Descripcion: &desc,
		Fecha:       now,
		EquipoID:    &item.ID,
		CreadoPor:   userID,
		CreatedAt:   now,
	}
}

// normalizarTexto convierte cadenas vacías en null (campo limpiado).
func normalizarTexto(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// normalizarPrecio valida el precio de venta; cero o negativo lo limpia a null,
// espejo de la coerción del cliente original (precio "falsy" → null).
func normalizarPrecio(p *decimal.Decimal) (*decimal.Decimal, error) {
	if p == nil {
		return nil, nil
	}
	if p.Sign() < 0 {
		return nil, fmt.Errorf("precio_venta inválido: %w", domain.ErrInvalidInput)
	}
	if p.Sign() == 0 {
		return nil, nil
	}
	return p, nil
}

func toItemResponse(i *entity.ItemInventario) *dto.ItemInventarioResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemInventarioResponse{
		ID:             i.ID,
		Titulo:         i.Titulo,
		Marca:          i.Marca,
		Modelo:         i.Modelo,
		Estado:         i.Estado,
		Costo:          i.Costo,
		PrecioVenta:    i.PrecioVenta,
		FechaIngreso:   i.FechaIngreso,
		FechaVenta:     i.FechaVenta,
		Notas:          i.Notas,
		CreadoPor:      i.CreadoPor,
		ActualizadoPor: i.ActualizadoPor,
	}
}
