package repository

import (
	"context"

	"github.com/flipcam/flipcam-api/internal/domain/entity"
)

// InventarioRepository define el puerto de persistencia para ItemInventario (DIP).
type InventarioRepository interface {
	Create(ctx context.Context, item *entity.ItemInventario) error
	GetByID(ctx context.Context, id string) (*entity.ItemInventario, error)
	// ListAll devuelve todos los items ordenados por fecha de ingreso descendente.
	ListAll(ctx context.Context) ([]*entity.ItemInventario, error)
	// ListNoVendidos devuelve los items con estado distinto de vendido (para proyecciones).
	ListNoVendidos(ctx context.Context) ([]*entity.ItemInventario, error)
	Update(ctx context.Context, item *entity.ItemInventario) error
	Delete(ctx context.Context, id string) (bool, error)
}
