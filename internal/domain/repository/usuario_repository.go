package repository

import (
	"context"

	"github.com/flipcam/flipcam-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(ctx context.Context, user *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
}
