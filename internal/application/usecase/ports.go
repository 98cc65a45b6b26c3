package usecase

import (
	"context"

	"github.com/flipcam/flipcam-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Lo usa InventarioUseCase para que el alta de un item y su movimiento de compra,
// o la venta y su movimiento de venta, se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		invRepo repository.InventarioRepository,
	) error) error
}
