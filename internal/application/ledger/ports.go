package ledger

import (
	"context"

	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor de
// inventario: cantidad, colocaciones y fila de auditoría se confirman o
// revierten juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockObjectRepository,
		movRepo repository.MovementRepository,
		placementRepo repository.PlacementRepository,
	) error) error
}
