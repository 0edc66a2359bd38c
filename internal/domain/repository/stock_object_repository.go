package repository

import (
	"context"

	"github.com/tu-usuario/stock-service/internal/domain/entity"
)

// StockObjectRepository define el puerto de persistencia para StockObject.
// Usable con pool o con transacción; GetForUpdate solo tiene sentido dentro
// de una transacción.
type StockObjectRepository interface {
	Create(ctx context.Context, obj *entity.StockObject) error
	GetByID(ctx context.Context, id string) (*entity.StockObject, error)
	// GetForUpdate obtiene el objeto y bloquea su fila (SELECT ... FOR UPDATE).
	// Serializa los movimientos concurrentes sobre el mismo objeto.
	GetForUpdate(ctx context.Context, id string) (*entity.StockObject, error)
	Update(ctx context.Context, obj *entity.StockObject) error
	// UpdateQuantity escribe solo la cantidad (dentro de la transacción del movimiento).
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	Delete(ctx context.Context, id string) error
	ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.StockObject, error)
	// ListActiveBySociety devuelve los objetos activos (predicción de reposición, reportes).
	ListActiveBySociety(ctx context.Context, societyID string) ([]*entity.StockObject, error)
	CountBySociety(ctx context.Context, societyID string) (total, belowMinimum int, err error)
}

// StockObjectKindRepository define el puerto de persistencia para StockObjectKind.
type StockObjectKindRepository interface {
	Create(ctx context.Context, kind *entity.StockObjectKind) error
	GetByID(ctx context.Context, id string) (*entity.StockObjectKind, error)
	Update(ctx context.Context, kind *entity.StockObjectKind) error
	Delete(ctx context.Context, id string) error
	ListBySociety(ctx context.Context, societyID string) ([]*entity.StockObjectKind, error)
}
