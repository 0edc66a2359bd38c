package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-service/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para StockMovement.
// Solo inserción y lectura: los movimientos son append-only.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByStockObject(ctx context.Context, stockObjectID string, limit, offset int) ([]*entity.StockMovement, error)
	// ListRecent últimos movimientos de la sociedad (dashboard).
	ListRecent(ctx context.Context, societyID string, limit int) ([]*entity.StockMovement, error)
}

// UsageRepository define el puerto de persistencia para StockUsage (append-only).
type UsageRepository interface {
	Create(ctx context.Context, usage *entity.StockUsage) error
	ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.StockUsage, error)
	ListByStockObject(ctx context.Context, stockObjectID string, limit, offset int) ([]*entity.StockUsage, error)
	// TotalUsedSince suma el consumo de un objeto desde una fecha (predicción).
	TotalUsedSince(ctx context.Context, stockObjectID string, since time.Time) (int64, error)
}
