package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-service/internal/domain/entity"
)

// RefillRepository define el puerto de persistencia para RefillSchedule.
type RefillRepository interface {
	Create(ctx context.Context, refill *entity.RefillSchedule) error
	GetByID(ctx context.Context, id string) (*entity.RefillSchedule, error)
	Update(ctx context.Context, refill *entity.RefillSchedule) error
	ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.RefillSchedule, error)
	ListByStockObject(ctx context.Context, stockObjectID string) ([]*entity.RefillSchedule, error)
	// ListUpcoming reposiciones pendientes con fecha >= from (dashboard).
	ListUpcoming(ctx context.Context, societyID string, from time.Time, limit int) ([]*entity.RefillSchedule, error)
}
