package repository

import (
	"context"

	"github.com/tu-usuario/stock-service/internal/domain/entity"
)

// ObjectUserRepository define el puerto de persistencia para ObjectUser.
type ObjectUserRepository interface {
	Create(ctx context.Context, ou *entity.ObjectUser) error
	GetByID(ctx context.Context, id string) (*entity.ObjectUser, error)
	Update(ctx context.Context, ou *entity.ObjectUser) error
	Delete(ctx context.Context, id string) error
	ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.ObjectUser, error)
}
