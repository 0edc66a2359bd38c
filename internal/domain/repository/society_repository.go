package repository

import (
	"context"

	"github.com/tu-usuario/stock-service/internal/domain/entity"
)

// SocietyRepository define el puerto de persistencia para Society (DIP).
type SocietyRepository interface {
	Create(ctx context.Context, society *entity.Society) error
	GetByID(ctx context.Context, id string) (*entity.Society, error)
	GetByName(ctx context.Context, name string) (*entity.Society, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Society, error)
	Update(ctx context.Context, society *entity.Society) error
	List(ctx context.Context, limit, offset int) ([]*entity.Society, error)
}
