package repository

import (
	"context"

	"github.com/tu-usuario/stock-service/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// Username es único por sociedad; no existen búsquedas globales por username.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsernameAndSociety(ctx context.Context, username, societyID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.User, error)
	// CountBySociety devuelve (total, administradores) para validar límites del plan.
	CountBySociety(ctx context.Context, societyID string) (total, admins int, err error)
}
