package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// ObjectUserUseCase CRUD de consumidores de stock (departamentos, máquinas,
// personas). No confundir con los User que inician sesión.
type ObjectUserUseCase struct {
	repo repository.ObjectUserRepository
}

// NewObjectUserUseCase construye el caso de uso.
func NewObjectUserUseCase(repo repository.ObjectUserRepository) *ObjectUserUseCase {
	return &ObjectUserUseCase{repo: repo}
}

// Create alta de consumidor.
func (uc *ObjectUserUseCase) Create(ctx context.Context, societyID string, in dto.ObjectUserRequest) (*entity.ObjectUser, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ou := &entity.ObjectUser{
		ID:          uuid.New().String(),
		SocietyID:   societyID,
		Name:        in.Name,
		ContactInfo: in.ContactInfo,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, ou); err != nil {
		return nil, err
	}
	return ou, nil
}

// Update edición de consumidor de la propia sociedad.
func (uc *ObjectUserUseCase) Update(ctx context.Context, societyID, id string, in dto.ObjectUserRequest) (*entity.ObjectUser, error) {
	ou, err := uc.getOwned(ctx, societyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		ou.Name = in.Name
	}
	ou.ContactInfo = in.ContactInfo
	ou.Notes = in.Notes
	ou.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, ou); err != nil {
		return nil, err
	}
	return ou, nil
}

// Delete baja de consumidor (su historial de consumos se conserva).
func (uc *ObjectUserUseCase) Delete(ctx context.Context, societyID, id string) error {
	if _, err := uc.getOwned(ctx, societyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List consumidores de la sociedad, paginado.
func (uc *ObjectUserUseCase) List(ctx context.Context, societyID string, limit, offset int) ([]*entity.ObjectUser, error) {
	return uc.repo.ListBySociety(ctx, societyID, limit, offset)
}

func (uc *ObjectUserUseCase) getOwned(ctx context.Context, societyID, id string) (*entity.ObjectUser, error) {
	ou, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ou == nil {
		return nil, domain.ErrNotFound
	}
	if ou.SocietyID != societyID {
		return nil, domain.ErrCrossTenant
	}
	return ou, nil
}

// ToObjectUserResponse convierte la entidad a su representación pública.
func ToObjectUserResponse(ou *entity.ObjectUser) dto.ObjectUserResponse {
	return dto.ObjectUserResponse{
		ID:          ou.ID,
		SocietyID:   ou.SocietyID,
		Name:        ou.Name,
		ContactInfo: ou.ContactInfo,
		Notes:       ou.Notes,
		CreatedAt:   ou.CreatedAt,
	}
}
