package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// SocietyUseCase ajustes y plan de la sociedad.
type SocietyUseCase struct {
	societyRepo repository.SocietyRepository
}

// NewSocietyUseCase construye el caso de uso.
func NewSocietyUseCase(societyRepo repository.SocietyRepository) *SocietyUseCase {
	return &SocietyUseCase{societyRepo: societyRepo}
}

// Get devuelve la sociedad del actor.
func (uc *SocietyUseCase) Get(ctx context.Context, societyID string) (*entity.Society, error) {
	society, err := uc.societyRepo.GetByID(ctx, societyID)
	if err != nil {
		return nil, err
	}
	if society == nil {
		return nil, domain.ErrNotFound
	}
	return society, nil
}

// UpdateSettings ajustes de cajones (solo admin, validado en el handler).
func (uc *SocietyUseCase) UpdateSettings(ctx context.Context, societyID string, in dto.UpdateSocietySettingsRequest) (*entity.Society, error) {
	society, err := uc.Get(ctx, societyID)
	if err != nil {
		return nil, err
	}
	if in.CanManageDrawers != nil {
		society.CanManageDrawers = *in.CanManageDrawers
		// Deshabilitar la gestión también la oculta del listado.
		if !society.CanManageDrawers {
			society.ShowsDrawersInList = false
		}
	}
	if in.ShowsDrawersInList != nil && society.CanManageDrawers {
		society.ShowsDrawersInList = *in.ShowsDrawersInList
	}
	society.UpdatedAt = time.Now()
	if err := uc.societyRepo.Update(ctx, society); err != nil {
		return nil, err
	}
	return society, nil
}

// Upgrade cambia el plan de suscripción. El cobro queda fuera del core: este
// caso de uso solo aplica el cambio ya "pagado".
func (uc *SocietyUseCase) Upgrade(ctx context.Context, societyID, level string) (*entity.Society, error) {
	if !entity.ValidSubscriptionLevel(level) {
		return nil, domain.ErrInvalidInput
	}
	society, err := uc.Get(ctx, societyID)
	if err != nil {
		return nil, err
	}
	if society.SubscriptionLevel == level {
		return nil, domain.ErrConflict
	}
	plan, _ := entity.SubscriptionPlanByLevel(level)
	society.SubscriptionLevel = level
	society.MonthlyPrice = plan.MonthlyPrice
	society.UpdatedAt = time.Now()
	if err := uc.societyRepo.Update(ctx, society); err != nil {
		return nil, err
	}
	return society, nil
}

// Plans catálogo de planes con precios y límites.
func (uc *SocietyUseCase) Plans() []dto.SubscriptionPlanDTO {
	plans := entity.SubscriptionPlans()
	out := make([]dto.SubscriptionPlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.SubscriptionPlanDTO{
			Level:        p.Level,
			Name:         p.Name,
			MonthlyPrice: p.MonthlyPrice,
			MaxAdmins:    p.Limits.MaxAdmins,
			MaxUsers:     p.Limits.MaxUsers,
		})
	}
	return out
}

// ToSocietyResponse convierte la entidad a su representación pública.
func ToSocietyResponse(s *entity.Society) dto.SocietyResponse {
	return dto.SocietyResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Slug:               s.Slug,
		SubscriptionLevel:  s.SubscriptionLevel,
		MonthlyPrice:       s.MonthlyPrice,
		IsActive:           s.IsActive,
		CanManageDrawers:   s.CanManageDrawers,
		ShowsDrawersInList: s.ShowsDrawersInList,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
