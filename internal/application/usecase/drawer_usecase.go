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

// DrawerUseCase CRUD de cajones. Requiere que la sociedad tenga habilitada
// la gestión de cajones (can_manage_drawers); la colocación de stock vive en
// el reconciliador (application/drawers).
type DrawerUseCase struct {
	societyRepo   repository.SocietyRepository
	drawerRepo    repository.DrawerRepository
	placementRepo repository.PlacementRepository
}

// NewDrawerUseCase construye el caso de uso.
func NewDrawerUseCase(
	societyRepo repository.SocietyRepository,
	drawerRepo repository.DrawerRepository,
	placementRepo repository.PlacementRepository,
) *DrawerUseCase {
	return &DrawerUseCase{societyRepo: societyRepo, drawerRepo: drawerRepo, placementRepo: placementRepo}
}

// requireFeature verifica el flag can_manage_drawers de la sociedad.
func (uc *DrawerUseCase) requireFeature(ctx context.Context, societyID string) error {
	society, err := uc.societyRepo.GetByID(ctx, societyID)
	if err != nil {
		return err
	}
	if society == nil {
		return domain.ErrNotFound
	}
	if !society.CanManageDrawers {
		return domain.ErrFeatureDisabled
	}
	return nil
}

// Create alta de cajón.
func (uc *DrawerUseCase) Create(ctx context.Context, societyID string, in dto.DrawerRequest) (*entity.Drawer, error) {
	if err := uc.requireFeature(ctx, societyID); err != nil {
		return nil, err
	}
	if len(in.LetterX) != 1 || in.NumberY <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	drawer := &entity.Drawer{
		ID:          uuid.New().String(),
		SocietyID:   societyID,
		CabinetName: in.CabinetName,
		LetterX:     in.LetterX,
		NumberY:     in.NumberY,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.drawerRepo.Create(ctx, drawer); err != nil {
		return nil, err
	}
	return drawer, nil
}

// Update edición de cajón de la propia sociedad.
func (uc *DrawerUseCase) Update(ctx context.Context, societyID, id string, in dto.DrawerRequest) (*entity.Drawer, error) {
	if err := uc.requireFeature(ctx, societyID); err != nil {
		return nil, err
	}
	drawer, err := uc.getOwned(ctx, societyID, id)
	if err != nil {
		return nil, err
	}
	if in.LetterX != "" {
		if len(in.LetterX) != 1 {
			return nil, domain.ErrInvalidInput
		}
		drawer.LetterX = in.LetterX
	}
	if in.NumberY > 0 {
		drawer.NumberY = in.NumberY
	}
	if in.CabinetName != "" {
		drawer.CabinetName = in.CabinetName
	}
	drawer.Description = in.Description
	drawer.UpdatedAt = time.Now()
	if err := uc.drawerRepo.Update(ctx, drawer); err != nil {
		return nil, err
	}
	return drawer, nil
}

// Delete baja de cajón. Un cajón con stock colocado no se elimina
// (domain.ErrConflict): primero hay que retirar las colocaciones.
func (uc *DrawerUseCase) Delete(ctx context.Context, societyID, id string) error {
	if err := uc.requireFeature(ctx, societyID); err != nil {
		return err
	}
	if _, err := uc.getOwned(ctx, societyID, id); err != nil {
		return err
	}
	placements, err := uc.placementRepo.ListByDrawer(ctx, id)
	if err != nil {
		return err
	}
	if len(placements) > 0 {
		return domain.ErrConflict
	}
	return uc.drawerRepo.Delete(ctx, id)
}

// List cajones de la sociedad.
func (uc *DrawerUseCase) List(ctx context.Context, societyID string) ([]*entity.Drawer, error) {
	if err := uc.requireFeature(ctx, societyID); err != nil {
		return nil, err
	}
	return uc.drawerRepo.ListBySociety(ctx, societyID)
}

func (uc *DrawerUseCase) getOwned(ctx context.Context, societyID, id string) (*entity.Drawer, error) {
	drawer, err := uc.drawerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if drawer == nil {
		return nil, domain.ErrNotFound
	}
	if drawer.SocietyID != societyID {
		return nil, domain.ErrCrossTenant
	}
	return drawer, nil
}

// ToDrawerResponse convierte la entidad a su representación pública.
func ToDrawerResponse(d *entity.Drawer) dto.DrawerResponse {
	return dto.DrawerResponse{
		ID:          d.ID,
		SocietyID:   d.SocietyID,
		CabinetName: d.CabinetName,
		LetterX:     d.LetterX,
		NumberY:     d.NumberY,
		Label:       d.Label(),
		Description: d.Description,
	}
}
