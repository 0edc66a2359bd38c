package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/application/ledger"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// StockObjectUseCase CRUD de objetos de stock y sus categorías. La cantidad
// nunca se edita directamente: el alta con cantidad inicial pasa por el motor
// de inventario para dejar su fila de auditoría.
type StockObjectUseCase struct {
	stockRepo repository.StockObjectRepository
	kindRepo  repository.StockObjectKindRepository
	ledgerUC  *ledger.UseCase
}

// NewStockObjectUseCase construye el caso de uso.
func NewStockObjectUseCase(
	stockRepo repository.StockObjectRepository,
	kindRepo repository.StockObjectKindRepository,
	ledgerUC *ledger.UseCase,
) *StockObjectUseCase {
	return &StockObjectUseCase{stockRepo: stockRepo, kindRepo: kindRepo, ledgerUC: ledgerUC}
}

// Create alta de objeto. InitialQuantity > 0 se aplica como movimiento de
// entrada inicial (queda en el historial como cualquier otra entrada).
func (uc *StockObjectUseCase) Create(ctx context.Context, societyID, userID string, in dto.CreateStockObjectRequest) (*entity.StockObject, error) {
	if in.Name == "" || in.MinimumQuantity < 0 || in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.KindID != "" {
		kind, err := uc.kindRepo.GetByID(ctx, in.KindID)
		if err != nil {
			return nil, err
		}
		if kind == nil {
			return nil, domain.ErrNotFound
		}
		if kind.SocietyID != societyID {
			return nil, domain.ErrCrossTenant
		}
	}

	now := time.Now()
	obj := &entity.StockObject{
		ID:                  uuid.New().String(),
		SocietyID:           societyID,
		KindID:              in.KindID,
		Name:                in.Name,
		Description:         in.Description,
		Quantity:            0,
		MinimumQuantity:     in.MinimumQuantity,
		Unit:                in.Unit,
		LocationDescription: in.LocationDescription,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.stockRepo.Create(ctx, obj); err != nil {
		return nil, err
	}

	if in.InitialQuantity > 0 {
		result, err := uc.ledgerUC.ApplyMovement(ctx, ledger.MovementInput{
			SocietyID:     societyID,
			UserID:        userID,
			StockObjectID: obj.ID,
			Direction:     entity.MovementIn,
			Quantity:      in.InitialQuantity,
			Notes:         "stock inicial",
		})
		if err != nil {
			return nil, err
		}
		obj.Quantity = result.QuantityAfter
	}
	return obj, nil
}

// GetByID objeto de la sociedad del actor.
func (uc *StockObjectUseCase) GetByID(ctx context.Context, societyID, id string) (*entity.StockObject, error) {
	obj, err := uc.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, domain.ErrNotFound
	}
	if obj.SocietyID != societyID {
		return nil, domain.ErrCrossTenant
	}
	return obj, nil
}

// Update edita los campos descriptivos (nunca la cantidad).
func (uc *StockObjectUseCase) Update(ctx context.Context, societyID, id string, in dto.UpdateStockObjectRequest) (*entity.StockObject, error) {
	obj, err := uc.GetByID(ctx, societyID, id)
	if err != nil {
		return nil, err
	}
	if in.KindID != "" && in.KindID != obj.KindID {
		kind, err := uc.kindRepo.GetByID(ctx, in.KindID)
		if err != nil {
			return nil, err
		}
		if kind == nil {
			return nil, domain.ErrNotFound
		}
		if kind.SocietyID != societyID {
			return nil, domain.ErrCrossTenant
		}
		obj.KindID = in.KindID
	}
	if in.Name != "" {
		obj.Name = in.Name
	}
	if in.Description != "" {
		obj.Description = in.Description
	}
	if in.Unit != "" {
		obj.Unit = in.Unit
	}
	if in.LocationDescription != "" {
		obj.LocationDescription = in.LocationDescription
	}
	if in.MinimumQuantity != nil {
		if *in.MinimumQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		obj.MinimumQuantity = *in.MinimumQuantity
	}
	if in.IsActive != nil {
		obj.IsActive = *in.IsActive
	}
	obj.UpdatedAt = time.Now()
	if err := uc.stockRepo.Update(ctx, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Delete baja de objeto (el historial de movimientos se conserva).
func (uc *StockObjectUseCase) Delete(ctx context.Context, societyID, id string) error {
	if _, err := uc.GetByID(ctx, societyID, id); err != nil {
		return err
	}
	return uc.stockRepo.Delete(ctx, id)
}

// List objetos de la sociedad, paginado.
func (uc *StockObjectUseCase) List(ctx context.Context, societyID string, limit, offset int) ([]*entity.StockObject, error) {
	return uc.stockRepo.ListBySociety(ctx, societyID, limit, offset)
}

// CreateKind alta de categoría.
func (uc *StockObjectUseCase) CreateKind(ctx context.Context, societyID string, in dto.KindRequest) (*entity.StockObjectKind, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	kind := &entity.StockObjectKind{
		ID:          uuid.New().String(),
		SocietyID:   societyID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.kindRepo.Create(ctx, kind); err != nil {
		return nil, err
	}
	return kind, nil
}

// UpdateKind edición de categoría de la propia sociedad.
func (uc *StockObjectUseCase) UpdateKind(ctx context.Context, societyID, id string, in dto.KindRequest) (*entity.StockObjectKind, error) {
	kind, err := uc.kindRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if kind == nil {
		return nil, domain.ErrNotFound
	}
	if kind.SocietyID != societyID {
		return nil, domain.ErrCrossTenant
	}
	if in.Name != "" {
		kind.Name = in.Name
	}
	kind.Description = in.Description
	kind.UpdatedAt = time.Now()
	if err := uc.kindRepo.Update(ctx, kind); err != nil {
		return nil, err
	}
	return kind, nil
}

// DeleteKind baja de categoría (los objetos quedan sin categoría).
func (uc *StockObjectUseCase) DeleteKind(ctx context.Context, societyID, id string) error {
	kind, err := uc.kindRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if kind == nil {
		return domain.ErrNotFound
	}
	if kind.SocietyID != societyID {
		return domain.ErrCrossTenant
	}
	return uc.kindRepo.Delete(ctx, id)
}

// ListKinds categorías de la sociedad.
func (uc *StockObjectUseCase) ListKinds(ctx context.Context, societyID string) ([]*entity.StockObjectKind, error) {
	return uc.kindRepo.ListBySociety(ctx, societyID)
}

// ToStockObjectResponse convierte la entidad a su representación pública.
func ToStockObjectResponse(o *entity.StockObject) dto.StockObjectResponse {
	return dto.StockObjectResponse{
		ID:                  o.ID,
		SocietyID:           o.SocietyID,
		KindID:              o.KindID,
		Name:                o.Name,
		Description:         o.Description,
		Quantity:            o.Quantity,
		MinimumQuantity:     o.MinimumQuantity,
		Unit:                o.Unit,
		LocationDescription: o.LocationDescription,
		IsActive:            o.IsActive,
		BelowMinimum:        o.BelowMinimum(),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}
