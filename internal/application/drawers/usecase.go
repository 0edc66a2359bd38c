package drawers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// TxRunner transacción con los repositorios del motor de inventario.
// La implementación Postgres es la misma que usa el ledger.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockObjectRepository,
		movRepo repository.MovementRepository,
		placementRepo repository.PlacementRepository,
	) error) error
}

// UseCase reconciliador de colocaciones en cajones: mantiene la invariante
// "suma de colocaciones de un objeto <= cantidad total del objeto" en cada
// Place, y reporta (sin corregir) los objetos que la violan.
type UseCase struct {
	txRunner      TxRunner
	societyRepo   repository.SocietyRepository
	stockRepo     repository.StockObjectRepository
	drawerRepo    repository.DrawerRepository
	placementRepo repository.PlacementRepository
}

// NewUseCase construye el reconciliador.
func NewUseCase(
	txRunner TxRunner,
	societyRepo repository.SocietyRepository,
	stockRepo repository.StockObjectRepository,
	drawerRepo repository.DrawerRepository,
	placementRepo repository.PlacementRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		societyRepo:   societyRepo,
		stockRepo:     stockRepo,
		drawerRepo:    drawerRepo,
		placementRepo: placementRepo,
	}
}

// PlacementInput colocar o retirar cantidad de un objeto en un cajón.
type PlacementInput struct {
	SocietyID     string
	StockObjectID string
	DrawerID      string
	Quantity      int64
}

// Place coloca cantidad de un objeto en un cajón. Falla con
// domain.ErrFeatureDisabled si la sociedad no gestiona cajones y con
// domain.ErrOverPlacement si el total colocado resultante excedería la
// cantidad del objeto (verificado bajo el mismo bloqueo de fila que usa el
// motor de movimientos).
func (uc *UseCase) Place(ctx context.Context, input PlacementInput) (*entity.StockObjectDrawerPlacement, error) {
	if err := uc.validate(ctx, input); err != nil {
		return nil, err
	}

	var placed *entity.StockObjectDrawerPlacement
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockObjectRepository,
		_ repository.MovementRepository,
		placementRepo repository.PlacementRepository,
	) error {
		obj, err := stockRepo.GetForUpdate(ctx, input.StockObjectID)
		if err != nil {
			return err
		}
		if obj == nil {
			return domain.ErrNotFound
		}
		total, err := placementRepo.SumByStockObject(ctx, input.StockObjectID)
		if err != nil {
			return err
		}
		if total+input.Quantity > obj.Quantity {
			return domain.ErrOverPlacement
		}

		placement, err := placementRepo.Get(ctx, input.StockObjectID, input.DrawerID)
		if err != nil {
			return err
		}
		if placement == nil {
			placement = &entity.StockObjectDrawerPlacement{
				ID:            uuid.New().String(),
				StockObjectID: input.StockObjectID,
				DrawerID:      input.DrawerID,
			}
		}
		placement.Quantity += input.Quantity
		placement.UpdatedAt = time.Now()
		if err := placementRepo.Upsert(ctx, placement); err != nil {
			return err
		}
		placed = placement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// Unplace retira cantidad colocada de un cajón (el stock pasa a "sin colocar").
// Retirar más de lo colocado es domain.ErrInvalidInput; la colocación que
// queda en cero se elimina.
func (uc *UseCase) Unplace(ctx context.Context, input PlacementInput) error {
	if err := uc.validate(ctx, input); err != nil {
		return err
	}

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockObjectRepository,
		_ repository.MovementRepository,
		placementRepo repository.PlacementRepository,
	) error {
		// Mismo orden de bloqueo que Place y que el ledger.
		if _, err := stockRepo.GetForUpdate(ctx, input.StockObjectID); err != nil {
			return err
		}
		placement, err := placementRepo.Get(ctx, input.StockObjectID, input.DrawerID)
		if err != nil {
			return err
		}
		if placement == nil || placement.Quantity < input.Quantity {
			return domain.ErrInvalidInput
		}
		placement.Quantity -= input.Quantity
		if placement.Quantity == 0 {
			return placementRepo.Delete(ctx, input.StockObjectID, input.DrawerID)
		}
		placement.UpdatedAt = time.Now()
		return placementRepo.Upsert(ctx, placement)
	})
}

// ListPlacements colocaciones vigentes de un objeto de la sociedad.
func (uc *UseCase) ListPlacements(ctx context.Context, societyID, stockObjectID string) ([]*entity.StockObjectDrawerPlacement, error) {
	obj, err := uc.stockRepo.GetByID(ctx, stockObjectID)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, domain.ErrNotFound
	}
	if obj.SocietyID != societyID {
		return nil, domain.ErrCrossTenant
	}
	return uc.placementRepo.ListByStockObject(ctx, stockObjectID)
}

// ListInconsistencies objetos cuyo total colocado excede su cantidad (p. ej.
// tras una salida que ignoró los cajones). El reconciliador nunca recorta
// colocaciones por su cuenta: el operador decide cómo resolver cada caso.
func (uc *UseCase) ListInconsistencies(ctx context.Context, societyID string) ([]dto.PlacementInconsistencyDTO, error) {
	rows, err := uc.placementRepo.ListInconsistencies(ctx, societyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlacementInconsistencyDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PlacementInconsistencyDTO{
			StockObjectID:   r.StockObjectID,
			StockObjectName: r.StockObjectName,
			Quantity:        r.Quantity,
			PlacedTotal:     r.PlacedTotal,
			Excess:          r.PlacedTotal - r.Quantity,
		})
	}
	return out, nil
}

// validate reglas comunes a Place/Unplace: flag de la sociedad, existencia y
// pertenencia de objeto y cajón.
func (uc *UseCase) validate(ctx context.Context, input PlacementInput) error {
	if input.Quantity <= 0 || input.StockObjectID == "" || input.DrawerID == "" {
		return domain.ErrInvalidInput
	}
	society, err := uc.societyRepo.GetByID(ctx, input.SocietyID)
	if err != nil {
		return err
	}
	if society == nil {
		return domain.ErrNotFound
	}
	if !society.CanManageDrawers {
		return domain.ErrFeatureDisabled
	}

	obj, err := uc.stockRepo.GetByID(ctx, input.StockObjectID)
	if err != nil {
		return err
	}
	if obj == nil {
		return domain.ErrNotFound
	}
	if obj.SocietyID != input.SocietyID {
		return domain.ErrCrossTenant
	}

	drawer, err := uc.drawerRepo.GetByID(ctx, input.DrawerID)
	if err != nil {
		return err
	}
	if drawer == nil {
		return domain.ErrNotFound
	}
	if drawer.SocietyID != input.SocietyID {
		return domain.ErrCrossTenant
	}
	return nil
}
