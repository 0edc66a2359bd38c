package refill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-service/internal/application/ledger"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// TxRunner transacción que incluye el repositorio de reposiciones además de
// los del motor de inventario (completar una reposición aplica la entrada y
// marca la fila en la misma tx).
type TxRunner interface {
	RunRefill(ctx context.Context, fn func(
		stockRepo repository.StockObjectRepository,
		movRepo repository.MovementRepository,
		placementRepo repository.PlacementRepository,
		refillRepo repository.RefillRepository,
	) error) error
}

// UseCase programa y ejecuta reposiciones de stock.
type UseCase struct {
	txRunner   TxRunner
	ledgerUC   *ledger.UseCase
	stockRepo  repository.StockObjectRepository
	refillRepo repository.RefillRepository
}

// NewUseCase construye el planificador de reposiciones.
func NewUseCase(
	txRunner TxRunner,
	ledgerUC *ledger.UseCase,
	stockRepo repository.StockObjectRepository,
	refillRepo repository.RefillRepository,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		ledgerUC:   ledgerUC,
		stockRepo:  stockRepo,
		refillRepo: refillRepo,
	}
}

// ScheduleInput reposición planificada.
type ScheduleInput struct {
	SocietyID        string
	StockObjectID    string
	ScheduledDate    time.Time
	QuantityToRefill int64
	Notes            string
}

// Schedule crea una reposición pendiente para un objeto de la sociedad.
func (uc *UseCase) Schedule(ctx context.Context, input ScheduleInput) (*entity.RefillSchedule, error) {
	if input.QuantityToRefill <= 0 || input.StockObjectID == "" || input.ScheduledDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	obj, err := uc.stockRepo.GetByID(ctx, input.StockObjectID)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, domain.ErrNotFound
	}
	if obj.SocietyID != input.SocietyID {
		return nil, domain.ErrCrossTenant
	}

	now := time.Now()
	refill := &entity.RefillSchedule{
		ID:               uuid.New().String(),
		SocietyID:        input.SocietyID,
		StockObjectID:    input.StockObjectID,
		ScheduledDate:    input.ScheduledDate,
		QuantityToRefill: input.QuantityToRefill,
		Status:           entity.RefillPending,
		Notes:            input.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.refillRepo.Create(ctx, refill); err != nil {
		return nil, err
	}
	return refill, nil
}

// Complete marca una reposición pendiente como completada y aplica la entrada
// de stock correspondiente vía el motor de inventario, en una sola
// transacción. Una reposición completada o cancelada es domain.ErrConflict.
func (uc *UseCase) Complete(ctx context.Context, societyID, refillID, userID string) (*entity.RefillSchedule, error) {
	refill, err := uc.refillRepo.GetByID(ctx, refillID)
	if err != nil {
		return nil, err
	}
	if refill == nil {
		return nil, domain.ErrNotFound
	}
	if refill.SocietyID != societyID {
		return nil, domain.ErrCrossTenant
	}
	if refill.Status != entity.RefillPending {
		return nil, domain.ErrConflict
	}

	movInput := ledger.MovementInput{
		SocietyID:     societyID,
		UserID:        userID,
		StockObjectID: refill.StockObjectID,
		Direction:     entity.MovementIn,
		Quantity:      refill.QuantityToRefill,
		Notes:         "reposición programada " + refill.ID,
	}
	if err := uc.ledgerUC.Validate(ctx, &movInput); err != nil {
		return nil, err
	}

	err = uc.txRunner.RunRefill(ctx, func(
		stockRepo repository.StockObjectRepository,
		movRepo repository.MovementRepository,
		placementRepo repository.PlacementRepository,
		refillRepo repository.RefillRepository,
	) error {
		if _, err := uc.ledgerUC.ApplyInTx(ctx, stockRepo, movRepo, placementRepo, movInput); err != nil {
			return err
		}
		now := time.Now()
		refill.Status = entity.RefillCompleted
		refill.CompletedDate = &now
		refill.UpdatedAt = now
		return refillRepo.Update(ctx, refill)
	})
	if err != nil {
		return nil, err
	}
	return refill, nil
}

// Cancel cancela una reposición pendiente (sin movimiento de stock).
func (uc *UseCase) Cancel(ctx context.Context, societyID, refillID string) (*entity.RefillSchedule, error) {
	refill, err := uc.refillRepo.GetByID(ctx, refillID)
	if err != nil {
		return nil, err
	}
	if refill == nil {
		return nil, domain.ErrNotFound
	}
	if refill.SocietyID != societyID {
		return nil, domain.ErrCrossTenant
	}
	if refill.Status != entity.RefillPending {
		return nil, domain.ErrConflict
	}
	refill.Status = entity.RefillCancelled
	refill.UpdatedAt = time.Now()
	if err := uc.refillRepo.Update(ctx, refill); err != nil {
		return nil, err
	}
	return refill, nil
}

// ListBySociety reposiciones de la sociedad, más recientes primero.
func (uc *UseCase) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.RefillSchedule, error) {
	return uc.refillRepo.ListBySociety(ctx, societyID, limit, offset)
}
