package usage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-service/internal/application/ledger"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// TxRunner transacción que incluye el repositorio de consumos además de los
// del motor de inventario (el consumo y su movimiento de salida se confirman
// juntos).
type TxRunner interface {
	RunUsage(ctx context.Context, fn func(
		stockRepo repository.StockObjectRepository,
		movRepo repository.MovementRepository,
		placementRepo repository.PlacementRepository,
		usageRepo repository.UsageRepository,
	) error) error
}

// UseCase registra consumos de stock por ObjectUser. Internamente aplica una
// salida vía el motor de inventario en la misma transacción, por lo que
// comparte sus errores (domain.ErrInsufficientStock incluido).
type UseCase struct {
	txRunner       TxRunner
	ledgerUC       *ledger.UseCase
	objectUserRepo repository.ObjectUserRepository
	usageRepo      repository.UsageRepository
}

// NewUseCase construye el registrador de consumos.
func NewUseCase(
	txRunner TxRunner,
	ledgerUC *ledger.UseCase,
	objectUserRepo repository.ObjectUserRepository,
	usageRepo repository.UsageRepository,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		ledgerUC:       ledgerUC,
		objectUserRepo: objectUserRepo,
		usageRepo:      usageRepo,
	}
}

// RecordUsageInput entrada para registrar un consumo.
type RecordUsageInput struct {
	SocietyID     string
	UserID        string // actor que registra
	ObjectUserID  string
	StockObjectID string
	Quantity      int64
	StartDate     time.Time
	EndDate       *time.Time
	Notes         string
}

// RecordUsageResult consumo registrado más el snapshot de stock posterior.
type RecordUsageResult struct {
	Usage         *entity.StockUsage
	QuantityAfter int64
}

// RecordUsage valida el consumidor y el objeto, aplica la salida y persiste
// el StockUsage, todo en una transacción.
func (uc *UseCase) RecordUsage(ctx context.Context, input RecordUsageInput) (*RecordUsageResult, error) {
	if input.Quantity <= 0 || input.ObjectUserID == "" {
		return nil, domain.ErrInvalidInput
	}

	objectUser, err := uc.objectUserRepo.GetByID(ctx, input.ObjectUserID)
	if err != nil {
		return nil, err
	}
	if objectUser == nil {
		return nil, domain.ErrNotFound
	}
	if objectUser.SocietyID != input.SocietyID {
		return nil, domain.ErrCrossTenant
	}

	movInput := ledger.MovementInput{
		SocietyID:     input.SocietyID,
		UserID:        input.UserID,
		StockObjectID: input.StockObjectID,
		Direction:     entity.MovementOut,
		Quantity:      input.Quantity,
		Notes:         "consumo: " + objectUser.Name,
	}
	// Mismas reglas de validación que un movimiento directo.
	if err := uc.ledgerUC.Validate(ctx, &movInput); err != nil {
		return nil, err
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	var result *RecordUsageResult
	err = uc.txRunner.RunUsage(ctx, func(
		stockRepo repository.StockObjectRepository,
		movRepo repository.MovementRepository,
		placementRepo repository.PlacementRepository,
		usageRepo repository.UsageRepository,
	) error {
		movResult, err := uc.ledgerUC.ApplyInTx(ctx, stockRepo, movRepo, placementRepo, movInput)
		if err != nil {
			return err
		}
		u := &entity.StockUsage{
			ID:            uuid.New().String(),
			SocietyID:     input.SocietyID,
			StockObjectID: input.StockObjectID,
			ObjectUserID:  input.ObjectUserID,
			QuantityUsed:  input.Quantity,
			StartDate:     startDate,
			EndDate:       input.EndDate,
			Notes:         input.Notes,
			LoggedBy:      input.UserID,
			LoggedAt:      time.Now(),
		}
		if err := usageRepo.Create(ctx, u); err != nil {
			return err
		}
		result = &RecordUsageResult{Usage: u, QuantityAfter: movResult.QuantityAfter}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListBySociety historial de consumos de la sociedad (log de uso).
func (uc *UseCase) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.StockUsage, error) {
	return uc.usageRepo.ListBySociety(ctx, societyID, limit, offset)
}
