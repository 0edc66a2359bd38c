package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// Tamaños de las listas del dashboard (mismos que la pantalla de inicio
// original: últimos 5 movimientos, próximas 5 reposiciones).
const (
	dashboardRecentMovements = 5
	dashboardUpcomingRefills = 5
)

// DashboardUseCase resumen de la sociedad: totales, objetos bajo mínimo,
// movimientos recientes y reposiciones próximas.
type DashboardUseCase struct {
	stockRepo    repository.StockObjectRepository
	movementRepo repository.MovementRepository
	refillRepo   repository.RefillRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	stockRepo repository.StockObjectRepository,
	movementRepo repository.MovementRepository,
	refillRepo repository.RefillRepository,
) *DashboardUseCase {
	return &DashboardUseCase{stockRepo: stockRepo, movementRepo: movementRepo, refillRepo: refillRepo}
}

// Summary arma el resumen para la sociedad del actor.
func (uc *DashboardUseCase) Summary(ctx context.Context, societyID string) (*dto.DashboardResponse, error) {
	total, belowMin, err := uc.stockRepo.CountBySociety(ctx, societyID)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.ListRecent(ctx, societyID, dashboardRecentMovements)
	if err != nil {
		return nil, err
	}
	refills, err := uc.refillRepo.ListUpcoming(ctx, societyID, time.Now(), dashboardUpcomingRefills)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		TotalStockObjects: total,
		LowStockObjects:   belowMin,
		RecentMovements:   make([]dto.MovementResponse, 0, len(movements)),
		UpcomingRefills:   make([]dto.RefillResponse, 0, len(refills)),
	}
	for _, m := range movements {
		out.RecentMovements = append(out.RecentMovements, ToMovementResponse(m))
	}
	for _, r := range refills {
		out.UpcomingRefills = append(out.UpcomingRefills, ToRefillResponse(r))
	}
	return out, nil
}

// ToMovementResponse convierte la entidad a su representación pública.
func ToMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		StockObjectID: m.StockObjectID,
		Direction:     m.Direction,
		Quantity:      m.Quantity,
		QuantityAfter: m.QuantityAfter,
		MovedBy:       m.MovedBy,
		DrawerID:      m.DrawerID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// ToRefillResponse convierte la entidad a su representación pública.
func ToRefillResponse(r *entity.RefillSchedule) dto.RefillResponse {
	return dto.RefillResponse{
		ID:               r.ID,
		StockObjectID:    r.StockObjectID,
		ScheduledDate:    r.ScheduledDate,
		QuantityToRefill: r.QuantityToRefill,
		Status:           r.Status,
		CompletedDate:    r.CompletedDate,
		Notes:            r.Notes,
	}
}
