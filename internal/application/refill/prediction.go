package refill

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// Ventana de consumo usada para estimar el ritmo diario.
const predictionWindowDays = 90

// PredictionUseCase estima cuándo repondrá cada objeto a partir del consumo
// registrado en los últimos 90 días. Heurística determinista: ritmo diario
// promedio → días hasta agotarse → fecha estimada, con un nivel de alerta.
type PredictionUseCase struct {
	stockRepo repository.StockObjectRepository
	usageRepo repository.UsageRepository
}

// NewPredictionUseCase construye el predictor.
func NewPredictionUseCase(stockRepo repository.StockObjectRepository, usageRepo repository.UsageRepository) *PredictionUseCase {
	return &PredictionUseCase{stockRepo: stockRepo, usageRepo: usageRepo}
}

// Predict devuelve una predicción por cada objeto activo de la sociedad,
// ordenadas de más a menos urgente.
func (uc *PredictionUseCase) Predict(ctx context.Context, societyID string) ([]dto.RefillPredictionDTO, error) {
	objects, err := uc.stockRepo.ListActiveBySociety(ctx, societyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	since := now.AddDate(0, 0, -predictionWindowDays)
	window := decimal.NewFromInt(predictionWindowDays)

	predictions := make([]dto.RefillPredictionDTO, 0, len(objects))
	for _, obj := range objects {
		used, err := uc.usageRepo.TotalUsedSince(ctx, obj.ID, since)
		if err != nil {
			return nil, err
		}

		p := dto.RefillPredictionDTO{
			StockObjectID:   obj.ID,
			StockObjectName: obj.Name,
			CurrentQuantity: obj.Quantity,
			MinimumQuantity: obj.MinimumQuantity,
			UsedLast90Days:  used,
			DailyUsage:      decimal.Zero,
			NeedsRefill:     obj.BelowMinimum(),
			Alert:           dto.AlertNone,
		}

		if used > 0 {
			daily := decimal.NewFromInt(used).Div(window)
			p.DailyUsage = daily.Round(2)

			switch {
			case obj.Quantity <= 0:
				// Sin stock: reposición inmediata, sin fecha estimada.
				p.Alert = dto.AlertStockZero
			default:
				days := int(decimal.NewFromInt(obj.Quantity).Div(daily).IntPart())
				predicted := now.AddDate(0, 0, days)
				p.DaysUntilEmpty = &days
				p.PredictedDate = &predicted
				switch {
				case days <= 7:
					p.Alert = dto.AlertUrgent
				case days <= 14:
					p.Alert = dto.AlertEarly
				}
			}
		} else if p.NeedsRefill {
			// Sin consumo en la ventana pero bajo el umbral: requiere atención
			// aunque no haya ritmo estimable.
			p.Alert = dto.AlertBelowMinimum
		}

		predictions = append(predictions, p)
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		a, b := predictions[i], predictions[j]
		if ra, rb := alertRank(a.Alert), alertRank(b.Alert); ra != rb {
			return ra < rb
		}
		// Dentro del mismo nivel, primero el que se agota antes.
		switch {
		case a.DaysUntilEmpty != nil && b.DaysUntilEmpty != nil:
			if *a.DaysUntilEmpty != *b.DaysUntilEmpty {
				return *a.DaysUntilEmpty < *b.DaysUntilEmpty
			}
		case a.DaysUntilEmpty != nil:
			return true
		case b.DaysUntilEmpty != nil:
			return false
		}
		return a.StockObjectName < b.StockObjectName
	})

	return predictions, nil
}

// alertRank orden de urgencia (0 = más urgente).
func alertRank(alert string) int {
	switch alert {
	case dto.AlertStockZero:
		return 0
	case dto.AlertUrgent:
		return 1
	case dto.AlertEarly:
		return 2
	case dto.AlertBelowMinimum:
		return 3
	default:
		return 4
	}
}
