package refill_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/application/refill"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/testutil"
)

// seedUsage registra consumo dentro de la ventana de 90 días.
func seedUsage(store *testutil.Store, objID string, qty int64, daysAgo int) {
	store.SeedUsage(&entity.StockUsage{
		ID:            objID + "-u",
		SocietyID:     socA,
		StockObjectID: objID,
		QuantityUsed:  qty,
		StartDate:     time.Now().AddDate(0, 0, -daysAgo),
	})
}

func newPredictor(store *testutil.Store) *refill.PredictionUseCase {
	return refill.NewPredictionUseCase(testutil.NewStockObjectRepo(store), testutil.NewUsageRepo(store))
}

// Consumo de 90 unidades en 90 días → ritmo diario 1.00. Con 6 unidades el
// objeto se agota en 6 días: alerta urgente.
func TestPredict_AlertaUrgente(t *testing.T) {
	store := testutil.NewStore()
	store.SeedObject(&entity.StockObject{ID: "obj-1", SocietyID: socA, Name: "Guantes", Quantity: 6, IsActive: true})
	seedUsage(store, "obj-1", 90, 30)

	predictions, err := newPredictor(store).Predict(context.Background(), socA)
	require.NoError(t, err)
	require.Len(t, predictions, 1)

	p := predictions[0]
	assert.Equal(t, dto.AlertUrgent, p.Alert)
	assert.Equal(t, "1", p.DailyUsage.String())
	require.NotNil(t, p.DaysUntilEmpty)
	assert.Equal(t, 6, *p.DaysUntilEmpty)
	require.NotNil(t, p.PredictedDate)
}

func TestPredict_AlertaTemprana(t *testing.T) {
	store := testutil.NewStore()
	store.SeedObject(&entity.StockObject{ID: "obj-1", SocietyID: socA, Name: "Guantes", Quantity: 12, IsActive: true})
	seedUsage(store, "obj-1", 90, 30)

	predictions, err := newPredictor(store).Predict(context.Background(), socA)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, dto.AlertEarly, predictions[0].Alert, "12 días hasta agotarse cae en la ventana temprana")
}

func TestPredict_SinStock(t *testing.T) {
	store := testutil.NewStore()
	store.SeedObject(&entity.StockObject{ID: "obj-1", SocietyID: socA, Name: "Guantes", Quantity: 0, IsActive: true})
	seedUsage(store, "obj-1", 45, 10)

	predictions, err := newPredictor(store).Predict(context.Background(), socA)
	require.NoError(t, err)
	require.Len(t, predictions, 1)

	p := predictions[0]
	assert.Equal(t, dto.AlertStockZero, p.Alert)
	assert.Nil(t, p.DaysUntilEmpty, "sin stock no hay fecha estimada")
	assert.Nil(t, p.PredictedDate)
}

// Sin consumo en la ventana pero bajo el umbral mínimo.
func TestPredict_BajoMinimoSinConsumo(t *testing.T) {
	store := testutil.NewStore()
	store.SeedObject(&entity.StockObject{ID: "obj-1", SocietyID: socA, Name: "Guantes", Quantity: 2, MinimumQuantity: 5, IsActive: true})

	predictions, err := newPredictor(store).Predict(context.Background(), socA)
	require.NoError(t, err)
	require.Len(t, predictions, 1)

	p := predictions[0]
	assert.Equal(t, dto.AlertBelowMinimum, p.Alert)
	assert.True(t, p.NeedsRefill)
	assert.True(t, p.DailyUsage.IsZero())
}

func TestPredict_SinConsumoNiUmbral(t *testing.T) {
	store := testutil.NewStore()
	store.SeedObject(&entity.StockObject{ID: "obj-1", SocietyID: socA, Name: "Guantes", Quantity: 50, IsActive: true})

	predictions, err := newPredictor(store).Predict(context.Background(), socA)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, dto.AlertNone, predictions[0].Alert)
	assert.False(t, predictions[0].NeedsRefill)
}

// El consumo fuera de la ventana de 90 días no cuenta para el ritmo.
func TestPredict_ConsumoFueraDeVentana(t *testing.T) {
	store := testutil.NewStore()
	store.SeedObject(&entity.StockObject{ID: "obj-1", SocietyID: socA, Name: "Guantes", Quantity: 50, IsActive: true})
	seedUsage(store, "obj-1", 200, 120)

	predictions, err := newPredictor(store).Predict(context.Background(), socA)
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, int64(0), predictions[0].UsedLast90Days)
	assert.Equal(t, dto.AlertNone, predictions[0].Alert)
}

// Las predicciones llegan de más a menos urgente.
func TestPredict_OrdenPorUrgencia(t *testing.T) {
	store := testutil.NewStore()
	store.SeedObject(&entity.StockObject{ID: "obj-sano", SocietyID: socA, Name: "Aceite", Quantity: 500, IsActive: true})
	store.SeedObject(&entity.StockObject{ID: "obj-agotado", SocietyID: socA, Name: "Guantes", Quantity: 0, IsActive: true})
	store.SeedObject(&entity.StockObject{ID: "obj-urgente", SocietyID: socA, Name: "Tornillos", Quantity: 5, IsActive: true})
	seedUsage(store, "obj-agotado", 30, 10)
	seedUsage(store, "obj-urgente", 90, 10)
	seedUsage(store, "obj-sano", 9, 10)

	predictions, err := newPredictor(store).Predict(context.Background(), socA)
	require.NoError(t, err)
	require.Len(t, predictions, 3)

	assert.Equal(t, "obj-agotado", predictions[0].StockObjectID, "sin stock primero")
	assert.Equal(t, "obj-urgente", predictions[1].StockObjectID, "urgente después")
	assert.Equal(t, "obj-sano", predictions[2].StockObjectID)
}
