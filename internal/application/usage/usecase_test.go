package usage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-service/internal/application/ledger"
	"github.com/tu-usuario/stock-service/internal/application/usage"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/testutil"
)

const (
	socA    = "soc-a"
	socB    = "soc-b"
	objID   = "obj-1"
	ouID    = "ou-1"
	actorID = "usr-1"
)

// newRecorder monta el registrador de consumos con un objeto de cantidad 10 y
// un consumidor registrado.
func newRecorder(t *testing.T) (*usage.UseCase, *testutil.Store) {
	t.Helper()
	store := testutil.NewStore()
	store.SeedSociety(&entity.Society{ID: socA, Name: "Taller Norte", IsActive: true})
	store.SeedSociety(&entity.Society{ID: socB, Name: "Taller Sur", IsActive: true})
	store.SeedObject(&entity.StockObject{ID: objID, SocietyID: socA, Name: "Guantes", Quantity: 10, IsActive: true})
	store.SeedObjectUser(&entity.ObjectUser{ID: ouID, SocietyID: socA, Name: "Equipo mantenimiento"})

	txRunner := testutil.NewTxRunner(store)
	ledgerUC := ledger.NewUseCase(
		txRunner,
		testutil.NewSocietyRepo(store),
		testutil.NewStockObjectRepo(store),
		testutil.NewDrawerRepo(store),
	)
	uc := usage.NewUseCase(txRunner, ledgerUC, testutil.NewObjectUserRepo(store), testutil.NewUsageRepo(store))
	return uc, store
}

func usageInput(qty int64) usage.RecordUsageInput {
	return usage.RecordUsageInput{
		SocietyID:     socA,
		UserID:        actorID,
		ObjectUserID:  ouID,
		StockObjectID: objID,
		Quantity:      qty,
	}
}

func TestRecordUsage_DescuentaYRegistra(t *testing.T) {
	uc, store := newRecorder(t)

	result, err := uc.RecordUsage(context.Background(), usageInput(4))
	require.NoError(t, err)

	assert.Equal(t, int64(6), result.QuantityAfter)
	assert.Equal(t, int64(6), store.ObjectQuantity(objID), "el consumo descuenta stock")
	assert.Equal(t, 1, store.UsageCount(), "queda una fila de consumo")
	assert.Equal(t, 1, store.MovementCount(), "el consumo genera su movimiento de salida")
	assert.Equal(t, int64(4), result.Usage.QuantityUsed)
	assert.Equal(t, actorID, result.Usage.LoggedBy)
	assert.False(t, result.Usage.StartDate.IsZero(), "sin fecha de inicio se usa el momento del registro")
}

func TestRecordUsage_ConFechas(t *testing.T) {
	uc, _ := newRecorder(t)

	start := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	input := usageInput(2)
	input.StartDate = start
	input.EndDate = &end

	result, err := uc.RecordUsage(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, start, result.Usage.StartDate)
	require.NotNil(t, result.Usage.EndDate)
	assert.Equal(t, end, *result.Usage.EndDate)
}

// Consumo mayor que el stock: nada debe persistirse, ni el consumo ni el
// movimiento ni el cambio de cantidad.
func TestRecordUsage_StockInsuficiente(t *testing.T) {
	uc, store := newRecorder(t)

	_, err := uc.RecordUsage(context.Background(), usageInput(11))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), store.ObjectQuantity(objID))
	assert.Equal(t, 0, store.UsageCount())
	assert.Equal(t, 0, store.MovementCount())
}

func TestRecordUsage_ConsumidorInexistente(t *testing.T) {
	uc, _ := newRecorder(t)

	input := usageInput(1)
	input.ObjectUserID = "no-existe"
	_, err := uc.RecordUsage(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordUsage_ConsumidorDeOtraSociedad(t *testing.T) {
	uc, store := newRecorder(t)
	store.SeedObjectUser(&entity.ObjectUser{ID: "ou-ajeno", SocietyID: socB, Name: "Equipo ajeno"})

	input := usageInput(1)
	input.ObjectUserID = "ou-ajeno"
	_, err := uc.RecordUsage(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
}

func TestRecordUsage_CantidadInvalida(t *testing.T) {
	uc, _ := newRecorder(t)

	_, err := uc.RecordUsage(context.Background(), usageInput(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListBySociety_DevuelveHistorial(t *testing.T) {
	uc, _ := newRecorder(t)
	ctx := context.Background()

	_, err := uc.RecordUsage(ctx, usageInput(2))
	require.NoError(t, err)
	_, err = uc.RecordUsage(ctx, usageInput(3))
	require.NoError(t, err)

	rows, err := uc.ListBySociety(ctx, socA, 20, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(3), rows[0].QuantityUsed, "el historial llega del más reciente al más antiguo")
}
