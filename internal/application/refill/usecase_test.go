package refill_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-service/internal/application/ledger"
	"github.com/tu-usuario/stock-service/internal/application/refill"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/testutil"
)

const (
	socA    = "soc-a"
	socB    = "soc-b"
	objID   = "obj-1"
	actorID = "usr-1"
)

// newScheduler monta el planificador de reposiciones con un objeto de
// cantidad 5.
func newScheduler(t *testing.T) (*refill.UseCase, *testutil.Store) {
	t.Helper()
	store := testutil.NewStore()
	store.SeedSociety(&entity.Society{ID: socA, Name: "Taller Norte", IsActive: true})
	store.SeedSociety(&entity.Society{ID: socB, Name: "Taller Sur", IsActive: true})
	store.SeedObject(&entity.StockObject{ID: objID, SocietyID: socA, Name: "Guantes", Quantity: 5, MinimumQuantity: 3, IsActive: true})

	txRunner := testutil.NewTxRunner(store)
	ledgerUC := ledger.NewUseCase(
		txRunner,
		testutil.NewSocietyRepo(store),
		testutil.NewStockObjectRepo(store),
		testutil.NewDrawerRepo(store),
	)
	uc := refill.NewUseCase(txRunner, ledgerUC, testutil.NewStockObjectRepo(store), testutil.NewRefillRepo(store))
	return uc, store
}

func scheduleInput(qty int64) refill.ScheduleInput {
	return refill.ScheduleInput{
		SocietyID:        socA,
		StockObjectID:    objID,
		ScheduledDate:    time.Now().AddDate(0, 0, 7),
		QuantityToRefill: qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestSchedule_CreaPendiente(t *testing.T) {
	uc, _ := newScheduler(t)

	rf, err := uc.Schedule(context.Background(), scheduleInput(20))
	require.NoError(t, err)
	assert.Equal(t, entity.RefillPending, rf.Status)
	assert.Equal(t, int64(20), rf.QuantityToRefill)
	assert.Nil(t, rf.CompletedDate)
}

func TestSchedule_Invalida(t *testing.T) {
	uc, _ := newScheduler(t)
	ctx := context.Background()

	_, err := uc.Schedule(ctx, scheduleInput(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	input := scheduleInput(5)
	input.ScheduledDate = time.Time{}
	_, err = uc.Schedule(ctx, input)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha vacía")

	input = scheduleInput(5)
	input.StockObjectID = "no-existe"
	_, err = uc.Schedule(ctx, input)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	input = scheduleInput(5)
	input.SocietyID = socB
	_, err = uc.Schedule(ctx, input)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
}

// Completar aplica la entrada de stock y marca la reposición en el mismo paso.
func TestComplete_AplicaEntrada(t *testing.T) {
	uc, store := newScheduler(t)
	ctx := context.Background()

	rf, err := uc.Schedule(ctx, scheduleInput(20))
	require.NoError(t, err)

	done, err := uc.Complete(ctx, socA, rf.ID, actorID)
	require.NoError(t, err)
	assert.Equal(t, entity.RefillCompleted, done.Status)
	require.NotNil(t, done.CompletedDate)
	assert.Equal(t, int64(25), store.ObjectQuantity(objID), "5 + 20 repuestos")
	assert.Equal(t, 1, store.MovementCount(), "la reposición genera su movimiento de entrada")
}

// Solo las reposiciones pendientes se completan o cancelan.
func TestComplete_SoloPendientes(t *testing.T) {
	uc, _ := newScheduler(t)
	ctx := context.Background()

	rf, err := uc.Schedule(ctx, scheduleInput(20))
	require.NoError(t, err)

	_, err = uc.Complete(ctx, socA, rf.ID, actorID)
	require.NoError(t, err)

	_, err = uc.Complete(ctx, socA, rf.ID, actorID)
	assert.ErrorIs(t, err, domain.ErrConflict, "completar dos veces es conflicto")

	_, err = uc.Cancel(ctx, socA, rf.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "cancelar una completada es conflicto")
}

func TestCancel_SinMovimiento(t *testing.T) {
	uc, store := newScheduler(t)
	ctx := context.Background()

	rf, err := uc.Schedule(ctx, scheduleInput(20))
	require.NoError(t, err)

	cancelled, err := uc.Cancel(ctx, socA, rf.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RefillCancelled, cancelled.Status)
	assert.Equal(t, int64(5), store.ObjectQuantity(objID), "cancelar no toca el stock")
	assert.Equal(t, 0, store.MovementCount())
}

func TestComplete_DeOtraSociedad(t *testing.T) {
	uc, _ := newScheduler(t)
	ctx := context.Background()

	rf, err := uc.Schedule(ctx, scheduleInput(20))
	require.NoError(t, err)

	_, err = uc.Complete(ctx, socB, rf.ID, actorID)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
}
