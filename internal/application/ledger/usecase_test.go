package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-service/internal/application/ledger"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	socA     = "soc-a"
	socB     = "soc-b"
	objID    = "obj-1"
	drawerID = "drw-1"
	actorID  = "usr-1"
)

// newLedger monta el motor sobre un Store en memoria con una sociedad (cajones
// habilitados), un objeto con cantidad inicial y un cajón.
func newLedger(t *testing.T, initialQty int64) (*ledger.UseCase, *testutil.Store) {
	t.Helper()
	store := testutil.NewStore()
	store.SeedSociety(&entity.Society{ID: socA, Name: "Taller Norte", CanManageDrawers: true, IsActive: true})
	store.SeedSociety(&entity.Society{ID: socB, Name: "Taller Sur", IsActive: true})
	store.SeedObject(&entity.StockObject{ID: objID, SocietyID: socA, Name: "Tornillo M4", Quantity: initialQty, IsActive: true})
	store.SeedDrawer(&entity.Drawer{ID: drawerID, SocietyID: socA, CabinetName: "A", LetterX: "B", NumberY: 3})

	uc := ledger.NewUseCase(
		testutil.NewTxRunner(store),
		testutil.NewSocietyRepo(store),
		testutil.NewStockObjectRepo(store),
		testutil.NewDrawerRepo(store),
	)
	return uc, store
}

func movement(direction string, qty int64) ledger.MovementInput {
	return ledger.MovementInput{
		SocietyID:     socA,
		UserID:        actorID,
		StockObjectID: objID,
		Direction:     direction,
		Quantity:      qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos básicos
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntradaSumaCantidad(t *testing.T) {
	uc, store := newLedger(t, 10)

	result, err := uc.ApplyMovement(context.Background(), movement(entity.MovementIn, 5))
	require.NoError(t, err)

	assert.Equal(t, int64(15), result.QuantityAfter)
	assert.Equal(t, int64(15), store.ObjectQuantity(objID), "la cantidad persistida debe reflejar la entrada")
	assert.Equal(t, 1, store.MovementCount(), "cada movimiento produce exactamente una fila de auditoría")
	assert.Equal(t, int64(15), result.Movement.QuantityAfter, "el snapshot viaja en la fila de auditoría")
	assert.Equal(t, actorID, result.Movement.MovedBy)
}

func TestApplyMovement_SalidaRestaCantidad(t *testing.T) {
	uc, store := newLedger(t, 10)

	result, err := uc.ApplyMovement(context.Background(), movement(entity.MovementOut, 4))
	require.NoError(t, err)

	assert.Equal(t, int64(6), result.QuantityAfter)
	assert.Equal(t, int64(6), store.ObjectQuantity(objID))
}

// Secuencia del ciclo completo: 10 → out 4 → quedan 6 → out 10 falla.
func TestApplyMovement_SecuenciaSalidas(t *testing.T) {
	uc, store := newLedger(t, 10)
	ctx := context.Background()

	_, err := uc.ApplyMovement(ctx, movement(entity.MovementOut, 4))
	require.NoError(t, err)
	require.Equal(t, int64(6), store.ObjectQuantity(objID))

	_, err = uc.ApplyMovement(ctx, movement(entity.MovementOut, 10))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(6), store.ObjectQuantity(objID), "la salida rechazada no debe tocar la cantidad")
	assert.Equal(t, 1, store.MovementCount(), "la salida rechazada no deja fila de auditoría")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_CantidadInvalida(t *testing.T) {
	uc, _ := newLedger(t, 10)
	ctx := context.Background()

	_, err := uc.ApplyMovement(ctx, movement(entity.MovementIn, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero es inválida")

	_, err = uc.ApplyMovement(ctx, movement(entity.MovementIn, -3))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa es inválida")
}

func TestApplyMovement_DireccionInvalida(t *testing.T) {
	uc, _ := newLedger(t, 10)

	_, err := uc.ApplyMovement(context.Background(), movement("transfer", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_ObjetoInexistente(t *testing.T) {
	uc, _ := newLedger(t, 10)

	input := movement(entity.MovementIn, 1)
	input.StockObjectID = "no-existe"
	_, err := uc.ApplyMovement(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El objeto pertenece a otra sociedad: el actor no debe poder moverlo.
func TestApplyMovement_ObjetoDeOtraSociedad(t *testing.T) {
	uc, store := newLedger(t, 10)

	input := movement(entity.MovementOut, 1)
	input.SocietyID = socB
	_, err := uc.ApplyMovement(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
	assert.Equal(t, int64(10), store.ObjectQuantity(objID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos con cajón
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntradaConCajonAjustaColocacion(t *testing.T) {
	uc, store := newLedger(t, 10)

	input := movement(entity.MovementIn, 5)
	input.DrawerID = drawerID
	result, err := uc.ApplyMovement(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, int64(15), result.QuantityAfter)
	assert.Equal(t, int64(5), store.PlacementQuantity(objID, drawerID),
		"la entrada con cajón crea o incrementa la colocación")
	assert.Equal(t, drawerID, result.Movement.DrawerID)
}

// Una salida desde un cajón que no contiene la cantidad pedida revierte el
// movimiento completo: ni la cantidad ni la auditoría deben cambiar.
func TestApplyMovement_SalidaDesdeCajonSinColocacion_RevierteTodo(t *testing.T) {
	uc, store := newLedger(t, 10)

	input := movement(entity.MovementOut, 3)
	input.DrawerID = drawerID
	_, err := uc.ApplyMovement(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrOverPlacement)
	assert.Equal(t, int64(10), store.ObjectQuantity(objID),
		"el rollback debe restaurar la cantidad del objeto")
	assert.Equal(t, 0, store.MovementCount())
}

func TestApplyMovement_CajonConFuncionDeshabilitada(t *testing.T) {
	store := testutil.NewStore()
	store.SeedSociety(&entity.Society{ID: socA, Name: "Taller Norte", CanManageDrawers: false, IsActive: true})
	store.SeedObject(&entity.StockObject{ID: objID, SocietyID: socA, Name: "Tornillo M4", Quantity: 10, IsActive: true})
	store.SeedDrawer(&entity.Drawer{ID: drawerID, SocietyID: socA, CabinetName: "A", LetterX: "B", NumberY: 3})
	uc := ledger.NewUseCase(
		testutil.NewTxRunner(store),
		testutil.NewSocietyRepo(store),
		testutil.NewStockObjectRepo(store),
		testutil.NewDrawerRepo(store),
	)

	input := movement(entity.MovementIn, 1)
	input.DrawerID = drawerID
	_, err := uc.ApplyMovement(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrFeatureDisabled)
}

func TestApplyMovement_CajonDeOtraSociedad(t *testing.T) {
	uc, store := newLedger(t, 10)
	store.SeedDrawer(&entity.Drawer{ID: "drw-ajeno", SocietyID: socB, CabinetName: "Z", LetterX: "A", NumberY: 1})

	input := movement(entity.MovementIn, 1)
	input.DrawerID = "drw-ajeno"
	_, err := uc.ApplyMovement(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// Dos salidas concurrentes de 6 sobre un stock de 10: exactamente una debe
// aplicarse y la otra fallar por stock insuficiente. El bloqueo de fila evita
// que ambas lean la misma cantidad inicial.
func TestApplyMovement_SalidasConcurrentes(t *testing.T) {
	uc, store := newLedger(t, 10)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.ApplyMovement(ctx, movement(entity.MovementOut, 6))
		}(i)
	}
	wg.Wait()

	var okCount, insufficientCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case err == domain.ErrInsufficientStock:
			insufficientCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una salida debe aplicarse")
	assert.Equal(t, 1, insufficientCount, "la otra debe fallar por stock insuficiente")
	assert.Equal(t, int64(4), store.ObjectQuantity(objID))
	assert.Equal(t, 1, store.MovementCount())
}
