package drawers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-service/internal/application/drawers"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/testutil"
)

const (
	socA    = "soc-a"
	socB    = "soc-b"
	objID   = "obj-1"
	drawer1 = "drw-1"
	drawer2 = "drw-2"
)

// newReconciler monta el reconciliador con una sociedad con cajones
// habilitados, un objeto con cantidad 10 y dos cajones.
func newReconciler(t *testing.T) (*drawers.UseCase, *testutil.Store) {
	t.Helper()
	store := testutil.NewStore()
	store.SeedSociety(&entity.Society{ID: socA, Name: "Taller Norte", CanManageDrawers: true, IsActive: true})
	store.SeedSociety(&entity.Society{ID: socB, Name: "Taller Sur", IsActive: true})
	store.SeedObject(&entity.StockObject{ID: objID, SocietyID: socA, Name: "Tornillo M4", Quantity: 10, IsActive: true})
	store.SeedDrawer(&entity.Drawer{ID: drawer1, SocietyID: socA, CabinetName: "A", LetterX: "B", NumberY: 3})
	store.SeedDrawer(&entity.Drawer{ID: drawer2, SocietyID: socA, CabinetName: "A", LetterX: "C", NumberY: 1})

	uc := drawers.NewUseCase(
		testutil.NewTxRunner(store),
		testutil.NewSocietyRepo(store),
		testutil.NewStockObjectRepo(store),
		testutil.NewDrawerRepo(store),
		testutil.NewPlacementRepo(store),
	)
	return uc, store
}

func placementInput(drawerID string, qty int64) drawers.PlacementInput {
	return drawers.PlacementInput{
		SocietyID:     socA,
		StockObjectID: objID,
		DrawerID:      drawerID,
		Quantity:      qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Place
// ──────────────────────────────────────────────────────────────────────────────

func TestPlace_ColocaYAcumula(t *testing.T) {
	uc, store := newReconciler(t)
	ctx := context.Background()

	placed, err := uc.Place(ctx, placementInput(drawer1, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), placed.Quantity)

	// Segunda colocación en el mismo cajón acumula sobre la existente.
	placed, err = uc.Place(ctx, placementInput(drawer1, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(7), placed.Quantity)
	assert.Equal(t, int64(7), store.PlacementQuantity(objID, drawer1))
}

// La suma de colocaciones de un objeto nunca puede exceder su cantidad.
func TestPlace_ExcesoSobreCantidad(t *testing.T) {
	uc, store := newReconciler(t)
	ctx := context.Background()

	_, err := uc.Place(ctx, placementInput(drawer1, 7))
	require.NoError(t, err)

	// 7 colocados + 4 nuevos > 10 totales.
	_, err = uc.Place(ctx, placementInput(drawer2, 4))
	assert.ErrorIs(t, err, domain.ErrOverPlacement)
	assert.Equal(t, int64(0), store.PlacementQuantity(objID, drawer2),
		"la colocación rechazada no debe persistirse")

	// Con 3 sí alcanza (7 + 3 = 10).
	_, err = uc.Place(ctx, placementInput(drawer2, 3))
	assert.NoError(t, err)
}

func TestPlace_FuncionDeshabilitada(t *testing.T) {
	uc, store := newReconciler(t)
	store.SeedSociety(&entity.Society{ID: socA, Name: "Taller Norte", CanManageDrawers: false, IsActive: true})

	_, err := uc.Place(context.Background(), placementInput(drawer1, 1))
	assert.ErrorIs(t, err, domain.ErrFeatureDisabled)
}

func TestPlace_ObjetoDeOtraSociedad(t *testing.T) {
	uc, _ := newReconciler(t)

	input := placementInput(drawer1, 1)
	input.SocietyID = socB
	_, err := uc.Place(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
}

func TestPlace_CantidadInvalida(t *testing.T) {
	uc, _ := newReconciler(t)

	_, err := uc.Place(context.Background(), placementInput(drawer1, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Unplace
// ──────────────────────────────────────────────────────────────────────────────

func TestUnplace_RetiraYEliminaEnCero(t *testing.T) {
	uc, store := newReconciler(t)
	ctx := context.Background()

	_, err := uc.Place(ctx, placementInput(drawer1, 5))
	require.NoError(t, err)

	require.NoError(t, uc.Unplace(ctx, placementInput(drawer1, 2)))
	assert.Equal(t, int64(3), store.PlacementQuantity(objID, drawer1))

	// Retirar el resto deja la colocación en cero y la elimina.
	require.NoError(t, uc.Unplace(ctx, placementInput(drawer1, 3)))
	placements, err := uc.ListPlacements(ctx, socA, objID)
	require.NoError(t, err)
	assert.Empty(t, placements)
}

func TestUnplace_MasDeLoColocado(t *testing.T) {
	uc, _ := newReconciler(t)
	ctx := context.Background()

	_, err := uc.Place(ctx, placementInput(drawer1, 2))
	require.NoError(t, err)

	err = uc.Unplace(ctx, placementInput(drawer1, 5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUnplace_SinColocacion(t *testing.T) {
	uc, _ := newReconciler(t)

	err := uc.Unplace(context.Background(), placementInput(drawer1, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inconsistencias
// ──────────────────────────────────────────────────────────────────────────────

// Una salida de stock que ignoró los cajones puede dejar el total colocado por
// encima de la cantidad. El reconciliador lo reporta sin corregirlo.
func TestListInconsistencies_ReportaSinCorregir(t *testing.T) {
	uc, store := newReconciler(t)
	ctx := context.Background()

	_, err := uc.Place(ctx, placementInput(drawer1, 8))
	require.NoError(t, err)

	// Simula la salida externa: la cantidad del objeto baja a 5 sin tocar
	// las colocaciones.
	require.NoError(t, testutil.NewStockObjectRepo(store).UpdateQuantity(ctx, objID, 5))

	rows, err := uc.ListInconsistencies(ctx, socA)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, objID, rows[0].StockObjectID)
	assert.Equal(t, int64(5), rows[0].Quantity)
	assert.Equal(t, int64(8), rows[0].PlacedTotal)
	assert.Equal(t, int64(3), rows[0].Excess)

	// La colocación queda intacta: el operador decide cómo resolverla.
	assert.Equal(t, int64(8), store.PlacementQuantity(objID, drawer1))
}

func TestListInconsistencies_SinExceso(t *testing.T) {
	uc, _ := newReconciler(t)
	ctx := context.Background()

	_, err := uc.Place(ctx, placementInput(drawer1, 10))
	require.NoError(t, err)

	rows, err := uc.ListInconsistencies(ctx, socA)
	require.NoError(t, err)
	assert.Empty(t, rows, "colocado == cantidad no es inconsistencia")
}
