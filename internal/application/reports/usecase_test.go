package reports_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-service/internal/application/reports"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/testutil"
)

const (
	socA     = "soc-a"
	objID    = "obj-1"
	kindID   = "kind-1"
	drawerID = "drw-1"
)

// capturingGenerator guarda los datos que recibe y devuelve bytes fijos.
type capturingGenerator struct {
	data *reports.StockReportData
}

func (g *capturingGenerator) GenerateStockReport(ctx context.Context, data *reports.StockReportData) ([]byte, error) {
	g.data = data
	return []byte("%PDF-fake"), nil
}

func newReportUC(store *testutil.Store) (*reports.UseCase, *capturingGenerator) {
	gen := &capturingGenerator{}
	uc := reports.NewUseCase(
		testutil.NewSocietyRepo(store),
		testutil.NewStockObjectRepo(store),
		testutil.NewStockObjectKindRepo(store),
		testutil.NewDrawerRepo(store),
		testutil.NewPlacementRepo(store),
		gen,
	)
	return uc, gen
}

func seedSociety(store *testutil.Store, manageDrawers, showsInList bool) {
	store.SeedSociety(&entity.Society{
		ID:                 socA,
		Name:               "Taller Norte",
		Slug:               "taller-norte",
		CanManageDrawers:   manageDrawers,
		ShowsDrawersInList: showsInList,
		IsActive:           true,
	})
}

// Un token válido puede referir una sociedad ya eliminada: el caso de uso
// responde no-encontrado en lugar de fallar.
func TestStockReport_SociedadInexistente(t *testing.T) {
	uc, _ := newReportUC(testutil.NewStore())

	_, _, err := uc.StockReport(context.Background(), "soc-inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockReport_ArmaLineasYNombre(t *testing.T) {
	store := testutil.NewStore()
	seedSociety(store, false, false)
	store.SeedKind(&entity.StockObjectKind{ID: kindID, SocietyID: socA, Name: "Herramientas"})
	store.SeedObject(&entity.StockObject{
		ID: objID, SocietyID: socA, KindID: kindID, Name: "Destornillador",
		Quantity: 2, MinimumQuantity: 5, Unit: "unidad",
		LocationDescription: "estantería del fondo", IsActive: true,
	})
	store.SeedObject(&entity.StockObject{
		ID: "obj-2", SocietyID: socA, Name: "Tornillo M4",
		Quantity: 100, MinimumQuantity: 10, IsActive: true,
	})
	uc, gen := newReportUC(store)

	pdf, filename, err := uc.StockReport(context.Background(), socA)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, filename, "stock-taller-norte-")
	assert.Contains(t, filename, ".pdf")

	require.NotNil(t, gen.data)
	assert.Equal(t, "Taller Norte", gen.data.SocietyName)
	assert.Equal(t, 2, gen.data.TotalObjects)
	assert.Equal(t, 1, gen.data.BelowMinimum)

	require.Len(t, gen.data.Lines, 2)
	destornillador := gen.data.Lines[0]
	assert.Equal(t, "Destornillador", destornillador.Name)
	assert.Equal(t, "Herramientas", destornillador.KindName)
	assert.True(t, destornillador.BelowMinimum)
	assert.Equal(t, "estantería del fondo", destornillador.Location,
		"sin cajones en listados se usa la ubicación libre")
}

// Con cajones habilitados y visibles, la ubicación son las etiquetas de cajón
// con sus cantidades colocadas.
func TestStockReport_UbicacionPorCajones(t *testing.T) {
	store := testutil.NewStore()
	seedSociety(store, true, true)
	store.SeedObject(&entity.StockObject{
		ID: objID, SocietyID: socA, Name: "Tornillo M4", Quantity: 15,
		LocationDescription: "caja vieja", IsActive: true,
	})
	store.SeedDrawer(&entity.Drawer{ID: drawerID, SocietyID: socA, CabinetName: "Gabinete A", LetterX: "B", NumberY: 3})
	ctx := context.Background()
	require.NoError(t, testutil.NewPlacementRepo(store).Upsert(ctx, &entity.StockObjectDrawerPlacement{
		ID: "pl-1", StockObjectID: objID, DrawerID: drawerID, Quantity: 10,
	}))
	uc, gen := newReportUC(store)

	_, _, err := uc.StockReport(ctx, socA)
	require.NoError(t, err)
	require.Len(t, gen.data.Lines, 1)
	assert.Equal(t, "Gabinete A - B3 (x10)", gen.data.Lines[0].Location)
}

// Cajones habilitados pero ocultos en listados: la ubicación libre manda.
func TestStockReport_CajonesOcultosEnListados(t *testing.T) {
	store := testutil.NewStore()
	seedSociety(store, true, false)
	store.SeedObject(&entity.StockObject{
		ID: objID, SocietyID: socA, Name: "Tornillo M4", Quantity: 15,
		LocationDescription: "caja vieja", IsActive: true,
	})
	uc, gen := newReportUC(store)

	_, _, err := uc.StockReport(context.Background(), socA)
	require.NoError(t, err)
	require.Len(t, gen.data.Lines, 1)
	assert.Equal(t, "caja vieja", gen.data.Lines[0].Location)
}
