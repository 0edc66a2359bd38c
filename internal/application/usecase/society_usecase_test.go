package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/application/usecase"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/testutil"
)

const socA = "soc-a"

func newSocietyUC(level string, price decimal.Decimal) (*usecase.SocietyUseCase, *testutil.Store) {
	store := testutil.NewStore()
	store.SeedSociety(&entity.Society{
		ID:                socA,
		Name:              "Taller Norte",
		Slug:              "taller-norte",
		SubscriptionLevel: level,
		MonthlyPrice:      price,
		IsActive:          true,
	})
	return usecase.NewSocietyUseCase(testutil.NewSocietyRepo(store)), store
}

func TestUpgrade_AplicaPlanYPrecio(t *testing.T) {
	uc, store := newSocietyUC(entity.SubscriptionFree, decimal.Zero)
	ctx := context.Background()

	society, err := uc.Upgrade(ctx, socA, entity.SubscriptionBasic)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionBasic, society.SubscriptionLevel)
	assert.True(t, society.MonthlyPrice.Equal(decimal.NewFromInt(9)),
		"el precio mensual acompaña al plan contratado")

	// El cambio queda persistido, no solo en la copia devuelta.
	stored, err := testutil.NewSocietyRepo(store).GetByID(ctx, socA)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.MonthlyPrice.Equal(decimal.NewFromInt(9)))
}

func TestUpgrade_VolverAFreeDejaPrecioEnCero(t *testing.T) {
	uc, _ := newSocietyUC(entity.SubscriptionPremium, decimal.NewFromInt(29))

	society, err := uc.Upgrade(context.Background(), socA, entity.SubscriptionFree)
	require.NoError(t, err)
	assert.True(t, society.MonthlyPrice.IsZero())
}

func TestUpgrade_MismoNivelEsConflicto(t *testing.T) {
	uc, _ := newSocietyUC(entity.SubscriptionFree, decimal.Zero)

	_, err := uc.Upgrade(context.Background(), socA, entity.SubscriptionFree)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpgrade_NivelInvalido(t *testing.T) {
	uc, _ := newSocietyUC(entity.SubscriptionFree, decimal.Zero)

	_, err := uc.Upgrade(context.Background(), socA, "enterprise")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpgrade_SociedadInexistente(t *testing.T) {
	uc, _ := newSocietyUC(entity.SubscriptionFree, decimal.Zero)

	_, err := uc.Upgrade(context.Background(), "soc-inexistente", entity.SubscriptionBasic)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSettings_DeshabilitarCajonesLosOcultaDelListado(t *testing.T) {
	uc, _ := newSocietyUC(entity.SubscriptionPremium, decimal.NewFromInt(29))
	ctx := context.Background()

	habilitar := true
	society, err := uc.UpdateSettings(ctx, socA, dto.UpdateSocietySettingsRequest{
		CanManageDrawers:   &habilitar,
		ShowsDrawersInList: &habilitar,
	})
	require.NoError(t, err)
	require.True(t, society.ShowsDrawersInList)

	deshabilitar := false
	society, err = uc.UpdateSettings(ctx, socA, dto.UpdateSocietySettingsRequest{CanManageDrawers: &deshabilitar})
	require.NoError(t, err)
	assert.False(t, society.CanManageDrawers)
	assert.False(t, society.ShowsDrawersInList, "sin gestión de cajones tampoco se listan")
}
