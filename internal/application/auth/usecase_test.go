package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-service/internal/application/auth"
	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/testutil"
)

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "stock-service-test"}

func newAuth(t *testing.T) (*auth.UseCase, *testutil.Store) {
	t.Helper()
	store := testutil.NewStore()
	uc := auth.NewUseCase(
		testutil.NewTxRunner(store),
		testutil.NewSocietyRepo(store),
		testutil.NewUserRepo(store),
		testJWT,
	)
	return uc, store
}

func registerRequest() dto.RegisterSocietyRequest {
	return dto.RegisterSocietyRequest{
		SocietyName:   "Taller Norte",
		AdminUsername: "admin",
		AdminEmail:    "admin@taller.test",
		Password:      "secreto123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de sociedad
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSociety_CreaSociedadYAdmin(t *testing.T) {
	uc, _ := newAuth(t)

	society, admin, err := uc.RegisterSociety(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.SubscriptionFree, society.SubscriptionLevel, "toda sociedad nace en el plan free")
	assert.False(t, society.CanManageDrawers, "los cajones nacen deshabilitados")
	assert.True(t, society.MonthlyPrice.IsZero(), "el plan free no tiene precio")
	assert.Equal(t, "taller-norte", society.Slug)
	assert.True(t, society.IsActive)

	assert.Equal(t, society.ID, admin.SocietyID)
	assert.True(t, admin.IsSocietyAdmin, "el primer usuario es administrador")
	assert.NotEqual(t, "secreto123", admin.PasswordHash, "la contraseña nunca se guarda en claro")
}

func TestRegisterSociety_NombreDuplicado(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	_, _, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	_, _, err = uc.RegisterSociety(ctx, registerRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterSociety_EntradaInvalida(t *testing.T) {
	uc, _ := newAuth(t)

	in := registerRequest()
	in.Password = ""
	_, _, err := uc.RegisterSociety(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteToken(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	_, _, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	resp, err := uc.Login(ctx, dto.LoginRequest{SocietyName: "Taller Norte", Username: "admin", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.IsSocietyAdmin)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestLogin_AceptaSlugDeSociedad(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	_, _, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	resp, err := uc.Login(ctx, dto.LoginRequest{SocietyName: "taller-norte", Username: "admin", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

// Credenciales incorrectas y usuarios inexistentes responden igual para no
// filtrar qué parte falló.
func TestLogin_CredencialesIncorrectas(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	_, _, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{SocietyName: "Taller Norte", Username: "admin", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{SocietyName: "Taller Norte", Username: "no-existe", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{SocietyName: "Sociedad Fantasma", Username: "admin", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioDesactivado(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	society, admin, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	inactive := false
	_, err = uc.UpdateUser(ctx, society.ID, admin.ID, dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{SocietyName: "Taller Norte", Username: "admin", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// El mismo username puede existir en sociedades distintas.
func TestLogin_UsernamePorSociedad(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	_, _, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	otra := registerRequest()
	otra.SocietyName = "Taller Sur"
	otra.Password = "otro-secreto"
	_, _, err = uc.RegisterSociety(ctx, otra)
	require.NoError(t, err)

	// Cada admin entra solo con la contraseña de su sociedad.
	_, err = uc.Login(ctx, dto.LoginRequest{SocietyName: "Taller Sur", Username: "admin", Password: "otro-secreto"})
	assert.NoError(t, err)
	_, err = uc.Login(ctx, dto.LoginRequest{SocietyName: "Taller Sur", Username: "admin", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Límites del plan
// ──────────────────────────────────────────────────────────────────────────────

// Plan free: 2 usuarios en total, 1 administrador.
func TestCreateUser_LimiteDeUsuariosPlanFree(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	society, _, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	_, err = uc.CreateUser(ctx, society.ID, dto.CreateUserRequest{Username: "operario", Password: "pass1234"})
	require.NoError(t, err)

	_, err = uc.CreateUser(ctx, society.ID, dto.CreateUserRequest{Username: "tercero", Password: "pass1234"})
	assert.ErrorIs(t, err, domain.ErrUserLimitReached)
}

func TestCreateUser_LimiteDeAdminsPlanFree(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	society, _, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	_, err = uc.CreateUser(ctx, society.ID, dto.CreateUserRequest{Username: "segundo-admin", Password: "pass1234", IsSocietyAdmin: true})
	assert.ErrorIs(t, err, domain.ErrAdminLimitReached)
}

// Con el plan premium no hay topes.
func TestCreateUser_PremiumSinTopes(t *testing.T) {
	uc, store := newAuth(t)
	ctx := context.Background()

	society, _, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	society.SubscriptionLevel = entity.SubscriptionPremium
	store.SeedSociety(society)

	for _, name := range []string{"op-1", "op-2", "op-3", "admin-2"} {
		_, err := uc.CreateUser(ctx, society.ID, dto.CreateUserRequest{Username: name, Password: "pass1234", IsSocietyAdmin: name == "admin-2"})
		require.NoError(t, err, "premium no impone límite para %s", name)
	}
}

func TestCreateUser_UsernameDuplicadoEnSociedad(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	society, _, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	_, err = uc.CreateUser(ctx, society.ID, dto.CreateUserRequest{Username: "admin", Password: "pass1234"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Promover a admin también pasa por el límite del plan.
func TestUpdateUser_PromoverRespetaLimite(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	society, _, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	operario, err := uc.CreateUser(ctx, society.ID, dto.CreateUserRequest{Username: "operario", Password: "pass1234"})
	require.NoError(t, err)

	promote := true
	_, err = uc.UpdateUser(ctx, society.ID, operario.ID, dto.UpdateUserRequest{IsSocietyAdmin: &promote})
	assert.ErrorIs(t, err, domain.ErrAdminLimitReached)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gestión dentro de la sociedad
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteUser_DeOtraSociedad(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	_, adminA, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	otra := registerRequest()
	otra.SocietyName = "Taller Sur"
	societyB, _, err := uc.RegisterSociety(ctx, otra)
	require.NoError(t, err)

	err = uc.DeleteUser(ctx, societyB.ID, adminA.ID)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
}

func TestListUsers_IncluyeEstadoDeLimites(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	society, _, err := uc.RegisterSociety(ctx, registerRequest())
	require.NoError(t, err)

	resp, err := uc.ListUsers(ctx, society.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Users, 1)
	assert.Equal(t, 1, resp.TotalUsers)
	assert.Equal(t, 1, resp.AdminUsers)
	assert.Equal(t, 2, resp.MaxUsers)
	assert.Equal(t, 1, resp.MaxAdmins)
}
