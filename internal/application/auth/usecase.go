package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
	"github.com/tu-usuario/stock-service/pkg/jwt"
	"github.com/tu-usuario/stock-service/pkg/slug"
)

// TxRunner transacción para el alta de sociedad + primer administrador.
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		societyRepo repository.SocietyRepository,
		userRepo repository.UserRepository,
	) error) error
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación y gestión de usuarios: registro de
// sociedad, login por (sociedad, username, password) y altas de usuario
// sujetas a los límites del plan.
type UseCase struct {
	txRunner    TxRunner
	societyRepo repository.SocietyRepository
	userRepo    repository.UserRepository
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(txRunner TxRunner, societyRepo repository.SocietyRepository, userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{txRunner: txRunner, societyRepo: societyRepo, userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterSociety crea la sociedad (plan free, cajones deshabilitados) y su
// primer usuario administrador en una sola transacción.
func (uc *UseCase) RegisterSociety(ctx context.Context, in dto.RegisterSocietyRequest) (*entity.Society, *entity.User, error) {
	if in.SocietyName == "" || in.AdminUsername == "" || in.Password == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	existing, err := uc.societyRepo.GetByName(ctx, in.SocietyName)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domain.ErrDuplicate
	}
	societySlug := slug.Make(in.SocietyName)
	if societySlug == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	bySlug, err := uc.societyRepo.GetBySlug(ctx, societySlug)
	if err != nil {
		return nil, nil, err
	}
	if bySlug != nil {
		return nil, nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	society := &entity.Society{
		ID:                uuid.New().String(),
		Name:              in.SocietyName,
		Slug:              societySlug,
		SubscriptionLevel: entity.SubscriptionFree,
		MonthlyPrice:      decimal.Zero,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	admin := &entity.User{
		ID:             uuid.New().String(),
		SocietyID:      society.ID,
		Username:       in.AdminUsername,
		Email:          in.AdminEmail,
		PasswordHash:   string(hash),
		IsSocietyAdmin: true,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.RunRegistration(ctx, func(
		societyRepo repository.SocietyRepository,
		userRepo repository.UserRepository,
	) error {
		if err := societyRepo.Create(ctx, society); err != nil {
			return err
		}
		return userRepo.Create(ctx, admin)
	})
	if err != nil {
		return nil, nil, err
	}
	return society, admin, nil
}

// Login autentica por (nombre de sociedad, username, password): busca la
// sociedad, el usuario dentro de ella, verifica bcrypt y estados activos, y
// emite un JWT con society_id e is_admin. Credenciales incorrectas y
// usuarios inexistentes responden igual (domain.ErrUnauthorized).
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.SocietyName == "" || in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	society, err := uc.societyRepo.GetByName(ctx, in.SocietyName)
	if err != nil {
		return nil, err
	}
	if society == nil {
		// También se acepta el slug de la sociedad.
		society, err = uc.societyRepo.GetBySlug(ctx, slug.Make(in.SocietyName))
		if err != nil {
			return nil, err
		}
	}
	if society == nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := uc.userRepo.GetByUsernameAndSociety(ctx, in.Username, society.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive || !society.IsActive {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.SocietyID, user.IsSocietyAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// CreateUser alta de usuario dentro de la sociedad, respetando los límites
// del plan: domain.ErrUserLimitReached / domain.ErrAdminLimitReached.
func (uc *UseCase) CreateUser(ctx context.Context, societyID string, in dto.CreateUserRequest) (*entity.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	society, err := uc.societyRepo.GetByID(ctx, societyID)
	if err != nil {
		return nil, err
	}
	if society == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.userRepo.GetByUsernameAndSociety(ctx, in.Username, societyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	total, admins, err := uc.userRepo.CountBySociety(ctx, societyID)
	if err != nil {
		return nil, err
	}
	limits := society.Limits()
	if limits.MaxUsers != entity.Unlimited && total >= limits.MaxUsers {
		return nil, domain.ErrUserLimitReached
	}
	if in.IsSocietyAdmin && limits.MaxAdmins != entity.Unlimited && admins >= limits.MaxAdmins {
		return nil, domain.ErrAdminLimitReached
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		SocietyID:      societyID,
		Username:       in.Username,
		Email:          in.Email,
		PasswordHash:   string(hash),
		IsSocietyAdmin: in.IsSocietyAdmin,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser edición de usuario de la propia sociedad. Promover a admin
// respeta el límite del plan.
func (uc *UseCase) UpdateUser(ctx context.Context, societyID, userID string, in dto.UpdateUserRequest) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if user.SocietyID != societyID {
		return nil, domain.ErrCrossTenant
	}

	if in.IsSocietyAdmin != nil && *in.IsSocietyAdmin && !user.IsSocietyAdmin {
		society, err := uc.societyRepo.GetByID(ctx, societyID)
		if err != nil {
			return nil, err
		}
		if society == nil {
			return nil, domain.ErrNotFound
		}
		_, admins, err := uc.userRepo.CountBySociety(ctx, societyID)
		if err != nil {
			return nil, err
		}
		if limits := society.Limits(); limits.MaxAdmins != entity.Unlimited && admins >= limits.MaxAdmins {
			return nil, domain.ErrAdminLimitReached
		}
	}

	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.IsSocietyAdmin != nil {
		user.IsSocietyAdmin = *in.IsSocietyAdmin
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser baja de usuario de la propia sociedad.
func (uc *UseCase) DeleteUser(ctx context.Context, societyID, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.SocietyID != societyID {
		return domain.ErrCrossTenant
	}
	return uc.userRepo.Delete(ctx, userID)
}

// ListUsers usuarios de la sociedad junto con el estado de los límites del plan.
func (uc *UseCase) ListUsers(ctx context.Context, societyID string, limit, offset int) (*dto.UserListResponse, error) {
	society, err := uc.societyRepo.GetByID(ctx, societyID)
	if err != nil {
		return nil, err
	}
	if society == nil {
		return nil, domain.ErrNotFound
	}
	users, err := uc.userRepo.ListBySociety(ctx, societyID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, admins, err := uc.userRepo.CountBySociety(ctx, societyID)
	if err != nil {
		return nil, err
	}

	limits := society.Limits()
	out := &dto.UserListResponse{
		Users:      make([]dto.UserResponse, 0, len(users)),
		TotalUsers: total,
		AdminUsers: admins,
		MaxUsers:   limits.MaxUsers,
		MaxAdmins:  limits.MaxAdmins,
	}
	for _, u := range users {
		out.Users = append(out.Users, *ToUserResponse(u))
	}
	return out, nil
}

// ToUserResponse convierte la entidad a su representación pública (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		SocietyID:      u.SocietyID,
		Username:       u.Username,
		Email:          u.Email,
		IsSocietyAdmin: u.IsSocietyAdmin,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
