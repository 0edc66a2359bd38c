package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

var _ repository.SocietyRepository = (*SocietyRepo)(nil)

// SocietyRepo implementación de SocietyRepository sobre PostgreSQL (usable con pool o tx).
type SocietyRepo struct {
	q Querier
}

// NewSocietyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSocietyRepository(q Querier) *SocietyRepo {
	return &SocietyRepo{q: q}
}

const societyColumns = `id, name, slug, subscription_level, monthly_price, is_active, can_manage_drawers, shows_drawers_in_list, created_at, updated_at`

// Create persiste una nueva sociedad.
func (r *SocietyRepo) Create(ctx context.Context, society *entity.Society) error {
	query := `
		INSERT INTO societies (` + societyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		society.ID, society.Name, society.Slug, society.SubscriptionLevel,
		society.MonthlyPrice, society.IsActive, society.CanManageDrawers,
		society.ShowsDrawersInList, society.CreatedAt, society.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert society: %w", err)
	}
	return nil
}

// GetByID obtiene una sociedad por ID.
func (r *SocietyRepo) GetByID(ctx context.Context, id string) (*entity.Society, error) {
	return r.getBy(ctx, "id", id)
}

// GetByName obtiene una sociedad por nombre exacto.
func (r *SocietyRepo) GetByName(ctx context.Context, name string) (*entity.Society, error) {
	return r.getBy(ctx, "name", name)
}

// GetBySlug obtiene una sociedad por slug.
func (r *SocietyRepo) GetBySlug(ctx context.Context, slug string) (*entity.Society, error) {
	return r.getBy(ctx, "slug", slug)
}

func (r *SocietyRepo) getBy(ctx context.Context, column, value string) (*entity.Society, error) {
	query := `SELECT ` + societyColumns + ` FROM societies WHERE ` + column + ` = $1`
	var s entity.Society
	err := r.q.QueryRow(ctx, query, value).Scan(
		&s.ID, &s.Name, &s.Slug, &s.SubscriptionLevel, &s.MonthlyPrice,
		&s.IsActive, &s.CanManageDrawers, &s.ShowsDrawersInList, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get society by %s: %w", column, err)
	}
	return &s, nil
}

// Update actualiza una sociedad existente.
func (r *SocietyRepo) Update(ctx context.Context, society *entity.Society) error {
	query := `
		UPDATE societies
		SET name = $2, slug = $3, subscription_level = $4, monthly_price = $5,
		    is_active = $6, can_manage_drawers = $7, shows_drawers_in_list = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		society.ID, society.Name, society.Slug, society.SubscriptionLevel,
		society.MonthlyPrice, society.IsActive, society.CanManageDrawers,
		society.ShowsDrawersInList, society.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update society: %w", err)
	}
	return nil
}

// List lista sociedades con paginación.
func (r *SocietyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Society, error) {
	query := `SELECT ` + societyColumns + ` FROM societies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list societies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Society
	for rows.Next() {
		var s entity.Society
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.SubscriptionLevel, &s.MonthlyPrice,
			&s.IsActive, &s.CanManageDrawers, &s.ShowsDrawersInList, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan society: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
