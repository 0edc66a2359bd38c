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

var _ repository.ObjectUserRepository = (*ObjectUserRepo)(nil)

// ObjectUserRepo implementación de ObjectUserRepository sobre PostgreSQL
// (usable con pool o tx).
type ObjectUserRepo struct {
	q Querier
}

// NewObjectUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewObjectUserRepository(q Querier) *ObjectUserRepo {
	return &ObjectUserRepo{q: q}
}

const objectUserColumns = `id, society_id, name, contact_info, notes, created_at, updated_at`

// Create persiste un nuevo consumidor de stock.
func (r *ObjectUserRepo) Create(ctx context.Context, ou *entity.ObjectUser) error {
	query := `
		INSERT INTO object_users (` + objectUserColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		ou.ID, ou.SocietyID, ou.Name, ou.ContactInfo, ou.Notes, ou.CreatedAt, ou.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert object user: %w", err)
	}
	return nil
}

// GetByID obtiene un consumidor por ID.
func (r *ObjectUserRepo) GetByID(ctx context.Context, id string) (*entity.ObjectUser, error) {
	query := `SELECT ` + objectUserColumns + ` FROM object_users WHERE id = $1`
	var ou entity.ObjectUser
	err := r.q.QueryRow(ctx, query, id).Scan(
		&ou.ID, &ou.SocietyID, &ou.Name, &ou.ContactInfo, &ou.Notes, &ou.CreatedAt, &ou.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get object user: %w", err)
	}
	return &ou, nil
}

// Update actualiza un consumidor existente.
func (r *ObjectUserRepo) Update(ctx context.Context, ou *entity.ObjectUser) error {
	query := `
		UPDATE object_users SET name = $2, contact_info = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, ou.ID, ou.Name, ou.ContactInfo, ou.Notes, ou.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update object user: %w", err)
	}
	return nil
}

// Delete elimina un consumidor por ID.
func (r *ObjectUserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM object_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete object user: %w", err)
	}
	return nil
}

// ListBySociety lista los consumidores de una sociedad.
func (r *ObjectUserRepo) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.ObjectUser, error) {
	query := `SELECT ` + objectUserColumns + ` FROM object_users WHERE society_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, societyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list object users: %w", err)
	}
	defer rows.Close()
	var list []*entity.ObjectUser
	for rows.Next() {
		var ou entity.ObjectUser
		if err := rows.Scan(&ou.ID, &ou.SocietyID, &ou.Name, &ou.ContactInfo, &ou.Notes,
			&ou.CreatedAt, &ou.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan object user: %w", err)
		}
		list = append(list, &ou)
	}
	return list, rows.Err()
}
