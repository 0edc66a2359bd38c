package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

var _ repository.RefillRepository = (*RefillRepo)(nil)

// RefillRepo implementación de RefillRepository sobre PostgreSQL (usable con pool o tx).
type RefillRepo struct {
	q Querier
}

// NewRefillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRefillRepository(q Querier) *RefillRepo {
	return &RefillRepo{q: q}
}

const refillColumns = `id, society_id, stock_object_id, scheduled_date, quantity_to_refill, status, completed_date, notes, created_at, updated_at`

// Create persiste una reposición planificada.
func (r *RefillRepo) Create(ctx context.Context, refill *entity.RefillSchedule) error {
	query := `
		INSERT INTO refill_schedules (` + refillColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		refill.ID, refill.SocietyID, refill.StockObjectID, refill.ScheduledDate,
		refill.QuantityToRefill, refill.Status, refill.CompletedDate, refill.Notes,
		refill.CreatedAt, refill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert refill schedule: %w", err)
	}
	return nil
}

// GetByID obtiene una reposición por ID.
func (r *RefillRepo) GetByID(ctx context.Context, id string) (*entity.RefillSchedule, error) {
	query := `SELECT ` + refillColumns + ` FROM refill_schedules WHERE id = $1`
	var rs entity.RefillSchedule
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rs.ID, &rs.SocietyID, &rs.StockObjectID, &rs.ScheduledDate,
		&rs.QuantityToRefill, &rs.Status, &rs.CompletedDate, &rs.Notes,
		&rs.CreatedAt, &rs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refill schedule: %w", err)
	}
	return &rs, nil
}

// Update actualiza una reposición existente (cambio de estado, notas).
func (r *RefillRepo) Update(ctx context.Context, refill *entity.RefillSchedule) error {
	query := `
		UPDATE refill_schedules
		SET scheduled_date = $2, quantity_to_refill = $3, status = $4,
		    completed_date = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		refill.ID, refill.ScheduledDate, refill.QuantityToRefill, refill.Status,
		refill.CompletedDate, refill.Notes, refill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update refill schedule: %w", err)
	}
	return nil
}

// ListBySociety lista reposiciones de una sociedad, más próximas primero.
func (r *RefillRepo) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.RefillSchedule, error) {
	query := `SELECT ` + refillColumns + ` FROM refill_schedules WHERE society_id = $1 ORDER BY scheduled_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, societyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list refills by society: %w", err)
	}
	defer rows.Close()
	return scanRefills(rows)
}

// ListByStockObject lista reposiciones de un objeto.
func (r *RefillRepo) ListByStockObject(ctx context.Context, stockObjectID string) ([]*entity.RefillSchedule, error) {
	query := `SELECT ` + refillColumns + ` FROM refill_schedules WHERE stock_object_id = $1 ORDER BY scheduled_date DESC`
	rows, err := r.q.Query(ctx, query, stockObjectID)
	if err != nil {
		return nil, fmt.Errorf("list refills by object: %w", err)
	}
	defer rows.Close()
	return scanRefills(rows)
}

// ListUpcoming reposiciones pendientes con fecha >= from (dashboard).
func (r *RefillRepo) ListUpcoming(ctx context.Context, societyID string, from time.Time, limit int) ([]*entity.RefillSchedule, error) {
	query := `
		SELECT ` + refillColumns + `
		FROM refill_schedules
		WHERE society_id = $1 AND status = $2 AND scheduled_date >= $3
		ORDER BY scheduled_date
		LIMIT $4`
	rows, err := r.q.Query(ctx, query, societyID, entity.RefillPending, from, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming refills: %w", err)
	}
	defer rows.Close()
	return scanRefills(rows)
}

func scanRefills(rows pgx.Rows) ([]*entity.RefillSchedule, error) {
	var list []*entity.RefillSchedule
	for rows.Next() {
		var rs entity.RefillSchedule
		if err := rows.Scan(&rs.ID, &rs.SocietyID, &rs.StockObjectID, &rs.ScheduledDate,
			&rs.QuantityToRefill, &rs.Status, &rs.CompletedDate, &rs.Notes,
			&rs.CreatedAt, &rs.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan refill schedule: %w", err)
		}
		list = append(list, &rs)
	}
	return list, rows.Err()
}
