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

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable
// con pool o tx). Solo insert y lecturas: los movimientos son append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, society_id, stock_object_id, direction, quantity, quantity_after, moved_by, drawer_id, notes, created_at`

// Create persiste un movimiento de stock.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	drawerID := (*string)(nil)
	if movement.DrawerID != "" {
		drawerID = &movement.DrawerID
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.SocietyID, movement.StockObjectID, movement.Direction,
		movement.Quantity, movement.QuantityAfter, movement.MovedBy, drawerID,
		movement.Notes, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	var drawerID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.SocietyID, &m.StockObjectID, &m.Direction, &m.Quantity,
		&m.QuantityAfter, &m.MovedBy, &drawerID, &m.Notes, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	if drawerID != nil {
		m.DrawerID = *drawerID
	}
	return &m, nil
}

// ListBySociety lista movimientos de una sociedad, más recientes primero.
func (r *MovementRepo) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE society_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, societyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by society: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByStockObject lista movimientos de un objeto, más recientes primero.
func (r *MovementRepo) ListByStockObject(ctx context.Context, stockObjectID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE stock_object_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, stockObjectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by object: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListRecent últimos movimientos de la sociedad (dashboard).
func (r *MovementRepo) ListRecent(ctx context.Context, societyID string, limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE society_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, societyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var drawerID *string
		if err := rows.Scan(&m.ID, &m.SocietyID, &m.StockObjectID, &m.Direction, &m.Quantity,
			&m.QuantityAfter, &m.MovedBy, &drawerID, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if drawerID != nil {
			m.DrawerID = *drawerID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

var _ repository.UsageRepository = (*UsageRepo)(nil)

// UsageRepo implementación de UsageRepository sobre PostgreSQL (append-only).
type UsageRepo struct {
	q Querier
}

// NewUsageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsageRepository(q Querier) *UsageRepo {
	return &UsageRepo{q: q}
}

const usageColumns = `id, society_id, stock_object_id, object_user_id, quantity_used, start_date, end_date, notes, logged_by, logged_at`

// Create persiste un registro de consumo.
func (r *UsageRepo) Create(ctx context.Context, usage *entity.StockUsage) error {
	query := `
		INSERT INTO stock_usages (` + usageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		usage.ID, usage.SocietyID, usage.StockObjectID, usage.ObjectUserID,
		usage.QuantityUsed, usage.StartDate, usage.EndDate, usage.Notes,
		usage.LoggedBy, usage.LoggedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock usage: %w", err)
	}
	return nil
}

// ListBySociety lista consumos de una sociedad, más recientes primero.
func (r *UsageRepo) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.StockUsage, error) {
	query := `SELECT ` + usageColumns + ` FROM stock_usages WHERE society_id = $1 ORDER BY logged_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, societyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usages by society: %w", err)
	}
	defer rows.Close()
	return scanUsages(rows)
}

// ListByStockObject lista consumos de un objeto, más recientes primero.
func (r *UsageRepo) ListByStockObject(ctx context.Context, stockObjectID string, limit, offset int) ([]*entity.StockUsage, error) {
	query := `SELECT ` + usageColumns + ` FROM stock_usages WHERE stock_object_id = $1 ORDER BY logged_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, stockObjectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usages by object: %w", err)
	}
	defer rows.Close()
	return scanUsages(rows)
}

func scanUsages(rows pgx.Rows) ([]*entity.StockUsage, error) {
	var list []*entity.StockUsage
	for rows.Next() {
		var u entity.StockUsage
		if err := rows.Scan(&u.ID, &u.SocietyID, &u.StockObjectID, &u.ObjectUserID,
			&u.QuantityUsed, &u.StartDate, &u.EndDate, &u.Notes, &u.LoggedBy, &u.LoggedAt); err != nil {
			return nil, fmt.Errorf("scan stock usage: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// TotalUsedSince suma el consumo de un objeto desde una fecha (ventana de la
// predicción de reposición).
func (r *UsageRepo) TotalUsedSince(ctx context.Context, stockObjectID string, since time.Time) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity_used), 0) FROM stock_usages WHERE stock_object_id = $1 AND logged_at >= $2`,
		stockObjectID, since,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total used since: %w", err)
	}
	return total, nil
}
