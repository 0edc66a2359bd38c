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

var _ repository.DrawerRepository = (*DrawerRepo)(nil)

// DrawerRepo implementación de DrawerRepository sobre PostgreSQL (usable con pool o tx).
type DrawerRepo struct {
	q Querier
}

// NewDrawerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDrawerRepository(q Querier) *DrawerRepo {
	return &DrawerRepo{q: q}
}

const drawerColumns = `id, society_id, cabinet_name, letter_x, number_y, description, created_at, updated_at`

// Create persiste un nuevo cajón.
func (r *DrawerRepo) Create(ctx context.Context, drawer *entity.Drawer) error {
	query := `
		INSERT INTO drawers (` + drawerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		drawer.ID, drawer.SocietyID, drawer.CabinetName, drawer.LetterX,
		drawer.NumberY, drawer.Description, drawer.CreatedAt, drawer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert drawer: %w", err)
	}
	return nil
}

// GetByID obtiene un cajón por ID.
func (r *DrawerRepo) GetByID(ctx context.Context, id string) (*entity.Drawer, error) {
	query := `SELECT ` + drawerColumns + ` FROM drawers WHERE id = $1`
	var d entity.Drawer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.SocietyID, &d.CabinetName, &d.LetterX, &d.NumberY,
		&d.Description, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get drawer: %w", err)
	}
	return &d, nil
}

// Update actualiza un cajón existente.
func (r *DrawerRepo) Update(ctx context.Context, drawer *entity.Drawer) error {
	query := `
		UPDATE drawers
		SET cabinet_name = $2, letter_x = $3, number_y = $4, description = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		drawer.ID, drawer.CabinetName, drawer.LetterX, drawer.NumberY,
		drawer.Description, drawer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update drawer: %w", err)
	}
	return nil
}

// Delete elimina un cajón por ID.
func (r *DrawerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM drawers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete drawer: %w", err)
	}
	return nil
}

// ListBySociety lista los cajones de una sociedad ordenados por gabinete y posición.
func (r *DrawerRepo) ListBySociety(ctx context.Context, societyID string) ([]*entity.Drawer, error) {
	query := `SELECT ` + drawerColumns + ` FROM drawers WHERE society_id = $1 ORDER BY cabinet_name, letter_x, number_y`
	rows, err := r.q.Query(ctx, query, societyID)
	if err != nil {
		return nil, fmt.Errorf("list drawers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Drawer
	for rows.Next() {
		var d entity.Drawer
		if err := rows.Scan(&d.ID, &d.SocietyID, &d.CabinetName, &d.LetterX, &d.NumberY,
			&d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan drawer: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

var _ repository.PlacementRepository = (*PlacementRepo)(nil)

// PlacementRepo implementación de PlacementRepository sobre PostgreSQL.
// Las escrituras se ejecutan dentro de la transacción del movimiento o de la
// colocación, con la fila del StockObject ya bloqueada.
type PlacementRepo struct {
	q Querier
}

// NewPlacementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlacementRepository(q Querier) *PlacementRepo {
	return &PlacementRepo{q: q}
}

// Get obtiene la colocación de un objeto en un cajón.
func (r *PlacementRepo) Get(ctx context.Context, stockObjectID, drawerID string) (*entity.StockObjectDrawerPlacement, error) {
	query := `
		SELECT id, stock_object_id, drawer_id, quantity, updated_at
		FROM stock_object_drawer_placements
		WHERE stock_object_id = $1 AND drawer_id = $2`
	var p entity.StockObjectDrawerPlacement
	err := r.q.QueryRow(ctx, query, stockObjectID, drawerID).Scan(
		&p.ID, &p.StockObjectID, &p.DrawerID, &p.Quantity, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get placement: %w", err)
	}
	return &p, nil
}

// Upsert inserta o actualiza la cantidad colocada (por objeto y cajón).
func (r *PlacementRepo) Upsert(ctx context.Context, p *entity.StockObjectDrawerPlacement) error {
	query := `
		INSERT INTO stock_object_drawer_placements (id, stock_object_id, drawer_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (stock_object_id, drawer_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, p.ID, p.StockObjectID, p.DrawerID, p.Quantity)
	if err != nil {
		return fmt.Errorf("upsert placement: %w", err)
	}
	return nil
}

// Delete elimina la colocación de un objeto en un cajón.
func (r *PlacementRepo) Delete(ctx context.Context, stockObjectID, drawerID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM stock_object_drawer_placements WHERE stock_object_id = $1 AND drawer_id = $2`,
		stockObjectID, drawerID,
	)
	if err != nil {
		return fmt.Errorf("delete placement: %w", err)
	}
	return nil
}

// SumByStockObject devuelve el total colocado de un objeto en todos sus cajones.
func (r *PlacementRepo) SumByStockObject(ctx context.Context, stockObjectID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_object_drawer_placements WHERE stock_object_id = $1`,
		stockObjectID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum placements: %w", err)
	}
	return total, nil
}

// ListByStockObject lista las colocaciones de un objeto.
func (r *PlacementRepo) ListByStockObject(ctx context.Context, stockObjectID string) ([]*entity.StockObjectDrawerPlacement, error) {
	query := `
		SELECT id, stock_object_id, drawer_id, quantity, updated_at
		FROM stock_object_drawer_placements WHERE stock_object_id = $1`
	rows, err := r.q.Query(ctx, query, stockObjectID)
	if err != nil {
		return nil, fmt.Errorf("list placements by object: %w", err)
	}
	defer rows.Close()
	return scanPlacements(rows)
}

// ListByDrawer lista las colocaciones dentro de un cajón.
func (r *PlacementRepo) ListByDrawer(ctx context.Context, drawerID string) ([]*entity.StockObjectDrawerPlacement, error) {
	query := `
		SELECT id, stock_object_id, drawer_id, quantity, updated_at
		FROM stock_object_drawer_placements WHERE drawer_id = $1`
	rows, err := r.q.Query(ctx, query, drawerID)
	if err != nil {
		return nil, fmt.Errorf("list placements by drawer: %w", err)
	}
	defer rows.Close()
	return scanPlacements(rows)
}

func scanPlacements(rows pgx.Rows) ([]*entity.StockObjectDrawerPlacement, error) {
	var list []*entity.StockObjectDrawerPlacement
	for rows.Next() {
		var p entity.StockObjectDrawerPlacement
		if err := rows.Scan(&p.ID, &p.StockObjectID, &p.DrawerID, &p.Quantity, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan placement: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListInconsistencies objetos de la sociedad cuyo total colocado excede su
// cantidad. Se reportan sin corregirse.
func (r *PlacementRepo) ListInconsistencies(ctx context.Context, societyID string) ([]repository.PlacementInconsistency, error) {
	query := `
		SELECT o.id, o.name, o.quantity, SUM(p.quantity) AS placed
		FROM stock_objects o
		JOIN stock_object_drawer_placements p ON p.stock_object_id = o.id
		WHERE o.society_id = $1
		GROUP BY o.id, o.name, o.quantity
		HAVING SUM(p.quantity) > o.quantity
		ORDER BY o.name`
	rows, err := r.q.Query(ctx, query, societyID)
	if err != nil {
		return nil, fmt.Errorf("list placement inconsistencies: %w", err)
	}
	defer rows.Close()
	var list []repository.PlacementInconsistency
	for rows.Next() {
		var inc repository.PlacementInconsistency
		if err := rows.Scan(&inc.StockObjectID, &inc.StockObjectName, &inc.Quantity, &inc.PlacedTotal); err != nil {
			return nil, fmt.Errorf("scan placement inconsistency: %w", err)
		}
		list = append(list, inc)
	}
	return list, rows.Err()
}
