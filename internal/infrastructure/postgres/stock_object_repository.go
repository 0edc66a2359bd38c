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

var _ repository.StockObjectRepository = (*StockObjectRepo)(nil)

// StockObjectRepo implementación de StockObjectRepository sobre PostgreSQL
// (usable con pool o tx).
type StockObjectRepo struct {
	q Querier
}

// NewStockObjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockObjectRepository(q Querier) *StockObjectRepo {
	return &StockObjectRepo{q: q}
}

const stockObjectColumns = `id, society_id, kind_id, name, description, quantity, minimum_quantity, unit, location_description, is_active, created_at, updated_at`

// Create persiste un nuevo objeto de stock.
func (r *StockObjectRepo) Create(ctx context.Context, obj *entity.StockObject) error {
	query := `
		INSERT INTO stock_objects (` + stockObjectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	kindID := (*string)(nil)
	if obj.KindID != "" {
		kindID = &obj.KindID
	}
	_, err := r.q.Exec(ctx, query,
		obj.ID, obj.SocietyID, kindID, obj.Name, obj.Description,
		obj.Quantity, obj.MinimumQuantity, obj.Unit, obj.LocationDescription,
		obj.IsActive, obj.CreatedAt, obj.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock object: %w", err)
	}
	return nil
}

// GetByID obtiene un objeto por ID.
func (r *StockObjectRepo) GetByID(ctx context.Context, id string) (*entity.StockObject, error) {
	query := `SELECT ` + stockObjectColumns + ` FROM stock_objects WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get stock object")
}

// GetForUpdate obtiene el objeto y bloquea su fila (SELECT ... FOR UPDATE).
// Serializa los movimientos concurrentes sobre el mismo objeto.
func (r *StockObjectRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockObject, error) {
	query := `SELECT ` + stockObjectColumns + ` FROM stock_objects WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get stock object for update")
}

func (r *StockObjectRepo) scanOne(row pgx.Row, op string) (*entity.StockObject, error) {
	var o entity.StockObject
	var kindID *string
	err := row.Scan(
		&o.ID, &o.SocietyID, &kindID, &o.Name, &o.Description,
		&o.Quantity, &o.MinimumQuantity, &o.Unit, &o.LocationDescription,
		&o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if kindID != nil {
		o.KindID = *kindID
	}
	return &o, nil
}

// Update actualiza un objeto existente. No toca quantity: la cantidad solo
// cambia vía UpdateQuantity dentro de la transacción de un movimiento.
func (r *StockObjectRepo) Update(ctx context.Context, obj *entity.StockObject) error {
	query := `
		UPDATE stock_objects
		SET kind_id = $2, name = $3, description = $4, minimum_quantity = $5,
		    unit = $6, location_description = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	kindID := (*string)(nil)
	if obj.KindID != "" {
		kindID = &obj.KindID
	}
	_, err := r.q.Exec(ctx, query,
		obj.ID, kindID, obj.Name, obj.Description, obj.MinimumQuantity,
		obj.Unit, obj.LocationDescription, obj.IsActive, obj.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stock object: %w", err)
	}
	return nil
}

// UpdateQuantity escribe solo la cantidad (dentro de la transacción del movimiento).
func (r *StockObjectRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stock_objects SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock object quantity: %w", err)
	}
	return nil
}

// Delete elimina un objeto por ID.
func (r *StockObjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_objects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock object: %w", err)
	}
	return nil
}

// ListBySociety lista objetos de una sociedad con paginación.
func (r *StockObjectRepo) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.StockObject, error) {
	query := `SELECT ` + stockObjectColumns + ` FROM stock_objects WHERE society_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, societyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock objects: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListActiveBySociety devuelve todos los objetos activos de la sociedad
// (predicción de reposición, reportes).
func (r *StockObjectRepo) ListActiveBySociety(ctx context.Context, societyID string) ([]*entity.StockObject, error) {
	query := `SELECT ` + stockObjectColumns + ` FROM stock_objects WHERE society_id = $1 AND is_active ORDER BY name`
	rows, err := r.q.Query(ctx, query, societyID)
	if err != nil {
		return nil, fmt.Errorf("list active stock objects: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *StockObjectRepo) scanList(rows pgx.Rows) ([]*entity.StockObject, error) {
	var list []*entity.StockObject
	for rows.Next() {
		var o entity.StockObject
		var kindID *string
		if err := rows.Scan(&o.ID, &o.SocietyID, &kindID, &o.Name, &o.Description,
			&o.Quantity, &o.MinimumQuantity, &o.Unit, &o.LocationDescription,
			&o.IsActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock object: %w", err)
		}
		if kindID != nil {
			o.KindID = *kindID
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// CountBySociety cuenta objetos activos y cuántos están bajo su mínimo (dashboard).
func (r *StockObjectRepo) CountBySociety(ctx context.Context, societyID string) (total, belowMinimum int, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE quantity <= minimum_quantity)
		FROM stock_objects WHERE society_id = $1 AND is_active`
	if err := r.q.QueryRow(ctx, query, societyID).Scan(&total, &belowMinimum); err != nil {
		return 0, 0, fmt.Errorf("count stock objects: %w", err)
	}
	return total, belowMinimum, nil
}

var _ repository.StockObjectKindRepository = (*StockObjectKindRepo)(nil)

// StockObjectKindRepo implementación de StockObjectKindRepository sobre PostgreSQL.
type StockObjectKindRepo struct {
	q Querier
}

// NewStockObjectKindRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockObjectKindRepository(q Querier) *StockObjectKindRepo {
	return &StockObjectKindRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *StockObjectKindRepo) Create(ctx context.Context, kind *entity.StockObjectKind) error {
	query := `
		INSERT INTO stock_object_kinds (id, society_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		kind.ID, kind.SocietyID, kind.Name, kind.Description, kind.CreatedAt, kind.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock object kind: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *StockObjectKindRepo) GetByID(ctx context.Context, id string) (*entity.StockObjectKind, error) {
	query := `
		SELECT id, society_id, name, description, created_at, updated_at
		FROM stock_object_kinds WHERE id = $1`
	var k entity.StockObjectKind
	err := r.q.QueryRow(ctx, query, id).Scan(
		&k.ID, &k.SocietyID, &k.Name, &k.Description, &k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock object kind: %w", err)
	}
	return &k, nil
}

// Update actualiza una categoría existente.
func (r *StockObjectKindRepo) Update(ctx context.Context, kind *entity.StockObjectKind) error {
	query := `
		UPDATE stock_object_kinds SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, kind.ID, kind.Name, kind.Description, kind.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stock object kind: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID. Los objetos que la referencian quedan
// sin categoría (FK con ON DELETE SET NULL).
func (r *StockObjectKindRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_object_kinds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock object kind: %w", err)
	}
	return nil
}

// ListBySociety lista las categorías de una sociedad.
func (r *StockObjectKindRepo) ListBySociety(ctx context.Context, societyID string) ([]*entity.StockObjectKind, error) {
	query := `
		SELECT id, society_id, name, description, created_at, updated_at
		FROM stock_object_kinds WHERE society_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, societyID)
	if err != nil {
		return nil, fmt.Errorf("list stock object kinds: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockObjectKind
	for rows.Next() {
		var k entity.StockObjectKind
		if err := rows.Scan(&k.ID, &k.SocietyID, &k.Name, &k.Description, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock object kind: %w", err)
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}
