package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stock-service/internal/application/auth"
	"github.com/tu-usuario/stock-service/internal/application/drawers"
	"github.com/tu-usuario/stock-service/internal/application/ledger"
	"github.com/tu-usuario/stock-service/internal/application/refill"
	"github.com/tu-usuario/stock-service/internal/application/usage"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// El mismo runner satisface las transacciones de todos los casos de uso.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ drawers.TxRunner = (*TxRunner)(nil)
var _ usage.TxRunner = (*TxRunner)(nil)
var _ refill.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repositorios del motor de inventario y
// hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockObjectRepository,
	movRepo repository.MovementRepository,
	placementRepo repository.PlacementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockObjectRepository(tx), NewMovementRepository(tx), NewPlacementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunUsage inicia una transacción que además incluye el repositorio de
// consumos (el consumo y su salida de stock se confirman juntos).
func (r *TxRunner) RunUsage(ctx context.Context, fn func(
	stockRepo repository.StockObjectRepository,
	movRepo repository.MovementRepository,
	placementRepo repository.PlacementRepository,
	usageRepo repository.UsageRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockObjectRepository(tx), NewMovementRepository(tx), NewPlacementRepository(tx), NewUsageRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRefill inicia una transacción que además incluye el repositorio de
// reposiciones (completar una reposición aplica la entrada en la misma tx).
func (r *TxRunner) RunRefill(ctx context.Context, fn func(
	stockRepo repository.StockObjectRepository,
	movRepo repository.MovementRepository,
	placementRepo repository.PlacementRepository,
	refillRepo repository.RefillRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockObjectRepository(tx), NewMovementRepository(tx), NewPlacementRepository(tx), NewRefillRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegistration inicia una transacción para el alta de sociedad con su
// primer administrador.
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	societyRepo repository.SocietyRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSocietyRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
