package repository

import (
	"context"

	"github.com/tu-usuario/stock-service/internal/domain/entity"
)

// DrawerRepository define el puerto de persistencia para Drawer.
type DrawerRepository interface {
	Create(ctx context.Context, drawer *entity.Drawer) error
	GetByID(ctx context.Context, id string) (*entity.Drawer, error)
	Update(ctx context.Context, drawer *entity.Drawer) error
	Delete(ctx context.Context, id string) error
	ListBySociety(ctx context.Context, societyID string) ([]*entity.Drawer, error)
}

// PlacementInconsistency objeto cuyo total colocado excede su cantidad.
// El reconciliador nunca corrige esto en silencio; lo reporta al operador.
type PlacementInconsistency struct {
	StockObjectID   string
	StockObjectName string
	Quantity        int64
	PlacedTotal     int64
}

// PlacementRepository define el puerto para las colocaciones objeto↔cajón.
// Las operaciones de escritura se ejecutan dentro de la transacción del
// movimiento o de la colocación (fila del StockObject ya bloqueada).
type PlacementRepository interface {
	Get(ctx context.Context, stockObjectID, drawerID string) (*entity.StockObjectDrawerPlacement, error)
	Upsert(ctx context.Context, p *entity.StockObjectDrawerPlacement) error
	Delete(ctx context.Context, stockObjectID, drawerID string) error
	// SumByStockObject devuelve el total colocado de un objeto en todos sus cajones.
	SumByStockObject(ctx context.Context, stockObjectID string) (int64, error)
	ListByStockObject(ctx context.Context, stockObjectID string) ([]*entity.StockObjectDrawerPlacement, error)
	ListByDrawer(ctx context.Context, drawerID string) ([]*entity.StockObjectDrawerPlacement, error)
	// ListInconsistencies objetos de la sociedad con total colocado > cantidad.
	ListInconsistencies(ctx context.Context, societyID string) ([]PlacementInconsistency, error)
}
