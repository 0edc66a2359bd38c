package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// UseCase aplica movimientos de stock (in/out) de forma transaccional con
// bloqueo de fila (SELECT FOR UPDATE) sobre el objeto afectado. Cada llamada
// exitosa produce exactamente una fila de auditoría StockMovement con el
// snapshot de cantidad posterior al movimiento.
type UseCase struct {
	txRunner    TxRunner
	societyRepo repository.SocietyRepository
	stockRepo   repository.StockObjectRepository
	drawerRepo  repository.DrawerRepository
}

// NewUseCase construye el motor de inventario.
func NewUseCase(
	txRunner TxRunner,
	societyRepo repository.SocietyRepository,
	stockRepo repository.StockObjectRepository,
	drawerRepo repository.DrawerRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		societyRepo: societyRepo,
		stockRepo:   stockRepo,
		drawerRepo:  drawerRepo,
	}
}

// MovementInput entrada para aplicar un movimiento.
// SocietyID es la sociedad del actor (resuelta por la capa de acceso); el
// motor la contrasta contra la sociedad dueña de cada entidad referida.
type MovementInput struct {
	SocietyID     string
	UserID        string
	StockObjectID string
	Direction     string // entity.MovementIn | entity.MovementOut
	Quantity      int64  // entero positivo
	DrawerID      string // opcional; requiere can_manage_drawers
	Notes         string
}

// MovementResult resultado de un movimiento aplicado.
type MovementResult struct {
	Movement      *entity.StockMovement
	QuantityAfter int64
}

// ApplyMovement valida la entrada, abre una transacción, bloquea la fila del
// objeto y aplica el movimiento; Commit o Rollback total (sin estados
// parciales observables).
//
// Errores: domain.ErrInvalidInput (dirección o cantidad inválidas),
// domain.ErrNotFound, domain.ErrCrossTenant (entidad de otra sociedad),
// domain.ErrFeatureDisabled (cajón indicado sin la función habilitada),
// domain.ErrInsufficientStock (salida mayor que el stock),
// domain.ErrOverPlacement (salida desde un cajón con menos cantidad).
func (uc *UseCase) ApplyMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if err := uc.Validate(ctx, &input); err != nil {
		return nil, err
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockObjectRepository,
		movRepo repository.MovementRepository,
		placementRepo repository.PlacementRepository,
	) error {
		var err error
		result, err = uc.ApplyInTx(ctx, stockRepo, movRepo, placementRepo, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Validate comprueba dirección, cantidad y pertenencia de sociedad de todas
// las entidades referidas, antes de abrir la transacción. Exportado para que
// los casos de uso que componen su propia transacción (consumos, reposiciones)
// reutilicen exactamente las mismas reglas.
func (uc *UseCase) Validate(ctx context.Context, input *MovementInput) error {
	if !entity.ValidMovementDirection(input.Direction) || input.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if input.StockObjectID == "" || input.SocietyID == "" {
		return domain.ErrInvalidInput
	}

	obj, err := uc.stockRepo.GetByID(ctx, input.StockObjectID)
	if err != nil {
		return err
	}
	if obj == nil {
		return domain.ErrNotFound
	}
	if obj.SocietyID != input.SocietyID {
		return domain.ErrCrossTenant
	}

	if input.DrawerID != "" {
		society, err := uc.societyRepo.GetByID(ctx, input.SocietyID)
		if err != nil {
			return err
		}
		if society == nil {
			return domain.ErrNotFound
		}
		if !society.CanManageDrawers {
			return domain.ErrFeatureDisabled
		}
		drawer, err := uc.drawerRepo.GetByID(ctx, input.DrawerID)
		if err != nil {
			return err
		}
		if drawer == nil {
			return domain.ErrNotFound
		}
		if drawer.SocietyID != input.SocietyID {
			return domain.ErrCrossTenant
		}
	}
	return nil
}

// ApplyInTx aplica el movimiento usando los repositorios de una transacción
// ya abierta por el caller (misma tx que el consumo o la reposición que lo
// origina). Asume que Validate ya se ejecutó sobre la entrada.
//
// Bloquea la fila del objeto, verifica stock en salidas, ajusta la colocación
// del cajón involucrado y persiste el StockMovement con QuantityAfter.
func (uc *UseCase) ApplyInTx(
	ctx context.Context,
	stockRepo repository.StockObjectRepository,
	movRepo repository.MovementRepository,
	placementRepo repository.PlacementRepository,
	input MovementInput,
) (*MovementResult, error) {
	// Bloquea la fila del objeto: serializa movimientos concurrentes.
	obj, err := stockRepo.GetForUpdate(ctx, input.StockObjectID)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, domain.ErrNotFound
	}

	var newQty int64
	switch input.Direction {
	case entity.MovementIn:
		newQty = obj.Quantity + input.Quantity
	case entity.MovementOut:
		if input.Quantity > obj.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		newQty = obj.Quantity - input.Quantity
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := stockRepo.UpdateQuantity(ctx, obj.ID, newQty); err != nil {
		return nil, err
	}

	if input.DrawerID != "" {
		if err := uc.adjustPlacement(ctx, placementRepo, input); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		SocietyID:     obj.SocietyID,
		StockObjectID: obj.ID,
		Direction:     input.Direction,
		Quantity:      input.Quantity,
		QuantityAfter: newQty,
		MovedBy:       input.UserID,
		DrawerID:      input.DrawerID,
		Notes:         input.Notes,
		CreatedAt:     now,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return &MovementResult{Movement: mov, QuantityAfter: newQty}, nil
}

// adjustPlacement mueve la cantidad del movimiento hacia/desde el cajón
// involucrado, dentro de la misma transacción. Una salida desde un cajón que
// no contiene la cantidad pedida revierte el movimiento completo.
func (uc *UseCase) adjustPlacement(
	ctx context.Context,
	placementRepo repository.PlacementRepository,
	input MovementInput,
) error {
	placement, err := placementRepo.Get(ctx, input.StockObjectID, input.DrawerID)
	if err != nil {
		return err
	}
	if placement == nil {
		placement = &entity.StockObjectDrawerPlacement{
			ID:            uuid.New().String(),
			StockObjectID: input.StockObjectID,
			DrawerID:      input.DrawerID,
		}
	}

	switch input.Direction {
	case entity.MovementIn:
		placement.Quantity += input.Quantity
	case entity.MovementOut:
		if placement.Quantity < input.Quantity {
			return domain.ErrOverPlacement
		}
		placement.Quantity -= input.Quantity
	}
	placement.UpdatedAt = time.Now()
	return placementRepo.Upsert(ctx, placement)
}
