package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/application/ledger"
	"github.com/tu-usuario/stock-service/internal/application/usecase"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// LedgerHandler movimientos de stock: registro y consulta del historial.
type LedgerHandler struct {
	uc      *ledger.UseCase
	movRepo repository.MovementRepository
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase, movRepo repository.MovementRepository) *LedgerHandler {
	return &LedgerHandler{uc: uc, movRepo: movRepo}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock (entrada o salida)
// @Description  Aplica el cambio de cantidad, ajusta el cajón si se indica y
//
//	registra la fila de auditoría, todo en una transacción.
//
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "stock_object_id, direction (in/out), quantity, drawer_id opcional"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *LedgerHandler) RegisterMovement(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	userID := GetUserID(c)
	if societyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.ApplyMovement(c.Context(), ledger.MovementInput{
		SocietyID:     societyID,
		UserID:        userID,
		StockObjectID: in.StockObjectID,
		Direction:     in.Direction,
		Quantity:      in.Quantity,
		DrawerID:      in.DrawerID,
		Notes:         in.Notes,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "direction debe ser in u out y quantity positiva"})
		}
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "objeto o cajón no encontrado"})
		}
		if err == domain.ErrFeatureDisabled {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FEATURE_DISABLED", Message: "la sociedad no gestiona cajones"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		if err == domain.ErrOverPlacement {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OVER_PLACEMENT", Message: "el cajón no contiene la cantidad pedida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToMovementResponse(result.Movement))
}

// ListMovements godoc
// @Summary      Historial de movimientos de la sociedad
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        stock_object_id  query  string  false  "Filtrar por objeto"
// @Param        limit            query  int     false  "Límite"  default(20)
// @Param        offset           query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *LedgerHandler) ListMovements(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	if societyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit, offset := pagination(c)

	var err error
	var movements []*dto.MovementResponse
	if objectID := c.Query("stock_object_id"); objectID != "" {
		movements, err = h.listByObject(c, societyID, objectID, limit, offset)
	} else {
		movements, err = h.listBySociety(c, societyID, limit, offset)
	}
	if err != nil {
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "objeto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(movements)
}

func (h *LedgerHandler) listBySociety(c *fiber.Ctx, societyID string, limit, offset int) ([]*dto.MovementResponse, error) {
	movements, err := h.movRepo.ListBySociety(c.Context(), societyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		resp := usecase.ToMovementResponse(m)
		out = append(out, &resp)
	}
	return out, nil
}

func (h *LedgerHandler) listByObject(c *fiber.Ctx, societyID, objectID string, limit, offset int) ([]*dto.MovementResponse, error) {
	movements, err := h.movRepo.ListByStockObject(c.Context(), objectID, limit, offset)
	if err != nil {
		return nil, err
	}
	// El filtro por objeto no debe filtrar datos de otra sociedad.
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		if m.SocietyID != societyID {
			return nil, domain.ErrCrossTenant
		}
		resp := usecase.ToMovementResponse(m)
		out = append(out, &resp)
	}
	return out, nil
}
