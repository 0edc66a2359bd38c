package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/application/usage"
	"github.com/tu-usuario/stock-service/internal/domain"
	"github.com/tu-usuario/stock-service/internal/domain/entity"
)

// UsageHandler registro y consulta de consumos de stock (protegido).
type UsageHandler struct {
	uc *usage.UseCase
}

// NewUsageHandler construye el handler.
func NewUsageHandler(uc *usage.UseCase) *UsageHandler {
	return &UsageHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar consumo de stock por un ObjectUser
// @Description  Aplica una salida del objeto y persiste el consumo en la misma
//
//	transacción; responde con el snapshot de stock posterior.
//
// @Tags         usages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordUsageRequest  true  "object_user_id, stock_object_id, quantity"
// @Success      201   {object}  dto.UsageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/usages [post]
func (h *UsageHandler) Record(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	userID := GetUserID(c)
	if societyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordUsageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.RecordUsage(c.Context(), usage.RecordUsageInput{
		SocietyID:     societyID,
		UserID:        userID,
		ObjectUserID:  in.ObjectUserID,
		StockObjectID: in.StockObjectID,
		Quantity:      in.Quantity,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Notes:         in.Notes,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "object_user_id, stock_object_id y quantity positiva son requeridos"})
		}
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "objeto o consumidor no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toUsageResponse(result.Usage, result.QuantityAfter))
}

// List godoc
// @Summary      Historial de consumos de la sociedad
// @Tags         usages
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.UsageResponse
// @Router       /api/usages [get]
func (h *UsageHandler) List(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	if societyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit, offset := pagination(c)
	usages, err := h.uc.ListBySociety(c.Context(), societyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.UsageResponse, 0, len(usages))
	for _, u := range usages {
		// El historial no lleva snapshot: QuantityAfter solo aplica al registro recién creado.
		out = append(out, toUsageResponse(u, 0))
	}
	return c.JSON(out)
}

func toUsageResponse(u *entity.StockUsage, quantityAfter int64) dto.UsageResponse {
	return dto.UsageResponse{
		ID:            u.ID,
		ObjectUserID:  u.ObjectUserID,
		StockObjectID: u.StockObjectID,
		QuantityUsed:  u.QuantityUsed,
		StartDate:     u.StartDate,
		EndDate:       u.EndDate,
		Notes:         u.Notes,
		LoggedBy:      u.LoggedBy,
		LoggedAt:      u.LoggedAt,
		QuantityAfter: quantityAfter,
	}
}
