package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/application/refill"
	"github.com/tu-usuario/stock-service/internal/application/usecase"
	"github.com/tu-usuario/stock-service/internal/domain"
)

// RefillHandler reposiciones planificadas y predicción de reposición.
type RefillHandler struct {
	uc           *refill.UseCase
	predictionUC *refill.PredictionUseCase
}

// NewRefillHandler construye el handler.
func NewRefillHandler(uc *refill.UseCase, predictionUC *refill.PredictionUseCase) *RefillHandler {
	return &RefillHandler{uc: uc, predictionUC: predictionUC}
}

// Schedule godoc
// @Summary      Programar reposición de un objeto
// @Tags         refills
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScheduleRefillRequest  true  "stock_object_id, scheduled_date, quantity_to_refill"
// @Success      201   {object}  dto.RefillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/refills [post]
func (h *RefillHandler) Schedule(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	if societyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ScheduleRefillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rs, err := h.uc.Schedule(c.Context(), refill.ScheduleInput{
		SocietyID:        societyID,
		StockObjectID:    in.StockObjectID,
		ScheduledDate:    in.ScheduledDate,
		QuantityToRefill: in.QuantityToRefill,
		Notes:            in.Notes,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock_object_id, scheduled_date y quantity_to_refill positiva son requeridos"})
		}
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "objeto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToRefillResponse(rs))
}

// Complete godoc
// @Summary      Completar una reposición pendiente
// @Description  Aplica la entrada de stock y marca la reposición como
//
//	completada en la misma transacción.
//
// @Tags         refills
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la reposición"
// @Success      200  {object}  dto.RefillResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/refills/{id}/complete [post]
func (h *RefillHandler) Complete(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	userID := GetUserID(c)
	id := c.Params("id")
	rs, err := h.uc.Complete(c.Context(), societyID, id, userID)
	if err != nil {
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reposición no encontrada"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "solo se completan reposiciones pendientes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(usecase.ToRefillResponse(rs))
}

// Cancel godoc
// @Summary      Cancelar una reposición pendiente
// @Tags         refills
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la reposición"
// @Success      200  {object}  dto.RefillResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/refills/{id}/cancel [post]
func (h *RefillHandler) Cancel(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	id := c.Params("id")
	rs, err := h.uc.Cancel(c.Context(), societyID, id)
	if err != nil {
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reposición no encontrada"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "solo se cancelan reposiciones pendientes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(usecase.ToRefillResponse(rs))
}

// List godoc
// @Summary      Listar reposiciones de la sociedad
// @Tags         refills
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.RefillResponse
// @Router       /api/refills [get]
func (h *RefillHandler) List(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	if societyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit, offset := pagination(c)
	list, err := h.uc.ListBySociety(c.Context(), societyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.RefillResponse, 0, len(list))
	for _, rs := range list {
		out = append(out, usecase.ToRefillResponse(rs))
	}
	return c.JSON(out)
}

// Predictions godoc
// @Summary      Predicción de reposición por consumo de los últimos 90 días
// @Description  Devuelve los objetos activos ordenados por urgencia con el
//
//	ritmo diario de consumo y la fecha estimada de agotamiento.
//
// @Tags         refills
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RefillPredictionDTO
// @Router       /api/refills/predictions [get]
func (h *RefillHandler) Predictions(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	if societyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	predictions, err := h.predictionUC.Predict(c.Context(), societyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(predictions)
}
