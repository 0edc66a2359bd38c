package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/application/usecase"
	"github.com/tu-usuario/stock-service/internal/domain"
)

// SocietyHandler perfil, ajustes y suscripción de la sociedad del actor.
type SocietyHandler struct {
	uc *usecase.SocietyUseCase
}

// NewSocietyHandler construye el handler.
func NewSocietyHandler(uc *usecase.SocietyUseCase) *SocietyHandler {
	return &SocietyHandler{uc: uc}
}

// Get godoc
// @Summary      Perfil de la sociedad del actor
// @Tags         society
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SocietyResponse
// @Router       /api/society [get]
func (h *SocietyHandler) Get(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	if societyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	society, err := h.uc.Get(c.Context(), societyID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sociedad no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(usecase.ToSocietyResponse(society))
}

// UpdateSettings godoc
// @Summary      Ajustes de la sociedad (cajones y listados)
// @Description  Desactivar la gestión de cajones también desactiva mostrarlos en listados.
// @Tags         society
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSocietySettingsRequest  true  "Flags a modificar"
// @Success      200   {object}  dto.SocietyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/society/settings [put]
func (h *SocietyHandler) UpdateSettings(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	var in dto.UpdateSocietySettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	society, err := h.uc.UpdateSettings(c.Context(), societyID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mostrar cajones en listados requiere la gestión de cajones activa"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sociedad no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(usecase.ToSocietyResponse(society))
}

// Upgrade godoc
// @Summary      Cambiar el plan de suscripción
// @Tags         society
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpgradeSubscriptionRequest  true  "level: free, basic o premium"
// @Success      200   {object}  dto.SocietyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/society/subscription [put]
func (h *SocietyHandler) Upgrade(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	var in dto.UpgradeSubscriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	society, err := h.uc.Upgrade(c.Context(), societyID, in.Level)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nivel de suscripción desconocido"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la sociedad ya tiene ese plan"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sociedad no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(usecase.ToSocietyResponse(society))
}

// Plans godoc
// @Summary      Catálogo de planes de suscripción
// @Tags         society
// @Produce      json
// @Success      200  {array}  dto.SubscriptionPlanDTO
// @Router       /api/plans [get]
func (h *SocietyHandler) Plans(c *fiber.Ctx) error {
	return c.JSON(h.uc.Plans())
}
