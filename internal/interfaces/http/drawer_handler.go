package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-service/internal/application/drawers"
	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/application/usecase"
	"github.com/tu-usuario/stock-service/internal/domain"
)

// DrawerHandler cajones y colocaciones objeto-cajón (protegido; requiere la
// función de cajones habilitada en la sociedad).
type DrawerHandler struct {
	crudUC      *usecase.DrawerUseCase
	placementUC *drawers.UseCase
}

// NewDrawerHandler construye el handler.
func NewDrawerHandler(crudUC *usecase.DrawerUseCase, placementUC *drawers.UseCase) *DrawerHandler {
	return &DrawerHandler{crudUC: crudUC, placementUC: placementUC}
}

func drawerError(c *fiber.Ctx, err error) error {
	if err == domain.ErrFeatureDisabled {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FEATURE_DISABLED", Message: "la sociedad no gestiona cajones"})
	}
	if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrDuplicate {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un cajón en esa posición"})
	}
	if err == domain.ErrConflict {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el cajón tiene colocaciones vigentes"})
	}
	if err == domain.ErrOverPlacement {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OVER_PLACEMENT", Message: "el total colocado excedería la cantidad del objeto"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Create godoc
// @Summary      Crear cajón
// @Tags         drawers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DrawerRequest  true  "cabinet_name, letter_x (una letra), number_y"
// @Success      201   {object}  dto.DrawerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/drawers [post]
func (h *DrawerHandler) Create(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	var in dto.DrawerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	drawer, err := h.crudUC.Create(c.Context(), societyID, in)
	if err != nil {
		return drawerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToDrawerResponse(drawer))
}

// List godoc
// @Summary      Listar cajones de la sociedad
// @Tags         drawers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DrawerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/drawers [get]
func (h *DrawerHandler) List(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	list, err := h.crudUC.List(c.Context(), societyID)
	if err != nil {
		return drawerError(c, err)
	}
	out := make([]dto.DrawerResponse, 0, len(list))
	for _, d := range list {
		out = append(out, usecase.ToDrawerResponse(d))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cajón
// @Tags         drawers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cajón"
// @Param        body  body  dto.DrawerRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.DrawerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drawers/{id} [put]
func (h *DrawerHandler) Update(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	id := c.Params("id")
	var in dto.DrawerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	drawer, err := h.crudUC.Update(c.Context(), societyID, id, in)
	if err != nil {
		return drawerError(c, err)
	}
	return c.JSON(usecase.ToDrawerResponse(drawer))
}

// Delete godoc
// @Summary      Eliminar cajón (rechazado si tiene colocaciones)
// @Tags         drawers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cajón"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/drawers/{id} [delete]
func (h *DrawerHandler) Delete(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	id := c.Params("id")
	if err := h.crudUC.Delete(c.Context(), societyID, id); err != nil {
		return drawerError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cajón eliminado"})
}

// Place godoc
// @Summary      Colocar cantidad de un objeto en un cajón
// @Description  Falla si el total colocado excedería la cantidad del objeto.
// @Tags         placements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlacementRequest  true  "stock_object_id, drawer_id, quantity"
// @Success      200   {object}  dto.PlacementResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/placements [post]
func (h *DrawerHandler) Place(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	var in dto.PlacementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	placement, err := h.placementUC.Place(c.Context(), drawers.PlacementInput{
		SocietyID:     societyID,
		StockObjectID: in.StockObjectID,
		DrawerID:      in.DrawerID,
		Quantity:      in.Quantity,
	})
	if err != nil {
		return drawerError(c, err)
	}
	return c.JSON(dto.PlacementResponse{
		StockObjectID: placement.StockObjectID,
		DrawerID:      placement.DrawerID,
		Quantity:      placement.Quantity,
	})
}

// Unplace godoc
// @Summary      Retirar cantidad de un objeto de un cajón
// @Tags         placements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlacementRequest  true  "stock_object_id, drawer_id, quantity"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/placements/remove [post]
func (h *DrawerHandler) Unplace(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	var in dto.PlacementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.placementUC.Unplace(c.Context(), drawers.PlacementInput{
		SocietyID:     societyID,
		StockObjectID: in.StockObjectID,
		DrawerID:      in.DrawerID,
		Quantity:      in.Quantity,
	})
	if err != nil {
		return drawerError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "colocación retirada"})
}

// ListPlacements godoc
// @Summary      Colocaciones de un objeto en cajones
// @Tags         placements
// @Security     Bearer
// @Produce      json
// @Param        stock_object_id  query  string  true  "ID del objeto"
// @Success      200  {array}  dto.PlacementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/placements [get]
func (h *DrawerHandler) ListPlacements(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	objectID := c.Query("stock_object_id")
	if objectID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "stock_object_id es requerido"})
	}
	placements, err := h.placementUC.ListPlacements(c.Context(), societyID, objectID)
	if err != nil {
		return drawerError(c, err)
	}
	out := make([]dto.PlacementResponse, 0, len(placements))
	for _, p := range placements {
		out = append(out, dto.PlacementResponse{
			StockObjectID: p.StockObjectID,
			DrawerID:      p.DrawerID,
			Quantity:      p.Quantity,
		})
	}
	return c.JSON(out)
}

// ListInconsistencies godoc
// @Summary      Objetos con total colocado mayor que su cantidad
// @Description  El reconciliador reporta las inconsistencias sin corregirlas.
// @Tags         placements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PlacementInconsistencyDTO
// @Router       /api/placements/inconsistencies [get]
func (h *DrawerHandler) ListInconsistencies(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	list, err := h.placementUC.ListInconsistencies(c.Context(), societyID)
	if err != nil {
		return drawerError(c, err)
	}
	return c.JSON(list)
}
