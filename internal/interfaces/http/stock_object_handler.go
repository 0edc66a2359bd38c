package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/application/usecase"
	"github.com/tu-usuario/stock-service/internal/domain"
)

// StockObjectHandler maneja las peticiones HTTP para StockObject y sus
// categorías (protegido).
type StockObjectHandler struct {
	uc *usecase.StockObjectUseCase
}

// NewStockObjectHandler construye el handler.
func NewStockObjectHandler(uc *usecase.StockObjectUseCase) *StockObjectHandler {
	return &StockObjectHandler{uc: uc}
}

// Create godoc
// @Summary      Crear objeto de stock
// @Description  initial_quantity se aplica como un movimiento de entrada inicial auditado.
// @Tags         stock-objects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockObjectRequest  true  "Datos del objeto"
// @Success      201   {object}  dto.StockObjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-objects [post]
func (h *StockObjectHandler) Create(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	userID := GetUserID(c)
	if societyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateStockObjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	obj, err := h.uc.Create(c.Context(), societyID, userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y las cantidades no pueden ser negativas"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un objeto con ese nombre"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		if err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToStockObjectResponse(obj))
}

// GetByID godoc
// @Summary      Obtener objeto de stock por ID
// @Tags         stock-objects
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del objeto"
// @Success      200  {object}  dto.StockObjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-objects/{id} [get]
func (h *StockObjectHandler) GetByID(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	obj, err := h.uc.GetByID(c.Context(), societyID, id)
	if err != nil {
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "objeto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(usecase.ToStockObjectResponse(obj))
}

// List godoc
// @Summary      Listar objetos de stock de la sociedad
// @Tags         stock-objects
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.StockObjectResponse
// @Router       /api/stock-objects [get]
func (h *StockObjectHandler) List(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	if societyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit, offset := pagination(c)
	objects, err := h.uc.List(c.Context(), societyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockObjectResponse, 0, len(objects))
	for _, obj := range objects {
		out = append(out, usecase.ToStockObjectResponse(obj))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar objeto de stock (la cantidad no es editable aquí)
// @Tags         stock-objects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del objeto"
// @Param        body  body  dto.UpdateStockObjectRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.StockObjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-objects/{id} [put]
func (h *StockObjectHandler) Update(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateStockObjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	obj, err := h.uc.Update(c.Context(), societyID, id, in)
	if err != nil {
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "objeto no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un objeto con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(usecase.ToStockObjectResponse(obj))
}

// Delete godoc
// @Summary      Eliminar objeto de stock
// @Tags         stock-objects
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del objeto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-objects/{id} [delete]
func (h *StockObjectHandler) Delete(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), societyID, id); err != nil {
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "objeto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "objeto eliminado"})
}

// CreateKind godoc
// @Summary      Crear categoría de objetos
// @Tags         kinds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.KindRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.KindResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/kinds [post]
func (h *StockObjectHandler) CreateKind(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	var in dto.KindRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	kind, err := h.uc.CreateKind(c.Context(), societyID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una categoría con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.KindResponse{
		ID: kind.ID, SocietyID: kind.SocietyID, Name: kind.Name, Description: kind.Description,
	})
}

// ListKinds godoc
// @Summary      Listar categorías de la sociedad
// @Tags         kinds
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.KindResponse
// @Router       /api/kinds [get]
func (h *StockObjectHandler) ListKinds(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	kinds, err := h.uc.ListKinds(c.Context(), societyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.KindResponse, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, dto.KindResponse{ID: k.ID, SocietyID: k.SocietyID, Name: k.Name, Description: k.Description})
	}
	return c.JSON(out)
}

// UpdateKind godoc
// @Summary      Actualizar categoría
// @Tags         kinds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.KindRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.KindResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kinds/{id} [put]
func (h *StockObjectHandler) UpdateKind(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	id := c.Params("id")
	var in dto.KindRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	kind, err := h.uc.UpdateKind(c.Context(), societyID, id, in)
	if err != nil {
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una categoría con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.KindResponse{ID: kind.ID, SocietyID: kind.SocietyID, Name: kind.Name, Description: kind.Description})
}

// DeleteKind godoc
// @Summary      Eliminar categoría (los objetos quedan sin categoría)
// @Tags         kinds
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kinds/{id} [delete]
func (h *StockObjectHandler) DeleteKind(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	id := c.Params("id")
	if err := h.uc.DeleteKind(c.Context(), societyID, id); err != nil {
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "categoría eliminada"})
}
