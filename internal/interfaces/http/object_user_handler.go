package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-service/internal/application/dto"
	"github.com/tu-usuario/stock-service/internal/application/usecase"
	"github.com/tu-usuario/stock-service/internal/domain"
)

// ObjectUserHandler consumidores de stock (departamentos, máquinas, personas).
type ObjectUserHandler struct {
	uc *usecase.ObjectUserUseCase
}

// NewObjectUserHandler construye el handler.
func NewObjectUserHandler(uc *usecase.ObjectUserUseCase) *ObjectUserHandler {
	return &ObjectUserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear consumidor de stock
// @Tags         object-users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ObjectUserRequest  true  "Datos del consumidor"
// @Success      201   {object}  dto.ObjectUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/object-users [post]
func (h *ObjectUserHandler) Create(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	if societyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ObjectUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ou, err := h.uc.Create(c.Context(), societyID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un consumidor con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToObjectUserResponse(ou))
}

// List godoc
// @Summary      Listar consumidores de la sociedad
// @Tags         object-users
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.ObjectUserResponse
// @Router       /api/object-users [get]
func (h *ObjectUserHandler) List(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	if societyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit, offset := pagination(c)
	list, err := h.uc.List(c.Context(), societyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ObjectUserResponse, 0, len(list))
	for _, ou := range list {
		out = append(out, usecase.ToObjectUserResponse(ou))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar consumidor
// @Tags         object-users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del consumidor"
// @Param        body  body  dto.ObjectUserRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.ObjectUserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/object-users/{id} [put]
func (h *ObjectUserHandler) Update(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	id := c.Params("id")
	var in dto.ObjectUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ou, err := h.uc.Update(c.Context(), societyID, id, in)
	if err != nil {
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consumidor no encontrado"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un consumidor con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(usecase.ToObjectUserResponse(ou))
}

// Delete godoc
// @Summary      Eliminar consumidor
// @Tags         object-users
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del consumidor"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/object-users/{id} [delete]
func (h *ObjectUserHandler) Delete(c *fiber.Ctx) error {
	societyID := GetSocietyID(c)
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), societyID, id); err != nil {
		if err == domain.ErrNotFound || err == domain.ErrCrossTenant {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consumidor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "consumidor eliminado"})
}
