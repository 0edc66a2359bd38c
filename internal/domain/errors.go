package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Motor de inventario.
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrCrossTenant       = errors.New("la entidad pertenece a otra sociedad")

	// Cajones (drawers).
	ErrOverPlacement   = errors.New("la cantidad colocada excede el stock disponible")
	ErrFeatureDisabled = errors.New("función no habilitada para esta sociedad")

	// Límites del plan de suscripción.
	ErrUserLimitReached  = errors.New("límite de usuarios del plan alcanzado")
	ErrAdminLimitReached = errors.New("límite de administradores del plan alcanzado")
)
