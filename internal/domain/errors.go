package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrInvalidCredentials    = errors.New("credenciales inválidas")
	ErrUserInactive          = errors.New("usuario desactivado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrInvalidQuantity       = errors.New("cantidad inválida")
	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrInvalidLocation       = errors.New("ubicación inválida")
	ErrInvalidStatusChange   = errors.New("transición de estado inválida")
	ErrDeliveryAlreadyClosed = errors.New("la entrega ya fue cerrada")
)
