package dto

import "github.com/bulldogbars/barstock-api/internal/domain/entity"

// Envelope es el sobre uniforme de todas las respuestas HTTP.
// Data va en éxitos; Error en fallos; Message es opcional en ambos.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK construye un sobre de éxito.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage construye un sobre de éxito con mensaje y sin data.
func OKMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// Fail construye un sobre de error.
func Fail(errMsg string) Envelope {
	return Envelope{Success: false, Error: errMsg}
}

// Actor es la identidad autenticada de la petición. La extrae el middleware
// una sola vez y viaja explícitamente hacia los casos de uso; no hay estado
// de sesión ambiente.
type Actor struct {
	UserID   int64
	Role     entity.Role
	Location entity.Location // vacío si el rol no tiene bar asignado
	IP       string
}

// IsAdmin indica si el actor tiene rol admin.
func (a Actor) IsAdmin() bool { return a.Role == entity.RoleAdmin }

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}
