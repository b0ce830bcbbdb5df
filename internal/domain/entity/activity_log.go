package entity

import (
	"encoding/json"
	"time"
)

// ActivityLog es una entrada append-only del registro de actividad.
// Nunca se actualiza ni se borra.
type ActivityLog struct {
	ID           int64
	UserID       int64
	ActivityType ActivityType
	EntityType   string // "product", "delivery", "user", ...
	EntityID     *int64
	Description  string
	Metadata     json.RawMessage
	IPAddress    string
	CreatedAt    time.Time
}
