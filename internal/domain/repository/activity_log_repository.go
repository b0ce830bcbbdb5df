package repository

import "github.com/bulldogbars/barstock-api/internal/domain/entity"

// ActivityFilter filtros de lectura del registro de actividad.
type ActivityFilter struct {
	UserID       int64
	ActivityType entity.ActivityType
	EntityType   string
	Limit        int
	Offset       int
}

// ActivityLogRepository define el puerto del registro de actividad (append-only).
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
	List(filter ActivityFilter) ([]*entity.ActivityLog, error)
}
