package activity

import (
	"encoding/json"
	"time"

	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
	"github.com/bulldogbars/barstock-api/pkg/logger"
)

// Recorder escribe el registro de actividad en modo best-effort: un fallo al
// persistir se loguea y se descarta, nunca afecta a la operación que lo originó.
type Recorder struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.ActivityLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste una entrada del registro. Metadata puede ser nil.
func (r *Recorder) Record(actor dto.Actor, activityType entity.ActivityType, entityType string, entityID *int64, description string, metadata interface{}) {
	var raw json.RawMessage
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			r.log.Warn().Err(err).Str("activity", string(activityType)).Msg("metadata de actividad no serializable, se descarta")
		} else {
			raw = b
		}
	}
	entry := &entity.ActivityLog{
		UserID:       actor.UserID,
		ActivityType: activityType,
		EntityType:   entityType,
		EntityID:     entityID,
		Description:  description,
		Metadata:     raw,
		IPAddress:    actor.IP,
		CreatedAt:    time.Now(),
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.Warn().Err(err).
			Int64("user_id", actor.UserID).
			Str("activity", string(activityType)).
			Msg("no se pudo registrar la actividad")
	}
}
