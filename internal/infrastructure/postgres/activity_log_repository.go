package postgres

import (
	"context"
	"fmt"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo registro de actividad append-only sobre PostgreSQL.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create inserta la entrada. No existen updates ni deletes sobre esta tabla.
func (r *ActivityLogRepo) Create(log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_log (user_id, activity_type, entity_type, entity_id,
		                          description, metadata, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		log.UserID, log.ActivityType, nullIfEmpty(log.EntityType), log.EntityID,
		log.Description, log.Metadata, nullIfEmpty(log.IPAddress), log.CreatedAt,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("create activity log: %w", err)
	}
	return nil
}

// List devuelve entradas filtradas, la más reciente primero.
func (r *ActivityLogRepo) List(filter repository.ActivityFilter) ([]*entity.ActivityLog, error) {
	where := " WHERE 1=1"
	args := []any{}
	n := 0

	if filter.UserID != 0 {
		n++
		where += fmt.Sprintf(" AND user_id = $%d", n)
		args = append(args, filter.UserID)
	}
	if filter.ActivityType != "" {
		n++
		where += fmt.Sprintf(" AND activity_type = $%d", n)
		args = append(args, filter.ActivityType)
	}
	if filter.EntityType != "" {
		n++
		where += fmt.Sprintf(" AND entity_type = $%d", n)
		args = append(args, filter.EntityType)
	}

	query := `
		SELECT id, user_id, activity_type, COALESCE(entity_type, ''), entity_id,
		       description, metadata, COALESCE(ip_address, ''), created_at
		FROM activity_log` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity log: %w", err)
	}
	defer rows.Close()

	var out []*entity.ActivityLog
	for rows.Next() {
		var log entity.ActivityLog
		if err := rows.Scan(&log.ID, &log.UserID, &log.ActivityType, &log.EntityType,
			&log.EntityID, &log.Description, &log.Metadata, &log.IPAddress, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		out = append(out, &log)
	}
	return out, rows.Err()
}
