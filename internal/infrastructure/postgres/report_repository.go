package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo reportes almacenados sobre PostgreSQL. Data es JSONB opaco.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create inserta el reporte y devuelve el id generado.
func (r *ReportRepo) Create(report *entity.Report) error {
	query := `
		INSERT INTO reports (report_type, title, location, date_from, date_to, data,
		                     generated_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		report.ReportType, report.Title, nullIfEmpty(report.Location),
		report.DateFrom, report.DateTo, report.Data, report.GeneratedBy, report.CreatedAt,
	).Scan(&report.ID)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

// GetByID devuelve el reporte o nil si no existe.
func (r *ReportRepo) GetByID(id int64) (*entity.Report, error) {
	query := `
		SELECT id, report_type, title, COALESCE(location, ''), date_from, date_to,
		       data, generated_by, created_at
		FROM reports WHERE id = $1`
	var report entity.Report
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&report.ID, &report.ReportType, &report.Title, &report.Location,
		&report.DateFrom, &report.DateTo, &report.Data, &report.GeneratedBy, &report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &report, nil
}

// List devuelve reportes filtrados, el más reciente primero.
func (r *ReportRepo) List(filter repository.ReportFilter) ([]*entity.Report, error) {
	where := " WHERE 1=1"
	args := []any{}
	n := 0

	if filter.ReportType != "" {
		n++
		where += fmt.Sprintf(" AND report_type = $%d", n)
		args = append(args, filter.ReportType)
	}
	if filter.Location != "" {
		n++
		where += fmt.Sprintf(" AND location = $%d", n)
		args = append(args, filter.Location)
	}

	query := `
		SELECT id, report_type, title, COALESCE(location, ''), date_from, date_to,
		       data, generated_by, created_at
		FROM reports` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []*entity.Report
	for rows.Next() {
		var report entity.Report
		if err := rows.Scan(&report.ID, &report.ReportType, &report.Title, &report.Location,
			&report.DateFrom, &report.DateTo, &report.Data, &report.GeneratedBy, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		out = append(out, &report)
	}
	return out, rows.Err()
}
