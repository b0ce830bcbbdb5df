package repository

import "github.com/bulldogbars/barstock-api/internal/domain/entity"

// ReportFilter filtros de listado de reportes.
type ReportFilter struct {
	ReportType entity.ReportType
	Location   string
	Limit      int
	Offset     int
}

// ReportRepository define el puerto de persistencia para Report.
type ReportRepository interface {
	Create(report *entity.Report) error
	GetByID(id int64) (*entity.Report, error)
	List(filter ReportFilter) ([]*entity.Report, error)
}
