package usecase

import (
	"time"

	"github.com/bulldogbars/barstock-api/internal/application/activity"
	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/domain"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

// ReportUseCase almacena y sirve reportes. El contenido (Data) lo aporta el
// cliente y se guarda opaco; el sistema no lo recalcula.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	recorder   *activity.Recorder
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, recorder *activity.Recorder) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, recorder: recorder}
}

// Create guarda un reporte.
func (uc *ReportUseCase) Create(in dto.CreateReportRequest, actor dto.Actor) (*dto.ReportResponse, error) {
	reportType := entity.ReportType(in.ReportType)
	if !reportType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.Location != "" && !validStockLocation(in.Location) {
		return nil, domain.ErrInvalidLocation
	}

	report := &entity.Report{
		ReportType:  reportType,
		Title:       in.Title,
		Location:    in.Location,
		DateFrom:    in.DateFrom,
		DateTo:      in.DateTo,
		Data:        in.Data,
		GeneratedBy: actor.UserID,
		CreatedAt:   time.Now(),
	}
	if err := uc.reportRepo.Create(report); err != nil {
		return nil, err
	}

	uc.recorder.Record(actor, entity.ActivityReportGenerated, "report", &report.ID,
		"reporte "+report.Title+" generado", nil)
	resp := dto.FromReport(report)
	return &resp, nil
}

// Get devuelve un reporte por id.
func (uc *ReportUseCase) Get(id int64) (*dto.ReportResponse, error) {
	report, err := uc.GetEntity(id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromReport(report)
	return &resp, nil
}

// GetEntity devuelve la entidad completa (la usa el renderer PDF).
func (uc *ReportUseCase) GetEntity(id int64) (*entity.Report, error) {
	report, err := uc.reportRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	return report, nil
}

// List devuelve reportes filtrados.
func (uc *ReportUseCase) List(in dto.ReportFilterRequest) ([]dto.ReportResponse, error) {
	in.DefaultPage()
	reports, err := uc.reportRepo.List(repository.ReportFilter{
		ReportType: entity.ReportType(in.ReportType),
		Location:   in.Location,
		Limit:      in.Limit,
		Offset:     in.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, dto.FromReport(r))
	}
	return out, nil
}
