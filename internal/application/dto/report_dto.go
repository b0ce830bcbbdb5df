package dto

import (
	"encoding/json"
	"time"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
)

// CreateReportRequest alta de un reporte. Data se guarda tal cual (JSON opaco).
type CreateReportRequest struct {
	ReportType string          `json:"reportType" validate:"required"`
	Title      string          `json:"title" validate:"required,min=1,max=200"`
	Location   string          `json:"location"`
	DateFrom   *time.Time      `json:"dateFrom"`
	DateTo     *time.Time      `json:"dateTo"`
	Data       json.RawMessage `json:"data" validate:"required"`
}

// ReportFilterRequest filtros del listado de reportes.
type ReportFilterRequest struct {
	PageRequest
	ReportType string `query:"reportType"`
	Location   string `query:"location"`
}

// ReportResponse reporte almacenado.
type ReportResponse struct {
	ID          int64           `json:"id"`
	ReportType  string          `json:"reportType"`
	Title       string          `json:"title"`
	Location    string          `json:"location,omitempty"`
	DateFrom    *time.Time      `json:"dateFrom,omitempty"`
	DateTo      *time.Time      `json:"dateTo,omitempty"`
	Data        json.RawMessage `json:"data"`
	GeneratedBy int64           `json:"generatedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// FromReport mapea la entidad a su respuesta.
func FromReport(r *entity.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID,
		ReportType:  string(r.ReportType),
		Title:       r.Title,
		Location:    r.Location,
		DateFrom:    r.DateFrom,
		DateTo:      r.DateTo,
		Data:        r.Data,
		GeneratedBy: r.GeneratedBy,
		CreatedAt:   r.CreatedAt,
	}
}

// DashboardStatsResponse contadores de la vista principal.
type DashboardStatsResponse struct {
	TotalProducts     int `json:"totalProducts"`
	LowStockCount     int `json:"lowStockCount"`
	UnresolvedAlerts  int `json:"unresolvedAlerts"`
	PendingDeliveries int `json:"pendingDeliveries"`
	TransfersToday    int `json:"transfersToday"`
	ActiveUsers       int `json:"activeUsers"`
}

// ActivityResponse entrada del registro de actividad.
type ActivityResponse struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"userId"`
	ActivityType string          `json:"activityType"`
	EntityType   string          `json:"entityType,omitempty"`
	EntityID     *int64          `json:"entityId,omitempty"`
	Description  string          `json:"description"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	IPAddress    string          `json:"ipAddress,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// FromActivity mapea una entrada del registro a su respuesta.
func FromActivity(a *entity.ActivityLog) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		ActivityType: string(a.ActivityType),
		EntityType:   a.EntityType,
		EntityID:     a.EntityID,
		Description:  a.Description,
		Metadata:     a.Metadata,
		IPAddress:    a.IPAddress,
		CreatedAt:    a.CreatedAt,
	}
}
