package usecase

import (
	"context"

	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

// DashboardUseCase consultas de lectura agregadas para la vista principal.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	activityRepo  repository.ActivityLogRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, activityRepo repository.ActivityLogRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, activityRepo: activityRepo}
}

// Stats devuelve los contadores agregados del sistema.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats, err := uc.analyticsRepo.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		TotalProducts:     stats.TotalProducts,
		LowStockCount:     stats.LowStockCount,
		UnresolvedAlerts:  stats.UnresolvedAlerts,
		PendingDeliveries: stats.PendingDeliveries,
		TransfersToday:    stats.TransfersToday,
		ActiveUsers:       stats.ActiveUsers,
	}, nil
}

// RecentActivity devuelve las últimas entradas del registro de actividad.
func (uc *DashboardUseCase) RecentActivity(page dto.PageRequest) ([]dto.ActivityResponse, error) {
	page.DefaultPage()
	entries, err := uc.activityRepo.List(repository.ActivityFilter{Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.FromActivity(e))
	}
	return out, nil
}
