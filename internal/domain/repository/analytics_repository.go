package repository

import "context"

// DashboardStats contadores agregados para la vista principal.
// Los produce la DB en consultas read-only.
type DashboardStats struct {
	TotalProducts     int
	LowStockCount     int
	UnresolvedAlerts  int
	PendingDeliveries int
	TransfersToday    int
	ActiveUsers       int
}

// AnalyticsRepository define las consultas de lectura agregadas.
// Las implementaciones no modifican datos.
type AnalyticsRepository interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
