package postgres

import (
	"context"
	"fmt"

	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas read-only para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetDashboardStats calcula los contadores del dashboard en una sola pasada.
// "Stock bajo" usa el mismo límite inclusivo que la clasificación de stock:
// cantidad <= min_stock_level.
func (r *AnalyticsRepo) GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	query := `
		SELECT
			(SELECT count(*) FROM products WHERE is_active = true),
			(SELECT count(*) FROM products p
			   LEFT JOIN warehouse_inventory wi ON wi.product_id = p.id
			   WHERE p.is_active = true AND COALESCE(wi.quantity, 0) <= p.min_stock_level),
			(SELECT count(*) FROM stock_alerts WHERE is_resolved = false),
			(SELECT count(*) FROM deliveries WHERE status IN ('pending', 'in_transit')),
			(SELECT count(*) FROM stock_transfers WHERE created_at >= date_trunc('day', now())),
			(SELECT count(*) FROM users WHERE is_active = true)`
	var stats repository.DashboardStats
	err := r.q.QueryRow(ctx, query).Scan(
		&stats.TotalProducts,
		&stats.LowStockCount,
		&stats.UnresolvedAlerts,
		&stats.PendingDeliveries,
		&stats.TransfersToday,
		&stats.ActiveUsers,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}
