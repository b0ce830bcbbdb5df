package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

var _ repository.StockAlertRepository = (*StockAlertRepo)(nil)

// StockAlertRepo alertas de stock bajo sobre PostgreSQL (usable con pool o tx).
type StockAlertRepo struct {
	q Querier
}

// NewStockAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockAlertRepository(q Querier) *StockAlertRepo {
	return &StockAlertRepo{q: q}
}

// Create inserta la alerta y devuelve el id generado.
func (r *StockAlertRepo) Create(a *entity.StockAlert) error {
	query := `
		INSERT INTO stock_alerts (product_id, location, alert_type, current_quantity,
		                          threshold, is_resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, false, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		a.ProductID, a.Location, a.AlertType, a.CurrentQuantity, a.Threshold, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("create stock alert: %w", err)
	}
	return nil
}

// GetOpen devuelve la alerta sin resolver del producto en la ubicación, o nil.
func (r *StockAlertRepo) GetOpen(productID int64, location string) (*entity.StockAlert, error) {
	query := `
		SELECT id, product_id, location, alert_type, current_quantity, threshold,
		       is_resolved, resolved_at, created_at
		FROM stock_alerts
		WHERE product_id = $1 AND location = $2 AND is_resolved = false
		ORDER BY created_at DESC
		LIMIT 1`
	var a entity.StockAlert
	err := r.q.QueryRow(context.Background(), query, productID, location).Scan(
		&a.ID, &a.ProductID, &a.Location, &a.AlertType, &a.CurrentQuantity,
		&a.Threshold, &a.IsResolved, &a.ResolvedAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open stock alert: %w", err)
	}
	return &a, nil
}

// ResolveOpen marca como resueltas las alertas abiertas del producto/ubicación.
func (r *StockAlertRepo) ResolveOpen(productID int64, location string) error {
	query := `
		UPDATE stock_alerts
		SET is_resolved = true, resolved_at = now()
		WHERE product_id = $1 AND location = $2 AND is_resolved = false`
	if _, err := r.q.Exec(context.Background(), query, productID, location); err != nil {
		return fmt.Errorf("resolve stock alerts: %w", err)
	}
	return nil
}

// ListUnresolved devuelve todas las alertas abiertas, la más reciente primero.
func (r *StockAlertRepo) ListUnresolved() ([]*entity.StockAlert, error) {
	query := `
		SELECT id, product_id, location, alert_type, current_quantity, threshold,
		       is_resolved, resolved_at, created_at
		FROM stock_alerts
		WHERE is_resolved = false
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list unresolved alerts: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockAlert
	for rows.Next() {
		var a entity.StockAlert
		if err := rows.Scan(&a.ID, &a.ProductID, &a.Location, &a.AlertType,
			&a.CurrentQuantity, &a.Threshold, &a.IsResolved, &a.ResolvedAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock alert: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
