package postgres

import (
	"context"
	"fmt"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

var _ repository.StockTransferRepository = (*StockTransferRepo)(nil)

// StockTransferRepo registro inmutable de traslados sobre PostgreSQL.
type StockTransferRepo struct {
	q Querier
}

// NewStockTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransferRepository(q Querier) *StockTransferRepo {
	return &StockTransferRepo{q: q}
}

// Create inserta el traslado y devuelve el id generado. Nunca hay updates.
func (r *StockTransferRepo) Create(t *entity.StockTransfer) error {
	query := `
		INSERT INTO stock_transfers (product_id, from_location, to_location, quantity,
		                             transferred_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		t.ProductID, t.FromLocation, t.ToLocation, t.Quantity,
		t.TransferredBy, t.Notes, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("create stock transfer: %w", err)
	}
	return nil
}

// List devuelve traslados filtrados, del más reciente al más antiguo.
func (r *StockTransferRepo) List(filter repository.TransferFilter) ([]*entity.StockTransfer, error) {
	where := " WHERE 1=1"
	args := []any{}
	n := 0

	if filter.ProductID != 0 {
		n++
		where += fmt.Sprintf(" AND product_id = $%d", n)
		args = append(args, filter.ProductID)
	}
	if filter.ToLocation != "" {
		n++
		where += fmt.Sprintf(" AND to_location = $%d", n)
		args = append(args, filter.ToLocation)
	}

	query := `SELECT id, product_id, from_location, to_location, quantity, transferred_by,
		COALESCE(notes, ''), created_at FROM stock_transfers` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock transfers: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockTransfer
	for rows.Next() {
		var t entity.StockTransfer
		if err := rows.Scan(&t.ID, &t.ProductID, &t.FromLocation, &t.ToLocation,
			&t.Quantity, &t.TransferredBy, &t.Notes, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transfer: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
