package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

var _ repository.BarInventoryRepository = (*BarInventoryRepo)(nil)

// BarInventoryRepo stock por bar sobre PostgreSQL (usable con pool o tx).
type BarInventoryRepo struct {
	q Querier
}

// NewBarInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBarInventoryRepository(q Querier) *BarInventoryRepo {
	return &BarInventoryRepo{q: q}
}

// Get obtiene el stock de un producto en un bar; fila ausente = cantidad cero.
func (r *BarInventoryRepo) Get(productID int64, location entity.Location) (*entity.BarInventory, error) {
	query := `
		SELECT id, product_id, location, quantity, last_restocked, updated_at
		FROM bar_inventory WHERE product_id = $1 AND location = $2`
	var inv entity.BarInventory
	err := r.q.QueryRow(context.Background(), query, productID, location).Scan(
		&inv.ID, &inv.ProductID, &inv.Location, &inv.Quantity, &inv.LastRestocked, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.BarInventory{ProductID: productID, Location: location}, nil
		}
		return nil, fmt.Errorf("get bar inventory: %w", err)
	}
	return &inv, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE).
// Si la fila no existe la materializa en cero antes de bloquear; mismo motivo
// que en bodega: FOR UPDATE sobre fila ausente no bloquea nada.
func (r *BarInventoryRepo) GetForUpdate(productID int64, location entity.Location) (*entity.BarInventory, error) {
	query := `
		SELECT id, product_id, location, quantity, last_restocked, updated_at
		FROM bar_inventory WHERE product_id = $1 AND location = $2
		FOR UPDATE`
	var inv entity.BarInventory
	err := r.q.QueryRow(context.Background(), query, productID, location).Scan(
		&inv.ID, &inv.ProductID, &inv.Location, &inv.Quantity, &inv.LastRestocked, &inv.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		insert := `
			INSERT INTO bar_inventory (product_id, location, quantity, updated_at)
			VALUES ($1, $2, 0, now())
			ON CONFLICT (product_id, location) DO NOTHING`
		if _, err := r.q.Exec(context.Background(), insert, productID, location); err != nil {
			return nil, fmt.Errorf("materializar fila de bar: %w", err)
		}
		err = r.q.QueryRow(context.Background(), query, productID, location).Scan(
			&inv.ID, &inv.ProductID, &inv.Location, &inv.Quantity, &inv.LastRestocked, &inv.UpdatedAt,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("get bar inventory for update: %w", err)
	}
	return &inv, nil
}

// Upsert inserta o actualiza la fila (producto, bar).
func (r *BarInventoryRepo) Upsert(inv *entity.BarInventory) error {
	query := `
		INSERT INTO bar_inventory (product_id, location, quantity, last_restocked, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, location)
		DO UPDATE SET quantity = EXCLUDED.quantity,
		              last_restocked = COALESCE(EXCLUDED.last_restocked, bar_inventory.last_restocked),
		              updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, inv.ProductID, inv.Location, inv.Quantity, inv.LastRestocked)
	if err != nil {
		return fmt.Errorf("upsert bar inventory: %w", err)
	}
	return nil
}

// ListByLocation devuelve el inventario de un bar con datos del producto.
func (r *BarInventoryRepo) ListByLocation(location entity.Location) ([]repository.InventoryRow, error) {
	query := `
		SELECT p.id, p.name, p.category, p.unit, p.min_stock_level, p.reorder_point,
		       COALESCE(bi.quantity, 0), bi.last_restocked
		FROM products p
		LEFT JOIN bar_inventory bi ON bi.product_id = p.id AND bi.location = $1
		WHERE p.is_active = true
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, location)
	if err != nil {
		return nil, fmt.Errorf("list bar inventory: %w", err)
	}
	defer rows.Close()

	var out []repository.InventoryRow
	for rows.Next() {
		var row repository.InventoryRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Category, &row.Unit,
			&row.MinStockLevel, &row.ReorderPoint, &row.Quantity, &row.LastRestocked); err != nil {
			return nil, fmt.Errorf("scan bar inventory: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListByProduct devuelve las filas existentes del producto en todos los bares.
func (r *BarInventoryRepo) ListByProduct(productID int64) ([]*entity.BarInventory, error) {
	query := `
		SELECT id, product_id, location, quantity, last_restocked, updated_at
		FROM bar_inventory WHERE product_id = $1`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list bar inventory by product: %w", err)
	}
	defer rows.Close()

	var out []*entity.BarInventory
	for rows.Next() {
		var inv entity.BarInventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.Location, &inv.Quantity,
			&inv.LastRestocked, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bar inventory: %w", err)
		}
		out = append(out, &inv)
	}
	return out, rows.Err()
}
