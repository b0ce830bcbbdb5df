package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

var _ repository.WarehouseInventoryRepository = (*WarehouseInventoryRepo)(nil)

// WarehouseInventoryRepo stock de bodega sobre PostgreSQL (usable con pool o tx).
type WarehouseInventoryRepo struct {
	q Querier
}

// NewWarehouseInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseInventoryRepository(q Querier) *WarehouseInventoryRepo {
	return &WarehouseInventoryRepo{q: q}
}

// Get obtiene el stock de bodega de un producto. La fila ausente se
// materializa como cantidad cero, nunca como error.
func (r *WarehouseInventoryRepo) Get(productID int64) (*entity.WarehouseInventory, error) {
	query := `
		SELECT id, product_id, quantity, last_restocked, updated_at
		FROM warehouse_inventory WHERE product_id = $1`
	var inv entity.WarehouseInventory
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.Quantity, &inv.LastRestocked, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.WarehouseInventory{ProductID: productID}, nil
		}
		return nil, fmt.Errorf("get warehouse inventory: %w", err)
	}
	return &inv, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE).
// Si la fila no existe la materializa en cero antes de bloquear: un SELECT FOR
// UPDATE sobre una fila ausente no bloquea nada y dos ajustes relativos
// concurrentes leerían ambos cero y se pisarían al escribir.
func (r *WarehouseInventoryRepo) GetForUpdate(productID int64) (*entity.WarehouseInventory, error) {
	query := `
		SELECT id, product_id, quantity, last_restocked, updated_at
		FROM warehouse_inventory WHERE product_id = $1
		FOR UPDATE`
	var inv entity.WarehouseInventory
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.Quantity, &inv.LastRestocked, &inv.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		insert := `
			INSERT INTO warehouse_inventory (product_id, quantity, updated_at)
			VALUES ($1, 0, now())
			ON CONFLICT (product_id) DO NOTHING`
		if _, err := r.q.Exec(context.Background(), insert, productID); err != nil {
			return nil, fmt.Errorf("materializar fila de bodega: %w", err)
		}
		err = r.q.QueryRow(context.Background(), query, productID).Scan(
			&inv.ID, &inv.ProductID, &inv.Quantity, &inv.LastRestocked, &inv.UpdatedAt,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("get warehouse inventory for update: %w", err)
	}
	return &inv, nil
}

// Upsert inserta o actualiza la fila de bodega de un producto.
func (r *WarehouseInventoryRepo) Upsert(inv *entity.WarehouseInventory) error {
	query := `
		INSERT INTO warehouse_inventory (product_id, quantity, last_restocked, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity,
		              last_restocked = COALESCE(EXCLUDED.last_restocked, warehouse_inventory.last_restocked),
		              updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, inv.ProductID, inv.Quantity, inv.LastRestocked)
	if err != nil {
		return fmt.Errorf("upsert warehouse inventory: %w", err)
	}
	return nil
}

// List devuelve el inventario de bodega con datos del producto (solo activos).
func (r *WarehouseInventoryRepo) List() ([]repository.InventoryRow, error) {
	query := `
		SELECT p.id, p.name, p.category, p.unit, p.min_stock_level, p.reorder_point,
		       COALESCE(wi.quantity, 0), wi.last_restocked
		FROM products p
		LEFT JOIN warehouse_inventory wi ON wi.product_id = p.id
		WHERE p.is_active = true
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list warehouse inventory: %w", err)
	}
	defer rows.Close()

	var out []repository.InventoryRow
	for rows.Next() {
		var row repository.InventoryRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Category, &row.Unit,
			&row.MinStockLevel, &row.ReorderPoint, &row.Quantity, &row.LastRestocked); err != nil {
			return nil, fmt.Errorf("scan warehouse inventory: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
