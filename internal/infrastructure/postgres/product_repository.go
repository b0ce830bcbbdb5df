package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bulldogbars/barstock-api/internal/domain"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
	"github.com/bulldogbars/barstock-api/pkg/strutil"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo de productos sobre PostgreSQL (usable con pool o tx).
// search_name guarda el nombre normalizado (sin tildes) para búsquedas.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, category, barcode, sku, supplier, description, unit,
	min_stock_level, reorder_point, cost, price, is_active, created_at, updated_at`

// Create inserta el producto y devuelve el id generado.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (name, search_name, category, barcode, sku, supplier, description,
		                      unit, min_stock_level, reorder_point, cost, price, is_active,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Name, strutil.Fold(p.Name), p.Category, nullIfEmpty(p.Barcode), nullIfEmpty(p.SKU),
		p.Supplier, p.Description, p.Unit, p.MinStockLevel, p.ReorderPoint,
		p.Cost, p.Price, p.IsActive, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByBarcode devuelve el producto por código de barras o nil.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, barcode))
}

// Update actualiza todos los campos editables y refresca search_name.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, search_name = $3, category = $4, barcode = $5, sku = $6, supplier = $7,
		    description = $8, unit = $9, min_stock_level = $10, reorder_point = $11,
		    cost = $12, price = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, strutil.Fold(p.Name), p.Category, nullIfEmpty(p.Barcode), nullIfEmpty(p.SKU),
		p.Supplier, p.Description, p.Unit, p.MinStockLevel, p.ReorderPoint,
		p.Cost, p.Price, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve productos filtrados, paginados y el total sin paginar.
// Search busca sobre search_name, barcode y sku.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	n := 0

	if filter.Search != "" {
		n++
		where += fmt.Sprintf(" AND (search_name LIKE '%%' || $%d || '%%' OR barcode = $%d OR sku = $%d)", n, n, n)
		args = append(args, strutil.Fold(filter.Search))
	}
	if filter.Category != "" {
		n++
		where += fmt.Sprintf(" AND category = $%d", n)
		args = append(args, filter.Category)
	}
	if filter.Supplier != "" {
		n++
		where += fmt.Sprintf(" AND supplier ILIKE '%%' || $%d || '%%'", n)
		args = append(args, filter.Supplier)
	}
	if filter.IsActive != nil {
		n++
		where += fmt.Sprintf(" AND is_active = $%d", n)
		args = append(args, *filter.IsActive)
	}

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT count(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := "SELECT " + productColumns + " FROM products" + where +
		fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

// Deactivate baja lógica del producto.
func (r *ProductRepo) Deactivate(id int64) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var barcode, sku *string
	err := row.Scan(&p.ID, &p.Name, &p.Category, &barcode, &sku, &p.Supplier, &p.Description,
		&p.Unit, &p.MinStockLevel, &p.ReorderPoint, &p.Cost, &p.Price, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if barcode != nil {
		p.Barcode = *barcode
	}
	if sku != nil {
		p.SKU = *sku
	}
	return &p, nil
}

func (r *ProductRepo) scanRow(rows pgx.Rows) (*entity.Product, error) {
	var p entity.Product
	var barcode, sku *string
	err := rows.Scan(&p.ID, &p.Name, &p.Category, &barcode, &sku, &p.Supplier, &p.Description,
		&p.Unit, &p.MinStockLevel, &p.ReorderPoint, &p.Cost, &p.Price, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	if barcode != nil {
		p.Barcode = *barcode
	}
	if sku != nil {
		p.SKU = *sku
	}
	return &p, nil
}

// nullIfEmpty evita chocar con los índices únicos parciales de barcode/sku.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
