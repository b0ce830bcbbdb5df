package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bulldogbars/barstock-api/internal/domain"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo entregas de proveedor sobre PostgreSQL (usable con pool o tx).
// La cabecera y las líneas se leen y escriben siempre juntas.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

const deliveryColumns = `id, delivery_number, supplier, location, status, order_date,
	expected_date, received_date, total_cost, COALESCE(notes, ''), created_by,
	received_by, created_at, updated_at`

// Create inserta cabecera y líneas. Fuera de una tx las líneas podrían quedar
// huérfanas; los callers que lo necesitan atómico usan el TxRunner.
func (r *DeliveryRepo) Create(d *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (delivery_number, supplier, location, status, order_date,
		                        expected_date, total_cost, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		d.DeliveryNumber, d.Supplier, d.Location, d.Status, d.OrderDate,
		d.ExpectedDate, d.TotalCost, d.Notes, d.CreatedBy, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create delivery: %w", err)
	}

	for i := range d.Items {
		item := &d.Items[i]
		item.DeliveryID = d.ID
		err := r.q.QueryRow(context.Background(), `
			INSERT INTO delivery_items (delivery_id, product_id, ordered_quantity, received_quantity, unit_cost)
			VALUES ($1, $2, $3, 0, $4)
			RETURNING id`,
			d.ID, item.ProductID, item.OrderedQuantity, item.UnitCost,
		).Scan(&item.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("create delivery item: %w", err)
		}
	}
	return nil
}

// GetByID devuelve la entrega con sus líneas, o nil si no existe.
func (r *DeliveryRepo) GetByID(id int64) (*entity.Delivery, error) {
	return r.get(id, false)
}

// GetForUpdate bloquea la cabecera (SELECT FOR UPDATE) y trae las líneas.
func (r *DeliveryRepo) GetForUpdate(id int64) (*entity.Delivery, error) {
	return r.get(id, true)
}

func (r *DeliveryRepo) get(id int64, forUpdate bool) (*entity.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var d entity.Delivery
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.DeliveryNumber, &d.Supplier, &d.Location, &d.Status, &d.OrderDate,
		&d.ExpectedDate, &d.ReceivedDate, &d.TotalCost, &d.Notes, &d.CreatedBy,
		&d.ReceivedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if err := r.loadItems(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepo) loadItems(d *entity.Delivery) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, delivery_id, product_id, ordered_quantity, received_quantity, unit_cost
		FROM delivery_items WHERE delivery_id = $1 ORDER BY id`, d.ID)
	if err != nil {
		return fmt.Errorf("load delivery items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.DeliveryItem
		if err := rows.Scan(&item.ID, &item.DeliveryID, &item.ProductID,
			&item.OrderedQuantity, &item.ReceivedQuantity, &item.UnitCost); err != nil {
			return fmt.Errorf("scan delivery item: %w", err)
		}
		d.Items = append(d.Items, item)
	}
	return rows.Err()
}

// List devuelve entregas filtradas con sus líneas, la más reciente primero.
func (r *DeliveryRepo) List(filter repository.DeliveryFilter) ([]*entity.Delivery, error) {
	where := " WHERE 1=1"
	args := []any{}
	n := 0

	if filter.Status != "" {
		n++
		where += fmt.Sprintf(" AND status = $%d", n)
		args = append(args, filter.Status)
	}
	if filter.Location != "" {
		n++
		where += fmt.Sprintf(" AND location = $%d", n)
		args = append(args, filter.Location)
	}
	if filter.Supplier != "" {
		n++
		where += fmt.Sprintf(" AND supplier ILIKE '%%' || $%d || '%%'", n)
		args = append(args, filter.Supplier)
	}

	query := `SELECT ` + deliveryColumns + ` FROM deliveries` + where +
		fmt.Sprintf(" ORDER BY order_date DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var out []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(&d.ID, &d.DeliveryNumber, &d.Supplier, &d.Location, &d.Status,
			&d.OrderDate, &d.ExpectedDate, &d.ReceivedDate, &d.TotalCost, &d.Notes,
			&d.CreatedBy, &d.ReceivedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, d := range out {
		if err := r.loadItems(d); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// UpdateStatus cambia sólo el estado de la cabecera.
func (r *DeliveryRepo) UpdateStatus(id int64, status entity.DeliveryStatus) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE deliveries SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update delivery status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkReceived cierra la entrega: estado, fechas, receptor y cantidades
// recibidas por línea.
func (r *DeliveryRepo) MarkReceived(d *entity.Delivery) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE deliveries
		SET status = $2, received_date = $3, received_by = $4, updated_at = $5
		WHERE id = $1`,
		d.ID, d.Status, d.ReceivedDate, d.ReceivedBy, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("mark delivery received: %w", err)
	}
	for _, item := range d.Items {
		_, err := r.q.Exec(context.Background(),
			`UPDATE delivery_items SET received_quantity = $2 WHERE id = $1`,
			item.ID, item.ReceivedQuantity)
		if err != nil {
			return fmt.Errorf("update delivery item: %w", err)
		}
	}
	return nil
}
