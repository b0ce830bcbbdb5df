package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bulldogbars/barstock-api/internal/application/inventory"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	warehouseRepo repository.WarehouseInventoryRepository,
	barRepo repository.BarInventoryRepository,
	transferRepo repository.StockTransferRepository,
	alertRepo repository.StockAlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	warehouseRepo := NewWarehouseInventoryRepository(tx)
	barRepo := NewBarInventoryRepository(tx)
	transferRepo := NewStockTransferRepository(tx)
	alertRepo := NewStockAlertRepository(tx)

	if err := fn(warehouseRepo, barRepo, transferRepo, alertRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReceive inicia una transacción con los repos de la recepción de entregas:
// cerrar la entrega y sumar stock en el destino quedan en el mismo commit.
func (r *TxRunner) RunReceive(ctx context.Context, fn func(
	deliveryRepo repository.DeliveryRepository,
	warehouseRepo repository.WarehouseInventoryRepository,
	barRepo repository.BarInventoryRepository,
	alertRepo repository.StockAlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	deliveryRepo := NewDeliveryRepository(tx)
	warehouseRepo := NewWarehouseInventoryRepository(tx)
	barRepo := NewBarInventoryRepository(tx)
	alertRepo := NewStockAlertRepository(tx)

	if err := fn(deliveryRepo, warehouseRepo, barRepo, alertRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
