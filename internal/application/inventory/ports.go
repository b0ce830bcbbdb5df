package inventory

import (
	"context"

	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		warehouseRepo repository.WarehouseInventoryRepository,
		barRepo repository.BarInventoryRepository,
		transferRepo repository.StockTransferRepository,
		alertRepo repository.StockAlertRepository,
	) error) error

	// RunReceive variante para la recepción de entregas: cierra la entrega y
	// alimenta el stock del destino (bodega o bar) en la misma transacción.
	RunReceive(ctx context.Context, fn func(
		deliveryRepo repository.DeliveryRepository,
		warehouseRepo repository.WarehouseInventoryRepository,
		barRepo repository.BarInventoryRepository,
		alertRepo repository.StockAlertRepository,
	) error) error
}
