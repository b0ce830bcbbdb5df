package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bulldogbars/barstock-api/internal/application/activity"
	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/domain"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

// LedgerUseCase es el motor transaccional de stock: ajustes de bodega y
// traslados bodega → bar con bloqueo de fila (SELECT FOR UPDATE) y
// Commit/Rollback. Toda mutación de cantidades pasa por aquí.
type LedgerUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseInventoryRepository
	barRepo       repository.BarInventoryRepository
	transferRepo  repository.StockTransferRepository
	alertRepo     repository.StockAlertRepository
	recorder      *activity.Recorder
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseInventoryRepository,
	barRepo repository.BarInventoryRepository,
	transferRepo repository.StockTransferRepository,
	alertRepo repository.StockAlertRepository,
	recorder *activity.Recorder,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		barRepo:       barRepo,
		transferRepo:  transferRepo,
		alertRepo:     alertRepo,
		recorder:      recorder,
	}
}

// WarehouseStock devuelve el stock de bodega de un producto.
// Un producto sin fila de inventario se lee como cantidad cero.
func (uc *LedgerUseCase) WarehouseStock(productID int64) (*entity.WarehouseInventory, error) {
	if _, err := uc.mustGetProduct(productID); err != nil {
		return nil, err
	}
	return uc.warehouseRepo.Get(productID)
}

// BarStock devuelve el stock de un producto en un bar.
func (uc *LedgerUseCase) BarStock(productID int64, location entity.Location) (*entity.BarInventory, error) {
	if !location.Valid() {
		return nil, domain.ErrInvalidLocation
	}
	if _, err := uc.mustGetProduct(productID); err != nil {
		return nil, err
	}
	return uc.barRepo.Get(productID, location)
}

// ListWarehouse devuelve el inventario de bodega con datos de producto.
func (uc *LedgerUseCase) ListWarehouse() ([]repository.InventoryRow, error) {
	return uc.warehouseRepo.List()
}

// ListBar devuelve el inventario de un bar con datos de producto.
func (uc *LedgerUseCase) ListBar(location entity.Location) ([]repository.InventoryRow, error) {
	if !location.Valid() {
		return nil, domain.ErrInvalidLocation
	}
	return uc.barRepo.ListByLocation(location)
}

// ListTransfers devuelve el historial de traslados.
func (uc *LedgerUseCase) ListTransfers(filter repository.TransferFilter) ([]*entity.StockTransfer, error) {
	return uc.transferRepo.List(filter)
}

// ListAlerts devuelve las alertas de stock bajo sin resolver.
func (uc *LedgerUseCase) ListAlerts() ([]*entity.StockAlert, error) {
	return uc.alertRepo.ListUnresolved()
}

// AggregateAll devuelve, por producto activo, el stock de bodega, el de cada
// bar y el total del sistema. Las ubicaciones sin fila aportan cero.
func (uc *LedgerUseCase) AggregateAll() ([]dto.AggregateStockResponse, error) {
	active := true
	products, _, err := uc.productRepo.List(repository.ProductFilter{IsActive: &active, Limit: 10000})
	if err != nil {
		return nil, err
	}

	warehouseRows, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, err
	}
	warehouseQty := make(map[int64]int, len(warehouseRows))
	for _, row := range warehouseRows {
		warehouseQty[row.ProductID] = row.Quantity
	}

	barQty := make(map[int64]map[string]int)
	for _, loc := range entity.Locations() {
		rows, err := uc.barRepo.ListByLocation(loc)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			if barQty[row.ProductID] == nil {
				barQty[row.ProductID] = make(map[string]int)
			}
			barQty[row.ProductID][string(loc)] = row.Quantity
		}
	}

	out := make([]dto.AggregateStockResponse, 0, len(products))
	for _, p := range products {
		bars := make(map[string]int, len(entity.Locations()))
		total := warehouseQty[p.ID]
		for _, loc := range entity.Locations() {
			q := barQty[p.ID][string(loc)]
			bars[string(loc)] = q
			total += q
		}
		out = append(out, dto.AggregateStockResponse{
			ProductID:   p.ID,
			ProductName: p.Name,
			Unit:        p.Unit,
			Warehouse:   warehouseQty[p.ID],
			Bars:        bars,
			Total:       total,
		})
	}
	return out, nil
}

// AdjustWarehouse fija (Quantity) o corrige (Adjustment) el stock de bodega de
// un producto. Exactamente uno de los dos campos debe venir informado; un
// resultado negativo rechaza la operación sin tocar el estado. El delta sobre
// un producto sin fila se aplica desde cero.
func (uc *LedgerUseCase) AdjustWarehouse(ctx context.Context, productID int64, input dto.AdjustStockRequest, actor dto.Actor) (*entity.WarehouseInventory, error) {
	if (input.Quantity == nil) == (input.Adjustment == nil) {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := uc.mustGetProduct(productID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var result *entity.WarehouseInventory
	var previous int

	err = uc.txRunner.Run(ctx, func(
		warehouseRepo repository.WarehouseInventoryRepository,
		_ repository.BarInventoryRepository,
		_ repository.StockTransferRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		// Bloquea la fila (SELECT FOR UPDATE); si no existe, el repositorio la
		// materializa en cero y la bloquea antes de devolverla.
		inv, err := warehouseRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		previous = inv.Quantity

		newQty := previous
		if input.Quantity != nil {
			newQty = *input.Quantity
		} else {
			newQty = previous + *input.Adjustment
		}
		if newQty < 0 {
			return domain.ErrInvalidQuantity
		}

		inv.Quantity = newQty
		inv.UpdatedAt = now
		if newQty > previous {
			inv.LastRestocked = &now
		}
		if err := warehouseRepo.Upsert(inv); err != nil {
			return err
		}
		if err := EvaluateAlert(alertRepo, product, entity.FromWarehouse, newQty, now); err != nil {
			return err
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(actor, entity.ActivityStockChange, "product", &productID,
		fmt.Sprintf("stock de bodega de %q: %d → %d", product.Name, previous, result.Quantity),
		map[string]interface{}{"previousQuantity": previous, "newQuantity": result.Quantity})
	return result, nil
}

// Transfer traslada stock de la bodega a un bar de forma atómica: descuenta
// bodega, incrementa el bar e inserta el registro inmutable del traslado en la
// misma transacción. El bloqueo de la fila de bodega serializa traslados
// concurrentes del mismo producto; nunca se puede sobregirar.
func (uc *LedgerUseCase) Transfer(ctx context.Context, input dto.TransferRequest, actor dto.Actor) (*entity.StockTransfer, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	toLocation := entity.Location(input.ToLocation)
	if !toLocation.Valid() {
		return nil, domain.ErrInvalidLocation
	}
	product, err := uc.mustGetProduct(input.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	transfer := &entity.StockTransfer{
		ProductID:     input.ProductID,
		FromLocation:  entity.FromWarehouse,
		ToLocation:    toLocation,
		Quantity:      input.Quantity,
		TransferredBy: actor.UserID,
		Notes:         input.Notes,
		CreatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		warehouseRepo repository.WarehouseInventoryRepository,
		barRepo repository.BarInventoryRepository,
		transferRepo repository.StockTransferRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		// Orden de bloqueo fijo: primero bodega, después bar.
		warehouse, err := warehouseRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if warehouse.Quantity < input.Quantity {
			return domain.ErrInsufficientStock
		}

		bar, err := barRepo.GetForUpdate(input.ProductID, toLocation)
		if err != nil {
			return err
		}

		warehouse.Quantity -= input.Quantity
		warehouse.UpdatedAt = now
		if err := warehouseRepo.Upsert(warehouse); err != nil {
			return err
		}

		bar.Quantity += input.Quantity
		bar.LastRestocked = &now
		bar.UpdatedAt = now
		if err := barRepo.Upsert(bar); err != nil {
			return err
		}

		if err := transferRepo.Create(transfer); err != nil {
			return err
		}

		if err := EvaluateAlert(alertRepo, product, entity.FromWarehouse, warehouse.Quantity, now); err != nil {
			return err
		}
		return EvaluateAlert(alertRepo, product, string(toLocation), bar.Quantity, now)
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(actor, entity.ActivityStockChange, "product", &input.ProductID,
		fmt.Sprintf("traslado de %d %s de %q a %s", input.Quantity, product.Unit, product.Name, toLocation),
		map[string]interface{}{"transactionId": uuid.New().String(), "toLocation": input.ToLocation, "quantity": input.Quantity})
	return transfer, nil
}

// EvaluateAlert abre o resuelve la alerta de stock bajo de un producto en una
// ubicación según la cantidad resultante. Se llama dentro de la transacción
// que mueve el stock: la alerta y la cantidad quedan siempre consistentes.
func EvaluateAlert(alertRepo repository.StockAlertRepository, product *entity.Product, location string, newQty int, now time.Time) error {
	if newQty <= product.MinStockLevel {
		open, err := alertRepo.GetOpen(product.ID, location)
		if err != nil {
			return err
		}
		if open != nil {
			return nil
		}
		return alertRepo.Create(&entity.StockAlert{
			ProductID:       product.ID,
			Location:        location,
			AlertType:       entity.AlertLowStock,
			CurrentQuantity: newQty,
			Threshold:       product.MinStockLevel,
			CreatedAt:       now,
		})
	}
	return alertRepo.ResolveOpen(product.ID, location)
}

func (uc *LedgerUseCase) mustGetProduct(productID int64) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}
