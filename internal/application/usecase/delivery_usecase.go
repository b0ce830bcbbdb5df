package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bulldogbars/barstock-api/internal/application/activity"
	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/application/inventory"
	"github.com/bulldogbars/barstock-api/internal/domain"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

// DeliveryUseCase ciclo de vida de entregas de proveedor. La recepción cierra
// la entrega y alimenta el stock del destino en una sola transacción.
type DeliveryUseCase struct {
	deliveryRepo repository.DeliveryRepository
	productRepo  repository.ProductRepository
	txRunner     inventory.TxRunner
	recorder     *activity.Recorder
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(
	deliveryRepo repository.DeliveryRepository,
	productRepo repository.ProductRepository,
	txRunner inventory.TxRunner,
	recorder *activity.Recorder,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		deliveryRepo: deliveryRepo,
		productRepo:  productRepo,
		txRunner:     txRunner,
		recorder:     recorder,
	}
}

// Create da de alta una entrega pendiente con sus líneas.
// TotalCost se calcula de las líneas que traen costo unitario.
func (uc *DeliveryUseCase) Create(in dto.CreateDeliveryRequest, actor dto.Actor) (*dto.DeliveryResponse, error) {
	if !validStockLocation(in.Location) {
		return nil, domain.ErrInvalidLocation
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	total := decimal.Zero
	hasCost := false
	items := make([]entity.DeliveryItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.OrderedQuantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if it.UnitCost != nil {
			hasCost = true
			total = total.Add(it.UnitCost.Mul(decimal.NewFromInt(int64(it.OrderedQuantity))))
		}
		items = append(items, entity.DeliveryItem{
			ProductID:       it.ProductID,
			OrderedQuantity: it.OrderedQuantity,
			UnitCost:        it.UnitCost,
		})
	}

	now := time.Now()
	delivery := &entity.Delivery{
		DeliveryNumber: newDeliveryNumber(),
		Supplier:       in.Supplier,
		Location:       in.Location,
		Status:         entity.DeliveryPending,
		OrderDate:      now,
		ExpectedDate:   in.ExpectedDate,
		Notes:          in.Notes,
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
		Items:          items,
	}
	if hasCost {
		delivery.TotalCost = &total
	}
	if err := uc.deliveryRepo.Create(delivery); err != nil {
		return nil, err
	}

	uc.recorder.Record(actor, entity.ActivityDelivery, "delivery", &delivery.ID,
		"entrega "+delivery.DeliveryNumber+" creada para "+delivery.Supplier, nil)
	resp := dto.FromDelivery(delivery)
	return &resp, nil
}

// Get devuelve una entrega con sus líneas.
func (uc *DeliveryUseCase) Get(id int64) (*dto.DeliveryResponse, error) {
	delivery, err := uc.mustGet(id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromDelivery(delivery)
	return &resp, nil
}

// List devuelve entregas filtradas.
func (uc *DeliveryUseCase) List(in dto.DeliveryFilterRequest) ([]dto.DeliveryResponse, error) {
	in.DefaultPage()
	if in.Status != "" && !entity.DeliveryStatus(in.Status).Valid() {
		return nil, domain.ErrInvalidInput
	}
	deliveries, err := uc.deliveryRepo.List(repository.DeliveryFilter{
		Status:   entity.DeliveryStatus(in.Status),
		Location: in.Location,
		Supplier: in.Supplier,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, dto.FromDelivery(d))
	}
	return out, nil
}

// UpdateStatus aplica una transición de estado validada. El estado delivered
// sólo se alcanza por Receive, que además mueve el stock.
func (uc *DeliveryUseCase) UpdateStatus(id int64, in dto.UpdateDeliveryStatusRequest, actor dto.Actor) (*dto.DeliveryResponse, error) {
	next := entity.DeliveryStatus(in.Status)
	if !next.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if next == entity.DeliveryDelivered {
		return nil, domain.ErrInvalidStatusChange
	}

	delivery, err := uc.mustGet(id)
	if err != nil {
		return nil, err
	}
	if !delivery.CanTransitionTo(next) {
		return nil, domain.ErrInvalidStatusChange
	}
	if err := uc.deliveryRepo.UpdateStatus(id, next); err != nil {
		return nil, err
	}
	delivery.Status = next

	uc.recorder.Record(actor, entity.ActivityDelivery, "delivery", &id,
		"entrega "+delivery.DeliveryNumber+" pasó a "+string(next), nil)
	resp := dto.FromDelivery(delivery)
	return &resp, nil
}

// Receive cierra la entrega y suma las cantidades recibidas al stock del
// destino, todo en una transacción: si algo falla no queda ni la entrega
// cerrada ni stock a medias. Las líneas sin override se reciben completas.
func (uc *DeliveryUseCase) Receive(ctx context.Context, id int64, in dto.ReceiveDeliveryRequest, actor dto.Actor) (*dto.DeliveryResponse, error) {
	overrides := make(map[int64]int, len(in.Items))
	for _, it := range in.Items {
		if it.ReceivedQuantity < 0 {
			return nil, domain.ErrInvalidQuantity
		}
		overrides[it.ProductID] = it.ReceivedQuantity
	}

	now := time.Now()
	var received *entity.Delivery

	err := uc.txRunner.RunReceive(ctx, func(
		deliveryRepo repository.DeliveryRepository,
		warehouseRepo repository.WarehouseInventoryRepository,
		barRepo repository.BarInventoryRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		delivery, err := deliveryRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if delivery == nil {
			return domain.ErrNotFound
		}
		if delivery.Status.Terminal() {
			return domain.ErrDeliveryAlreadyClosed
		}

		for i := range delivery.Items {
			item := &delivery.Items[i]
			qty := item.OrderedQuantity
			if override, ok := overrides[item.ProductID]; ok {
				qty = override
			}
			item.ReceivedQuantity = qty
			if qty == 0 {
				continue
			}

			product, err := uc.productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}

			newQty, err := addStock(warehouseRepo, barRepo, delivery.Location, item.ProductID, qty, now)
			if err != nil {
				return err
			}
			if err := inventory.EvaluateAlert(alertRepo, product, delivery.Location, newQty, now); err != nil {
				return err
			}
		}

		delivery.Status = entity.DeliveryDelivered
		delivery.ReceivedDate = &now
		delivery.ReceivedBy = &actor.UserID
		delivery.UpdatedAt = now
		if err := deliveryRepo.MarkReceived(delivery); err != nil {
			return err
		}
		received = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(actor, entity.ActivityDelivery, "delivery", &id,
		"entrega "+received.DeliveryNumber+" recibida en "+received.Location, nil)
	resp := dto.FromDelivery(received)
	return &resp, nil
}

func (uc *DeliveryUseCase) mustGet(id int64) (*entity.Delivery, error) {
	delivery, err := uc.deliveryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrNotFound
	}
	return delivery, nil
}

// addStock suma cantidad al destino de la entrega dentro de la tx y devuelve
// la cantidad resultante.
func addStock(
	warehouseRepo repository.WarehouseInventoryRepository,
	barRepo repository.BarInventoryRepository,
	location string,
	productID int64,
	qty int,
	now time.Time,
) (int, error) {
	if location == entity.FromWarehouse {
		inv, err := warehouseRepo.GetForUpdate(productID)
		if err != nil {
			return 0, err
		}
		inv.Quantity += qty
		inv.LastRestocked = &now
		inv.UpdatedAt = now
		return inv.Quantity, warehouseRepo.Upsert(inv)
	}
	inv, err := barRepo.GetForUpdate(productID, entity.Location(location))
	if err != nil {
		return 0, err
	}
	inv.Quantity += qty
	inv.LastRestocked = &now
	inv.UpdatedAt = now
	return inv.Quantity, barRepo.Upsert(inv)
}

// validStockLocation acepta la bodega central o un bar conocido.
func validStockLocation(location string) bool {
	return location == entity.FromWarehouse || entity.Location(location).Valid()
}

func newDeliveryNumber() string {
	return "DLV-" + strings.ToUpper(uuid.New().String()[:8])
}
