package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulldogbars/barstock-api/internal/application/activity"
	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/application/usecase"
	"github.com/bulldogbars/barstock-api/internal/domain"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
	"github.com/bulldogbars/barstock-api/pkg/logger"
)

// ── fakes mínimos para el ciclo de entregas ──────────────────────────────────

type fakeDeliveryRepo struct {
	deliveries map[int64]entity.Delivery
	nextID     int64
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{deliveries: make(map[int64]entity.Delivery)}
}

func (r *fakeDeliveryRepo) Create(d *entity.Delivery) error {
	r.nextID++
	d.ID = r.nextID
	for i := range d.Items {
		d.Items[i].ID = int64(i + 1)
		d.Items[i].DeliveryID = d.ID
	}
	r.deliveries[d.ID] = cloneDelivery(*d)
	return nil
}

func (r *fakeDeliveryRepo) GetByID(id int64) (*entity.Delivery, error) {
	d, ok := r.deliveries[id]
	if !ok {
		return nil, nil
	}
	cp := cloneDelivery(d)
	return &cp, nil
}

func (r *fakeDeliveryRepo) GetForUpdate(id int64) (*entity.Delivery, error) {
	return r.GetByID(id)
}

func (r *fakeDeliveryRepo) List(repository.DeliveryFilter) ([]*entity.Delivery, error) {
	out := make([]*entity.Delivery, 0, len(r.deliveries))
	for _, d := range r.deliveries {
		cp := cloneDelivery(d)
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeDeliveryRepo) UpdateStatus(id int64, status entity.DeliveryStatus) error {
	d := r.deliveries[id]
	d.Status = status
	r.deliveries[id] = d
	return nil
}

func (r *fakeDeliveryRepo) MarkReceived(d *entity.Delivery) error {
	r.deliveries[d.ID] = cloneDelivery(*d)
	return nil
}

func cloneDelivery(d entity.Delivery) entity.Delivery {
	d.Items = append([]entity.DeliveryItem(nil), d.Items...)
	return d
}

type fakeProductRepo struct{ products map[int64]entity.Product }

func (r *fakeProductRepo) Create(p *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}
func (r *fakeProductRepo) GetByBarcode(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                 { return nil }
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (r *fakeProductRepo) Deactivate(int64) error { return nil }

type fakeWarehouseRepo struct{ rows map[int64]entity.WarehouseInventory }

func (r *fakeWarehouseRepo) Get(productID int64) (*entity.WarehouseInventory, error) {
	row, ok := r.rows[productID]
	if !ok {
		return &entity.WarehouseInventory{ProductID: productID}, nil
	}
	cp := row
	return &cp, nil
}
func (r *fakeWarehouseRepo) GetForUpdate(productID int64) (*entity.WarehouseInventory, error) {
	return r.Get(productID)
}
func (r *fakeWarehouseRepo) Upsert(inv *entity.WarehouseInventory) error {
	r.rows[inv.ProductID] = *inv
	return nil
}
func (r *fakeWarehouseRepo) List() ([]repository.InventoryRow, error) { return nil, nil }

type barKey struct {
	productID int64
	location  entity.Location
}

type fakeBarRepo struct{ rows map[barKey]entity.BarInventory }

func (r *fakeBarRepo) Get(productID int64, location entity.Location) (*entity.BarInventory, error) {
	row, ok := r.rows[barKey{productID, location}]
	if !ok {
		return &entity.BarInventory{ProductID: productID, Location: location}, nil
	}
	cp := row
	return &cp, nil
}
func (r *fakeBarRepo) GetForUpdate(productID int64, location entity.Location) (*entity.BarInventory, error) {
	return r.Get(productID, location)
}
func (r *fakeBarRepo) Upsert(inv *entity.BarInventory) error {
	r.rows[barKey{inv.ProductID, inv.Location}] = *inv
	return nil
}
func (r *fakeBarRepo) ListByLocation(entity.Location) ([]repository.InventoryRow, error) {
	return nil, nil
}
func (r *fakeBarRepo) ListByProduct(int64) ([]*entity.BarInventory, error) { return nil, nil }

type fakeAlertRepo struct{ alerts []entity.StockAlert }

func (r *fakeAlertRepo) Create(a *entity.StockAlert) error {
	r.alerts = append(r.alerts, *a)
	return nil
}
func (r *fakeAlertRepo) GetOpen(productID int64, location string) (*entity.StockAlert, error) {
	for i := range r.alerts {
		if r.alerts[i].ProductID == productID && r.alerts[i].Location == location && !r.alerts[i].IsResolved {
			cp := r.alerts[i]
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeAlertRepo) ResolveOpen(productID int64, location string) error {
	for i := range r.alerts {
		if r.alerts[i].ProductID == productID && r.alerts[i].Location == location {
			r.alerts[i].IsResolved = true
		}
	}
	return nil
}
func (r *fakeAlertRepo) ListUnresolved() ([]*entity.StockAlert, error) { return nil, nil }

type nullActivityRepo struct{}

func (nullActivityRepo) Create(*entity.ActivityLog) error { return nil }
func (nullActivityRepo) List(repository.ActivityFilter) ([]*entity.ActivityLog, error) {
	return nil, nil
}

// fakeReceiveRunner pasa los fakes tal cual; los tests de rollback del ledger
// viven en el paquete inventory.
type fakeReceiveRunner struct {
	deliveries *fakeDeliveryRepo
	warehouse  *fakeWarehouseRepo
	bars       *fakeBarRepo
	alerts     *fakeAlertRepo
}

func (r *fakeReceiveRunner) Run(_ context.Context, fn func(
	repository.WarehouseInventoryRepository,
	repository.BarInventoryRepository,
	repository.StockTransferRepository,
	repository.StockAlertRepository,
) error) error {
	return fn(r.warehouse, r.bars, nil, r.alerts)
}

func (r *fakeReceiveRunner) RunReceive(_ context.Context, fn func(
	repository.DeliveryRepository,
	repository.WarehouseInventoryRepository,
	repository.BarInventoryRepository,
	repository.StockAlertRepository,
) error) error {
	return fn(r.deliveries, r.warehouse, r.bars, r.alerts)
}

type deliveryFixture struct {
	uc         *usecase.DeliveryUseCase
	deliveries *fakeDeliveryRepo
	warehouse  *fakeWarehouseRepo
	bars       *fakeBarRepo
}

func newDeliveryFixture() *deliveryFixture {
	f := &deliveryFixture{
		deliveries: newFakeDeliveryRepo(),
		warehouse:  &fakeWarehouseRepo{rows: make(map[int64]entity.WarehouseInventory)},
		bars:       &fakeBarRepo{rows: make(map[barKey]entity.BarInventory)},
	}
	products := &fakeProductRepo{products: map[int64]entity.Product{
		1: {ID: 1, Name: "Prosecco", Unit: "bottles", MinStockLevel: 5, ReorderPoint: 12, IsActive: true},
		2: {ID: 2, Name: "Lime juice", Unit: "liters", MinStockLevel: 3, ReorderPoint: 8, IsActive: true},
	}}
	runner := &fakeReceiveRunner{
		deliveries: f.deliveries,
		warehouse:  f.warehouse,
		bars:       f.bars,
		alerts:     &fakeAlertRepo{},
	}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	recorder := activity.NewRecorder(nullActivityRepo{}, log)
	f.uc = usecase.NewDeliveryUseCase(f.deliveries, products, runner, recorder)
	return f
}

var warehouseActor = dto.Actor{UserID: 3, Role: entity.RoleWarehouseManager}

func createPendingDelivery(t *testing.T, f *deliveryFixture, location string) dto.DeliveryResponse {
	t.Helper()
	resp, err := f.uc.Create(dto.CreateDeliveryRequest{
		Supplier: "Hurtownia Alkoholi",
		Location: location,
		Items: []dto.CreateDeliveryItemRequest{
			{ProductID: 1, OrderedQuantity: 24},
			{ProductID: 2, OrderedQuantity: 10},
		},
	}, warehouseActor)
	require.NoError(t, err)
	return *resp
}

// ── creación y transiciones ───────────────────────────────────────────────────

func TestCreateDelivery_GeneraNumeroYQuedaPendiente(t *testing.T) {
	f := newDeliveryFixture()

	resp := createPendingDelivery(t, f, entity.FromWarehouse)

	assert.Regexp(t, `^DLV-[0-9A-F]{8}$`, resp.DeliveryNumber)
	assert.Equal(t, string(entity.DeliveryPending), resp.Status)
	assert.Len(t, resp.Items, 2)
}

func TestCreateDelivery_UbicacionInvalida(t *testing.T) {
	f := newDeliveryFixture()

	_, err := f.uc.Create(dto.CreateDeliveryRequest{
		Supplier: "X",
		Location: "sucursal_inexistente",
		Items:    []dto.CreateDeliveryItemRequest{{ProductID: 1, OrderedQuantity: 1}},
	}, warehouseActor)
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)
}

func TestCreateDelivery_LineaSinCantidad(t *testing.T) {
	f := newDeliveryFixture()

	_, err := f.uc.Create(dto.CreateDeliveryRequest{
		Supplier: "X",
		Location: entity.FromWarehouse,
		Items:    []dto.CreateDeliveryItemRequest{{ProductID: 1, OrderedQuantity: 0}},
	}, warehouseActor)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestUpdateStatus_TransicionesValidas(t *testing.T) {
	f := newDeliveryFixture()
	created := createPendingDelivery(t, f, entity.FromWarehouse)

	resp, err := f.uc.UpdateStatus(created.ID, dto.UpdateDeliveryStatusRequest{Status: "in_transit"}, warehouseActor)
	require.NoError(t, err)
	assert.Equal(t, string(entity.DeliveryInTransit), resp.Status)

	resp, err = f.uc.UpdateStatus(created.ID, dto.UpdateDeliveryStatusRequest{Status: "cancelled"}, warehouseActor)
	require.NoError(t, err)
	assert.Equal(t, string(entity.DeliveryCancelled), resp.Status)
}

func TestUpdateStatus_EstadoTerminalNoTransiciona(t *testing.T) {
	f := newDeliveryFixture()
	created := createPendingDelivery(t, f, entity.FromWarehouse)

	_, err := f.uc.UpdateStatus(created.ID, dto.UpdateDeliveryStatusRequest{Status: "cancelled"}, warehouseActor)
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(created.ID, dto.UpdateDeliveryStatusRequest{Status: "in_transit"}, warehouseActor)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusChange)
}

func TestUpdateStatus_DeliveredSoloPorRecepcion(t *testing.T) {
	f := newDeliveryFixture()
	created := createPendingDelivery(t, f, entity.FromWarehouse)

	_, err := f.uc.UpdateStatus(created.ID, dto.UpdateDeliveryStatusRequest{Status: "delivered"}, warehouseActor)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusChange,
		"delivered debe pasar por Receive para mover stock")
}

// ── recepción ─────────────────────────────────────────────────────────────────

func TestReceive_AlimentaElStockDeBodega(t *testing.T) {
	f := newDeliveryFixture()
	created := createPendingDelivery(t, f, entity.FromWarehouse)
	f.warehouse.rows[1] = entity.WarehouseInventory{ProductID: 1, Quantity: 6}

	resp, err := f.uc.Receive(context.Background(), created.ID, dto.ReceiveDeliveryRequest{}, warehouseActor)

	require.NoError(t, err)
	assert.Equal(t, string(entity.DeliveryDelivered), resp.Status)
	assert.NotNil(t, resp.ReceivedDate)
	assert.Equal(t, 30, f.warehouse.rows[1].Quantity, "6 existentes + 24 recibidas")
	assert.Equal(t, 10, f.warehouse.rows[2].Quantity)
	for _, item := range resp.Items {
		assert.Equal(t, item.OrderedQuantity, item.ReceivedQuantity,
			"sin override se recibe la cantidad pedida completa")
	}
}

func TestReceive_RespetaCantidadesParciales(t *testing.T) {
	f := newDeliveryFixture()
	created := createPendingDelivery(t, f, entity.FromWarehouse)

	resp, err := f.uc.Receive(context.Background(), created.ID, dto.ReceiveDeliveryRequest{
		Items: []dto.ReceiveDeliveryItemRequest{{ProductID: 1, ReceivedQuantity: 20}},
	}, warehouseActor)

	require.NoError(t, err)
	assert.Equal(t, 20, f.warehouse.rows[1].Quantity, "llegaron 20 de las 24 pedidas")
	assert.Equal(t, 10, f.warehouse.rows[2].Quantity, "la línea sin override se recibe completa")
	assert.Equal(t, 20, resp.Items[0].ReceivedQuantity)
}

func TestReceive_EntregaDestinadaAUnBar(t *testing.T) {
	f := newDeliveryFixture()
	created := createPendingDelivery(t, f, string(entity.LocationGinBar))

	_, err := f.uc.Receive(context.Background(), created.ID, dto.ReceiveDeliveryRequest{}, warehouseActor)

	require.NoError(t, err)
	assert.Equal(t, 24, f.bars.rows[barKey{1, entity.LocationGinBar}].Quantity)
	assert.Equal(t, 0, f.warehouse.rows[1].Quantity, "el stock de bodega no se toca")
}

func TestReceive_EntregaYaCerrada(t *testing.T) {
	f := newDeliveryFixture()
	created := createPendingDelivery(t, f, entity.FromWarehouse)

	_, err := f.uc.Receive(context.Background(), created.ID, dto.ReceiveDeliveryRequest{}, warehouseActor)
	require.NoError(t, err)

	_, err = f.uc.Receive(context.Background(), created.ID, dto.ReceiveDeliveryRequest{}, warehouseActor)
	assert.ErrorIs(t, err, domain.ErrDeliveryAlreadyClosed,
		"recibir dos veces duplicaría el stock")
}

func TestReceive_CantidadNegativaEsInvalida(t *testing.T) {
	f := newDeliveryFixture()
	created := createPendingDelivery(t, f, entity.FromWarehouse)

	_, err := f.uc.Receive(context.Background(), created.ID, dto.ReceiveDeliveryRequest{
		Items: []dto.ReceiveDeliveryItemRequest{{ProductID: 1, ReceivedQuantity: -2}},
	}, warehouseActor)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestReceive_RefrescaLastRestocked(t *testing.T) {
	f := newDeliveryFixture()
	created := createPendingDelivery(t, f, entity.FromWarehouse)
	before := time.Now()

	_, err := f.uc.Receive(context.Background(), created.ID, dto.ReceiveDeliveryRequest{}, warehouseActor)
	require.NoError(t, err)

	row := f.warehouse.rows[1]
	require.NotNil(t, row.LastRestocked)
	assert.False(t, row.LastRestocked.Before(before))
}
