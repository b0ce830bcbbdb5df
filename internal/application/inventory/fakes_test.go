package inventory_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

// Fakes en memoria para ejercitar el ledger sin PostgreSQL. El fakeTxRunner
// serializa con un mutex (equivalente al bloqueo de fila) y restaura un
// snapshot si la función falla (equivalente al rollback).

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[int64]entity.Product
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[int64]entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *fakeProductRepo) GetByBarcode(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := p
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeProductRepo) Deactivate(id int64) error { return nil }

type fakeWarehouseRepo struct {
	rows map[int64]entity.WarehouseInventory
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{rows: make(map[int64]entity.WarehouseInventory)}
}

func (r *fakeWarehouseRepo) Get(productID int64) (*entity.WarehouseInventory, error) {
	row, ok := r.rows[productID]
	if !ok {
		return &entity.WarehouseInventory{ProductID: productID}, nil
	}
	cp := row
	return &cp, nil
}

// GetForUpdate materializa la fila en cero si no existe, igual que el
// adaptador de PostgreSQL: la fila bloqueada existe antes de que el ledger
// calcule sobre ella.
func (r *fakeWarehouseRepo) GetForUpdate(productID int64) (*entity.WarehouseInventory, error) {
	if _, ok := r.rows[productID]; !ok {
		r.rows[productID] = entity.WarehouseInventory{ProductID: productID}
	}
	return r.Get(productID)
}

func (r *fakeWarehouseRepo) Upsert(inv *entity.WarehouseInventory) error {
	r.rows[inv.ProductID] = *inv
	return nil
}

func (r *fakeWarehouseRepo) List() ([]repository.InventoryRow, error) {
	out := make([]repository.InventoryRow, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, repository.InventoryRow{ProductID: row.ProductID, Quantity: row.Quantity})
	}
	return out, nil
}

type barKey struct {
	productID int64
	location  entity.Location
}

type fakeBarRepo struct {
	rows map[barKey]entity.BarInventory
}

func newFakeBarRepo() *fakeBarRepo {
	return &fakeBarRepo{rows: make(map[barKey]entity.BarInventory)}
}

func (r *fakeBarRepo) Get(productID int64, location entity.Location) (*entity.BarInventory, error) {
	row, ok := r.rows[barKey{productID, location}]
	if !ok {
		return &entity.BarInventory{ProductID: productID, Location: location}, nil
	}
	cp := row
	return &cp, nil
}

// GetForUpdate materializa la fila en cero si no existe, como el adaptador
// de PostgreSQL.
func (r *fakeBarRepo) GetForUpdate(productID int64, location entity.Location) (*entity.BarInventory, error) {
	if _, ok := r.rows[barKey{productID, location}]; !ok {
		r.rows[barKey{productID, location}] = entity.BarInventory{ProductID: productID, Location: location}
	}
	return r.Get(productID, location)
}

func (r *fakeBarRepo) Upsert(inv *entity.BarInventory) error {
	r.rows[barKey{inv.ProductID, inv.Location}] = *inv
	return nil
}

func (r *fakeBarRepo) ListByLocation(location entity.Location) ([]repository.InventoryRow, error) {
	var out []repository.InventoryRow
	for k, row := range r.rows {
		if k.location == location {
			out = append(out, repository.InventoryRow{ProductID: row.ProductID, Quantity: row.Quantity})
		}
	}
	return out, nil
}

func (r *fakeBarRepo) ListByProduct(productID int64) ([]*entity.BarInventory, error) {
	var out []*entity.BarInventory
	for k, row := range r.rows {
		if k.productID == productID {
			cp := row
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeTransferRepo struct {
	transfers []entity.StockTransfer
	nextID    int64
}

func (r *fakeTransferRepo) Create(t *entity.StockTransfer) error {
	r.nextID++
	t.ID = r.nextID
	r.transfers = append(r.transfers, *t)
	return nil
}

func (r *fakeTransferRepo) List(repository.TransferFilter) ([]*entity.StockTransfer, error) {
	out := make([]*entity.StockTransfer, 0, len(r.transfers))
	for i := range r.transfers {
		cp := r.transfers[i]
		out = append(out, &cp)
	}
	return out, nil
}

type fakeAlertRepo struct {
	alerts []entity.StockAlert
	nextID int64
}

func (r *fakeAlertRepo) Create(a *entity.StockAlert) error {
	r.nextID++
	a.ID = r.nextID
	r.alerts = append(r.alerts, *a)
	return nil
}

func (r *fakeAlertRepo) GetOpen(productID int64, location string) (*entity.StockAlert, error) {
	for i := range r.alerts {
		a := r.alerts[i]
		if a.ProductID == productID && a.Location == location && !a.IsResolved {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAlertRepo) ResolveOpen(productID int64, location string) error {
	now := time.Now()
	for i := range r.alerts {
		if r.alerts[i].ProductID == productID && r.alerts[i].Location == location && !r.alerts[i].IsResolved {
			r.alerts[i].IsResolved = true
			r.alerts[i].ResolvedAt = &now
		}
	}
	return nil
}

func (r *fakeAlertRepo) ListUnresolved() ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for i := range r.alerts {
		if !r.alerts[i].IsResolved {
			cp := r.alerts[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeActivityRepo struct {
	mu      sync.Mutex
	entries []entity.ActivityLog
	failing bool
}

func (r *fakeActivityRepo) Create(log *entity.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errors.New("activity log caído")
	}
	r.entries = append(r.entries, *log)
	return nil
}

func (r *fakeActivityRepo) List(repository.ActivityFilter) ([]*entity.ActivityLog, error) {
	return nil, nil
}

// fakeTxRunner serializa las transacciones con un mutex y simula el rollback
// restaurando un snapshot del estado cuando fn devuelve error.
type fakeTxRunner struct {
	mu        sync.Mutex
	warehouse *fakeWarehouseRepo
	bars      *fakeBarRepo
	transfers *fakeTransferRepo
	alerts    *fakeAlertRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	warehouseRepo repository.WarehouseInventoryRepository,
	barRepo repository.BarInventoryRepository,
	transferRepo repository.StockTransferRepository,
	alertRepo repository.StockAlertRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.snapshot()
	if err := fn(r.warehouse, r.bars, r.transfers, r.alerts); err != nil {
		r.restore(snapshot)
		return err
	}
	return nil
}

func (r *fakeTxRunner) RunReceive(_ context.Context, fn func(
	deliveryRepo repository.DeliveryRepository,
	warehouseRepo repository.WarehouseInventoryRepository,
	barRepo repository.BarInventoryRepository,
	alertRepo repository.StockAlertRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.snapshot()
	if err := fn(nil, r.warehouse, r.bars, r.alerts); err != nil {
		r.restore(snapshot)
		return err
	}
	return nil
}

type txSnapshot struct {
	warehouse map[int64]entity.WarehouseInventory
	bars      map[barKey]entity.BarInventory
	transfers []entity.StockTransfer
	alerts    []entity.StockAlert
}

func (r *fakeTxRunner) snapshot() txSnapshot {
	s := txSnapshot{
		warehouse: make(map[int64]entity.WarehouseInventory, len(r.warehouse.rows)),
		bars:      make(map[barKey]entity.BarInventory, len(r.bars.rows)),
		transfers: append([]entity.StockTransfer(nil), r.transfers.transfers...),
		alerts:    append([]entity.StockAlert(nil), r.alerts.alerts...),
	}
	for k, v := range r.warehouse.rows {
		s.warehouse[k] = v
	}
	for k, v := range r.bars.rows {
		s.bars[k] = v
	}
	return s
}

func (r *fakeTxRunner) restore(s txSnapshot) {
	r.warehouse.rows = s.warehouse
	r.bars.rows = s.bars
	r.transfers.transfers = s.transfers
	r.alerts.alerts = s.alerts
}
