package repository

import (
	"time"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
)

// InventoryRow es la fila de inventario con los datos del producto que las
// vistas necesitan para clasificar stock. La produce la DB con un JOIN.
type InventoryRow struct {
	ProductID     int64
	ProductName   string
	Category      entity.Category
	Unit          string
	MinStockLevel int
	ReorderPoint  int
	Quantity      int
	LastRestocked *time.Time
}

// WarehouseInventoryRepository define el puerto de stock de bodega.
// Get y GetForUpdate materializan la ausencia de fila como cantidad cero;
// GetForUpdate además bloquea la fila (SELECT FOR UPDATE) dentro de una tx.
type WarehouseInventoryRepository interface {
	Get(productID int64) (*entity.WarehouseInventory, error)
	GetForUpdate(productID int64) (*entity.WarehouseInventory, error)
	Upsert(inv *entity.WarehouseInventory) error
	List() ([]InventoryRow, error)
}

// BarInventoryRepository define el puerto de stock por bar.
// Misma semántica de fila ausente = cero que el de bodega.
type BarInventoryRepository interface {
	Get(productID int64, location entity.Location) (*entity.BarInventory, error)
	GetForUpdate(productID int64, location entity.Location) (*entity.BarInventory, error)
	Upsert(inv *entity.BarInventory) error
	ListByLocation(location entity.Location) ([]InventoryRow, error)
	// ListByProduct devuelve las filas existentes del producto en todos los bares.
	ListByProduct(productID int64) ([]*entity.BarInventory, error)
}
