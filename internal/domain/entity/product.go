package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del bar.
// MinStockLevel y ReorderPoint parametrizan la clasificación de stock;
// las cantidades viven en WarehouseInventory / BarInventory.
type Product struct {
	ID            int64
	Name          string
	Category      Category
	Barcode       string // opcional
	SKU           string // opcional
	Supplier      string // opcional
	Description   string
	Unit          string // "pieces", "bottles", "liters", ...
	MinStockLevel int
	ReorderPoint  int
	Cost          *decimal.Decimal // costo de compra, opcional
	Price         *decimal.Decimal // precio de venta, opcional
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
