package entity

import "time"

// WarehouseInventory es el stock de un producto en la bodega central.
// Una fila por producto; la ausencia de fila equivale a cantidad cero.
type WarehouseInventory struct {
	ID            int64
	ProductID     int64
	Quantity      int
	LastRestocked *time.Time
	UpdatedAt     time.Time
}

// BarInventory es el stock de un producto en un bar concreto.
// Una fila por (producto, bar); la ausencia de fila equivale a cantidad cero.
type BarInventory struct {
	ID            int64
	ProductID     int64
	Location      Location
	Quantity      int
	LastRestocked *time.Time
	UpdatedAt     time.Time
}
