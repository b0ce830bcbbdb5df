package entity

import "time"

// FromWarehouse es el origen fijo de todo traslado: la bodega central.
const FromWarehouse = "warehouse"

// StockTransfer es el registro inmutable de un traslado bodega → bar.
// Se inserta en la misma transacción que mueve las cantidades.
type StockTransfer struct {
	ID            int64
	ProductID     int64
	FromLocation  string // siempre FromWarehouse
	ToLocation    Location
	Quantity      int // siempre > 0
	TransferredBy int64
	Notes         string
	CreatedAt     time.Time
}
