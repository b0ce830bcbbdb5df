package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delivery representa un pedido a proveedor con su ciclo de vida:
// pending → in_transit → delivered, o cancelled desde cualquier estado no terminal.
type Delivery struct {
	ID             int64
	DeliveryNumber string // único, generado (DLV-...)
	Supplier       string
	Location       string // destino: "warehouse" o un bar
	Status         DeliveryStatus
	OrderDate      time.Time
	ExpectedDate   *time.Time
	ReceivedDate   *time.Time
	TotalCost      *decimal.Decimal
	Notes          string
	CreatedBy      int64
	ReceivedBy     *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Items          []DeliveryItem
}

// DeliveryItem es una línea de pedido. ReceivedQuantity queda en cero
// hasta que la entrega se recibe.
type DeliveryItem struct {
	ID               int64
	DeliveryID       int64
	ProductID        int64
	OrderedQuantity  int // siempre > 0
	ReceivedQuantity int
	UnitCost         *decimal.Decimal
}

// CanTransitionTo valida el cambio de estado de una entrega.
func (d Delivery) CanTransitionTo(next DeliveryStatus) bool {
	if !next.Valid() || d.Status.Terminal() {
		return false
	}
	switch d.Status {
	case DeliveryPending:
		return next == DeliveryInTransit || next == DeliveryDelivered || next == DeliveryCancelled
	case DeliveryInTransit:
		return next == DeliveryDelivered || next == DeliveryCancelled
	}
	return false
}
