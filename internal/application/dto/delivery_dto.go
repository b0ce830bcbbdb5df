package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
)

// CreateDeliveryRequest alta de una entrega de proveedor con sus líneas.
type CreateDeliveryRequest struct {
	Supplier     string                      `json:"supplier" validate:"required,min=1,max=200"`
	Location     string                      `json:"location" validate:"required"`
	ExpectedDate *time.Time                  `json:"expectedDate"`
	Notes        string                      `json:"notes"`
	Items        []CreateDeliveryItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateDeliveryItemRequest línea de pedido.
type CreateDeliveryItemRequest struct {
	ProductID       int64            `json:"productId" validate:"required,min=1"`
	OrderedQuantity int              `json:"orderedQuantity" validate:"required,min=1"`
	UnitCost        *decimal.Decimal `json:"unitCost"`
}

// UpdateDeliveryStatusRequest cambio de estado de una entrega.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ReceiveDeliveryRequest recepción de una entrega: cantidades realmente
// recibidas por línea. Las líneas omitidas se reciben completas.
type ReceiveDeliveryRequest struct {
	Items []ReceiveDeliveryItemRequest `json:"items" validate:"omitempty,dive"`
}

// ReceiveDeliveryItemRequest cantidad recibida de una línea.
type ReceiveDeliveryItemRequest struct {
	ProductID        int64 `json:"productId" validate:"required,min=1"`
	ReceivedQuantity int   `json:"receivedQuantity" validate:"min=0"`
}

// DeliveryFilterRequest filtros del listado de entregas.
type DeliveryFilterRequest struct {
	PageRequest
	Status   string `query:"status"`
	Location string `query:"location"`
	Supplier string `query:"supplier"`
}

// DeliveryItemResponse línea de entrega.
type DeliveryItemResponse struct {
	ID               int64            `json:"id"`
	ProductID        int64            `json:"productId"`
	OrderedQuantity  int              `json:"orderedQuantity"`
	ReceivedQuantity int              `json:"receivedQuantity"`
	UnitCost         *decimal.Decimal `json:"unitCost,omitempty"`
}

// DeliveryResponse entrega con sus líneas.
type DeliveryResponse struct {
	ID             int64                  `json:"id"`
	DeliveryNumber string                 `json:"deliveryNumber"`
	Supplier       string                 `json:"supplier"`
	Location       string                 `json:"location"`
	Status         string                 `json:"status"`
	OrderDate      time.Time              `json:"orderDate"`
	ExpectedDate   *time.Time             `json:"expectedDate,omitempty"`
	ReceivedDate   *time.Time             `json:"receivedDate,omitempty"`
	TotalCost      *decimal.Decimal       `json:"totalCost,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
	CreatedBy      int64                  `json:"createdBy"`
	ReceivedBy     *int64                 `json:"receivedBy,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	Items          []DeliveryItemResponse `json:"items"`
}

// FromDelivery mapea la entidad (con líneas) a su respuesta.
func FromDelivery(d *entity.Delivery) DeliveryResponse {
	items := make([]DeliveryItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, DeliveryItemResponse{
			ID:               it.ID,
			ProductID:        it.ProductID,
			OrderedQuantity:  it.OrderedQuantity,
			ReceivedQuantity: it.ReceivedQuantity,
			UnitCost:         it.UnitCost,
		})
	}
	return DeliveryResponse{
		ID:             d.ID,
		DeliveryNumber: d.DeliveryNumber,
		Supplier:       d.Supplier,
		Location:       d.Location,
		Status:         string(d.Status),
		OrderDate:      d.OrderDate,
		ExpectedDate:   d.ExpectedDate,
		ReceivedDate:   d.ReceivedDate,
		TotalCost:      d.TotalCost,
		Notes:          d.Notes,
		CreatedBy:      d.CreatedBy,
		ReceivedBy:     d.ReceivedBy,
		CreatedAt:      d.CreatedAt,
		Items:          items,
	}
}
