package repository

import "github.com/bulldogbars/barstock-api/internal/domain/entity"

// DeliveryFilter filtros de listado de entregas.
type DeliveryFilter struct {
	Status   entity.DeliveryStatus
	Location string
	Supplier string
	Limit    int
	Offset   int
}

// DeliveryRepository define el puerto de persistencia para Delivery.
// Create inserta cabecera e ítems juntos; GetByID siempre trae los ítems.
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	GetByID(id int64) (*entity.Delivery, error)
	// GetForUpdate bloquea la cabecera dentro de una tx (recepción de entregas).
	GetForUpdate(id int64) (*entity.Delivery, error)
	List(filter DeliveryFilter) ([]*entity.Delivery, error)
	UpdateStatus(id int64, status entity.DeliveryStatus) error
	// MarkReceived cierra la entrega: estado delivered, fechas, receptor y
	// cantidades recibidas por ítem.
	MarkReceived(delivery *entity.Delivery) error
}
