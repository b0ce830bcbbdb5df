package repository

import "github.com/bulldogbars/barstock-api/internal/domain/entity"

// StockAlertRepository define el puerto de alertas de stock bajo.
// El ledger abre y resuelve alertas dentro de la misma transacción que mueve
// las cantidades; las vistas sólo leen las no resueltas.
type StockAlertRepository interface {
	Create(alert *entity.StockAlert) error
	// GetOpen devuelve la alerta no resuelta del producto en la ubicación, o nil.
	GetOpen(productID int64, location string) (*entity.StockAlert, error)
	// ResolveOpen marca como resueltas las alertas abiertas del producto/ubicación.
	ResolveOpen(productID int64, location string) error
	ListUnresolved() ([]*entity.StockAlert, error)
}
