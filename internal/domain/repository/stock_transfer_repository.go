package repository

import "github.com/bulldogbars/barstock-api/internal/domain/entity"

// TransferFilter filtros de listado de traslados.
type TransferFilter struct {
	ProductID  int64
	ToLocation entity.Location
	Limit      int
	Offset     int
}

// StockTransferRepository define el puerto del registro inmutable de traslados.
// Sólo inserta y lista; un traslado nunca se modifica.
type StockTransferRepository interface {
	Create(transfer *entity.StockTransfer) error
	List(filter TransferFilter) ([]*entity.StockTransfer, error)
}
