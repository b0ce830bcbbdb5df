package repository

import "github.com/bulldogbars/barstock-api/internal/domain/entity"

// ProductFilter filtros de listado de productos. Search se compara contra
// nombre normalizado (sin tildes), barcode y SKU.
type ProductFilter struct {
	Search   string
	Category entity.Category
	Supplier string
	IsActive *bool
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter) ([]*entity.Product, int, error)
	// Deactivate baja lógica: el producto conserva historial de traslados.
	Deactivate(id int64) error
}
