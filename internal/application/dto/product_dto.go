package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	Category      string           `json:"category" validate:"required"`
	Barcode       string           `json:"barcode"`
	SKU           string           `json:"sku"`
	Supplier      string           `json:"supplier"`
	Description   string           `json:"description"`
	Unit          string           `json:"unit"`
	MinStockLevel int              `json:"minStockLevel" validate:"min=0"`
	ReorderPoint  int              `json:"reorderPoint" validate:"min=0"`
	Cost          *decimal.Decimal `json:"cost"`
	Price         *decimal.Decimal `json:"price"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	Barcode       *string          `json:"barcode"`
	SKU           *string          `json:"sku"`
	Supplier      *string          `json:"supplier"`
	Description   *string          `json:"description"`
	Unit          *string          `json:"unit"`
	MinStockLevel *int             `json:"minStockLevel" validate:"omitempty,min=0"`
	ReorderPoint  *int             `json:"reorderPoint" validate:"omitempty,min=0"`
	Cost          *decimal.Decimal `json:"cost"`
	Price         *decimal.Decimal `json:"price"`
}

// ProductFilterRequest filtros del listado de productos.
type ProductFilterRequest struct {
	PageRequest
	Search   string `query:"search"`
	Category string `query:"category"`
	Supplier string `query:"supplier"`
	IsActive *bool  `query:"isActive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Barcode       string           `json:"barcode,omitempty"`
	SKU           string           `json:"sku,omitempty"`
	Supplier      string           `json:"supplier,omitempty"`
	Description   string           `json:"description,omitempty"`
	Unit          string           `json:"unit"`
	MinStockLevel int              `json:"minStockLevel"`
	ReorderPoint  int              `json:"reorderPoint"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	IsActive      bool             `json:"isActive"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// FromProduct mapea la entidad a su respuesta.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      string(p.Category),
		Barcode:       p.Barcode,
		SKU:           p.SKU,
		Supplier:      p.Supplier,
		Description:   p.Description,
		Unit:          p.Unit,
		MinStockLevel: p.MinStockLevel,
		ReorderPoint:  p.ReorderPoint,
		Cost:          p.Cost,
		Price:         p.Price,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
