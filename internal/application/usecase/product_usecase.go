package usecase

import (
	"time"

	"github.com/bulldogbars/barstock-api/internal/application/activity"
	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/domain"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos. El alta también inicializa la
// fila de bodega en cero para que el producto aparezca en los listados.
type ProductUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseInventoryRepository
	recorder      *activity.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, warehouseRepo repository.WarehouseInventoryRepository, recorder *activity.Recorder) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, warehouseRepo: warehouseRepo, recorder: recorder}
}

// Create da de alta un producto y su fila de bodega en cero.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest, actor dto.Actor) (*dto.ProductResponse, error) {
	category := entity.Category(in.Category)
	if !category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStockLevel < 0 || in.ReorderPoint < 0 {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "pieces"
	}

	now := time.Now()
	product := &entity.Product{
		Name:          in.Name,
		Category:      category,
		Barcode:       in.Barcode,
		SKU:           in.SKU,
		Supplier:      in.Supplier,
		Description:   in.Description,
		Unit:          unit,
		MinStockLevel: in.MinStockLevel,
		ReorderPoint:  in.ReorderPoint,
		Cost:          in.Cost,
		Price:         in.Price,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	if err := uc.warehouseRepo.Upsert(&entity.WarehouseInventory{ProductID: product.ID, UpdatedAt: now}); err != nil {
		return nil, err
	}

	uc.recorder.Record(actor, entity.ActivityCreate, "product", &product.ID,
		"producto "+product.Name+" creado", nil)
	resp := dto.FromProduct(product)
	return &resp, nil
}

// Get devuelve un producto por id.
func (uc *ProductUseCase) Get(id int64) (*dto.ProductResponse, error) {
	product, err := uc.mustGet(id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromProduct(product)
	return &resp, nil
}

// List devuelve productos filtrados y paginados.
func (uc *ProductUseCase) List(in dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	products, total, err := uc.productRepo.List(repository.ProductFilter{
		Search:   in.Search,
		Category: entity.Category(in.Category),
		Supplier: in.Supplier,
		IsActive: in.IsActive,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.FromProduct(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Update aplica una actualización parcial.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest, actor dto.Actor) (*dto.ProductResponse, error) {
	product, err := uc.mustGet(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		category := entity.Category(*in.Category)
		if !category.Valid() {
			return nil, domain.ErrInvalidInput
		}
		product.Category = category
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.MinStockLevel != nil {
		if *in.MinStockLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderPoint = *in.ReorderPoint
	}
	if in.Cost != nil {
		product.Cost = in.Cost
	}
	if in.Price != nil {
		product.Price = in.Price
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, entity.ActivityUpdate, "product", &product.ID,
		"producto "+product.Name+" actualizado", nil)
	resp := dto.FromProduct(product)
	return &resp, nil
}

// Deactivate baja lógica del producto; conserva historial de traslados y entregas.
func (uc *ProductUseCase) Deactivate(id int64, actor dto.Actor) error {
	product, err := uc.mustGet(id)
	if err != nil {
		return err
	}
	if err := uc.productRepo.Deactivate(id); err != nil {
		return err
	}
	uc.recorder.Record(actor, entity.ActivityDelete, "product", &id,
		"producto "+product.Name+" desactivado", nil)
	return nil
}

func (uc *ProductUseCase) mustGet(id int64) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}
