package dto

import (
	"time"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
	"github.com/bulldogbars/barstock-api/internal/domain/stock"
)

// AdjustStockRequest fija o corrige el stock de bodega de un producto.
// Exactamente uno de Quantity (valor absoluto) o Adjustment (delta con signo)
// debe venir informado.
type AdjustStockRequest struct {
	Quantity   *int `json:"quantity" validate:"omitempty,min=0"`
	Adjustment *int `json:"adjustment"`
}

// TransferRequest traslado bodega → bar.
type TransferRequest struct {
	ProductID  int64  `json:"productId" validate:"required,min=1"`
	ToLocation string `json:"toLocation" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
	Notes      string `json:"notes"`
}

// InventoryItemResponse fila de inventario con estado calculado.
type InventoryItemResponse struct {
	ProductID     int64      `json:"productId"`
	ProductName   string     `json:"productName"`
	Category      string     `json:"category"`
	Unit          string     `json:"unit"`
	Quantity      int        `json:"quantity"`
	MinStockLevel int        `json:"minStockLevel"`
	ReorderPoint  int        `json:"reorderPoint"`
	Status        string     `json:"status"`
	LastRestocked *time.Time `json:"lastRestocked,omitempty"`
}

// FromInventoryRow mapea una fila de inventario y clasifica su estado.
func FromInventoryRow(r repository.InventoryRow) InventoryItemResponse {
	return InventoryItemResponse{
		ProductID:     r.ProductID,
		ProductName:   r.ProductName,
		Category:      string(r.Category),
		Unit:          r.Unit,
		Quantity:      r.Quantity,
		MinStockLevel: r.MinStockLevel,
		ReorderPoint:  r.ReorderPoint,
		Status:        string(stock.Classify(r.Quantity, r.MinStockLevel, r.ReorderPoint)),
		LastRestocked: r.LastRestocked,
	}
}

// WarehouseStockResponse stock de bodega de un producto tras un ajuste.
type WarehouseStockResponse struct {
	ProductID     int64      `json:"productId"`
	Quantity      int        `json:"quantity"`
	LastRestocked *time.Time `json:"lastRestocked,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// FromWarehouseInventory mapea el stock de bodega de un producto.
func FromWarehouseInventory(inv *entity.WarehouseInventory) WarehouseStockResponse {
	return WarehouseStockResponse{
		ProductID:     inv.ProductID,
		Quantity:      inv.Quantity,
		LastRestocked: inv.LastRestocked,
		UpdatedAt:     inv.UpdatedAt,
	}
}

// TransferResponse registro de traslado.
type TransferResponse struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"productId"`
	FromLocation  string    `json:"fromLocation"`
	ToLocation    string    `json:"toLocation"`
	Quantity      int       `json:"quantity"`
	TransferredBy int64     `json:"transferredBy"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromTransfer mapea un traslado a su respuesta.
func FromTransfer(t *entity.StockTransfer) TransferResponse {
	return TransferResponse{
		ID:            t.ID,
		ProductID:     t.ProductID,
		FromLocation:  t.FromLocation,
		ToLocation:    string(t.ToLocation),
		Quantity:      t.Quantity,
		TransferredBy: t.TransferredBy,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
	}
}

// AlertResponse alerta de stock bajo.
type AlertResponse struct {
	ID              int64      `json:"id"`
	ProductID       int64      `json:"productId"`
	Location        string     `json:"location"`
	AlertType       string     `json:"alertType"`
	CurrentQuantity int        `json:"currentQuantity"`
	Threshold       int        `json:"threshold"`
	IsResolved      bool       `json:"isResolved"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// FromAlert mapea una alerta a su respuesta.
func FromAlert(a *entity.StockAlert) AlertResponse {
	return AlertResponse{
		ID:              a.ID,
		ProductID:       a.ProductID,
		Location:        a.Location,
		AlertType:       a.AlertType,
		CurrentQuantity: a.CurrentQuantity,
		Threshold:       a.Threshold,
		IsResolved:      a.IsResolved,
		ResolvedAt:      a.ResolvedAt,
		CreatedAt:       a.CreatedAt,
	}
}

// AggregateStockResponse stock de un producto sumado sobre todas las ubicaciones.
type AggregateStockResponse struct {
	ProductID   int64          `json:"productId"`
	ProductName string         `json:"productName"`
	Unit        string         `json:"unit"`
	Warehouse   int            `json:"warehouse"`
	Bars        map[string]int `json:"bars"`
	Total       int            `json:"total"`
}
