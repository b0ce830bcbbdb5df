package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
	"github.com/bulldogbars/barstock-api/internal/infrastructure/excel"
)

// StockLedger es lo que el handler necesita del ledger de inventario.
// Lo satisface inventory.LedgerUseCase.
type StockLedger interface {
	ListWarehouse() ([]repository.InventoryRow, error)
	ListBar(location entity.Location) ([]repository.InventoryRow, error)
	AggregateAll() ([]dto.AggregateStockResponse, error)
	AdjustWarehouse(ctx context.Context, productID int64, input dto.AdjustStockRequest, actor dto.Actor) (*entity.WarehouseInventory, error)
	Transfer(ctx context.Context, input dto.TransferRequest, actor dto.Actor) (*entity.StockTransfer, error)
	ListTransfers(filter repository.TransferFilter) ([]*entity.StockTransfer, error)
	ListAlerts() ([]*entity.StockAlert, error)
}

// InventoryHandler maneja stock de bodega y bares, traslados y alertas.
type InventoryHandler struct {
	ledger StockLedger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger StockLedger) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// Warehouse godoc
// @Summary      Inventario de bodega con estado de stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.InventoryItemResponse}
// @Router       /api/inventory/warehouse [get]
func (h *InventoryHandler) Warehouse(c *fiber.Ctx) error {
	rows, err := h.ledger.ListWarehouse()
	if err != nil {
		return failErr(c, err)
	}
	out := make([]dto.InventoryItemResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromInventoryRow(r))
	}
	return ok(c, out)
}

// WarehouseExport godoc
// @Summary      Exportar inventario de bodega como XLSX
// @Tags         inventory
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/inventory/warehouse/export [get]
func (h *InventoryHandler) WarehouseExport(c *fiber.Ctx) error {
	rows, err := h.ledger.ListWarehouse()
	if err != nil {
		return failErr(c, err)
	}
	f, err := excel.BuildInventoryWorkbook(rows, time.Now())
	if err != nil {
		return failErr(c, err)
	}
	defer f.Close()

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario_bodega.xlsx"`)
	if err := f.Write(c.Response().BodyWriter()); err != nil {
		return failErr(c, err)
	}
	return nil
}

// Bar godoc
// @Summary      Inventario de un bar
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location  path  string  true  "Bar"  Enums(duzy_bulldog, maly_bulldog, gin_bar)
// @Success      200  {object}  dto.Envelope{data=[]dto.InventoryItemResponse}
// @Failure      400  {object}  dto.Envelope
// @Router       /api/inventory/bar/{location} [get]
func (h *InventoryHandler) Bar(c *fiber.Ctx) error {
	location := entity.Location(c.Params("location"))
	if !location.Valid() {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "ubicación desconocida")
	}
	rows, err := h.ledger.ListBar(location)
	if err != nil {
		return failErr(c, err)
	}
	out := make([]dto.InventoryItemResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromInventoryRow(r))
	}
	return ok(c, out)
}

// All godoc
// @Summary      Stock agregado por producto (bodega + bares)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.AggregateStockResponse}
// @Router       /api/inventory/all [get]
func (h *InventoryHandler) All(c *fiber.Ctx) error {
	out, err := h.ledger.AggregateAll()
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// AdjustWarehouse godoc
// @Summary      Fijar o ajustar stock de bodega de un producto
// @Description  Exactamente uno de quantity (absoluto) o adjustment (delta) debe venir informado.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "Ajuste"
// @Success      200   {object}  dto.Envelope{data=dto.WarehouseStockResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/inventory/warehouse/{productId} [put]
func (h *InventoryHandler) AdjustWarehouse(c *fiber.Ctx) error {
	productID, err := paramID(c, "productId")
	if err != nil {
		return failErr(c, err)
	}
	var in dto.AdjustStockRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	inv, err := h.ledger.AdjustWarehouse(c.UserContext(), productID, in, GetActor(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, dto.FromWarehouseInventory(inv))
}

// Transfer godoc
// @Summary      Trasladar stock de bodega a un bar
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Traslado"
// @Success      201   {object}  dto.Envelope{data=dto.TransferResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	transfer, err := h.ledger.Transfer(c.UserContext(), in, GetActor(c))
	if err != nil {
		return failErr(c, err)
	}
	return created(c, dto.FromTransfer(transfer))
}

// Transfers godoc
// @Summary      Historial de traslados
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId   query  int     false  "Filtrar por producto"
// @Param        toLocation  query  string  false  "Filtrar por bar destino"
// @Param        limit       query  int     false  "Límite"  default(50)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Envelope{data=[]dto.TransferResponse}
// @Router       /api/inventory/transfers [get]
func (h *InventoryHandler) Transfers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "filtros inválidos")
	}
	page.DefaultPage()
	transfers, err := h.ledger.ListTransfers(repository.TransferFilter{
		ProductID:  int64(c.QueryInt("productId", 0)),
		ToLocation: entity.Location(c.Query("toLocation")),
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return failErr(c, err)
	}
	out := make([]dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, dto.FromTransfer(t))
	}
	return ok(c, out)
}

// Alerts godoc
// @Summary      Alertas de stock bajo sin resolver
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.AlertResponse}
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	alerts, err := h.ledger.ListAlerts()
	if err != nil {
		return failErr(c, err)
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.FromAlert(a))
	}
	return ok(c, out)
}
