package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/domain"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/domain/repository"
	apphttp "github.com/bulldogbars/barstock-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stub del ledger
// ──────────────────────────────────────────────────────────────────────────────

// stubLedger responde con valores fijos o el error configurado.
type stubLedger struct {
	transferErr error
	lastInput   dto.TransferRequest
	lastActor   dto.Actor
}

func (s *stubLedger) ListWarehouse() ([]repository.InventoryRow, error) {
	return []repository.InventoryRow{
		{ProductID: 1, ProductName: "Prosecco", Category: entity.CategoryWine,
			Unit: "bottles", MinStockLevel: 5, ReorderPoint: 10, Quantity: 3},
	}, nil
}

func (s *stubLedger) ListBar(entity.Location) ([]repository.InventoryRow, error) {
	return nil, nil
}

func (s *stubLedger) AggregateAll() ([]dto.AggregateStockResponse, error) {
	return nil, nil
}

func (s *stubLedger) AdjustWarehouse(_ context.Context, productID int64, input dto.AdjustStockRequest, _ dto.Actor) (*entity.WarehouseInventory, error) {
	if input.Quantity == nil && input.Adjustment == nil {
		return nil, domain.ErrInvalidQuantity
	}
	return &entity.WarehouseInventory{ProductID: productID, Quantity: 10, UpdatedAt: time.Now()}, nil
}

func (s *stubLedger) Transfer(_ context.Context, input dto.TransferRequest, actor dto.Actor) (*entity.StockTransfer, error) {
	s.lastInput = input
	s.lastActor = actor
	if s.transferErr != nil {
		return nil, s.transferErr
	}
	return &entity.StockTransfer{
		ID:            7,
		ProductID:     input.ProductID,
		FromLocation:  entity.FromWarehouse,
		ToLocation:    entity.Location(input.ToLocation),
		Quantity:      input.Quantity,
		TransferredBy: actor.UserID,
		Notes:         input.Notes,
		CreatedAt:     time.Now(),
	}, nil
}

func (s *stubLedger) ListTransfers(repository.TransferFilter) ([]*entity.StockTransfer, error) {
	return nil, nil
}

func (s *stubLedger) ListAlerts() ([]*entity.StockAlert, error) {
	return nil, nil
}

// buildInventoryApp monta sólo las rutas de inventario sobre el stub.
func buildInventoryApp(ledger *stubLedger) *fiber.App {
	app := fiber.New()
	h := apphttp.NewInventoryHandler(ledger)
	app.Post("/api/inventory/transfer", apphttp.AuthMiddleware(testJWTSecret), h.Transfer)
	app.Get("/api/inventory/warehouse", apphttp.AuthMiddleware(testJWTSecret), h.Warehouse)
	app.Get("/api/inventory/bar/:location", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireLocation(), h.Bar)
	return app
}

func postTransfer(t *testing.T, app *fiber.App, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/inventory/transfer", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenFor(t, "warehouse_manager", ""))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del handler de traslados
// ──────────────────────────────────────────────────────────────────────────────

// Traslado válido → 201 con el registro en el sobre y el actor del token.
func TestTransferHandler_Exito201(t *testing.T) {
	ledger := &stubLedger{}
	app := buildInventoryApp(ledger)

	resp := postTransfer(t, app, dto.TransferRequest{
		ProductID: 1, ToLocation: "gin_bar", Quantity: 5,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, true, env["success"])

	data, ok := env["data"].(map[string]interface{})
	require.True(t, ok, "data debe ser el registro del traslado")
	assert.Equal(t, "warehouse", data["fromLocation"])
	assert.Equal(t, "gin_bar", data["toLocation"])
	assert.Equal(t, float64(5), data["quantity"])

	assert.Equal(t, testUserID, ledger.lastActor.UserID,
		"el actor debe venir del token, no del cuerpo")
}

// Stock insuficiente → 400 INSUFFICIENT_STOCK.
func TestTransferHandler_StockInsuficiente400(t *testing.T) {
	ledger := &stubLedger{transferErr: domain.ErrInsufficientStock}
	app := buildInventoryApp(ledger)

	resp := postTransfer(t, app, dto.TransferRequest{
		ProductID: 1, ToLocation: "gin_bar", Quantity: 999,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "INSUFFICIENT_STOCK", env["error"])
}

// Ubicación desconocida (el ledger la rechaza) → 400 VALIDATION.
func TestTransferHandler_UbicacionInvalida400(t *testing.T) {
	ledger := &stubLedger{transferErr: domain.ErrInvalidLocation}
	app := buildInventoryApp(ledger)

	resp := postTransfer(t, app, dto.TransferRequest{
		ProductID: 1, ToLocation: "moon_bar", Quantity: 5,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "VALIDATION", env["error"])
}

// Cantidad cero la corta el validador antes de llegar al ledger.
func TestTransferHandler_CantidadCeroNoLlegaAlLedger(t *testing.T) {
	ledger := &stubLedger{}
	app := buildInventoryApp(ledger)

	resp := postTransfer(t, app, map[string]any{
		"productId": 1, "toLocation": "gin_bar", "quantity": 0,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, ledger.lastInput.ProductID, "el ledger no debe ser invocado")
}

// Sin token → 401 antes de tocar el ledger.
func TestTransferHandler_SinToken401(t *testing.T) {
	ledger := &stubLedger{}
	app := buildInventoryApp(ledger)

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/transfer",
		bytes.NewReader([]byte(`{"productId":1,"toLocation":"gin_bar","quantity":5}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// La vista por bar exige bar asignado: barman con bar entra, bodega sin bar no.
func TestBarInventoryRoute_ExigeBarAsignado(t *testing.T) {
	app := buildInventoryApp(&stubLedger{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/bar/gin_bar", nil)
	req.Header.Set("Authorization", tokenFor(t, "barman", "gin_bar"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/inventory/bar/gin_bar", nil)
	req.Header.Set("Authorization", tokenFor(t, "warehouse_manager", ""))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// GET /warehouse clasifica el estado de stock en la respuesta.
func TestWarehouseHandler_ClasificaEstado(t *testing.T) {
	ledger := &stubLedger{}
	app := buildInventoryApp(ledger)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/warehouse", nil)
	req.Header.Set("Authorization", tokenFor(t, "barman", "gin_bar"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	items, ok := env["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "low", item["status"], "3 ≤ min 5 debe clasificar como low")
}
