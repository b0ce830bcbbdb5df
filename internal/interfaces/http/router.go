package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bulldogbars/barstock-api/internal/application/auth"
	"github.com/bulldogbars/barstock-api/internal/application/usecase"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	Ledger      StockLedger
	DeliveryUC  *usecase.DeliveryUseCase
	ReportUC    *usecase.ReportUseCase
	Renderer    ReportRenderer
	UserUC      *usecase.UserUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
	Production  bool
}

// Router registra las rutas de la API con sus puertas de rol.
func Router(app *fiber.App, deps RouterDeps) {
	internalDetail = !deps.Production

	app.Use(MetricsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWTSecret)

	managers := RequireRole(entity.RoleAdmin, entity.RoleBarManager, entity.RoleWarehouseManager)
	warehouseStaff := RequireRole(entity.RoleAdmin, entity.RoleWarehouseManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authRequired, authHandler.Logout)
	authGroup.Get("/me", authRequired, authHandler.Me)
	authGroup.Post("/register", authRequired, adminOnly, authHandler.Register)
	authGroup.Post("/change-password", authRequired, authHandler.ChangePassword)

	// Productos
	products := api.Group("/products", authRequired)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Post("/", warehouseStaff, productHandler.Create)
	products.Put("/:id", warehouseStaff, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Inventario
	inv := api.Group("/inventory", authRequired)
	inventoryHandler := NewInventoryHandler(deps.Ledger)
	inv.Get("/warehouse", inventoryHandler.Warehouse)
	inv.Get("/warehouse/export", inventoryHandler.WarehouseExport)
	// La vista por bar exige un bar asignado (o admin); la bodega usa /all.
	inv.Get("/bar/:location", RequireLocation(), inventoryHandler.Bar)
	inv.Get("/all", inventoryHandler.All)
	inv.Put("/warehouse/:productId", warehouseStaff, inventoryHandler.AdjustWarehouse)
	inv.Post("/transfer", managers, inventoryHandler.Transfer)
	inv.Get("/transfers", inventoryHandler.Transfers)
	inv.Get("/alerts", inventoryHandler.Alerts)

	// Entregas
	deliveries := api.Group("/deliveries", authRequired)
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/:id", deliveryHandler.Get)
	deliveries.Post("/", warehouseStaff, deliveryHandler.Create)
	deliveries.Patch("/:id/status", warehouseStaff, deliveryHandler.UpdateStatus)
	deliveries.Post("/:id/receive", warehouseStaff, deliveryHandler.Receive)

	// Reportes
	reports := api.Group("/reports", authRequired)
	reportHandler := NewReportHandler(deps.ReportUC, deps.Renderer)
	reports.Get("/", reportHandler.List)
	reports.Get("/:id", reportHandler.Get)
	reports.Get("/:id/pdf", reportHandler.PDF)
	reports.Post("/", managers, reportHandler.Create)

	// Usuarios
	users := api.Group("/users", authRequired)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", managers, userHandler.List)
	users.Get("/:id", userHandler.Get) // admin-o-el-propio se valida en el caso de uso
	users.Put("/:id", adminOnly, userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Dashboard
	dashboard := api.Group("/dashboard", authRequired)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/activity", dashboardHandler.Activity)
}
