package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bulldogbars/barstock-api/internal/application/activity"
	"github.com/bulldogbars/barstock-api/internal/application/auth"
	"github.com/bulldogbars/barstock-api/internal/application/inventory"
	"github.com/bulldogbars/barstock-api/internal/application/usecase"
	infrapdf "github.com/bulldogbars/barstock-api/internal/infrastructure/pdf"
	"github.com/bulldogbars/barstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/bulldogbars/barstock-api/internal/interfaces/http"
	"github.com/bulldogbars/barstock-api/pkg/config"
	"github.com/bulldogbars/barstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseInventoryRepository(pool)
	barRepo := postgres.NewBarInventoryRepository(pool)
	transferRepo := postgres.NewStockTransferRepository(pool)
	alertRepo := postgres.NewStockAlertRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := activity.NewRecorder(activityRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, recorder, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ledgerUC := inventory.NewLedgerUseCase(
		txRunner, productRepo, warehouseRepo, barRepo, transferRepo, alertRepo, recorder,
	)
	productUC := usecase.NewProductUseCase(productRepo, warehouseRepo, recorder)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo, productRepo, txRunner, recorder)
	reportUC := usecase.NewReportUseCase(reportRepo, recorder)
	userUC := usecase.NewUserUseCase(userRepo, recorder)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo, activityRepo)

	pdfRenderer := infrapdf.NewMarotoReportRenderer()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BarStock API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		Ledger:      ledgerUC,
		DeliveryUC:  deliveryUC,
		ReportUC:    reportUC,
		Renderer:    pdfRenderer,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
		Production:  cfg.App.IsProduction(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
