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
	"github.com/tu-usuario/stock-service/internal/application/auth"
	"github.com/tu-usuario/stock-service/internal/application/drawers"
	"github.com/tu-usuario/stock-service/internal/application/ledger"
	"github.com/tu-usuario/stock-service/internal/application/refill"
	"github.com/tu-usuario/stock-service/internal/application/reports"
	"github.com/tu-usuario/stock-service/internal/application/usage"
	"github.com/tu-usuario/stock-service/internal/application/usecase"
	infrapdf "github.com/tu-usuario/stock-service/internal/infrastructure/pdf"
	"github.com/tu-usuario/stock-service/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stock-service/internal/interfaces/http"
	"github.com/tu-usuario/stock-service/pkg/config"
	"github.com/tu-usuario/stock-service/pkg/logger"
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

	societyRepo := postgres.NewSocietyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	stockRepo := postgres.NewStockObjectRepository(pool)
	kindRepo := postgres.NewStockObjectKindRepository(pool)
	drawerRepo := postgres.NewDrawerRepository(pool)
	placementRepo := postgres.NewPlacementRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	usageRepo := postgres.NewUsageRepository(pool)
	objectUserRepo := postgres.NewObjectUserRepository(pool)
	refillRepo := postgres.NewRefillRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de movimientos: toda mutación de cantidades pasa por aquí.
	ledgerUC := ledger.NewUseCase(txRunner, societyRepo, stockRepo, drawerRepo)

	authUC := auth.NewUseCase(txRunner, societyRepo, userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	societyUC := usecase.NewSocietyUseCase(societyRepo)
	stockObjectUC := usecase.NewStockObjectUseCase(stockRepo, kindRepo, ledgerUC)
	objectUserUC := usecase.NewObjectUserUseCase(objectUserRepo)
	drawerUC := usecase.NewDrawerUseCase(societyRepo, drawerRepo, placementRepo)
	dashboardUC := usecase.NewDashboardUseCase(stockRepo, movementRepo, refillRepo)
	placementUC := drawers.NewUseCase(txRunner, societyRepo, stockRepo, drawerRepo, placementRepo)
	usageUC := usage.NewUseCase(txRunner, ledgerUC, objectUserRepo, usageRepo)
	refillUC := refill.NewUseCase(txRunner, ledgerUC, stockRepo, refillRepo)
	predictionUC := refill.NewPredictionUseCase(stockRepo, usageRepo)

	// PDF: reporte de existencias de la sociedad
	pdfGenerator := infrapdf.NewMarotoStockReportGenerator()
	reportsUC := reports.NewUseCase(societyRepo, stockRepo, kindRepo, drawerRepo, placementRepo, pdfGenerator)

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
		Title:    "Stock Service API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		SocietyUC:     societyUC,
		StockObjectUC: stockObjectUC,
		ObjectUserUC:  objectUserUC,
		DrawerUC:      drawerUC,
		DashboardUC:   dashboardUC,
		LedgerUC:      ledgerUC,
		PlacementUC:   placementUC,
		UsageUC:       usageUC,
		RefillUC:      refillUC,
		PredictionUC:  predictionUC,
		ReportsUC:     reportsUC,
		MovementRepo:  movementRepo,
		JWTSecret:     cfg.JWT.Secret,
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
