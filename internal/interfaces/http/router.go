package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-service/internal/application/auth"
	"github.com/tu-usuario/stock-service/internal/application/drawers"
	"github.com/tu-usuario/stock-service/internal/application/ledger"
	"github.com/tu-usuario/stock-service/internal/application/refill"
	"github.com/tu-usuario/stock-service/internal/application/reports"
	"github.com/tu-usuario/stock-service/internal/application/usage"
	"github.com/tu-usuario/stock-service/internal/application/usecase"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	SocietyUC     *usecase.SocietyUseCase
	StockObjectUC *usecase.StockObjectUseCase
	ObjectUserUC  *usecase.ObjectUserUseCase
	DrawerUC      *usecase.DrawerUseCase
	DashboardUC   *usecase.DashboardUseCase
	LedgerUC      *ledger.UseCase
	PlacementUC   *drawers.UseCase
	UsageUC       *usage.UseCase
	RefillUC      *refill.UseCase
	PredictionUC  *refill.PredictionUseCase
	ReportsUC     *reports.UseCase
	MovementRepo  repository.MovementRepository
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo de planes (público)
	societyHandler := NewSocietyHandler(deps.SocietyUC)
	api.Get("/plans", societyHandler.Plans)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sociedad del actor; ajustes y suscripción solo para admins
	protected.Get("/society", societyHandler.Get)
	protected.Put("/society/settings", RequireSocietyAdmin(), societyHandler.UpdateSettings)
	protected.Put("/society/subscription", RequireSocietyAdmin(), societyHandler.Upgrade)

	// Usuarios (solo admin)
	users := protected.Group("/users", RequireSocietyAdmin())
	userHandler := NewUserHandler(deps.AuthUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Objetos de stock y categorías
	stockHandler := NewStockObjectHandler(deps.StockObjectUC)
	objects := protected.Group("/stock-objects")
	objects.Post("/", stockHandler.Create)
	objects.Get("/", stockHandler.List)
	objects.Get("/:id", stockHandler.GetByID)
	objects.Put("/:id", stockHandler.Update)
	objects.Delete("/:id", stockHandler.Delete)

	kinds := protected.Group("/kinds")
	kinds.Post("/", stockHandler.CreateKind)
	kinds.Get("/", stockHandler.ListKinds)
	kinds.Put("/:id", stockHandler.UpdateKind)
	kinds.Delete("/:id", stockHandler.DeleteKind)

	// Movimientos (motor de inventario)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.MovementRepo)
	movements := protected.Group("/movements")
	movements.Post("/", ledgerHandler.RegisterMovement)
	movements.Get("/", ledgerHandler.ListMovements)

	// Cajones y colocaciones
	drawerHandler := NewDrawerHandler(deps.DrawerUC, deps.PlacementUC)
	drawersGroup := protected.Group("/drawers")
	drawersGroup.Post("/", drawerHandler.Create)
	drawersGroup.Get("/", drawerHandler.List)
	drawersGroup.Put("/:id", drawerHandler.Update)
	drawersGroup.Delete("/:id", drawerHandler.Delete)

	placements := protected.Group("/placements")
	placements.Post("/", drawerHandler.Place)
	placements.Post("/remove", drawerHandler.Unplace)
	placements.Get("/", drawerHandler.ListPlacements)
	placements.Get("/inconsistencies", drawerHandler.ListInconsistencies)

	// Consumidores y consumos
	objectUserHandler := NewObjectUserHandler(deps.ObjectUserUC)
	objectUsers := protected.Group("/object-users")
	objectUsers.Post("/", objectUserHandler.Create)
	objectUsers.Get("/", objectUserHandler.List)
	objectUsers.Put("/:id", objectUserHandler.Update)
	objectUsers.Delete("/:id", objectUserHandler.Delete)

	usageHandler := NewUsageHandler(deps.UsageUC)
	usages := protected.Group("/usages")
	usages.Post("/", usageHandler.Record)
	usages.Get("/", usageHandler.List)

	// Reposiciones y predicción
	refillHandler := NewRefillHandler(deps.RefillUC, deps.PredictionUC)
	refills := protected.Group("/refills")
	refills.Post("/", refillHandler.Schedule)
	refills.Get("/", refillHandler.List)
	refills.Get("/predictions", refillHandler.Predictions)
	refills.Post("/:id/complete", refillHandler.Complete)
	refills.Post("/:id/cancel", refillHandler.Cancel)

	// Dashboard y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	reportHandler := NewReportHandler(deps.ReportsUC)
	protected.Get("/reports/stock", reportHandler.StockReport)
}
