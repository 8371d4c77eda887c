package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stokos/stokos-api/internal/application/auth"
	"github.com/stokos/stokos-api/internal/application/usecase"
	"github.com/stokos/stokos-api/internal/domain/entity"
	"github.com/stokos/stokos-api/internal/infrastructure/memory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *usecase.CatalogUseCase
	InventoryUC *usecase.InventoryUseCase
	AlertsUC    *usecase.AlertsUseCase
	ReportUC    *usecase.ReportUseCase
	Store       *memory.Store
	Saver       SnapshotSaver
	JWTSecret   string
	CSVSep      rune
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; eliminar y renombrar código de barras solo CEO)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:barcode", productHandler.GetByBarcode)
	products.Put("/:barcode", productHandler.Update)
	products.Put("/:barcode/barcode", RequireRole(entity.RoleCEO), productHandler.ChangeBarcode)
	products.Delete("/:barcode", RequireRole(entity.RoleCEO), productHandler.Delete)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/batches", inventoryHandler.AddBatch)
	invGroup.Get("/batches", inventoryHandler.ListBatches)
	invGroup.Get("/stock/:barcode", inventoryHandler.Stock)
	invGroup.Post("/sales", inventoryHandler.SettleSale)
	invGroup.Post("/discards", inventoryHandler.RegisterDiscard)
	invGroup.Post("/prune", inventoryHandler.Prune)

	// Reports y alertas (protegido; exportar CSV solo CEO)
	reportHandler := NewReportHandler(deps.AlertsUC, deps.ReportUC, deps.CSVSep)
	reports := protected.Group("/reports")
	reports.Get("/alerts", reportHandler.Alerts)
	reports.Get("/products", reportHandler.ProductReport)
	reports.Get("/products/csv", RequireRole(entity.RoleCEO), reportHandler.ProductReportCSV)
	reports.Get("/sales/:barcode", reportHandler.SalesTotals)

	// Admin (protegido, solo CEO)
	admin := protected.Group("/admin", RequireRole(entity.RoleCEO))
	adminHandler := NewAdminHandler(deps.Store, deps.Saver)
	admin.Post("/snapshot", adminHandler.SaveSnapshot)
}
