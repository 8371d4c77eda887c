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

	"github.com/stokos/stokos-api/internal/application/auth"
	"github.com/stokos/stokos-api/internal/application/usecase"
	"github.com/stokos/stokos-api/internal/domain/inventory"
	"github.com/stokos/stokos-api/internal/infrastructure/memory"
	"github.com/stokos/stokos-api/internal/infrastructure/snapshot"
	httpRouter "github.com/stokos/stokos-api/internal/interfaces/http"
	"github.com/stokos/stokos-api/pkg/config"
	"github.com/stokos/stokos-api/pkg/logger"
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

	fileStore := snapshot.NewFileStore(cfg.Stock.SnapshotPath)
	data, err := fileStore.Load()
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Stock.SnapshotPath).Msg("cargar snapshot")
	}
	log.Info().
		Int("productos", len(data.Catalog.Products)).
		Int("lotes", len(data.Ledger.Batches)).
		Int("ventas", len(data.History.Records)).
		Msg("estado cargado")

	store := memory.NewStore(data)

	authUC, err := auth.NewAuthUseCase(cfg.Auth.SeedPassword, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar usuarios")
	}

	catalogUC := usecase.NewCatalogUseCase(store)
	inventoryUC := usecase.NewInventoryUseCase(store)
	alertsUC := usecase.NewAlertsUseCase(store, cfg.Stock.AlertWindowDays)
	reportUC := usecase.NewReportUseCase(store)

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
		Title:    "Stokos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		InventoryUC: inventoryUC,
		AlertsUC:    alertsUC,
		ReportUC:    reportUC,
		Store:       store,
		Saver:       fileStore,
		JWTSecret:   cfg.JWT.Secret,
		CSVSep:      cfg.Stock.Separator(),
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

	// Último guardado antes de salir; el mismo archivo que carga el arranque.
	err = store.View(func(d *inventory.SystemData) error {
		return fileStore.Save(d)
	})
	if err != nil {
		log.Error().Err(err).Msg("guardar snapshot final")
	}

	log.Info().Msg("aplicación detenida")
}
