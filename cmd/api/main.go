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
	"github.com/jhoicas/logistica-api/internal/application/booking"
	"github.com/jhoicas/logistica-api/internal/application/ogpl"
	"github.com/jhoicas/logistica-api/internal/application/warehouse"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
	"github.com/jhoicas/logistica-api/internal/infrastructure/memory"
	"github.com/jhoicas/logistica-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/logistica-api/internal/interfaces/http"
	"github.com/jhoicas/logistica-api/pkg/config"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	var (
		bookingRepo   repository.BookingRepository
		ogplRepo      repository.OgplRepository
		warehouseRepo repository.WarehouseRepository
		locationRepo  repository.LocationRepository
		inventoryRepo repository.InventoryRepository
		movementRepo  repository.InventoryMovementRepository
	)

	switch cfg.Storage.Driver {
	case "memory":
		// Almacenamiento en memoria: útil para demos y entornos sin base de datos.
		bookingRepo = memory.NewBookingRepository()
		ogplRepo = memory.NewOgplRepository()
		warehouseRepo = memory.NewWarehouseRepository()
		locationRepo = memory.NewLocationRepository()
		inventoryRepo = memory.NewInventoryRepository()
		movementRepo = memory.NewMovementRepository()
	default:
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		bookingRepo = postgres.NewBookingRepository(pool)
		ogplRepo = postgres.NewOgplRepository(pool)
		warehouseRepo = postgres.NewWarehouseRepository(pool)
		locationRepo = postgres.NewLocationRepository(pool)
		inventoryRepo = postgres.NewInventoryRepository(pool)
		movementRepo = postgres.NewInventoryMovementRepository(pool)
	}

	bookingUC := booking.NewUseCase(bookingRepo)
	ogplUC := ogpl.NewUseCase(ogplRepo, bookingRepo)
	warehouseUC := warehouse.NewUseCase(warehouseRepo, locationRepo)
	movementUC := warehouse.NewMovementUseCase(inventoryRepo, movementRepo, locationRepo, bookingRepo, log)

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
		Title:    "Logística API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BookingUC:   bookingUC,
		OgplUC:      ogplUC,
		WarehouseUC: warehouseUC,
		MovementUC:  movementUC,
		JWTSecret:   cfg.JWT.Secret,
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
