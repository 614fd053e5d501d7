package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logistica-api/internal/application/booking"
	"github.com/jhoicas/logistica-api/internal/application/ogpl"
	"github.com/jhoicas/logistica-api/internal/application/warehouse"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BookingUC   *booking.UseCase
	OgplUC      *ogpl.UseCase
	WarehouseUC *warehouse.UseCase
	MovementUC  *warehouse.MovementUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Bookings / LRs (protegido)
	bookings := protected.Group("/bookings")
	bookingHandler := NewBookingHandler(deps.BookingUC, deps.OgplUC)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.List)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Post("/:id/start-delivery", bookingHandler.StartDelivery)
	bookings.Post("/:id/pod", bookingHandler.MarkDelivered)

	// OGPLs / manifiestos de carga (protegido)
	ogpls := protected.Group("/ogpls")
	ogplHandler := NewOgplHandler(deps.OgplUC)
	ogpls.Post("/", ogplHandler.Create)
	ogpls.Get("/", ogplHandler.List)
	ogpls.Get("/:id", ogplHandler.GetByID)
	ogpls.Patch("/:id/lrs", ogplHandler.UpdateLrs)
	ogpls.Post("/:id/unload", ogplHandler.CompleteUnloading)

	// Warehouses y ubicaciones (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/:id/locations", warehouseHandler.CreateLocation)
	warehouses.Get("/:id/locations", warehouseHandler.ListLocations)

	// Inventory movements (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	invGroup.Get("/", inventoryHandler.GetInventory)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Post("/inbound", inventoryHandler.Inbound)
	invGroup.Post("/outbound", inventoryHandler.Outbound)
	invGroup.Post("/transfer", inventoryHandler.Transfer)
}
