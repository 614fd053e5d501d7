package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/warehouse"
)

// InventoryHandler maneja las peticiones HTTP de movimientos de inventario (protegido).
type InventoryHandler struct {
	uc *warehouse.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *warehouse.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Inbound godoc
// @Summary      Recibir inventario en una ubicación
// @Description  Suma cantidad al registro (ubicación, ítem), creándolo si no
//
//	existe. Si booking_id resuelve, fija el puntero de bodega de
//	esa reserva (efecto secundario de mejor esfuerzo).
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InboundRequest  true  "location_id, item_id, quantity, status?, booking_id?"
// @Success      200   {object}  dto.QuantityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/inbound [post]
func (h *InventoryHandler) Inbound(c *fiber.Ctx) error {
	var in dto.InboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	qty, err := h.uc.Inbound(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.QuantityResponse{LocationID: in.LocationID, ItemID: in.ItemID, Quantity: qty})
}

// Outbound godoc
// @Summary      Despachar inventario desde una ubicación
// @Description  Resta cantidad tras verificar suficiencia; sin mutación si el
//
//	inventario no alcanza. Si booking_id resuelve, limpia el
//	puntero de bodega de la reserva.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutboundRequest  true  "location_id, item_id, quantity, booking_id?"
// @Success      200   {object}  dto.QuantityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/outbound [post]
func (h *InventoryHandler) Outbound(c *fiber.Ctx) error {
	var in dto.OutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	qty, err := h.uc.Outbound(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.QuantityResponse{LocationID: in.LocationID, ItemID: in.ItemID, Quantity: qty})
}

// Transfer godoc
// @Summary      Trasladar inventario entre ubicaciones
// @Description  Débito y crédito como una sola operación atómica: un fallo en
//
//	cualquiera de los dos lados deja ambos saldos intactos.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "from_location_id, to_location_id, item_id, quantity"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Transfer(in); err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"message": "traslado registrado"})
}

// GetInventory godoc
// @Summary      Consultar cantidad de un ítem en una ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  true  "ID de la ubicación"
// @Param        item_id      query  string  true  "ID del ítem"
// @Success      200  {object}  dto.QuantityResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	itemID := c.Query("item_id")
	if locationID == "" || itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id e item_id son requeridos"})
	}
	qty, err := h.uc.GetInventory(locationID, itemID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.QuantityResponse{LocationID: locationID, ItemID: itemID, Quantity: qty})
}

// ListMovements godoc
// @Summary      Rastro de movimientos de una ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  true   "ID de la ubicación"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id es requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	list, err := h.uc.ListMovements(locationID, page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			LocationID:    m.LocationID,
			ItemID:        m.ItemID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			BookingID:     m.BookingID,
			Date:          m.Date,
		})
	}
	return c.JSON(items)
}
