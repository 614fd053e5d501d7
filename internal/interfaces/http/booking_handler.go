package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logistica-api/internal/application/booking"
	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/ogpl"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// BookingHandler maneja las peticiones HTTP de reservas (protegido).
// Las operaciones de reparto (start-delivery, pod) delegan en el motor de
// OGPL, que es quien posee las transiciones de estado.
type BookingHandler struct {
	uc     *booking.UseCase
	ogplUC *ogpl.UseCase
}

// NewBookingHandler construye el handler.
func NewBookingHandler(uc *booking.UseCase, ogplUC *ogpl.UseCase) *BookingHandler {
	return &BookingHandler{uc: uc, ogplUC: ogplUC}
}

// Create godoc
// @Summary      Registrar reserva (LR)
// @Tags         bookings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookingRequest  true  "Datos de la reserva"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBookingResponse(out))
}

// GetByID godoc
// @Summary      Obtener reserva por número de LR
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Número de LR"
// @Success      200  {object}  dto.BookingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(toBookingResponse(out))
}

// List godoc
// @Summary      Listar reservas
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.BookingListResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	list, err := h.uc.ListByStatus(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	items := make([]dto.BookingResponse, 0, len(list))
	for _, b := range list {
		items = append(items, toBookingResponse(b))
	}
	return c.JSON(dto.BookingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// StartDelivery godoc
// @Summary      Iniciar reparto de una reserva descargada
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Número de LR"
// @Success      200  {object}  dto.BookingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/start-delivery [post]
func (h *BookingHandler) StartDelivery(c *fiber.Ctx) error {
	out, err := h.ogplUC.StartDelivery(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(toBookingResponse(out))
}

// MarkDelivered godoc
// @Summary      Registrar prueba de entrega (POD)
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Número de LR"
// @Success      200  {object}  dto.BookingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/pod [post]
func (h *BookingHandler) MarkDelivered(c *fiber.Ctx) error {
	out, err := h.ogplUC.MarkDelivered(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(toBookingResponse(out))
}

func toBookingResponse(b *entity.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:                         b.ID,
		SenderName:                 b.SenderName,
		ReceiverName:               b.ReceiverName,
		FromStation:                b.FromStation,
		ToStation:                  b.ToStation,
		Amount:                     b.Amount,
		Status:                     b.Status,
		WarehouseStatus:            b.WarehouseStatus,
		CurrentWarehouseLocationID: b.CurrentWarehouseLocationID,
		CreatedAt:                  b.CreatedAt,
		UpdatedAt:                  b.UpdatedAt,
	}
}
