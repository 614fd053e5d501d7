package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/ogpl"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// OgplHandler maneja las peticiones HTTP de manifiestos de tránsito (protegido).
type OgplHandler struct {
	uc *ogpl.UseCase
}

// NewOgplHandler construye el handler.
func NewOgplHandler(uc *ogpl.UseCase) *OgplHandler {
	return &OgplHandler{uc: uc}
}

// Create godoc
// @Summary      Crear OGPL y cargar reservas
// @Description  Registra el manifiesto y pasa cada reserva de lr_ids a in_transit.
//
//	La operación es atómica: si alguna reserva no existe, no queda
//	ni manifiesto ni transición parcial.
//
// @Tags         ogpls
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOgplRequest  true  "Datos del OGPL y reservas a cargar"
// @Success      201   {object}  dto.OgplResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ogpls [post]
func (h *OgplHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOgplRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateOgpl(in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOgplResponse(out))
}

// GetByID godoc
// @Summary      Obtener OGPL por ID
// @Tags         ogpls
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del OGPL"
// @Success      200  {object}  dto.OgplResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ogpls/{id} [get]
func (h *OgplHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(toOgplResponse(out))
}

// List godoc
// @Summary      Listar OGPLs
// @Tags         ogpls
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.OgplListResponse
// @Router       /api/ogpls [get]
func (h *OgplHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	items := make([]dto.OgplResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOgplResponse(o))
	}
	return c.JSON(dto.OgplListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// UpdateLrs godoc
// @Summary      Agregar/quitar reservas de un OGPL
// @Tags         ogpls
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del OGPL"
// @Param        body  body  dto.UpdateOgplLrsRequest  true  "Reservas a agregar y quitar"
// @Success      200   {object}  dto.OgplResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ogpls/{id}/lrs [patch]
func (h *OgplHandler) UpdateLrs(c *fiber.Ctx) error {
	var in dto.UpdateOgplLrsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateLrs(c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(toOgplResponse(out))
}

// CompleteUnloading godoc
// @Summary      Descargar OGPL en destino
// @Description  Pasa todas las reservas cargadas a unloaded y luego el
//
//	manifiesto mismo; todo-o-nada sobre el conjunto de reservas.
//
// @Tags         ogpls
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del OGPL"
// @Success      200  {object}  dto.OgplResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ogpls/{id}/unload [post]
func (h *OgplHandler) CompleteUnloading(c *fiber.Ctx) error {
	out, err := h.uc.CompleteUnloading(c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(toOgplResponse(out))
}

func toOgplResponse(o *entity.Ogpl) dto.OgplResponse {
	return dto.OgplResponse{
		ID:          o.ID,
		OgplNo:      o.OgplNo,
		VehicleNo:   o.VehicleNo,
		DriverName:  o.DriverName,
		FromStation: o.FromStation,
		ToStation:   o.ToStation,
		LrIDs:       o.LrIDs,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
