package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/application/usecase"
)

// DeliveryHandler maneja entregas de proveedor.
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// List godoc
// @Summary      Listar entregas
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "Estado"  Enums(pending, in_transit, delivered, cancelled)
// @Param        location  query  string  false  "Destino"
// @Param        supplier  query  string  false  "Proveedor (parcial)"
// @Param        limit     query  int     false  "Límite"  default(50)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Envelope{data=[]dto.DeliveryResponse}
// @Router       /api/deliveries [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	var in dto.DeliveryFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "filtros inválidos")
	}
	out, err := h.uc.List(in)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// Get godoc
// @Summary      Obtener entrega con sus líneas
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la entrega"
// @Success      200  {object}  dto.Envelope{data=dto.DeliveryResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/deliveries/{id} [get]
func (h *DeliveryHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return failErr(c, err)
	}
	out, err := h.uc.Get(id)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// Create godoc
// @Summary      Crear entrega de proveedor
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "Entrega con líneas"
// @Success      201   {object}  dto.Envelope{data=dto.DeliveryResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/deliveries [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.Create(in, GetActor(c))
	if err != nil {
		return failErr(c, err)
	}
	return created(c, out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una entrega
// @Description  Transiciones válidas: pending→in_transit|cancelled; in_transit→cancelled. El estado delivered sólo se alcanza vía receive.
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la entrega"
// @Param        body  body  dto.UpdateDeliveryStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.Envelope{data=dto.DeliveryResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/deliveries/{id}/status [patch]
func (h *DeliveryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return failErr(c, err)
	}
	var in dto.UpdateDeliveryStatusRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.UpdateStatus(id, in, GetActor(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// Receive godoc
// @Summary      Recibir entrega
// @Description  Marca la entrega como delivered y suma las cantidades recibidas al stock del destino, atómicamente. Las líneas omitidas se reciben completas.
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la entrega"
// @Param        body  body  dto.ReceiveDeliveryRequest  false  "Cantidades recibidas por línea"
// @Success      200   {object}  dto.Envelope{data=dto.DeliveryResponse}
// @Failure      409   {object}  dto.Envelope
// @Router       /api/deliveries/{id}/receive [post]
func (h *DeliveryHandler) Receive(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return failErr(c, err)
	}
	var in dto.ReceiveDeliveryRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &in); err != nil {
			return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
		}
	}
	out, err := h.uc.Receive(c.UserContext(), id, in, GetActor(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}
