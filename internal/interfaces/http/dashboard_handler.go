package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/application/usecase"
)

// DashboardHandler maneja contadores y actividad reciente.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Contadores del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.DashboardStatsResponse}
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// Activity godoc
// @Summary      Actividad reciente
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.Envelope{data=[]dto.ActivityResponse}
// @Router       /api/dashboard/activity [get]
func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "filtros inválidos")
	}
	out, err := h.uc.RecentActivity(page)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}
