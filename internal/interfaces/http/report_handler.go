package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bulldogbars/barstock-api/internal/application/dto"
	"github.com/bulldogbars/barstock-api/internal/application/usecase"
	"github.com/bulldogbars/barstock-api/internal/domain/entity"
)

// ReportRenderer renderiza un reporte almacenado como PDF.
// Lo satisface pdf.MarotoReportRenderer.
type ReportRenderer interface {
	RenderReportPDF(ctx context.Context, report *entity.Report) ([]byte, error)
}

// ReportHandler maneja reportes almacenados y su exportación.
type ReportHandler struct {
	uc       *usecase.ReportUseCase
	renderer ReportRenderer
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, renderer ReportRenderer) *ReportHandler {
	return &ReportHandler{uc: uc, renderer: renderer}
}

// List godoc
// @Summary      Listar reportes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        reportType  query  string  false  "Tipo de reporte"
// @Param        location    query  string  false  "Ubicación"
// @Param        limit       query  int     false  "Límite"  default(50)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Envelope{data=[]dto.ReportResponse}
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	var in dto.ReportFilterRequest
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
// @Summary      Obtener reporte por ID
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del reporte"
// @Success      200  {object}  dto.Envelope{data=dto.ReportResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/reports/{id} [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
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
// @Summary      Guardar un reporte (data se almacena tal cual)
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReportRequest  true  "Reporte"
// @Success      201   {object}  dto.Envelope{data=dto.ReportResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
	if err := bindBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.Create(in, GetActor(c))
	if err != nil {
		return failErr(c, err)
	}
	return created(c, out)
}

// PDF godoc
// @Summary      Exportar reporte como PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del reporte"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.Envelope
// @Router       /api/reports/{id}/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return failErr(c, err)
	}
	report, err := h.uc.GetEntity(id)
	if err != nil {
		return failErr(c, err)
	}
	doc, err := h.renderer.RenderReportPDF(c.UserContext(), report)
	if err != nil {
		return failErr(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		`attachment; filename="reporte_`+strconv.FormatInt(report.ID, 10)+`.pdf"`)
	return c.Send(doc)
}
