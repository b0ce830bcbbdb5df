package pdf_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
	"github.com/bulldogbars/barstock-api/internal/infrastructure/pdf"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del renderer de reportes. Data es JSON opaco aportado por el cliente,
// así que el renderer tiene que producir un documento válido para cualquier
// forma que ese JSON tome, incluidas las degeneradas.
// ──────────────────────────────────────────────────────────────────────────────

func testReport(data string) *entity.Report {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)
	return &entity.Report{
		ID:          1,
		ReportType:  entity.ReportInventory,
		Title:       "Inventario semanal",
		Location:    "gin_bar",
		DateFrom:    &from,
		DateTo:      &to,
		Data:        json.RawMessage(data),
		GeneratedBy: 7,
		CreatedAt:   time.Date(2026, 8, 7, 18, 30, 0, 0, time.UTC),
	}
}

func renderOK(t *testing.T, data string) []byte {
	t.Helper()
	doc, err := pdf.NewMarotoReportRenderer().RenderReportPDF(context.Background(), testReport(data))
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]), "la salida debe ser un documento PDF")
	return doc
}

func TestRenderReportPDF_ArrayDeObjetosComoTabla(t *testing.T) {
	renderOK(t, `[{"producto":"Gin Lubuski","cantidad":3},{"producto":"Prosecco","cantidad":12}]`)
}

func TestRenderReportPDF_ObjetoPlanoComoParesClaveValor(t *testing.T) {
	renderOK(t, `{"totalProductos":42,"stockBajo":5,"activo":true}`)
}

// El primer registro de un array puede venir sin claves; eso no puede tumbar
// la exportación de un reporte ya almacenado.
func TestRenderReportPDF_PrimerRegistroSinClaves(t *testing.T) {
	renderOK(t, `[{}]`)
}

func TestRenderReportPDF_SinDatos(t *testing.T) {
	renderOK(t, ``)
}

func TestRenderReportPDF_JSONNoEstructuradoSaleComoTexto(t *testing.T) {
	renderOK(t, `"nota libre del turno"`)
}
