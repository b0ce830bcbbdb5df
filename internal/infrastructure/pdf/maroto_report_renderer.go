// Package pdf renderiza reportes almacenados como documentos A4 con Maroto v2.
//
// El contenido del reporte (Data) es JSON opaco; el renderer lo interpreta de
// forma genérica:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + tipo  │  Ubicación + rango de fechas       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATA: tabla (array de objetos) o pares clave/valor (objeto) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: generado por / fecha                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/bulldogbars/barstock-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoReportRenderer genera el PDF de un reporte almacenado.
type MarotoReportRenderer struct{}

// NewMarotoReportRenderer construye el renderer.
func NewMarotoReportRenderer() *MarotoReportRenderer { return &MarotoReportRenderer{} }

// RenderReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportRenderer) RenderReportPDF(_ context.Context, report *entity.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, r := range dataRows(report.Data) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + tipo (izq) y ubicación + rango de fechas (der).
func headerRow(report *entity.Report) core.Row {
	location := report.Location
	if location == "" {
		location = "todas las ubicaciones"
	}
	rango := "—"
	if report.DateFrom != nil && report.DateTo != nil {
		rango = report.DateFrom.Format("02/01/2006") + " – " + report.DateTo.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tipo: "+string(report.ReportType), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Ubicación: "+location, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Período: "+rango, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// dataRows interpreta el JSON del reporte. Un array de objetos se vuelve
// tabla; un objeto plano, pares clave/valor; cualquier otra cosa, texto crudo.
func dataRows(data json.RawMessage) []core.Row {
	if len(data) == 0 {
		return []core.Row{textRow("(reporte sin datos)", colorGray)}
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err == nil && len(records) > 0 {
		return tableRows(records)
	}

	var object map[string]any
	if err := json.Unmarshal(data, &object); err == nil {
		return keyValueRows(object)
	}

	return []core.Row{textRow(string(data), nil)}
}

// tableRows: cabecera con las claves del primer registro, una fila por registro.
// Un primer registro sin claves no da tabla que dibujar.
func tableRows(records []map[string]any) []core.Row {
	keys := sortedKeys(records[0])
	if len(keys) == 0 {
		return []core.Row{textRow("(reporte sin datos)", colorGray)}
	}
	width := 12 / len(keys)
	if width < 1 {
		keys = keys[:12]
		width = 1
	}

	header := row.New(8)
	for _, k := range keys {
		header.Add(col.New(width).Add(text.New(k, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		})))
	}

	rows := []core.Row{header}
	for _, rec := range records {
		r := row.New(6)
		for _, k := range keys {
			r.Add(col.New(width).Add(text.New(formatValue(rec[k]), props.Text{
				Size: 8, Top: 1, Left: 1,
			})))
		}
		rows = append(rows, r)
	}
	return rows
}

// keyValueRows: una fila por entrada del objeto, ordenada por clave.
func keyValueRows(object map[string]any) []core.Row {
	rows := make([]core.Row, 0, len(object))
	for _, k := range sortedKeys(object) {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(k, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
			})),
			col.New(8).Add(text.New(formatValue(object[k]), props.Text{
				Size: 8, Top: 1, Left: 1,
			})),
		))
	}
	return rows
}

// footerRow: quién y cuándo generó el reporte.
func footerRow(report *entity.Report) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Generado por usuario #%d el %s",
			report.GeneratedBy, report.CreatedAt.Format("02/01/2006 15:04")),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func textRow(s string, color *props.Color) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Top: 2, Color: color}),
	))
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatValue aplana valores JSON a texto. Los números enteros salen sin
// decimales aunque encoding/json los decodifique como float64.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "—"
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%.2f", x)
	case bool:
		if x {
			return "sí"
		}
		return "no"
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(b)
	}
}
