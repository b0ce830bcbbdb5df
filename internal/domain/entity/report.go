package entity

import (
	"encoding/json"
	"time"
)

// Report es un reporte generado y almacenado tal cual (Data es JSON opaco).
// El sistema no recalcula su contenido; sólo lo guarda y lo exporta.
type Report struct {
	ID          int64
	ReportType  ReportType
	Title       string
	Location    string // opcional: "warehouse", un bar, o vacío para global
	DateFrom    *time.Time
	DateTo      *time.Time
	Data        json.RawMessage
	GeneratedBy int64
	CreatedAt   time.Time
}
