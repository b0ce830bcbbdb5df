package entity

import "time"

// AlertLowStock es el único tipo de alerta generado por el ledger.
const AlertLowStock = "low_stock"

// StockAlert señala que un producto cayó a su nivel mínimo en una ubicación.
// Location es "warehouse" o el código de un bar. Se resuelve cuando el stock
// vuelve a superar el umbral.
type StockAlert struct {
	ID              int64
	ProductID       int64
	Location        string
	AlertType       string
	CurrentQuantity int
	Threshold       int
	IsResolved      bool
	ResolvedAt      *time.Time
	CreatedAt       time.Time
}
