// Package excel construye libros XLSX de inventario con excelize.
package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bulldogbars/barstock-api/internal/domain/repository"
	"github.com/bulldogbars/barstock-api/internal/domain/stock"
)

const sheetInventory = "Inventario"

// BuildInventoryWorkbook arma el libro de inventario de bodega: una fila por
// producto con su clasificación de stock. El caller escribe el resultado con
// File.Write y lo cierra.
func BuildInventoryWorkbook(rows []repository.InventoryRow, generatedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetInventory)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	headers := []string{"ID", "Producto", "Categoría", "Unidad", "Cantidad",
		"Stock mínimo", "Punto de reorden", "Estado", "Último reabastecimiento"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetInventory, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera %s: %w", h, err)
		}
	}
	endCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetInventory, "A1", endCol, headerStyle); err != nil {
		return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
	}

	for i, item := range rows {
		r := i + 2
		status := stock.Classify(item.Quantity, item.MinStockLevel, item.ReorderPoint)
		restocked := ""
		if item.LastRestocked != nil {
			restocked = item.LastRestocked.Format("02/01/2006 15:04")
		}
		values := []any{item.ProductID, item.ProductName, string(item.Category),
			item.Unit, item.Quantity, item.MinStockLevel, item.ReorderPoint,
			string(status), restocked}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, r)
			if err := f.SetCellValue(sheetInventory, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", r, err)
			}
		}
	}

	// Pie con marca de generación, dos filas debajo de los datos.
	footCell, _ := excelize.CoordinatesToCellName(1, len(rows)+3)
	if err := f.SetCellValue(sheetInventory, footCell,
		"Generado: "+generatedAt.Format("02/01/2006 15:04")); err != nil {
		return nil, fmt.Errorf("excel: pie: %w", err)
	}

	if err := f.SetColWidth(sheetInventory, "B", "B", 32); err != nil {
		return nil, fmt.Errorf("excel: ancho de columna: %w", err)
	}
	return f, nil
}
