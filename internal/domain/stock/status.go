package stock

// Status clasifica la cantidad disponible frente a los umbrales del producto.
type Status string

const (
	StatusLow    Status = "low"
	StatusNormal Status = "normal"
	StatusHigh   Status = "high"
)

// Classify devuelve el estado de stock para una cantidad dada.
// Los límites son inclusivos por abajo: quantity == minStockLevel ya es "low",
// quantity == reorderPoint sigue siendo "normal". La función es total: no exige
// reorderPoint >= minStockLevel.
func Classify(quantity, minStockLevel, reorderPoint int) Status {
	if quantity <= minStockLevel {
		return StatusLow
	}
	if quantity <= reorderPoint {
		return StatusNormal
	}
	return StatusHigh
}
