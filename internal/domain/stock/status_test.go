package stock_test

import (
	"testing"

	"github.com/bulldogbars/barstock-api/internal/domain/stock"
	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestClassify cubre los límites exactos de la clasificación:
// cantidad == mínimo ya es "low"; cantidad == punto de reorden sigue siendo
// "normal". Si alguien "corrige" un <= por un <, estos casos fallan.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_Limites(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		min      int
		reorder  int
		want     stock.Status
	}{
		{"igual al minimo es low", 10, 10, 20, stock.StatusLow},
		{"por debajo del minimo es low", 5, 10, 20, stock.StatusLow},
		{"cero con minimo cero es low", 0, 0, 20, stock.StatusLow},
		{"uno sobre el minimo es normal", 11, 10, 20, stock.StatusNormal},
		{"igual al punto de reorden es normal", 20, 10, 20, stock.StatusNormal},
		{"uno sobre el reorden es high", 21, 10, 20, stock.StatusHigh},
		{"muy por encima es high", 500, 10, 20, stock.StatusHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.Classify(tc.quantity, tc.min, tc.reorder)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestClassify_UmbralesInvertidos verifica que la función es total aunque el
// punto de reorden quede por debajo del mínimo (no se valida ese orden).
func TestClassify_UmbralesInvertidos(t *testing.T) {
	// min=20, reorder=10: todo lo que supera el mínimo también supera el reorden.
	assert.Equal(t, stock.StatusLow, stock.Classify(15, 20, 10))
	assert.Equal(t, stock.StatusHigh, stock.Classify(25, 20, 10))
}
