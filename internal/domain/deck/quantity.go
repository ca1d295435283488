package deck

import (
	"math"

	"github.com/phrazzld/armoury-api/internal/domain"
)

// ResolveQuantities returns the effective pack quantity for every veterancy
// level: out[i] = defaultQuantity * multipliers[i]. Values are not rounded;
// use UnitCount when a whole number of units is needed.
func ResolveQuantities(defaultQuantity float64, multipliers []float64) []float64 {
	out := make([]float64, len(multipliers))
	for i, m := range multipliers {
		out[i] = defaultQuantity * m
	}
	return out
}

// UnitCount converts a resolved quantity into the number of units actually
// fielded. Fractions of a unit are dropped.
func UnitCount(quantity float64) int {
	if quantity <= 0 {
		return 0
	}
	return int(math.Floor(quantity))
}

// PackQuantities resolves the per-veterancy quantities of a pack.
func PackQuantities(p domain.Pack) []float64 {
	return ResolveQuantities(p.NumberOfUnitsInPack, p.NumberOfUnitInPackXPMultiplier)
}

// QuantityAt returns the pack quantity at the given veterancy level, or 0 if
// the pack has no multiplier for that level.
func QuantityAt(p domain.Pack, veterancy int) float64 {
	if veterancy < 0 || veterancy >= len(p.NumberOfUnitInPackXPMultiplier) {
		return 0
	}
	return p.NumberOfUnitsInPack * p.NumberOfUnitInPackXPMultiplier[veterancy]
}
