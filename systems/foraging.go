package systems

import (
	"math"

	"github.com/pthm-cable/vent/components"
)

// NearestFeature returns the index of the feature closest to pos by
// Euclidean distance. Features are scanned in slice order and ties keep
// the first feature encountered, so the result is a pure function of the
// positions involved. The slice must be non-empty; that is validated at
// engine construction.
func NearestFeature(features []components.GeologicalFeature, pos components.Position) int {
	best := 0
	bestDist := Distance(features[0].Position, pos)
	for i := 1; i < len(features); i++ {
		if d := Distance(features[i].Position, pos); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Efficiency computes the metabolic efficiency at the given temperature
// and pressure. It is 1 exactly at the optimum (10, 200), falls off
// linearly with deviation, and is clamped at 0.
func Efficiency(temperature, pressure float64) float64 {
	eff := 1 - math.Abs(temperature-OptimalTemperature)/20 - math.Abs(pressure-OptimalPressure)/400
	return math.Max(0, eff)
}

// Metabolize returns the energy gained from consuming compound under the
// given conditions: yield * size * efficiency. The result is never
// negative; the caller credits it to the organism.
func Metabolize(compound components.ChemicalCompound, size, temperature, pressure float64) float64 {
	return compound.EnergyYield * size * Efficiency(temperature, pressure)
}
