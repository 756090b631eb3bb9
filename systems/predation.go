package systems

import "github.com/pthm-cable/vent/components"

// WithinStrikeRange reports whether prey is close enough to predator for a
// transfer, by straight-line distance strictly under the profile's range.
func WithinStrikeRange(predator, prey components.Position, strikeRange float64) bool {
	return Distance(predator, prey) < strikeRange
}

// TransferEnergy moves half the prey's energy to the predator: the prey's
// reserve halves and the predator gains exactly that half, so the pair's
// combined energy is unchanged. Returns the amount transferred.
func TransferEnergy(predator, prey *components.Energy) float64 {
	half := prey.Value / 2
	predator.Value += half
	prey.Value = half
	return half
}
