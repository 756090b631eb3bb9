package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/vent/components"
)

// RandomStep draws a movement delta with each component uniform from
// {-1, 0, 1}. dx is drawn before dy; callers relying on determinism must
// not reorder the draws.
func RandomStep(rng *rand.Rand) (dx, dy int) {
	return rng.Intn(3) - 1, rng.Intn(3) - 1
}

// Move displaces pos by (dx, dy) with toroidal wraparound, so the result
// always satisfies 0 <= X < width and 0 <= Y < height.
func Move(pos components.Position, dx, dy, width, height int) components.Position {
	return components.Position{
		X: wrap(pos.X+dx, width),
		Y: wrap(pos.Y+dy, height),
	}
}

// wrap reduces v modulo size into [0, size). Go's % keeps the sign of the
// dividend, so a negative v needs one correction.
func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// Distance returns the plain Euclidean distance between two grid cells.
// Both the nearest-feature scan and the predation range check use straight
// line distance, not toroidal distance.
func Distance(a, b components.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
