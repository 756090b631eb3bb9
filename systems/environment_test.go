package systems

import (
	"math/rand"
	"testing"
)

func TestEnvironmentFieldRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	env := NewEnvironment(50, 50, rng)

	for x := 0; x < env.Width; x++ {
		for y := 0; y < env.Height; y++ {
			temp := env.TemperatureAt(x, y)
			if temp < MinTemperature || temp >= MaxTemperature {
				t.Fatalf("temperature at (%d,%d) = %v, want in [%v, %v)", x, y, temp, MinTemperature, MaxTemperature)
			}

			want := BasePressure + PressurePerDepth*float64(y)
			if got := env.PressureAt(x, y); got != want {
				t.Fatalf("pressure at (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPressureIndependentOfX(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	env := NewEnvironment(20, 10, rng)

	for y := 0; y < env.Height; y++ {
		first := env.PressureAt(0, y)
		for x := 1; x < env.Width; x++ {
			if env.PressureAt(x, y) != first {
				t.Fatalf("pressure at (%d,%d) = %v differs from x=0 value %v", x, y, env.PressureAt(x, y), first)
			}
		}
	}
}

func TestEnvironmentSamplingIsStable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	env := NewEnvironment(8, 8, rng)

	// Fields are generated once; repeated sampling must return identical
	// values no matter how much randomness is consumed afterwards.
	before := env.TemperatureAt(4, 4)
	rng.Float64()
	rng.Intn(3)
	if after := env.TemperatureAt(4, 4); after != before {
		t.Errorf("temperature changed between samples: %v then %v", before, after)
	}
}
