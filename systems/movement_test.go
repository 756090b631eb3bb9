package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/vent/components"
)

func TestMoveWraps(t *testing.T) {
	tests := []struct {
		name   string
		pos    components.Position
		dx, dy int
		want   components.Position
	}{
		{"interior", components.Position{X: 5, Y: 5}, 1, -1, components.Position{X: 6, Y: 4}},
		{"no move", components.Position{X: 5, Y: 5}, 0, 0, components.Position{X: 5, Y: 5}},
		{"wrap right", components.Position{X: 9, Y: 3}, 1, 0, components.Position{X: 0, Y: 3}},
		{"wrap left", components.Position{X: 0, Y: 3}, -1, 0, components.Position{X: 9, Y: 3}},
		{"wrap top", components.Position{X: 2, Y: 9}, 0, 1, components.Position{X: 2, Y: 0}},
		{"wrap bottom", components.Position{X: 2, Y: 0}, 0, -1, components.Position{X: 2, Y: 9}},
		{"corner wrap", components.Position{X: 0, Y: 0}, -1, -1, components.Position{X: 9, Y: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Move(tt.pos, tt.dx, tt.dy, 10, 10)
			if got != tt.want {
				t.Errorf("Move(%v, %d, %d) = %v, want %v", tt.pos, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestRandomStepStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pos := components.Position{X: 0, Y: 0}

	for i := 0; i < 10000; i++ {
		dx, dy := RandomStep(rng)
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("step (%d,%d) outside {-1,0,1}", dx, dy)
		}
		pos = Move(pos, dx, dy, 7, 13)
		if pos.X < 0 || pos.X >= 7 || pos.Y < 0 || pos.Y >= 13 {
			t.Fatalf("position %v out of bounds after %d steps", pos, i+1)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b components.Position
		want float64
	}{
		{"same cell", components.Position{X: 3, Y: 3}, components.Position{X: 3, Y: 3}, 0},
		{"unit x", components.Position{X: 0, Y: 0}, components.Position{X: 1, Y: 0}, 1},
		{"diagonal", components.Position{X: 0, Y: 0}, components.Position{X: 3, Y: 4}, 5},
		{"not toroidal", components.Position{X: 0, Y: 0}, components.Position{X: 9, Y: 0}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
