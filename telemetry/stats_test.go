package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/vent/components"
)

func TestComputeSpeciesStats(t *testing.T) {
	energies := map[components.Species][]float64{
		components.SpeciesMicrobe:  {1, 2, 3},
		components.SpeciesTubeworm: {5},
	}

	stats := ComputeSpeciesStats(energies)

	if len(stats) != 2 {
		t.Fatalf("got %d species stats, want 2", len(stats))
	}

	microbe := stats[0]
	if microbe.Species != components.SpeciesMicrobe {
		t.Fatalf("first stat species = %v, want microbe", microbe.Species)
	}
	if microbe.Count != 3 {
		t.Errorf("microbe count = %d, want 3", microbe.Count)
	}
	if math.Abs(microbe.MeanEnergy-2) > 1e-12 {
		t.Errorf("microbe mean = %v, want 2", microbe.MeanEnergy)
	}
	if math.Abs(microbe.StdDev-1) > 1e-12 {
		t.Errorf("microbe std = %v, want 1", microbe.StdDev)
	}

	tubeworm := stats[1]
	if tubeworm.Count != 1 {
		t.Errorf("tubeworm count = %d, want 1", tubeworm.Count)
	}
	if tubeworm.MeanEnergy != 5 {
		t.Errorf("tubeworm mean = %v, want 5", tubeworm.MeanEnergy)
	}
	if tubeworm.StdDev != 0 {
		t.Errorf("tubeworm std = %v, want 0 for a single member", tubeworm.StdDev)
	}
}

func TestComputeSpeciesStatsOmitsEmptySpecies(t *testing.T) {
	energies := map[components.Species][]float64{
		components.SpeciesCrab:    {3, 3},
		components.SpeciesMicrobe: {},
	}

	stats := ComputeSpeciesStats(energies)

	if len(stats) != 1 {
		t.Fatalf("got %d species stats, want 1", len(stats))
	}
	if stats[0].Species != components.SpeciesCrab {
		t.Errorf("stat species = %v, want crab", stats[0].Species)
	}
}

func TestComputeSpeciesStatsEmpty(t *testing.T) {
	if stats := ComputeSpeciesStats(nil); len(stats) != 0 {
		t.Errorf("got %d stats for nil input, want 0", len(stats))
	}
}
