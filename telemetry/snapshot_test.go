package telemetry

import (
	"reflect"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	snapshot := &Snapshot{
		Version: SnapshotVersion,
		Seed:    42,
		Cycle:   17,
		Width:   50,
		Height:  50,
		Features: []FeatureState{
			{Name: "Hydrothermal Vent", X: 3, Y: 9, Compounds: []string{"Hydrogen Sulfide", "Iron"}},
		},
		Organisms: []OrganismState{
			{ID: 0, Species: "Yeti Crab", X: 4, Y: 9, Energy: 12.5, Size: 0.05},
		},
		MeanEnergy: map[string]float64{"Yeti Crab": 12.5},
	}

	dir := t.TempDir()
	path, err := SaveSnapshot(snapshot, dir)
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if !reflect.DeepEqual(snapshot, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", snapshot, loaded)
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := LoadSnapshot("does/not/exist.json"); err == nil {
		t.Error("expected error for missing file")
	}
}
