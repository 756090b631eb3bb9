package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot is a read-only copy of the simulation state, taken for the
// display layer. Building one never mutates engine state.
type Snapshot struct {
	Version int   `json:"version"`
	Seed    int64 `json:"seed"`
	Cycle   int   `json:"cycle"`

	Width  int `json:"width"`
	Height int `json:"height"`

	Features  []FeatureState  `json:"features"`
	Organisms []OrganismState `json:"organisms"`

	// MeanEnergy maps species display name to mean energy. Species with
	// no members are absent.
	MeanEnergy map[string]float64 `json:"mean_energy"`
}

// FeatureState is one geological feature as seen by the display layer.
type FeatureState struct {
	Name      string   `json:"name"`
	X         int      `json:"x"`
	Y         int      `json:"y"`
	Compounds []string `json:"compounds"`
}

// OrganismState is one organism as seen by the display layer: enough to
// render a colored (species) and sized (size) marker at (x, y).
type OrganismState struct {
	ID      uint32  `json:"id"`
	Species string  `json:"species"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Energy  float64 `json:"energy"`
	Size    float64 `json:"size"`
}

// SaveSnapshot writes a snapshot to dir as snapshot_<cycle>.json and
// returns the path written.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("snapshot_%d.json", snapshot.Cycle))

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
