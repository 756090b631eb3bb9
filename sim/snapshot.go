package sim

import (
	"github.com/pthm-cable/vent/telemetry"
)

// Snapshot returns a read-only copy of the current state for the display
// layer: feature positions, organism markers, and per-species mean
// energies. Species with no members are absent from MeanEnergy.
func (e *Engine) Snapshot() *telemetry.Snapshot {
	snapshot := &telemetry.Snapshot{
		Version:    telemetry.SnapshotVersion,
		Seed:       e.seed,
		Cycle:      e.cycle,
		Width:      e.width,
		Height:     e.height,
		Features:   make([]telemetry.FeatureState, len(e.features)),
		Organisms:  make([]telemetry.OrganismState, len(e.entities)),
		MeanEnergy: make(map[string]float64),
	}

	for i, f := range e.features {
		compounds := make([]string, len(f.Compounds))
		for j, c := range f.Compounds {
			compounds[j] = c.Name
		}
		snapshot.Features[i] = telemetry.FeatureState{
			Name:      f.Name,
			X:         f.Position.X,
			Y:         f.Position.Y,
			Compounds: compounds,
		}
	}

	for id, entity := range e.entities {
		pos := e.posMap.Get(entity)
		energy := e.energyMap.Get(entity)
		org := e.orgMap.Get(entity)
		snapshot.Organisms[id] = telemetry.OrganismState{
			ID:      uint32(id),
			Species: org.Species.String(),
			X:       pos.X,
			Y:       pos.Y,
			Energy:  energy.Value,
			Size:    org.Size,
		}
	}

	for _, st := range telemetry.ComputeSpeciesStats(e.SpeciesEnergies()) {
		snapshot.MeanEnergy[st.Species.String()] = st.MeanEnergy
	}

	return snapshot
}
