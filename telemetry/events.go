// Package telemetry provides the observer surface of the simulation:
// per-cycle events, aggregated statistics, CSV output, and snapshots.
package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/vent/components"
)

// EventType identifies simulation events.
type EventType uint8

const (
	EventForage EventType = iota
	EventPredation
)

// Event is a single occurrence within a cycle. Forage events are emitted
// for every organism every cycle; predation events only when a transfer
// happened.
type Event struct {
	Type       EventType
	Cycle      int
	OrganismID uint32
	Species    components.Species
	Position   components.Position

	// Forage fields
	EnergyGained float64
	Compound     string
	Feature      string

	// Predation fields
	PreyID         uint32
	PreySpecies    components.Species
	Transferred    float64
	PredatorEnergy float64 // predator energy after the transfer
	PreyEnergy     float64 // prey energy after the transfer
}

// NewForageEvent creates a foraging event.
func NewForageEvent(cycle int, id uint32, species components.Species, pos components.Position, gained float64, compound, feature string) Event {
	return Event{
		Type:         EventForage,
		Cycle:        cycle,
		OrganismID:   id,
		Species:      species,
		Position:     pos,
		EnergyGained: gained,
		Compound:     compound,
		Feature:      feature,
	}
}

// NewPredationEvent creates a predation event recording a completed
// energy transfer.
func NewPredationEvent(cycle int, predatorID uint32, predator components.Species, pos components.Position, preyID uint32, prey components.Species, transferred, predatorEnergy, preyEnergy float64) Event {
	return Event{
		Type:           EventPredation,
		Cycle:          cycle,
		OrganismID:     predatorID,
		Species:        predator,
		Position:       pos,
		PreyID:         preyID,
		PreySpecies:    prey,
		Transferred:    transferred,
		PredatorEnergy: predatorEnergy,
		PreyEnergy:     preyEnergy,
	}
}

// LogValue implements slog.LogValuer so events can be logged structurally.
func (ev Event) LogValue() slog.Value {
	switch ev.Type {
	case EventPredation:
		return slog.GroupValue(
			slog.String("type", "predation"),
			slog.Int("cycle", ev.Cycle),
			slog.String("predator", ev.Species.String()),
			slog.Int("predator_id", int(ev.OrganismID)),
			slog.String("prey", ev.PreySpecies.String()),
			slog.Int("prey_id", int(ev.PreyID)),
			slog.Float64("transferred", ev.Transferred),
			slog.Float64("predator_energy", ev.PredatorEnergy),
			slog.Float64("prey_energy", ev.PreyEnergy),
		)
	default:
		return slog.GroupValue(
			slog.String("type", "forage"),
			slog.Int("cycle", ev.Cycle),
			slog.String("organism", ev.Species.String()),
			slog.Int("organism_id", int(ev.OrganismID)),
			slog.Int("x", ev.Position.X),
			slog.Int("y", ev.Position.Y),
			slog.Float64("energy_gained", ev.EnergyGained),
			slog.String("compound", ev.Compound),
			slog.String("feature", ev.Feature),
		)
	}
}
