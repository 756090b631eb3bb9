package telemetry

import "github.com/pthm-cable/vent/components"

// Collector tallies events within a cycle and produces CycleStats. It is
// a passive observer: the engine never reads it.
type Collector struct {
	forages           int
	energyForaged     float64
	predations        int
	energyTransferred float64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record tallies one event.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventForage:
		c.forages++
		c.energyForaged += ev.EnergyGained
	case EventPredation:
		c.predations++
		c.energyTransferred += ev.Transferred
	}
}

// RecordAll tallies a batch of events, typically one cycle's worth.
func (c *Collector) RecordAll(events []Event) {
	for _, ev := range events {
		c.Record(ev)
	}
}

// Flush produces the stats for the cycle just finished and resets the
// tallies. energies holds the post-cycle energy of every organism, grouped
// by species; species with no members are omitted from the report.
func (c *Collector) Flush(cycle int, energies map[components.Species][]float64) CycleStats {
	stats := CycleStats{
		Cycle:             cycle,
		Forages:           c.forages,
		EnergyForaged:     c.energyForaged,
		Predations:        c.predations,
		EnergyTransferred: c.energyTransferred,
	}
	for _, st := range ComputeSpeciesStats(energies) {
		stats.setSpecies(st)
	}

	c.forages = 0
	c.energyForaged = 0
	c.predations = 0
	c.energyTransferred = 0

	return stats
}
