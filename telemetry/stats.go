package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/vent/components"
)

// SpeciesStat holds the per-species energy distribution at the end of a
// cycle. Species with no members get no SpeciesStat at all; a mean over
// zero organisms is not a number, not a zero.
type SpeciesStat struct {
	Species    components.Species
	Count      int
	MeanEnergy float64
	StdDev     float64
}

// ComputeSpeciesStats aggregates per-organism energies into one stat per
// species, in declaration order. Species absent from energies (or with an
// empty slice) are omitted.
func ComputeSpeciesStats(energies map[components.Species][]float64) []SpeciesStat {
	stats := make([]SpeciesStat, 0, len(energies))
	for _, s := range components.AllSpecies {
		values := energies[s]
		if len(values) == 0 {
			continue
		}
		std := 0.0
		if len(values) > 1 {
			std = stat.StdDev(values, nil)
		}
		stats = append(stats, SpeciesStat{
			Species:    s,
			Count:      len(values),
			MeanEnergy: stat.Mean(values, nil),
			StdDev:     std,
		})
	}
	return stats
}

// CycleStats is one cycle's aggregated report: event tallies plus the
// energy distribution of every populated species. Columns are fixed per
// species so rows line up across the run; a zero count marks a species
// with no data that cycle.
type CycleStats struct {
	Cycle int `csv:"cycle"`

	Forages       int     `csv:"forages"`
	EnergyForaged float64 `csv:"energy_foraged"`

	Predations        int     `csv:"predations"`
	EnergyTransferred float64 `csv:"energy_transferred"`

	MicrobeCount      int     `csv:"microbe_count"`
	MicrobeMeanEnergy float64 `csv:"microbe_energy_mean"`
	MicrobeEnergyStd  float64 `csv:"microbe_energy_std"`

	TubewormCount      int     `csv:"tubeworm_count"`
	TubewormMeanEnergy float64 `csv:"tubeworm_energy_mean"`
	TubewormEnergyStd  float64 `csv:"tubeworm_energy_std"`

	CrabCount      int     `csv:"crab_count"`
	CrabMeanEnergy float64 `csv:"crab_energy_mean"`
	CrabEnergyStd  float64 `csv:"crab_energy_std"`
}

// setSpecies fills the columns for one species.
func (s *CycleStats) setSpecies(st SpeciesStat) {
	switch st.Species {
	case components.SpeciesMicrobe:
		s.MicrobeCount = st.Count
		s.MicrobeMeanEnergy = st.MeanEnergy
		s.MicrobeEnergyStd = st.StdDev
	case components.SpeciesTubeworm:
		s.TubewormCount = st.Count
		s.TubewormMeanEnergy = st.MeanEnergy
		s.TubewormEnergyStd = st.StdDev
	case components.SpeciesCrab:
		s.CrabCount = st.Count
		s.CrabMeanEnergy = st.MeanEnergy
		s.CrabEnergyStd = st.StdDev
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s CycleStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("cycle", s.Cycle),
		slog.Int("forages", s.Forages),
		slog.Float64("energy_foraged", s.EnergyForaged),
		slog.Int("predations", s.Predations),
		slog.Float64("energy_transferred", s.EnergyTransferred),
		slog.Int("microbe_count", s.MicrobeCount),
		slog.Float64("microbe_energy_mean", s.MicrobeMeanEnergy),
		slog.Int("tubeworm_count", s.TubewormCount),
		slog.Float64("tubeworm_energy_mean", s.TubewormMeanEnergy),
		slog.Int("crab_count", s.CrabCount),
		slog.Float64("crab_energy_mean", s.CrabMeanEnergy),
	)
}
