// Package components defines the entity model for the simulation:
// species variants, ECS components for organisms, and the immutable
// compound/feature records organisms forage from.
package components

import "fmt"

// Species identifies one of the chemosynthetic species. It is a closed
// set: simulation rules dispatch on the variant, never on display names.
type Species uint8

const (
	SpeciesMicrobe Species = iota // sulfur-oxidizing microbe
	SpeciesTubeworm
	SpeciesCrab
	numSpecies
)

// AllSpecies lists every variant in declaration order. Statistics and
// reports iterate this to keep per-species output order stable.
var AllSpecies = [...]Species{SpeciesMicrobe, SpeciesTubeworm, SpeciesCrab}

// speciesNames maps variants to the display names used in events and
// snapshots.
var speciesNames = [numSpecies]string{
	SpeciesMicrobe:  "Sulfur-oxidizing Microbe",
	SpeciesTubeworm: "Giant Tubeworm",
	SpeciesCrab:     "Yeti Crab",
}

// speciesKeys maps variants to the canonical lowercase keys accepted in
// configuration files.
var speciesKeys = [numSpecies]string{
	SpeciesMicrobe:  "microbe",
	SpeciesTubeworm: "tubeworm",
	SpeciesCrab:     "crab",
}

// String returns the species display name.
func (s Species) String() string {
	if int(s) >= len(speciesNames) {
		return fmt.Sprintf("Species(%d)", uint8(s))
	}
	return speciesNames[s]
}

// Key returns the canonical config key for the species.
func (s Species) Key() string {
	if int(s) >= len(speciesKeys) {
		return fmt.Sprintf("species(%d)", uint8(s))
	}
	return speciesKeys[s]
}

// ParseSpecies resolves a config key to a species variant.
func ParseSpecies(key string) (Species, error) {
	for i, k := range speciesKeys {
		if k == key {
			return Species(i), nil
		}
	}
	return 0, fmt.Errorf("unknown species %q", key)
}

// PredationProfile declares a species' predation rule: which species it
// preys on, the energy level it must exceed before it hunts, and the
// strike range within which a transfer occurs.
type PredationProfile struct {
	Prey            Species
	EnergyThreshold float64
	StrikeRange     float64
}

// predationProfiles declares, per variant, the predation rule that applies
// to it. Only the crab hunts; the other variants have no entry.
var predationProfiles = map[Species]PredationProfile{
	SpeciesCrab: {
		Prey:            SpeciesTubeworm,
		EnergyThreshold: 10,
		StrikeRange:     2,
	},
}

// Predation returns the predation profile for the species, if it has one.
func (s Species) Predation() (PredationProfile, bool) {
	p, ok := predationProfiles[s]
	return p, ok
}

// Position is an organism's cell on the toroidal grid.
type Position struct {
	X, Y int
}

// Energy holds an organism's mutable energy reserve. Metabolism only ever
// adds to it; predation can halve it, so it has no enforced floor.
type Energy struct {
	Value float64
}

// Organism holds the per-organism constants: the species tag used for rule
// dispatch and the size factor scaling metabolic intake. Both are fixed for
// the organism's lifetime.
type Organism struct {
	Species Species
	Size    float64
}

// ChemicalCompound is an immutable energy source found at a geological
// feature.
type ChemicalCompound struct {
	Name        string
	EnergyYield float64
}

// GeologicalFeature is a fixed-position source of one or more compounds.
// Features are created at world setup and never move or deplete.
type GeologicalFeature struct {
	Name      string
	Position  Position
	Compounds []ChemicalCompound // never empty
}
