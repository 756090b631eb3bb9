// Package sim implements the simulation engine: world construction and
// validation, the per-cycle state machine, and the snapshot accessor the
// display layer consumes.
package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/vent/components"
	"github.com/pthm-cable/vent/config"
	"github.com/pthm-cable/vent/systems"
	"github.com/pthm-cable/vent/telemetry"
)

// ErrInvalidConfig marks precondition violations in the world setup:
// missing features, bad dimensions, or a predator species with no prey to
// hunt. Construction fails rather than producing undefined behavior later.
var ErrInvalidConfig = errors.New("invalid configuration")

// Engine owns all mutable simulation state. It has no terminal state: the
// caller decides how many cycles to run. All randomness flows through one
// seeded generator, consumed in a fixed order (feature placement, organism
// placement, temperature field; then per cycle and per organism: move
// delta, compound choice, predation target), so runs with the same seed
// and configuration are reproducible event for event.
type Engine struct {
	width  int
	height int
	seed   int64
	rng    *rand.Rand

	world     *ecs.World
	mapper    *ecs.Map3[components.Position, components.Energy, components.Organism]
	posMap    *ecs.Map1[components.Position]
	energyMap *ecs.Map1[components.Energy]
	orgMap    *ecs.Map1[components.Organism]

	env      *systems.Environment
	features []components.GeologicalFeature

	// entities holds every organism in creation order. The slice index is
	// the organism's ID, and cycles process organisms in this order.
	// Organisms are never removed.
	entities  []ecs.Entity
	bySpecies map[components.Species][]uint32

	cycle int
}

// New builds a world from the configuration, seeding the run's generator
// with seed. Returns ErrInvalidConfig (wrapped) for precondition
// violations.
func New(cfg *config.Config, seed int64) (*Engine, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	world := ecs.NewWorld()

	e := &Engine{
		width:  cfg.World.Width,
		height: cfg.World.Height,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),

		world:     world,
		mapper:    ecs.NewMap3[components.Position, components.Energy, components.Organism](world),
		posMap:    ecs.NewMap1[components.Position](world),
		energyMap: ecs.NewMap1[components.Energy](world),
		orgMap:    ecs.NewMap1[components.Organism](world),

		bySpecies: make(map[components.Species][]uint32),
	}

	e.placeFeatures(cfg.Features)
	e.spawnPopulation(cfg.Population)

	// Fields are generated last so placement draws precede the
	// temperature draws in the generator's stream.
	e.env = systems.NewEnvironment(e.width, e.height, e.rng)

	return e, nil
}

// validate checks the configuration preconditions before any state is
// built.
func validate(cfg *config.Config) error {
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return fmt.Errorf("%w: grid dimensions %dx%d", ErrInvalidConfig, cfg.World.Width, cfg.World.Height)
	}

	totalFeatures := 0
	for _, fc := range cfg.Features {
		if fc.Count < 0 {
			return fmt.Errorf("%w: feature %q has negative count %d", ErrInvalidConfig, fc.Name, fc.Count)
		}
		if fc.Count > 0 && len(fc.Compounds) == 0 {
			return fmt.Errorf("%w: feature %q has no compounds", ErrInvalidConfig, fc.Name)
		}
		totalFeatures += fc.Count
	}
	if totalFeatures == 0 {
		return fmt.Errorf("%w: no geological features", ErrInvalidConfig)
	}

	counts := make(map[components.Species]int)
	for _, pc := range cfg.Population {
		species, err := components.ParseSpecies(pc.Species)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if pc.Count < 0 {
			return fmt.Errorf("%w: species %q has negative count %d", ErrInvalidConfig, pc.Species, pc.Count)
		}
		counts[species] += pc.Count
	}

	// A predator species present without any of its prey would make the
	// predation rule select from an empty population.
	for species, count := range counts {
		profile, ok := species.Predation()
		if !ok || count == 0 {
			continue
		}
		if counts[profile.Prey] == 0 {
			return fmt.Errorf("%w: %s present with no %s to prey on", ErrInvalidConfig, species, profile.Prey)
		}
	}

	return nil
}

// placeFeatures creates all geological features at random grid cells, in
// config order within each group.
func (e *Engine) placeFeatures(groups []config.FeatureConfig) {
	for _, fc := range groups {
		compounds := make([]components.ChemicalCompound, len(fc.Compounds))
		for i, cc := range fc.Compounds {
			compounds[i] = components.ChemicalCompound{Name: cc.Name, EnergyYield: cc.Energy}
		}
		for i := 0; i < fc.Count; i++ {
			e.features = append(e.features, components.GeologicalFeature{
				Name:      fc.Name,
				Position:  e.randomPosition(),
				Compounds: compounds,
			})
		}
	}
}

// spawnPopulation creates all organisms at random grid cells, in config
// order within each cohort.
func (e *Engine) spawnPopulation(cohorts []config.PopulationConfig) {
	for _, pc := range cohorts {
		species, _ := components.ParseSpecies(pc.Species) // validated in New
		for i := 0; i < pc.Count; i++ {
			pos := e.randomPosition()
			energy := components.Energy{Value: pc.Energy}
			org := components.Organism{Species: species, Size: pc.Size}

			entity := e.mapper.NewEntity(&pos, &energy, &org)
			id := uint32(len(e.entities))
			e.entities = append(e.entities, entity)
			e.bySpecies[species] = append(e.bySpecies[species], id)
		}
	}
}

func (e *Engine) randomPosition() components.Position {
	return components.Position{X: e.rng.Intn(e.width), Y: e.rng.Intn(e.height)}
}

// Cycle returns the number of completed cycles.
func (e *Engine) Cycle() int {
	return e.cycle
}

// Step advances the simulation by exactly one cycle and returns the events
// it produced. Every organism, in creation order, moves, forages at the
// nearest feature, and then gets its predation check.
func (e *Engine) Step() []telemetry.Event {
	e.cycle++

	events := make([]telemetry.Event, 0, len(e.entities)+4)
	for id, entity := range e.entities {
		pos := e.posMap.Get(entity)
		energy := e.energyMap.Get(entity)
		org := e.orgMap.Get(entity)

		// Movement before foraging; the new position decides both the
		// nearest feature and the sampled conditions.
		dx, dy := systems.RandomStep(e.rng)
		*pos = systems.Move(*pos, dx, dy, e.width, e.height)

		feature := &e.features[systems.NearestFeature(e.features, *pos)]
		compound := feature.Compounds[e.rng.Intn(len(feature.Compounds))]

		temperature := e.env.TemperatureAt(pos.X, pos.Y)
		pressure := e.env.PressureAt(pos.X, pos.Y)

		gained := systems.Metabolize(compound, org.Size, temperature, pressure)
		energy.Value += gained

		events = append(events, telemetry.NewForageEvent(
			e.cycle, uint32(id), org.Species, *pos, gained, compound.Name, feature.Name))

		if ev, ok := e.tryPredation(uint32(id), *pos, energy, org.Species); ok {
			events = append(events, ev)
		}
	}

	return events
}

// tryPredation applies the species' predation rule, if it has one and its
// energy is over the hunting threshold. The target is one uniformly random
// individual of the prey species, chosen before any distance check; only
// if that individual happens to be within strike range does the transfer
// occur. The prey's live state is read, including changes from earlier in
// the same cycle.
func (e *Engine) tryPredation(id uint32, pos components.Position, energy *components.Energy, species components.Species) (telemetry.Event, bool) {
	profile, ok := species.Predation()
	if !ok || energy.Value <= profile.EnergyThreshold {
		return telemetry.Event{}, false
	}

	preyIDs := e.bySpecies[profile.Prey]
	if len(preyIDs) == 0 {
		return telemetry.Event{}, false
	}

	preyID := preyIDs[e.rng.Intn(len(preyIDs))]
	preyEntity := e.entities[preyID]

	preyPos := e.posMap.Get(preyEntity)
	if !systems.WithinStrikeRange(pos, *preyPos, profile.StrikeRange) {
		return telemetry.Event{}, false
	}

	preyEnergy := e.energyMap.Get(preyEntity)
	transferred := systems.TransferEnergy(energy, preyEnergy)

	return telemetry.NewPredationEvent(
		e.cycle, id, species, pos, preyID, profile.Prey,
		transferred, energy.Value, preyEnergy.Value), true
}

// Run advances the simulation by cycles steps, passing each cycle's events
// to observer. A nil observer just advances the simulation.
func (e *Engine) Run(cycles int, observer func(cycle int, events []telemetry.Event)) {
	for i := 0; i < cycles; i++ {
		events := e.Step()
		if observer != nil {
			observer(e.cycle, events)
		}
	}
}

// SpeciesEnergies returns the current energy of every organism grouped by
// species, in creation order within each species.
func (e *Engine) SpeciesEnergies() map[components.Species][]float64 {
	energies := make(map[components.Species][]float64, len(e.bySpecies))
	for species, ids := range e.bySpecies {
		values := make([]float64, len(ids))
		for i, id := range ids {
			values[i] = e.energyMap.Get(e.entities[id]).Value
		}
		energies[species] = values
	}
	return energies
}
