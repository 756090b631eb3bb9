// Package systems implements the simulation rules: environment field
// generation and sampling, toroidal movement, foraging and metabolism,
// and the predation energy transfer.
package systems

import "math/rand"

// Temperature and pressure bounds of the abyssal environment. Metabolic
// efficiency peaks at OptimalTemperature / OptimalPressure.
const (
	MinTemperature = 5.0
	MaxTemperature = 15.0

	BasePressure     = 100.0
	PressurePerDepth = 10.0

	OptimalTemperature = 10.0
	OptimalPressure    = 200.0
)

// Environment holds the static per-cell temperature and pressure fields.
// Both fields are generated once at construction and never change, so
// sampling is a pure lookup.
type Environment struct {
	Width, Height int

	temperature [][]float64
	pressure    [][]float64
}

// NewEnvironment generates the fields for a Width×Height grid. Temperature
// is an independent uniform draw in [MinTemperature, MaxTemperature) per
// cell from rng; pressure is BasePressure + PressurePerDepth*y, independent
// of x and of randomness.
func NewEnvironment(width, height int, rng *rand.Rand) *Environment {
	temperature := make([][]float64, width)
	pressure := make([][]float64, width)
	for x := 0; x < width; x++ {
		temperature[x] = make([]float64, height)
		pressure[x] = make([]float64, height)
		for y := 0; y < height; y++ {
			temperature[x][y] = MinTemperature + rng.Float64()*(MaxTemperature-MinTemperature)
			pressure[x][y] = BasePressure + PressurePerDepth*float64(y)
		}
	}

	return &Environment{
		Width:       width,
		Height:      height,
		temperature: temperature,
		pressure:    pressure,
	}
}

// TemperatureAt returns the temperature at the given cell.
func (e *Environment) TemperatureAt(x, y int) float64 {
	return e.temperature[x][y]
}

// PressureAt returns the pressure at the given cell.
func (e *Environment) PressureAt(x, y int) float64 {
	return e.pressure[x][y]
}
