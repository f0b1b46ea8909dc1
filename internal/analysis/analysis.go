// Package analysis provides the derivation sections built on a natal
// chart: dasha timelines, strength profiles, divisional charts, aspects
// and transits.
package analysis

import (
	"time"

	"kundali-engine/internal/models"
)

// Input is the natal context every section consumes. It is assembled
// once by the chart builder and treated as read-only by sections.
type Input struct {
	BirthTime time.Time
	Latitude  float64
	Longitude float64

	Ascendant models.Ascendant
	Positions map[models.Planet]models.PlanetPosition
	Houses    models.Houses
}

// Position returns a planet's position and whether it is available.
func (in *Input) Position(p models.Planet) (models.PlanetPosition, bool) {
	pos, ok := in.Positions[p]
	return pos, ok
}

// Moon returns the Moon's position; the dasha section cannot run
// without it.
func (in *Input) Moon() (models.PlanetPosition, bool) {
	return in.Position(models.Moon)
}

// AvailablePlanets lists the planets present in the input, in canonical
// order.
func (in *Input) AvailablePlanets() []models.Planet {
	out := make([]models.Planet, 0, len(in.Positions))
	for _, p := range models.AllPlanets {
		if _, ok := in.Positions[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
