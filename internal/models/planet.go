// Package models provides the shared chart data model for the engine.
package models

// Planet identifies a celestial body used in chart calculations.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu" // ascending lunar node
	Ketu    Planet = "Ketu" // descending lunar node, always 180° from Rahu
)

// AllPlanets lists every body in canonical order.
var AllPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// EphemerisBodies lists the bodies an ephemeris provider must supply.
// Ketu is derived from Rahu and never requested directly.
var EphemerisBodies = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu}

// beneficPlanets and maleficPlanets are the fixed natural classifications
// used by the strength, aspect and transit calculators.
var beneficPlanets = map[Planet]bool{
	Sun:     true,
	Moon:    true,
	Jupiter: true,
	Venus:   true,
	Mercury: true,
}

var maleficPlanets = map[Planet]bool{
	Mars:   true,
	Saturn: true,
	Rahu:   true,
	Ketu:   true,
}

// IsBenefic returns true if the planet is a natural benefic.
func (p Planet) IsBenefic() bool {
	return beneficPlanets[p]
}

// IsMalefic returns true if the planet is a natural malefic.
func (p Planet) IsMalefic() bool {
	return maleficPlanets[p]
}

// IsNode returns true for the two lunar nodes.
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// Valid reports whether p is one of the nine known bodies.
func (p Planet) Valid() bool {
	for _, known := range AllPlanets {
		if p == known {
			return true
		}
	}
	return false
}
