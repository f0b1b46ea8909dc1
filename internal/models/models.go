package models

import "math"

// PlanetPosition is one celestial body's place in a chart. Longitude is
// sidereal and always normalized to [0,360); sign, house and nakshatra are
// derived at construction and never mutated afterwards.
type PlanetPosition struct {
	Planet       Planet            `json:"planet"`
	Longitude    float64           `json:"longitude"`
	Sign         Sign              `json:"sign"`
	DegreeInSign float64           `json:"degree_in_sign"`
	House        int               `json:"house"` // 1-12, whole-sign
	Speed        float64           `json:"speed"` // signed degrees/day
	Retrograde   bool              `json:"retrograde"`
	Nakshatra    NakshatraPosition `json:"nakshatra"`
	Dignity      Dignity           `json:"dignity"`
}

// Ascendant is the chart's rising point. Computed once, immutable.
type Ascendant struct {
	Longitude float64           `json:"longitude"`
	Sign      Sign              `json:"sign"`
	Nakshatra NakshatraPosition `json:"nakshatra"`
}

// NewAscendant builds an ascendant from a sidereal longitude.
func NewAscendant(longitude float64) Ascendant {
	lon := NormalizeDegrees(longitude)
	return Ascendant{
		Longitude: lon,
		Sign:      SignOf(lon),
		Nakshatra: NakshatraOf(lon),
	}
}

// NewPlanetPosition builds a fully derived position from a sidereal
// longitude and daily motion. The house follows the whole-sign rule
// relative to the ascendant sign.
func NewPlanetPosition(planet Planet, longitude, speed float64, asc Ascendant) PlanetPosition {
	lon := NormalizeDegrees(longitude)
	sign := SignOf(lon)
	return PlanetPosition{
		Planet:       planet,
		Longitude:    lon,
		Sign:         sign,
		DegreeInSign: DegreeInSign(lon),
		House:        HouseOf(sign, asc.Sign),
		Speed:        speed,
		Retrograde:   speed < 0,
		Nakshatra:    NakshatraOf(lon),
		Dignity:      DignityOf(planet, sign),
	}
}

// DeriveKetu returns the descending node for a given Rahu position:
// 180° opposite, motion magnitude shared with inverted sign, retrograde
// flag inverted.
func DeriveKetu(rahu PlanetPosition, asc Ascendant) PlanetPosition {
	pos := NewPlanetPosition(Ketu, rahu.Longitude+180, -rahu.Speed, asc)
	pos.Retrograde = !rahu.Retrograde
	return pos
}

// HouseOf maps a planet sign to its whole-sign house for a given
// ascendant sign: ((planet_sign - asc_sign) mod 12) + 1.
func HouseOf(planetSign, ascSign Sign) int {
	return ((int(planetSign)-int(ascSign))+12)%12 + 1
}

// Houses maps each house number (1-12) to the planets occupying it.
// Every planet appears in exactly one house; houses may be empty.
type Houses map[int][]Planet

// AssignHouses builds the house occupancy map from a set of positions.
func AssignHouses(positions map[Planet]PlanetPosition) Houses {
	houses := make(Houses, 12)
	for h := 1; h <= 12; h++ {
		houses[h] = nil
	}
	for _, p := range AllPlanets {
		pos, ok := positions[p]
		if !ok {
			continue
		}
		houses[pos.House] = append(houses[pos.House], p)
	}
	return houses
}

// HousesApart returns the minimum distance between two houses around the
// 12-house circle, in [0,6].
func HousesApart(h1, h2 int) int {
	diff := h1 - h2
	if diff < 0 {
		diff = -diff
	}
	if diff > 6 {
		diff = 12 - diff
	}
	return diff
}

// HouseAt returns the house a fixed offset ahead of a starting house,
// counted inclusively in the Vedic manner: offset 6 from house 1 is
// house 7.
func HouseAt(from, offset int) int {
	return (from-1+offset)%12 + 1
}

// Clamp restricts a value to the given range.
func Clamp(value, minVal, maxVal float64) float64 {
	return math.Min(math.Max(value, minVal), maxVal)
}
