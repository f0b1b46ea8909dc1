package ephemeris

import (
	"context"
	"math"

	"kundali-engine/internal/models"
)

// meanElement is a body's mean tropical longitude at J2000 and its mean
// daily motion. Linear mean elements are a coarse approximation of the
// true geocentric position; they are deterministic and good enough for
// sign-level work when no high-precision ephemeris is wired in.
type meanElement struct {
	epochLongitude float64 // degrees at J2000
	dailyMotion    float64 // degrees per day
}

var meanElements = map[models.Planet]meanElement{
	models.Sun:     {280.460, 0.98564736},
	models.Moon:    {218.316, 13.17639648},
	models.Mercury: {252.251, 4.09233445},
	models.Venus:   {181.980, 1.60213034},
	models.Mars:    {355.433, 0.52402068},
	models.Jupiter: {34.351, 0.08308529},
	models.Saturn:  {50.077, 0.03344414},
	// Mean lunar node regresses through the zodiac.
	models.Rahu: {125.045, -0.05295377},
}

// ayanamsaOffsets gives each model's sidereal offset at J2000 in degrees.
// The offset grows by the precession rate over time.
var ayanamsaOffsets = map[string]float64{
	"lahiri":       23.85319,
	"raman":        22.37069,
	"krishnamurti": 23.75944,
}

// precessionRate is the annual growth of the ayanamsa in degrees.
const precessionRate = 50.2888 / 3600.0

// MeanProvider computes positions from linear mean orbital elements.
// It is fully deterministic and needs no external data files.
type MeanProvider struct {
	ayanamsa string
}

// NewMeanProvider creates a mean-element provider with the given
// ayanamsa model. Unknown models fall back to lahiri.
func NewMeanProvider(ayanamsa string) *MeanProvider {
	if _, ok := ayanamsaOffsets[ayanamsa]; !ok {
		ayanamsa = "lahiri"
	}
	return &MeanProvider{ayanamsa: ayanamsa}
}

// Name identifies the provider in logs and errors.
func (p *MeanProvider) Name() string {
	return "mean"
}

// Ayanamsa returns the sidereal offset in degrees at the given Julian Day.
func (p *MeanProvider) Ayanamsa(jd float64) float64 {
	years := DaysSinceJ2000(jd) / 365.25
	return ayanamsaOffsets[p.ayanamsa] + precessionRate*years
}

// Positions returns mean sidereal positions for all ephemeris bodies.
func (p *MeanProvider) Positions(ctx context.Context, jd float64) (map[models.Planet]BodyState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	days := DaysSinceJ2000(jd)
	ayanamsa := p.Ayanamsa(jd)

	positions := make(map[models.Planet]BodyState, len(models.EphemerisBodies))
	for _, body := range models.EphemerisBodies {
		el := meanElements[body]
		tropical := el.epochLongitude + el.dailyMotion*days
		positions[body] = BodyState{
			Longitude: models.NormalizeDegrees(tropical - ayanamsa),
			Speed:     el.dailyMotion,
		}
	}
	return positions, nil
}

// Ascendant returns the sidereal rising degree for a time and place,
// computed from local sidereal time and the standard ascendant formula.
func (p *MeanProvider) Ascendant(ctx context.Context, jd, latitude, longitude float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	// Greenwich mean sidereal time in degrees.
	gmst := models.NormalizeDegrees(280.46061837 + 360.98564736629*DaysSinceJ2000(jd))
	// Right ascension of the local meridian.
	ramc := models.NormalizeDegrees(gmst + longitude)

	const obliquity = 23.4392911 // mean obliquity at J2000, degrees

	ramcRad := ramc * math.Pi / 180
	latRad := latitude * math.Pi / 180
	oblRad := obliquity * math.Pi / 180

	y := -math.Cos(ramcRad)
	x := math.Sin(ramcRad)*math.Cos(oblRad) + math.Tan(latRad)*math.Sin(oblRad)
	tropical := models.NormalizeDegrees(math.Atan2(y, x) * 180 / math.Pi)

	return models.NormalizeDegrees(tropical - p.Ayanamsa(jd)), nil
}
