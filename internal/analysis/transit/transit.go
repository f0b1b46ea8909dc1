// Package transit compares current planetary positions against a natal
// chart (Gochara).
package transit

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/ephemeris"
	"kundali-engine/internal/errors"
	"kundali-engine/internal/models"
)

// Classical aspect angles and their orbs in degrees.
var aspectOrbs = map[string]float64{
	"Conjunction": 6,
	"Sextile":     4,
	"Square":      6,
	"Trine":       6,
	"Opposition":  6,
}

var aspectAngles = map[string]float64{
	"Conjunction": 0,
	"Sextile":     60,
	"Square":      90,
	"Trine":       120,
	"Opposition":  180,
}

// aspectNames fixes the evaluation order for deterministic output.
var aspectNames = []string{"Conjunction", "Sextile", "Square", "Trine", "Opposition"}

const strongOrb = 2.0

// durationInSign is each planet's approximate stay per sign in days.
var durationInSign = map[models.Planet]float64{
	models.Sun:     30,
	models.Moon:    2.25,
	models.Mercury: 14,
	models.Venus:   28,
	models.Mars:    45,
	models.Jupiter: 360,
	models.Saturn:  900,
	models.Rahu:    540,
	models.Ketu:    540,
}

var significance = map[models.Planet]string{
	models.Sun:     "General life influence",
	models.Moon:    "Emotional and daily mood",
	models.Mercury: "Communication and thinking",
	models.Venus:   "Relationships and finances",
	models.Mars:    "Energy, courage, conflicts",
	models.Jupiter: "Expansion, luck, growth",
	models.Saturn:  "Restrictions, lessons, responsibilities",
	models.Rahu:    "Obsessions, new ventures, growth",
	models.Ketu:    "Release, spirituality, past karma",
}

// slowMovers is the fixed shortlist whose transits mark major periods.
var slowMovers = []models.Planet{models.Saturn, models.Jupiter, models.Rahu, models.Ketu}

// Quality qualifies a transit by the planet's fixed nature.
type Quality string

const (
	QualityBenefic Quality = "Benefic"
	QualityMalefic Quality = "Malefic"
	QualityNeutral Quality = "Neutral"
)

// QualityOf returns the fixed transit quality for a planet.
func QualityOf(planet models.Planet) Quality {
	if planet.IsBenefic() {
		return QualityBenefic
	}
	if planet.IsMalefic() {
		return QualityMalefic
	}
	return QualityNeutral
}

// Aspect is one near-exact classical aspect from a transiting planet to
// a natal planet.
type Aspect struct {
	NatalPlanet models.Planet `json:"natal_planet"`
	Name        string        `json:"name"`
	Angle       float64       `json:"angle"`
	Orb         float64       `json:"orb"`
	Applying    bool          `json:"applying"`
	Strength    string        `json:"strength"`
}

// PlanetTransit is one planet's full comparison against its natal
// position.
type PlanetTransit struct {
	Planet             models.Planet `json:"planet"`
	CurrentLongitude   float64       `json:"current_longitude"`
	CurrentSign        models.Sign   `json:"current_sign"`
	NatalLongitude     float64       `json:"natal_longitude"`
	NatalSign          models.Sign   `json:"natal_sign"`
	SignChanged        bool          `json:"sign_changed"`
	Quality            Quality       `json:"quality"`
	Significance       string        `json:"significance"`
	DurationInSignDays float64       `json:"duration_in_sign_days"`
	Aspects            []Aspect      `json:"aspects"`
	Interpretation     string        `json:"interpretation"`
}

// ImportantTransit is one slow-mover entry with static significance.
type ImportantTransit struct {
	Planet       models.Planet `json:"planet"`
	Type         string        `json:"type"`
	Duration     string        `json:"duration"`
	CurrentSign  models.Sign   `json:"current_sign"`
	Significance string        `json:"significance"`
	Impact       string        `json:"impact"`
}

// UpcomingTransit records a detected future sign change.
type UpcomingTransit struct {
	Planet   models.Planet `json:"planet"`
	Date     time.Time     `json:"date"`
	DaysAway int           `json:"days_away"`
	OldSign  models.Sign   `json:"old_sign"`
	NewSign  models.Sign   `json:"new_sign"`
}

// Result is the full transit comparison for one instant.
type Result struct {
	AsOf      time.Time                       `json:"as_of"`
	Transits  map[models.Planet]PlanetTransit `json:"transits"`
	Important []ImportantTransit              `json:"important"`
	Upcoming  []UpcomingTransit               `json:"upcoming"`
}

// Calculator compares ephemeris snapshots against natal charts.
type Calculator struct {
	provider    ephemeris.Provider
	horizonDays int
	stepDays    int
}

// NewCalculator creates a transit calculator scanning the given horizon
// in fixed steps.
func NewCalculator(provider ephemeris.Provider, horizonDays, stepDays int) *Calculator {
	if horizonDays <= 0 {
		horizonDays = 365
	}
	if stepDays <= 0 {
		stepDays = 30
	}
	return &Calculator{provider: provider, horizonDays: horizonDays, stepDays: stepDays}
}

// Compare derives the full transit comparison for the natal positions
// at asOf, including the forward sign-change scan.
func (c *Calculator) Compare(ctx context.Context, natal map[models.Planet]models.PlanetPosition, asOf time.Time) (*Result, error) {
	current, err := c.snapshot(ctx, asOf)
	if err != nil {
		return nil, errors.Wrap(err, "transit snapshot")
	}

	result := &Result{
		AsOf:     asOf,
		Transits: make(map[models.Planet]PlanetTransit, len(current)),
	}

	for _, planet := range models.AllPlanets {
		state, ok := current[planet]
		if !ok {
			continue
		}
		natalPos, ok := natal[planet]
		if !ok {
			continue
		}
		result.Transits[planet] = c.compareOne(planet, state, natalPos, natal)
	}

	result.Important = important(result.Transits)

	upcoming, err := c.scanUpcoming(ctx, asOf, current)
	if err != nil {
		return nil, err
	}
	result.Upcoming = upcoming

	return result, nil
}

func (c *Calculator) compareOne(planet models.Planet, state ephemeris.BodyState, natalPos models.PlanetPosition, natal map[models.Planet]models.PlanetPosition) PlanetTransit {
	currentSign := models.SignOf(state.Longitude)

	pt := PlanetTransit{
		Planet:             planet,
		CurrentLongitude:   state.Longitude,
		CurrentSign:        currentSign,
		NatalLongitude:     natalPos.Longitude,
		NatalSign:          natalPos.Sign,
		SignChanged:        currentSign != natalPos.Sign,
		Quality:            QualityOf(planet),
		Significance:       significance[planet],
		DurationInSignDays: durationInSign[planet],
	}

	for _, other := range models.AllPlanets {
		otherNatal, ok := natal[other]
		if !ok {
			continue
		}
		angle := models.AngularDistance(state.Longitude, otherNatal.Longitude)
		for _, name := range aspectNames {
			diff := math.Abs(angle - aspectAngles[name])
			if diff > aspectOrbs[name] {
				continue
			}
			strength := "Moderate"
			if diff < strongOrb {
				strength = "Strong"
			}
			pt.Aspects = append(pt.Aspects, Aspect{
				NatalPlanet: other,
				Name:        name,
				Angle:       angle,
				Orb:         diff,
				Applying:    angle < aspectAngles[name],
				Strength:    strength,
			})
		}
	}

	pt.Interpretation = interpret(planet, currentSign, natalPos.Sign)
	return pt
}

func (c *Calculator) snapshot(ctx context.Context, at time.Time) (map[models.Planet]ephemeris.BodyState, error) {
	jd := ephemeris.JulianDay(at)
	positions, err := c.provider.Positions(ctx, jd)
	if err != nil {
		return nil, err
	}
	// Derive the descending node when the provider gave the ascending
	// one.
	if rahu, ok := positions[models.Rahu]; ok {
		positions[models.Ketu] = ephemeris.BodyState{
			Longitude: models.NormalizeDegrees(rahu.Longitude + 180),
			Speed:     -rahu.Speed,
		}
	}
	return positions, nil
}

func important(transits map[models.Planet]PlanetTransit) []ImportantTransit {
	var out []ImportantTransit
	for _, planet := range slowMovers {
		t, ok := transits[planet]
		if !ok {
			continue
		}
		entry := ImportantTransit{
			Planet:      planet,
			CurrentSign: t.CurrentSign,
		}
		switch planet {
		case models.Saturn:
			entry.Type = "Critical Life Period"
			entry.Duration = "2.5 years per sign"
			entry.Significance = "Tests, lessons, and long-term development"
			entry.Impact = "High"
		case models.Jupiter:
			entry.Type = "Expansion Period"
			entry.Duration = "~13 months per sign"
			entry.Significance = "Growth, opportunities, and good fortune"
			entry.Impact = "High"
		default:
			entry.Type = "Life Transition Period"
			entry.Duration = "~1.5 years per sign"
			entry.Significance = fmt.Sprintf("%s brings fated events and major life changes", planet)
			entry.Impact = "Very High"
		}
		out = append(out, entry)
	}
	return out
}

// scanUpcoming steps forward through the horizon and records each sign
// change of the slow movers relative to the previously scanned step.
func (c *Calculator) scanUpcoming(ctx context.Context, asOf time.Time, current map[models.Planet]ephemeris.BodyState) ([]UpcomingTransit, error) {
	lastSign := make(map[models.Planet]models.Sign, len(slowMovers))
	for _, planet := range slowMovers {
		if state, ok := current[planet]; ok {
			lastSign[planet] = models.SignOf(state.Longitude)
		}
	}

	var upcoming []UpcomingTransit
	for days := c.stepDays; days <= c.horizonDays; days += c.stepDays {
		at := asOf.AddDate(0, 0, days)
		future, err := c.snapshot(ctx, at)
		if err != nil {
			return nil, errors.Wrapf(err, "transit scan at +%dd", days)
		}

		for _, planet := range slowMovers {
			state, ok := future[planet]
			if !ok {
				continue
			}
			prev, seen := lastSign[planet]
			sign := models.SignOf(state.Longitude)
			if seen && sign != prev {
				upcoming = append(upcoming, UpcomingTransit{
					Planet:   planet,
					Date:     at,
					DaysAway: days,
					OldSign:  prev,
					NewSign:  sign,
				})
			}
			lastSign[planet] = sign
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DaysAway < upcoming[j].DaysAway
	})
	return upcoming, nil
}

func interpret(planet models.Planet, current, natal models.Sign) string {
	templates := map[models.Planet]string{
		models.Sun:     "%s transiting %s brings focus and vitality to areas ruled by %s",
		models.Moon:    "%s in %s creates emotional tendencies and daily influences",
		models.Mercury: "%s in %s affects communication and intellectual matters",
		models.Venus:   "%s in %s brings harmony or challenges in relationships and finance",
		models.Mars:    "%s in %s energizes or creates conflicts in %s matters",
		models.Jupiter: "%s in %s expands opportunities and brings good fortune",
		models.Saturn:  "%s in %s brings lessons, restrictions, and long-term growth",
		models.Rahu:    "%s in %s indicates obsessions and new ventures",
		models.Ketu:    "%s in %s brings spiritual lessons and release",
	}

	var base string
	switch planet {
	case models.Sun, models.Mars:
		base = fmt.Sprintf(templates[planet], planet, current, current)
	default:
		tmpl, ok := templates[planet]
		if !ok {
			base = fmt.Sprintf("%s transiting %s", planet, current)
		} else {
			base = fmt.Sprintf(tmpl, planet, current)
		}
	}

	if current == natal {
		return base + " (Same as birth sign - reinforcing birth chart influence)"
	}
	switch models.SignsApart(current, natal) {
	case 6:
		base += " (Opposing birth position - significant impact)"
	case 4:
		base += " (Square to birth position - challenging aspect)"
	case 3:
		base += " (Trine to birth position - harmonious influence)"
	}
	return base
}

// Section adapts the calculator to the analysis engine.
type Section struct {
	calc *Calculator
	asOf time.Time
}

// NewSection creates the transit section evaluated at asOf.
func NewSection(provider ephemeris.Provider, horizonDays, stepDays int, asOf time.Time) *Section {
	return &Section{calc: NewCalculator(provider, horizonDays, stepDays), asOf: asOf}
}

// Name returns the section name.
func (s *Section) Name() string {
	return "transit"
}

// Calculate derives the transit comparison for the input's natal
// positions.
func (s *Section) Calculate(ctx context.Context, input *analysis.Input) (interface{}, error) {
	return s.calc.Compare(ctx, input.Positions, s.asOf)
}
