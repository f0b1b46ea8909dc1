// Package strength computes six-fold Shad Bala planetary strength
// scores and the chart-level aggregate.
package strength

import (
	"context"
	"math"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/models"
)

// Component names the six sub-scores.
type Component string

const (
	ComponentSthana     Component = "sthana"     // positional
	ComponentDig        Component = "dig"        // directional
	ComponentKala       Component = "kala"       // temporal
	ComponentChesta     Component = "chesta"     // motional
	ComponentNaisargika Component = "naisargika" // natural
	ComponentDrishti    Component = "drishti"    // aspectual
)

// Components lists the six sub-scores in canonical order.
var Components = []Component{
	ComponentSthana, ComponentDig, ComponentKala,
	ComponentChesta, ComponentNaisargika, ComponentDrishti,
}

// Profile is one planet's full strength breakdown. Each component lies
// in [0,15]; the total in [0,60].
type Profile struct {
	Planet     models.Planet         `json:"planet"`
	Scores     map[Component]float64 `json:"scores"`
	Total      float64               `json:"total"`
	Percentage float64               `json:"percentage"`
	Status     Status                `json:"status"`
	IsStrong   bool                  `json:"is_strong"`
}

// ChartSummary aggregates profiles over the whole chart.
type ChartSummary struct {
	Profiles       map[models.Planet]Profile `json:"profiles"`
	StrongCount    int                       `json:"strong_count"`
	AveragePoints  float64                   `json:"average_points"`
	AveragePercent float64                   `json:"average_percent"`
	Quality        Quality                   `json:"quality"`
	Strongest      models.Planet             `json:"strongest"`
	Weakest        models.Planet             `json:"weakest"`
}

// Calculator derives strength profiles.
type Calculator struct{}

// NewCalculator creates a strength calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate builds profiles for every planet present in the input plus
// the chart aggregate.
func (c *Calculator) Calculate(input *analysis.Input) *ChartSummary {
	profiles := make(map[models.Planet]Profile, len(input.Positions))

	for _, planet := range input.AvailablePlanets() {
		pos := input.Positions[planet]
		profiles[planet] = c.profile(planet, pos, input)
	}

	return summarize(profiles)
}

func (c *Calculator) profile(planet models.Planet, pos models.PlanetPosition, input *analysis.Input) Profile {
	scores := map[Component]float64{
		ComponentSthana:     sthanaBala(planet, pos.Sign),
		ComponentDig:        digBala(planet, pos.House),
		ComponentKala:       kalaBala(planet, input.BirthTime.Hour()),
		ComponentChesta:     chestaBala(pos),
		ComponentNaisargika: naisargikaBala(planet),
		ComponentDrishti:    drishtiBala(planet, pos.House, input),
	}

	total := 0.0
	for _, s := range scores {
		total += s
	}
	// The six sub-score maxima sum past 60; the profile total is bounded
	// to the canonical 0-60 scale so percentage stays within [0,100].
	total = models.Clamp(total, 0, totalScoreMax)
	percent := total / totalScoreMax * 100

	return Profile{
		Planet:     planet,
		Scores:     scores,
		Total:      total,
		Percentage: percent,
		Status:     statusOf(percent),
		IsStrong:   percent >= strongThresholdPercent,
	}
}

// sthanaBala scores positional standing from the fixed dignity tables.
// Only own-sign placement earns the full score; exaltation is carried on
// the position's dignity but does not factor in here.
func sthanaBala(planet models.Planet, sign models.Sign) float64 {
	switch models.DignityOf(planet, sign) {
	case models.DignityOwnSign:
		return sthanaOwn
	case models.DignityDebilitated:
		return sthanaDebilitated
	default:
		return sthanaNeutral
	}
}

// digBala scores directional standing: full strength in the planet's
// strong house pair, neutral elsewhere.
func digBala(planet models.Planet, house int) float64 {
	pair, ok := digHouses[planet]
	if !ok {
		return digNeutral
	}
	if house == pair[0] || house == pair[1] {
		return digStrong
	}
	return digNeutral
}

// kalaBala scores temporal standing from the birth hour. Daytime is the
// half-open window [6,18).
func kalaBala(planet models.Planet, hour int) float64 {
	day := hour >= dayStartHour && hour < dayEndHour
	if diurnalPlanets[planet] && day {
		return kalaStrong
	}
	if nocturnalPlanets[planet] && !day {
		return kalaStrong
	}
	return kalaNeutral
}

// chestaBala scores motional standing from the daily motion magnitude
// and direction.
func chestaBala(pos models.PlanetPosition) float64 {
	score := chestaDirect
	if pos.Retrograde {
		score = chestaRetrograde
	}

	speed := math.Abs(pos.Speed)
	if speed > fastMotionThreshold {
		score += chestaFastBonus
	} else if speed < slowMotionThreshold {
		score -= chestaSlowMalus
	}

	return models.Clamp(score, 0, subScoreMax)
}

// naisargikaBala normalizes the fixed natural ranking onto [0,15].
func naisargikaBala(planet models.Planet) float64 {
	return naisargikaRanks[planet] / 60.0 * subScoreMax
}

// drishtiBala scores aspectual standing: every planet in mutual
// opposition by house shifts the base by its benefic or malefic nature.
func drishtiBala(planet models.Planet, house int, input *analysis.Input) float64 {
	score := drishtiBase
	for _, other := range input.AvailablePlanets() {
		if other == planet {
			continue
		}
		otherPos := input.Positions[other]
		if models.HousesApart(house, otherPos.House) != oppositionHouses {
			continue
		}
		if other.IsBenefic() {
			score += drishtiInfluence
		} else if other.IsMalefic() {
			score -= drishtiInfluence
		}
	}
	return models.Clamp(score, 0, subScoreMax)
}

func summarize(profiles map[models.Planet]Profile) *ChartSummary {
	summary := &ChartSummary{Profiles: profiles}
	if len(profiles) == 0 {
		summary.Quality = QualityChallenging
		return summary
	}

	totalPoints := 0.0
	bestTotal := -1.0
	worstTotal := totalScoreMax + 1
	for _, planet := range models.AllPlanets {
		p, ok := profiles[planet]
		if !ok {
			continue
		}
		totalPoints += p.Total
		if p.IsStrong {
			summary.StrongCount++
		}
		if p.Total > bestTotal {
			bestTotal = p.Total
			summary.Strongest = planet
		}
		if p.Total < worstTotal {
			worstTotal = p.Total
			summary.Weakest = planet
		}
	}

	n := float64(len(profiles))
	summary.AveragePoints = totalPoints / n
	summary.AveragePercent = summary.AveragePoints / totalScoreMax * 100
	summary.Quality = qualityOf(summary.StrongCount, summary.AveragePoints)
	return summary
}

// Section adapts the calculator to the analysis engine.
type Section struct {
	calc *Calculator
}

// NewSection creates the strength section.
func NewSection() *Section {
	return &Section{calc: NewCalculator()}
}

// Name returns the section name.
func (s *Section) Name() string {
	return "strength"
}

// Calculate derives the chart's strength summary.
func (s *Section) Calculate(ctx context.Context, input *analysis.Input) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.calc.Calculate(input), nil
}
