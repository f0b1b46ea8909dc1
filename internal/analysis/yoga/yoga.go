// Package yoga detects a small set of classical planetary combinations
// using strength percentages, and grades each house lord's condition.
// The checks are deliberately simplified threshold rules rather than
// full lordship analysis.
package yoga

import (
	"context"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/analysis/houses"
	"kundali-engine/internal/analysis/strength"
	"kundali-engine/internal/models"
)

// Yoga is one detected combination.
type Yoga struct {
	Name     string          `json:"name"`
	Planets  []models.Planet `json:"planets"`
	Strength float64         `json:"strength"`
	Benefic  bool            `json:"benefic"`
}

// simplified detections carry a flat strength score
const yogaStrength = 75.0

// LordStatus grades a house lord by its strength percentage.
type LordStatus string

const (
	LordStrong   LordStatus = "Strong"   // >= 70%
	LordModerate LordStatus = "Moderate" // >= 45%
	LordWeak     LordStatus = "Weak"
)

// defaultLordPercent stands in for a lord missing from the chart.
const defaultLordPercent = 50.0

// LordStrength is the condition of one house's ruling planet.
type LordStrength struct {
	House      int           `json:"house"`
	Lord       models.Planet `json:"lord"`
	Percentage float64       `json:"percentage"`
	Status     LordStatus    `json:"status"`
}

// Result holds the detected yogas and per-house lord strengths.
type Result struct {
	Yogas        []Yoga               `json:"yogas"`
	TotalCount   int                  `json:"total_count"`
	BeneficCount int                  `json:"benefic_count"`
	MaleficCount int                  `json:"malefic_count"`
	NeutralCount int                  `json:"neutral_count"`
	HouseLords   map[int]LordStrength `json:"house_lords"`
}

type checker func(pct map[models.Planet]float64) (Yoga, bool)

// Calculator runs the yoga checks against planet strength percentages.
type Calculator struct {
	checks []checker
}

// NewCalculator returns a yoga calculator with the standard rule set.
func NewCalculator() *Calculator {
	return &Calculator{
		checks: []checker{
			checkRaj,
			checkDhana,
			checkParivartana,
			checkGajaKesari,
			checkNeechaBhanga,
		},
	}
}

// Calculate detects yogas and grades house lords from the given
// strength profiles.
func (c *Calculator) Calculate(input *analysis.Input, profiles map[models.Planet]strength.Profile) *Result {
	pct := make(map[models.Planet]float64, len(profiles))
	for p, prof := range profiles {
		pct[p] = prof.Percentage
	}

	res := &Result{HouseLords: make(map[int]LordStrength, 12)}
	for _, check := range c.checks {
		y, ok := check(pct)
		if !ok {
			continue
		}
		res.Yogas = append(res.Yogas, y)
		if y.Benefic {
			res.BeneficCount++
		} else {
			res.NeutralCount++
		}
	}
	res.TotalCount = res.BeneficCount + res.MaleficCount + res.NeutralCount

	for house := 1; house <= 12; house++ {
		lord := houses.SignOfHouse(input.Ascendant.Sign, house).Ruler()
		percent, ok := pct[lord]
		if !ok {
			percent = defaultLordPercent
		}
		res.HouseLords[house] = LordStrength{
			House:      house,
			Lord:       lord,
			Percentage: percent,
			Status:     lordStatus(percent),
		}
	}
	return res
}

func lordStatus(percent float64) LordStatus {
	switch {
	case percent >= 70:
		return LordStrong
	case percent >= 45:
		return LordModerate
	default:
		return LordWeak
	}
}

func checkRaj(pct map[models.Planet]float64) (Yoga, bool) {
	if pct[models.Jupiter] > 60 && pct[models.Sun] > 60 {
		return Yoga{Name: "Raj Yoga", Planets: []models.Planet{models.Jupiter, models.Sun}, Strength: yogaStrength, Benefic: true}, true
	}
	return Yoga{}, false
}

func checkDhana(pct map[models.Planet]float64) (Yoga, bool) {
	if pct[models.Venus] > 65 && pct[models.Mercury] > 65 {
		return Yoga{Name: "Dhana Yoga", Planets: []models.Planet{models.Venus, models.Mercury}, Strength: yogaStrength, Benefic: true}, true
	}
	return Yoga{}, false
}

func checkParivartana(pct map[models.Planet]float64) (Yoga, bool) {
	if pct[models.Venus] > 70 && pct[models.Jupiter] > 70 {
		return Yoga{Name: "Parivartana Yoga", Planets: []models.Planet{models.Venus, models.Jupiter}, Strength: yogaStrength, Benefic: true}, true
	}
	return Yoga{}, false
}

func checkGajaKesari(pct map[models.Planet]float64) (Yoga, bool) {
	if pct[models.Jupiter] > 65 && pct[models.Moon] > 65 {
		return Yoga{Name: "Gaja Kesari Yoga", Planets: []models.Planet{models.Jupiter, models.Moon}, Strength: yogaStrength, Benefic: true}, true
	}
	return Yoga{}, false
}

// checkNeechaBhanga fires when at least one planet is weak and two or
// more are strong enough to lift it. The supporting pair is reported in
// canonical planet order.
func checkNeechaBhanga(pct map[models.Planet]float64) (Yoga, bool) {
	weak := false
	var support []models.Planet
	for _, p := range models.AllPlanets {
		v, ok := pct[p]
		if !ok {
			continue
		}
		if v < 35 {
			weak = true
		}
		if v > 75 {
			support = append(support, p)
		}
	}
	if weak && len(support) >= 2 {
		return Yoga{Name: "Neecha Bhanga Yoga", Planets: support[:2], Strength: yogaStrength, Benefic: true}, true
	}
	return Yoga{}, false
}

// Section adapts the calculator to the analysis engine. It computes the
// strength profiles it needs itself so it can run independently of the
// strength section.
type Section struct {
	calc     *Calculator
	strength *strength.Calculator
}

// NewSection returns the yoga section.
func NewSection() *Section {
	return &Section{calc: NewCalculator(), strength: strength.NewCalculator()}
}

// Name implements analysis.Section.
func (s *Section) Name() string {
	return "yogas"
}

// Calculate implements analysis.Section.
func (s *Section) Calculate(ctx context.Context, input *analysis.Input) (interface{}, error) {
	summary := s.strength.Calculate(input)
	return s.calc.Calculate(input, summary.Profiles), nil
}

var _ analysis.Section = (*Section)(nil)
