// Package houses analyzes the twelve whole-sign houses of a chart:
// natural significators, house lords and their condition, and the
// benefic/malefic balance of each house's occupants.
package houses

import (
	"context"
	"fmt"
	"strings"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/models"
)

// Strength grades a house by its occupants.
type Strength string

const (
	VeryStrong Strength = "Very Strong"
	Strong     Strength = "Strong"
	Moderate   Strength = "Moderate"
	Weak       Strength = "Weak"
)

// LordStrength grades the condition of a house's ruling planet.
type LordStrength string

const (
	LordVeryStrong LordStrength = "Very Strong"
	LordStrong     LordStrength = "Strong"
	LordModerate   LordStrength = "Moderate"
	LordUnknown    LordStrength = "Unknown"
)

// Quality is the benefic/malefic balance of a house's occupants.
type Quality string

const (
	Benefic Quality = "Benefic"
	Malefic Quality = "Malefic"
	Neutral Quality = "Neutral"
)

// Significator holds a house's natural name, karakas and life areas.
type Significator struct {
	Name    string          `json:"name"`
	Karakas []models.Planet `json:"karakas"`
	Areas   []string        `json:"areas"`
}

var significators = map[int]Significator{
	1:  {Name: "Self", Karakas: []models.Planet{models.Sun}, Areas: []string{"Personality", "Health", "Appearance"}},
	2:  {Name: "Wealth", Karakas: []models.Planet{models.Jupiter, models.Venus}, Areas: []string{"Money", "Family", "Speech"}},
	3:  {Name: "Siblings", Karakas: []models.Planet{models.Mercury, models.Mars}, Areas: []string{"Siblings", "Communication", "Courage"}},
	4:  {Name: "Home", Karakas: []models.Planet{models.Moon, models.Venus}, Areas: []string{"Mother", "Home", "Land", "Property"}},
	5:  {Name: "Children", Karakas: []models.Planet{models.Jupiter, models.Sun}, Areas: []string{"Children", "Creativity", "Romance"}},
	6:  {Name: "Health", Karakas: []models.Planet{models.Mars, models.Saturn}, Areas: []string{"Disease", "Enemies", "Debt", "Service"}},
	7:  {Name: "Marriage", Karakas: []models.Planet{models.Venus}, Areas: []string{"Partnership", "Marriage", "Spouse", "Public"}},
	8:  {Name: "Longevity", Karakas: []models.Planet{models.Saturn, models.Ketu}, Areas: []string{"Death", "Inheritance", "Longevity", "Occult"}},
	9:  {Name: "Luck", Karakas: []models.Planet{models.Jupiter, models.Sun}, Areas: []string{"Father", "Luck", "Dharma", "Religion", "Travel"}},
	10: {Name: "Career", Karakas: []models.Planet{models.Saturn, models.Sun}, Areas: []string{"Career", "Public", "Authority", "Honor"}},
	11: {Name: "Gains", Karakas: []models.Planet{models.Jupiter, models.Mercury}, Areas: []string{"Income", "Friends", "Wishes", "Groups"}},
	12: {Name: "Losses", Karakas: []models.Planet{models.Saturn, models.Ketu}, Areas: []string{"Losses", "Spirituality", "Seclusion", "Foreign"}},
}

// strongHouses lists, per planet, the houses in which it performs well.
var strongHouses = map[models.Planet][]int{
	models.Sun:     {1, 5, 9, 10},
	models.Moon:    {1, 4, 7, 10},
	models.Mars:    {1, 3, 6, 8, 10, 11},
	models.Mercury: {1, 2, 6, 8},
	models.Jupiter: {1, 2, 5, 9, 10, 11},
	models.Venus:   {2, 4, 7, 12},
	models.Saturn:  {1, 6, 8, 10, 11, 12},
	models.Rahu:    {3, 6, 8, 9, 11, 12},
	models.Ketu:    {3, 6, 8, 9, 11, 12},
}

var remedies = map[int]string{
	1:  "Practice self-improvement and build confidence",
	2:  "Develop financial discipline and generosity",
	3:  "Improve communication and build relationships with siblings",
	4:  "Strengthen home and family bonds",
	5:  "Engage in creative pursuits and fertility remedies if needed",
	6:  "Focus on health and avoiding enemies",
	7:  "Nurture relationships and partnerships",
	8:  "Engage in spiritual practices for longevity",
	9:  "Study and travel for luck and dharma",
	10: "Build career and professional reputation",
	11: "Network and pursue financial gains",
	12: "Engage in charity and spiritual practices",
}

// SignificatorOf returns the natural significator data for a house.
func SignificatorOf(house int) (Significator, bool) {
	s, ok := significators[house]
	return s, ok
}

// SignOfHouse returns the zodiac sign occupying a whole-sign house for a
// given ascendant sign.
func SignOfHouse(asc models.Sign, house int) models.Sign {
	return models.Sign((int(asc) + house - 1) % 12)
}

// PlanetStrongIn reports whether a planet performs well in a house.
func PlanetStrongIn(p models.Planet, house int) bool {
	for _, h := range strongHouses[p] {
		if h == house {
			return true
		}
	}
	return false
}

// Profile is the full analysis of one house.
type Profile struct {
	Number         int             `json:"number"`
	Name           string          `json:"name"`
	Sign           models.Sign     `json:"sign"`
	Areas          []string        `json:"areas"`
	Significators  []models.Planet `json:"significators"`
	Occupants      []models.Planet `json:"occupants"`
	Strength       Strength        `json:"strength"`
	Lord           models.Planet   `json:"lord"`
	LordStrength   LordStrength    `json:"lord_strength"`
	Quality        Quality         `json:"quality"`
	Interpretation string          `json:"interpretation"`
	Remedy         string          `json:"remedy"`
}

// Result holds all twelve house profiles plus the chart-level summary.
type Result struct {
	Houses     [12]Profile `json:"houses"` // index 0 is house 1
	StrongList []int       `json:"strong_houses"`
	WeakList   []int       `json:"weak_houses"`
	Summary    string      `json:"summary"`
	Assessment string      `json:"assessment"`
}

// Calculator derives house profiles from a natal input.
type Calculator struct{}

// NewCalculator returns a house calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate analyzes every house and summarizes the chart.
func (c *Calculator) Calculate(input *analysis.Input) *Result {
	res := &Result{}
	for house := 1; house <= 12; house++ {
		res.Houses[house-1] = c.analyzeHouse(house, input)
	}
	for _, p := range res.Houses {
		switch p.Strength {
		case VeryStrong, Strong:
			res.StrongList = append(res.StrongList, p.Number)
		case Weak:
			res.WeakList = append(res.WeakList, p.Number)
		}
	}
	res.Summary = fmt.Sprintf("%d strong houses, %d weak houses", len(res.StrongList), len(res.WeakList))
	res.Assessment = assessment(len(res.StrongList))
	return res
}

func (c *Calculator) analyzeHouse(house int, input *analysis.Input) Profile {
	sig := significators[house]
	sign := SignOfHouse(input.Ascendant.Sign, house)
	occupants := input.Houses[house]

	return Profile{
		Number:         house,
		Name:           sig.Name,
		Sign:           sign,
		Areas:          sig.Areas,
		Significators:  sig.Karakas,
		Occupants:      occupants,
		Strength:       houseStrength(house, occupants),
		Lord:           sign.Ruler(),
		LordStrength:   lordStrength(sign.Ruler(), input),
		Quality:        houseQuality(occupants),
		Interpretation: interpret(house, sig, sign, occupants),
		Remedy:         remedies[house],
	}
}

func houseStrength(house int, occupants []models.Planet) Strength {
	if len(occupants) == 0 {
		return Weak
	}
	strong := 0
	for _, p := range occupants {
		if PlanetStrongIn(p, house) {
			strong++
		}
	}
	switch {
	case strong >= 2:
		return VeryStrong
	case strong == 1:
		return Strong
	default:
		return Moderate
	}
}

func lordStrength(lord models.Planet, input *analysis.Input) LordStrength {
	pos, ok := input.Position(lord)
	if !ok {
		return LordUnknown
	}
	switch pos.Dignity {
	case models.DignityExalted, models.DignityOwnSign:
		return LordVeryStrong
	}
	if PlanetStrongIn(lord, pos.House) {
		return LordStrong
	}
	return LordModerate
}

func houseQuality(occupants []models.Planet) Quality {
	benefic, malefic := 0, 0
	for _, p := range occupants {
		if p.IsBenefic() {
			benefic++
		} else if p.IsMalefic() {
			malefic++
		}
	}
	switch {
	case benefic > malefic:
		return Benefic
	case malefic > benefic:
		return Malefic
	default:
		return Neutral
	}
}

func interpret(house int, sig Significator, sign models.Sign, occupants []models.Planet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "House %d (%s) is in %s sign. It rules: %s. ",
		house, sig.Name, sign, strings.Join(sig.Areas, ", "))
	if len(occupants) == 0 {
		b.WriteString("No planets in this house - rely on house lord strength.")
		return b.String()
	}
	names := make([]string, len(occupants))
	for i, p := range occupants {
		names[i] = string(p)
	}
	fmt.Fprintf(&b, "Planets in this house: %s. This strengthens the matters of this house.",
		strings.Join(names, ", "))
	return b.String()
}

func assessment(strong int) string {
	switch {
	case strong > 8:
		return "Very Strong Chart - Most life areas well-supported"
	case strong > 6:
		return "Strong Chart - Good support in major life areas"
	case strong > 4:
		return "Moderate Chart - Mixed support across life areas"
	default:
		return "Weak Chart - Focus on remedies for weak areas"
	}
}

// Section adapts the calculator to the analysis engine.
type Section struct {
	calc *Calculator
}

// NewSection returns the houses section.
func NewSection() *Section {
	return &Section{calc: NewCalculator()}
}

// Name implements analysis.Section.
func (s *Section) Name() string {
	return "houses"
}

// Calculate implements analysis.Section.
func (s *Section) Calculate(ctx context.Context, input *analysis.Input) (interface{}, error) {
	return s.calc.Calculate(input), nil
}

var _ analysis.Section = (*Section)(nil)
