// Package varga computes harmonic divisional charts (D2, D7, D9) and
// the D1/D9 alignment score.
package varga

import (
	"context"
	"strconv"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/models"
)

// Division identifies a harmonic chart.
type Division int

const (
	D2 Division = 2 // Hora: wealth
	D7 Division = 7 // Saptamsha: progeny
	D9 Division = 9 // Navamsha: marriage and hidden nature
)

// Divisions lists the computed harmonics in order.
var Divisions = []Division{D2, D7, D9}

// String returns the conventional harmonic label, e.g. "D9".
func (d Division) String() string {
	return "D" + strconv.Itoa(int(d))
}

// Placement is one planet's position inside a divisional chart.
type Placement struct {
	Planet         models.Planet `json:"planet"`
	Longitude      float64       `json:"longitude"`
	Sign           models.Sign   `json:"sign"`
	DivisionalSign models.Sign   `json:"divisional_sign"`
	Part           int           `json:"part"` // 0-based part within the natal sign
	// Lord is set for D2 only: the Sun or Moon hora ruling the half.
	Lord models.Planet `json:"lord,omitempty"`
	// Pada is set for D9 only.
	Pada int `json:"pada,omitempty"`
	// Interpretation carries the canned part-indexed text for D7/D9.
	Interpretation string `json:"interpretation,omitempty"`
}

// Chart is one complete divisional chart.
type Chart struct {
	Division   Division                    `json:"division"`
	Placements map[models.Planet]Placement `json:"placements"`
	// Ascendant is the divisional rising sign from the harmonic
	// transform of the natal ascendant degree.
	Ascendant models.Sign `json:"ascendant"`
}

// Alignment compares D1 and D9 sign placements.
type Alignment struct {
	Score          float64         `json:"score"`
	MaxScore       float64         `json:"max_score"`
	Percentage     float64         `json:"percentage"`
	Matches        []models.Planet `json:"matches"`
	Interpretation string          `json:"interpretation"`
}

// Result bundles all divisional output for a chart.
type Result struct {
	Charts    map[Division]*Chart `json:"charts"`
	Alignment Alignment           `json:"alignment"`
}

const alignmentPointsPerPlanet = 10.0

var saptamshaInterpretations = [7]string{
	"Weak children - needs special care",
	"Average children - moderate support needed",
	"Good children - positive influence",
	"Excellent children - very favorable",
	"Very strong progeny - highly beneficial",
	"Extraordinary children - exceptional benefits",
	"Highly auspicious for children",
}

var navamshaSignificances = [9]string{
	"Strong marriage potential - very auspicious",
	"Good partnerships - favorable for alliances",
	"Moderate marriage stability - needs care",
	"Blessed in relationships - harmony expected",
	"Excellent marital life - highly favored",
	"Strong partnership bonds - deep commitment",
	"Spiritual partnership - soulmate potential",
	"Harmonious relationships - mutual understanding",
	"Transformed through partnerships - growth",
}

// Calculator derives divisional charts.
type Calculator struct{}

// NewCalculator creates a varga calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate derives all divisional charts and the D1/D9 alignment.
func (c *Calculator) Calculate(input *analysis.Input) *Result {
	charts := make(map[Division]*Chart, len(Divisions))
	for _, d := range Divisions {
		charts[d] = c.Chart(d, input)
	}

	return &Result{
		Charts:    charts,
		Alignment: c.alignment(input, charts[D9]),
	}
}

// Chart derives a single divisional chart.
func (c *Calculator) Chart(d Division, input *analysis.Input) *Chart {
	placements := make(map[models.Planet]Placement, len(input.Positions))
	for _, planet := range input.AvailablePlanets() {
		pos := input.Positions[planet]
		placements[planet] = place(d, planet, pos.Longitude)
	}

	return &Chart{
		Division:   d,
		Placements: placements,
		Ascendant:  VargaAscendant(input.Ascendant.Longitude, d),
	}
}

// VargaAscendant applies the harmonic transform to the natal rising
// degree: (degree × n) mod 360.
func VargaAscendant(ascendantDegree float64, d Division) models.Sign {
	return models.SignOf(models.NormalizeDegrees(ascendantDegree * float64(d)))
}

func place(d Division, planet models.Planet, longitude float64) Placement {
	lon := models.NormalizeDegrees(longitude)
	sign := models.SignOf(lon)
	posInSign := models.DegreeInSign(lon)

	part := int(posInSign / 30 * float64(d))
	if part >= int(d) {
		part = int(d) - 1
	}

	p := Placement{
		Planet:    planet,
		Longitude: lon,
		Sign:      sign,
		Part:      part,
	}

	switch d {
	case D2:
		p.Lord = horaLord(sign, part)
		// The hora lord's own sign stands in for a divisional sign.
		if p.Lord == models.Sun {
			p.DivisionalSign = models.Leo
		} else {
			p.DivisionalSign = models.Cancer
		}
	case D7:
		p.DivisionalSign = models.Sign((int(sign)*7 + part) % 12)
		p.Interpretation = saptamshaInterpretations[part%7]
	case D9:
		absolute := int(sign)*9 + part
		p.DivisionalSign = models.Sign(absolute % 12)
		p.Pada = (part%9)/3 + 1
		p.Interpretation = navamshaSignificances[part%9]
	}

	return p
}

// horaLord alternates Sun and Moon halves: even signs lead with the
// Sun's hora, odd signs with the Moon's.
func horaLord(sign models.Sign, part int) models.Planet {
	if int(sign)%2 == 0 {
		if part == 0 {
			return models.Sun
		}
		return models.Moon
	}
	if part == 0 {
		return models.Moon
	}
	return models.Sun
}

func (c *Calculator) alignment(input *analysis.Input, d9 *Chart) Alignment {
	planets := input.AvailablePlanets()
	a := Alignment{
		MaxScore: alignmentPointsPerPlanet * float64(len(planets)),
	}

	for _, planet := range planets {
		placement, ok := d9.Placements[planet]
		if !ok {
			continue
		}
		if placement.Sign == placement.DivisionalSign {
			a.Score += alignmentPointsPerPlanet
			a.Matches = append(a.Matches, planet)
		}
	}

	if a.MaxScore > 0 {
		a.Percentage = a.Score / a.MaxScore * 100
	}
	a.Interpretation = interpretAlignment(a.Percentage)
	return a
}

func interpretAlignment(percent float64) string {
	switch {
	case percent >= 60:
		return "Excellent alignment - Life is well-supported by hidden nature"
	case percent >= 40:
		return "Good alignment - Generally harmonious development"
	case percent >= 20:
		return "Moderate alignment - Some adjustments needed"
	default:
		return "Weak alignment - Significant differences between apparent and true nature"
	}
}

// PartSize returns the arc of one part in degrees for a division.
func PartSize(d Division) float64 {
	return 30.0 / float64(d)
}

// Section adapts the calculator to the analysis engine.
type Section struct {
	calc *Calculator
}

// NewSection creates the varga section.
func NewSection() *Section {
	return &Section{calc: NewCalculator()}
}

// Name returns the section name.
func (s *Section) Name() string {
	return "varga"
}

// Calculate derives the chart's divisional placements.
func (s *Section) Calculate(ctx context.Context, input *analysis.Input) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.calc.Calculate(input), nil
}
