// Package aspects computes house-based Vedic aspect (Drishti)
// relationships.
package aspects

import (
	"context"
	"sort"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/models"
)

// specialOffsets are the extra house offsets for the three planets with
// special aspects, counted from the planet's own house. Every planet
// additionally casts the standard seventh aspect (+6).
var specialOffsets = map[models.Planet][]int{
	models.Mars:    {3, 7},
	models.Jupiter: {4, 8},
	models.Saturn:  {2, 9},
}

const standardOffset = 6

// Kind distinguishes the aspect rule that produced a relationship.
type Kind string

const (
	KindStandard Kind = "standard"
	KindSpecial  Kind = "special"
)

// PlanetAspects lists the houses one planet aspects.
type PlanetAspects struct {
	Planet   models.Planet `json:"planet"`
	House    int           `json:"house"`
	Standard int           `json:"standard"` // the seventh-house aspect
	Special  []int         `json:"special,omitempty"`
}

// All returns the distinct aspected houses.
func (pa PlanetAspects) All() []int {
	seen := map[int]bool{pa.Standard: true}
	out := []int{pa.Standard}
	for _, h := range pa.Special {
		if !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	return out
}

// HouseAspect records one planet aspecting one house.
type HouseAspect struct {
	Planet models.Planet `json:"planet"`
	Kind   Kind          `json:"kind"`
}

// Relationship classifies the house distance between two planets.
type Relationship struct {
	Planet1  models.Planet `json:"planet1"`
	Planet2  models.Planet `json:"planet2"`
	House1   int           `json:"house1"`
	House2   int           `json:"house2"`
	Distance int           `json:"distance"` // minimum circular house distance
	Type     string        `json:"type"`
}

// Relationship type names keyed by minimum house distance.
const (
	TypeConjunction = "conjunction"
	TypeOpposition  = "opposition"
	TypeTrine       = "trine"
	TypeSquare      = "square"
	TypeSextile     = "sextile"
)

// StrongAspect is one entry of the ranked strongest-aspects list.
type StrongAspect struct {
	Planet       models.Planet `json:"planet"`
	AspectCount  int           `json:"aspect_count"`
	HasSpecial   bool          `json:"has_special"`
	AspectedList []int         `json:"aspected_houses"`
}

// Result is the complete aspect analysis for a chart.
type Result struct {
	ByPlanet      map[models.Planet]PlanetAspects `json:"by_planet"`
	ByHouse       map[int][]HouseAspect           `json:"by_house"`
	Relationships []Relationship                  `json:"relationships"`
	Benefic       []models.Planet                 `json:"benefic"`
	Malefic       []models.Planet                 `json:"malefic"`
	Strongest     []StrongAspect                  `json:"strongest"`
}

// Calculator derives aspect relationships from house assignments.
type Calculator struct{}

// NewCalculator creates an aspects calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// StandardAspect returns the house a planet in the given house aspects
// under the universal seventh-house rule.
func StandardAspect(house int) int {
	return models.HouseAt(house, standardOffset)
}

// SpecialAspects returns the extra houses aspected by Mars, Jupiter or
// Saturn from the given house, or nil for other planets.
func SpecialAspects(planet models.Planet, house int) []int {
	offsets, ok := specialOffsets[planet]
	if !ok {
		return nil
	}
	houses := make([]int, 0, len(offsets))
	for _, off := range offsets {
		houses = append(houses, models.HouseAt(house, off))
	}
	return houses
}

// Calculate derives the complete aspect analysis.
func (c *Calculator) Calculate(input *analysis.Input) *Result {
	planets := input.AvailablePlanets()

	result := &Result{
		ByPlanet: make(map[models.Planet]PlanetAspects, len(planets)),
		ByHouse:  make(map[int][]HouseAspect, 12),
	}

	for _, planet := range planets {
		house := input.Positions[planet].House
		pa := PlanetAspects{
			Planet:   planet,
			House:    house,
			Standard: StandardAspect(house),
			Special:  SpecialAspects(planet, house),
		}
		result.ByPlanet[planet] = pa

		result.ByHouse[pa.Standard] = append(result.ByHouse[pa.Standard], HouseAspect{Planet: planet, Kind: KindStandard})
		for _, h := range pa.Special {
			result.ByHouse[h] = append(result.ByHouse[h], HouseAspect{Planet: planet, Kind: KindSpecial})
		}

		if planet.IsBenefic() {
			result.Benefic = append(result.Benefic, planet)
		} else if planet.IsMalefic() {
			result.Malefic = append(result.Malefic, planet)
		}
	}

	result.Relationships = c.relationships(input, planets)
	result.Strongest = c.strongest(result.ByPlanet, planets)
	return result
}

func (c *Calculator) relationships(input *analysis.Input, planets []models.Planet) []Relationship {
	var rels []Relationship
	for i, p1 := range planets {
		h1 := input.Positions[p1].House
		for _, p2 := range planets[i+1:] {
			h2 := input.Positions[p2].House
			dist := models.HousesApart(h1, h2)

			var kind string
			switch dist {
			case 0:
				kind = TypeConjunction
			case 6:
				kind = TypeOpposition
			case 3:
				kind = TypeTrine
			case 4:
				kind = TypeSquare
			case 2:
				kind = TypeSextile
			default:
				continue
			}

			rels = append(rels, Relationship{
				Planet1:  p1,
				Planet2:  p2,
				House1:   h1,
				House2:   h2,
				Distance: dist,
				Type:     kind,
			})
		}
	}
	return rels
}

// strongest ranks planets by aspect reach: special-aspect planets come
// first, ordered by total aspected houses.
func (c *Calculator) strongest(byPlanet map[models.Planet]PlanetAspects, planets []models.Planet) []StrongAspect {
	out := make([]StrongAspect, 0, len(planets))
	for _, planet := range planets {
		pa := byPlanet[planet]
		all := pa.All()
		out = append(out, StrongAspect{
			Planet:       planet,
			AspectCount:  len(all),
			HasSpecial:   len(pa.Special) > 0,
			AspectedList: all,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].HasSpecial != out[j].HasSpecial {
			return out[i].HasSpecial
		}
		return out[i].AspectCount > out[j].AspectCount
	})
	return out
}

// Section adapts the calculator to the analysis engine.
type Section struct {
	calc *Calculator
}

// NewSection creates the aspects section.
func NewSection() *Section {
	return &Section{calc: NewCalculator()}
}

// Name returns the section name.
func (s *Section) Name() string {
	return "aspects"
}

// Calculate derives the chart's aspect analysis.
func (s *Section) Calculate(ctx context.Context, input *analysis.Input) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.calc.Calculate(input), nil
}
