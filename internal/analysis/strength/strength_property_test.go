package strength

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/models"
)

// chartInput builds a full nine-planet input from generated longitudes
// and speeds.
type chartInput struct {
	AscLon     float64
	Longitudes [8]float64
	Speeds     [8]float64
	Hour       int
}

func chartInputGen() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(0, 359.99),
		gen.SliceOfN(8, gen.Float64Range(0, 359.99)),
		gen.SliceOfN(8, gen.Float64Range(-2.0, 14.0)),
		gen.IntRange(0, 23),
	).Map(func(values []interface{}) chartInput {
		ci := chartInput{
			AscLon: values[0].(float64),
			Hour:   values[3].(int),
		}
		copy(ci.Longitudes[:], values[1].([]float64))
		copy(ci.Speeds[:], values[2].([]float64))
		return ci
	})
}

func buildInput(ci chartInput) *analysis.Input {
	asc := models.NewAscendant(ci.AscLon)
	positions := make(map[models.Planet]models.PlanetPosition, 9)
	for i, planet := range models.EphemerisBodies {
		positions[planet] = models.NewPlanetPosition(planet, ci.Longitudes[i], ci.Speeds[i], asc)
	}
	positions[models.Ketu] = models.DeriveKetu(positions[models.Rahu], asc)

	return &analysis.Input{
		BirthTime: time.Date(1990, 5, 15, ci.Hour, 30, 0, 0, time.UTC),
		Ascendant: asc,
		Positions: positions,
		Houses:    models.AssignHouses(positions),
	}
}

func TestProperty_ScoreBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("each sub-score lies in [0,15] and the total in [0,60]", prop.ForAll(
		func(ci chartInput) bool {
			summary := NewCalculator().Calculate(buildInput(ci))
			for _, profile := range summary.Profiles {
				total := 0.0
				for _, component := range Components {
					score, ok := profile.Scores[component]
					if !ok || score < 0 || score > 15 {
						return false
					}
					total += score
				}
				if profile.Total < 0 || profile.Total > 60 {
					return false
				}
				// The total is the sum of sub-scores bounded to the scale.
				if math.Abs(profile.Total-math.Min(total, 60)) > 1e-9 {
					return false
				}
			}
			return true
		},
		chartInputGen(),
	))

	properties.Property("percentage is exactly total/60*100 and status matches thresholds", prop.ForAll(
		func(ci chartInput) bool {
			summary := NewCalculator().Calculate(buildInput(ci))
			for _, profile := range summary.Profiles {
				want := profile.Total / 60 * 100
				if math.Abs(profile.Percentage-want) > 1e-9 {
					return false
				}
				if profile.Status != statusOf(profile.Percentage) {
					return false
				}
				if profile.IsStrong != (profile.Percentage >= 70) {
					return false
				}
			}
			return true
		},
		chartInputGen(),
	))

	properties.TestingRun(t)
}

func TestProperty_SummaryConsistency(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("strong count equals the number of profiles at or above 70%", prop.ForAll(
		func(ci chartInput) bool {
			summary := NewCalculator().Calculate(buildInput(ci))
			count := 0
			for _, profile := range summary.Profiles {
				if profile.Percentage >= 70 {
					count++
				}
			}
			return summary.StrongCount == count &&
				summary.Quality == qualityOf(count, summary.AveragePoints)
		},
		chartInputGen(),
	))

	properties.TestingRun(t)
}
