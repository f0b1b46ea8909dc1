// Package dasha computes the Vimshottari life-period timeline from the
// Moon's natal nakshatra.
package dasha

import (
	"context"
	"time"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/errors"
	"kundali-engine/internal/models"
)

// CycleYears is the total span of one full Vimshottari cycle.
const CycleYears = 120.0

const daysPerYear = 365.25

// Order is the canonical nine-lord sequence of the cycle.
var Order = [9]models.Planet{
	models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars,
	models.Rahu, models.Jupiter, models.Saturn, models.Mercury,
}

// Durations maps each lord to its period length in years. The nine
// durations sum to exactly 120.
var Durations = map[models.Planet]float64{
	models.Ketu:    7,
	models.Venus:   20,
	models.Sun:     6,
	models.Moon:    10,
	models.Mars:    7,
	models.Rahu:    18,
	models.Jupiter: 16,
	models.Saturn:  19,
	models.Mercury: 17,
}

// nakshatraLords fixes the ruling lord of each of the 27 nakshatras.
// Lords repeat through the canonical order in runs of three segments.
var nakshatraLords = [27]models.Planet{
	models.Ketu, models.Ketu, models.Ketu, // Ashwini through Krittika
	models.Venus, models.Venus, models.Venus,
	models.Sun, models.Sun, models.Sun,
	models.Moon, models.Moon, models.Moon,
	models.Mars, models.Mars, models.Mars,
	models.Rahu, models.Rahu, models.Rahu,
	models.Jupiter, models.Jupiter, models.Jupiter,
	models.Saturn, models.Saturn, models.Saturn,
	models.Mercury, models.Mercury, models.Mercury, // Purva Bhadrapada through Revati
}

// LordOf returns the dasha lord ruling a nakshatra.
func LordOf(n models.Nakshatra) models.Planet {
	idx := int(n) % len(nakshatraLords)
	if idx < 0 {
		idx += len(nakshatraLords)
	}
	return nakshatraLords[idx]
}

// Period is one maha dasha in the 120-year cycle. Offsets are years
// from birth; the first period's start offset is negative by the years
// already elapsed before birth.
type Period struct {
	Lord       models.Planet `json:"lord"`
	Years      float64       `json:"years"`
	StartYears float64       `json:"start_years"`
	EndYears   float64       `json:"end_years"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	Current    bool          `json:"current"`
	// Remaining is the unelapsed fraction of the period at the as-of
	// instant: 1 for future periods, 0 for past ones.
	Remaining float64 `json:"remaining"`
}

// SubPeriod is one antar dasha inside a maha dasha. Offsets are years
// from the maha dasha start.
type SubPeriod struct {
	Lord       models.Planet `json:"lord"`
	Years      float64       `json:"years"`
	StartYears float64       `json:"start_years"`
	EndYears   float64       `json:"end_years"`
	Current    bool          `json:"current"`
}

// Timeline is the full derived cycle for one chart.
type Timeline struct {
	MoonNakshatra models.NakshatraPosition `json:"moon_nakshatra"`
	// BalanceYears is the span of the first period remaining at birth.
	BalanceYears    float64         `json:"balance_years"`
	Periods         []Period        `json:"periods"`
	Antar           []SubPeriod     `json:"antar"`
	Current         models.Planet   `json:"current"`
	CurrentAntar    models.Planet   `json:"current_antar"`
	Next            models.Planet   `json:"next"`
	Characteristics Characteristics `json:"characteristics"`
}

// Calculator derives dasha timelines.
type Calculator struct{}

// NewCalculator creates a dasha calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate builds the complete timeline for a natal Moon longitude,
// marking the period active at asOf.
func (c *Calculator) Calculate(moonLongitude float64, birth, asOf time.Time) *Timeline {
	nak := models.NakshatraOf(moonLongitude)
	startLord := LordOf(nak.Nakshatra)
	startDuration := Durations[startLord]

	// Years of the first period already elapsed before birth.
	elapsed := startDuration * nak.Fraction
	balance := startDuration - elapsed

	age := asOf.Sub(birth).Hours() / 24 / daysPerYear

	startIdx := 0
	for i, p := range Order {
		if p == startLord {
			startIdx = i
			break
		}
	}

	periods := make([]Period, 0, 9)
	cumulative := -elapsed
	for i := 0; i < 9; i++ {
		lord := Order[(startIdx+i)%9]
		years := Durations[lord]
		p := Period{
			Lord:       lord,
			Years:      years,
			StartYears: cumulative,
			EndYears:   cumulative + years,
			Start:      addYears(birth, cumulative),
			End:        addYears(birth, cumulative+years),
		}
		switch {
		case age < p.StartYears:
			p.Remaining = 1
		case age >= p.EndYears:
			p.Remaining = 0
		default:
			p.Current = true
			p.Remaining = (p.EndYears - age) / years
		}
		periods = append(periods, p)
		cumulative += years
	}

	current := currentLord(periods)
	next := nextLord(periods)

	antar := c.AntarPeriods(current)
	markCurrentAntar(antar, periods, age)

	tl := &Timeline{
		MoonNakshatra:   nak,
		BalanceYears:    balance,
		Periods:         periods,
		Antar:           antar,
		Current:         current,
		Next:            next,
		Characteristics: CharacteristicsOf(current),
	}
	for _, sp := range antar {
		if sp.Current {
			tl.CurrentAntar = sp.Lord
		}
	}
	return tl
}

// AntarPeriods returns the nine sub-periods of a maha dasha, starting
// from the maha lord and following the canonical order. Each spans
// maha_duration × lord_duration / 120 years.
func (c *Calculator) AntarPeriods(mahaLord models.Planet) []SubPeriod {
	mahaDuration, ok := Durations[mahaLord]
	if !ok {
		return nil
	}

	startIdx := 0
	for i, p := range Order {
		if p == mahaLord {
			startIdx = i
			break
		}
	}

	subs := make([]SubPeriod, 0, 9)
	cumulative := 0.0
	for i := 0; i < 9; i++ {
		lord := Order[(startIdx+i)%9]
		years := mahaDuration * Durations[lord] / CycleYears
		subs = append(subs, SubPeriod{
			Lord:       lord,
			Years:      years,
			StartYears: cumulative,
			EndYears:   cumulative + years,
		})
		cumulative += years
	}
	return subs
}

func currentLord(periods []Period) models.Planet {
	for _, p := range periods {
		if p.Current {
			return p.Lord
		}
	}
	// Outside the cycle; fall back to the first period's lord.
	return periods[0].Lord
}

func nextLord(periods []Period) models.Planet {
	for i, p := range periods {
		if p.Current {
			// The cycle repeats, so the last period hands back to the first.
			return periods[(i+1)%len(periods)].Lord
		}
	}
	return ""
}

func markCurrentAntar(subs []SubPeriod, periods []Period, age float64) {
	var mahaStart float64
	found := false
	for _, p := range periods {
		if p.Current {
			mahaStart = p.StartYears
			found = true
			break
		}
	}
	if !found {
		return
	}
	within := age - mahaStart
	for i := range subs {
		if within >= subs[i].StartYears && within < subs[i].EndYears {
			subs[i].Current = true
			return
		}
	}
}

func addYears(t time.Time, years float64) time.Time {
	days := years * daysPerYear
	return t.Add(time.Duration(days * 24 * float64(time.Hour)))
}

// Section adapts the calculator to the analysis engine. The timeline
// has a hard dependency on the Moon; a chart without it fails this
// section only.
type Section struct {
	calc *Calculator
	asOf time.Time
}

// NewSection creates the dasha section evaluated at asOf.
func NewSection(asOf time.Time) *Section {
	return &Section{calc: NewCalculator(), asOf: asOf}
}

// Name returns the section name.
func (s *Section) Name() string {
	return "dasha"
}

// Calculate derives the timeline from the input's Moon position.
func (s *Section) Calculate(ctx context.Context, input *analysis.Input) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	moon, ok := input.Moon()
	if !ok {
		return nil, errors.ErrMoonUnavailable
	}
	return s.calc.Calculate(moon.Longitude, input.BirthTime, s.asOf), nil
}
