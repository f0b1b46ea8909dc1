package dasha

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"kundali-engine/internal/models"
)

func moonLongitudeGen() gopter.Gen {
	return gen.Float64Range(0.0, 359.999)
}

var testBirth = time.Date(1990, 5, 15, 6, 30, 0, 0, time.UTC)

func TestProperty_CycleClosure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("nine periods always sum to exactly 120 years", prop.ForAll(
		func(moonLon float64) bool {
			tl := NewCalculator().Calculate(moonLon, testBirth, testBirth)
			if len(tl.Periods) != 9 {
				return false
			}
			total := 0.0
			for _, p := range tl.Periods {
				total += p.Years
			}
			return math.Abs(total-CycleYears) < 1e-9
		},
		moonLongitudeGen(),
	))

	properties.Property("period order is a rotation of the canonical sequence", prop.ForAll(
		func(moonLon float64) bool {
			tl := NewCalculator().Calculate(moonLon, testBirth, testBirth)
			startIdx := -1
			for i, lord := range Order {
				if lord == tl.Periods[0].Lord {
					startIdx = i
					break
				}
			}
			if startIdx < 0 {
				return false
			}
			for i, p := range tl.Periods {
				if p.Lord != Order[(startIdx+i)%9] {
					return false
				}
			}
			return true
		},
		moonLongitudeGen(),
	))

	properties.Property("periods are contiguous and the first starts at or before birth", prop.ForAll(
		func(moonLon float64) bool {
			tl := NewCalculator().Calculate(moonLon, testBirth, testBirth)
			if tl.Periods[0].StartYears > 0 {
				return false
			}
			for i := 1; i < len(tl.Periods); i++ {
				if math.Abs(tl.Periods[i].StartYears-tl.Periods[i-1].EndYears) > 1e-9 {
					return false
				}
			}
			return true
		},
		moonLongitudeGen(),
	))

	properties.TestingRun(t)
}

func TestProperty_AntarProportionality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("antar periods sum to the maha duration and scale by lord duration", prop.ForAll(
		func(lordIdx int) bool {
			maha := Order[lordIdx%9]
			subs := NewCalculator().AntarPeriods(maha)
			if len(subs) != 9 {
				return false
			}
			mahaDuration := Durations[maha]
			total := 0.0
			for _, s := range subs {
				want := mahaDuration * Durations[s.Lord] / CycleYears
				if math.Abs(s.Years-want) > 1e-9 {
					return false
				}
				total += s.Years
			}
			return math.Abs(total-mahaDuration) < 1e-9
		},
		gen.IntRange(0, 8),
	))

	properties.Property("antar sequence starts at the maha lord", prop.ForAll(
		func(lordIdx int) bool {
			maha := Order[lordIdx%9]
			subs := NewCalculator().AntarPeriods(maha)
			return subs[0].Lord == maha
		},
		gen.IntRange(0, 8),
	))

	properties.TestingRun(t)
}

func TestProperty_BalanceScalesWithFraction(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("balance equals duration times the unelapsed nakshatra fraction", prop.ForAll(
		func(moonLon float64) bool {
			tl := NewCalculator().Calculate(moonLon, testBirth, testBirth)
			nak := models.NakshatraOf(moonLon)
			lord := LordOf(nak.Nakshatra)
			want := Durations[lord] * (1 - nak.Fraction)
			return math.Abs(tl.BalanceYears-want) < 1e-9
		},
		moonLongitudeGen(),
	))

	properties.TestingRun(t)
}
