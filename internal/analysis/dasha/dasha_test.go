package dasha

import (
	"context"
	"math"
	"testing"
	"time"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/errors"
	"kundali-engine/internal/models"
)

func TestLordOf(t *testing.T) {
	tests := []struct {
		nakshatra models.Nakshatra
		want      models.Planet
	}{
		{0, models.Ketu},  // Ashwini
		{1, models.Ketu},  // Bharani
		{2, models.Ketu},  // Krittika closes Ketu's run
		{3, models.Venus}, // Rohini
		{5, models.Venus}, // Mrigashira
		{8, models.Sun},   // Ashlesha
		{9, models.Moon},  // Magha
		{12, models.Mars},
		{15, models.Rahu},
		{18, models.Jupiter},
		{21, models.Saturn},
		{26, models.Mercury}, // Revati
	}

	for _, tt := range tests {
		if got := LordOf(tt.nakshatra); got != tt.want {
			t.Errorf("LordOf(%d) = %v, want %v", tt.nakshatra, got, tt.want)
		}
	}
}

func TestCalculateMoonAt45Degrees(t *testing.T) {
	// 45° falls in Rohini (segment 3), ruled by Venus.
	tl := NewCalculator().Calculate(45.0, testBirth, testBirth)

	if tl.MoonNakshatra.Nakshatra != 3 {
		t.Errorf("nakshatra = %d, want 3", tl.MoonNakshatra.Nakshatra)
	}
	if tl.Periods[0].Lord != models.Venus {
		t.Errorf("starting lord = %v, want Venus", tl.Periods[0].Lord)
	}

	// 45° is 5° into Rohini: fraction 5/13.333 = 0.375, so 12.5 of
	// Venus's 20 years remain.
	if math.Abs(tl.BalanceYears-12.5) > 1e-9 {
		t.Errorf("balance = %v, want 12.5", tl.BalanceYears)
	}
	if math.Abs(tl.Periods[0].StartYears-(-7.5)) > 1e-9 {
		t.Errorf("first start offset = %v, want -7.5", tl.Periods[0].StartYears)
	}
}

func TestCurrentPeriodAdvancesWithAge(t *testing.T) {
	birth := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	calc := NewCalculator()

	atBirth := calc.Calculate(45.0, birth, birth)
	if atBirth.Current != models.Venus {
		t.Errorf("current at birth = %v, want Venus", atBirth.Current)
	}
	if atBirth.Next != models.Sun {
		t.Errorf("next at birth = %v, want Sun", atBirth.Next)
	}

	// 12.5 years of Venus remain at birth; fifteen years on, the Sun rules.
	later := calc.Calculate(45.0, birth, birth.AddDate(15, 0, 0))
	if later.Current != models.Sun {
		t.Errorf("current after 15y = %v, want Sun", later.Current)
	}
}

func TestNextLordWrapsAtCycleEnd(t *testing.T) {
	birth := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

	// The cycle started from Venus runs out with Ketu at year 112.5;
	// at age 110 the successor wraps back to the cycle's first lord.
	tl := NewCalculator().Calculate(45.0, birth, birth.AddDate(110, 0, 0))
	if tl.Current != models.Ketu {
		t.Errorf("current at 110y = %v, want Ketu", tl.Current)
	}
	if tl.Next != models.Venus {
		t.Errorf("next at 110y = %v, want Venus", tl.Next)
	}
}

func TestAntarCurrentMarked(t *testing.T) {
	birth := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	tl := NewCalculator().Calculate(45.0, birth, birth)

	if tl.CurrentAntar == "" {
		t.Fatal("no current antar dasha marked")
	}
	count := 0
	for _, s := range tl.Antar {
		if s.Current {
			count++
		}
	}
	if count != 1 {
		t.Errorf("current antar count = %d, want 1", count)
	}
}

func TestCharacteristicsOf(t *testing.T) {
	c := CharacteristicsOf(models.Saturn)
	if c.Signification == "" || c.Challenges == "" {
		t.Error("Saturn characteristics incomplete")
	}
	if CharacteristicsOf(models.Planet("Pluto")) != (Characteristics{}) {
		t.Error("unknown planet should return zero characteristics")
	}
}

func TestSectionRequiresMoon(t *testing.T) {
	section := NewSection(testBirth)

	input := &analysis.Input{
		BirthTime: testBirth,
		Positions: map[models.Planet]models.PlanetPosition{},
	}
	if _, err := section.Calculate(context.Background(), input); !errors.Is(err, errors.ErrMoonUnavailable) {
		t.Errorf("expected ErrMoonUnavailable, got %v", err)
	}

	asc := models.NewAscendant(0)
	input.Positions[models.Moon] = models.NewPlanetPosition(models.Moon, 45, 13.2, asc)
	value, err := section.Calculate(context.Background(), input)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if _, ok := value.(*Timeline); !ok {
		t.Errorf("expected *Timeline, got %T", value)
	}
}
