package houses

import (
	"context"
	"strings"
	"testing"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/models"
)

// chartInput builds a natal input with an Aries ascendant and the given
// planet longitudes.
func chartInput(t *testing.T, ascLon float64, longitudes map[models.Planet]float64) *analysis.Input {
	t.Helper()
	asc := models.NewAscendant(ascLon)
	positions := make(map[models.Planet]models.PlanetPosition, len(longitudes))
	for p, lon := range longitudes {
		positions[p] = models.NewPlanetPosition(p, lon, 1.0, asc)
	}
	return &analysis.Input{
		Ascendant: asc,
		Positions: positions,
		Houses:    models.AssignHouses(positions),
	}
}

func TestSignOfHouse(t *testing.T) {
	tests := []struct {
		asc   models.Sign
		house int
		want  models.Sign
	}{
		{models.Aries, 1, models.Aries},
		{models.Aries, 12, models.Pisces},
		{models.Cancer, 1, models.Cancer},
		{models.Cancer, 7, models.Capricorn},
		{models.Pisces, 2, models.Aries},
	}
	for _, tt := range tests {
		if got := SignOfHouse(tt.asc, tt.house); got != tt.want {
			t.Errorf("SignOfHouse(%s, %d) = %s, want %s", tt.asc, tt.house, got, tt.want)
		}
	}
}

func TestHouseStrengthGrading(t *testing.T) {
	// Mars and Saturn are both strong in house 6.
	if got := houseStrength(6, []models.Planet{models.Mars, models.Saturn}); got != VeryStrong {
		t.Errorf("two strong occupants: got %s, want %s", got, VeryStrong)
	}
	// Sun is strong in house 1, Venus is not.
	if got := houseStrength(1, []models.Planet{models.Sun, models.Venus}); got != Strong {
		t.Errorf("one strong occupant: got %s, want %s", got, Strong)
	}
	// Venus is not listed for house 1.
	if got := houseStrength(1, []models.Planet{models.Venus}); got != Moderate {
		t.Errorf("weak occupant only: got %s, want %s", got, Moderate)
	}
	if got := houseStrength(3, nil); got != Weak {
		t.Errorf("empty house: got %s, want %s", got, Weak)
	}
}

func TestLordStrength(t *testing.T) {
	// Aries ascendant: house 1 lord is Mars. Mars at 280° sits in
	// Capricorn, its exaltation sign.
	input := chartInput(t, 10, map[models.Planet]float64{models.Mars: 280})
	if got := lordStrength(models.Mars, input); got != LordVeryStrong {
		t.Errorf("exalted lord: got %s, want %s", got, LordVeryStrong)
	}

	// Sun at 15° Aries occupies house 1, a strong house for the Sun,
	// and Aries is its exaltation sign too; move it to Gemini (house 3)
	// which is neither dignified nor in the Sun's strong list.
	input = chartInput(t, 10, map[models.Planet]float64{models.Sun: 70})
	if got := lordStrength(models.Sun, input); got != LordModerate {
		t.Errorf("plain placement: got %s, want %s", got, LordModerate)
	}

	// Saturn at 100° Cancer occupies house 4 from an Aries ascendant;
	// not dignified, not in Saturn's list.
	input = chartInput(t, 10, map[models.Planet]float64{models.Saturn: 100})
	if got := lordStrength(models.Saturn, input); got != LordModerate {
		t.Errorf("cancer saturn: got %s, want %s", got, LordModerate)
	}

	// Moon at 130° Leo occupies house 5; move to 95° Cancer, own sign.
	input = chartInput(t, 10, map[models.Planet]float64{models.Moon: 95})
	if got := lordStrength(models.Moon, input); got != LordVeryStrong {
		t.Errorf("own-sign lord: got %s, want %s", got, LordVeryStrong)
	}

	// Lord absent from the chart.
	input = chartInput(t, 10, map[models.Planet]float64{models.Sun: 10})
	if got := lordStrength(models.Jupiter, input); got != LordUnknown {
		t.Errorf("missing lord: got %s, want %s", got, LordUnknown)
	}
}

func TestHouseQuality(t *testing.T) {
	tests := []struct {
		occupants []models.Planet
		want      Quality
	}{
		{[]models.Planet{models.Jupiter, models.Venus, models.Saturn}, Benefic},
		{[]models.Planet{models.Mars, models.Rahu, models.Moon}, Malefic},
		{[]models.Planet{models.Sun, models.Saturn}, Neutral},
		{nil, Neutral},
	}
	for _, tt := range tests {
		if got := houseQuality(tt.occupants); got != tt.want {
			t.Errorf("houseQuality(%v) = %s, want %s", tt.occupants, got, tt.want)
		}
	}
}

func TestCalculateSummary(t *testing.T) {
	// All nine planets clustered in houses 1 and 6.
	input := chartInput(t, 5, map[models.Planet]float64{
		models.Sun:     10, // Aries, house 1
		models.Moon:    12,
		models.Mars:    160, // Virgo, house 6
		models.Mercury: 162,
		models.Jupiter: 20,
		models.Venus:   22,
		models.Saturn:  165,
		models.Rahu:    168,
		models.Ketu:    348, // Pisces, house 12
	})

	res := NewCalculator().Calculate(input)

	if res.Houses[0].Number != 1 || res.Houses[11].Number != 12 {
		t.Fatalf("house numbering broken: %d..%d", res.Houses[0].Number, res.Houses[11].Number)
	}
	if res.Houses[0].Name != "Self" || res.Houses[6].Name != "Marriage" {
		t.Errorf("significator names wrong: %q, %q", res.Houses[0].Name, res.Houses[6].Name)
	}
	if res.Houses[0].Sign != models.Aries {
		t.Errorf("house 1 sign = %s, want Aries", res.Houses[0].Sign)
	}

	// House 6 (Virgo) holds Mars, Mercury, Saturn and Rahu; every one of
	// them is listed as strong in house 6.
	h6 := res.Houses[5]
	if h6.Strength != VeryStrong {
		t.Errorf("house 6 strength = %s, want %s", h6.Strength, VeryStrong)
	}
	if h6.Quality != Malefic {
		t.Errorf("house 6 quality = %s, want %s", h6.Quality, Malefic)
	}

	// Houses with no occupants grade Weak and say so in the text.
	h3 := res.Houses[2]
	if h3.Strength != Weak {
		t.Errorf("house 3 strength = %s, want %s", h3.Strength, Weak)
	}
	if !strings.Contains(h3.Interpretation, "No planets in this house") {
		t.Errorf("empty-house interpretation missing: %q", h3.Interpretation)
	}

	if len(res.StrongList)+len(res.WeakList) > 12 {
		t.Fatalf("summary lists overlap: strong=%v weak=%v", res.StrongList, res.WeakList)
	}
	if !strings.Contains(res.Summary, "strong houses") {
		t.Errorf("summary text missing: %q", res.Summary)
	}
	if res.Assessment == "" {
		t.Error("assessment empty")
	}
}

func TestSectionName(t *testing.T) {
	s := NewSection()
	if s.Name() != "houses" {
		t.Errorf("section name = %q", s.Name())
	}
	input := chartInput(t, 0, map[models.Planet]float64{models.Sun: 10})
	out, err := s.Calculate(context.Background(), input)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if _, ok := out.(*Result); !ok {
		t.Fatalf("unexpected section value type %T", out)
	}
}
