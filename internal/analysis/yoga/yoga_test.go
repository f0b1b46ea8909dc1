package yoga

import (
	"context"
	"testing"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/analysis/strength"
	"kundali-engine/internal/models"
)

func profilesFromPercent(pct map[models.Planet]float64) map[models.Planet]strength.Profile {
	out := make(map[models.Planet]strength.Profile, len(pct))
	for p, v := range pct {
		out[p] = strength.Profile{Planet: p, Percentage: v}
	}
	return out
}

func ariesInput() *analysis.Input {
	asc := models.NewAscendant(5)
	positions := map[models.Planet]models.PlanetPosition{
		models.Sun: models.NewPlanetPosition(models.Sun, 10, 1, asc),
	}
	return &analysis.Input{
		Ascendant: asc,
		Positions: positions,
		Houses:    models.AssignHouses(positions),
	}
}

func TestYogaThresholds(t *testing.T) {
	tests := []struct {
		name string
		pct  map[models.Planet]float64
		want []string
	}{
		{
			name: "raj only",
			pct:  map[models.Planet]float64{models.Jupiter: 61, models.Sun: 61},
			want: []string{"Raj Yoga"},
		},
		{
			name: "raj at boundary misses",
			pct:  map[models.Planet]float64{models.Jupiter: 60, models.Sun: 90},
			want: nil,
		},
		{
			name: "dhana",
			pct:  map[models.Planet]float64{models.Venus: 66, models.Mercury: 66},
			want: []string{"Dhana Yoga"},
		},
		{
			name: "parivartana",
			pct:  map[models.Planet]float64{models.Venus: 71, models.Jupiter: 71},
			want: []string{"Parivartana Yoga"},
		},
		{
			name: "gaja kesari",
			pct:  map[models.Planet]float64{models.Jupiter: 66, models.Moon: 66},
			want: []string{"Gaja Kesari Yoga"},
		},
		{
			name: "neecha bhanga",
			pct: map[models.Planet]float64{
				models.Saturn: 30, models.Sun: 80, models.Moon: 80,
			},
			want: []string{"Neecha Bhanga Yoga"},
		},
		{
			name: "neecha bhanga needs two supporters",
			pct:  map[models.Planet]float64{models.Saturn: 30, models.Sun: 80},
			want: nil,
		},
	}

	calc := NewCalculator()
	input := ariesInput()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := calc.Calculate(input, profilesFromPercent(tt.pct))
			if len(res.Yogas) != len(tt.want) {
				t.Fatalf("got %d yogas, want %d: %+v", len(res.Yogas), len(tt.want), res.Yogas)
			}
			for i, name := range tt.want {
				if res.Yogas[i].Name != name {
					t.Errorf("yoga[%d] = %q, want %q", i, res.Yogas[i].Name, name)
				}
			}
		})
	}
}

func TestYogaCounts(t *testing.T) {
	// Jupiter 80 + Sun 80 fires Raj; Moon 80 adds Gaja Kesari; Mercury 20
	// weak with three supporters adds Neecha Bhanga.
	pct := map[models.Planet]float64{
		models.Jupiter: 80, models.Sun: 80, models.Moon: 80, models.Mercury: 20,
	}
	res := NewCalculator().Calculate(ariesInput(), profilesFromPercent(pct))

	if res.TotalCount != 3 || res.BeneficCount != 3 || res.MaleficCount != 0 {
		t.Fatalf("counts = total %d benefic %d malefic %d, want 3/3/0",
			res.TotalCount, res.BeneficCount, res.MaleficCount)
	}

	// Neecha Bhanga supporters come in canonical order: Sun before Moon.
	last := res.Yogas[len(res.Yogas)-1]
	if last.Name != "Neecha Bhanga Yoga" {
		t.Fatalf("last yoga = %q", last.Name)
	}
	if last.Planets[0] != models.Sun || last.Planets[1] != models.Moon {
		t.Errorf("supporters = %v, want [Sun Moon]", last.Planets)
	}
}

func TestHouseLordStrengths(t *testing.T) {
	// Aries ascendant: Mars rules houses 1 and 8, Venus houses 2 and 7.
	pct := map[models.Planet]float64{
		models.Mars:  75,
		models.Venus: 50,
		models.Moon:  30,
	}
	res := NewCalculator().Calculate(ariesInput(), profilesFromPercent(pct))

	if len(res.HouseLords) != 12 {
		t.Fatalf("got %d house lords, want 12", len(res.HouseLords))
	}

	h1 := res.HouseLords[1]
	if h1.Lord != models.Mars || h1.Status != LordStrong {
		t.Errorf("house 1 lord = %s %s, want Mars Strong", h1.Lord, h1.Status)
	}
	h2 := res.HouseLords[2]
	if h2.Lord != models.Venus || h2.Status != LordModerate {
		t.Errorf("house 2 lord = %s %s, want Venus Moderate", h2.Lord, h2.Status)
	}
	h4 := res.HouseLords[4]
	if h4.Lord != models.Moon || h4.Status != LordWeak {
		t.Errorf("house 4 lord = %s %s, want Moon Weak", h4.Lord, h4.Status)
	}

	// Jupiter has no profile: house 9 falls back to the default percent.
	h9 := res.HouseLords[9]
	if h9.Lord != models.Jupiter || h9.Percentage != defaultLordPercent || h9.Status != LordModerate {
		t.Errorf("house 9 lord = %s %.0f%% %s, want Jupiter 50%% Moderate",
			h9.Lord, h9.Percentage, h9.Status)
	}
}

func TestSectionComputesOwnStrength(t *testing.T) {
	s := NewSection()
	if s.Name() != "yogas" {
		t.Errorf("section name = %q", s.Name())
	}

	asc := models.NewAscendant(5)
	positions := make(map[models.Planet]models.PlanetPosition)
	lons := map[models.Planet]float64{
		models.Sun: 12, models.Moon: 40, models.Mars: 100, models.Mercury: 130,
		models.Jupiter: 160, models.Venus: 200, models.Saturn: 250, models.Rahu: 300,
	}
	for p, lon := range lons {
		positions[p] = models.NewPlanetPosition(p, lon, 1, asc)
	}
	positions[models.Ketu] = models.DeriveKetu(positions[models.Rahu], asc)
	input := &analysis.Input{
		Ascendant: asc,
		Positions: positions,
		Houses:    models.AssignHouses(positions),
	}

	out, err := s.Calculate(context.Background(), input)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	res, ok := out.(*Result)
	if !ok {
		t.Fatalf("unexpected section value type %T", out)
	}
	if len(res.HouseLords) != 12 {
		t.Fatalf("got %d house lords, want 12", len(res.HouseLords))
	}
	for h, ls := range res.HouseLords {
		if ls.Percentage < 0 || ls.Percentage > 100 {
			t.Errorf("house %d lord percentage %.2f out of range", h, ls.Percentage)
		}
	}
}
