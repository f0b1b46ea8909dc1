package chart

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"kundali-engine/internal/analysis/strength"
	"kundali-engine/internal/ephemeris"
	"kundali-engine/internal/errors"
	"kundali-engine/internal/models"
	"kundali-engine/pkg/utils"
)

var testBirth = BirthDetails{
	Name:      "test-subject",
	Time:      time.Date(1990, 3, 15, 6, 30, 0, 0, time.UTC),
	Latitude:  28.61,
	Longitude: 77.20,
}

func fullSnapshot() map[models.Planet]ephemeris.BodyState {
	return map[models.Planet]ephemeris.BodyState{
		models.Sun:     {Longitude: 330.5, Speed: 0.98},
		models.Moon:    {Longitude: 45.0, Speed: 13.2},
		models.Mars:    {Longitude: 250.1, Speed: 0.52},
		models.Mercury: {Longitude: 310.0, Speed: 1.2},
		models.Jupiter: {Longitude: 75.3, Speed: 0.08},
		models.Venus:   {Longitude: 15.0, Speed: 1.1},
		models.Saturn:  {Longitude: 275.0, Speed: 0.03},
		models.Rahu:    {Longitude: 290.0, Speed: -0.053},
	}
}

func testDeriver(bodies map[models.Planet]ephemeris.BodyState) *Deriver {
	provider := ephemeris.NewSnapshotProvider(bodies, 123.5)
	return NewDeriver(provider, provider, zerolog.Nop(), Options{
		AsOf: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
}

func TestBirthDetailsValidate(t *testing.T) {
	tests := []struct {
		name    string
		birth   BirthDetails
		wantErr error
	}{
		{"valid", testBirth, nil},
		{"zero time", BirthDetails{Latitude: 10, Longitude: 20}, errors.ErrInvalidBirthDetails},
		{"latitude high", BirthDetails{Time: testBirth.Time, Latitude: 91}, errors.ErrCoordinatesOutOfRange},
		{"latitude low", BirthDetails{Time: testBirth.Time, Latitude: -90.5}, errors.ErrCoordinatesOutOfRange},
		{"longitude high", BirthDetails{Time: testBirth.Time, Longitude: 180.1}, errors.ErrCoordinatesOutOfRange},
		{"boundary ok", BirthDetails{Time: testBirth.Time, Latitude: -90, Longitude: 180}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.birth.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBirthDetailsID(t *testing.T) {
	if got := testBirth.ID(); got != "test-subject" {
		t.Errorf("named ID = %q", got)
	}
	anon := BirthDetails{Time: time.Date(1990, 3, 15, 6, 30, 0, 0, time.UTC)}
	if got := anon.ID(); got != "19900315T063000Z" {
		t.Errorf("anonymous ID = %q", got)
	}
}

func TestDeriveFullChart(t *testing.T) {
	d := testDeriver(fullSnapshot())
	c, err := d.Derive(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	if !c.Complete() {
		t.Fatalf("sections failed: %v", c.SectionErrors)
	}
	if len(c.Positions) != 9 {
		t.Fatalf("got %d positions, want 9", len(c.Positions))
	}
	if len(c.Missing) != 0 {
		t.Errorf("missing = %v, want none", c.Missing)
	}

	// Ketu is derived, not provided.
	ketu, ok := c.Positions[models.Ketu]
	if !ok {
		t.Fatal("Ketu not derived")
	}
	if ketu.Longitude != 110.0 {
		t.Errorf("Ketu longitude = %.2f, want 110.00", ketu.Longitude)
	}
	if ketu.Retrograde {
		t.Error("Ketu motion inverts Rahu's, so negative Rahu speed means direct Ketu")
	}

	if c.Ascendant.Longitude != 123.5 {
		t.Errorf("ascendant = %.2f, want 123.50", c.Ascendant.Longitude)
	}

	if c.Dasha == nil || c.Strength == nil || c.Varga == nil ||
		c.Aspects == nil || c.HouseAnalysis == nil || c.Yogas == nil {
		t.Fatal("core section missing from chart record")
	}
	if c.Transits != nil {
		t.Error("transits present without IncludeTransits")
	}

	// Moon at 45° is Rohini; its dasha starts with the Venus period.
	if c.Dasha.Current == "" {
		t.Error("dasha current lord empty")
	}
	if len(c.Strength.Profiles) != 9 {
		t.Errorf("strength profiles = %d, want 9", len(c.Strength.Profiles))
	}
}

func TestDeriveKeepsLocalBirthHour(t *testing.T) {
	d := testDeriver(fullSnapshot())
	birth := testBirth
	birth.Time = time.Date(1990, 3, 15, 20, 0, 0, 0, utils.IndiaLocation)

	c, err := d.Derive(context.Background(), birth)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	// 20:00 IST is night even though the instant is 14:30 UTC; temporal
	// strength must key on the birth place's clock.
	if got := c.Strength.Profiles[models.Moon].Scores[strength.ComponentKala]; got != 12 {
		t.Errorf("Moon kala = %v, want 12 for a night birth", got)
	}
	if got := c.Strength.Profiles[models.Sun].Scores[strength.ComponentKala]; got != 8 {
		t.Errorf("Sun kala = %v, want 8 for a night birth", got)
	}
}

func TestDeriveDegradesWithoutMoon(t *testing.T) {
	bodies := fullSnapshot()
	delete(bodies, models.Moon)

	d := testDeriver(bodies)
	c, err := d.Derive(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	if c.HasPlanet(models.Moon) {
		t.Fatal("Moon should be missing")
	}
	if len(c.Missing) != 1 || c.Missing[0] != models.Moon {
		t.Fatalf("missing = %v, want [Moon]", c.Missing)
	}

	// Only the dasha section has a hard Moon dependency.
	if c.Dasha != nil {
		t.Error("dasha should fail without Moon")
	}
	msg, ok := c.SectionErrors["dasha"]
	if !ok {
		t.Fatalf("dasha failure not recorded: %v", c.SectionErrors)
	}
	if msg == "" {
		t.Error("dasha failure has empty message")
	}
	if c.Strength == nil || c.Varga == nil || c.Aspects == nil {
		t.Error("position sections should degrade per-planet, not fail")
	}
	if len(c.Strength.Profiles) != 8 {
		t.Errorf("strength profiles = %d, want 8 without Moon", len(c.Strength.Profiles))
	}
}

func TestDeriveDerivesKetuOnlyWithRahu(t *testing.T) {
	bodies := fullSnapshot()
	delete(bodies, models.Rahu)

	d := testDeriver(bodies)
	c, err := d.Derive(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if c.HasPlanet(models.Ketu) {
		t.Error("Ketu derived without Rahu")
	}
	found := map[models.Planet]bool{}
	for _, p := range c.Missing {
		found[p] = true
	}
	if !found[models.Rahu] || !found[models.Ketu] {
		t.Errorf("missing = %v, want Rahu and Ketu", c.Missing)
	}
}

func TestDeriveRejectsBadCoordinates(t *testing.T) {
	d := testDeriver(fullSnapshot())
	bad := testBirth
	bad.Latitude = 123
	if _, err := d.Derive(context.Background(), bad); !errors.Is(err, errors.ErrCoordinatesOutOfRange) {
		t.Fatalf("Derive = %v, want coordinate error", err)
	}
}

func TestDeriveIncludesTransitsOnDemand(t *testing.T) {
	provider := ephemeris.NewSnapshotProvider(fullSnapshot(), 123.5)
	d := NewDeriver(provider, provider, zerolog.Nop(), Options{
		AsOf:               time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		IncludeTransits:    true,
		TransitHorizonDays: 90,
		TransitStepDays:    30,
	})
	c, err := d.Derive(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if c.Transits == nil {
		t.Fatalf("transits absent: %v", c.SectionErrors)
	}
}

func TestDeriveBatch(t *testing.T) {
	d := testDeriver(fullSnapshot())

	births := []BirthDetails{
		testBirth,
		{Name: "bad", Time: testBirth.Time, Latitude: 99, Longitude: 0},
		{Name: "third", Time: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), Latitude: 19.07, Longitude: 72.88},
	}
	results := d.DeriveBatch(context.Background(), births, 2)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Err != nil || results[0].Chart == nil {
		t.Errorf("first: err=%v", results[0].Err)
	}
	if !errors.Is(results[1].Err, errors.ErrCoordinatesOutOfRange) {
		t.Errorf("second: err=%v, want coordinate error", results[1].Err)
	}
	if results[2].Err != nil || results[2].Chart == nil {
		t.Errorf("third: err=%v", results[2].Err)
	}
	if results[1].Birth.Name != "bad" {
		t.Error("results lost input order")
	}
}
