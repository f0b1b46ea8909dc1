package chart

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/ephemeris"
	"kundali-engine/internal/errors"
	"kundali-engine/internal/logging"
	"kundali-engine/internal/models"
	"kundali-engine/pkg/utils"
)

// Builder resolves birth details into an analysis input through the
// configured ephemeris providers. A body the provider cannot resolve is
// dropped from the chart rather than failing the build; only a missing
// ascendant aborts, since houses cannot be assigned without it.
type Builder struct {
	provider ephemeris.Provider
	houses   ephemeris.AscendantProvider
	logger   zerolog.Logger
	retry    utils.RetryConfig
}

// NewBuilder creates a chart builder over the given providers.
func NewBuilder(provider ephemeris.Provider, housesProvider ephemeris.AscendantProvider, logger zerolog.Logger) *Builder {
	retry := utils.DefaultRetryConfig()
	retry.InitialDelay = 50 * time.Millisecond
	return &Builder{provider: provider, houses: housesProvider, logger: logger, retry: retry}
}

// Build resolves positions for a birth and assembles the natal input.
// The returned planet list names the bodies the provider omitted.
func (b *Builder) Build(ctx context.Context, birth BirthDetails) (*analysis.Input, []models.Planet, error) {
	if err := birth.Validate(); err != nil {
		return nil, nil, err
	}

	jd := ephemeris.JulianDay(birth.Time)
	logger := logging.WithChart(b.logger, birth.ID())

	ascStart := time.Now()
	ascLon, err := utils.RetryWithResult(ctx, b.retry, func() (float64, error) {
		return b.houses.Ascendant(ctx, jd, birth.Latitude, birth.Longitude)
	})
	if err != nil {
		logging.LogEphemerisCall(logger, b.provider.Name(), jd, time.Since(ascStart), err)
		return nil, nil, errors.NewProviderError(b.provider.Name(), "ascendant", "ascendant lookup failed",
			errors.Wrap(errors.ErrAscendantUnavailable, err.Error()))
	}
	asc := models.NewAscendant(ascLon)

	posStart := time.Now()
	states, err := utils.RetryWithResult(ctx, b.retry, func() (map[models.Planet]ephemeris.BodyState, error) {
		return b.provider.Positions(ctx, jd)
	})
	logging.LogEphemerisCall(logger, b.provider.Name(), jd, time.Since(posStart), err)
	if err != nil {
		return nil, nil, errors.NewProviderError(b.provider.Name(), "", "position lookup failed", err)
	}

	positions := make(map[models.Planet]models.PlanetPosition, len(models.AllPlanets))
	var missing []models.Planet
	for _, body := range models.EphemerisBodies {
		state, ok := states[body]
		if !ok {
			missing = append(missing, body)
			logger.Warn().Str("planet", string(body)).Msg("body unresolved, degrading chart")
			continue
		}
		positions[body] = models.NewPlanetPosition(body, state.Longitude, state.Speed, asc)
	}
	if rahu, ok := positions[models.Rahu]; ok {
		positions[models.Ketu] = models.DeriveKetu(rahu, asc)
	} else {
		missing = append(missing, models.Ketu)
	}

	input := &analysis.Input{
		BirthTime: birth.Time,
		Latitude:  birth.Latitude,
		Longitude: birth.Longitude,
		Ascendant: asc,
		Positions: positions,
		Houses:    models.AssignHouses(positions),
	}
	return input, missing, nil
}
