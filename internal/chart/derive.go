package chart

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"kundali-engine/internal/analysis"
	"kundali-engine/internal/analysis/aspects"
	"kundali-engine/internal/analysis/dasha"
	"kundali-engine/internal/analysis/houses"
	"kundali-engine/internal/analysis/strength"
	"kundali-engine/internal/analysis/transit"
	"kundali-engine/internal/analysis/varga"
	"kundali-engine/internal/analysis/yoga"
	"kundali-engine/internal/ephemeris"
	"kundali-engine/internal/logging"
)

// Options tune a derivation run.
type Options struct {
	// AsOf is the evaluation instant for dasha and transit sections.
	// Zero means the wall clock at derivation time.
	AsOf time.Time

	// Workers sizes the section pool. Zero picks the engine default.
	Workers int

	// IncludeTransits adds the transit comparison to the run. It is the
	// one section that calls back into the ephemeris provider, so it is
	// opt-in.
	IncludeTransits bool

	TransitHorizonDays int
	TransitStepDays    int
}

// Deriver runs the full analysis pipeline for birth details.
type Deriver struct {
	builder  *Builder
	provider ephemeris.Provider
	logger   zerolog.Logger
	opts     Options
}

// NewDeriver wires a deriver over the given providers.
func NewDeriver(provider ephemeris.Provider, housesProvider ephemeris.AscendantProvider, logger zerolog.Logger, opts Options) *Deriver {
	return &Deriver{
		builder:  NewBuilder(provider, housesProvider, logger),
		provider: provider,
		logger:   logger,
		opts:     opts,
	}
}

// Derive builds the natal chart and runs every registered section over
// it. Section failures degrade to nil fields with the reason recorded;
// only input validation and provider-level failures return an error.
func (d *Deriver) Derive(ctx context.Context, birth BirthDetails) (*Chart, error) {
	start := time.Now()
	asOf := d.opts.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	input, missing, err := d.builder.Build(ctx, birth)
	if err != nil {
		return nil, err
	}

	engine := analysis.NewEngine(d.opts.Workers)
	engine.Register(dasha.NewSection(asOf))
	engine.Register(strength.NewSection())
	engine.Register(varga.NewSection())
	engine.Register(aspects.NewSection())
	engine.Register(houses.NewSection())
	engine.Register(yoga.NewSection())
	if d.opts.IncludeTransits {
		engine.Register(transit.NewSection(d.provider, d.opts.TransitHorizonDays, d.opts.TransitStepDays, asOf))
	}

	results := engine.CalculateAll(ctx, input)

	c := &Chart{
		Birth:       birth,
		GeneratedAt: asOf,
		JulianDay:   ephemeris.JulianDay(birth.Time),
		Ascendant:   input.Ascendant,
		Positions:   input.Positions,
		Houses:      input.Houses,
		Missing:     missing,
	}
	failed := 0
	for name, res := range results {
		if res.Err != nil {
			failed++
			if c.SectionErrors == nil {
				c.SectionErrors = make(map[string]string)
			}
			c.SectionErrors[name] = res.Err.Error()
			logging.LogSectionFailure(d.logger, birth.ID(), name, res.Err)
			continue
		}
		c.attach(name, res.Value)
	}

	logging.LogDerivation(d.logger, birth.ID(), len(results), failed, time.Since(start))
	return c, nil
}

// attach places a section value on its typed chart field.
func (c *Chart) attach(name string, value interface{}) {
	switch name {
	case "dasha":
		c.Dasha, _ = value.(*dasha.Timeline)
	case "strength":
		c.Strength, _ = value.(*strength.ChartSummary)
	case "varga":
		c.Varga, _ = value.(*varga.Result)
	case "aspects":
		c.Aspects, _ = value.(*aspects.Result)
	case "houses":
		c.HouseAnalysis, _ = value.(*houses.Result)
	case "yogas":
		c.Yogas, _ = value.(*yoga.Result)
	case "transit":
		c.Transits, _ = value.(*transit.Result)
	}
}
