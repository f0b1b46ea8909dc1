package cli

import (
	"github.com/spf13/cobra"

	"kundali-engine/internal/chart"
	"kundali-engine/internal/errors"
	"kundali-engine/pkg/utils"
)

const (
	birthDateLayout = "2006-01-02"
	birthTimeLayout = "15:04"
)

// addBirthFlags registers the shared birth-detail flags on a command.
func addBirthFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "subject name (used as the saved chart key)")
	cmd.Flags().String("date", "", "birth date, YYYY-MM-DD")
	cmd.Flags().String("time", "12:00", "birth time, HH:MM")
	cmd.Flags().String("tz", "UTC", "timezone of the birth time (IANA name or IST)")
	cmd.Flags().Float64("lat", 0, "birth latitude in degrees (default from config)")
	cmd.Flags().Float64("lon", 0, "birth longitude in degrees (default from config)")
	cmd.Flags().String("load", "", "load a saved chart by name instead of deriving")
}

// parseBirth builds birth details from the command's flags, filling
// coordinates from config defaults when not given.
func parseBirth(cmd *cobra.Command, app *App) (chart.BirthDetails, error) {
	dateStr, _ := cmd.Flags().GetString("date")
	timeStr, _ := cmd.Flags().GetString("time")
	tzName, _ := cmd.Flags().GetString("tz")
	name, _ := cmd.Flags().GetString("name")

	if dateStr == "" {
		return chart.BirthDetails{}, errors.Wrap(errors.ErrInvalidBirthDetails, "--date is required (or use --load)")
	}

	loc, err := utils.ResolveLocation(tzName)
	if err != nil {
		return chart.BirthDetails{}, errors.Wrapf(errors.ErrInvalidBirthDetails, "unknown timezone %q", tzName)
	}
	instant, err := utils.ParseBirthTime(birthDateLayout, dateStr, birthTimeLayout, timeStr, loc)
	if err != nil {
		return chart.BirthDetails{}, errors.Wrapf(errors.ErrInvalidBirthDetails, "unparseable birth time %q %q", dateStr, timeStr)
	}

	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	if !cmd.Flags().Changed("lat") {
		lat = app.Config.Ephemeris.DefaultLatitude
	}
	if !cmd.Flags().Changed("lon") {
		lon = app.Config.Ephemeris.DefaultLongitude
	}

	return chart.BirthDetails{
		Name:      name,
		Time:      instant,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// deriver builds a chart deriver with the app's configured providers.
func (app *App) deriver(opts chart.Options) *chart.Deriver {
	if opts.Workers == 0 {
		opts.Workers = app.Config.Ephemeris.Workers
	}
	if opts.TransitHorizonDays == 0 {
		opts.TransitHorizonDays = app.Config.Transit.HorizonDays
	}
	if opts.TransitStepDays == 0 {
		opts.TransitStepDays = app.Config.Transit.StepDays
	}
	return chart.NewDeriver(app.Provider, app.Houses, app.Logger, opts)
}

// resolveChart loads a saved chart when --load is set, otherwise
// derives one from the birth flags.
func resolveChart(cmd *cobra.Command, app *App, opts chart.Options) (*chart.Chart, error) {
	loadName, _ := cmd.Flags().GetString("load")
	if loadName != "" {
		if app.Store == nil {
			return nil, errors.Wrap(errors.ErrDataNotFound, "chart store unavailable")
		}
		return app.Store.GetChart(cmd.Context(), loadName)
	}

	birth, err := parseBirth(cmd, app)
	if err != nil {
		return nil, err
	}
	return app.deriver(opts).Derive(cmd.Context(), birth)
}
