package cli

import (
	"time"

	"github.com/spf13/cobra"

	"kundali-engine/internal/analysis/transit"
	"kundali-engine/internal/chart"
	"kundali-engine/internal/errors"
	"kundali-engine/internal/models"
)

func newTransitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transit",
		Short: "Compare current transits against a natal chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			c, err := resolveChart(cmd, app, chart.Options{})
			if err != nil {
				output.Error("Chart derivation failed: %v", err)
				return err
			}

			asOf := time.Now()
			asOfStr, _ := cmd.Flags().GetString("as-of")
			if asOfStr != "" {
				asOf, err = time.Parse(birthDateLayout, asOfStr)
				if err != nil {
					return errors.Wrapf(errors.ErrInvalidBirthDetails, "unparseable as-of date %q", asOfStr)
				}
			}
			horizon, _ := cmd.Flags().GetInt("horizon")
			if horizon == 0 {
				horizon = app.Config.Transit.HorizonDays
			}

			calc := transit.NewCalculator(app.Provider, horizon, app.Config.Transit.StepDays)
			res, err := calc.Compare(cmd.Context(), c.Positions, asOf)
			if err != nil {
				output.Error("Transit comparison failed: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(res)
			}

			renderTransits(output, c, res)
			return nil
		},
	}

	addBirthFlags(cmd)
	cmd.Flags().String("as-of", "", "comparison date, YYYY-MM-DD (default today)")
	cmd.Flags().Int("horizon", 0, "forward scan horizon in days (default from config)")
	return cmd
}

func renderTransits(output *Output, c *chart.Chart, res *transit.Result) {
	output.Bold("Transits for %s as of %s", c.Birth.ID(), FormatDate(res.AsOf))
	output.Println()

	table := NewTable(output, "Planet", "Now", "Natal", "Quality", "In Sign", "")
	for _, p := range models.AllPlanets {
		tr, ok := res.Transits[p]
		if !ok {
			continue
		}
		changed := ""
		if tr.SignChanged {
			changed = output.Cyan("sign changed")
		}
		table.AddRow(
			string(p),
			FormatSignDegree(tr.CurrentLongitude),
			FormatSignDegree(tr.NatalLongitude),
			output.TransitQuality(tr.Quality),
			FormatDays(tr.DurationInSignDays),
			changed,
		)
	}
	table.Render()

	for _, p := range models.AllPlanets {
		tr, ok := res.Transits[p]
		if !ok || len(tr.Aspects) == 0 {
			continue
		}
		output.Println()
		output.Bold("%s aspects", p)
		for _, a := range tr.Aspects {
			phase := "separating"
			if a.Applying {
				phase = "applying"
			}
			output.Printf("  %s to natal %s (orb %.1f°, %s, %s)\n",
				a.Name, a.NatalPlanet, a.Orb, a.Strength, phase)
		}
	}

	if len(res.Important) > 0 {
		output.Println()
		output.Bold("Significant Slow Transits")
		for _, it := range res.Important {
			output.Printf("  %s in %s: %s (%s, impact %s)\n",
				it.Planet, it.CurrentSign, it.Type, it.Duration, it.Impact)
			output.Dim("    %s", it.Significance)
		}
	}

	if len(res.Upcoming) > 0 {
		output.Println()
		output.Bold("Upcoming Sign Changes")
		for _, up := range res.Upcoming {
			output.Printf("  %s: %s → %s in %d days (%s)\n",
				up.Planet, up.OldSign, up.NewSign, up.DaysAway, FormatDate(up.Date))
		}
	}

	if len(res.Transits) == 0 {
		output.Dim("No comparable transits")
	}
}
