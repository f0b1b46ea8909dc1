package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"kundali-engine/internal/chart"
	"kundali-engine/internal/models"
	"kundali-engine/internal/store"
)

func newChartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Derive a full birth chart",
		Long: `Derive a complete birth chart: planetary positions, houses,
nakshatras, dignities and all analysis sections.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			c, err := resolveChart(cmd, app, chart.Options{})
			if err != nil {
				output.Error("Chart derivation failed: %v", err)
				return err
			}

			save, _ := cmd.Flags().GetBool("save")
			if save {
				if app.Store == nil {
					output.Warning("Chart store unavailable, not saving")
				} else if err := app.Store.SaveChart(cmd.Context(), c); err != nil {
					output.Warning("Failed to save chart: %v", err)
				} else {
					output.Dim("Saved as %q", c.Birth.ID())
				}
			}

			if output.IsJSON() {
				return output.JSON(c)
			}
			renderChart(output, c)
			return nil
		},
	}

	addBirthFlags(cmd)
	cmd.Flags().Bool("save", false, "save the derived chart to the store")
	return cmd
}

func renderChart(output *Output, c *chart.Chart) {
	output.Bold("Birth Chart: %s", c.Birth.ID())
	output.Printf("  Born:      %s\n", FormatDateTime(c.Birth.Time))
	output.Printf("  Place:     %s\n", FormatCoordinates(c.Birth.Latitude, c.Birth.Longitude))
	output.Printf("  Ascendant: %s (%s)\n", FormatSignDegree(c.Ascendant.Longitude), c.Ascendant.Nakshatra.Name)
	output.Println()

	renderPositions(output, c)

	if len(c.Missing) > 0 {
		output.Warning("Unresolved bodies: %s", FormatPlanets(c.Missing))
	}
	if len(c.SectionErrors) > 0 {
		names := make([]string, 0, len(c.SectionErrors))
		for name := range c.SectionErrors {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			output.Warning("Section %s failed: %s", name, c.SectionErrors[name])
		}
	}

	renderHouses(output, c)

	if c.Strength != nil {
		output.Println()
		output.Bold("Chart Strength: %s", string(c.Strength.Quality))
		output.Printf("  Strong planets: %d   Average: %.1f/60 (%.1f%%)\n",
			c.Strength.StrongCount, c.Strength.AveragePoints, c.Strength.AveragePercent)
		output.Printf("  Strongest: %s   Weakest: %s\n", c.Strength.Strongest, c.Strength.Weakest)
	}
	if c.Dasha != nil {
		output.Println()
		output.Bold("Current Dasha")
		output.Printf("  Maha: %s   Antar: %s\n", c.Dasha.Current, c.Dasha.CurrentAntar)
	}
}

func renderPositions(output *Output, c *chart.Chart) {
	table := NewTable(output, "Planet", "Position", "House", "Nakshatra", "Pada", "Dignity", "")
	for _, p := range models.AllPlanets {
		pos, ok := c.Positions[p]
		if !ok {
			continue
		}
		table.AddRow(
			string(p),
			FormatSignDegree(pos.Longitude),
			fmt.Sprintf("%d", pos.House),
			pos.Nakshatra.Name,
			fmt.Sprintf("%d", pos.Nakshatra.Pada),
			output.DignityTag(pos.Dignity),
			output.RetrogradeTag(pos.Retrograde),
		)
	}
	table.Render()
}

func renderHouses(output *Output, c *chart.Chart) {
	output.Println()
	output.Bold("Houses")
	for h := 1; h <= 12; h++ {
		occupants := c.Houses[h]
		if len(occupants) == 0 {
			continue
		}
		output.Printf("  %2d: %s\n", h, FormatPlanets(occupants))
	}
}

func newSavedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved charts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Chart store unavailable")
				return fmt.Errorf("chart store unavailable")
			}

			summaries, err := app.Store.ListCharts(cmd.Context(), store.ChartFilter{})
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(summaries)
			}
			if len(summaries) == 0 {
				output.Dim("No saved charts")
				return nil
			}

			table := NewTable(output, "Name", "Born", "Place", "Ascendant", "Saved")
			for _, s := range summaries {
				table.AddRow(
					s.Name,
					FormatDateTime(s.BirthTime),
					FormatCoordinates(s.Latitude, s.Longitude),
					s.AscendantSign,
					FormatDate(s.SavedAt),
				)
			}
			table.Render()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show a saved chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Chart store unavailable")
				return fmt.Errorf("chart store unavailable")
			}

			c, err := app.Store.GetChart(cmd.Context(), args[0])
			if err != nil {
				output.Error("Failed to load chart: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(c)
			}
			renderChart(output, c)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				output.Error("Chart store unavailable")
				return fmt.Errorf("chart store unavailable")
			}

			if err := app.Store.DeleteChart(cmd.Context(), args[0]); err != nil {
				output.Error("Failed to delete chart: %v", err)
				return err
			}
			output.Success("Deleted %q", args[0])
			return nil
		},
	})

	return cmd
}
