package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"kundali-engine/internal/analysis/varga"
	"kundali-engine/internal/chart"
	"kundali-engine/internal/models"
)

func newDashaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dasha",
		Short: "Show the Vimshottari dasha timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			c, err := resolveChart(cmd, app, chart.Options{})
			if err != nil {
				output.Error("Chart derivation failed: %v", err)
				return err
			}
			if c.Dasha == nil {
				output.Error("Dasha timeline unavailable: %s", c.SectionErrors["dasha"])
				return fmt.Errorf("dasha section failed")
			}
			if output.IsJSON() {
				return output.JSON(c.Dasha)
			}

			tl := c.Dasha
			output.Bold("Vimshottari Dasha: %s", c.Birth.ID())
			output.Printf("  Moon Nakshatra: %s (pada %d)\n", tl.MoonNakshatra.Name, tl.MoonNakshatra.Pada)
			output.Printf("  Balance at birth: %s of %s\n", FormatYears(tl.BalanceYears), tl.Periods[0].Lord)
			output.Println()

			table := NewTable(output, "Lord", "Years", "From", "To", "")
			for _, p := range tl.Periods {
				marker := ""
				if p.Current {
					marker = output.Green("← current")
				}
				table.AddRow(
					string(p.Lord),
					fmt.Sprintf("%.0f", p.Years),
					FormatDate(p.Start),
					FormatDate(p.End),
					marker,
				)
			}
			table.Render()

			if len(tl.Antar) > 0 {
				output.Println()
				output.Bold("Antar Dasha of %s", tl.Current)
				antarTable := NewTable(output, "Lord", "Years", "Offset", "")
				for _, sp := range tl.Antar {
					marker := ""
					if sp.Current {
						marker = output.Green("← current")
					}
					antarTable.AddRow(
						string(sp.Lord),
						fmt.Sprintf("%.2f", sp.Years),
						fmt.Sprintf("%.2f - %.2f", sp.StartYears, sp.EndYears),
						marker,
					)
				}
				antarTable.Render()
			}

			output.Println()
			output.Bold("Period Themes: %s", tl.Current)
			output.Printf("  Signifies:  %s\n", tl.Characteristics.Signification)
			output.Printf("  Favorable:  %s\n", tl.Characteristics.PositiveEffects)
			output.Printf("  Demanding:  %s\n", tl.Characteristics.Challenges)
			if tl.Next != "" {
				output.Dim("Next maha dasha: %s", tl.Next)
			}
			return nil
		},
	}
	addBirthFlags(cmd)
	return cmd
}

func newStrengthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strength",
		Short: "Show Shad Bala strength profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			c, err := resolveChart(cmd, app, chart.Options{})
			if err != nil {
				output.Error("Chart derivation failed: %v", err)
				return err
			}
			if c.Strength == nil {
				output.Error("Strength profiles unavailable: %s", c.SectionErrors["strength"])
				return fmt.Errorf("strength section failed")
			}
			if output.IsJSON() {
				return output.JSON(c.Strength)
			}

			sum := c.Strength
			output.Bold("Shad Bala: %s", c.Birth.ID())
			output.Println()

			table := NewTable(output, "Planet", "Total", "Percent", "Status")
			for _, p := range models.AllPlanets {
				prof, ok := sum.Profiles[p]
				if !ok {
					continue
				}
				table.AddRow(
					string(p),
					fmt.Sprintf("%.1f/60", prof.Total),
					FormatPercent(prof.Percentage),
					output.StrengthStatus(prof.Status),
				)
			}
			table.Render()

			output.Println()
			output.Printf("  Chart quality: %s\n", output.BoldText(string(sum.Quality)))
			output.Printf("  Strong planets: %d   Average: %.1f points (%.1f%%)\n",
				sum.StrongCount, sum.AveragePoints, sum.AveragePercent)
			output.Printf("  Strongest: %s   Weakest: %s\n",
				output.Green(string(sum.Strongest)), output.Red(string(sum.Weakest)))

			if c.Yogas != nil && len(c.Yogas.Yogas) > 0 {
				output.Println()
				output.Bold("Detected Yogas")
				for _, y := range c.Yogas.Yogas {
					output.Printf("  %s (%s)\n", y.Name, FormatPlanets(y.Planets))
				}
			}
			return nil
		},
	}
	addBirthFlags(cmd)
	return cmd
}

func newVargaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "varga",
		Short: "Show divisional charts (D2, D7, D9)",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			c, err := resolveChart(cmd, app, chart.Options{})
			if err != nil {
				output.Error("Chart derivation failed: %v", err)
				return err
			}
			if c.Varga == nil {
				output.Error("Divisional charts unavailable: %s", c.SectionErrors["varga"])
				return fmt.Errorf("varga section failed")
			}
			if output.IsJSON() {
				return output.JSON(c.Varga)
			}

			output.Bold("Divisional Charts: %s", c.Birth.ID())
			for _, division := range varga.Divisions {
				dc := c.Varga.Charts[division]
				if dc == nil {
					continue
				}
				output.Println()
				output.Bold("%s (ascendant %s)", division, dc.Ascendant)
				table := NewTable(output, "Planet", "Natal", "Divisional", "Notes")
				for _, p := range models.AllPlanets {
					pl, ok := dc.Placements[p]
					if !ok {
						continue
					}
					notes := pl.Interpretation
					if pl.Lord != "" {
						notes = fmt.Sprintf("%s hora", pl.Lord)
					}
					table.AddRow(
						string(p),
						pl.Sign.String(),
						pl.DivisionalSign.String(),
						TruncateString(notes, 48),
					)
				}
				table.Render()
			}

			al := c.Varga.Alignment
			output.Println()
			output.Bold("D1/D9 Alignment: %.0f/%.0f (%.1f%%)", al.Score, al.MaxScore, al.Percentage)
			output.Printf("  Matching: %s\n", FormatPlanets(al.Matches))
			output.Printf("  %s\n", al.Interpretation)
			return nil
		},
	}
	addBirthFlags(cmd)
	return cmd
}

func newAspectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aspects",
		Short: "Show Vedic aspects (Drishti)",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			c, err := resolveChart(cmd, app, chart.Options{})
			if err != nil {
				output.Error("Chart derivation failed: %v", err)
				return err
			}
			if c.Aspects == nil {
				output.Error("Aspect analysis unavailable: %s", c.SectionErrors["aspects"])
				return fmt.Errorf("aspects section failed")
			}
			if output.IsJSON() {
				return output.JSON(c.Aspects)
			}

			res := c.Aspects
			output.Bold("Aspects: %s", c.Birth.ID())
			output.Println()

			table := NewTable(output, "Planet", "House", "Standard", "Special")
			for _, p := range models.AllPlanets {
				pa, ok := res.ByPlanet[p]
				if !ok {
					continue
				}
				special := "-"
				if len(pa.Special) > 0 {
					special = fmt.Sprintf("%v", pa.Special)
				}
				table.AddRow(
					string(p),
					fmt.Sprintf("%d", pa.House),
					fmt.Sprintf("%d", pa.Standard),
					special,
				)
			}
			table.Render()

			if len(res.Relationships) > 0 {
				output.Println()
				output.Bold("Relationships")
				for _, rel := range res.Relationships {
					output.Printf("  %s %s %s (houses %d/%d)\n",
						rel.Planet1, rel.Type, rel.Planet2, rel.House1, rel.House2)
				}
			}

			if len(res.Strongest) > 0 {
				output.Println()
				output.Bold("Strongest Aspecting Planets")
				for i, sa := range res.Strongest {
					if i >= 3 {
						break
					}
					tag := ""
					if sa.HasSpecial {
						tag = output.Cyan(" (special)")
					}
					output.Printf("  %d. %s aspects houses %v%s\n", i+1, sa.Planet, sa.AspectedList, tag)
				}
			}
			return nil
		},
	}
	addBirthFlags(cmd)
	return cmd
}

func newHousesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "houses",
		Short: "Show house analysis and lords",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			c, err := resolveChart(cmd, app, chart.Options{})
			if err != nil {
				output.Error("Chart derivation failed: %v", err)
				return err
			}
			if c.HouseAnalysis == nil {
				output.Error("House analysis unavailable: %s", c.SectionErrors["houses"])
				return fmt.Errorf("houses section failed")
			}
			if output.IsJSON() {
				return output.JSON(c.HouseAnalysis)
			}

			res := c.HouseAnalysis
			output.Bold("House Analysis: %s", c.Birth.ID())
			output.Println()

			table := NewTable(output, "House", "Name", "Sign", "Lord", "Lord Strength", "Occupants", "Quality")
			for _, h := range res.Houses {
				table.AddRow(
					fmt.Sprintf("%d", h.Number),
					h.Name,
					h.Sign.String(),
					string(h.Lord),
					string(h.LordStrength),
					FormatPlanets(h.Occupants),
					string(h.Quality),
				)
			}
			table.Render()

			output.Println()
			output.Printf("  %s\n", res.Summary)
			output.Printf("  %s\n", res.Assessment)

			if c.Yogas != nil {
				output.Println()
				output.Bold("House Lord Strengths")
				lordTable := NewTable(output, "House", "Lord", "Strength", "Status")
				housesOrder := make([]int, 0, len(c.Yogas.HouseLords))
				for h := range c.Yogas.HouseLords {
					housesOrder = append(housesOrder, h)
				}
				sort.Ints(housesOrder)
				for _, h := range housesOrder {
					ls := c.Yogas.HouseLords[h]
					lordTable.AddRow(
						fmt.Sprintf("%d", ls.House),
						string(ls.Lord),
						FormatPercent(ls.Percentage),
						string(ls.Status),
					)
				}
				lordTable.Render()
			}
			return nil
		},
	}
	addBirthFlags(cmd)
	return cmd
}
