// Package cli provides the command-line interface for the chart engine.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"kundali-engine/internal/config"
	"kundali-engine/internal/ephemeris"
	"kundali-engine/internal/logging"
	"kundali-engine/internal/store"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2024-01-01"
)

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Store    store.ChartStore
	Provider ephemeris.Provider
	Houses   ephemeris.AscendantProvider
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// The mean-element provider is the built-in fallback; a snapshot
	// provider only makes sense when injected programmatically, so the
	// CLI always resolves positions through mean elements.
	mean := ephemeris.NewMeanProvider(cfg.Ephemeris.Ayanamsa)
	app.Provider = mean
	app.Houses = mean
	logger.Debug().Str("ayanamsa", cfg.Ephemeris.Ayanamsa).Msg("mean-element ephemeris initialized")

	chartStore, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, saved charts unavailable")
	} else {
		app.Store = chartStore
		logger.Debug().Str("path", cfg.Storage.Path).Msg("SQLite chart store initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "kundali",
		Short: "Kundali Engine - Vedic chart derivation CLI",
		Long: `Kundali Engine derives Vedic birth charts from birth details.

It computes planetary positions, nakshatras, Vimshottari dasha timelines,
Shad Bala strength profiles, divisional charts, aspects and transits, and
saves derived charts for later inspection.

Use 'kundali help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/kundali)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newChartCmd(app))
	rootCmd.AddCommand(newDashaCmd(app))
	rootCmd.AddCommand(newStrengthCmd(app))
	rootCmd.AddCommand(newVargaCmd(app))
	rootCmd.AddCommand(newAspectsCmd(app))
	rootCmd.AddCommand(newHousesCmd(app))
	rootCmd.AddCommand(newTransitCmd(app))
	rootCmd.AddCommand(newSavedCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("Kundali Engine v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Ephemeris Configuration")
	output.Printf("  Provider:        %s\n", cfg.Ephemeris.Provider)
	output.Printf("  Ayanamsa:        %s\n", cfg.Ephemeris.Ayanamsa)
	output.Printf("  Workers:         %d\n", cfg.Ephemeris.Workers)
	output.Printf("  Default Lat/Lon: %.4f, %.4f\n", cfg.Ephemeris.DefaultLatitude, cfg.Ephemeris.DefaultLongitude)
	output.Println()

	output.Bold("Transit Configuration")
	output.Printf("  Horizon:         %d days\n", cfg.Transit.HorizonDays)
	output.Printf("  Scan Step:       %d days\n", cfg.Transit.StepDays)
	output.Println()

	output.Bold("Storage")
	output.Printf("  Chart DB:        %s\n", cfg.Storage.Path)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:           %s\n", cfg.Logging.Level)
	output.Printf("  Console:         %v\n", cfg.Logging.Console)
	output.Printf("  File:            %v\n", cfg.Logging.File)
}
