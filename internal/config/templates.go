package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Kundali Engine Configuration

[ephemeris]
# Position provider: "mean" (built-in mean elements) or "snapshot"
provider = "mean"
# Sidereal offset model: lahiri, raman, krishnamurti
ayanamsa = "lahiri"
# Parallel derivation workers
workers = 4
# Fallback birth place when none is given
default_latitude = 28.6139
default_longitude = 77.2090

[transit]
# How far ahead to scan for upcoming transits, in days
horizon_days = 365
# Scan step in days
step_days = 30

[storage]
# Chart database location; empty uses ~/.config/kundali/charts.db
path = ""

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04:05"

[logging]
# Log level: debug, info, warn, error
level = "info"
console = true
file = true
`

func createTemplateConfig(configDir, name string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, name+".toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return fmt.Errorf("config file not found, created template at %s", path)
}
