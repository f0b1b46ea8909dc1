package main

import (
	"fmt"
	"os"
	"strings"

	"kundali-engine/internal/cli"
	"kundali-engine/internal/config"
	"kundali-engine/internal/logging"
)

// configDirFromArgs scans for --config before cobra parses anything,
// since the root command is built from the loaded configuration. Both
// the separate-argument and the = forms are recognized.
func configDirFromArgs(args []string) string {
	dir := ""
	for i, arg := range args {
		switch {
		case arg == "--config" && i+1 < len(args):
			dir = args[i+1]
		case strings.HasPrefix(arg, "--config="):
			dir = strings.TrimPrefix(arg, "--config=")
		}
	}
	return dir
}

func main() {
	cfg, err := config.Load(configDirFromArgs(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logCfg := logging.DefaultLogConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Console = cfg.Logging.Console
	logCfg.File = cfg.Logging.File
	logger := logging.NewLoggerWithConfig(logCfg)

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
