package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWorkers     = flag.Int("workers", 0, "Extraction workers (0 = one per CPU)")
	flagFlipY       = flag.Bool("flip-y", false, "Negate the Y axis during conversion")
	flagFlipZ       = flag.Bool("flip-z", false, "Negate the Z axis during conversion")
	flagFlipWinding = flag.Bool("flip-winding", false, "Reverse face winding during conversion")
)

// ParseFlags parses global command-line flags. Call this early in main(),
// before dispatching subcommands; parsing stops at the first non-flag
// argument, so global flags go before the subcommand name.
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWorkers > 0 {
		cfg.Export.Workers = *flagWorkers
	}
	if *flagFlipY {
		cfg.Export.FlipY = true
	}
	if *flagFlipZ {
		cfg.Export.FlipZ = true
	}
	if *flagFlipWinding {
		cfg.Export.FlipWinding = true
	}
}
