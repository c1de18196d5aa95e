// Package config handles dmdkit configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExportConfig holds conversion and batch-export settings.
type ExportConfig struct {
	Mode        string `yaml:"mode"`         // single, per-object or combined
	FlipY       bool   `yaml:"flip_y"`       // negate Y during conversion
	FlipZ       bool   `yaml:"flip_z"`       // negate Z during conversion
	FlipWinding bool   `yaml:"flip_winding"` // reverse face winding during conversion
	Workers     int    `yaml:"workers"`      // extraction workers, 0 = one per CPU
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Mode:    "single",
			Workers: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
