package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables of every tool. Each tool reads only its own
// section plus [log].
type Config struct {
	Log     LogConfig     `toml:"log"`
	Synth   SynthConfig   `toml:"synth"`
	Weights WeightsConfig `toml:"weights"`
	Predict PredictConfig `toml:"predict"`
}

type LogConfig struct {
	Level  string `toml:"level"`  // logrus level name (default "info")
	Format string `toml:"format"` // "text" or "json" (default "text")
}

type SynthConfig struct {
	Samples  int     `toml:"samples"`  // default 50
	Features int     `toml:"features"` // default 1; only the first is stored
	Noise    float64 `toml:"noise"`    // default 0.1
	Scale    float64 `toml:"scale"`    // default 7
	Seed     *int64  `toml:"seed"`     // unset = time based
	Output   string  `toml:"output"`   // default "data.json"
}

type WeightsConfig struct {
	Samples   int     `toml:"samples"`   // default 1000
	Span      float64 `toml:"span"`      // default 2
	Slope     float64 `toml:"slope"`     // default 3
	Intercept float64 `toml:"intercept"` // default 4
	Noise     float64 `toml:"noise"`     // default 1
	Seed      int64   `toml:"seed"`      // default 0
}

type PredictConfig struct {
	Input string  `toml:"input"` // default "data.json"
	X     float64 `toml:"x"`     // default 70
}

// Default returns the built-in values used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Synth: SynthConfig{
			Samples:  50,
			Features: 1,
			Noise:    0.1,
			Scale:    7,
			Output:   "data.json",
		},
		Weights: WeightsConfig{
			Samples:   1000,
			Span:      2,
			Slope:     3,
			Intercept: 4,
			Noise:     1,
		},
		Predict: PredictConfig{Input: "data.json", X: 70},
	}
}

// Load reads path over the defaults. An empty path returns Default().
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Synth.Samples < 0 {
		return fmt.Errorf("synth.samples must not be negative")
	}
	if c.Synth.Features < 1 {
		return fmt.Errorf("synth.features must be at least 1")
	}
	if c.Synth.Noise < 0 || c.Weights.Noise < 0 {
		return fmt.Errorf("noise must not be negative")
	}
	if c.Weights.Samples < 0 {
		return fmt.Errorf("weights.samples must not be negative")
	}
	if c.Synth.Output == "" || c.Predict.Input == "" {
		return fmt.Errorf("data file path must not be empty")
	}
	return nil
}
