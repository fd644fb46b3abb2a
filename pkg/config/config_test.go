package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Synth.Samples != 50 || cfg.Synth.Scale != 7 || cfg.Synth.Noise != 0.1 || cfg.Synth.Seed != nil {
		t.Errorf("Synth = %+v", cfg.Synth)
	}
	if cfg.Weights.Samples != 1000 || cfg.Weights.Seed != 0 || cfg.Weights.Slope != 3 || cfg.Weights.Intercept != 4 {
		t.Errorf("Weights = %+v", cfg.Weights)
	}
	if cfg.Predict.Input != "data.json" || cfg.Predict.X != 70 {
		t.Errorf("Predict = %+v", cfg.Predict)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
format = "json"

[synth]
samples = 10
seed = 42

[predict]
x = 12.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Synth.Samples != 10 {
		t.Errorf("Synth.Samples = %d, want 10", cfg.Synth.Samples)
	}
	if cfg.Synth.Seed == nil || *cfg.Synth.Seed != 42 {
		t.Errorf("Synth.Seed = %v, want 42", cfg.Synth.Seed)
	}
	if cfg.Synth.Noise != 0.1 || cfg.Synth.Output != "data.json" {
		t.Errorf("unset synth keys lost their defaults: %+v", cfg.Synth)
	}
	if cfg.Predict.X != 12.5 || cfg.Predict.Input != "data.json" {
		t.Errorf("Predict = %+v", cfg.Predict)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "UnknownKey", body: "[synth]\nbogus = 1\n", wantMsg: "unknown keys"},
		{name: "BadFormat", body: "[log]\nformat = \"xml\"\n", wantMsg: "log.format"},
		{name: "NegativeSamples", body: "[synth]\nsamples = -1\n", wantMsg: "synth.samples"},
		{name: "NoFeatures", body: "[synth]\nfeatures = 0\n", wantMsg: "synth.features"},
		{name: "Syntax", body: "[synth\n", wantMsg: "config"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("err = %v, want mention of %q", err, tc.wantMsg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
