package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/c0np4nn4/o1js-example/pkg/config"
	"github.com/c0np4nn4/o1js-example/pkg/data"
	"github.com/c0np4nn4/o1js-example/pkg/model"
)

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func writeRecords(t *testing.T, records []data.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := data.WriteFile(path, records); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPredictsFromFile(t *testing.T) {
	cfg := config.Default().Predict
	cfg.Input = writeRecords(t, []data.Record{{Feature: 1, Target: 7}, {Feature: 2, Target: 14}})

	var out bytes.Buffer
	if err := run(&out, cfg, "", quietLog()); err != nil {
		t.Fatalf("run: %v", err)
	}

	const prefix = "Input: 70, Predicted Target: "
	line := strings.TrimSpace(out.String())
	if !strings.HasPrefix(line, prefix) {
		t.Fatalf("output = %q, want prefix %q", line, prefix)
	}
	got, err := strconv.ParseFloat(strings.TrimPrefix(line, prefix), 64)
	if err != nil {
		t.Fatal(err)
	}
	if got < 489.999 || got > 490.001 {
		t.Errorf("prediction = %v, want ~490", got)
	}
}

func TestRunFailures(t *testing.T) {
	malformed := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(malformed, []byte(`[{"Feature": "x", "Target": 1}]`), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "Missing", input: filepath.Join(t.TempDir(), "absent.json"), wantErr: os.ErrNotExist},
		{name: "Malformed", input: malformed, wantErr: data.ErrInvalidRecord},
		{name: "Empty", input: writeRecords(t, nil), wantErr: model.ErrNoSamples},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default().Predict
			cfg.Input = tc.input
			var out bytes.Buffer
			err := run(&out, cfg, "", quietLog())
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if out.Len() != 0 {
				t.Errorf("printed %q on failure", out.String())
			}
		})
	}
}

func TestFitResidualsCentered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	records, err := data.NewRegressionGenerator(data.WithRandomState(1)).Records()
	if err != nil {
		t.Fatal(err)
	}
	if err := data.WriteFile(path, records); err != nil {
		t.Fatal(err)
	}

	m, loaded, err := fit(path)
	if err != nil {
		t.Fatal(err)
	}
	X, y := data.Columns(loaded)
	pred, err := m.Predict(X)
	if err != nil {
		t.Fatal(err)
	}
	if r := model.MeanResidual(y, pred); r > 1e-8 || r < -1e-8 {
		t.Errorf("mean residual = %v, want ~0", r)
	}
}
