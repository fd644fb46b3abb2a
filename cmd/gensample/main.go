// Command gensample writes a synthetic single-feature regression dataset
// as a JSON array of {"Feature", "Target"} integer records.
//
// Example:
//
//	go run ./cmd/gensample                    # 50 records into data.json
//	go run ./cmd/gensample --plot data.png    # also render a scatter plot
package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c0np4nn4/o1js-example/pkg/cli"
	"github.com/c0np4nn4/o1js-example/pkg/config"
	"github.com/c0np4nn4/o1js-example/pkg/data"
	"github.com/c0np4nn4/o1js-example/pkg/stats"
	"github.com/c0np4nn4/o1js-example/pkg/viz"
)

func newRootCmd() *cobra.Command {
	var (
		flags    cli.Flags
		output   string
		samples  int
		seed     int64
		plotPath string
	)
	cmd := &cobra.Command{
		Use:   "gensample",
		Short: "Generate a synthetic regression dataset and save it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := flags.Bootstrap("gensample")
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Synth.Output = output
			}
			if cmd.Flags().Changed("samples") {
				cfg.Synth.Samples = samples
			}
			if cmd.Flags().Changed("seed") {
				cfg.Synth.Seed = &seed
			}
			return run(cmd.OutOrStdout(), cfg.Synth, plotPath, log)
		},
	}
	flags.Register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "data.json", "file to write the records to")
	cmd.Flags().IntVarP(&samples, "samples", "n", 50, "number of records")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (unset = different data every run)")
	cmd.Flags().StringVar(&plotPath, "plot", "", "also save a scatter plot to this image file")
	return cmd
}

func run(w io.Writer, cfg config.SynthConfig, plotPath string, log *logrus.Entry) error {
	opts := []data.RegressionOption{
		data.WithNSamples(cfg.Samples),
		data.WithNFeatures(cfg.Features),
		data.WithNoise(cfg.Noise),
		data.WithScale(cfg.Scale),
	}
	if cfg.Seed != nil {
		opts = append(opts, data.WithRandomState(*cfg.Seed))
	}

	records, err := data.NewRegressionGenerator(opts...).Records()
	if err != nil {
		return err
	}
	if err := data.WriteFile(cfg.Output, records); err != nil {
		return err
	}

	xs, ys := data.Features(records), data.Targets(records)
	fs, ts := stats.Describe(xs), stats.Describe(ys)
	log.WithFields(logrus.Fields{
		"file":        cfg.Output,
		"records":     len(records),
		"feature_min": fs.Min,
		"feature_max": fs.Max,
		"target_min":  ts.Min,
		"target_max":  ts.Max,
		"correlation": stats.Correlation(xs, ys),
	}).Debug("dataset written")
	fmt.Fprintf(w, "Wrote %d records to %s\n", len(records), cfg.Output)

	if plotPath != "" {
		if err := viz.Scatter(xs, ys, nil, "Generated Data", plotPath); err != nil {
			return err
		}
		log.WithField("file", plotPath).Info("plot saved")
	}
	return nil
}

func main() {
	cli.Execute(newRootCmd())
}
