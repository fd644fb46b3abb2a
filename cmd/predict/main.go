// Command predict reloads the records written by gensample, fits a
// least-squares line and prints its prediction for a single input.
package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c0np4nn4/o1js-example/pkg/cli"
	"github.com/c0np4nn4/o1js-example/pkg/config"
	"github.com/c0np4nn4/o1js-example/pkg/data"
	"github.com/c0np4nn4/o1js-example/pkg/model"
	"github.com/c0np4nn4/o1js-example/pkg/viz"
)

func newRootCmd() *cobra.Command {
	var (
		flags    cli.Flags
		input    string
		x        float64
		plotPath string
	)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Fit a linear model on a JSON dataset and predict one value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := flags.Bootstrap("predict")
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("input") {
				cfg.Predict.Input = input
			}
			if cmd.Flags().Changed("x") {
				cfg.Predict.X = x
			}
			return run(cmd.OutOrStdout(), cfg.Predict, plotPath, log)
		},
	}
	flags.Register(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", "data.json", "JSON file produced by gensample")
	cmd.Flags().Float64Var(&x, "x", 70, "feature value to predict for")
	cmd.Flags().StringVar(&plotPath, "plot", "", "also save the records and fitted line to this image file")
	return cmd
}

// fit loads path and returns a model trained on all of its records.
func fit(path string) (*model.LinearRegression, []data.Record, error) {
	records, err := data.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	X, y := data.Columns(records)
	m := model.NewLinearRegression()
	if err := m.Fit(X, y); err != nil {
		return nil, nil, fmt.Errorf("fit %s: %w", path, err)
	}
	return m, records, nil
}

func run(w io.Writer, cfg config.PredictConfig, plotPath string, log *logrus.Entry) error {
	m, records, err := fit(cfg.Input)
	if err != nil {
		return err
	}
	pred, err := m.PredictOne(cfg.X)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Input: %v, Predicted Target: %v\n", cfg.X, pred)

	X, y := data.Columns(records)
	yhat, err := m.Predict(X)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"file":          cfg.Input,
		"records":       len(records),
		"coef":          m.Coef[0],
		"intercept":     m.Intercept,
		"r2":            model.R2(y, yhat),
		"mean_residual": model.MeanResidual(y, yhat),
	}).Debug("fit complete")

	if plotPath != "" {
		line := &viz.Line{Slope: m.Coef[0], Intercept: m.Intercept}
		if err := viz.Scatter(data.Features(records), y, line, "Predicted Target", plotPath); err != nil {
			return err
		}
		log.WithField("file", plotPath).Info("plot saved")
	}
	return nil
}

func main() {
	cli.Execute(newRootCmd())
}
