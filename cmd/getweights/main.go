// Command getweights fits a least-squares line to points drawn from
// y = 4 + 3x + noise with a fixed seed and prints the learned slope and
// intercept.
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
		seed     int64
		plotPath string
	)
	cmd := &cobra.Command{
		Use:   "getweights",
		Short: "Fit a linear model on generated data and print its weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := flags.Bootstrap("getweights")
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Weights.Seed = seed
			}
			return run(cmd.OutOrStdout(), cfg.Weights, plotPath, log)
		},
	}
	flags.Register(cmd)
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().StringVar(&plotPath, "plot", "", "also save the points and fitted line to this image file")
	return cmd
}

// estimate draws the points described by cfg and fits them.
func estimate(cfg config.WeightsConfig) (*model.LinearRegression, []float64, []float64, error) {
	gen := &data.LinearGenerator{
		NSamples:    cfg.Samples,
		Span:        cfg.Span,
		Slope:       cfg.Slope,
		Intercept:   cfg.Intercept,
		Noise:       cfg.Noise,
		RandomState: cfg.Seed,
	}
	x, y := gen.Generate()

	m := model.NewLinearRegression()
	if err := m.Fit(data.Column(x), y); err != nil {
		return nil, nil, nil, err
	}
	return m, x, y, nil
}

func run(w io.Writer, cfg config.WeightsConfig, plotPath string, log *logrus.Entry) error {
	m, x, y, err := estimate(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Coefficient: %v\n", m.Coef)
	fmt.Fprintf(w, "Intercept: %v\n", m.Intercept)

	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		pred, err := m.Predict(data.Column(x))
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"samples":    len(x),
			"true_slope": cfg.Slope,
			"true_bias":  cfg.Intercept,
			"r2":         model.R2(y, pred),
			"rmse":       model.RMSE(y, pred),
		}).Debug("fit complete")
	}

	if plotPath != "" {
		line := &viz.Line{Slope: m.Coef[0], Intercept: m.Intercept}
		if err := viz.Scatter(x, y, line, "Linear Regression", plotPath); err != nil {
			return err
		}
		log.WithField("file", plotPath).Info("plot saved")
	}
	return nil
}

func main() {
	cli.Execute(newRootCmd())
}
