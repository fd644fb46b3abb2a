// Command intinfer evaluates the fixed-coefficient integer models.
//
//	intinfer linear                       # inputs 25,35
//	intinfer mlp --inputs 25,15,10,5,3
package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c0np4nn4/o1js-example/pkg/cli"
	"github.com/c0np4nn4/o1js-example/pkg/fixed"
)

type predictor interface {
	Predict(x []int64) (int64, error)
}

func newRootCmd() *cobra.Command {
	var flags cli.Flags
	cmd := &cobra.Command{
		Use:   "intinfer",
		Short: "Run the integer linear and MLP models",
	}
	flags.Register(cmd)
	cmd.AddCommand(
		newModelCmd(&flags, "linear", "Two-input linear model: (5*a + 5*b) / 10", fixed.DefaultLinear(), "25,35"),
		newModelCmd(&flags, "mlp", "Five-input, three-layer ReLU network", fixed.DefaultMLP(), "25,15,10,5,3"),
	)
	return cmd
}

func newModelCmd(flags *cli.Flags, name, short string, m predictor, defaultInputs string) *cobra.Command {
	var inputs string
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := flags.Bootstrap("intinfer")
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), m, inputs, log.WithField("model", name))
		},
	}
	cmd.Flags().StringVar(&inputs, "inputs", defaultInputs, "comma-separated integer inputs")
	return cmd
}

func parseInputs(s string) ([]int64, error) {
	fields := strings.Split(s, ",")
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func run(w io.Writer, m predictor, inputs string, log *logrus.Entry) error {
	x, err := parseInputs(inputs)
	if err != nil {
		return err
	}
	v, err := m.Predict(x)
	if err != nil {
		return err
	}
	log.WithField("inputs", x).Debug("prediction complete")
	fmt.Fprintf(w, "value: %d\n", v)
	return nil
}

func main() {
	cli.Execute(newRootCmd())
}
