// Package cli holds the start-up steps shared by the command-line tools.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c0np4nn4/o1js-example/pkg/config"
	"github.com/c0np4nn4/o1js-example/pkg/logger"
)

// Flags are the persistent flags every tool accepts.
type Flags struct {
	ConfigPath string
	LogLevel   string
}

// Register adds --config and --log-level to cmd.
func (f *Flags) Register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.ConfigPath, "config", "", "path to a TOML config file")
	cmd.PersistentFlags().StringVar(&f.LogLevel, "log-level", "", "log level (overrides [log].level)")
}

// Bootstrap loads the configuration and initializes logging.
func (f *Flags) Bootstrap(component string) (*config.Config, *logrus.Entry, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	return cfg, logger.New(component), nil
}

// Execute runs cmd and exits with status 1 on error.
func Execute(cmd *cobra.Command) {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Fatal(cmd.Name() + " failed")
	}
}
