package main

import (
	"fmt"

	"github.com/chainsafe/bridge-monitor/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "bridge-monitor",
		Short: "Token bridge transfer reconciliation",
		Long: `bridge-monitor matches Cross deposits on one side of a token bridge with the
Executed events of the federation on the other side, and reports every
transfer that has not been processed yet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newTransfersCmd(opts),
		newTxStatusCmd(opts),
		newCheckLogsCmd(opts),
		newMonitorCmd(opts),
	)
	return rootCmd
}

// load reads the configuration and applies --verbose.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger.
func (o *rootOptions) setup() (*config.Config, *zap.Logger, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, logger, nil
}
