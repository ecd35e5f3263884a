package main

import (
	"github.com/chainsafe/bridge-monitor/pkg/app"
	"github.com/chainsafe/bridge-monitor/pkg/app/monitor"
	"github.com/spf13/cobra"
)

func newMonitorCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Reconcile the configured bridges periodically and serve the results over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			var runner app.Runner = monitor.NewServer(cfg)
			return runner.Run()
		},
	}
}
