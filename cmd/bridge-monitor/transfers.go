package main

import (
	"context"
	"fmt"
	"io"

	"github.com/chainsafe/bridge-monitor/pkg/config"
	"github.com/chainsafe/bridge-monitor/pkg/pgutil"
	"github.com/chainsafe/bridge-monitor/pkg/reconciler"
	"github.com/chainsafe/bridge-monitor/pkg/report"
	"github.com/chainsafe/bridge-monitor/pkg/reportdb"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type transfersOptions struct {
	output          string
	format          string
	rskStart        uint64
	otherStart      uint64
	rskEnd          uint64
	otherEnd        uint64
	unprocessedOnly bool
	persist         bool
}

func newTransfersCmd(root *rootOptions) *cobra.Command {
	opts := &transfersOptions{}

	cmd := &cobra.Command{
		Use:   "transfers <bridge>",
		Short: "Reconcile both directions of a bridge and report unprocessed transfers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runTransfers(cmd, cfg, logger, args[0], opts)
		},
	}

	opts.bindFlags(cmd.Flags())
	return cmd
}

func (o *transfersOptions) bindFlags(f *pflag.FlagSet) {
	f.StringVarP(&o.output, "output", "o", "", "Write the full transfer table to this file (- for stdout)")
	f.StringVar(&o.format, "format", "", "Output format: csv, json or yaml (default: file extension, then report.format)")
	f.Uint64Var(&o.rskStart, "rsk-start-block", 0, "Override the first scanned block on the RSK side")
	f.Uint64Var(&o.otherStart, "other-start-block", 0, "Override the first scanned block on the other side")
	f.Uint64Var(&o.rskEnd, "to-block-rsk", 0, "Last scanned block on the RSK side (default: confirmed head)")
	f.Uint64Var(&o.otherEnd, "to-block-other", 0, "Last scanned block on the other side (default: confirmed head)")
	f.BoolVar(&o.unprocessedOnly, "unprocessed-only", false, "Only write unprocessed transfers to the output file")
	f.BoolVar(&o.persist, "persist", false, "Store the snapshot in the report database")
}

// overrides maps explicitly set block flags; unset flags keep the configuration.
func (o *transfersOptions) overrides(cmd *cobra.Command) reconciler.Overrides {
	var ov reconciler.Overrides
	set := func(flag string, v *uint64) *uint64 {
		if cmd.Flags().Changed(flag) {
			return v
		}
		return nil
	}
	ov.RSKStartBlock = set("rsk-start-block", &o.rskStart)
	ov.OtherStartBlock = set("other-start-block", &o.otherStart)
	ov.RSKEndBlock = set("to-block-rsk", &o.rskEnd)
	ov.OtherEndBlock = set("to-block-other", &o.otherEnd)
	return ov
}

func (o *transfersOptions) outputFormat(cfg *config.Config) (report.Format, error) {
	if o.format != "" {
		return report.ParseFormat(o.format)
	}
	def, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return "", err
	}
	return report.FormatFromPath(o.output, def), nil
}

func runTransfers(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger, bridgeName string, opts *transfersOptions) error {
	// reject bad flags before any RPC
	format, err := opts.outputFormat(cfg)
	if err != nil {
		return err
	}
	if _, err := cfg.Bridge(bridgeName); err != nil {
		return err
	}

	ctx := cmd.Context()
	if cfg.Reconcile.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Reconcile.Timeout)
		defer cancel()
	}

	chains := reconciler.NewChains(cfg, logger)
	defer chains.Close()

	bridge, err := reconciler.BuildBridge(ctx, cfg, chains, bridgeName, opts.overrides(cmd), logger.With(zap.String("bridge", bridgeName)))
	if err != nil {
		return err
	}
	result, err := bridge.Run(ctx)
	if err != nil {
		return err
	}

	console := cmd.OutOrStdout()
	if opts.output == "-" {
		console = cmd.ErrOrStderr()
	}
	for _, d := range result.Directions {
		report.PrintSummary(console, d.FromChain, d.ToChain, d.Records, cfg.Report.AmountPrecision)
		fmt.Fprintln(console)
	}

	if opts.output != "" {
		records := result.Records()
		if opts.unprocessedOnly {
			records = report.FilterUnprocessed(records)
		}
		if err := writeReport(cmd.OutOrStdout(), opts.output, format, records); err != nil {
			return err
		}
		logger.Info("Report written", zap.String("path", opts.output), zap.String("format", string(format)), zap.Int("transfers", len(records)))
	}

	if opts.persist {
		return persistRun(ctx, cfg, logger, result)
	}
	return nil
}

func writeReport(stdout io.Writer, path string, format report.Format, records []transfer.Record) error {
	if path == "-" {
		return report.Write(stdout, format, records)
	}
	return report.WriteFile(path, format, records)
}

func persistRun(ctx context.Context, cfg *config.Config, logger *zap.Logger, result *reconciler.Result) error {
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	store := reportdb.NewStore(db)
	defer func() { _ = store.Close() }()

	run := &reportdb.Run{
		Bridge:     result.Bridge,
		StartedAt:  result.StartedAt,
		FinishedAt: result.FinishedAt,
		Records:    result.Records(),
	}
	if err := store.SaveRun(ctx, run); err != nil {
		return err
	}
	logger.Info("Snapshot persisted", zap.String("run_id", run.ID.String()), zap.Int("transfers", len(run.Records)))
	return nil
}
