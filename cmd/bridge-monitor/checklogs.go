package main

import (
	"errors"
	"fmt"

	"github.com/chainsafe/bridge-monitor/pkg/ethereum"
	"github.com/chainsafe/bridge-monitor/pkg/reconciler"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errInconsistentLogs = errors.New("log inconsistencies found")

func newCheckLogsCmd(root *rootOptions) *cobra.Command {
	var (
		fromBlock uint64
		toBlock   uint64
		batchSize uint64
	)

	cmd := &cobra.Command{
		Use:   "check-logs <chain>",
		Short: "Compare eth_getLogs output with transaction receipts over a block range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chainName := args[0]
			if toBlock < fromBlock {
				return &ethereum.RangeError{From: fromBlock, To: toBlock}
			}

			cfg, logger, err := root.setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if !cmd.Flags().Changed("batch-size") {
				batchSize = cfg.Fetch.BatchSize
			}

			chains := reconciler.NewChains(cfg, logger)
			defer chains.Close()

			chain, err := chains.Get(cmd.Context(), chainName)
			if err != nil {
				return err
			}
			fetcher, err := ethereum.NewLogFetcher(chainName, chain.Client, batchSize, logger)
			if err != nil {
				return err
			}
			checker := ethereum.NewLogChecker(fetcher, chain.Client, logger.With(zap.String("chain", chainName)))

			result, err := checker.Check(cmd.Context(), fromBlock, toBlock)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, inc := range result.Inconsistencies {
				fmt.Fprintln(out, inc.String())
			}
			fmt.Fprintf(out, "%s blocks %d-%d: %d logs in %d transactions, %d inconsistencies\n",
				chainName, result.From, result.To, result.Logs, result.Transactions, len(result.Inconsistencies))

			if len(result.Inconsistencies) > 0 {
				return fmt.Errorf("%w: %d", errInconsistentLogs, len(result.Inconsistencies))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Uint64Var(&fromBlock, "from-block", 0, "First block to check")
	f.Uint64Var(&toBlock, "to-block", 0, "Last block to check")
	f.Uint64Var(&batchSize, "batch-size", 0, "Blocks per eth_getLogs call (default: fetch.batch_size)")
	_ = cmd.MarkFlagRequired("from-block")
	_ = cmd.MarkFlagRequired("to-block")
	return cmd
}
