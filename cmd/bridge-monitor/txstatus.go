package main

import (
	"fmt"
	"io"

	"github.com/chainsafe/bridge-monitor/pkg/reconciler"
	"github.com/chainsafe/bridge-monitor/pkg/report"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTxStatusCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tx-status <bridge> <rsk|other> <tx-hash>",
		Short: "Show votes and processed flags of the deposits in a transaction",
		Long: `tx-status decodes the Cross events of a deposit transaction and reports,
for both the current and the legacy transaction id, how many federators
voted on it and whether the destination federation processed it.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bridgeName, sideName := args[0], args[1]
			txHash, err := transfer.ParseTxHash(args[2])
			if err != nil {
				return err
			}

			cfg, logger, err := root.setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			bridgeCfg, err := cfg.Bridge(bridgeName)
			if err != nil {
				return err
			}
			depositSide, err := bridgeCfg.Side(sideName)
			if err != nil {
				return err
			}
			completionSide, err := bridgeCfg.Counterpart(sideName)
			if err != nil {
				return err
			}
			logger.Debug("Inspecting deposit transaction",
				zap.String("tx_hash", txHash.Hex()),
				zap.String("deposit_chain", depositSide.Chain),
				zap.String("completion_chain", completionSide.Chain))

			chains := reconciler.NewChains(cfg, logger)
			defer chains.Close()

			bridge, err := reconciler.BuildBridge(cmd.Context(), cfg, chains, bridgeName, reconciler.Overrides{}, logger.With(zap.String("bridge", bridgeName)))
			if err != nil {
				return err
			}
			statuses, err := bridge.InspectTx(cmd.Context(), sideName, txHash)
			if err != nil {
				return err
			}

			printTxStatus(cmd.OutOrStdout(), txHash.Hex(), statuses, cfg.Report.AmountPrecision)
			return nil
		},
	}
}

func printTxStatus(w io.Writer, txHash string, statuses []reconciler.TxStatus, precision int32) {
	if len(statuses) == 0 {
		fmt.Fprintf(w, "No Cross events found in %s\n", txHash)
		return
	}
	for i, st := range statuses {
		d := st.Deposit
		fmt.Fprintf(w, "Deposit %d of %s (%s -> %s)\n", i+1, txHash, st.FromChain, st.ToChain)
		fmt.Fprintf(w, "  block %d, log index %d\n", d.BlockNumber, d.LogIndex)
		fmt.Fprintf(w, "  %s %s (%s) to %s\n",
			report.FormatAmount(d, precision), d.Symbol, hexutil.Encode(d.Token.Bytes()), hexutil.Encode(d.Receiver.Bytes()))
		for _, id := range []reconciler.IDStatus{st.Current, st.Legacy} {
			fmt.Fprintf(w, "  %-8s %s votes=%d processed=%t\n", id.Variant, id.ID.Hex(), id.Votes, id.Processed)
		}
	}
}
