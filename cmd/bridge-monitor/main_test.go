package main

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/chainsafe/bridge-monitor/pkg/config"
	"github.com/chainsafe/bridge-monitor/pkg/ethereum"
	"github.com/chainsafe/bridge-monitor/pkg/reconciler"
	"github.com/chainsafe/bridge-monitor/pkg/report"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
chains:
  rsk_testnet:
    rpc_url: http://127.0.0.1:1/rsk
  bsc_testnet:
    rpc_url: http://127.0.0.1:1/bsc
bridges:
  rsk_bsc_testnet:
    rsk:
      chain: rsk_testnet
      bridge_address: "0x2b2bcad081fa773dc655361d1bb30577caa556f8"
      federation_address: "0x92f791b72842f479888aefba975eff2ed74700b7"
    other:
      chain: bsc_testnet
      bridge_address: "0x862e8aff917319594cc7faaae5350d21196c086f"
      federation_address: "0x2b456e230225c4670fbf10b9da506c019a24cac7"
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", path}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTxStatus_RejectsMalformedHash(t *testing.T) {
	_, err := execute(t, "tx-status", "rsk_bsc_testnet", "rsk", "0x1234")
	var inputErr *transfer.AmbiguousInputError
	require.True(t, errors.As(err, &inputErr), "got %v", err)
	assert.Equal(t, "0x1234", inputErr.Input)
}

func TestTxStatus_UnknownSide(t *testing.T) {
	_, err := execute(t, "tx-status", "rsk_bsc_testnet", "tron",
		"0x00000000000000000000000000000000000000000000000000000000000000ab")
	assert.ErrorIs(t, err, config.ErrUnknownSide)
}

func TestTransfers_UnknownBridge(t *testing.T) {
	_, err := execute(t, "transfers", "rsk_eth_mainnet")
	assert.ErrorIs(t, err, config.ErrUnknownBridge)
}

func TestTransfers_InvalidFormat(t *testing.T) {
	_, err := execute(t, "transfers", "rsk_bsc_testnet", "--format", "xlsx")
	assert.ErrorContains(t, err, "unsupported report format")
}

func TestCheckLogs_InvalidRange(t *testing.T) {
	_, err := execute(t, "check-logs", "rsk_testnet", "--from-block", "10", "--to-block", "5")
	var rangeErr *ethereum.RangeError
	require.True(t, errors.As(err, &rangeErr), "got %v", err)
	assert.Equal(t, uint64(10), rangeErr.From)
}

func TestCheckLogs_RequiresRange(t *testing.T) {
	_, err := execute(t, "check-logs", "rsk_testnet")
	assert.ErrorContains(t, err, "required flag")
}

func TestTransfersOverrides(t *testing.T) {
	cmd := &cobra.Command{Use: "transfers"}
	opts := &transfersOptions{}
	opts.bindFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags([]string{"--rsk-start-block", "0", "--to-block-other", "900"}))

	ov := opts.overrides(cmd)
	require.NotNil(t, ov.RSKStartBlock)
	assert.Equal(t, uint64(0), *ov.RSKStartBlock)
	require.NotNil(t, ov.OtherEndBlock)
	assert.Equal(t, uint64(900), *ov.OtherEndBlock)
	assert.Nil(t, ov.OtherStartBlock)
	assert.Nil(t, ov.RSKEndBlock)
}

func TestTransfersOverrides_ExplicitZeroEndBlock(t *testing.T) {
	cmd := &cobra.Command{Use: "transfers"}
	opts := &transfersOptions{}
	opts.bindFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags([]string{"--to-block-rsk", "0"}))

	ov := opts.overrides(cmd)
	require.NotNil(t, ov.RSKEndBlock)
	assert.Equal(t, uint64(0), *ov.RSKEndBlock)
	assert.Nil(t, ov.OtherEndBlock)
}

func TestTransfersOutputFormat(t *testing.T) {
	cfg := &config.Config{Report: config.ReportConfig{Format: "json"}}

	opts := &transfersOptions{output: "out.yaml"}
	f, err := opts.outputFormat(cfg)
	require.NoError(t, err)
	assert.Equal(t, report.FormatYAML, f)

	opts = &transfersOptions{output: "-"}
	f, err = opts.outputFormat(cfg)
	require.NoError(t, err)
	assert.Equal(t, report.FormatJSON, f)

	opts = &transfersOptions{output: "out.yaml", format: "csv"}
	f, err = opts.outputFormat(cfg)
	require.NoError(t, err)
	assert.Equal(t, report.FormatCSV, f)
}

func TestPrintTxStatus(t *testing.T) {
	var buf bytes.Buffer
	printTxStatus(&buf, "0xab", nil, 2)
	assert.Contains(t, buf.String(), "No Cross events found")

	buf.Reset()
	printTxStatus(&buf, "0xab", []reconciler.TxStatus{{
		FromChain: "rsk",
		ToChain:   "bsc",
		Deposit: transfer.DepositEvent{
			Token:    common.HexToAddress("0x01"),
			Amount:   big.NewInt(2_500_000),
			Decimals: 6,
			Symbol:   "USDT",
		},
		Current: reconciler.IDStatus{Variant: transfer.VariantCurrent, ID: transfer.ID{1}, Votes: 3},
		Legacy:  reconciler.IDStatus{Variant: transfer.VariantLegacy, ID: transfer.ID{2}, Processed: true},
	}}, 2)
	out := buf.String()
	assert.Contains(t, out, "Deposit 1 of 0xab (rsk -> bsc)")
	assert.Contains(t, out, "2.50 USDT")
	assert.Contains(t, out, "votes=3 processed=false")
	assert.Contains(t, out, "processed=true")
}
