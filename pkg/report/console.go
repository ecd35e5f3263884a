package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

// FormatAmount scales amount by decimals and rounds to precision places.
func FormatAmount(d transfer.DepositEvent, precision int32) string {
	if d.Amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(d.Amount, -int32(d.Decimals)).StringFixed(precision)
}

// StatusCounts tallies records per status.
func StatusCounts(records []transfer.Record) map[transfer.Status]int {
	counts := make(map[transfer.Status]int, len(transfer.Statuses))
	for _, r := range records {
		counts[r.Status]++
	}
	return counts
}

// PrintSummary writes a per-status summary of one direction followed by the
// unprocessed transfers in detail.
func PrintSummary(w io.Writer, fromChain, toChain string, records []transfer.Record, precision int32) {
	fmt.Fprintf(w, "%s -> %s: %d transfers\n", fromChain, toChain, len(records))

	counts := StatusCounts(records)
	for _, status := range transfer.Statuses {
		if counts[status] > 0 {
			fmt.Fprintf(w, "  %-24s %d\n", status, counts[status])
		}
	}

	unprocessed := FilterUnprocessed(records)
	if len(unprocessed) == 0 {
		fmt.Fprintln(w, "  no unprocessed transfers")
		return
	}

	fmt.Fprintf(w, "Unprocessed transfers from %s to %s:\n", fromChain, toChain)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"block", "tx hash", "log", "token", "amount", "receiver", "transaction id", "votes", "status"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	for _, r := range unprocessed {
		table.Append([]string{
			strconv.FormatUint(r.Deposit.BlockNumber, 10),
			r.Deposit.TxHash.Hex(),
			strconv.FormatUint(uint64(r.Deposit.LogIndex), 10),
			r.Deposit.Symbol,
			FormatAmount(r.Deposit, precision),
			hexAddress(r.Deposit.Receiver.Bytes()),
			r.ID.Hex(),
			strconv.FormatUint(r.Votes, 10),
			string(r.Status),
		})
	}
	table.Render()
}
