package reconciler

import (
	"context"
	"fmt"

	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/ethereum/go-ethereum/common"
)

// IDStatus is the federation state of one id variant.
type IDStatus struct {
	Variant   transfer.Variant
	ID        transfer.ID
	Votes     uint64
	Processed bool
}

// TxStatus is the federation state of one deposit found in a transaction.
type TxStatus struct {
	FromChain string
	ToChain   string
	Deposit   transfer.DepositEvent
	Current   IDStatus
	Legacy    IDStatus
}

// InspectTx decodes the deposits of txHash on the side called sideName and
// reports votes and processed flags of both id variants on the counterpart.
func (b *Bridge) InspectTx(ctx context.Context, sideName string, txHash common.Hash) ([]TxStatus, error) {
	from, to, err := b.Side(sideName)
	if err != nil {
		return nil, err
	}

	deposits, err := from.Events.DepositsInTx(ctx, from.Bridge, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to read deposits of %s on %s: %w", txHash.Hex(), from.Chain, err)
	}

	identifier := transfer.NewIdentifier(to.Federation)
	statuses := make([]TxStatus, 0, len(deposits))
	for _, deposit := range deposits {
		current, err := idStatus(ctx, identifier, to.Federation, deposit, transfer.VariantCurrent)
		if err != nil {
			return nil, err
		}
		legacy, err := idStatus(ctx, identifier, to.Federation, deposit, transfer.VariantLegacy)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, TxStatus{
			FromChain: from.Chain,
			ToChain:   to.Chain,
			Deposit:   deposit,
			Current:   current,
			Legacy:    legacy,
		})
	}
	return statuses, nil
}

func idStatus(
	ctx context.Context,
	ids IDComputer,
	status StatusReader,
	deposit transfer.DepositEvent,
	variant transfer.Variant,
) (IDStatus, error) {
	id, err := ids.ComputeID(ctx, deposit, variant)
	if err != nil {
		return IDStatus{}, err
	}
	votes, err := status.Votes(ctx, id)
	if err != nil {
		return IDStatus{}, err
	}
	processed, err := status.WasProcessed(ctx, id)
	if err != nil {
		return IDStatus{}, err
	}
	return IDStatus{Variant: variant, ID: id, Votes: votes, Processed: processed}, nil
}
