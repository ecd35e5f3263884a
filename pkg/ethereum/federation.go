package ethereum

import (
	"context"
	"fmt"

	"github.com/chainsafe/bridge-monitor/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Federation id functions per variant.
const (
	methodTransactionID          = "getTransactionId"
	methodTransactionIDWithUData = "getTransactionIdU"
)

// FederationReader queries a federation contract: transaction ids, votes and
// the processed flag.
type FederationReader struct {
	caller *contracts.FederationCaller
	raw    *contracts.FederationCallerRaw
}

// NewFederationReader binds the federation at address. Pass a *Client as
// caller so that every eth_call is retried.
func NewFederationReader(address common.Address, caller bind.ContractCaller) (*FederationReader, error) {
	bound, err := contracts.NewFederationCaller(address, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to bind federation contract: %w", err)
	}
	return &FederationReader{
		caller: bound,
		raw:    &contracts.FederationCallerRaw{Contract: bound},
	}, nil
}

// CanonicalID evaluates the federation's id function for variant.
func (f *FederationReader) CanonicalID(ctx context.Context, variant transfer.Variant, args []any) (transfer.ID, error) {
	method := methodTransactionID
	if variant == transfer.VariantCurrent {
		method = methodTransactionIDWithUData
	}

	var out []interface{}
	if err := f.raw.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return transfer.ID{}, fmt.Errorf("failed to call %s: %w", method, err)
	}
	if len(out) != 1 {
		return transfer.ID{}, fmt.Errorf("unexpected %s output length %d", method, len(out))
	}

	return transfer.ID(*abi.ConvertType(out[0], new([32]byte)).(*[32]byte)), nil
}

// Votes returns how many federators voted for id.
func (f *FederationReader) Votes(ctx context.Context, id transfer.ID) (uint64, error) {
	count, err := f.caller.GetTransactionCount(&bind.CallOpts{Context: ctx}, id)
	if err != nil {
		return 0, fmt.Errorf("failed to get vote count of %s: %w", id, err)
	}
	if !count.IsUint64() {
		return 0, fmt.Errorf("vote count of %s overflows uint64: %s", id, count)
	}
	return count.Uint64(), nil
}

// WasProcessed reports whether id was executed on the federation's chain.
func (f *FederationReader) WasProcessed(ctx context.Context, id transfer.ID) (bool, error) {
	processed, err := f.caller.TransactionWasProcessed(&bind.CallOpts{Context: ctx}, id)
	if err != nil {
		return false, fmt.Errorf("failed to get processed flag of %s: %w", id, err)
	}
	return processed, nil
}
