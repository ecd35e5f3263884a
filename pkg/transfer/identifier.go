package transfer

import (
	"context"
	"fmt"
	"math/big"
)

// Canonicalizer evaluates the federation's id function over an ordered argument tuple.
type Canonicalizer interface {
	CanonicalID(ctx context.Context, variant Variant, args []any) (ID, error)
}

// Identifier assembles the preimage tuple of each variant and delegates hashing.
// It keeps no cache; every call is a live request.
type Identifier struct {
	canonicalizer Canonicalizer
}

// NewIdentifier creates an Identifier backed by c.
func NewIdentifier(c Canonicalizer) *Identifier {
	return &Identifier{canonicalizer: c}
}

// Tuple returns the ordered arguments for variant:
// token, receiver, amount, symbol, blockHash, txHash, logIndex, decimals,
// granularity, and userData for the current variant only.
func Tuple(d DepositEvent, variant Variant) []any {
	args := []any{
		d.Token,
		d.Receiver,
		bigOrZero(d.Amount),
		d.Symbol,
		[32]byte(d.BlockHash),
		[32]byte(d.TxHash),
		uint32(d.LogIndex),
		d.Decimals,
		bigOrZero(d.Granularity),
	}
	if variant == VariantCurrent {
		userData := d.UserData
		if userData == nil {
			userData = []byte{}
		}
		args = append(args, userData)
	}
	return args
}

// ComputeID derives the identifier of d under variant.
func (i *Identifier) ComputeID(ctx context.Context, d DepositEvent, variant Variant) (ID, error) {
	id, err := i.canonicalizer.CanonicalID(ctx, variant, Tuple(d, variant))
	if err != nil {
		return ID{}, fmt.Errorf("failed to compute %s transaction id for %s#%d: %w", variant, d.TxHash.Hex(), d.LogIndex, err)
	}
	return id, nil
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
