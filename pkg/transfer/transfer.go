// Package transfer holds the domain model of a cross-chain token transfer:
// the deposit observed on the source chain, the completion executed on the
// destination chain, and the reconciled record joining both.
package transfer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Provenance locates a log on chain.
type Provenance struct {
	BlockNumber uint64
	BlockHash   common.Hash
	TxHash      common.Hash
	LogIndex    uint
}

// DepositEvent is a Cross event emitted by the source bridge.
type DepositEvent struct {
	Token       common.Address
	Receiver    common.Address
	Amount      *big.Int
	Symbol      string
	Decimals    uint8
	Granularity *big.Int
	UserData    []byte
	Provenance
}

// CompletionEvent is an Executed event emitted by the destination federation.
type CompletionEvent struct {
	ID ID
	Provenance
}

// ErrorEvent is an ErrorTokenReceiver event emitted by the destination bridge
// inside a completion transaction.
type ErrorEvent struct {
	TxHash   common.Hash
	LogIndex uint
	Data     []byte
}
