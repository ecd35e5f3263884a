package transfer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hashingCanonicalizer struct {
	calls int
	args  map[Variant][]any
}

func (h *hashingCanonicalizer) CanonicalID(_ context.Context, variant Variant, args []any) (ID, error) {
	h.calls++
	if h.args == nil {
		h.args = make(map[Variant][]any)
	}
	h.args[variant] = args
	return ID(crypto.Keccak256Hash([]byte(fmt.Sprintf("%d|%v", variant, args)))), nil
}

func sampleDeposit() DepositEvent {
	return DepositEvent{
		Token:       common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Receiver:    common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Amount:      big.NewInt(1_000_000),
		Symbol:      "DOC",
		Decimals:    18,
		Granularity: big.NewInt(1),
		UserData:    []byte{0xde, 0xad},
		Provenance: Provenance{
			BlockNumber: 42,
			BlockHash:   common.HexToHash("0xaa"),
			TxHash:      common.HexToHash("0xbb"),
			LogIndex:    3,
		},
	}
}

func TestTuple_VariantShapes(t *testing.T) {
	d := sampleDeposit()

	legacy := Tuple(d, VariantLegacy)
	current := Tuple(d, VariantCurrent)

	require.Len(t, legacy, 9)
	require.Len(t, current, 10)
	assert.Equal(t, legacy, current[:9])
	assert.Equal(t, []byte{0xde, 0xad}, current[9])

	assert.Equal(t, d.Token, legacy[0])
	assert.Equal(t, d.Receiver, legacy[1])
	assert.Equal(t, "DOC", legacy[3])
	assert.Equal(t, [32]byte(d.BlockHash), legacy[4])
	assert.Equal(t, [32]byte(d.TxHash), legacy[5])
	assert.Equal(t, uint32(3), legacy[6])
	assert.Equal(t, uint8(18), legacy[7])
}

func TestTuple_NilFieldsAreNormalized(t *testing.T) {
	d := sampleDeposit()
	d.UserData = nil
	d.Granularity = nil

	current := Tuple(d, VariantCurrent)
	assert.Equal(t, []byte{}, current[9])
	assert.Equal(t, 0, current[8].(*big.Int).Sign())
}

func TestIdentifier_Deterministic(t *testing.T) {
	c := &hashingCanonicalizer{}
	identifier := NewIdentifier(c)
	ctx := context.Background()

	first, err := identifier.ComputeID(ctx, sampleDeposit(), VariantCurrent)
	require.NoError(t, err)
	second, err := identifier.ComputeID(ctx, sampleDeposit(), VariantCurrent)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, c.calls, "identifier must not cache")
}

func TestIdentifier_BothVariantsRetained(t *testing.T) {
	c := &hashingCanonicalizer{}
	identifier := NewIdentifier(c)
	ctx := context.Background()

	legacy, err := identifier.ComputeID(ctx, sampleDeposit(), VariantLegacy)
	require.NoError(t, err)
	current, err := identifier.ComputeID(ctx, sampleDeposit(), VariantCurrent)
	require.NoError(t, err)

	assert.NotEqual(t, ID{}, legacy)
	assert.NotEqual(t, ID{}, current)
	assert.Len(t, c.args[VariantLegacy], 9)
	assert.Len(t, c.args[VariantCurrent], 10)
}

type failingCanonicalizer struct{ err error }

func (f failingCanonicalizer) CanonicalID(context.Context, Variant, []any) (ID, error) {
	return ID{}, f.err
}

func TestIdentifier_PropagatesError(t *testing.T) {
	errRPC := errors.New("connection reset")
	_, err := NewIdentifier(failingCanonicalizer{err: errRPC}).ComputeID(context.Background(), sampleDeposit(), VariantLegacy)
	require.ErrorIs(t, err, errRPC)
	assert.Contains(t, err.Error(), "legacy")
}

func TestParseTxHash(t *testing.T) {
	valid := "0x" + "ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12"

	h, err := ParseTxHash("  " + valid + "\n")
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash(valid), h)

	cases := map[string]string{
		"too short": "0x1234",
		"no prefix": "00" + valid[2:],
		"non hex":   "0x" + "zz12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12",
		"too long":  valid + "00",
		"empty":     "",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTxHash(input)
			var inputErr *AmbiguousInputError
			require.ErrorAs(t, err, &inputErr)
		})
	}
}

func TestParseID(t *testing.T) {
	id := ID(crypto.Keccak256Hash([]byte("transfer")))

	parsed, err := ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	text, err := id.MarshalText()
	require.NoError(t, err)
	var decoded ID
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, id, decoded)

	_, err = ParseID("0x1234")
	var inputErr *AmbiguousInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestClassify(t *testing.T) {
	completion := &CompletionEvent{}

	tests := []struct {
		name       string
		processed  bool
		votes      uint64
		completion *CompletionEvent
		hasError   bool
		want       Status
	}{
		{"pending", false, 0, nil, false, StatusPending},
		{"voted", false, 2, nil, false, StatusVoted},
		{"executed", true, 3, completion, false, StatusExecuted},
		{"errored", true, 3, completion, true, StatusErrored},
		{"processed without completion", true, 3, nil, false, StatusProcessedOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.processed, tt.votes, tt.completion, tt.hasError))
		})
	}
}
