package transfer

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// IDLength is the byte length of a transfer identifier.
const IDLength = 32

// ID is the canonical identifier of a transfer as computed by the federation contract.
type ID [IDLength]byte

// Hex returns the 0x-prefixed lowercase hex form.
func (id ID) Hex() string {
	return hexutil.Encode(id[:])
}

func (id ID) String() string {
	return id.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseID decodes a 0x-prefixed 32 byte hex string.
func ParseID(s string) (ID, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return ID{}, &AmbiguousInputError{Input: s, Reason: err.Error()}
	}
	if len(b) != IDLength {
		return ID{}, &AmbiguousInputError{Input: s, Reason: fmt.Sprintf("expected %d bytes, got %d", IDLength, len(b))}
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// Variant selects the hashing scheme used to derive an ID.
type Variant int

const (
	// VariantLegacy hashes the deposit fields without user data.
	VariantLegacy Variant = iota
	// VariantCurrent appends user data to the legacy preimage.
	VariantCurrent
)

func (v Variant) String() string {
	switch v {
	case VariantLegacy:
		return "legacy"
	case VariantCurrent:
		return "current"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}
