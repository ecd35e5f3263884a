package transfer

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const txHashLength = 2 + 2*common.HashLength

// AmbiguousInputError reports user supplied input that fails shape validation.
type AmbiguousInputError struct {
	Input  string
	Reason string
}

func (e *AmbiguousInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// ParseTxHash validates a user supplied transaction hash: 0x followed by 64 hex characters.
func ParseTxHash(s string) (common.Hash, error) {
	s = strings.TrimSpace(s)
	if len(s) != txHashLength {
		return common.Hash{}, &AmbiguousInputError{
			Input:  s,
			Reason: fmt.Sprintf("expected %d characters, got %d", txHashLength, len(s)),
		}
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return common.Hash{}, &AmbiguousInputError{Input: s, Reason: "missing 0x prefix"}
	}
	for _, c := range s[2:] {
		if !isHexChar(c) {
			return common.Hash{}, &AmbiguousInputError{Input: s, Reason: fmt.Sprintf("non-hex character %q", c)}
		}
	}
	return common.HexToHash(s), nil
}

func isHexChar(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
