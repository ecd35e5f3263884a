package reconciler

import (
	"fmt"

	"github.com/chainsafe/bridge-monitor/pkg/transfer"
)

// DuplicatePolicy decides which completion is kept when one transfer id is executed twice.
type DuplicatePolicy string

const (
	LastWins  DuplicatePolicy = "last_wins"
	FirstWins DuplicatePolicy = "first_wins"
	Fail      DuplicatePolicy = "fail"
)

// ParseDuplicatePolicy validates s.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(s); p {
	case LastWins, FirstWins, Fail:
		return p, nil
	case "":
		return LastWins, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q", s)
	}
}

// DuplicateCompletionError reports two completion events for the same transfer id.
type DuplicateCompletionError struct {
	ID     transfer.ID
	First  transfer.Provenance
	Second transfer.Provenance
}

func (e *DuplicateCompletionError) Error() string {
	return fmt.Sprintf("transaction id %s executed twice: %s#%d and %s#%d",
		e.ID.Hex(), e.First.TxHash.Hex(), e.First.LogIndex, e.Second.TxHash.Hex(), e.Second.LogIndex)
}

func indexCompletions(
	completions []transfer.CompletionEvent,
	policy DuplicatePolicy,
	onDuplicate func(*DuplicateCompletionError),
) (map[transfer.ID]transfer.CompletionEvent, error) {
	index := make(map[transfer.ID]transfer.CompletionEvent, len(completions))
	for _, c := range completions {
		prev, exists := index[c.ID]
		if !exists {
			index[c.ID] = c
			continue
		}

		dup := &DuplicateCompletionError{ID: c.ID, First: prev.Provenance, Second: c.Provenance}
		onDuplicate(dup)

		switch policy {
		case Fail:
			return nil, dup
		case FirstWins:
		default:
			index[c.ID] = c
		}
	}
	return index, nil
}
