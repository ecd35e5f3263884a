package transfer

// Status classifies a reconciled transfer.
type Status string

const (
	StatusPending             Status = "pending"
	StatusVoted               Status = "voted"
	StatusExecuted            Status = "executed"
	StatusErrored             Status = "errored"
	StatusProcessedOutOfRange Status = "processed_out_of_range"
)

// Statuses lists every status in report order.
var Statuses = []Status{
	StatusPending,
	StatusVoted,
	StatusExecuted,
	StatusErrored,
	StatusProcessedOutOfRange,
}

// Record joins one deposit with its completion, if any, and the live federation state.
// A Record is built once per reconciliation pass and never mutated afterwards.
type Record struct {
	FromChain string
	ToChain   string

	ID       ID
	LegacyID *ID

	Processed bool
	Votes     uint64

	Deposit    DepositEvent
	Completion *CompletionEvent

	HasError  bool
	ErrorData []byte

	Status Status
}

// Classify derives the status from the joined fields.
func Classify(processed bool, votes uint64, completion *CompletionEvent, hasError bool) Status {
	switch {
	case completion != nil && hasError:
		return StatusErrored
	case completion != nil:
		return StatusExecuted
	case processed:
		return StatusProcessedOutOfRange
	case votes > 0:
		return StatusVoted
	default:
		return StatusPending
	}
}
