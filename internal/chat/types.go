package chat

// TurnState tracks one request/response turn through the relay.
// A turn is Committed only after the full assistant reply has been appended
// and the window trimmed; every failure path ends in Aborted.
type TurnState string

const (
	TurnPending   TurnState = "pending"
	TurnStreaming TurnState = "streaming"
	TurnCommitted TurnState = "committed"
	TurnAborted   TurnState = "aborted"
)

// FragmentSink receives each incremental reply fragment as it arrives from
// the completion service. Returning an error aborts the turn: no assistant
// message is committed and no further fragments are delivered.
type FragmentSink func(delta string) error

// --- UseCase Inputs ---

type StreamInput struct {
	SessionID string
	Message   string
}

// SetMemoryInput updates the memory window capacity. With an empty SessionID
// the default capacity shared by all sessions changes; otherwise only the
// named session is affected.
type SetMemoryInput struct {
	SessionID string
	Turns     int
}

type SaveInput struct {
	SessionID string
	Filename  string // blank means synthesize from timestamp
}

type LoadInput struct {
	SessionID string
	Filename  string
}

// --- UseCase Outputs ---

type StreamOutput struct {
	Reply string
	State TurnState
}

type SaveOutput struct {
	Filename string
}
