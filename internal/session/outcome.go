package session

// OutcomeKind classifies the effect of dispatching one key event.
type OutcomeKind int

const (
	// Continue means nothing changed.
	Continue OutcomeKind = iota
	// Moved means the selection changed.
	Moved
	// Navigated means the current page changed.
	Navigated
	// Exit means the session is over.
	Exit
	// ActionFailed means an entry action returned an error or panicked.
	ActionFailed
	// NavigationFailed means the target page does not exist.
	NavigationFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case Moved:
		return "moved"
	case Navigated:
		return "navigated"
	case Exit:
		return "exit"
	case ActionFailed:
		return "action-failed"
	case NavigationFailed:
		return "navigation-failed"
	default:
		return "continue"
	}
}

// Outcome is the result of Dispatch. Err is set for the failure kinds.
type Outcome struct {
	Kind OutcomeKind
	Err  error
}

// Phase is the session lifecycle state.
type Phase int

const (
	AwaitingStart Phase = iota
	Running
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "awaiting-start"
	}
}
