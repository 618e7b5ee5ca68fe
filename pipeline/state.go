package pipeline

// State tracks one run through its lifecycle. Transitions only move
// forward; a failed run never reaches StatePersisted.
type State int

const (
	StateIdle State = iota
	StateDrafting
	StateVerifying
	StatePersisted
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrafting:
		return "drafting"
	case StateVerifying:
		return "verifying"
	case StatePersisted:
		return "persisted"
	case StateRendered:
		return "rendered"
	default:
		return "unknown"
	}
}
