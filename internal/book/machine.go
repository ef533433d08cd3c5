package book

// State represents the lifecycle state of the book
type State string

// Lifecycle states
const (
	StateClosed   State = "closed"
	StateOpening  State = "opening"
	StateOpened   State = "opened"
	StateFlipping State = "flipping"
	StateClosing  State = "closing"
)

// legalTransitions is the transition table: for each state, the set of
// states that may follow it
var legalTransitions = map[State][]State{
	StateClosed:   {StateOpening},
	StateOpening:  {StateOpened},
	StateOpened:   {StateFlipping, StateClosing},
	StateFlipping: {StateOpened},
	StateClosing:  {StateClosed},
}

// Machine owns the book lifecycle state and enforces legal transitions.
// It is the sole serialization mechanism for the two flip controllers:
// while IsBusy reports true, navigation requests are dropped.
type Machine struct {
	current State
}

// NewMachine creates a state machine starting in the closed state
func NewMachine() *Machine {
	return &Machine{current: StateClosed}
}

// Current returns the current lifecycle state
func (m *Machine) Current() State {
	return m.current
}

// IsOpened reports whether the book is opened and idle
func (m *Machine) IsOpened() bool {
	return m.current == StateOpened
}

// IsClosed reports whether the book is closed
func (m *Machine) IsClosed() bool {
	return m.current == StateClosed
}

// IsBusy reports whether a transition animation is in progress
func (m *Machine) IsBusy() bool {
	switch m.current {
	case StateOpening, StateClosing, StateFlipping:
		return true
	}
	return false
}

// TransitionTo applies the transition table. It returns false and
// leaves the state unchanged if the requested transition is illegal;
// callers must check the result before proceeding.
func (m *Machine) TransitionTo(next State) bool {
	for _, allowed := range legalTransitions[m.current] {
		if allowed == next {
			m.current = next
			return true
		}
	}
	return false
}

// ForceTransitionTo unconditionally overwrites the state, bypassing the
// transition table. Reserved for error recovery so the book can never
// get stuck in a transient state.
func (m *Machine) ForceTransitionTo(next State) {
	m.current = next
}
