package model

// SwipeState represents where a row is in its swipe lifecycle
type SwipeState string

const (
	// StateCenter means the row rests at its natural position with no strip
	StateCenter SwipeState = "center"

	// StateDragging means a finger is tracking the row and no side is committed yet
	StateDragging SwipeState = "dragging"

	// StateLeft means actions are revealed on the left edge
	StateLeft SwipeState = "left"

	// StateRight means actions are revealed on the right edge
	StateRight SwipeState = "right"

	// StateAnimatingToCenter means the row is committed to returning to center
	StateAnimatingToCenter SwipeState = "animatingToCenter"
)

// transitions lists the states reachable from each state.
// Self transitions are always allowed and not listed.
var transitions = map[SwipeState][]SwipeState{
	StateCenter:            {StateDragging},
	StateDragging:          {StateLeft, StateRight, StateCenter},
	StateLeft:              {StateDragging, StateCenter, StateAnimatingToCenter},
	StateRight:             {StateDragging, StateCenter, StateAnimatingToCenter},
	StateAnimatingToCenter: {StateDragging, StateCenter, StateLeft, StateRight},
}

// String returns the string representation of SwipeState
func (s SwipeState) String() string {
	return string(s)
}

// IsActive returns true for every state except center
func (s SwipeState) IsActive() bool {
	return s != StateCenter
}

// IsRevealed returns true if a side is committed (left or right)
func (s SwipeState) IsRevealed() bool {
	return s == StateLeft || s == StateRight
}

// IsExclusive returns true for the states only one row of a surface may hold
func (s SwipeState) IsExclusive() bool {
	return s == StateDragging || s == StateLeft || s == StateRight
}

// CanTransitionTo reports whether the state machine allows moving to next
func (s SwipeState) CanTransitionTo(next SwipeState) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StateFor returns the revealed state matching an orientation
func StateFor(o Orientation) SwipeState {
	if o == OrientationLeft {
		return StateLeft
	}
	return StateRight
}
