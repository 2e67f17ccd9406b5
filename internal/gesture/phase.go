package gesture

// Phase is the lifecycle stage of a pan
type Phase int

const (
	PhasePossible Phase = iota
	PhaseBegan
	PhaseChanged
	PhaseEnded
	PhaseCancelled
	PhaseFailed
)

// String returns the string representation of Phase
func (p Phase) String() string {
	switch p {
	case PhasePossible:
		return "possible"
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// InProgress reports whether the pan is tracking a finger
func (p Phase) InProgress() bool {
	return p == PhaseBegan || p == PhaseChanged
}

// IsTerminal reports whether the pan is over
func (p Phase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseCancelled || p == PhaseFailed
}
