package tui

import "go.uber.org/atomic"

// flashFrames is how long the expansion marker stays lit
const flashFrames = 8

// Haptics marks each expansion crossing in the header; a terminal has no motor
type Haptics struct {
	enabled bool
	pulses  atomic.Int32
	pending atomic.Bool
}

// NewHaptics creates the feedback sink
func NewHaptics(enabled bool) *Haptics {
	return &Haptics{enabled: enabled}
}

// ExpansionFeedback implements swipe.Haptics
func (h *Haptics) ExpansionFeedback() {
	if !h.enabled {
		return
	}
	h.pulses.Inc()
	h.pending.Store(true)
}

// Pulses returns how many pulses were played
func (h *Haptics) Pulses() int {
	return int(h.pulses.Load())
}

// take reports and clears a pulse not yet shown
func (h *Haptics) take() bool {
	return h.pending.CompareAndSwap(true, false)
}
