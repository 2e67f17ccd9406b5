package gesture

import (
	"math"
	"time"

	"github.com/ytget/swipecell/internal/model"
)

// Velocity estimation
const (
	DefaultVelocityWindow = 100 * time.Millisecond
	maxSamples            = 32
)

type sample struct {
	at  time.Time
	pos model.Point
}

// Tracker is a pan recognizer fed with pointer samples.
// It is not safe for concurrent use; feed it from the UI goroutine.
type Tracker struct {
	phase    Phase
	origin   model.Point
	location model.Point
	velocity model.Point

	samples []sample
	window  time.Duration
}

// NewTracker creates a tracker with the default velocity window
func NewTracker() *Tracker {
	return &Tracker{
		phase:  PhaseFailed,
		window: DefaultVelocityWindow,
	}
}

// SetVelocityWindow changes how far back samples count towards velocity
func (t *Tracker) SetVelocityWindow(window time.Duration) {
	if window > 0 {
		t.window = window
	}
}

// Start records a touch down. The pan stays possible until the first move.
func (t *Tracker) Start(p model.Point, at time.Time) {
	t.phase = PhasePossible
	t.origin = p
	t.location = p
	t.velocity = model.Point{}
	t.samples = t.samples[:0]
	t.addSample(p, at)
}

// Move records pointer motion and returns the resulting phase
func (t *Tracker) Move(p model.Point, at time.Time) Phase {
	switch t.phase {
	case PhasePossible:
		t.phase = PhaseBegan
	case PhaseBegan, PhaseChanged:
		t.phase = PhaseChanged
	default:
		return t.phase
	}
	t.location = p
	t.addSample(p, at)
	t.velocity = t.estimate(at)
	return t.phase
}

// End records the touch up. A pan that never moved fails.
func (t *Tracker) End(at time.Time) Phase {
	if !t.phase.InProgress() {
		t.phase = PhaseFailed
		return t.phase
	}
	t.velocity = t.estimate(at)
	t.phase = PhaseEnded
	return t.phase
}

// Cancel aborts the pan, e.g. when the pointer leaves the window
func (t *Tracker) Cancel() Phase {
	if t.phase.InProgress() {
		t.phase = PhaseCancelled
	} else {
		t.phase = PhaseFailed
	}
	return t.phase
}

// Fail marks the pan as not recognized; later moves are ignored
func (t *Tracker) Fail() {
	t.phase = PhaseFailed
}

func (t *Tracker) Phase() Phase {
	return t.phase
}

// Translation is the pointer movement since the baseline
func (t *Tracker) Translation() model.Point {
	return model.Point{X: t.location.X - t.origin.X, Y: t.location.Y - t.origin.Y}
}

// SetTranslation rewrites the baseline so Translation reports tr at the current location
func (t *Tracker) SetTranslation(tr model.Point) {
	t.origin = model.Point{X: t.location.X - tr.X, Y: t.location.Y - tr.Y}
}

// Velocity is in surface units per second
func (t *Tracker) Velocity() model.Point {
	return t.velocity
}

// Location is the latest pointer position
func (t *Tracker) Location() model.Point {
	return t.location
}

// IsHorizontal reports whether a translation is at least as wide as it is tall
func IsHorizontal(translation model.Point) bool {
	return math.Abs(translation.Y) <= math.Abs(translation.X)
}

func (t *Tracker) addSample(p model.Point, at time.Time) {
	if len(t.samples) == maxSamples {
		copy(t.samples, t.samples[1:])
		t.samples = t.samples[:maxSamples-1]
	}
	t.samples = append(t.samples, sample{at: at, pos: p})
}

// estimate averages motion across the samples inside the window ending at now.
// A pointer that rested longer than the window has zero velocity.
func (t *Tracker) estimate(now time.Time) model.Point {
	if len(t.samples) < 2 {
		return model.Point{}
	}
	last := t.samples[len(t.samples)-1]
	if now.Sub(last.at) > t.window {
		return model.Point{}
	}

	oldest := last
	for i := len(t.samples) - 2; i >= 0; i-- {
		if now.Sub(t.samples[i].at) > t.window {
			break
		}
		oldest = t.samples[i]
	}
	if oldest.at.Equal(last.at) {
		// Only one sample inside the window: use the step leading into it
		oldest = t.samples[len(t.samples)-2]
	}

	dt := last.at.Sub(oldest.at).Seconds()
	if dt <= 0 {
		return t.velocity
	}
	return model.Point{
		X: (last.pos.X - oldest.pos.X) / dt,
		Y: (last.pos.Y - oldest.pos.Y) / dt,
	}
}
