package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/swipecell/internal/swipe"
)

// FrameInterval is the redraw period while something animates
const FrameInterval = 16 * time.Millisecond

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// TickAnimator runs swipe transitions off the program's frame messages.
// Everything happens inside Update, so it needs no locking.
type TickAnimator struct {
	// speed scales playback; 2 plays twice as fast
	speed   float64
	running []*tickTransition
}

type tickTransition struct {
	spec    swipe.AnimationSpec
	settle  time.Duration
	step    func(progress float64)
	done    func()
	started time.Time
	stopped bool
}

func (t *tickTransition) Stop() {
	t.stopped = true
}

// NewTickAnimator creates an animator; speed <= 0 plays in real time
func NewTickAnimator(speed float64) *TickAnimator {
	if speed <= 0 {
		speed = 1
	}
	return &TickAnimator{speed: speed}
}

// Animate implements swipe.Animator. The transition starts on the next frame.
func (a *TickAnimator) Animate(spec swipe.AnimationSpec, step func(progress float64), done func()) swipe.Transition {
	t := &tickTransition{
		spec:   spec,
		settle: spec.SettleTime(),
		step:   step,
		done:   done,
	}
	a.running = append(a.running, t)
	return t
}

// Running reports whether a transition waits for frames
func (a *TickAnimator) Running() bool {
	for _, t := range a.running {
		if !t.stopped {
			return true
		}
	}
	return false
}

// Advance moves every transition to now. Callbacks may start or stop
// transitions; new ones begin on the following frame.
func (a *TickAnimator) Advance(now time.Time) {
	current := a.running
	a.running = nil

	kept := make([]*tickTransition, 0, len(current))
	for _, t := range current {
		if t.stopped {
			continue
		}
		if t.started.IsZero() {
			t.started = now
		}
		elapsed := time.Duration(float64(now.Sub(t.started)) * a.speed)
		t.step(t.spec.Progress(elapsed))
		if elapsed >= t.settle {
			t.stopped = true
			t.done()
			continue
		}
		kept = append(kept, t)
	}

	running := append(kept, a.running...)
	a.running = running[:0]
	for _, t := range running {
		if !t.stopped {
			a.running = append(a.running, t)
		}
	}
}
