package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/swipecell/internal/swipe"
)

// Animator drives swipe transitions with fyne animations. The swipe curve is
// sampled from a linear fyne tick so springs keep their shape.
type Animator struct {
	// speed scales playback; 2 plays twice as fast
	speed func() float64
}

// NewAnimator creates an animator; speed may be nil for real time
func NewAnimator(speed func() float64) *Animator {
	return &Animator{speed: speed}
}

type fyneTransition struct {
	anim *fyne.Animation
}

func (t *fyneTransition) Stop() {
	t.anim.Stop()
}

// Animate implements swipe.Animator
func (a *Animator) Animate(spec swipe.AnimationSpec, step func(progress float64), done func()) swipe.Transition {
	settle := spec.SettleTime()
	anim := fyne.NewAnimation(a.scaled(settle), func(f float32) {
		elapsed := time.Duration(float64(f) * float64(settle))
		step(spec.Progress(elapsed))
		if f >= 1 {
			done()
		}
	})
	anim.Curve = fyne.AnimationLinear
	anim.Start()
	return &fyneTransition{anim: anim}
}

func (a *Animator) scaled(d time.Duration) time.Duration {
	if a.speed == nil {
		return d
	}
	scale := a.speed()
	if scale <= 0 {
		return d
	}
	return time.Duration(float64(d) / scale)
}
