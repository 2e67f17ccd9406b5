package swipe

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/atomic"

	"github.com/ytget/swipecell/internal/gesture"
	"github.com/ytget/swipecell/internal/model"
)

const (
	rowWidth  = 320.0
	rowHeight = 60.0
	midX      = rowWidth / 2
)

type fakeHost struct {
	bounds  model.Rect
	frame   model.Rect
	center  float64
	mask    Mask
	layouts int
}

func newFakeHost(index int) *fakeHost {
	return &fakeHost{
		bounds: model.Rect{Width: rowWidth, Height: rowHeight},
		frame:  model.Rect{Y: float64(index) * rowHeight, Width: rowWidth, Height: rowHeight},
		center: midX,
	}
}

func (h *fakeHost) Bounds() model.Rect   { return h.bounds }
func (h *fakeHost) Frame() model.Rect    { return h.frame }
func (h *fakeHost) CenterX() float64     { return h.center }
func (h *fakeHost) SetCenterX(x float64) { h.center = x }
func (h *fakeHost) SetMask(mask Mask)    { h.mask = mask }
func (h *fakeHost) LayoutIfNeeded()      { h.layouts++ }

type fakeMask struct {
	height float64
}

func (m *fakeMask) Height() float64     { return m.height }
func (m *fakeMask) SetHeight(h float64) { m.height = h }

type fakeStrip struct {
	orientation model.Orientation
	options     model.Options
	actions     []*model.Action
	buttonWidth float64
	expanded    bool
	visible     float64
	alpha       float64
	removed     bool
	mask        *fakeMask
}

func (s *fakeStrip) Orientation() model.Orientation { return s.orientation }
func (s *fakeStrip) Options() model.Options         { return s.options }
func (s *fakeStrip) PreferredWidth() float64 {
	return s.buttonWidth * float64(len(s.actions))
}
func (s *fakeStrip) MinimumButtonWidth() float64 { return s.buttonWidth }
func (s *fakeStrip) Expanded() bool              { return s.expanded }
func (s *fakeStrip) SetExpanded(expanded bool)   { s.expanded = expanded }
func (s *fakeStrip) ExpandableAction() *model.Action {
	return s.options.ExpandableAction(s.actions)
}
func (s *fakeStrip) SetVisibleWidth(width float64) { s.visible = width }
func (s *fakeStrip) SetAlpha(alpha float64)        { s.alpha = alpha }
func (s *fakeStrip) CreateDeletionMask() Mask {
	s.mask = &fakeMask{height: rowHeight}
	return s.mask
}
func (s *fakeStrip) Remove() { s.removed = true }

type fakeSurface struct {
	actions  map[model.Orientation][]*model.Action
	options  map[model.Orientation]model.Options
	editing  bool
	visible  *model.Rect
	events   []string
	requests int
	resets   int
	onDelete func(row *Row, index int)
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		actions: make(map[model.Orientation][]*model.Action),
		options: make(map[model.Orientation]model.Options),
	}
}

func (s *fakeSurface) CanBeginEditing(_ *Row, _ model.Orientation) bool {
	return !s.editing
}

func (s *fakeSurface) EditActions(_ *Row, o model.Orientation) []*model.Action {
	s.requests++
	return s.actions[o]
}

func (s *fakeSurface) EditActionsOptions(_ *Row, o model.Orientation) model.Options {
	if opts, ok := s.options[o]; ok {
		return opts
	}
	return model.DefaultOptions()
}

func (s *fakeSurface) WillBeginEditing(_ *Row, o model.Orientation) {
	s.events = append(s.events, "willBegin:"+o.String())
}

func (s *fakeSurface) DidEndEditing(_ *Row, o model.Orientation) {
	s.events = append(s.events, "didEnd:"+o.String())
}

func (s *fakeSurface) DidDeleteRow(row *Row, index int) {
	s.events = append(s.events, fmt.Sprintf("didDelete:%d", index))
	if s.onDelete != nil {
		s.onDelete(row, index)
	}
}

func (s *fakeSurface) VisibleRect() (model.Rect, bool) {
	if s.visible == nil {
		return model.Rect{}, false
	}
	return *s.visible, true
}

func (s *fakeSurface) Bounds() model.Rect {
	return model.Rect{Width: rowWidth, Height: rowHeight * 10}
}

func (s *fakeSurface) DidReset(_ *Row) {
	s.resets++
}

func (s *fakeSurface) count(event string) int {
	n := 0
	for _, e := range s.events {
		if e == event {
			n++
		}
	}
	return n
}

type manualTransition struct {
	spec     AnimationSpec
	step     func(float64)
	done     func()
	stopped  bool
	finished bool
}

func (t *manualTransition) Stop() { t.stopped = true }

// Finish jumps to the end and fires completion unless stopped
func (t *manualTransition) Finish() {
	if t.stopped || t.finished {
		return
	}
	t.finished = true
	t.step(1)
	t.done()
}

type manualAnimator struct {
	transitions []*manualTransition
}

func (a *manualAnimator) Animate(spec AnimationSpec, step func(float64), done func()) Transition {
	t := &manualTransition{spec: spec, step: step, done: done}
	a.transitions = append(a.transitions, t)
	return t
}

func (a *manualAnimator) last() *manualTransition {
	if len(a.transitions) == 0 {
		return nil
	}
	return a.transitions[len(a.transitions)-1]
}

// finishAll completes running transitions, including ones started by completions
func (a *manualAnimator) finishAll() {
	for i := 0; i < len(a.transitions); i++ {
		a.transitions[i].Finish()
	}
}

type hapticCounter struct {
	count atomic.Int32
}

func (h *hapticCounter) ExpansionFeedback() { h.count.Inc() }

type scriptedPan struct {
	phase       gesture.Phase
	translation model.Point
	velocity    model.Point
	location    model.Point
}

func (p *scriptedPan) Phase() gesture.Phase         { return p.phase }
func (p *scriptedPan) Translation() model.Point     { return p.translation }
func (p *scriptedPan) SetTranslation(t model.Point) { p.translation = t }
func (p *scriptedPan) Velocity() model.Point        { return p.velocity }
func (p *scriptedPan) Location() model.Point        { return p.location }

func (p *scriptedPan) at(phase gesture.Phase) *scriptedPan {
	p.phase = phase
	return p
}

type fixture struct {
	t        *testing.T
	surface  *fakeSurface
	animator *manualAnimator
	registry *Registry
	haptics  *hapticCounter
	strips   []*fakeStrip
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		t:        t,
		surface:  newFakeSurface(),
		animator: &manualAnimator{},
		registry: NewRegistry(),
		haptics:  &hapticCounter{},
	}
}

func (f *fixture) config() Config {
	return Config{
		Surface:  f.surface,
		Registry: f.registry,
		Animator: f.animator,
		Presentations: func(cfg StripConfig) Presentation {
			strip := &fakeStrip{
				orientation: cfg.Orientation,
				options:     cfg.Options,
				actions:     cfg.Actions,
				buttonWidth: cfg.Options.ButtonWidth(make([]float64, len(cfg.Actions))),
				alpha:       1,
			}
			f.strips = append(f.strips, strip)
			return strip
		},
		Haptics: f.haptics,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (f *fixture) newRow(index int) (*Row, *fakeHost) {
	host := newFakeHost(index)
	return NewRow(host, index, f.config()), host
}

func (f *fixture) setActions(o model.Orientation, opts model.Options, actions ...*model.Action) {
	f.surface.actions[o] = actions
	f.surface.options[o] = opts
}

func (f *fixture) strip(row *Row) *fakeStrip {
	if row.Actions() == nil {
		return nil
	}
	return row.Actions().(*fakeStrip)
}

// drag runs began, the given translations as changes, and ends with releaseVelocity
func (f *fixture) drag(row *Row, startVelocity float64, translations []float64, releaseVelocity float64) *scriptedPan {
	pan := &scriptedPan{velocity: model.Point{X: startVelocity}}
	row.HandlePan(pan.at(gesture.PhaseBegan))
	for _, tx := range translations {
		pan.translation = model.Point{X: tx}
		pan.location = model.Point{X: midX + tx, Y: rowHeight / 2}
		row.HandlePan(pan.at(gesture.PhaseChanged))
	}
	pan.velocity = model.Point{X: releaseVelocity}
	row.HandlePan(pan.at(gesture.PhaseEnded))
	return pan
}

func action(title string, handler model.ActionHandler) *model.Action {
	return model.NewAction(model.ActionStyleDefault, title, handler)
}
