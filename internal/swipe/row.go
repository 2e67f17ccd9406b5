package swipe

import (
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/ytget/swipecell/internal/logging"
	"github.com/ytget/swipecell/internal/model"
)

// RowID identifies a row for the lifetime of its registration
type RowID = uuid.UUID

// Config wires a row to its collaborators
type Config struct {
	Surface       Surface
	Registry      *Registry
	Animator      Animator
	Presentations PresentationFactory
	Haptics       Haptics
	Logger        *slog.Logger
}

// Row is one swipeable list item. All methods are safe to call from UI
// callbacks; work is serialized on the row's queue.
type Row struct {
	id      RowID
	index   int
	state   model.SwipeState
	actions Presentation
	panning bool

	queue       *Queue
	coordinator *Coordinator
}

// NewRow creates a row for host at index and registers it with cfg.Registry
func NewRow(host HostElement, index int, cfg Config) *Row {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Logger()
	}
	logger = logger.With("row", id.String())

	registry := cfg.Registry
	if registry == nil {
		registry = NewRegistry()
	}

	row := &Row{
		id:    id,
		index: index,
		state: model.StateCenter,
		queue: NewQueue(logger),
	}
	row.coordinator = &Coordinator{
		row:         row,
		host:        host,
		surface:     cfg.Surface,
		registry:    registry,
		animator:    cfg.Animator,
		present:     cfg.Presentations,
		haptics:     cfg.Haptics,
		logger:      logger,
		scrollRatio: 1,
	}

	if err := registry.Add(row); err != nil {
		logger.Warn("failed to register row", "error", err)
	}
	return row
}

func (r *Row) ID() RowID {
	return r.id
}

// Index is the position of the row in its surface
func (r *Row) Index() int {
	return r.index
}

// SetIndex updates the position after the surface reordered or removed rows
func (r *Row) SetIndex(index int) {
	r.index = index
}

func (r *Row) State() model.SwipeState {
	return r.state
}

// Actions returns the current strip, nil when the row is at rest
func (r *Row) Actions() Presentation {
	return r.actions
}

// IsPanning reports whether a pan on this row is in progress
func (r *Row) IsPanning() bool {
	return r.panning
}

// Registry returns the registry the row belongs to
func (r *Row) Registry() *Registry {
	return r.coordinator.registry
}

// HandlePan feeds a pan event to the row
func (r *Row) HandlePan(p Pan) {
	if p == nil {
		return
	}
	event := snapshot(p)
	r.queue.Post(func() { r.coordinator.handlePan(event) })
}

// ShouldBeginPan reports whether a pan should start on this row: only
// horizontal-dominant pans do
func (r *Row) ShouldBeginPan(p Pan) bool {
	return p != nil && r.coordinator.shouldBeginPan(p)
}

// HandleTap collapses the row
func (r *Row) HandleTap() {
	r.queue.Post(func() { r.coordinator.hide(true, nil) })
}

// Perform triggers an action of the current strip, e.g. from a button tap
func (r *Row) Perform(action *model.Action) {
	r.queue.Post(func() { r.coordinator.perform(action) })
}

// Show reveals the actions for orientation at their natural width
func (r *Row) Show(orientation model.Orientation, animated bool, completion func()) {
	r.SetOffset(math.Inf(1)*-orientation.Scale(), animated, completion)
}

// Hide collapses the row to center. It is a no-op unless a side is revealed.
func (r *Row) Hide(animated bool, completion func()) {
	r.queue.Post(func() { r.coordinator.hide(animated, completion) })
}

// SetOffset moves the content to offset from rest; the sign picks the side and
// the magnitude is clamped to the row width. Zero hides the row.
func (r *Row) SetOffset(offset float64, animated bool, completion func()) {
	r.queue.Post(func() { r.coordinator.setOffset(offset, animated, completion) })
}

// TraitsChanged re-snaps a revealed strip after a size or trait change
func (r *Row) TraitsChanged() {
	r.queue.Post(func() { r.coordinator.traitsChanged() })
}

// Detach unregisters the row and drops its strip, e.g. when the view is recycled
func (r *Row) Detach() {
	r.queue.Post(func() {
		r.coordinator.registry.Remove(r)
		r.coordinator.stopTransition()
		if r.actions != nil {
			r.actions.Remove()
			r.actions = nil
		}
		r.state = model.StateCenter
		r.panning = false
	})
}
