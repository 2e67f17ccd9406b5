package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/model"
	"github.com/ytget/swipecell/internal/swipe"
)

// RowLines is the height of a message row in terminal lines
const RowLines = 3

// rowView is the host element of one message. Horizontal units are cells,
// vertical units are lines of the list content.
type rowView struct {
	list    *List
	row     *swipe.Row
	message mailbox.Message

	centerX float64
	strip   *stripView
	mask    swipe.Mask

	// pendingRemoval drops the row once its strip is torn down
	pendingRemoval bool
}

func (r *rowView) height() float64 {
	if r.mask != nil {
		return math.Max(0, math.Min(RowLines, r.mask.Height()))
	}
	return RowLines
}

// lines is the number of terminal lines the row occupies right now
func (r *rowView) lines() int {
	return int(math.Round(r.height()))
}

func (r *rowView) Bounds() model.Rect {
	return model.Rect{Width: r.list.width, Height: RowLines}
}

func (r *rowView) Frame() model.Rect {
	return model.Rect{Y: float64(r.list.rowTop(r)), Width: r.list.width, Height: r.height()}
}

func (r *rowView) CenterX() float64 {
	return r.centerX
}

func (r *rowView) SetCenterX(x float64) {
	r.centerX = x
}

func (r *rowView) SetMask(mask swipe.Mask) {
	r.mask = mask
}

// LayoutIfNeeded is a no-op; the view is rendered from state on every frame
func (r *rowView) LayoutIfNeeded() {}

func (r *rowView) present(cfg swipe.StripConfig) swipe.Presentation {
	r.strip = newStripView(r, cfg)
	return r.strip
}

// displacement is the content shift in whole cells, negative to the left
func (r *rowView) displacement() int {
	return int(math.Round(r.centerX - r.list.width/2))
}

// stripView is the action strip drawn in the cells a swiped row uncovers
type stripView struct {
	host        *rowView
	orientation model.Orientation
	options     model.Options
	actions     []*model.Action
	buttonWidth float64

	visible  float64
	expanded bool
	alpha    float64
}

func newStripView(host *rowView, cfg swipe.StripConfig) *stripView {
	intrinsic := make([]float64, len(cfg.Actions))
	for i, action := range cfg.Actions {
		intrinsic[i] = float64(lipgloss.Width(action.Title))
	}
	return &stripView{
		host:        host,
		orientation: cfg.Orientation,
		options:     cfg.Options,
		actions:     cfg.Actions,
		buttonWidth: cfg.Options.ButtonWidth(intrinsic),
		alpha:       1,
	}
}

func (s *stripView) Orientation() model.Orientation { return s.orientation }
func (s *stripView) Options() model.Options         { return s.options }

func (s *stripView) PreferredWidth() float64 {
	return s.buttonWidth * float64(len(s.actions))
}

func (s *stripView) MinimumButtonWidth() float64 { return s.buttonWidth }
func (s *stripView) Expanded() bool              { return s.expanded }
func (s *stripView) SetExpanded(expanded bool)   { s.expanded = expanded }

func (s *stripView) ExpandableAction() *model.Action {
	return s.options.ExpandableAction(s.actions)
}

func (s *stripView) SetVisibleWidth(width float64) { s.visible = width }
func (s *stripView) SetAlpha(alpha float64)        { s.alpha = alpha }

func (s *stripView) CreateDeletionMask() swipe.Mask {
	return &lineMask{height: s.host.height()}
}

func (s *stripView) Remove() {
	if s.host.strip == s {
		s.host.strip = nil
	}
}

// Action returns the action at i, nil when out of range
func (s *stripView) Action(i int) *model.Action {
	if i < 0 || i >= len(s.actions) {
		return nil
	}
	return s.actions[i]
}

type lineMask struct {
	height float64
}

func (m *lineMask) Height() float64          { return m.height }
func (m *lineMask) SetHeight(height float64) { m.height = height }

var (
	_ swipe.HostElement  = (*rowView)(nil)
	_ swipe.Presentation = (*stripView)(nil)
)
