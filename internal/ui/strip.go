package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipecell/internal/model"
	"github.com/ytget/swipecell/internal/swipe"
)

// ActionsStrip is the row of action buttons uncovered behind a swiped row.
// It implements swipe.Presentation.
type ActionsStrip struct {
	widget.BaseWidget

	host        *SwipeRow
	orientation model.Orientation
	options     model.Options
	actions     []*model.Action
	insets      model.Insets

	buttons     []*widget.Button
	background  *canvas.Rectangle
	buttonWidth float64

	visible  float64
	expanded bool
	alpha    float64
}

// NewActionsStrip builds the strip described by cfg on host
func NewActionsStrip(host *SwipeRow, cfg swipe.StripConfig) *ActionsStrip {
	s := &ActionsStrip{
		host:        host,
		orientation: cfg.Orientation,
		options:     cfg.Options,
		actions:     cfg.Actions,
		insets:      cfg.ContentInsets,
		background:  canvas.NewRectangle(swipeColor(cfg.Orientation)),
		alpha:       1,
	}

	textSize := theme.TextSize()
	intrinsic := make([]float64, len(cfg.Actions))
	for i, action := range cfg.Actions {
		intrinsic[i] = float64(fyne.MeasureText(action.Title, textSize, fyne.TextStyle{Bold: true}).Width)

		btn := widget.NewButton(action.Title, s.performer(cfg.Row, action))
		btn.Importance = importanceFor(action, cfg.Orientation)
		s.buttons = append(s.buttons, btn)
	}
	s.buttonWidth = cfg.Options.ButtonWidth(intrinsic)

	s.ExtendBaseWidget(s)
	return s
}

func (s *ActionsStrip) performer(row *swipe.Row, action *model.Action) func() {
	return func() {
		if row != nil {
			row.Perform(action)
		}
	}
}

func importanceFor(action *model.Action, o model.Orientation) widget.Importance {
	switch {
	case action.Style == model.ActionStyleDestructive:
		return widget.DangerImportance
	case o == model.OrientationLeft:
		return widget.HighImportance
	default:
		return widget.MediumImportance
	}
}

func (s *ActionsStrip) Orientation() model.Orientation { return s.orientation }
func (s *ActionsStrip) Options() model.Options         { return s.options }

func (s *ActionsStrip) PreferredWidth() float64 {
	return s.buttonWidth * float64(len(s.actions))
}

func (s *ActionsStrip) MinimumButtonWidth() float64 {
	return s.buttonWidth
}

func (s *ActionsStrip) Expanded() bool {
	return s.expanded
}

func (s *ActionsStrip) SetExpanded(expanded bool) {
	if s.expanded == expanded {
		return
	}
	s.expanded = expanded
	s.Refresh()
}

func (s *ActionsStrip) ExpandableAction() *model.Action {
	return s.options.ExpandableAction(s.actions)
}

// VisibleWidth is the uncovered width last reported by the coordinator
func (s *ActionsStrip) VisibleWidth() float64 {
	return s.visible
}

func (s *ActionsStrip) SetVisibleWidth(width float64) {
	s.visible = width
	s.Refresh()
}

func (s *ActionsStrip) SetAlpha(alpha float64) {
	s.alpha = alpha
	s.Refresh()
}

func (s *ActionsStrip) CreateDeletionMask() swipe.Mask {
	return &rowMask{host: s.host, height: float64(s.host.Size().Height)}
}

func (s *ActionsStrip) Remove() {
	s.host.setStrip(nil)
}

// Button returns the button of the action at i
func (s *ActionsStrip) Button(i int) *widget.Button {
	return s.buttons[i]
}

func (s *ActionsStrip) CreateRenderer() fyne.WidgetRenderer {
	objects := []fyne.CanvasObject{s.background}
	// inner buttons first so the outer ones draw on top while sliding
	for i := len(s.buttons) - 1; i >= 0; i-- {
		objects = append(objects, s.buttons[i])
	}
	return &stripRenderer{strip: s, objects: objects}
}

type stripRenderer struct {
	strip   *ActionsStrip
	objects []fyne.CanvasObject
}

func (r *stripRenderer) Layout(size fyne.Size) {
	s := r.strip
	visible := float32(s.visible)
	top := float32(s.insets.Top)
	height := size.Height - top - float32(s.insets.Bottom)
	if height < 0 {
		height = 0
	}

	r.place(s.background, 0, visible, 0, size.Height, size.Width)

	n := len(s.buttons)
	slot := float32(s.buttonWidth)
	if n > 0 && visible/float32(n) > slot {
		slot = visible / float32(n)
	}
	for i, btn := range s.buttons {
		if s.expanded {
			if i == 0 {
				r.place(btn, 0, visible, top, height, size.Width)
				btn.Show()
			} else {
				btn.Hide()
			}
			continue
		}
		if s.alpha <= 0 {
			btn.Hide()
		} else {
			btn.Show()
		}
		r.place(btn, visible*float32(i)/float32(n), slot, top, height, size.Width)
	}
}

// place positions obj at distance from the revealed edge
func (r *stripRenderer) place(obj fyne.CanvasObject, from, width, y, height, total float32) {
	x := from
	if r.strip.orientation == model.OrientationRight {
		x = total - from - width
	}
	obj.Move(fyne.NewPos(x, y))
	obj.Resize(fyne.NewSize(width, height))
}

func (r *stripRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *stripRenderer) Refresh() {
	s := r.strip
	base := color.NRGBAModel.Convert(swipeColor(s.orientation)).(color.NRGBA)
	base.A = uint8(float64(base.A) * clamp01(s.alpha))
	s.background.FillColor = base
	s.background.Refresh()

	r.Layout(s.Size())
	canvas.Refresh(s)
}

func (r *stripRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *stripRenderer) Destroy() {}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// rowMask collapses the row height while a deleted row animates out
type rowMask struct {
	host   *SwipeRow
	height float64
}

func (m *rowMask) Height() float64 {
	return m.height
}

func (m *rowMask) SetHeight(height float64) {
	m.height = height
	m.host.maskChanged()
}
