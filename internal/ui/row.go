package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipecell/internal/gesture"
	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/model"
	"github.com/ytget/swipecell/internal/swipe"
)

const dragFrameInterval = 16 * time.Millisecond

// SwipeRow renders one message and is the host element its swipe.Row moves.
// Horizontal drags go to the row, vertical drags to the enclosing scroll.
type SwipeRow struct {
	widget.BaseWidget

	list    *SwipeList
	row     *swipe.Row
	message mailbox.Message

	content *fyne.Container
	cell    *messageCell
	strip   *ActionsStrip
	mask    swipe.Mask
	height  float32

	centerX float64
	tracker *gesture.Tracker
	// tracking is set while a drag is routed to the row, forwarding while it goes to the scroll
	tracking   bool
	forwarding bool

	// pendingRemoval drops the row once its strip is torn down
	pendingRemoval bool
}

func newSwipeRow(list *SwipeList, msg mailbox.Message, height float32) *SwipeRow {
	cell := newMessageCell(msg)
	r := &SwipeRow{
		list:    list,
		message: msg,
		cell:    cell,
		height:  height,
		tracker: gesture.NewTracker(),
	}
	r.content = container.NewStack(canvas.NewRectangle(theme.Color(theme.ColorNameBackground)), cell.object())
	r.ExtendBaseWidget(r)
	return r
}

// Row returns the swipe row driving this widget
func (r *SwipeRow) Row() *swipe.Row {
	return r.row
}

// Message returns the message shown by the row
func (r *SwipeRow) Message() mailbox.Message {
	return r.message
}

// Strip returns the revealed strip, nil at rest
func (r *SwipeRow) Strip() *ActionsStrip {
	return r.strip
}

func (r *SwipeRow) setMessage(msg mailbox.Message) {
	r.message = msg
	r.cell.update(msg)
}

func (r *SwipeRow) present(cfg swipe.StripConfig) swipe.Presentation {
	strip := NewActionsStrip(r, cfg)
	r.setStrip(strip)
	return strip
}

func (r *SwipeRow) setStrip(strip *ActionsStrip) {
	r.strip = strip
	if strip != nil {
		strip.Resize(r.Size())
	}
	r.Refresh()
}

// Bounds implements swipe.HostElement
func (r *SwipeRow) Bounds() model.Rect {
	size := r.Size()
	return model.Rect{Width: float64(size.Width), Height: float64(size.Height)}
}

// Frame implements swipe.HostElement; rows sit directly in the list content
func (r *SwipeRow) Frame() model.Rect {
	pos := r.Position()
	size := r.Size()
	return model.Rect{X: float64(pos.X), Y: float64(pos.Y), Width: float64(size.Width), Height: float64(size.Height)}
}

func (r *SwipeRow) CenterX() float64 {
	return r.centerX
}

func (r *SwipeRow) SetCenterX(x float64) {
	r.centerX = x
}

func (r *SwipeRow) SetMask(mask swipe.Mask) {
	r.mask = mask
	r.maskChanged()
}

func (r *SwipeRow) LayoutIfNeeded() {
	r.Refresh()
}

func (r *SwipeRow) maskChanged() {
	r.Refresh()
	r.list.relayout()
}

// Resize keeps the content centered at rest and re-snaps a revealed strip
func (r *SwipeRow) Resize(size fyne.Size) {
	old := r.Size()
	r.BaseWidget.Resize(size)
	if old.Width == size.Width {
		return
	}
	if r.row == nil || r.row.State() == model.StateCenter {
		r.centerX = float64(size.Width) / 2
		r.Refresh()
		return
	}
	r.row.TraitsChanged()
}

func (r *SwipeRow) surfacePoint(p fyne.Position) model.Point {
	pos := r.Position()
	return model.Point{X: float64(pos.X + p.X), Y: float64(pos.Y + p.Y)}
}

// Dragged implements fyne.Draggable
func (r *SwipeRow) Dragged(ev *fyne.DragEvent) {
	r.dragAt(ev, time.Now())
}

func (r *SwipeRow) dragAt(ev *fyne.DragEvent, now time.Time) {
	if r.forwarding {
		r.list.scroll.Dragged(ev)
		return
	}

	p := r.surfacePoint(ev.Position)
	if !r.tracking {
		r.tracking = true
		// the first event already carries one frame of motion
		r.tracker.Start(model.Point{X: p.X - float64(ev.Dragged.DX), Y: p.Y - float64(ev.Dragged.DY)}, now.Add(-dragFrameInterval))
		r.tracker.Move(p, now)
		if !r.row.ShouldBeginPan(r.tracker) {
			r.tracker.Fail()
			r.tracking = false
			r.forwarding = true
			r.list.scroll.Dragged(ev)
			return
		}
		r.row.HandlePan(r.tracker)
		return
	}

	r.tracker.Move(p, now)
	r.row.HandlePan(r.tracker)
}

// DragEnd implements fyne.Draggable
func (r *SwipeRow) DragEnd() {
	r.dragEndAt(time.Now())
}

func (r *SwipeRow) dragEndAt(now time.Time) {
	if r.forwarding {
		r.forwarding = false
		r.list.scroll.DragEnd()
		return
	}
	if !r.tracking {
		return
	}
	r.tracking = false
	r.tracker.End(now)
	r.row.HandlePan(r.tracker)
}

// Tapped implements fyne.Tappable
func (r *SwipeRow) Tapped(ev *fyne.PointEvent) {
	if r.list.registry.InterceptTouch(r.surfacePoint(ev.Position)) {
		return
	}
	if r.row.State().IsActive() {
		r.row.HandleTap()
		return
	}
	r.list.selectRow(r)
}

func (r *SwipeRow) CreateRenderer() fyne.WidgetRenderer {
	return &swipeRowRenderer{row: r}
}

type swipeRowRenderer struct {
	row *SwipeRow
}

func (r *swipeRowRenderer) Layout(size fyne.Size) {
	row := r.row
	if row.strip != nil {
		row.strip.Move(fyne.NewPos(0, 0))
		row.strip.Resize(size)
	}
	row.content.Move(fyne.NewPos(float32(row.centerX)-size.Width/2, 0))
	row.content.Resize(size)
}

func (r *swipeRowRenderer) MinSize() fyne.Size {
	row := r.row
	size := row.content.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < row.height {
		size.Height = row.height
	}
	if row.mask != nil {
		size.Height = float32(row.mask.Height())
	}
	return size
}

func (r *swipeRowRenderer) Refresh() {
	r.Layout(r.row.Size())
	if r.row.strip != nil {
		r.row.strip.Refresh()
	}
	canvas.Refresh(r.row)
}

func (r *swipeRowRenderer) Objects() []fyne.CanvasObject {
	if r.row.strip == nil {
		return []fyne.CanvasObject{r.row.content}
	}
	return []fyne.CanvasObject{r.row.strip, r.row.content}
}

func (r *swipeRowRenderer) Destroy() {}
