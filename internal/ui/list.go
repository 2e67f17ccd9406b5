package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipecell/internal/i18n"
	"github.com/ytget/swipecell/internal/logging"
	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/model"
	"github.com/ytget/swipecell/internal/swipe"
)

// ListConfig wires a SwipeList
type ListConfig struct {
	Mailbox      mailbox.Mailbox
	Localization *i18n.Localization
	// Options returns the strip options per side; nil uses defaults
	Options func(o model.Orientation) model.Options
	// Animator is nil to apply transitions immediately
	Animator  swipe.Animator
	Haptics   swipe.Haptics
	RowHeight float32
	Logger    *slog.Logger
}

// SwipeList is a scrolling list of swipeable message rows. It is the
// swipe.Surface of its rows.
type SwipeList struct {
	widget.BaseWidget

	mailbox  mailbox.Mailbox
	loc      *i18n.Localization
	options  func(o model.Orientation) model.Options
	animator swipe.Animator
	haptics  swipe.Haptics
	height   float32
	logger   *slog.Logger

	actions  mailbox.Actions
	registry *swipe.Registry
	rows     []*SwipeRow
	box      *fyne.Container
	scroll   *container.Scroll

	editing        bool
	selected       string
	savedSelection string

	// OnSelected is called when a row is tapped at rest
	OnSelected func(msg mailbox.Message)
	// OnChanged is called after rows were added, removed or updated
	OnChanged func()
	// OnNotify receives short status texts such as "Message deleted"
	OnNotify func(text string)
}

// NewSwipeList creates the list and loads the mailbox
func NewSwipeList(cfg ListConfig) *SwipeList {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Logger()
	}
	loc := cfg.Localization
	if loc == nil {
		loc = i18n.New()
	}
	height := cfg.RowHeight
	if height <= 0 {
		height = RowDefaultH
	}

	l := &SwipeList{
		mailbox:  cfg.Mailbox,
		loc:      loc,
		options:  cfg.Options,
		animator: cfg.Animator,
		haptics:  cfg.Haptics,
		height:   height,
		logger:   logger,
		registry: swipe.NewRegistry(),
		box:      container.NewVBox(),
	}
	l.actions = mailbox.Actions{
		Mailbox: cfg.Mailbox,
		Text:    loc.GetText,
		Logger:  logger,
		Notify:  l.notify,
	}
	l.scroll = container.NewVScroll(l.box)
	l.scroll.OnScrolled = func(fyne.Position) {
		l.registry.HideAll()
	}

	l.mailbox.SetUpdateCallback(l.onUpdated)
	l.mailbox.SetRemoveCallback(l.onRemoved)

	l.ExtendBaseWidget(l)
	l.Reload()
	return l
}

func (l *SwipeList) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.scroll)
}

// Registry returns the registry shared by the rows
func (l *SwipeList) Registry() *swipe.Registry {
	return l.registry
}

// Rows returns the row widgets in display order
func (l *SwipeList) Rows() []*SwipeRow {
	return l.rows
}

// Reload rebuilds the rows from the mailbox
func (l *SwipeList) Reload() {
	for _, r := range l.rows {
		r.row.Detach()
	}
	l.rows = nil

	for i, msg := range l.mailbox.Messages() {
		l.rows = append(l.rows, l.newRow(msg, i))
	}
	l.relayout()
	l.changed()
}

func (l *SwipeList) newRow(msg mailbox.Message, index int) *SwipeRow {
	host := newSwipeRow(l, msg, l.height)
	host.row = swipe.NewRow(host, index, swipe.Config{
		Surface:       l,
		Registry:      l.registry,
		Animator:      l.animator,
		Presentations: host.present,
		Haptics:       l.haptics,
		Logger:        l.logger.With("message", msg.ID),
	})
	return host
}

func (l *SwipeList) relayout() {
	objects := make([]fyne.CanvasObject, 0, len(l.rows))
	for _, r := range l.rows {
		objects = append(objects, r)
	}
	if len(objects) == 0 {
		objects = append(objects, emptyPlaceholder(l.loc.GetText(i18n.KeyEmptyInbox)))
	}
	l.box.Objects = objects
	l.box.Refresh()
}

func (l *SwipeList) changed() {
	if l.OnChanged != nil {
		l.OnChanged()
	}
}

func (l *SwipeList) notify(key string) {
	if l.OnNotify != nil {
		l.OnNotify(l.loc.GetText(key))
	}
}

// SetEditing toggles editing mode; rows cannot be swiped while editing
func (l *SwipeList) SetEditing(editing bool) {
	l.editing = editing
	if editing {
		l.registry.HideAll()
	}
}

// IsEditing reports whether the list is in editing mode
func (l *SwipeList) IsEditing() bool {
	return l.editing
}

// Selected returns the id of the selected message, empty when none
func (l *SwipeList) Selected() string {
	return l.selected
}

func (l *SwipeList) selectRow(r *SwipeRow) {
	l.selected = r.message.ID
	if l.OnSelected != nil {
		l.OnSelected(r.message)
	}
}

// RowAt returns the row widget under a point in list content coordinates
func (l *SwipeList) RowAt(p fyne.Position) *SwipeRow {
	for _, r := range l.rows {
		pos, size := r.Position(), r.Size()
		if p.Y >= pos.Y && p.Y < pos.Y+size.Height {
			return r
		}
	}
	return nil
}

// ContentPosition converts a point on the list widget to content coordinates
func (l *SwipeList) ContentPosition(p fyne.Position) fyne.Position {
	return p.Add(l.scroll.Offset)
}

func (l *SwipeList) hostFor(row *swipe.Row) *SwipeRow {
	for _, r := range l.rows {
		if r.row == row {
			return r
		}
	}
	return nil
}

func (l *SwipeList) hostByID(id string) *SwipeRow {
	for _, r := range l.rows {
		if r.message.ID == id {
			return r
		}
	}
	return nil
}

func (l *SwipeList) dropRow(host *SwipeRow) {
	host.row.Detach()
	kept := l.rows[:0]
	for _, r := range l.rows {
		if r != host {
			kept = append(kept, r)
		}
	}
	l.rows = kept
	for i, r := range l.rows {
		r.row.SetIndex(i)
	}
	if l.selected == host.message.ID {
		l.selected = ""
	}
	l.relayout()
	l.changed()
}

func (l *SwipeList) onUpdated(msg mailbox.Message) {
	if host := l.hostByID(msg.ID); host != nil {
		host.setMessage(msg)
	}
	l.changed()
}

// onRemoved drops the row now, or after its strip collapses when it is swiped open
func (l *SwipeList) onRemoved(id string) {
	host := l.hostByID(id)
	if host == nil {
		return
	}
	if host.row.State().IsActive() {
		host.pendingRemoval = true
		return
	}
	l.dropRow(host)
}

// swipe.Surface

func (l *SwipeList) CanBeginEditing(_ *swipe.Row, _ model.Orientation) bool {
	return !l.editing
}

func (l *SwipeList) EditActions(row *swipe.Row, o model.Orientation) []*model.Action {
	host := l.hostFor(row)
	if host == nil {
		return nil
	}
	return l.actions.For(host.message, o)
}

func (l *SwipeList) EditActionsOptions(_ *swipe.Row, o model.Orientation) model.Options {
	if l.options == nil {
		return model.DefaultOptions()
	}
	return l.options(o)
}

func (l *SwipeList) WillBeginEditing(_ *swipe.Row, _ model.Orientation) {
	l.savedSelection = l.selected
	l.selected = ""
}

func (l *SwipeList) DidEndEditing(_ *swipe.Row, _ model.Orientation) {
	if l.savedSelection != "" && l.hostByID(l.savedSelection) != nil {
		l.selected = l.savedSelection
	}
	l.savedSelection = ""
}

func (l *SwipeList) DidDeleteRow(row *swipe.Row, _ int) {
	host := l.hostFor(row)
	if host == nil {
		return
	}
	host.pendingRemoval = true
	l.actions.Delete(host.message.ID)
}

func (l *SwipeList) VisibleRect() (model.Rect, bool) {
	size := l.scroll.Size()
	if size.IsZero() {
		return model.Rect{}, false
	}
	return model.Rect{
		X:      float64(l.scroll.Offset.X),
		Y:      float64(l.scroll.Offset.Y),
		Width:  float64(size.Width),
		Height: float64(size.Height),
	}, true
}

func (l *SwipeList) Bounds() model.Rect {
	size := l.box.Size()
	return model.Rect{Width: float64(size.Width), Height: float64(size.Height)}
}

// DidReset implements swipe.ResetObserver
func (l *SwipeList) DidReset(row *swipe.Row) {
	if host := l.hostFor(row); host != nil && host.pendingRemoval {
		l.dropRow(host)
	}
}

var (
	_ swipe.Surface       = (*SwipeList)(nil)
	_ swipe.ResetObserver = (*SwipeList)(nil)
	_ swipe.HostElement   = (*SwipeRow)(nil)
	_ swipe.Presentation  = (*ActionsStrip)(nil)
)
