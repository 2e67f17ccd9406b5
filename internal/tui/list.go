package tui

import (
	"log/slog"

	"github.com/ytget/swipecell/internal/i18n"
	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/model"
	"github.com/ytget/swipecell/internal/swipe"
)

// Terminal geometry
const (
	// pointsPerCell converts strip lengths given in points into cells
	pointsPerCell = 8.0
	defaultWidth  = 80
)

// List is the swipe.Surface of the terminal rows. Its content coordinates
// are cells across and lines down from the first row.
type List struct {
	mailbox  mailbox.Mailbox
	actions  mailbox.Actions
	options  func(o model.Orientation) model.Options
	animator swipe.Animator
	haptics  swipe.Haptics
	logger   *slog.Logger

	registry *swipe.Registry
	rows     []*rowView

	width    float64
	viewport int
	offset   int

	editing        bool
	cursor         int
	savedSelection string

	// OnChanged is called after rows were added, removed or updated
	OnChanged func()
	// OnNotify receives translated status texts
	OnNotify func(text string)
}

type listConfig struct {
	Mailbox      mailbox.Mailbox
	Localization *i18n.Localization
	Options      func(o model.Orientation) model.Options
	Animator     swipe.Animator
	Haptics      swipe.Haptics
	Logger       *slog.Logger
}

func newList(cfg listConfig) *List {
	l := &List{
		mailbox:  cfg.Mailbox,
		options:  cfg.Options,
		animator: cfg.Animator,
		haptics:  cfg.Haptics,
		logger:   cfg.Logger,
		registry: swipe.NewRegistry(),
		width:    defaultWidth,
	}
	l.actions = mailbox.Actions{
		Mailbox: cfg.Mailbox,
		Text:    cfg.Localization.GetText,
		Logger:  cfg.Logger,
		Notify: func(key string) {
			if l.OnNotify != nil {
				l.OnNotify(cfg.Localization.GetText(key))
			}
		},
	}
	l.mailbox.SetUpdateCallback(l.onUpdated)
	l.mailbox.SetRemoveCallback(l.onRemoved)
	l.Reload()
	return l
}

// Reload rebuilds the rows from the mailbox
func (l *List) Reload() {
	for _, r := range l.rows {
		r.row.Detach()
	}
	l.rows = nil
	for i, msg := range l.mailbox.Messages() {
		l.rows = append(l.rows, l.newRow(msg, i))
	}
	l.clampCursor()
	l.changed()
}

func (l *List) newRow(msg mailbox.Message, index int) *rowView {
	host := &rowView{list: l, message: msg, centerX: l.width / 2}
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

// Registry returns the registry shared by the rows
func (l *List) Registry() *swipe.Registry {
	return l.registry
}

// Len returns the number of rows
func (l *List) Len() int {
	return len(l.rows)
}

// Row returns the swipe row at i
func (l *List) Row(i int) *swipe.Row {
	return l.rows[i].row
}

// Message returns the message shown at i
func (l *List) Message(i int) mailbox.Message {
	return l.rows[i].message
}

// CenterX returns the content center of the row at i
func (l *List) CenterX(i int) float64 {
	return l.rows[i].centerX
}

// Cursor returns the index of the selected row, -1 for an empty list
func (l *List) Cursor() int {
	if len(l.rows) == 0 {
		return -1
	}
	return l.cursor
}

// Selected returns the id of the selected message, empty when none
func (l *List) Selected() string {
	if i := l.Cursor(); i >= 0 {
		return l.rows[i].message.ID
	}
	return ""
}

// MoveCursor moves the selection by delta rows and scrolls it into view
func (l *List) MoveCursor(delta int) {
	l.cursor += delta
	l.clampCursor()
	l.ensureVisible(l.cursor)
}

func (l *List) clampCursor() {
	if l.cursor >= len(l.rows) {
		l.cursor = len(l.rows) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *List) selectID(id string) {
	for i, r := range l.rows {
		if r.message.ID == id {
			l.cursor = i
			return
		}
	}
}

// SetEditing toggles editing mode; rows cannot be swiped while editing
func (l *List) SetEditing(editing bool) {
	l.editing = editing
	if editing {
		l.registry.HideAll()
	}
}

// IsEditing reports whether the list is in editing mode
func (l *List) IsEditing() bool {
	return l.editing
}

// SetSize resizes the list; revealed rows re-snap to the new width
func (l *List) SetSize(width, viewport int) {
	changed := float64(width) != l.width
	l.width = float64(width)
	l.viewport = viewport
	if changed {
		for _, r := range l.rows {
			if r.row.State() == model.StateCenter {
				r.centerX = l.width / 2
				continue
			}
			r.row.TraitsChanged()
		}
	}
	l.scrollBy(0)
}

// scrollBy moves the viewport by delta lines and hides revealed rows when it moved
func (l *List) scrollBy(delta int) {
	next := l.offset + delta
	if limit := l.contentLines() - l.viewport; next > limit {
		next = limit
	}
	if next < 0 {
		next = 0
	}
	if next == l.offset {
		return
	}
	l.offset = next
	l.registry.HideAll()
}

func (l *List) ensureVisible(i int) {
	if i < 0 || i >= len(l.rows) || l.viewport <= 0 {
		return
	}
	top := l.rowTop(l.rows[i])
	switch {
	case top < l.offset:
		l.scrollBy(top - l.offset)
	case top+RowLines > l.offset+l.viewport:
		l.scrollBy(top + RowLines - l.offset - l.viewport)
	}
}

func (l *List) contentLines() int {
	n := 0
	for _, r := range l.rows {
		n += r.lines()
	}
	return n
}

func (l *List) rowTop(host *rowView) int {
	top := 0
	for _, r := range l.rows {
		if r == host {
			break
		}
		top += r.lines()
	}
	return top
}

// rowAt returns the row covering content line y
func (l *List) rowAt(y float64) *rowView {
	top := 0.0
	for _, r := range l.rows {
		h := float64(r.lines())
		if y >= top && y < top+h {
			return r
		}
		top += h
	}
	return nil
}

func (l *List) indexOf(host *rowView) int {
	for i, r := range l.rows {
		if r == host {
			return i
		}
	}
	return -1
}

func (l *List) hostFor(row *swipe.Row) *rowView {
	for _, r := range l.rows {
		if r.row == row {
			return r
		}
	}
	return nil
}

func (l *List) hostByID(id string) *rowView {
	for _, r := range l.rows {
		if r.message.ID == id {
			return r
		}
	}
	return nil
}

func (l *List) dropRow(host *rowView) {
	selected := l.Selected()
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
	if selected != host.message.ID {
		l.selectID(selected)
	}
	l.clampCursor()
	l.scrollBy(0)
	l.changed()
}

func (l *List) changed() {
	if l.OnChanged != nil {
		l.OnChanged()
	}
}

func (l *List) onUpdated(msg mailbox.Message) {
	if host := l.hostByID(msg.ID); host != nil {
		host.message = msg
	}
	l.changed()
}

// onRemoved drops the row now, or after its strip collapses when it is swiped open
func (l *List) onRemoved(id string) {
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

// cellOptions converts point based strip lengths into cells. Ratios stay as they are.
func cellOptions(o model.Options) model.Options {
	o.MinimumButtonWidth = cells(o.MinimumButtonWidth, model.DefaultMinimumButtonWidth)
	o.MaximumButtonWidth = cells(o.MaximumButtonWidth, 0)
	o.ButtonPadding = cells(o.ButtonPadding, 0)

	if o.ExpansionStyle != nil {
		style := *o.ExpansionStyle
		if style.Target.Kind == model.TargetEdgeInset {
			style.Target.Value /= pointsPerCell
		}
		triggers := make([]model.ExpansionTrigger, len(style.AdditionalTriggers))
		for i, trigger := range style.AdditionalTriggers {
			if trigger.Kind == model.TriggerOverscroll {
				trigger.Value /= pointsPerCell
			}
			triggers[i] = trigger
		}
		style.AdditionalTriggers = triggers
		style.MinimumTargetOverscroll /= pointsPerCell
		o.ExpansionStyle = &style
	}
	return o
}

func cells(points, fallback float64) float64 {
	if points <= 0 {
		points = fallback
	}
	return points / pointsPerCell
}

// swipe.Surface

func (l *List) CanBeginEditing(_ *swipe.Row, _ model.Orientation) bool {
	return !l.editing
}

func (l *List) EditActions(row *swipe.Row, o model.Orientation) []*model.Action {
	host := l.hostFor(row)
	if host == nil {
		return nil
	}
	return l.actions.For(host.message, o)
}

func (l *List) EditActionsOptions(_ *swipe.Row, o model.Orientation) model.Options {
	if l.options == nil {
		return cellOptions(model.DefaultOptions())
	}
	return cellOptions(l.options(o))
}

func (l *List) WillBeginEditing(row *swipe.Row, _ model.Orientation) {
	l.savedSelection = l.Selected()
	if host := l.hostFor(row); host != nil {
		l.cursor = l.indexOf(host)
	}
}

func (l *List) DidEndEditing(_ *swipe.Row, _ model.Orientation) {
	if l.savedSelection != "" {
		l.selectID(l.savedSelection)
	}
	l.savedSelection = ""
}

func (l *List) DidDeleteRow(row *swipe.Row, _ int) {
	host := l.hostFor(row)
	if host == nil {
		return
	}
	host.pendingRemoval = true
	l.actions.Delete(host.message.ID)
}

func (l *List) VisibleRect() (model.Rect, bool) {
	if l.viewport <= 0 {
		return model.Rect{}, false
	}
	return model.Rect{Y: float64(l.offset), Width: l.width, Height: float64(l.viewport)}, true
}

func (l *List) Bounds() model.Rect {
	return model.Rect{Width: l.width, Height: float64(l.contentLines())}
}

// DidReset implements swipe.ResetObserver
func (l *List) DidReset(row *swipe.Row) {
	if host := l.hostFor(row); host != nil && host.pendingRemoval {
		l.dropRow(host)
	}
}

var (
	_ swipe.Surface       = (*List)(nil)
	_ swipe.ResetObserver = (*List)(nil)
)
