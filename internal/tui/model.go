package tui

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/swipecell/internal/gesture"
	"github.com/ytget/swipecell/internal/i18n"
	"github.com/ytget/swipecell/internal/logging"
	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/model"
	"github.com/ytget/swipecell/internal/platform"
	"github.com/ytget/swipecell/internal/swipe"
)

// Layout and gesture thresholds
const (
	headerLines = 1
	footerLines = 1

	tapSlop           = 1.0
	longPressDuration = 500 * time.Millisecond
	statusAutoHide    = 3 * time.Second
)

// Config wires a Model
type Config struct {
	Mailbox      mailbox.Mailbox
	Localization *i18n.Localization
	// Options returns the strip options per side in points; nil uses defaults
	Options func(o model.Orientation) model.Options
	// Speed scales animation playback; 0 applies transitions at once
	Speed   float64
	Haptics bool
	// Reseed restores the sample inbox; nil disables the key
	Reseed func() error
	// Clock is time.Now unless a test pins it
	Clock  func() time.Time
	Logger *slog.Logger
}

// pointer is a mouse press being tracked
type pointer struct {
	target     *rowView
	start      model.Point
	startAt    time.Time
	lastY      int
	moved      bool
	tracking   bool
	forwarding bool
}

// Model is the bubbletea model of the swipe demo
type Model struct {
	list     *List
	loc      *i18n.Localization
	animator *TickAnimator
	haptics  *Haptics
	reseed   func() error
	clock    func() time.Time
	logger   *slog.Logger

	tracker *gesture.Tracker
	press   *pointer

	width, height int
	ticking       bool
	flash         int
	status        string
	// statusSeq ties a hide timer to the status it was started for
	statusSeq   int
	statusTimer bool
}

type clearStatusMsg int

// TouchMsg is a touchscreen sample mapped to terminal cells
type TouchMsg platform.Sample

// New creates the model and loads the mailbox
func New(cfg Config) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Logger()
	}
	loc := cfg.Localization
	if loc == nil {
		loc = i18n.New()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	m := &Model{
		loc:     loc,
		haptics: NewHaptics(cfg.Haptics),
		reseed:  cfg.Reseed,
		clock:   clock,
		logger:  logger.With("component", "tui"),
		tracker: gesture.NewTracker(),
		width:   defaultWidth,
	}

	var animator swipe.Animator
	if cfg.Speed > 0 {
		m.animator = NewTickAnimator(cfg.Speed)
		animator = m.animator
	}
	m.list = newList(listConfig{
		Mailbox:      cfg.Mailbox,
		Localization: loc,
		Options:      cfg.Options,
		Animator:     animator,
		Haptics:      m.haptics,
		Logger:       m.logger,
	})
	m.list.OnNotify = m.notify
	return m
}

// List returns the row surface
func (m *Model) List() *List {
	return m.list
}

// Haptics returns the expansion feedback sink
func (m *Model) Haptics() *Haptics {
	return m.haptics
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, m.viewport())

	case frameMsg:
		m.ticking = false
		now := time.Time(msg)
		if m.animator != nil {
			m.animator.Advance(now)
		}
		if m.flash > 0 {
			m.flash--
		}

	case clearStatusMsg:
		if int(msg) == m.statusSeq {
			m.status = ""
		}

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case TouchMsg:
		m.handleMouse(touchMouse(platform.Sample(msg)))
	}

	if m.haptics.take() {
		m.flash = flashFrames
	}
	return m, tea.Batch(m.scheduleFrame(), m.scheduleStatusClear())
}

func (m *Model) scheduleStatusClear() tea.Cmd {
	if !m.statusTimer {
		return nil
	}
	m.statusTimer = false
	seq := m.statusSeq
	return tea.Tick(statusAutoHide, func(time.Time) tea.Msg {
		return clearStatusMsg(seq)
	})
}

// scheduleFrame keeps one frame tick in flight while anything moves
func (m *Model) scheduleFrame() tea.Cmd {
	if m.ticking {
		return nil
	}
	animating := m.animator != nil && m.animator.Running()
	if !animating && m.flash == 0 {
		return nil
	}
	m.ticking = true
	return frameTick()
}

func (m *Model) viewport() int {
	return max(0, m.height-headerLines-footerLines)
}

func (m *Model) notify(text string) {
	m.status = text
	m.statusSeq++
	m.statusTimer = true
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "up", "k":
		m.list.MoveCursor(-1)
	case "down", "j":
		m.list.MoveCursor(1)
	case "left", "h":
		m.toggleSide(model.OrientationRight)
	case "right", "l":
		m.toggleSide(model.OrientationLeft)
	case "esc":
		m.list.Registry().HideAll()
	case "enter":
		m.performAt(0)
	case "e":
		m.list.SetEditing(!m.list.IsEditing())
	case "r":
		m.onReseed()
	default:
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= 9 {
			m.performAt(n - 1)
		}
	}
	return nil
}

// toggleSide reveals side o of the selected row, or hides the opposite side when it is open
func (m *Model) toggleSide(o model.Orientation) {
	i := m.list.Cursor()
	if i < 0 {
		return
	}
	row := m.list.Row(i)
	opposite := model.StateLeft
	if o == model.OrientationLeft {
		opposite = model.StateRight
	}
	if row.State() == opposite {
		row.Hide(true, nil)
		return
	}
	row.Show(o, true, nil)
}

// performAt triggers action i of the selected row's revealed strip
func (m *Model) performAt(i int) {
	index := m.list.Cursor()
	if index < 0 {
		return
	}
	host := m.list.rows[index]
	if host.strip == nil || !host.row.State().IsRevealed() {
		return
	}
	if action := host.strip.Action(i); action != nil {
		host.row.Perform(action)
	}
}

func (m *Model) onReseed() {
	if m.reseed == nil {
		return
	}
	if err := m.reseed(); err != nil {
		m.logger.Error("failed to reseed mailbox", "error", err)
		m.notify(m.loc.GetText(i18n.KeyError) + ": " + err.Error())
		return
	}
	if err := m.list.mailbox.Reload(); err != nil {
		m.logger.Error("failed to reload mailbox", "error", err)
	}
	m.list.Reload()
}

// surfacePoint maps a terminal cell into list content coordinates
func (m *Model) surfacePoint(x, y int) (model.Point, bool) {
	line := y - headerLines
	if line < 0 || line >= m.viewport() {
		return model.Point{}, false
	}
	return model.Point{X: float64(x), Y: float64(line + m.list.offset)}, true
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	now := m.clock()

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.list.scrollBy(-1)
			return
		case tea.MouseButtonWheelDown:
			m.list.scrollBy(1)
			return
		case tea.MouseButtonLeft:
			p, ok := m.surfacePoint(msg.X, msg.Y)
			if !ok {
				m.press = nil
				return
			}
			m.press = &pointer{
				target:  m.list.rowAt(p.Y),
				start:   p,
				startAt: now,
				lastY:   msg.Y,
			}
		}
		return
	}

	press := m.press
	if press == nil {
		return
	}
	p := model.Point{X: float64(msg.X), Y: float64(msg.Y - headerLines + m.list.offset)}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.dragTo(press, p, msg.Y, now)
	case tea.MouseActionRelease:
		m.press = nil
		switch {
		case press.tracking:
			m.tracker.End(now)
			press.target.row.HandlePan(m.tracker)
		case press.moved:
			// a forwarded scroll is not a tap
		case now.Sub(press.startAt) < longPressDuration:
			m.tap(press.target, press.start)
		}
	}
}

// touchMouse replays a touch sample as a left button mouse event
func touchMouse(s platform.Sample) tea.MouseMsg {
	msg := tea.MouseMsg{
		X:      int(math.Round(s.Point.X)),
		Y:      int(math.Round(s.Point.Y)),
		Button: tea.MouseButtonLeft,
	}
	switch s.Kind {
	case platform.SampleDown:
		msg.Action = tea.MouseActionPress
	case platform.SampleMove:
		msg.Action = tea.MouseActionMotion
	default:
		msg.Action = tea.MouseActionRelease
		msg.Button = tea.MouseButtonNone
	}
	return msg
}

func (m *Model) dragTo(press *pointer, p model.Point, y int, now time.Time) {
	if press.target == nil {
		return
	}
	if press.forwarding {
		m.list.scrollBy(press.lastY - y)
		press.lastY = y
		return
	}
	if !press.moved {
		if math.Hypot(p.X-press.start.X, p.Y-press.start.Y) < tapSlop {
			return
		}
		press.moved = true

		startAt := press.startAt
		if !now.After(startAt) {
			startAt = now.Add(-FrameInterval)
		}
		m.tracker.Start(press.start, startAt)
		m.tracker.Move(p, now)
		if !press.target.row.ShouldBeginPan(m.tracker) {
			m.tracker.Fail()
			press.forwarding = true
			m.list.scrollBy(press.lastY - y)
			press.lastY = y
			return
		}
		press.tracking = true
		press.target.row.HandlePan(m.tracker)
		return
	}

	m.tracker.Move(p, now)
	press.target.row.HandlePan(m.tracker)
}

func (m *Model) tap(target *rowView, p model.Point) {
	if m.list.registry.InterceptTouch(p) {
		return
	}
	if target == nil {
		return
	}
	if target.row.State().IsActive() {
		target.row.HandleTap()
		return
	}
	if i := m.list.indexOf(target); i >= 0 {
		m.list.cursor = i
	}
}

var _ tea.Model = (*Model)(nil)
