package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/swipecell/internal/platform"
)

// TouchRouter turns raw touchscreen samples into drags and taps on the rows
// of a list.
type TouchRouter struct {
	list *SwipeList

	// Origin maps a screen point into list coordinates; nil uses the point as is
	Origin func(p fyne.Position) fyne.Position

	target   *SwipeRow
	start    fyne.Position
	last     fyne.Position
	startAt  time.Time
	dragging bool

	// Gesture thresholds
	tapSlop           float32
	longPressDuration time.Duration
}

// NewTouchRouter creates a router for list
func NewTouchRouter(list *SwipeList) *TouchRouter {
	return &TouchRouter{
		list:              list,
		tapSlop:           DefaultTapSlop,
		longPressDuration: DefaultLongPressDuration,
	}
}

// Handle routes one sample. It must run on the UI goroutine.
func (t *TouchRouter) Handle(s platform.Sample) {
	p := fyne.NewPos(float32(s.Point.X), float32(s.Point.Y))
	if t.Origin != nil {
		p = t.Origin(p)
	}

	switch s.Kind {
	case platform.SampleDown:
		t.target = t.list.RowAt(t.list.ContentPosition(p))
		t.start, t.last = p, p
		t.startAt = s.At
		t.dragging = false
	case platform.SampleMove:
		if t.target == nil {
			return
		}
		if !t.dragging && distance(p, t.start) < t.tapSlop {
			return
		}
		t.dragging = true
		t.target.dragAt(&fyne.DragEvent{
			PointEvent: fyne.PointEvent{Position: t.rowPosition(t.target, p), AbsolutePosition: p},
			Dragged:    fyne.NewDelta(p.X-t.last.X, p.Y-t.last.Y),
		}, s.At)
		t.last = p
	case platform.SampleUp:
		target := t.target
		t.target = nil
		if target == nil {
			return
		}
		if t.dragging {
			target.dragEndAt(s.At)
			return
		}
		// long presses are not taps
		if s.At.Sub(t.startAt) < t.longPressDuration {
			target.Tapped(&fyne.PointEvent{Position: t.rowPosition(target, p), AbsolutePosition: p})
		}
	}
}

func (t *TouchRouter) rowPosition(row *SwipeRow, p fyne.Position) fyne.Position {
	return t.list.ContentPosition(p).Subtract(row.Position())
}

func distance(a, b fyne.Position) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return float32(math.Hypot(dx, dy))
}
