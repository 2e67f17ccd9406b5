package swipe

import (
	"github.com/ytget/swipecell/internal/gesture"
	"github.com/ytget/swipecell/internal/model"
)

// HostElement is the row view a coordinator moves. Coordinates are in the
// row's own space unless noted.
type HostElement interface {
	// Bounds is the row rectangle in its own coordinates
	Bounds() model.Rect
	// Frame is the row rectangle in surface coordinates
	Frame() model.Rect
	// CenterX is the horizontal center of the moving content; Bounds().MidX() at rest
	CenterX() float64
	SetCenterX(x float64)
	// SetMask clips the content to mask; nil removes the clip
	SetMask(mask Mask)
	LayoutIfNeeded()
}

// ContainerHost is implemented by hosts whose moving container is not the row view
type ContainerHost interface {
	ContainerFrame() model.Rect
}

// Surface is the list that owns the rows and supplies their actions
type Surface interface {
	CanBeginEditing(row *Row, orientation model.Orientation) bool
	EditActions(row *Row, orientation model.Orientation) []*model.Action
	EditActionsOptions(row *Row, orientation model.Orientation) model.Options
	WillBeginEditing(row *Row, orientation model.Orientation)
	DidEndEditing(row *Row, orientation model.Orientation)
	DidDeleteRow(row *Row, index int)
	// VisibleRect is the viewport in surface coordinates, if known
	VisibleRect() (model.Rect, bool)
	// Bounds is the surface rectangle used by touch threshold triggers
	Bounds() model.Rect
}

// ResetObserver is implemented by surfaces that need to know when a row is torn down
type ResetObserver interface {
	DidReset(row *Row)
}

// Mask is a clip applied to the row while it collapses after a delete
type Mask interface {
	Height() float64
	SetHeight(height float64)
}

// Presentation is the strip of action buttons owned by a row
type Presentation interface {
	Orientation() model.Orientation
	Options() model.Options
	PreferredWidth() float64
	MinimumButtonWidth() float64
	Expanded() bool
	SetExpanded(expanded bool)
	ExpandableAction() *model.Action
	// SetVisibleWidth tells the strip how much of it is uncovered
	SetVisibleWidth(width float64)
	SetAlpha(alpha float64)
	CreateDeletionMask() Mask
	// Remove detaches the strip from the row view
	Remove()
}

// StripConfig is everything a PresentationFactory needs to build a strip
type StripConfig struct {
	Row           *Row
	Actions       []*model.Action
	Options       model.Options
	Orientation   model.Orientation
	MaxSize       model.Size
	ContentInsets model.Insets
}

// PresentationFactory builds the strip for a row; buttons call Row.Perform
type PresentationFactory func(cfg StripConfig) Presentation

// Haptics plays the expansion feedback
type Haptics interface {
	ExpansionFeedback()
}

// Pan is a pan gesture as seen by the coordinator. *gesture.Tracker implements it.
type Pan interface {
	Phase() gesture.Phase
	Translation() model.Point
	SetTranslation(translation model.Point)
	Velocity() model.Point
	// Location is the touch point in surface coordinates
	Location() model.Point
}

// panEvent freezes a pan at the moment it was posted so queued handling sees
// the phase that was delivered
type panEvent struct {
	phase       gesture.Phase
	translation model.Point
	velocity    model.Point
	location    model.Point
	source      Pan
}

func snapshot(p Pan) *panEvent {
	return &panEvent{
		phase:       p.Phase(),
		translation: p.Translation(),
		velocity:    p.Velocity(),
		location:    p.Location(),
		source:      p,
	}
}

func (e *panEvent) Phase() gesture.Phase     { return e.phase }
func (e *panEvent) Translation() model.Point { return e.translation }
func (e *panEvent) Velocity() model.Point    { return e.velocity }
func (e *panEvent) Location() model.Point    { return e.location }

func (e *panEvent) SetTranslation(translation model.Point) {
	e.translation = translation
	e.source.SetTranslation(translation)
}
