package model

import "math"

// Expansion defaults
const (
	DefaultMinimumTargetOverscroll    = 20.0
	DefaultTargetOverscrollElasticity = 0.2
)

// TargetKind selects how the full-expansion offset is derived from the row width
type TargetKind int

const (
	// TargetPercentage expands at width * value
	TargetPercentage TargetKind = iota
	// TargetEdgeInset expands at width - value
	TargetEdgeInset
)

// ExpansionTarget is the distance at which the strip counts as fully expanded
type ExpansionTarget struct {
	Kind  TargetKind
	Value float64
}

// Offset resolves the target for a row of the given width
func (t ExpansionTarget) Offset(width float64) float64 {
	switch t.Kind {
	case TargetEdgeInset:
		return width - t.Value
	default:
		return width * t.Value
	}
}

// TriggerKind names an additional expansion condition
type TriggerKind int

const (
	// TriggerTouchThreshold fires when the touch passes a ratio of the reference width
	TriggerTouchThreshold TriggerKind = iota
	// TriggerOverscroll fires when the row is dragged past the strip by Value
	TriggerOverscroll
)

// ExpansionTrigger is an extra condition that expands before the target is reached
type ExpansionTrigger struct {
	Kind  TriggerKind
	Value float64
}

// FillTiming places the action handler relative to the fill slide
type FillTiming string

const (
	FillBefore FillTiming = "before"
	FillWith   FillTiming = "with"
	FillAfter  FillTiming = "after"
)

// FillOptions configures the two-phase fill sequence
type FillOptions struct {
	// AutoFulfillment, when set, fulfills the action right after its handler
	AutoFulfillment *FulfillmentStyle
	Timing          FillTiming
}

// Automatic returns fill options that fulfill with style as soon as the handler ran
func Automatic(style FulfillmentStyle, timing FillTiming) FillOptions {
	return FillOptions{AutoFulfillment: &style, Timing: timing}
}

// Manual returns fill options where the handler must call Action.Fulfill itself
func Manual(timing FillTiming) FillOptions {
	return FillOptions{Timing: timing}
}

// CompletionKind is what happens after an expanded action commits
type CompletionKind int

const (
	CompletionBounce CompletionKind = iota
	CompletionFill
)

// CompletionAnimation pairs the completion kind with its fill options
type CompletionAnimation struct {
	Kind CompletionKind
	Fill FillOptions
}

// ExpansionStyle configures full-width expansion for one orientation
type ExpansionStyle struct {
	Target             ExpansionTarget
	AdditionalTriggers []ExpansionTrigger
	// ElasticOverscroll lets the strip keep stretching past the target
	ElasticOverscroll   bool
	CompletionAnimation CompletionAnimation

	MinimumTargetOverscroll    float64
	TargetOverscrollElasticity float64
}

// NewExpansionStyle creates a style with the default overscroll constants
func NewExpansionStyle(target ExpansionTarget, triggers []ExpansionTrigger, elastic bool, completion CompletionAnimation) *ExpansionStyle {
	return &ExpansionStyle{
		Target:                     target,
		AdditionalTriggers:         triggers,
		ElasticOverscroll:          elastic,
		CompletionAnimation:        completion,
		MinimumTargetOverscroll:    DefaultMinimumTargetOverscroll,
		TargetOverscrollElasticity: DefaultTargetOverscrollElasticity,
	}
}

// SelectionExpansion expands at half the row width and bounces back
func SelectionExpansion() *ExpansionStyle {
	return NewExpansionStyle(ExpansionTarget{Kind: TargetPercentage, Value: 0.5}, nil, true,
		CompletionAnimation{Kind: CompletionBounce})
}

// DestructiveExpansion deletes the row, invoking the handler with the slide
func DestructiveExpansion() *ExpansionStyle {
	return destructive(FillWith)
}

// DestructiveAfterFillExpansion deletes the row, invoking the handler after the slide
func DestructiveAfterFillExpansion() *ExpansionStyle {
	return destructive(FillAfter)
}

// FillExpansion fills the row and waits for the handler to fulfill manually
func FillExpansion() *ExpansionStyle {
	return NewExpansionStyle(ExpansionTarget{Kind: TargetEdgeInset, Value: 30},
		[]ExpansionTrigger{{Kind: TriggerOverscroll, Value: 30}}, false,
		CompletionAnimation{Kind: CompletionFill, Fill: Manual(FillAfter)})
}

func destructive(timing FillTiming) *ExpansionStyle {
	return NewExpansionStyle(ExpansionTarget{Kind: TargetEdgeInset, Value: 30},
		[]ExpansionTrigger{{Kind: TriggerOverscroll, Value: 30}}, false,
		CompletionAnimation{Kind: CompletionFill, Fill: Automatic(FulfillmentDelete, timing)})
}

// TargetOffset is the absolute distance representing 100% expansion.
// It never falls below the strip width plus the minimum overscroll.
func (e *ExpansionStyle) TargetOffset(rowWidth, preferredWidth float64) float64 {
	return math.Max(preferredWidth+e.MinimumTargetOverscroll, e.Target.Offset(rowWidth))
}

// IsFill reports whether a committed expansion runs the fill sequence
func (e *ExpansionStyle) IsFill() bool {
	return e.CompletionAnimation.Kind == CompletionFill
}
