package model

import "math"

// Strip sizing defaults
const (
	DefaultMinimumButtonWidth = 74.0
	DefaultButtonPadding      = 8.0
)

// Options configures the strip shown for one orientation of a row
type Options struct {
	// ExpansionStyle enables full-width expansion; nil disables it
	ExpansionStyle *ExpansionStyle

	// MinimumButtonWidth is the smallest width of every button, 0 means default
	MinimumButtonWidth float64
	// MaximumButtonWidth caps button width, 0 means unbounded
	MaximumButtonWidth float64
	ButtonPadding      float64
}

// DefaultOptions returns options without expansion
func DefaultOptions() Options {
	return Options{
		MinimumButtonWidth: DefaultMinimumButtonWidth,
		ButtonPadding:      DefaultButtonPadding,
	}
}

// ButtonWidth returns the uniform width of the buttons in a strip.
// intrinsic holds the natural width of each button's content.
func (o Options) ButtonWidth(intrinsic []float64) float64 {
	width := o.MinimumButtonWidth
	if width <= 0 {
		width = DefaultMinimumButtonWidth
	}
	for _, w := range intrinsic {
		width = math.Max(width, w+2*o.ButtonPadding)
	}
	if o.MaximumButtonWidth > 0 {
		width = math.Min(width, o.MaximumButtonWidth)
	}
	return width
}

// PreferredWidth returns the width of a fully revealed strip
func (o Options) PreferredWidth(intrinsic []float64) float64 {
	if len(intrinsic) == 0 {
		return 0
	}
	return o.ButtonWidth(intrinsic) * float64(len(intrinsic))
}

// ExpandableAction returns the action that expands, or nil without an expansion style.
// It is the first action, laid out at the outer edge of the strip.
func (o Options) ExpandableAction(actions []*Action) *Action {
	if o.ExpansionStyle == nil || len(actions) == 0 {
		return nil
	}
	return actions[0]
}
