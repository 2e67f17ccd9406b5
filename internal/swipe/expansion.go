package swipe

import (
	"math"

	"github.com/ytget/swipecell/internal/model"
)

// ExpansionInput is the geometry an expansion decision is made from
type ExpansionInput struct {
	// Translation is the horizontal pan translation
	Translation float64
	// Displacement is the signed distance of the content from rest
	Displacement float64
	// Location is the touch point in surface coordinates
	Location model.Point

	RowFrame      model.Rect
	SurfaceBounds model.Rect
	// ReferenceFrame replaces SurfaceBounds for trigger checks when the moving
	// container differs from the row view
	ReferenceFrame *model.Rect

	PreferredWidth float64
	Orientation    model.Orientation
}

// TargetOffset is the distance from rest at which the strip is fully expanded
func TargetOffset(style *model.ExpansionStyle, in ExpansionInput) float64 {
	if style == nil {
		return in.PreferredWidth
	}
	return style.TargetOffset(in.RowFrame.Width, in.PreferredWidth)
}

// ShouldExpand decides whether the current drag expands the strip
func ShouldExpand(style *model.ExpansionStyle, in ExpansionInput) bool {
	if style == nil {
		return false
	}
	if math.Abs(in.Translation) <= style.MinimumTargetOverscroll {
		return false
	}

	delta := math.Floor(math.Abs(in.Displacement))
	if delta <= in.PreferredWidth {
		return false
	}
	if delta > TargetOffset(style, in) {
		return true
	}

	reference := in.SurfaceBounds
	if in.ReferenceFrame != nil {
		reference = *in.ReferenceFrame
	}

	for _, trigger := range style.AdditionalTriggers {
		switch trigger.Kind {
		case model.TriggerTouchThreshold:
			if reference.Width <= 0 {
				continue
			}
			location := in.Location.X - reference.X
			ratio := location / reference.Width
			if in.Orientation == model.OrientationRight {
				ratio = (reference.Width - location) / reference.Width
			}
			if ratio > trigger.Value {
				return true
			}
		case model.TriggerOverscroll:
			if math.Abs(in.Displacement) > in.PreferredWidth+trigger.Value {
				return true
			}
		}
	}
	return false
}
