package model

// Orientation is the edge actions are revealed from
type Orientation int

const (
	// OrientationLeft reveals actions on the left edge; the row moves towards +x
	OrientationLeft Orientation = iota
	// OrientationRight reveals actions on the right edge; the row moves towards -x
	OrientationRight
)

// String returns the string representation of the orientation
func (o Orientation) String() string {
	switch o {
	case OrientationLeft:
		return "left"
	case OrientationRight:
		return "right"
	default:
		return "unknown"
	}
}

// Scale is the direction the content moves to reveal the strip, as a factor
// of a center offset: -1 for left (content moves right, center = midX + w),
// +1 for right (content moves left, center = midX - w). It is the negation of
// the edge sign where left is +1.
func (o Orientation) Scale() float64 {
	if o == OrientationLeft {
		return -1
	}
	return 1
}

// Opposite returns the other edge
func (o Orientation) Opposite() Orientation {
	if o == OrientationLeft {
		return OrientationRight
	}
	return OrientationLeft
}

// OrientationForVelocity picks the edge a drag reveals from its horizontal velocity.
// A drag towards +x reveals the left edge.
func OrientationForVelocity(vx float64) Orientation {
	if vx > 0 {
		return OrientationLeft
	}
	return OrientationRight
}

// OrientationForOffset picks the edge revealed by a signed content offset
func OrientationForOffset(offset float64) Orientation {
	return OrientationForVelocity(offset)
}
