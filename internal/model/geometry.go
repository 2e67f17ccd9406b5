package model

import "math"

// Point is a position or a 2D vector in surface units
type Point struct {
	X, Y float64
}

// Size is a width/height pair
type Size struct {
	Width, Height float64
}

// Insets are edge distances applied inside a rectangle
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Rect is an axis aligned rectangle with origin at its top-left corner
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect builds a rect from origin and size
func NewRect(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MidX() float64 { return r.X + r.Width/2 }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.Height }
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// Origin returns the top-left corner
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rect dimensions
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rect covers no area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rect (max edges exclusive)
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Intersect returns the overlap of two rects; ok is false when they do not overlap
func (r Rect) Intersect(other Rect) (Rect, bool) {
	minX := math.Max(r.MinX(), other.MinX())
	minY := math.Max(r.MinY(), other.MinY())
	maxX := math.Min(r.MaxX(), other.MaxX())
	maxY := math.Min(r.MaxY(), other.MaxY())
	if maxX <= minX || maxY <= minY {
		return Rect{}, false
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// Offset returns the rect moved by dx, dy
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// VerticalInsets returns the insets of the part of r that falls outside visible.
// Rows entirely outside the visible area get zero insets.
func (r Rect) VerticalInsets(visible Rect) Insets {
	overlap, ok := r.Intersect(visible)
	if !ok {
		return Insets{}
	}
	top := 0.0
	if overlap.MinY() > r.MinY() {
		top = math.Max(0, overlap.MinY()-r.MinY())
	}
	bottom := math.Max(0, r.Height-overlap.Height-top)
	return Insets{Top: top, Bottom: bottom}
}
