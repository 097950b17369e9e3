package entity

import "math"

// Vec is a 2D vector in map-space pixels.
type Vec struct {
	X, Y float64
}

// Len returns the vector magnitude.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned rectangle in map-space pixels.
// X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether two rects intersect with positive area.
// Rects that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// OutsideOf reports whether r lies entirely outside bounds.
func (r Rect) OutsideOf(bounds Rect) bool {
	return r.Right() < bounds.Left() ||
		r.Left() > bounds.Right() ||
		r.Bottom() < bounds.Top() ||
		r.Top() > bounds.Bottom()
}

// Translate moves the rect by (dx, dy).
func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// SetBottom moves the rect vertically so its bottom edge sits at y.
func (r *Rect) SetBottom(y float64) {
	r.Y = y - r.H
}

// SetCenter moves the rect so its centre is at (cx, cy).
func (r *Rect) SetCenter(cx, cy float64) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}
