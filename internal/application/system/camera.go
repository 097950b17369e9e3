package system

import "github.com/younwookim/guytribute/internal/domain/entity"

// Camera returns the view's top-left corner: centred on focus, clamped so the
// view never leaves the map.
func Camera(focus entity.Rect, viewW, viewH float64, bounds entity.Rect) (x, y float64) {
	x = clampFloat(focus.CenterX()-viewW/2, bounds.Left(), bounds.Right()-viewW)
	y = clampFloat(focus.CenterY()-viewH/2, bounds.Top(), bounds.Bottom()-viewH)
	return x, y
}

func clampFloat(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
