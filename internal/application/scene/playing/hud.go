package playing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	barEaseSeconds  = 0.25
	captionFadeSecs = 1.0
)

// easedValue follows a target with a short tween so HUD bars slide
// instead of jumping.
type easedValue struct {
	tween  *gween.Tween
	value  float32
	target float32
}

func newEasedValue(v float32) *easedValue {
	return &easedValue{value: v, target: v}
}

// Set starts easing toward target. Repeating the current target is a no-op.
func (e *easedValue) Set(target float32) {
	if target == e.target {
		return
	}
	e.target = target
	e.tween = gween.New(e.value, target, barEaseSeconds, ease.OutQuad)
}

// Snap jumps straight to v.
func (e *easedValue) Snap(v float32) {
	e.value, e.target, e.tween = v, v, nil
}

func (e *easedValue) Update(dt float32) float32 {
	if e.tween == nil {
		return e.value
	}
	v, done := e.tween.Update(dt)
	e.value = v
	if done {
		e.value = e.target
		e.tween = nil
	}
	return e.value
}

func (e *easedValue) Value() float32 { return e.value }

// fade runs the caption alpha from 0 to 1 after each level change.
type fade struct {
	tween *gween.Tween
	alpha float32
}

func (f *fade) Restart() {
	f.alpha = 0
	f.tween = gween.New(0, 1, captionFadeSecs, ease.Linear)
}

func (f *fade) Update(dt float32) float32 {
	if f.tween == nil {
		return f.alpha
	}
	v, done := f.tween.Update(dt)
	f.alpha = v
	if done {
		f.alpha = 1
		f.tween = nil
	}
	return f.alpha
}
