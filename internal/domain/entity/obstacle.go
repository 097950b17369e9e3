package entity

import (
	"math"
	"math/rand"
)

// Obstacle is anything that hurts the player on contact.
// Variants: *Patroller, *SmallBoss, *Boss.
type Obstacle interface {
	Bounds() Rect
	Removed() bool
	Remove()
	isObstacle()
}

// Patroller moves back and forth along one axis and is destroyed by a single spell.
// A dynamic patroller re-rolls its speed every RerollTicks.
type Patroller struct {
	Rect
	Speed       float64
	Dynamic     bool
	Timer       int
	RerollTicks int
	Image       string

	vertical bool
	removed  bool
}

// NewPatroller creates a patroller. The axis is fixed for its lifetime.
func NewPatroller(r Rect, speed float64, vertical, dynamic bool, image string) *Patroller {
	return &Patroller{
		Rect:        r,
		Speed:       speed,
		Dynamic:     dynamic,
		RerollTicks: 60,
		Image:       image,
		vertical:    vertical,
	}
}

func (p *Patroller) Bounds() Rect  { return p.Rect }
func (p *Patroller) Removed() bool { return p.removed }
func (p *Patroller) Remove()       { p.removed = true }
func (*Patroller) isObstacle()     {}

// Vertical reports whether the patroller moves along the y axis.
func (p *Patroller) Vertical() bool {
	return p.vertical
}

// TakeHit destroys the patroller regardless of damage.
func (p *Patroller) TakeHit(int) bool {
	p.removed = true
	return true
}

// Move advances one tick inside bounds.
func (p *Patroller) Move(rng *rand.Rand, bounds Rect) {
	if p.Dynamic {
		p.Timer++
		if p.Timer >= p.RerollTicks {
			p.Speed = RerollSpeed(rng, p.Speed)
			p.Timer = 0
		}
	}

	if p.vertical {
		p.Y += p.Speed
		p.Speed = bounce(p.Speed, p.Top(), p.Bottom(), bounds.Top(), bounds.Bottom())
		return
	}
	p.X += p.Speed
	p.Speed = bounce(p.Speed, p.Left(), p.Right(), bounds.Left(), bounds.Right())
}

// RerollSpeed scales |speed| by a factor in [0.5, 1.5) and picks a random sign.
func RerollSpeed(rng *rand.Rand, speed float64) float64 {
	multiplier := 0.5 + rng.Float64()
	if rng.Intn(2) == 0 {
		return -math.Abs(speed) * multiplier
	}
	return math.Abs(speed) * multiplier
}

// bounce points the speed back toward the interior once an edge is reached.
func bounce(speed, lo, hi, min, max float64) float64 {
	switch {
	case lo <= min && hi >= max:
		return -speed
	case lo <= min:
		return math.Abs(speed)
	case hi >= max:
		return -math.Abs(speed)
	}
	return speed
}

// SmallBoss is a patroller drawn with a boss sprite.
// It does not gate the level goal.
type SmallBoss struct {
	Patroller
}

func NewSmallBoss(r Rect, speed float64, vertical, dynamic bool, image string) *SmallBoss {
	return &SmallBoss{Patroller: *NewPatroller(r, speed, vertical, dynamic, image)}
}

// Mirrored reports whether the sprite should be flipped horizontally.
func (b *SmallBoss) Mirrored() bool {
	return !b.vertical && b.Speed < 0
}
