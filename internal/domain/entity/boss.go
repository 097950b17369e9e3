package entity

import (
	"math"
	"math/rand"
)

// BossStats tunes a boss. Intervals are in ticks and indexed by phase-1.
type BossStats struct {
	MaxHealth       int
	MaxSpeed        float64
	MoveTicks       int
	AttackIntervals [3]int
	BoltSpeed       float64
	BoltSize        float64
	BoltDamage      int
}

// DefaultBossStats returns the stock boss tuning.
func DefaultBossStats() BossStats {
	return BossStats{
		MaxHealth:       100,
		MaxSpeed:        2,
		MoveTicks:       60,
		AttackIntervals: [3]int{120, 90, 60},
		BoltSpeed:       6,
		BoltSize:        20,
		BoltDamage:      10,
	}
}

// Boss wanders the map and fires bolt patterns that intensify as it loses health.
// Phase only ever increases: 1 at full health, 2 below 50%, 3 below 25%.
type Boss struct {
	Rect
	Vel         Vec
	Health      int
	Phase       int
	AttackTimer int
	MoveTimer   int
	Stats       BossStats
	Image       string

	removed bool
}

// NewBoss creates a boss at full health with a random initial velocity.
func NewBoss(r Rect, stats BossStats, image string, rng *rand.Rand) *Boss {
	b := &Boss{
		Rect:   r,
		Health: stats.MaxHealth,
		Phase:  1,
		Stats:  stats,
		Image:  image,
	}
	b.rollVelocity(rng)
	return b
}

func (b *Boss) Bounds() Rect  { return b.Rect }
func (b *Boss) Removed() bool { return b.removed }
func (b *Boss) Remove()       { b.removed = true }
func (*Boss) isObstacle()     {}

// Alive returns true while the boss has health left and is still in the level
func (b *Boss) Alive() bool {
	return !b.removed && b.Health > 0
}

// HealthFraction returns health / max health in [0, 1].
func (b *Boss) HealthFraction() float64 {
	if b.Stats.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.Stats.MaxHealth)
}

func (b *Boss) rollVelocity(rng *rand.Rand) {
	s := b.Stats.MaxSpeed
	b.Vel = Vec{
		X: (rng.Float64()*2 - 1) * s,
		Y: (rng.Float64()*2 - 1) * s,
	}
}

// Move re-rolls velocity every MoveTicks, then moves and stays inside bounds.
func (b *Boss) Move(rng *rand.Rand, bounds Rect) {
	b.MoveTimer++
	if b.MoveTimer >= b.Stats.MoveTicks {
		b.rollVelocity(rng)
		b.MoveTimer = 0
	}

	b.Translate(b.Vel.X, b.Vel.Y)

	if b.Left() < bounds.Left() {
		b.X = bounds.Left()
		b.Vel.X = math.Abs(b.Vel.X)
	} else if b.Right() > bounds.Right() {
		b.X = bounds.Right() - b.W
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if b.Top() < bounds.Top() {
		b.Y = bounds.Top()
		b.Vel.Y = math.Abs(b.Vel.Y)
	} else if b.Bottom() > bounds.Bottom() {
		b.Y = bounds.Bottom() - b.H
		b.Vel.Y = -math.Abs(b.Vel.Y)
	}
}

// TakeHit subtracts damage and advances the phase on threshold crossings.
func (b *Boss) TakeHit(damage int) bool {
	b.Health -= damage
	if b.Health < 0 {
		b.Health = 0
	}

	frac := b.HealthFraction()
	if frac < 0.25 && b.Phase < 3 {
		b.Phase = 3
	} else if frac < 0.5 && b.Phase < 2 {
		b.Phase = 2
	}

	return b.Health <= 0
}

// AttackInterval returns the ticks between attacks in the current phase.
func (b *Boss) AttackInterval() int {
	i := b.Phase - 1
	if i < 0 {
		i = 0
	}
	if i > 2 {
		i = 2
	}
	return b.Stats.AttackIntervals[i]
}

// Attack fires the phase pattern once the attack timer reaches the phase interval.
func (b *Boss) Attack() []*Projectile {
	b.AttackTimer++
	if b.AttackTimer < b.AttackInterval() {
		return nil
	}
	b.AttackTimer = 0

	s := b.Stats.BoltSpeed
	switch b.Phase {
	case 1:
		return []*Projectile{b.bolt(b.CenterX(), b.Bottom(), 0, s)}
	case 2:
		d := s * math.Cos(math.Pi/4)
		return []*Projectile{
			b.bolt(b.CenterX(), b.Bottom(), d, d),
			b.bolt(b.CenterX(), b.Bottom(), -d, d),
		}
	default:
		const count = 12
		shots := make([]*Projectile, 0, count)
		for k := 0; k < count; k++ {
			angle := 2 * math.Pi / count * float64(k)
			shots = append(shots, b.bolt(b.CenterX(), b.CenterY(), s*math.Cos(angle), s*math.Sin(angle)))
		}
		return shots
	}
}

func (b *Boss) bolt(cx, cy, vx, vy float64) *Projectile {
	size := b.Stats.BoltSize
	p := NewProjectile(Rect{W: size, H: size}, vx, vy, OwnerBoss, b.Stats.BoltDamage)
	p.SetCenter(cx, cy)
	return p
}
