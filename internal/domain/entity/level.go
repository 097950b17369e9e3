package entity

import "math/rand"

// Level is one playable stage built from configuration.
type Level struct {
	Name            string
	Background      string // image path
	BackgroundColor string
	Caption         string
	Spawn           Vec

	Platforms []Platform
	Obstacles []Obstacle
	Pickups   []*Pickup

	Goal      Rect
	GoalImage string
}

// Update advances platforms and obstacles one tick and returns bolts fired this tick.
func (l *Level) Update(rng *rand.Rand, bounds Rect) []*Projectile {
	for _, p := range l.Platforms {
		if m, ok := p.(Movable); ok {
			m.Move(rng, bounds)
		}
	}

	var fired []*Projectile
	for _, o := range l.Obstacles {
		if o.Removed() {
			continue
		}
		if m, ok := o.(Movable); ok {
			m.Move(rng, bounds)
		}
		if a, ok := o.(Attacker); ok {
			fired = append(fired, a.Attack()...)
		}
	}
	return fired
}

// Bosses returns every big boss in the level, living or not.
func (l *Level) Bosses() []*Boss {
	var bosses []*Boss
	for _, o := range l.Obstacles {
		if b, ok := o.(*Boss); ok {
			bosses = append(bosses, b)
		}
	}
	return bosses
}

// LivingBoss returns the first big boss still alive, or nil.
func (l *Level) LivingBoss() *Boss {
	for _, b := range l.Bosses() {
		if b.Alive() {
			return b
		}
	}
	return nil
}

// HasLivingBoss reports whether a big boss still blocks the goal.
func (l *Level) HasLivingBoss() bool {
	return l.LivingBoss() != nil
}

// Prune drops removed obstacles and consumed pickups.
func (l *Level) Prune() {
	obstacles := l.Obstacles[:0]
	for _, o := range l.Obstacles {
		if !o.Removed() {
			obstacles = append(obstacles, o)
		}
	}
	l.Obstacles = obstacles

	pickups := l.Pickups[:0]
	for _, p := range l.Pickups {
		if !p.Consumed {
			pickups = append(pickups, p)
		}
	}
	l.Pickups = pickups
}
