package entity

import "math/rand"

// Movable is implemented by entities that advance on their own every tick.
// bounds is the map rectangle.
type Movable interface {
	Move(rng *rand.Rand, bounds Rect)
}

// Damageable is implemented by entities that player spells can hit.
type Damageable interface {
	// TakeHit applies damage and reports whether the entity is destroyed.
	TakeHit(damage int) (destroyed bool)
}

// Attacker is implemented by entities that fire projectiles on their own schedule.
type Attacker interface {
	// Attack advances the attack timer and returns any projectiles fired this tick.
	Attack() []*Projectile
}

// Owner identifies who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerBoss
)

// String returns the string representation of the owner
func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "Player"
	case OwnerBoss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// PickupKind selects the effect of a pickup.
type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupMana
)

// String returns the string representation of the pickup kind
func (k PickupKind) String() string {
	switch k {
	case PickupHealth:
		return "Health"
	case PickupMana:
		return "Mana"
	default:
		return "Unknown"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
