package system

import (
	"log"

	"github.com/younwookim/guytribute/internal/domain/entity"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

// Outcome summarises what the resolver did in one tick.
type Outcome struct {
	GoalReached        bool
	ObstaclesDestroyed int
	BossDefeated       bool
	BossPhaseChanged   bool
	BoltsTaken         int
	PlayerHit          bool
	PickupsTaken       int
}

// CombatSystem moves projectiles and resolves every interaction after movement.
type CombatSystem struct {
	config *config.PhysicsConfig
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.PhysicsConfig) *CombatSystem {
	return &CombatSystem{config: cfg}
}

// UpdateProjectiles moves every projectile and drops those fully outside the map.
func (s *CombatSystem) UpdateProjectiles(w *World) {
	w.PlayerShots = s.advance(w.PlayerShots, w.Bounds)
	w.BossShots = s.advance(w.BossShots, w.Bounds)
}

func (s *CombatSystem) advance(shots []*entity.Projectile, bounds entity.Rect) []*entity.Projectile {
	kept := shots[:0]
	for _, p := range shots {
		p.Update()
		if p.OutsideOf(bounds) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// Resolve applies, in order: player spells against obstacles, boss bolts against
// the player, obstacle contact, pickups, and the goal check.
func (s *CombatSystem) Resolve(w *World) Outcome {
	var out Outcome

	w.Index.Sync(w.Level)
	s.resolveSpells(w, &out)
	s.resolveBolts(w, &out)
	s.resolveContact(w, &out)
	s.resolvePickups(w, &out)

	out.GoalReached = w.Player.Overlaps(w.Level.Goal) && !w.Level.HasLivingBoss()

	w.Index.Sync(w.Level)
	w.Level.Prune()
	w.PlayerShots = pruneShots(w.PlayerShots)
	w.BossShots = pruneShots(w.BossShots)

	return out
}

func (s *CombatSystem) resolveSpells(w *World, out *Outcome) {
	for _, shot := range w.PlayerShots {
		if shot.Removed {
			continue
		}
		for _, o := range w.Index.ObstaclesNear(w.Level, shot.Rect) {
			if o.Removed() || !shot.Overlaps(o.Bounds()) {
				continue
			}
			shot.Removed = true
			s.hit(o, shot.Damage, out)
		}
	}
}

func (s *CombatSystem) hit(o entity.Obstacle, damage int, out *Outcome) {
	switch o := o.(type) {
	case *entity.Boss:
		phase := o.Phase
		if o.TakeHit(damage) {
			o.Remove()
			out.BossDefeated = true
			out.ObstaclesDestroyed++
			log.Printf("Boss defeated")
			return
		}
		if o.Phase != phase {
			out.BossPhaseChanged = true
			log.Printf("Boss entered phase %d (health %d)", o.Phase, o.Health)
		}
	default:
		if d, ok := o.(entity.Damageable); ok {
			d.TakeHit(damage)
		}
		o.Remove()
		out.ObstaclesDestroyed++
	}
}

func (s *CombatSystem) resolveBolts(w *World, out *Outcome) {
	p := w.Player
	for _, bolt := range w.BossShots {
		if bolt.Removed || !bolt.Overlaps(p.Rect) {
			continue
		}
		bolt.Removed = true
		p.Damage(bolt.Damage)
		out.BoltsTaken++
	}
}

// resolveContact hurts and respawns the player on obstacle contact unless the
// damage cooldown is running. The respawn happens even when health is left.
func (s *CombatSystem) resolveContact(w *World, out *Outcome) {
	p := w.Player
	if p.DamageCooldown > 0 {
		return
	}
	for _, o := range w.Index.ObstaclesNear(w.Level, p.Rect) {
		if o.Removed() || !p.Overlaps(o.Bounds()) {
			continue
		}
		p.Damage(s.config.Combat.ContactDamage)
		p.DamageCooldown = s.config.Combat.DamageCooldown
		p.Respawn(w.Level.Spawn)
		out.PlayerHit = true
		return
	}
}

func (s *CombatSystem) resolvePickups(w *World, out *Outcome) {
	p := w.Player
	for _, pickup := range w.Index.PickupsNear(w.Level, p.Rect) {
		if pickup.Consumed || !p.Overlaps(pickup.Rect) {
			continue
		}
		pickup.Apply(p)
		out.PickupsTaken++
	}
}

func pruneShots(shots []*entity.Projectile) []*entity.Projectile {
	kept := shots[:0]
	for _, p := range shots {
		if !p.Removed {
			kept = append(kept, p)
		}
	}
	return kept
}
