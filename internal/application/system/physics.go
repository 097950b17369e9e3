package system

import (
	"github.com/younwookim/guytribute/internal/domain/entity"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

// PhysicsSystem applies gravity and platform landing to the player.
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Update advances the player one tick. Horizontal input must already be applied.
func (s *PhysicsSystem) Update(w *World) {
	p := w.Player

	s.applyGravity(p)
	s.land(p, w.Level)
	clampToMap(p, w.Bounds)

	// Fell out of the map
	if p.Top() > w.Bounds.Bottom() {
		p.Respawn(w.Level.Spawn)
	}

	p.Tick()
}

func (s *PhysicsSystem) applyGravity(p *entity.Player) {
	p.VelY += s.config.Physics.Gravity
	p.Y += p.VelY
}

// land snaps the player onto platforms it overlaps while falling.
// Landing on a trap tile kills instead of snapping.
func (s *PhysicsSystem) land(p *entity.Player, lvl *entity.Level) {
	p.OnGround = false
	for _, plat := range lvl.Platforms {
		if p.VelY < 0 {
			break
		}
		b := plat.Bounds()
		if !p.Overlaps(b) {
			continue
		}
		if tp, ok := plat.(*entity.TiledPlatform); ok && tp.TrapAt(p.CenterX(), p.Bottom()) {
			p.Health = 0
			continue
		}
		p.SetBottom(b.Top())
		p.VelY = 0
		p.OnGround = true
	}
}

func clampToMap(p *entity.Player, bounds entity.Rect) {
	if p.Left() < bounds.Left() {
		p.X = bounds.Left()
	}
	if p.Right() > bounds.Right() {
		p.X = bounds.Right() - p.W
	}
}
