package system

import (
	"math/rand"

	"github.com/younwookim/guytribute/internal/domain/entity"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

// World is the mutable simulation state shared by the systems for one session.
// Projectiles are split by owner; randomness comes only from Rand.
type World struct {
	Physics  *config.PhysicsConfig
	Entities *config.EntitiesConfig
	Bounds   entity.Rect

	Level       *entity.Level
	Player      *entity.Player
	PlayerShots []*entity.Projectile
	BossShots   []*entity.Projectile

	Rand  *rand.Rand
	Index *Broadphase
	Tick  int
}

// NewWorld creates a world with a fresh player at the default spawn and no level.
func NewWorld(physics *config.PhysicsConfig, entities *config.EntitiesConfig, rng *rand.Rand) *World {
	bounds := entity.Rect{W: physics.World.Width, H: physics.World.Height}
	spawn := DefaultSpawn(physics)

	player := entity.NewPlayer(spawn, entities.Player.Width, entities.Player.Height,
		physics.Movement.Speed, physics.Movement.JumpForce)
	player.SetAnimation(entities.Player.Sprite.Frames, entities.Player.Sprite.FrameTicks)

	return &World{
		Physics:  physics,
		Entities: entities,
		Bounds:   bounds,
		Player:   player,
		Rand:     rng,
		Index:    NewBroadphase(bounds),
	}
}

// DefaultSpawn returns the spawn used by levels that do not set one.
func DefaultSpawn(physics *config.PhysicsConfig) entity.Vec {
	return entity.Vec{X: physics.World.SpawnX, Y: physics.World.SpawnY}
}

// SetLevel installs lvl as the current level and rebuilds the spatial index.
func (w *World) SetLevel(lvl *entity.Level) {
	w.Level = lvl
	w.Index.Rebuild(lvl)
}

// ClearShots removes every projectile from play.
func (w *World) ClearShots() {
	w.PlayerShots = w.PlayerShots[:0]
	w.BossShots = w.BossShots[:0]
}
