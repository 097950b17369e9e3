package system

import (
	"math/rand"

	"github.com/younwookim/guytribute/internal/domain/entity"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func f64(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func rectCfg(x, y, w, h float64) config.RectConfig {
	return config.RectConfig{X: f64(x), Y: f64(y), W: f64(w), H: f64(h)}
}

// createTestWorld returns a world on a level with a floor at y=760 and a goal far away.
func createTestWorld() *World {
	w := NewWorld(config.DefaultPhysics(), config.DefaultEntities(), testRNG())
	w.SetLevel(&entity.Level{
		Spawn:     entity.Vec{X: 50, Y: 700},
		Platforms: []entity.Platform{entity.NewStaticPlatform(entity.Rect{X: 0, Y: 760, W: 1200, H: 40}, "")},
		Goal:      entity.Rect{X: 1100, Y: 100, W: 50, H: 50},
	})
	return w
}

// withObstacles replaces the level's obstacles and reindexes.
func withObstacles(w *World, obstacles ...entity.Obstacle) {
	w.Level.Obstacles = obstacles
	w.SetLevel(w.Level)
}

func withPickups(w *World, pickups ...*entity.Pickup) {
	w.Level.Pickups = pickups
	w.SetLevel(w.Level)
}
