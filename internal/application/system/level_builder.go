package system

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/guytribute/internal/domain/entity"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

const (
	defaultGoalSize    = 50
	defaultGoalOffsetX = 100
	defaultGoalOffsetY = 150
)

// BuildLevel converts a LevelConfig into a Level entity.
// Obstacle speeds are multiplied by difficulty here and nowhere else.
// Missing geometry and unknown kinds are reported as errors.
func BuildLevel(cfg *config.LevelConfig, physics *config.PhysicsConfig, ents *config.EntitiesConfig, difficulty float64, rng *rand.Rand) (*entity.Level, error) {
	lvl := &entity.Level{
		Name:            cfg.Name,
		Background:      cfg.BackgroundImage,
		BackgroundColor: cfg.BackgroundColor,
		Caption:         cfg.Caption,
		Spawn:           DefaultSpawn(physics),
	}
	if cfg.Spawn != nil {
		lvl.Spawn = entity.Vec{X: cfg.Spawn.X, Y: cfg.Spawn.Y}
	}

	for i, pc := range cfg.Platforms {
		p, err := buildPlatform(pc, ents)
		if err != nil {
			return nil, fmt.Errorf("platform %d: %w", i, err)
		}
		lvl.Platforms = append(lvl.Platforms, p)
	}

	for i, oc := range cfg.Obstacles {
		o, err := buildObstacle(oc, ents, difficulty, rng)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		lvl.Obstacles = append(lvl.Obstacles, o)
	}

	for i, pc := range cfg.Pickups {
		p, err := buildPickup(pc, ents)
		if err != nil {
			return nil, fmt.Errorf("pickup %d: %w", i, err)
		}
		lvl.Pickups = append(lvl.Pickups, p)
	}

	goal, err := buildGoal(cfg.Goal, physics)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	lvl.Goal = goal
	lvl.GoalImage = ents.Images.Goal
	if cfg.Goal != nil && cfg.Goal.Image != "" {
		lvl.GoalImage = cfg.Goal.Image
	}

	return lvl, nil
}

// requireRect reads x, y, w, h, all of which must be present, with positive size.
func requireRect(rc config.RectConfig) (entity.Rect, error) {
	x, y, err := requirePoint(rc)
	if err != nil {
		return entity.Rect{}, err
	}
	if rc.W == nil {
		return entity.Rect{}, fmt.Errorf("%w: w", config.ErrMissingField)
	}
	if rc.H == nil {
		return entity.Rect{}, fmt.Errorf("%w: h", config.ErrMissingField)
	}
	if *rc.W <= 0 || *rc.H <= 0 {
		return entity.Rect{}, fmt.Errorf("%w: size %gx%g", config.ErrInvalidConfig, *rc.W, *rc.H)
	}
	return entity.Rect{X: x, Y: y, W: *rc.W, H: *rc.H}, nil
}

func requirePoint(rc config.RectConfig) (x, y float64, err error) {
	if rc.X == nil {
		return 0, 0, fmt.Errorf("%w: x", config.ErrMissingField)
	}
	if rc.Y == nil {
		return 0, 0, fmt.Errorf("%w: y", config.ErrMissingField)
	}
	return *rc.X, *rc.Y, nil
}

func imageOr(image, fallback string) string {
	if image != "" {
		return image
	}
	return fallback
}

func buildPlatform(pc config.PlatformConfig, ents *config.EntitiesConfig) (entity.Platform, error) {
	image := imageOr(pc.Image, ents.Images.Platform)

	switch kind := pc.ResolvedKind(); kind {
	case config.PlatformStatic:
		r, err := requireRect(pc.RectConfig)
		if err != nil {
			return nil, err
		}
		return entity.NewStaticPlatform(r, image), nil

	case config.PlatformMoving:
		r, err := requireRect(pc.RectConfig)
		if err != nil {
			return nil, err
		}
		speed := 2.0
		if pc.Speed != nil {
			speed = *pc.Speed
		}
		dir := entity.Vec{X: 1, Y: 0}
		if pc.Direction != nil {
			if len(pc.Direction) != 2 {
				return nil, fmt.Errorf("%w: direction needs 2 values, got %d", config.ErrInvalidConfig, len(pc.Direction))
			}
			dir = entity.Vec{X: pc.Direction[0], Y: pc.Direction[1]}
		}
		travel := entity.DefaultTravel(r)
		if pc.Boundaries != nil {
			if len(pc.Boundaries) != 4 {
				return nil, fmt.Errorf("%w: boundaries need 4 values, got %d", config.ErrInvalidConfig, len(pc.Boundaries))
			}
			b := pc.Boundaries
			travel = entity.TravelBounds{MinX: b[0], MaxX: b[1], MinY: b[2], MaxY: b[3]}
		}
		return entity.NewMovingPlatform(r, image, speed, dir, travel), nil

	case config.PlatformTiled:
		x, y, err := requirePoint(pc.RectConfig)
		if err != nil {
			return nil, err
		}
		if pc.TileWidth <= 0 || pc.TileHeight <= 0 {
			return nil, fmt.Errorf("%w: tile size %gx%g", config.ErrInvalidConfig, pc.TileWidth, pc.TileHeight)
		}
		if len(pc.Tiles) == 0 || len(pc.Tiles[0]) == 0 {
			return nil, fmt.Errorf("%w: empty tile grid", config.ErrInvalidConfig)
		}
		for row, tiles := range pc.Tiles {
			if len(tiles) != len(pc.Tiles[0]) {
				return nil, fmt.Errorf("%w: tile row %d has %d columns, want %d", config.ErrInvalidConfig, row, len(tiles), len(pc.Tiles[0]))
			}
		}
		return entity.NewTiledPlatform(x, y, pc.Tiles, pc.TileWidth, pc.TileHeight, pc.TileImages), nil

	default:
		return nil, fmt.Errorf("%w: unknown platform kind %q", config.ErrInvalidConfig, kind)
	}
}

func buildObstacle(oc config.ObstacleConfig, ents *config.EntitiesConfig, difficulty float64, rng *rand.Rand) (entity.Obstacle, error) {
	r, err := requireRect(oc.RectConfig)
	if err != nil {
		return nil, err
	}

	speed := ents.Obstacle.Speed
	if oc.Speed != nil {
		speed = *oc.Speed
	}
	speed *= difficulty

	if !oc.Boss {
		p := entity.NewPatroller(r, speed, oc.Vertical, oc.Dynamic, imageOr(oc.Image, ents.Images.Obstacle))
		p.RerollTicks = ents.Obstacle.RerollTicks
		return p, nil
	}

	switch oc.BossType {
	case config.BossSmall:
		b := entity.NewSmallBoss(r, speed, oc.Vertical, oc.Dynamic, imageOr(oc.Image, ents.Boss.SmallImage))
		b.RerollTicks = ents.Obstacle.RerollTicks
		return b, nil
	case config.BossBig, "":
		stats := entity.BossStats{
			MaxHealth:       ents.Boss.MaxHealth,
			MaxSpeed:        speed,
			MoveTicks:       ents.Boss.MoveTicks,
			AttackIntervals: ents.Boss.AttackIntervals,
			BoltSpeed:       ents.Bolt.Speed,
			BoltSize:        ents.Bolt.Width,
			BoltDamage:      ents.Bolt.Damage,
		}
		return entity.NewBoss(r, stats, imageOr(oc.Image, ents.Boss.Image), rng), nil
	default:
		return nil, fmt.Errorf("%w: unknown boss type %q", config.ErrInvalidConfig, oc.BossType)
	}
}

func buildPickup(pc config.PickupConfig, ents *config.EntitiesConfig) (*entity.Pickup, error) {
	r, err := requireRect(pc.RectConfig)
	if err != nil {
		return nil, err
	}

	var (
		kind  entity.PickupKind
		value int
		image string
	)
	switch pc.Type {
	case config.PickupHealth, "":
		kind, value, image = entity.PickupHealth, ents.Pickups.HealthValue, ents.Images.Health
	case config.PickupMana, config.PickupBullet:
		kind, value, image = entity.PickupMana, ents.Pickups.ManaValue, ents.Images.Mana
	default:
		return nil, fmt.Errorf("%w: unknown pickup type %q", config.ErrInvalidConfig, pc.Type)
	}
	if pc.Value != nil {
		value = *pc.Value
	}

	return entity.NewPickup(r, kind, value, imageOr(pc.Image, image)), nil
}

// buildGoal fills missing goal fields from the default goal near the bottom-right corner.
func buildGoal(rc *config.RectConfig, physics *config.PhysicsConfig) (entity.Rect, error) {
	goal := entity.Rect{
		X: physics.World.Width - defaultGoalOffsetX,
		Y: physics.World.Height - defaultGoalOffsetY,
		W: defaultGoalSize,
		H: defaultGoalSize,
	}
	if rc == nil {
		return goal, nil
	}
	if rc.X != nil {
		goal.X = *rc.X
	}
	if rc.Y != nil {
		goal.Y = *rc.Y
	}
	if rc.W != nil {
		goal.W = *rc.W
	}
	if rc.H != nil {
		goal.H = *rc.H
	}
	if goal.W <= 0 || goal.H <= 0 {
		return entity.Rect{}, fmt.Errorf("%w: size %gx%g", config.ErrInvalidConfig, goal.W, goal.H)
	}
	return goal, nil
}
