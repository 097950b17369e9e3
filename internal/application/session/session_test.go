package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/guytribute/internal/application/state"
	"github.com/younwookim/guytribute/internal/application/system"
	"github.com/younwookim/guytribute/internal/domain/entity"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

const testSeed = 12345

func f64(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func rect(x, y, w, h float64) config.RectConfig {
	return config.RectConfig{X: f64(x), Y: f64(y), W: f64(w), H: f64(h)}
}

// floorLevel is a level with a full-width floor at y=760 and the goal high up on the right.
func floorLevel(name string, spawn *config.PointConfig) *config.LevelConfig {
	goal := rect(1100, 100, 50, 50)
	return &config.LevelConfig{
		Name:      name,
		Caption:   name,
		Spawn:     spawn,
		Platforms: []config.PlatformConfig{{RectConfig: rect(0, 760, 1200, 40)}},
		Goal:      &goal,
	}
}

func testConfig(levels ...*config.LevelConfig) *config.GameConfig {
	return &config.GameConfig{
		Physics:  config.DefaultPhysics(),
		Entities: config.DefaultEntities(),
		Levels:   levels,
	}
}

func twoLevels() *config.GameConfig {
	return testConfig(
		floorLevel("one", nil),
		floorLevel("two", &config.PointConfig{X: 100, Y: 600}),
	)
}

func newTestSession(t *testing.T, cfg *config.GameConfig) *Session {
	t.Helper()
	s, err := New(cfg, 1, testSeed)
	require.NoError(t, err)
	return s
}

func step(t *testing.T, s *Session, in system.Intents) state.GameState {
	t.Helper()
	st, err := s.Step(in)
	require.NoError(t, err)
	return st
}

func moveToGoal(s *Session) {
	g := s.World().Level.Goal
	s.World().Player.X, s.World().Player.Y = g.X, g.Y
}

func TestNew(t *testing.T) {
	s := newTestSession(t, twoLevels())

	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, 2, s.Levels())
	assert.Equal(t, int64(testSeed), s.Seed())

	p := s.World().Player
	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, 700.0, p.Y)
	assert.Equal(t, entity.MaxHealth, p.Health)
	assert.Equal(t, entity.MaxMana, p.Mana)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(testConfig(), 1, testSeed)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))

	_, err = New(twoLevels(), 0, testSeed)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))

	bad := floorLevel("bad", nil)
	bad.Platforms[0].W = nil
	_, err = New(testConfig(bad), 1, testSeed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrMissingField))
	assert.Contains(t, err.Error(), "platform 0")
}

func TestStep_LandsOnFloor(t *testing.T) {
	s := newTestSession(t, twoLevels())

	assert.Equal(t, state.StatePlaying, step(t, s, system.Intents{}))
	assert.True(t, s.World().Player.OnGround)
	assert.Equal(t, 760.0, s.World().Player.Bottom())
	assert.Equal(t, 1, s.World().Tick)
}

func TestStep_ClampsStatsAcrossTicks(t *testing.T) {
	lvl := floorLevel("pickups", nil)
	lvl.Pickups = []config.PickupConfig{
		{RectConfig: rect(400, 400, 50, 50), Type: config.PickupHealth, Value: intPtr(50)},
		{RectConfig: rect(400, 400, 50, 50), Type: config.PickupMana, Value: intPtr(5)},
	}
	s := newTestSession(t, testConfig(lvl))
	p := s.World().Player
	p.X, p.Y = 390, 390
	p.Health, p.Mana = 90, 95

	step(t, s, system.Intents{})
	assert.Equal(t, entity.MaxHealth, p.Health)
	assert.Equal(t, entity.MaxMana, p.Mana)

	for i := 0; i < 120; i++ {
		step(t, s, system.Intents{MoveLeft: true, Cast: i%2 == 0})
		assert.GreaterOrEqual(t, p.Health, 0)
		assert.LessOrEqual(t, p.Health, entity.MaxHealth)
		assert.GreaterOrEqual(t, p.Mana, 0)
		assert.LessOrEqual(t, p.Mana, entity.MaxMana)
		assert.GreaterOrEqual(t, p.X, 0.0)
	}
	assert.Equal(t, 0, p.Mana, "ten casts drain the mana")
}

func TestStep_CastWithoutMana(t *testing.T) {
	s := newTestSession(t, twoLevels())
	s.World().Player.Mana = 5

	step(t, s, system.Intents{Cast: true})

	assert.Empty(t, s.World().PlayerShots)
	assert.Equal(t, 5, s.World().Player.Mana)
}

func TestStep_ContactDamageToZeroResetsRun(t *testing.T) {
	second := floorLevel("two", &config.PointConfig{X: 100, Y: 600})
	second.Obstacles = []config.ObstacleConfig{
		{RectConfig: rect(380, 380, 100, 100), Speed: f64(0)},
	}
	s := newTestSession(t, testConfig(floorLevel("one", nil), second))

	moveToGoal(s)
	require.Equal(t, state.StateLevelTransition, step(t, s, system.Intents{}))
	require.Equal(t, 1, s.LevelIndex())

	p := s.World().Player
	p.X, p.Y = 400, 400
	p.Health, p.Mana = 20, 40
	s.World().PlayerShots = append(s.World().PlayerShots,
		entity.NewProjectile(entity.Rect{X: 10, Y: 10, W: 50, H: 50}, 0, 0, entity.OwnerPlayer, 10))

	assert.Equal(t, state.StateGameOver, step(t, s, system.Intents{}))

	assert.Equal(t, 0, s.LevelIndex())
	assert.Equal(t, entity.MaxHealth, p.Health)
	assert.Equal(t, entity.MaxMana, p.Mana)
	assert.Equal(t, 0, p.DamageCooldown)
	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, 700.0, p.Y)
	assert.Equal(t, 0.0, p.VelY)
	assert.Empty(t, s.World().PlayerShots)
	assert.Equal(t, "one", s.World().Level.Name)

	assert.Equal(t, state.StatePlaying, step(t, s, system.Intents{}))
}

func TestStep_ContactDamageLeavesHealth(t *testing.T) {
	lvl := floorLevel("one", nil)
	lvl.Obstacles = []config.ObstacleConfig{
		{RectConfig: rect(380, 380, 100, 100), Speed: f64(0)},
	}
	s := newTestSession(t, testConfig(lvl))
	p := s.World().Player
	p.X, p.Y = 400, 400

	assert.Equal(t, state.StatePlaying, step(t, s, system.Intents{}))
	assert.Equal(t, 80, p.Health)
	assert.Equal(t, 30, p.DamageCooldown)
	assert.Equal(t, 50.0, p.X)
}

func TestStep_TrapLandingResetsRun(t *testing.T) {
	lvl := floorLevel("trap", nil)
	lvl.Platforms = append(lvl.Platforms, config.PlatformConfig{
		RectConfig: config.RectConfig{X: f64(300), Y: f64(500)},
		Kind:       config.PlatformTiled,
		TileWidth:  40,
		TileHeight: 20,
		Tiles:      [][]int{{1, 1, 1}},
	})
	s := newTestSession(t, testConfig(lvl))
	p := s.World().Player
	p.X = 320
	p.SetBottom(499)
	p.VelY = 2
	p.Mana = 30

	assert.Equal(t, state.StateGameOver, step(t, s, system.Intents{}))
	assert.Equal(t, entity.MaxHealth, p.Health)
	assert.Equal(t, entity.MaxMana, p.Mana)
}

func TestStep_GoalAdvancesLevel(t *testing.T) {
	s := newTestSession(t, twoLevels())
	p := s.World().Player
	p.Mana = 10
	moveToGoal(s)

	assert.Equal(t, state.StateLevelTransition, step(t, s, system.Intents{}))

	assert.Equal(t, 1, s.LevelIndex())
	assert.Equal(t, "two", s.World().Level.Name)
	assert.Equal(t, entity.MaxMana, p.Mana)
	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 600.0, p.Y)
	assert.Equal(t, 0.0, p.VelY)

	assert.Equal(t, state.StatePlaying, step(t, s, system.Intents{}))
}

func TestStep_GoalGatedByBoss(t *testing.T) {
	lvl := floorLevel("lair", nil)
	lvl.Obstacles = []config.ObstacleConfig{
		{RectConfig: rect(500, 300, 85, 94), Boss: true, BossType: config.BossBig},
	}
	s := newTestSession(t, testConfig(lvl, floorLevel("after", nil)))
	moveToGoal(s)

	assert.Equal(t, state.StatePlaying, step(t, s, system.Intents{}))
	assert.Equal(t, 0, s.LevelIndex())

	boss := s.World().Level.LivingBoss()
	require.NotNil(t, boss)
	boss.Health = 0
	boss.Remove()

	moveToGoal(s)
	assert.Equal(t, state.StateLevelTransition, step(t, s, system.Intents{}))
}

func TestStep_CompleteIsTerminal(t *testing.T) {
	s := newTestSession(t, testConfig(floorLevel("only", nil)))
	moveToGoal(s)

	assert.Equal(t, state.StateComplete, step(t, s, system.Intents{}))
	assert.Equal(t, 1, s.LevelIndex())
	tick := s.World().Tick

	assert.Equal(t, state.StateComplete, step(t, s, system.Intents{MoveRight: true}))
	assert.Equal(t, tick, s.World().Tick)
}

func TestStep_DifficultyAppliedAtBuild(t *testing.T) {
	lvl := floorLevel("fast", nil)
	lvl.Obstacles = []config.ObstacleConfig{
		{RectConfig: rect(500, 300, 30, 30)},
	}
	s, err := New(testConfig(lvl), 1.5, testSeed)
	require.NoError(t, err)

	o := s.World().Level.Obstacles[0].(*entity.Patroller)
	assert.Equal(t, 3.0, o.Speed)

	step(t, s, system.Intents{})
	assert.Equal(t, 3.0, o.Speed)
	assert.Equal(t, 1.5, s.Difficulty())
}

func TestStep_Deterministic(t *testing.T) {
	lvl := floorLevel("busy", nil)
	lvl.Obstacles = []config.ObstacleConfig{
		{RectConfig: rect(500, 300, 30, 30), Dynamic: true},
		{RectConfig: rect(700, 200, 30, 30), Dynamic: true, Vertical: true},
		{RectConfig: rect(600, 100, 85, 94), Boss: true},
	}

	run := func() []entity.Rect {
		s, err := New(testConfig(lvl), 2, 99)
		require.NoError(t, err)
		for i := 0; i < 300; i++ {
			_, err := s.Step(system.Intents{MoveRight: i%3 == 0, Jump: i%40 == 0})
			require.NoError(t, err)
		}
		var out []entity.Rect
		for _, o := range s.World().Level.Obstacles {
			out = append(out, o.Bounds())
		}
		return append(out, s.World().Player.Rect)
	}

	assert.Equal(t, run(), run())
}

func TestReload(t *testing.T) {
	s := newTestSession(t, twoLevels())
	s.World().Player.X = 600

	changed := floorLevel("one again", &config.PointConfig{X: 70, Y: 650})
	require.NoError(t, s.Reload(0, changed))

	assert.Equal(t, "one again", s.World().Level.Name)
	assert.Equal(t, 70.0, s.World().Player.X)

	other := floorLevel("two again", nil)
	require.NoError(t, s.Reload(1, other))
	assert.Equal(t, "one again", s.World().Level.Name, "other levels are not rebuilt")
}

func TestReload_Errors(t *testing.T) {
	s := newTestSession(t, twoLevels())

	assert.True(t, errors.Is(s.Reload(5, floorLevel("x", nil)), config.ErrInvalidConfig))

	bad := floorLevel("bad", nil)
	bad.Pickups = []config.PickupConfig{{RectConfig: rect(0, 0, 10, 10), Type: "gold"}}

	require.Error(t, s.Reload(0, bad))
	assert.Equal(t, "one", s.World().Level.Name)
	require.Error(t, s.Reload(1, bad))

	moveToGoal(s)
	step(t, s, system.Intents{})
	assert.Equal(t, "two", s.World().Level.Name)
}

func TestIndexOf(t *testing.T) {
	cfg := twoLevels()
	cfg.Levels[0].Source = "levels/01_first.yaml"
	cfg.Levels[1].Source = "levels/02_second.json"
	s := newTestSession(t, cfg)

	i, ok := s.IndexOf("/home/me/configs/levels/02_second.json")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = s.IndexOf("levels/03_missing.yaml")
	assert.False(t, ok)
}

func TestHUD(t *testing.T) {
	lvl := floorLevel("lair", nil)
	lvl.Obstacles = []config.ObstacleConfig{
		{RectConfig: rect(500, 300, 85, 94), Boss: true},
	}
	s := newTestSession(t, testConfig(lvl))
	p := s.World().Player
	p.Health, p.Mana = 50, 30
	s.World().Level.LivingBoss().Health = 25

	hud := s.HUD()

	assert.Equal(t, 0.5, hud.Health)
	assert.Equal(t, 0.3, hud.Mana)
	assert.Equal(t, 30, hud.ManaPoints)
	assert.True(t, hud.HasBoss)
	assert.Equal(t, 0.25, hud.BossHealth)
	assert.Equal(t, "lair", hud.Caption)
	assert.Equal(t, 1, hud.Level)
	assert.Equal(t, 1, hud.Levels)
}

func TestCamera(t *testing.T) {
	s := newTestSession(t, twoLevels())

	x, y := s.Camera()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 200.0, y)

	s.World().Player.X, s.World().Player.Y = 568, 368
	x, y = s.Camera()
	assert.Equal(t, 200.0, x)
	assert.Equal(t, 100.0, y)
}

func TestSession_EmbeddedConfig(t *testing.T) {
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)

	for _, name := range []string{"easy", "medium", "hard"} {
		mult, ok := cfg.Physics.Difficulty.Multiplier(name)
		require.True(t, ok, name)

		s, err := New(cfg, mult, testSeed)
		require.NoError(t, err)
		for i := 0; i < 120; i++ {
			_, err := s.Step(system.Intents{MoveRight: true})
			require.NoError(t, err)
		}
		assert.False(t, s.State().Terminal())
	}
}
