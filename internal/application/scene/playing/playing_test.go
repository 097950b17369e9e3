package playing

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/guytribute/internal/application/replay"
	"github.com/younwookim/guytribute/internal/application/session"
	"github.com/younwookim/guytribute/internal/application/system"
	"github.com/younwookim/guytribute/internal/infrastructure/assets"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

const dt = 1.0 / 60

const firstLevel = `name: First
challenge_message: "Level 1"
platforms:
  - {x: 0, y: 760, w: 1200, h: 40}
goal: {x: 1100, y: 100, w: 50, h: 50}
`

const secondLevel = `name: Second
platforms:
  - {x: 0, y: 760, w: 1200, h: 40}
goal: {x: 1100, y: 100, w: 50, h: 50}
`

// writeLevels creates a config dir with the given level files and returns a loader for it.
func writeLevels(t *testing.T, files map[string]string) *config.Loader {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, config.LevelsDir), 0o755))
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.LevelsDir, name), []byte(body), 0o644))
	}
	return config.NewLoader(dir)
}

func createTestConfig(t *testing.T, loader *config.Loader) *config.GameConfig {
	t.Helper()
	levels, err := loader.LoadLevels()
	require.NoError(t, err)
	return &config.GameConfig{
		Physics:  config.DefaultPhysics(),
		Entities: config.DefaultEntities(),
		Levels:   levels,
	}
}

func newTestPlaying(t *testing.T, cfg *config.GameConfig, opts Options) *Playing {
	t.Helper()
	sess, err := session.New(cfg, 1, 12345)
	require.NoError(t, err)
	return New(sess, assets.NewProvider(fstest.MapFS{}), opts)
}

func moveToGoal(p *Playing) {
	w := p.Session().World()
	w.Player.X, w.Player.Y = w.Level.Goal.X, w.Level.Goal.Y
}

func TestPlaying_StepAndRecord(t *testing.T) {
	loader := writeLevels(t, map[string]string{"01_first.yaml": firstLevel})
	file := filepath.Join(t.TempDir(), "run.json")
	p := newTestPlaying(t, createTestConfig(t, loader), Options{RecordPath: file})

	inputs := []system.Intents{{MoveRight: true}, {Jump: true}, {Cast: true}}
	for _, in := range inputs {
		next, err := p.Step(in, dt)
		require.NoError(t, err)
		assert.Nil(t, next)
	}
	p.OnExit()

	data, err := replay.LoadReplay(file)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), data.Seed)
	require.Len(t, data.Frames, 3)
	assert.True(t, data.Frames[2].C)
}

func TestPlaying_CompleteTerminates(t *testing.T) {
	loader := writeLevels(t, map[string]string{"01_first.yaml": firstLevel})
	p := newTestPlaying(t, createTestConfig(t, loader), Options{})

	moveToGoal(p)
	_, err := p.Step(system.Intents{}, dt)
	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestPlaying_LevelTransitionBanner(t *testing.T) {
	loader := writeLevels(t, map[string]string{
		"01_first.yaml":  firstLevel,
		"02_second.yaml": secondLevel,
	})
	p := newTestPlaying(t, createTestConfig(t, loader), Options{})
	p.Session().World().Player.Mana = 20

	moveToGoal(p)
	_, err := p.Step(system.Intents{}, dt)
	require.NoError(t, err)

	assert.Equal(t, "Level 2", p.banner)
	assert.Equal(t, bannerTicks-1, p.bannerTimer)
	assert.Equal(t, 2, p.level)
	assert.Equal(t, float32(1), p.mana.Value(), "bars snap on level change")
}

func TestPlaying_GameOverBanner(t *testing.T) {
	loader := writeLevels(t, map[string]string{"01_first.yaml": firstLevel})
	p := newTestPlaying(t, createTestConfig(t, loader), Options{})
	p.Session().World().Player.Health = 0

	_, err := p.Step(system.Intents{}, dt)
	require.NoError(t, err)
	assert.Contains(t, p.banner, "Game Over")
}

func TestPlaying_HUDEasing(t *testing.T) {
	loader := writeLevels(t, map[string]string{"01_first.yaml": firstLevel})
	p := newTestPlaying(t, createTestConfig(t, loader), Options{})
	p.Session().World().Player.Health = 50

	_, err := p.Step(system.Intents{}, dt)
	require.NoError(t, err)
	assert.Less(t, p.health.Value(), float32(1))
	assert.Greater(t, p.health.Value(), float32(0.5))

	for i := 0; i < 30; i++ {
		_, err := p.Step(system.Intents{}, dt)
		require.NoError(t, err)
	}
	assert.Equal(t, float32(0.5), p.health.Value())
}

func TestPlaying_Reload(t *testing.T) {
	loader := writeLevels(t, map[string]string{"01_first.yaml": firstLevel})
	p := newTestPlaying(t, createTestConfig(t, loader), Options{Loader: loader})
	file := filepath.Join(loader.BasePath(), config.LevelsDir, "01_first.yaml")

	require.NoError(t, os.WriteFile(file, []byte(secondLevel), 0o644))
	p.reload(file)
	assert.Equal(t, "Second", p.Session().World().Level.Name)

	require.NoError(t, os.WriteFile(file, []byte("name: [broken"), 0o644))
	p.reload(file)
	assert.Equal(t, "Second", p.Session().World().Level.Name, "broken file keeps the old level")

	p.reload(filepath.Join(loader.BasePath(), config.LevelsDir, "99_other.yaml"))
	assert.Equal(t, "Second", p.Session().World().Level.Name)
}

func TestEasedValue(t *testing.T) {
	v := newEasedValue(1)
	assert.Equal(t, float32(1), v.Update(dt))

	v.Set(0)
	mid := v.Update(barEaseSeconds / 2)
	assert.Greater(t, mid, float32(0))
	assert.Less(t, mid, float32(1))

	assert.Equal(t, float32(0), v.Update(barEaseSeconds))
	assert.Nil(t, v.tween)

	v.Snap(0.7)
	assert.Equal(t, float32(0.7), v.Value())
}

func TestFade(t *testing.T) {
	var f fade
	assert.Equal(t, float32(0), f.Update(dt))

	f.Restart()
	assert.InDelta(t, 0.5, f.Update(captionFadeSecs/2), 1e-3)
	assert.Equal(t, float32(1), f.Update(captionFadeSecs))
}
