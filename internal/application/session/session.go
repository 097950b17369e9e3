// Package session drives one run of the game: it owns the world, steps the
// systems in order each tick and moves the player between levels.
package session

import (
	"fmt"
	"log"
	"math/rand"
	"path"
	"path/filepath"

	"github.com/younwookim/guytribute/internal/application/state"
	"github.com/younwookim/guytribute/internal/application/system"
	"github.com/younwookim/guytribute/internal/domain/entity"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

// Session is the progression controller for a single run.
// Difficulty is fixed for the lifetime of the session.
type Session struct {
	cfg        *config.GameConfig
	difficulty float64
	seed       int64

	world   *system.World
	input   *system.InputSystem
	physics *system.PhysicsSystem
	combat  *system.CombatSystem

	index int
	state state.GameState
}

// New starts a run on the first level. The seed drives every random choice,
// so equal seeds and equal intents give equal runs.
func New(cfg *config.GameConfig, difficulty float64, seed int64) (*Session, error) {
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", config.ErrInvalidConfig)
	}
	if difficulty <= 0 {
		return nil, fmt.Errorf("%w: difficulty multiplier %g", config.ErrInvalidConfig, difficulty)
	}

	s := &Session{
		cfg:        cfg,
		difficulty: difficulty,
		seed:       seed,
		world:      system.NewWorld(cfg.Physics, cfg.Entities, rand.New(rand.NewSource(seed))),
		input:      system.NewInputSystem(cfg.Physics, cfg.Entities),
		physics:    system.NewPhysicsSystem(cfg.Physics),
		combat:     system.NewCombatSystem(cfg.Physics),
		state:      state.StatePlaying,
	}

	if err := s.enterLevel(0); err != nil {
		return nil, err
	}
	s.world.Player.Reset(s.world.Level.Spawn)

	return s, nil
}

// Step advances the run by one tick with the given intents.
// Once the run is complete further steps do nothing.
func (s *Session) Step(in system.Intents) (state.GameState, error) {
	if s.state.Terminal() {
		return s.state, nil
	}

	w := s.world
	w.Tick++

	s.input.Apply(w, in)
	s.physics.Update(w)
	s.combat.UpdateProjectiles(w)
	w.BossShots = append(w.BossShots, w.Level.Update(w.Rand, w.Bounds)...)

	out := s.combat.Resolve(w)

	if w.Player.IsDead() {
		return s.gameOver()
	}

	if out.GoalReached {
		return s.advance()
	}

	s.state = state.StatePlaying
	return s.state, nil
}

func (s *Session) gameOver() (state.GameState, error) {
	log.Printf("[session] Game Over! Restarting from the beginning...")

	if err := s.enterLevel(0); err != nil {
		return s.state, err
	}
	s.world.Player.Reset(s.world.Level.Spawn)
	s.world.ClearShots()

	s.state = state.StateGameOver
	return s.state, nil
}

func (s *Session) advance() (state.GameState, error) {
	log.Printf("[session] Level %d complete!", s.index+1)

	p := s.world.Player
	p.Mana = entity.MaxMana

	next := s.index + 1
	if next >= len(s.cfg.Levels) {
		s.index = next
		s.world.ClearShots()
		s.state = state.StateComplete
		log.Printf("[session] All %d levels complete after %d ticks", len(s.cfg.Levels), s.world.Tick)
		return s.state, nil
	}

	if err := s.enterLevel(next); err != nil {
		return s.state, err
	}
	p.Respawn(s.world.Level.Spawn)
	s.world.ClearShots()

	s.state = state.StateLevelTransition
	return s.state, nil
}

// enterLevel builds level i from its configuration and makes it current.
func (s *Session) enterLevel(i int) error {
	lvl, err := s.build(i)
	if err != nil {
		return err
	}
	s.index = i
	s.world.SetLevel(lvl)
	log.Printf("[session] Level %d/%d: %s", i+1, len(s.cfg.Levels), lvl.Name)
	return nil
}

func (s *Session) build(i int) (*entity.Level, error) {
	lc := s.cfg.Levels[i]
	lvl, err := system.BuildLevel(lc, s.cfg.Physics, s.cfg.Entities, s.difficulty, s.world.Rand)
	if err != nil {
		return nil, fmt.Errorf("failed to build level %d (%s): %w", i+1, lc.Source, err)
	}
	return lvl, nil
}

// Reload swaps the configuration of level i. When i is the level being
// played it is rebuilt immediately and the player returns to its spawn.
// On error the previous configuration stays in place.
func (s *Session) Reload(i int, lc *config.LevelConfig) error {
	if i < 0 || i >= len(s.cfg.Levels) {
		return fmt.Errorf("%w: level index %d out of range", config.ErrInvalidConfig, i)
	}

	if i != s.index || s.state.Terminal() {
		if _, err := system.BuildLevel(lc, s.cfg.Physics, s.cfg.Entities, s.difficulty, rand.New(rand.NewSource(s.seed))); err != nil {
			return fmt.Errorf("failed to reload level %d: %w", i+1, err)
		}
		s.cfg.Levels[i] = lc
		log.Printf("[session] Reloaded level %d (%s)", i+1, lc.Source)
		return nil
	}

	prev := s.cfg.Levels[i]
	s.cfg.Levels[i] = lc
	if err := s.enterLevel(i); err != nil {
		s.cfg.Levels[i] = prev
		return fmt.Errorf("failed to reload level %d: %w", i+1, err)
	}
	s.world.Player.Respawn(s.world.Level.Spawn)
	s.world.ClearShots()
	log.Printf("[session] Reloaded current level %d (%s)", i+1, lc.Source)
	return nil
}

// IndexOf returns the index of the level loaded from file, matched by base name.
func (s *Session) IndexOf(file string) (int, bool) {
	base := filepath.Base(file)
	for i, lc := range s.cfg.Levels {
		if lc.Source != "" && path.Base(lc.Source) == base {
			return i, true
		}
	}
	return 0, false
}

// State returns the state set by the last Step.
func (s *Session) State() state.GameState { return s.state }

// LevelIndex returns the zero-based index of the current level.
// After completion it equals the number of levels.
func (s *Session) LevelIndex() int { return s.index }

// Levels returns the number of levels in the run.
func (s *Session) Levels() int { return len(s.cfg.Levels) }

func (s *Session) Difficulty() float64 { return s.difficulty }

func (s *Session) Seed() int64 { return s.seed }

// Config returns the configuration the run was started with.
func (s *Session) Config() *config.GameConfig { return s.cfg }

// World exposes the simulation state for rendering.
func (s *Session) World() *system.World { return s.world }

// Camera returns the top-left of the view in map space.
func (s *Session) Camera() (x, y float64) {
	d := s.cfg.Physics.Display
	return system.Camera(s.world.Player.Rect, float64(d.ScreenWidth), float64(d.ScreenHeight), s.world.Bounds)
}
