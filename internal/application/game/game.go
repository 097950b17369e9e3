// Package game runs the scene stack inside ebiten's loop.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/guytribute/internal/application/scene"
)

// Game implements ebiten.Game by delegating to the current Scene.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a Game showing initialScene at the given logical size and tick rate.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and switches scenes on request.
// When a scene ends the game with ebiten.Termination it is exited first.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.current.OnExit()
		}
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the scene being shown.
func (g *Game) Current() scene.Scene {
	return g.current
}
