// Package scene defines the Scene interface for game screens.
//
// The about/difficulty menu and the gameplay screen implement it; the game
// loop only ever talks to the current Scene.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents one game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game; ebiten.Termination ends it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	// Use this for initialization that should happen each time the scene is entered.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup such as saving a recording or closing watchers.
	OnExit()
}
