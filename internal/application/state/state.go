package state

// GameState represents where a run currently is.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateLevelTransition
	StateGameOver
	StateComplete
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateLevelTransition:
		return "LevelTransition"
	case StateGameOver:
		return "GameOver"
	case StateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the run has ended and no further ticks apply.
func (s GameState) Terminal() bool {
	return s == StateComplete
}
