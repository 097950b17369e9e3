package system

// Intents is the player's input for one tick.
// MoveLeft and MoveRight are held states; Jump and Cast are edge-triggered.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Cast      bool
}

// Any reports whether any intent is set.
func (in Intents) Any() bool {
	return in.MoveLeft || in.MoveRight || in.Jump || in.Cast
}
