package replay

import "github.com/younwookim/guytribute/internal/application/system"

// FormatVersion is written into every recording.
const FormatVersion = "1.0"

// FrameInput records the intents of a single tick
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	C bool `json:"c,omitempty"` // Cast
}

// Intents converts the frame back into player intents.
func (fi FrameInput) Intents() system.Intents {
	return system.Intents{MoveLeft: fi.L, MoveRight: fi.R, Jump: fi.J, Cast: fi.C}
}

// ReplayData contains all data needed to replay a run
type ReplayData struct {
	Version    string       `json:"version"`
	Seed       int64        `json:"seed"`
	Difficulty float64      `json:"difficulty"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}
