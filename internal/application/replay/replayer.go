package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/guytribute/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Difficulty <= 0 {
		data.Difficulty = 1
	}

	return &data, nil
}

// GetInput returns the intents for the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) GetInput() (in system.Intents, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Intents{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Intents(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Difficulty returns the difficulty multiplier the run was recorded with.
// Recordings without one play at 1.
func (r *Replayer) Difficulty() float64 {
	if r.data.Difficulty <= 0 {
		return 1
	}
	return r.data.Difficulty
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
