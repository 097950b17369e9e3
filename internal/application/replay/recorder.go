package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/guytribute/internal/application/system"
)

// Recorder collects the intents of every tick of a run.
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, difficulty float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:    FormatVersion,
			Seed:       seed,
			Difficulty: difficulty,
			StartTime:  time.Now().Format(time.RFC3339),
			Frames:     make([]FrameInput, 0, 3600), // ~1 minute at 60 TPS
		},
		recording: true,
	}
}

// RecordFrame records a single tick's intents
func (r *Recorder) RecordFrame(in system.Intents) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F: len(r.data.Frames),
		L: in.MoveLeft,
		R: in.MoveRight,
		J: in.Jump,
		C: in.Cast,
	})
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
