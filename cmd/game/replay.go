package main

import (
	"fmt"

	"github.com/younwookim/guytribute/internal/application/replay"
	"github.com/younwookim/guytribute/internal/application/session"
	"github.com/younwookim/guytribute/internal/application/state"
	"github.com/younwookim/guytribute/internal/infrastructure/config"
)

// replayResult summarises a headless replay.
type replayResult struct {
	State     state.GameState
	Level     int // 1-based; levels+1 once complete
	Frames    int // frames consumed
	Total     int // frames in the recording
	GameOvers int
	Health    int
	Mana      int
}

func (r replayResult) String() string {
	return fmt.Sprintf("state=%s level=%d frames=%d/%d gameovers=%d health=%d mana=%d",
		r.State, r.Level, r.Frames, r.Total, r.GameOvers, r.Health, r.Mana)
}

// runReplay loads a recording and plays it through a fresh session without a window.
func runReplay(cfg *config.GameConfig, filename string) (replayResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return replayResult{}, err
	}
	return playReplay(cfg, replay.NewReplayer(*data))
}

// playReplay steps a session seeded from r until the frames run out or the run completes.
func playReplay(cfg *config.GameConfig, r *replay.Replayer) (replayResult, error) {
	sess, err := session.New(cfg, r.Difficulty(), r.Seed())
	if err != nil {
		return replayResult{}, err
	}

	result := replayResult{State: sess.State(), Total: r.TotalFrames()}
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		st, err := sess.Step(in)
		if err != nil {
			return result, fmt.Errorf("frame %d: %w", r.CurrentFrame()-1, err)
		}
		result.State = st
		if st == state.StateGameOver {
			result.GameOvers++
		}
		if st.Terminal() {
			break
		}
	}

	p := sess.World().Player
	result.Frames = r.CurrentFrame()
	result.Level = sess.LevelIndex() + 1
	result.Health = p.Health
	result.Mana = p.Mana
	return result, nil
}
