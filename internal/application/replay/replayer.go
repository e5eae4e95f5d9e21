package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/younwookim/td/internal/application/session"
	"github.com/younwookim/td/internal/application/state"
	"github.com/younwookim/td/internal/application/system"
	"github.com/younwookim/td/internal/domain/entity"
)

// DefaultFrameMs is used when replay data does not set a frame length
const DefaultFrameMs = 16

// Replayer handles intent playback from recorded data
type Replayer struct {
	data   ReplayData
	cursor int
}

// NewReplayer creates a new replayer from replay data.
// Frames are ordered by frame number.
func NewReplayer(data ReplayData) *Replayer {
	frames := make([]FrameInput, len(data.Frames))
	copy(frames, data.Frames)
	sort.SliceStable(frames, func(i, j int) bool { return frames[i].F < frames[j].F })
	data.Frames = frames

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
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Intents returns the intents recorded for frame, in the order a frame of
// live input would issue them. Entries before frame that were never asked
// for are skipped.
func (r *Replayer) Intents(frame int) []system.Intent {
	var intents []system.Intent
	for r.cursor < len(r.data.Frames) {
		fi := r.data.Frames[r.cursor]
		if fi.F > frame {
			break
		}
		r.cursor++
		if fi.F < frame {
			continue
		}
		intents = append(intents, fi.Intents()...)
	}
	return intents
}

// Intents converts a recorded frame back into intents
func (fi FrameInput) Intents() []system.Intent {
	var intents []system.Intent
	if fi.Restart {
		intents = append(intents, system.RestartIntent{})
	}
	if fi.Pause {
		intents = append(intents, system.TogglePauseIntent{})
	}
	switch fi.Select {
	case "":
	case ClearSelection:
		intents = append(intents, system.SelectTowerIntent{Type: entity.TowerNone})
	default:
		intents = append(intents, system.SelectTowerIntent{Type: entity.TowerType(fi.Select)})
	}
	if fi.Place != nil {
		intents = append(intents, system.PlaceTowerIntent{X: fi.Place.X, Y: fi.Place.Y})
	}
	return intents
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.cursor >= len(r.data.Frames)
}

// TotalFrames returns the number of frames the recording spans
func (r *Replayer) TotalFrames() int {
	if len(r.data.Frames) == 0 {
		return 0
	}
	return r.data.Frames[len(r.data.Frames)-1].F + 1
}

// FrameDuration returns the fixed frame length used on playback
func (r *Replayer) FrameDuration() time.Duration {
	ms := r.data.FrameMs
	if ms <= 0 {
		ms = DefaultFrameMs
	}
	return time.Duration(ms) * time.Millisecond
}

// Name returns the name of the recording
func (r *Replayer) Name() string {
	return r.data.Name
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.cursor = 0
}

// Play drives s with the replayer's intents on fixed frames beginning at
// start. It runs at most maxFrames frames and stops early once the game has
// ended and nothing is left to replay. It returns the final state.
//
// Playback is deterministic: the same session config and recording always
// produce the same state.
func Play(s *session.Session, r *Replayer, start time.Time, maxFrames int) *state.GameState {
	step := r.FrameDuration()
	spawnInterval := time.Duration(s.Config().Game.Rules.SpawnCheckIntervalMs) * time.Millisecond
	spawnEvery := max(1, int(spawnInterval/step))

	now := start
	for f := 0; f < maxFrames; f++ {
		for _, intent := range r.Intents(f) {
			s.Apply(intent)
		}
		s.Frame(now)
		if f%spawnEvery == 0 {
			s.SpawnCheck()
		}
		if s.State().Status.IsTerminal() && r.Done() {
			break
		}
		now = now.Add(step)
	}
	return s.State()
}
