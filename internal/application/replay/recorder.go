package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/td/internal/application/system"
	"github.com/younwookim/td/internal/domain/entity"
)

// Recorder collects accepted intents frame by frame
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for frames of frameMs milliseconds
func NewRecorder(name string, frameMs int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   "1.0",
			Name:      name,
			FrameMs:   frameMs,
			StartTime: time.Now().Format(time.RFC3339),
		},
		recording: true,
	}
}

// Record adds an intent to the current frame
func (r *Recorder) Record(intent system.Intent) {
	if !r.recording {
		return
	}

	fi := r.current()
	switch i := intent.(type) {
	case system.RestartIntent:
		fi.Restart = true
	case system.TogglePauseIntent:
		fi.Pause = true
	case system.SelectTowerIntent:
		fi.Select = string(i.Type)
		if i.Type == entity.TowerNone {
			fi.Select = ClearSelection
		}
	case system.PlaceTowerIntent:
		fi.Place = &Point{X: i.X, Y: i.Y}
	}
}

// current returns the entry for the current frame, appending one if needed
func (r *Recorder) current() *FrameInput {
	n := len(r.data.Frames)
	if n == 0 || r.data.Frames[n-1].F != r.frame {
		r.data.Frames = append(r.data.Frames, FrameInput{F: r.frame})
		n++
	}
	return &r.data.Frames[n-1]
}

// NextFrame moves recording on to the next frame
func (r *Recorder) NextFrame() {
	if r.recording {
		r.frame++
	}
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

// Frame returns the current frame number
func (r *Recorder) Frame() int {
	return r.frame
}

// Data returns the recorded data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
