package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/screenstack/internal/application/system"
)

// Recorder wraps an input poller and records every frame it produces. It
// satisfies the manager's InputPoller interface, so recording is transparent
// to the screen stack.
type Recorder struct {
	source interface {
		Poll(*system.InputState)
	}
	data  ReplayData
	frame int
}

// NewRecorder creates a recorder capturing frames polled from source.
func NewRecorder(source interface{ Poll(*system.InputState) }) *Recorder {
	return &Recorder{
		source: source,
		data: ReplayData{
			Version:   "1.0",
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
	}
}

// Poll polls the wrapped source and records the resulting frame.
func (r *Recorder) Poll(dst *system.InputState) {
	r.source.Poll(dst)
	r.data.Frames = append(r.data.Frames, pack(r.frame, dst))
	r.frame++
}

// FrameCount returns the number of recorded frames.
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Save writes the recording to a JSON file.
func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", " ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}
