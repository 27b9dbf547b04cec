package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/screenstack/internal/application/system"
)

// Player replays a recorded session frame by frame. It satisfies the
// manager's InputPoller interface; once the recording runs out it reports
// released input forever.
type Player struct {
	data  ReplayData
	frame int
}

// NewPlayer creates a player from replay data.
func NewPlayer(data ReplayData) *Player {
	return &Player{data: data}
}

// Load loads replay data from a file.
func Load(filename string) (*ReplayData, error) {
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

// Poll writes the next recorded frame into dst and advances.
func (p *Player) Poll(dst *system.InputState) {
	if p.frame >= len(p.data.Frames) {
		*dst = system.InputState{}
		return
	}

	unpack(p.data.Frames[p.frame], dst)
	p.frame++
}

// Done reports whether the recording is exhausted.
func (p *Player) Done() bool {
	return p.frame >= len(p.data.Frames)
}

// CurrentFrame returns the current frame number
func (p *Player) CurrentFrame() int {
	return p.frame
}

// TotalFrames returns the total number of frames
func (p *Player) TotalFrames() int {
	return len(p.data.Frames)
}
