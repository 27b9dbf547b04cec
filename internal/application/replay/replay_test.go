package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/screenstack/internal/application/system"
)

// scriptSource feeds a fixed sequence of input frames
type scriptSource struct {
	frames []system.InputState
	next   int
}

func (s *scriptSource) Poll(dst *system.InputState) {
	if s.next < len(s.frames) {
		*dst = s.frames[s.next]
		s.next++
		return
	}
	*dst = system.InputState{}
}

func TestRecorder_CapturesPolledFrames(t *testing.T) {
	source := &scriptSource{frames: []system.InputState{
		{MenuDown: true, MouseX: 10, MouseY: 20},
		{MenuSelect: true},
		{Right: true, Pause: true},
	}}
	rec := NewRecorder(source)

	var in system.InputState
	for i := 0; i < 3; i++ {
		rec.Poll(&in)
	}

	assert.Equal(t, 3, rec.FrameCount())
	assert.True(t, in.Right, "Poll still hands the live frame to the caller")
}

func TestRecordThenPlayBack(t *testing.T) {
	source := &scriptSource{frames: []system.InputState{
		{MenuDown: true, MouseX: 10, MouseY: 20},
		{MenuSelect: true},
		{Right: true, Up: true},
	}}
	rec := NewRecorder(source)

	var in system.InputState
	for i := 0; i < 3; i++ {
		rec.Poll(&in)
	}

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, rec.Save(path))

	data, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0", data.Version)
	require.Len(t, data.Frames, 3)

	player := NewPlayer(*data)
	var out system.InputState

	player.Poll(&out)
	assert.Equal(t, system.InputState{MenuDown: true, MouseX: 10, MouseY: 20}, out)

	player.Poll(&out)
	assert.Equal(t, system.InputState{MenuSelect: true}, out)

	player.Poll(&out)
	assert.Equal(t, system.InputState{Right: true, Up: true}, out)
	assert.True(t, player.Done())

	// Past the end the player reports released input, not the last frame.
	player.Poll(&out)
	assert.Equal(t, system.InputState{}, out)
}

func TestPlayer_Progress(t *testing.T) {
	player := NewPlayer(ReplayData{Frames: []FrameInput{{F: 0}, {F: 1}}})

	assert.Equal(t, 0, player.CurrentFrame())
	assert.Equal(t, 2, player.TotalFrames())
	assert.False(t, player.Done())

	var in system.InputState
	player.Poll(&in)
	player.Poll(&in)
	assert.True(t, player.Done())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
