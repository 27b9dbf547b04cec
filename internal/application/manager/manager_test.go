package manager

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/screenstack/internal/application/screen"
	"github.com/younwookim/screenstack/internal/application/system"
)

// mockScreen is a test double for the Screen interface
type mockScreen struct {
	screen.Base
	name string

	loadCalled   int
	unloadCalled int
	updateCalled int
	inputCalled  int
	drawCalled   int

	lastOtherFocus bool
	lastCovered    bool
	lastInput      *system.InputState

	loadErr  error
	onUpdate func()
	log      *[]string
}

func newMock(name string, state screen.State, popup bool) *mockScreen {
	s := &mockScreen{Base: screen.NewBase(0, 0), name: name}
	s.SetState(state)
	s.SetPopup(popup)
	return s
}

func (m *mockScreen) Load() error {
	m.loadCalled++
	return m.loadErr
}

func (m *mockScreen) Unload() {
	m.unloadCalled++
}

func (m *mockScreen) Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool) {
	m.updateCalled++
	m.lastOtherFocus = otherScreenHasFocus
	m.lastCovered = coveredByOtherScreen
	if m.log != nil {
		*m.log = append(*m.log, m.name+":update")
	}
	if m.onUpdate != nil {
		m.onUpdate()
	}
}

func (m *mockScreen) HandleInput(dt float64, in *system.InputState) {
	m.inputCalled++
	m.lastInput = in
}

func (m *mockScreen) Draw(dt float64, target *ebiten.Image) {
	m.drawCalled++
	if m.log != nil {
		*m.log = append(*m.log, m.name+":draw")
	}
}

// stubPoller is a test double for the input backend
type stubPoller struct {
	polls int
}

func (p *stubPoller) Poll(dst *system.InputState) {
	p.polls++
}

func newTestManager() (*Manager, *stubPoller) {
	poller := &stubPoller{}
	m := New(poller)
	m.SetFocusProbe(func() bool { return true })
	return m, poller
}

func TestAdd_NilScreen(t *testing.T) {
	m, _ := newTestManager()

	err := m.Add(nil)
	assert.ErrorIs(t, err, ErrNilScreen)
	assert.Empty(t, m.Screens())
}

func TestAdd_Duplicate(t *testing.T) {
	m, _ := newTestManager()
	s := newMock("a", screen.Active, false)

	require.NoError(t, m.Add(s))
	err := m.Add(s)
	assert.ErrorIs(t, err, ErrScreenPresent)
	assert.Len(t, m.Screens(), 1, "duplicate Add must not grow the stack")
}

func TestAdd_SetsManagerAndClearsExiting(t *testing.T) {
	m, _ := newTestManager()
	s := newMock("a", screen.Active, false)
	s.SetExiting(true)

	require.NoError(t, m.Add(s))
	assert.Same(t, m, s.Manager(), "Add should install the back-reference")
	assert.False(t, s.IsExiting(), "Add should clear the exiting flag")
}

func TestAdd_LoadGating(t *testing.T) {
	m, _ := newTestManager()
	early := newMock("early", screen.Active, false)

	require.NoError(t, m.Add(early))
	assert.Equal(t, 0, early.loadCalled, "Add before Initialize must not load")

	m.Initialize()
	assert.Equal(t, 0, early.loadCalled, "Initialize alone must not retroactively load")

	late := newMock("late", screen.Active, false)
	require.NoError(t, m.Add(late))
	assert.Equal(t, 1, late.loadCalled, "Add after Initialize loads eagerly")
}

func TestAdd_LoadErrorPropagates(t *testing.T) {
	m, _ := newTestManager()
	m.Initialize()

	s := newMock("a", screen.Active, false)
	s.loadErr = assert.AnError

	err := m.Add(s)
	assert.Error(t, err)
	assert.Empty(t, m.Screens(), "a screen that failed to load must not join the stack")
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	m, _ := newTestManager()
	m.Initialize()
	s := newMock("a", screen.Active, false)

	m.Remove(s)
	assert.Equal(t, 0, s.unloadCalled)
}

func TestRemove_UnloadExactlyOnce(t *testing.T) {
	m, _ := newTestManager()
	m.Initialize()
	s := newMock("a", screen.Active, false)
	require.NoError(t, m.Add(s))

	m.Remove(s)
	m.Remove(s)
	assert.Equal(t, 1, s.unloadCalled, "second Remove must be a silent no-op")
	assert.Empty(t, m.Screens())
}

func TestRemove_BeforeInitializeSkipsUnload(t *testing.T) {
	m, _ := newTestManager()
	s := newMock("a", screen.Active, false)
	require.NoError(t, m.Add(s))

	m.Remove(s)
	assert.Equal(t, 0, s.unloadCalled, "Unload only fires once the manager is initialized")
}

func TestUpdate_FocusExclusivity_PopupOnTop(t *testing.T) {
	m, _ := newTestManager()
	a := newMock("a", screen.Active, false) // bottom, non-popup
	b := newMock("b", screen.Active, true)  // top, popup
	require.NoError(t, m.Add(a))
	require.NoError(t, m.Add(b))

	m.Update(1.0 / 60)

	assert.Equal(t, 1, b.inputCalled, "topmost active screen gets input")
	assert.Equal(t, 0, a.inputCalled, "only one screen per frame gets input")
	assert.True(t, a.lastOtherFocus, "screen below the focus screen sees focus taken")
	assert.False(t, a.lastCovered, "a popup does not cover screens beneath it")
}

func TestUpdate_NonPopupCoversScreensBelow(t *testing.T) {
	m, _ := newTestManager()
	a := newMock("a", screen.Active, false)
	b := newMock("b", screen.Active, false)
	require.NoError(t, m.Add(a))
	require.NoError(t, m.Add(b))

	m.Update(1.0 / 60)

	assert.Equal(t, 1, b.inputCalled)
	assert.Equal(t, 0, a.inputCalled)
	assert.True(t, a.lastCovered, "non-popup active screen covers everything beneath it")
	assert.False(t, b.lastCovered, "topmost screen is never covered")
}

func TestUpdate_TransitionOnScreenTakesFocus(t *testing.T) {
	m, _ := newTestManager()
	a := newMock("a", screen.Active, false)
	b := newMock("b", screen.TransitionOn, false)
	require.NoError(t, m.Add(a))
	require.NoError(t, m.Add(b))

	m.Update(1.0 / 60)

	assert.Equal(t, 1, b.inputCalled, "a screen still fading in may hold focus")
	assert.Equal(t, 0, a.inputCalled)
}

func TestUpdate_TransitionOffYieldsFocus(t *testing.T) {
	m, _ := newTestManager()
	a := newMock("a", screen.Active, false)
	b := newMock("b", screen.TransitionOff, false)
	require.NoError(t, m.Add(a))
	require.NoError(t, m.Add(b))

	m.Update(1.0 / 60)

	assert.Equal(t, 0, b.inputCalled, "a screen fading out cannot hold focus")
	assert.Equal(t, 1, a.inputCalled, "focus falls through to the next eligible screen")
	assert.False(t, a.lastCovered, "a transitioning-off screen does not cover")
}

func TestUpdate_UnfocusedHostBlocksAllInput(t *testing.T) {
	m, _ := newTestManager()
	m.SetFocusProbe(func() bool { return false })
	a := newMock("a", screen.Active, false)
	b := newMock("b", screen.Active, false)
	require.NoError(t, m.Add(a))
	require.NoError(t, m.Add(b))

	m.Update(1.0 / 60)

	assert.Equal(t, 0, a.inputCalled)
	assert.Equal(t, 0, b.inputCalled, "no screen claims input while the host is backgrounded")
	assert.Equal(t, 1, a.updateCalled, "screens still tick without host focus")
	assert.Equal(t, 1, b.updateCalled)
}

func TestUpdate_TopToBottomOrder(t *testing.T) {
	m, _ := newTestManager()
	var log []string
	a := newMock("a", screen.Active, false)
	b := newMock("b", screen.Active, false)
	c := newMock("c", screen.Active, false)
	for _, s := range []*mockScreen{a, b, c} {
		s.log = &log
		require.NoError(t, m.Add(s))
	}

	m.Update(1.0 / 60)

	assert.Equal(t, []string{"c:update", "b:update", "a:update"}, log)
}

func TestUpdate_RemoveOtherScreenMidFrame(t *testing.T) {
	m, _ := newTestManager()
	a := newMock("a", screen.Active, false)
	b := newMock("b", screen.Active, false)
	require.NoError(t, m.Add(a))
	require.NoError(t, m.Add(b))

	// b runs first (top) and removes a before a's turn comes.
	b.onUpdate = func() { m.Remove(a) }

	m.Update(1.0 / 60)

	assert.Equal(t, 1, b.updateCalled)
	assert.Equal(t, 0, a.updateCalled, "a screen removed mid-frame must not be updated")
	assert.Equal(t, []screen.Screen{b}, m.Screens())

	m.Update(1.0 / 60)
	assert.Equal(t, 2, b.updateCalled)
	assert.Equal(t, 0, a.updateCalled)
}

func TestUpdate_AddScreenMidFrame(t *testing.T) {
	m, _ := newTestManager()
	a := newMock("a", screen.Active, false)
	c := newMock("c", screen.Active, false)
	require.NoError(t, m.Add(a))

	a.onUpdate = func() {
		if a.updateCalled == 1 {
			require.NoError(t, m.Add(c))
		}
	}

	m.Update(1.0 / 60)
	assert.Equal(t, 0, c.updateCalled, "a screen added mid-frame waits for the next frame")

	m.Update(1.0 / 60)
	assert.Equal(t, 1, c.updateCalled)
}

func TestUpdate_SelfRemovalCompletesCall(t *testing.T) {
	m, _ := newTestManager()
	m.Initialize()
	a := newMock("a", screen.Active, false)
	require.NoError(t, m.Add(a))

	// The screen removes itself mid-call; the in-progress Update still
	// runs to completion and the screen is gone afterwards.
	a.onUpdate = func() { m.Remove(a) }

	m.Update(1.0 / 60)

	assert.Equal(t, 1, a.updateCalled)
	assert.Equal(t, 1, a.unloadCalled)
	assert.Empty(t, m.Screens())

	m.Update(1.0 / 60)
	assert.Equal(t, 1, a.updateCalled, "a detached screen receives no further ticks")
}

func TestUpdate_PollsSnapshotInPlace(t *testing.T) {
	m, poller := newTestManager()
	a := newMock("a", screen.Active, false)
	require.NoError(t, m.Add(a))

	m.Update(1.0 / 60)
	m.Update(1.0 / 60)

	assert.Equal(t, 2, poller.polls, "input is refreshed once per frame")
	require.NotNil(t, a.lastInput)

	first := a.lastInput
	m.Update(1.0 / 60)
	assert.Same(t, first, a.lastInput, "the snapshot instance is reused, not reallocated")
}

func TestDraw_BottomToTopSkippingHidden(t *testing.T) {
	m, _ := newTestManager()
	var log []string
	a := newMock("a", screen.Active, false)
	b := newMock("b", screen.Hidden, false)
	c := newMock("c", screen.TransitionOff, false)
	for _, s := range []*mockScreen{a, b, c} {
		s.log = &log
		require.NoError(t, m.Add(s))
	}

	m.Draw(1.0/60, nil)

	assert.Equal(t, []string{"a:draw", "c:draw"}, log,
		"draw runs back to front, hidden screens skipped, fading-out screens drawn")

	m.Update(1.0 / 60)
	assert.Equal(t, 1, b.updateCalled, "a hidden screen still receives update ticks")
}

func TestScreens_ReturnsSnapshotCopy(t *testing.T) {
	m, _ := newTestManager()
	a := newMock("a", screen.Active, false)
	b := newMock("b", screen.Active, false)
	require.NoError(t, m.Add(a))
	require.NoError(t, m.Add(b))

	snapshot := m.Screens()
	require.Equal(t, []screen.Screen{a, b}, snapshot, "ordered bottom to top")

	snapshot[0] = nil
	assert.Equal(t, []screen.Screen{a, b}, m.Screens(), "mutating the snapshot must not touch the live stack")
}

func TestLoadContent_LoadsEveryPresentScreen(t *testing.T) {
	m, _ := newTestManager()
	a := newMock("a", screen.Active, false)
	b := newMock("b", screen.Active, false)
	require.NoError(t, m.Add(a))
	require.NoError(t, m.Add(b))
	m.Initialize()

	require.NoError(t, m.LoadContent())
	assert.Equal(t, 1, a.loadCalled, "content load covers screens added before initialization")
	assert.Equal(t, 1, b.loadCalled)
	assert.NotNil(t, m.Blank())
	assert.NotNil(t, m.DrawOptions())

	m.UnloadContent()
	assert.Equal(t, 1, a.unloadCalled)
	assert.Equal(t, 1, b.unloadCalled)
	assert.Nil(t, m.Blank(), "shared resources are released on the single exit path")
}

func TestFadeToBlack(t *testing.T) {
	m, _ := newTestManager()
	require.NoError(t, m.LoadContent())
	defer m.UnloadContent()

	target := ebiten.NewImage(64, 48)
	m.FadeToBlack(target, 0.5)
}
