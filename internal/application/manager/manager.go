// Package manager provides the screen-stack manager: an ordered stack of
// screens driven through a per-frame update/draw cycle, with input routed to
// exactly one screen per frame.
//
// The stack is insertion-ordered: index 0 is the back-most screen, the last
// index is the front-most. Update walks the stack front-to-back so the
// topmost eligible screen wins focus; Draw walks it back-to-front so screens
// composite painter's-algorithm style.
package manager

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenstack/internal/application/screen"
	"github.com/younwookim/screenstack/internal/application/system"
)

var (
	// ErrNilScreen is returned by Add when the screen is nil.
	ErrNilScreen = errors.New("screen is nil")
	// ErrScreenPresent is returned by Add when the screen is already on
	// the stack.
	ErrScreenPresent = errors.New("screen already on the stack")
)

// InputPoller refreshes an input snapshot from the input backend.
type InputPoller interface {
	Poll(*system.InputState)
}

// Manager owns an ordered stack of screens and drives their lifecycle.
//
// All methods must be called from the single update/draw goroutine; the
// manager is frame-driven and does no locking.
type Manager struct {
	screens []screen.Screen

	// toUpdate is the per-frame iteration snapshot. Screens may add or
	// remove screens from inside their own Update; iterating a copy keeps
	// the walk stable, and Remove also drops the screen from this slice so
	// a removed screen is never updated later in the same frame.
	toUpdate []screen.Screen

	input       *system.InputState
	poller      InputPoller
	focused     func() bool
	initialized bool

	blank    *ebiten.Image
	drawOpts *ebiten.DrawImageOptions
}

// New creates a manager polling input from the given poller. A nil poller
// defaults to the keyboard/mouse input system.
func New(poller InputPoller) *Manager {
	if poller == nil {
		poller = system.NewInputSystem()
	}
	return &Manager{
		input:   &system.InputState{},
		poller:  poller,
		focused: ebiten.IsFocused,
	}
}

// SetFocusProbe overrides how the manager decides whether the host window
// holds foreground focus. The default is ebiten.IsFocused.
func (m *Manager) SetFocusProbe(probe func() bool) {
	m.focused = probe
}

// Initialize marks host startup as complete. From this point Add and Remove
// eagerly fire the screen Load and Unload hooks.
func (m *Manager) Initialize() {
	m.initialized = true
}

// Add pushes a screen onto the top of the stack. If the manager is already
// initialized the screen's Load hook runs now, so its resources are ready
// before the next frame.
func (m *Manager) Add(s screen.Screen) error {
	if s == nil {
		return ErrNilScreen
	}
	if m.indexOf(s) >= 0 {
		return fmt.Errorf("%w: %T", ErrScreenPresent, s)
	}

	s.SetManager(m)
	s.SetExiting(false)

	if m.initialized {
		if err := s.Load(); err != nil {
			return fmt.Errorf("load screen %T: %w", s, err)
		}
	}

	m.screens = append(m.screens, s)
	return nil
}

// Remove detaches a screen immediately: Unload fires (when the manager is
// initialized) and the screen leaves both the live stack and the current
// frame's update walk. Removing an absent screen is a no-op, so a screen's
// own transition-completion logic can call it without bookkeeping.
//
// This bypasses the graceful fade-out; screens that want one should set
// themselves exiting and let their transition call Remove when it completes.
func (m *Manager) Remove(s screen.Screen) {
	i := m.indexOf(s)
	if i < 0 {
		return
	}

	if m.initialized {
		s.Unload()
	}

	m.screens = append(m.screens[:i], m.screens[i+1:]...)
	if j := index(m.toUpdate, s); j >= 0 {
		m.toUpdate = append(m.toUpdate[:j], m.toUpdate[j+1:]...)
	}
}

// Screens returns a copy of the stack, ordered bottom to top. The live stack
// is only mutable through Add and Remove.
func (m *Manager) Screens() []screen.Screen {
	out := make([]screen.Screen, len(m.screens))
	copy(out, m.screens)
	return out
}

// Update runs one frame: refreshes the input snapshot, then walks the stack
// from top to bottom updating every screen and resolving focus and covering.
//
// The first Active or TransitionOn screen found from the top receives the
// input snapshot, unless the host window has lost foreground focus — then no
// screen does. Every non-popup active screen covers all screens beneath it.
func (m *Manager) Update(dt float64) {
	m.poller.Poll(m.input)

	m.toUpdate = append(m.toUpdate[:0], m.screens...)

	otherScreenHasFocus := !m.focused()
	coveredByOtherScreen := false

	for len(m.toUpdate) > 0 {
		s := m.toUpdate[len(m.toUpdate)-1]
		m.toUpdate = m.toUpdate[:len(m.toUpdate)-1]

		s.Update(dt, otherScreenHasFocus, coveredByOtherScreen)

		if st := s.State(); st != screen.TransitionOn && st != screen.Active {
			continue
		}

		if !otherScreenHasFocus {
			s.HandleInput(dt, m.input)
			otherScreenHasFocus = true
		}
		if !s.IsPopup() {
			coveredByOtherScreen = true
		}
	}
}

// Draw renders the stack bottom to top, skipping Hidden screens.
func (m *Manager) Draw(dt float64, target *ebiten.Image) {
	for _, s := range m.screens {
		if s.State() == screen.Hidden {
			continue
		}
		s.Draw(dt, target)
	}
}

// LoadContent creates the shared render resources and runs the Load hook on
// every screen already present, covering screens added before the host
// finished initializing. Load failures are fatal to the host: no screen can
// draw without the shared resources.
func (m *Manager) LoadContent() error {
	m.blank = ebiten.NewImage(1, 1)
	m.blank.Fill(color.White)
	m.drawOpts = &ebiten.DrawImageOptions{}

	for _, s := range m.screens {
		if err := s.Load(); err != nil {
			return fmt.Errorf("load screen %T: %w", s, err)
		}
	}
	return nil
}

// UnloadContent runs the Unload hook on every present screen, then releases
// the shared render resources. This is the single release path; the shared
// resources are freed exactly once.
func (m *Manager) UnloadContent() {
	for _, s := range m.screens {
		s.Unload()
	}

	if m.blank != nil {
		m.blank.Deallocate()
		m.blank = nil
	}
	m.drawOpts = nil
}

// FadeToBlack stretches the shared blank image over the whole target, tinted
// black at the given opacity. Screens use it to darken the background behind
// a popup or during a fade.
func (m *Manager) FadeToBlack(target *ebiten.Image, alpha float64) {
	if m.blank == nil {
		return
	}

	bounds := target.Bounds()
	m.drawOpts.GeoM.Reset()
	m.drawOpts.GeoM.Scale(float64(bounds.Dx()), float64(bounds.Dy()))
	m.drawOpts.ColorScale.Reset()
	m.drawOpts.ColorScale.Scale(0, 0, 0, float32(alpha))
	target.DrawImage(m.blank, m.drawOpts)
	m.drawOpts.ColorScale.Reset()
}

// Blank returns the shared 1x1 white fill image, nil before LoadContent.
func (m *Manager) Blank() *ebiten.Image { return m.blank }

// DrawOptions returns the shared draw options instance, nil before
// LoadContent.
func (m *Manager) DrawOptions() *ebiten.DrawImageOptions { return m.drawOpts }

func (m *Manager) indexOf(s screen.Screen) int {
	return index(m.screens, s)
}

func index(list []screen.Screen, s screen.Screen) int {
	for i, cur := range list {
		if cur == s {
			return i
		}
	}
	return -1
}
