// Package screen defines the contract between the screen-stack manager and
// the screens it owns (menus, gameplay views, popups, overlays).
//
// A screen advances its own transition state every frame; the manager reads
// that state to decide focus, covering, and whether the screen is drawn.
package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenstack/internal/application/system"
)

// State describes where a screen is in its transition.
type State int

const (
	// TransitionOn means the screen is fading in.
	TransitionOn State = iota
	// Active means the screen is fully visible and may hold focus.
	Active
	// TransitionOff means the screen is fading out.
	TransitionOff
	// Hidden means the screen is excluded from drawing. It still
	// receives update ticks.
	Hidden
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case TransitionOn:
		return "TransitionOn"
	case Active:
		return "Active"
	case TransitionOff:
		return "TransitionOff"
	case Hidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

// Stack is the manager surface a screen may reach through its back-reference.
// It is a non-owning handle: a screen never keeps the manager alive and never
// outlives its own removal from the manager's point of view.
type Stack interface {
	// Add pushes a screen onto the top of the stack.
	Add(Screen) error
	// Remove detaches a screen immediately, bypassing its fade-out.
	Remove(Screen)
	// Screens returns a bottom-to-top snapshot copy of the stack.
	Screens() []Screen
	// FadeToBlack darkens the whole target at the given opacity using the
	// shared blank image and draw options.
	FadeToBlack(target *ebiten.Image, alpha float64)
	// Blank returns the shared 1x1 white fill image.
	Blank() *ebiten.Image
	// DrawOptions returns the shared draw options instance.
	DrawOptions() *ebiten.DrawImageOptions
}

// Screen represents one entry in the screen stack.
//
// The manager drives the lifecycle: Load when the screen becomes active on an
// initialized manager, Update every frame, HandleInput only on the single
// focus screen, Draw for every non-Hidden screen back-to-front, Unload once
// on removal.
type Screen interface {
	// State reports the screen's current transition state.
	State() State
	// SetState forces the transition state.
	SetState(State)
	// IsPopup reports whether the screen leaves screens beneath it
	// uncovered while active.
	IsPopup() bool
	// IsExiting reports whether the screen has requested removal.
	IsExiting() bool
	// SetExiting marks or clears the removal request.
	SetExiting(bool)
	// Manager returns the owning stack, nil before the screen is added.
	Manager() Stack
	// SetManager installs the back-reference. Called by the stack on Add.
	SetManager(Stack)

	// Load acquires screen-local resources. Called exactly once, either at
	// Add time (manager already initialized) or during the content-load
	// pass.
	Load() error
	// Unload releases screen-local resources. Called exactly once, before
	// the screen reference is dropped.
	Unload()

	// Update advances transition timers and screen logic.
	// otherScreenHasFocus is true when a screen above this one (or the
	// host window losing foreground) already claimed input this frame.
	// coveredByOtherScreen is true when a non-popup screen above this one
	// is active or transitioning on.
	Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool)
	// HandleInput is invoked at most once per frame, only on the resolved
	// focus screen.
	HandleInput(dt float64, in *system.InputState)
	// Draw renders the screen. Not called while the state is Hidden.
	Draw(dt float64, target *ebiten.Image)
}
