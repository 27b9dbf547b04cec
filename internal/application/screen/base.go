package screen

import "github.com/younwookim/screenstack/internal/application/system"

// Base carries the state every screen needs: transition timers, the
// popup/exiting flags, and the manager back-reference. Concrete screens embed
// it and implement Update and Draw themselves, calling StepTransition from
// their Update to run the standard fade state machine.
type Base struct {
	// TransitionOnTime is how long the fade-in takes, in seconds.
	TransitionOnTime float64
	// TransitionOffTime is how long the fade-out takes, in seconds.
	TransitionOffTime float64

	state    State
	popup    bool
	exiting  bool
	stack    Stack
	position float64 // 1 = fully off-screen, 0 = fully on
}

// NewBase creates a screen base with the given transition durations.
// The screen starts fully off-screen in the TransitionOn state.
func NewBase(onTime, offTime float64) Base {
	return Base{
		TransitionOnTime:  onTime,
		TransitionOffTime: offTime,
		state:             TransitionOn,
		position:          1,
	}
}

// State reports the screen's current transition state.
func (b *Base) State() State { return b.state }

// SetState forces the transition state.
func (b *Base) SetState(s State) { b.state = s }

// IsPopup reports whether the screen leaves screens beneath it uncovered.
func (b *Base) IsPopup() bool { return b.popup }

// SetPopup marks the screen as a popup.
func (b *Base) SetPopup(popup bool) { b.popup = popup }

// IsExiting reports whether the screen has requested removal.
func (b *Base) IsExiting() bool { return b.exiting }

// SetExiting marks or clears the removal request.
func (b *Base) SetExiting(exiting bool) { b.exiting = exiting }

// Manager returns the owning stack, nil before the screen is added.
func (b *Base) Manager() Stack { return b.stack }

// SetManager installs the back-reference.
func (b *Base) SetManager(s Stack) { b.stack = s }

// Load is a no-op; screens with resources override it.
func (b *Base) Load() error { return nil }

// Unload is a no-op; screens with resources override it.
func (b *Base) Unload() {}

// HandleInput is a no-op; screens that react to input override it.
func (b *Base) HandleInput(dt float64, in *system.InputState) {}

// TransitionPosition reports transition progress: 1 is fully off-screen,
// 0 is fully on.
func (b *Base) TransitionPosition() float64 { return b.position }

// Alpha reports the screen's fade opacity, 0 (invisible) to 1 (opaque).
func (b *Base) Alpha() float64 { return 1 - b.position }

// StepTransition runs the standard per-frame transition state machine.
// self must be the embedding screen; it is what gets handed to the stack
// when the fade-out completes.
//
// An exiting screen transitions off and removes itself once the fade is
// done. A covered screen transitions off and hides, ready to come back. An
// uncovered screen transitions on until it is fully active.
func (b *Base) StepTransition(self Screen, dt float64, covered bool) {
	switch {
	case b.exiting:
		b.state = TransitionOff
		if !b.step(dt, b.TransitionOffTime, 1) && b.stack != nil {
			b.stack.Remove(self)
		}
	case covered:
		if b.step(dt, b.TransitionOffTime, 1) {
			b.state = TransitionOff
		} else {
			b.state = Hidden
		}
	default:
		if b.step(dt, b.TransitionOnTime, -1) {
			b.state = TransitionOn
		} else {
			b.state = Active
		}
	}
}

// Exit requests a graceful removal: the screen fades out and removes itself
// when the fade completes. A screen with no fade-out time is removed
// immediately.
func (b *Base) Exit(self Screen) {
	if b.TransitionOffTime == 0 {
		if b.stack != nil {
			b.stack.Remove(self)
		}
		return
	}
	b.exiting = true
}

// step moves the transition position and reports whether the transition is
// still in progress. direction is -1 toward on, +1 toward off.
func (b *Base) step(dt, duration, direction float64) bool {
	delta := 1.0
	if duration > 0 {
		delta = dt / duration
	}
	b.position += delta * direction

	if (direction < 0 && b.position <= 0) || (direction > 0 && b.position >= 1) {
		if b.position < 0 {
			b.position = 0
		}
		if b.position > 1 {
			b.position = 1
		}
		return false
	}
	return true
}
