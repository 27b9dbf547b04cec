package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/screenstack/internal/application/screen"
	"github.com/younwookim/screenstack/internal/application/system"
)

// MessageBoxScreen is a confirm/cancel popup. As a popup it takes focus
// without hiding the screens beneath it; it darkens them instead.
type MessageBoxScreen struct {
	screen.Base
	text string

	// OnAccept runs when the box is confirmed, before the box exits.
	OnAccept func()
	// OnCancel runs when the box is dismissed, before the box exits.
	OnCancel func()
}

// NewMessageBox creates a popup message box with the given prompt.
func NewMessageBox(text string) *MessageBoxScreen {
	s := &MessageBoxScreen{
		Base: screen.NewBase(0.2, 0.2),
		text: text + "\n\n[Enter] ok   [Esc] cancel",
	}
	s.SetPopup(true)
	return s
}

// Update advances the popup's fade.
func (s *MessageBoxScreen) Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool) {
	s.StepTransition(s, dt, coveredByOtherScreen)
}

// HandleInput resolves the confirm/cancel keys and exits the box.
func (s *MessageBoxScreen) HandleInput(dt float64, in *system.InputState) {
	switch {
	case in.MenuSelect:
		if s.OnAccept != nil {
			s.OnAccept()
		}
		s.Exit(s)
	case in.MenuCancel:
		if s.OnCancel != nil {
			s.OnCancel()
		}
		s.Exit(s)
	}
}

// Draw darkens the background through the shared fade helper and prints the
// prompt centered-ish on the target.
func (s *MessageBoxScreen) Draw(dt float64, target *ebiten.Image) {
	if m := s.Manager(); m != nil {
		m.FadeToBlack(target, s.Alpha()*2/3)
	}

	bounds := target.Bounds()
	ebitenutil.DebugPrintAt(target, s.text, bounds.Dx()/2-80, bounds.Dy()/2-16)
}
