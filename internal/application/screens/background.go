package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/screenstack/internal/application/screen"
)

var colorBackdrop = color.RGBA{26, 26, 46, 255}

// BackgroundScreen sits at the bottom of the stack behind the menus. It
// ignores the covered flag so it stays visible beneath every menu layered on
// top of it, and only fades when it is added or removed.
type BackgroundScreen struct {
	screen.Base
}

// NewBackgroundScreen creates the menu backdrop.
func NewBackgroundScreen() *BackgroundScreen {
	return &BackgroundScreen{Base: screen.NewBase(0.5, 0.5)}
}

// Update advances the fade, deliberately passing covered=false so menus on
// top never hide the backdrop.
func (s *BackgroundScreen) Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool) {
	s.StepTransition(s, dt, false)
}

// Draw fills the whole target with the backdrop color at the fade alpha.
func (s *BackgroundScreen) Draw(dt float64, target *ebiten.Image) {
	bounds := target.Bounds()
	alpha := s.Alpha()
	c := color.RGBA{
		uint8(float64(colorBackdrop.R) * alpha),
		uint8(float64(colorBackdrop.G) * alpha),
		uint8(float64(colorBackdrop.B) * alpha),
		uint8(255 * alpha),
	}
	ebitenutil.DrawRect(target, 0, 0, float64(bounds.Dx()), float64(bounds.Dy()), c)
}
