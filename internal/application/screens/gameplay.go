package screens

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/screenstack/internal/application/screen"
	"github.com/younwookim/screenstack/internal/application/system"
)

var (
	colorField  = color.RGBA{20, 36, 26, 255}
	colorPlayer = color.RGBA{100, 200, 100, 255}
)

// GameplayScreen is a stand-in gameplay view: a square moved with WASD or the
// arrow keys. It is a non-popup screen, so while it is active it covers the
// menu screens beneath it on the stack.
type GameplayScreen struct {
	screen.Base

	x, y   float64
	speed  float64
	loaded bool
}

// NewGameplayScreen creates a gameplay screen with a slow fade-in.
func NewGameplayScreen() *GameplayScreen {
	return &GameplayScreen{
		Base:  screen.NewBase(1.0, 0.5),
		x:     152,
		y:     112,
		speed: 120,
	}
}

// Load acquires the screen's resources.
func (s *GameplayScreen) Load() error {
	s.loaded = true
	return nil
}

// Unload releases the screen's resources.
func (s *GameplayScreen) Unload() {
	s.loaded = false
}

// Update advances the fade. Game logic runs in HandleInput since this screen
// only reacts while it holds focus.
func (s *GameplayScreen) Update(dt float64, otherScreenHasFocus, coveredByOtherScreen bool) {
	s.StepTransition(s, dt, coveredByOtherScreen)
}

// HandleInput moves the player square and opens the pause menu.
func (s *GameplayScreen) HandleInput(dt float64, in *system.InputState) {
	if in.Pause {
		if m := s.Manager(); m != nil {
			if err := m.Add(NewPauseMenu()); err != nil {
				log.Printf("open pause menu: %v", err)
			}
		}
		return
	}

	if in.Left {
		s.x -= s.speed * dt
	}
	if in.Right {
		s.x += s.speed * dt
	}
	if in.Up {
		s.y -= s.speed * dt
	}
	if in.Down {
		s.y += s.speed * dt
	}
}

// Position returns the player square's top-left corner.
func (s *GameplayScreen) Position() (float64, float64) {
	return s.x, s.y
}

// Draw fills the playfield and draws the player square, both faded by the
// transition alpha.
func (s *GameplayScreen) Draw(dt float64, target *ebiten.Image) {
	bounds := target.Bounds()
	alpha := s.Alpha()

	field := color.RGBA{
		uint8(float64(colorField.R) * alpha),
		uint8(float64(colorField.G) * alpha),
		uint8(float64(colorField.B) * alpha),
		uint8(255 * alpha),
	}
	ebitenutil.DrawRect(target, 0, 0, float64(bounds.Dx()), float64(bounds.Dy()), field)

	player := color.RGBA{
		uint8(float64(colorPlayer.R) * alpha),
		uint8(float64(colorPlayer.G) * alpha),
		uint8(float64(colorPlayer.B) * alpha),
		uint8(float64(colorPlayer.A) * alpha),
	}
	ebitenutil.DrawRect(target, s.x, s.y, 16, 16, player)

	ebitenutil.DebugPrint(target, "WASD/Arrows: Move | ESC: Pause")
}
