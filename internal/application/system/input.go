package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the current input state.
//
// A single instance lives for the whole process: the screen manager refreshes
// it in place once per frame and hands it to the focus screen only. Screens
// must not retain it across frames.
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	MenuUp     bool
	MenuDown   bool
	MenuSelect bool
	MenuCancel bool
	Pause      bool

	MouseX     int
	MouseY     int
	MouseClick bool
}

// InputSystem polls the raw input devices into an InputState snapshot.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current device state into dst, reusing the existing
// instance so no per-frame allocation happens.
func (s *InputSystem) Poll(dst *InputState) {
	mx, my := ebiten.CursorPosition()

	dst.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp)
	dst.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown)
	dst.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	dst.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)

	dst.MenuUp = inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyUp)
	dst.MenuDown = inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyDown)
	dst.MenuSelect = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyZ)
	dst.MenuCancel = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyX)
	dst.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	dst.MouseX = mx
	dst.MouseY = my
	dst.MouseClick = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
