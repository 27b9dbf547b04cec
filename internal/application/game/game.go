// Package game provides the ebiten.Game adapter that drives the screen-stack
// manager once per frame.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenstack/internal/application/manager"
)

// Game implements ebiten.Game and forwards the frame cycle to the manager.
type Game struct {
	manager *manager.Manager
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game driving the given manager.
func New(m *manager.Manager, screenW, screenH int) *Game {
	return &Game{
		manager: m,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
}

// Update runs one frame of the screen stack.
// Implements ebiten.Game interface.
//
// The game terminates once the stack is empty; an application quits by
// exiting its last screen.
func (g *Game) Update() error {
	g.manager.Update(g.dt)

	if len(g.manager.Screens()) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the screen stack back to front.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(g.dt, screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
