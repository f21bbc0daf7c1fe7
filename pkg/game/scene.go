package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a top-level scene (launcher menu, a running game).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the fixed timestep in seconds.
	Update(deltaTime float64)

	// Draw renders the scene onto the logical surface.
	Draw(surface *ebiten.Image)
}
