package gui

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the app. The active scene gets the update tick
// and draws the whole frame over the table felt.
type Scene interface {
	// Update advances the scene by one tick
	Update(app *App) error

	// Draw renders the scene
	Draw(app *App, screen *ebiten.Image)
}
