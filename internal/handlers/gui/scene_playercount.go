package gui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// countKeys maps the digit row to player counts
var countKeys = []ebiten.Key{
	ebiten.Key1,
	ebiten.Key2,
	ebiten.Key3,
	ebiten.Key4,
	ebiten.Key5,
	ebiten.Key6,
	ebiten.Key7,
	ebiten.Key8,
	ebiten.Key9,
}

// playerCountScene asks how many players are sitting down
type playerCountScene struct {
	lastCount int
	status    string
}

func newPlayerCountScene(a *App) *playerCountScene {
	return &playerCountScene{
		lastCount: a.settings.LastPlayerCount(),
	}
}

// Update implements Scene
func (s *playerCountScene) Update(a *App) error {
	count := 0

	for i, key := range countKeys {
		if i >= a.maxPlayers {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			count = i + 1
		}
	}

	// Enter reuses last session's table
	if count == 0 && inpututil.IsKeyJustPressed(ebiten.KeyEnter) &&
		s.lastCount >= 1 && s.lastCount <= a.maxPlayers {
		count = s.lastCount
	}

	if count == 0 {
		return nil
	}

	if err := a.startGame(count); err != nil {
		log.Printf("failed to start game: %v", err)
		s.status = "Could not start the game, try again"
	}

	return nil
}

// Draw implements Scene
func (s *playerCountScene) Draw(a *App, screen *ebiten.Image) {
	drawTextCentered(screen, a.fonts.title, "YAHTZEE", baseWidth/2, 180, colorGold)
	drawTextCentered(screen, a.fonts.body,
		fmt.Sprintf("How many players? (1-%d)", a.maxPlayers), baseWidth/2, 300, colorWhite)

	if s.lastCount >= 1 && s.lastCount <= a.maxPlayers {
		drawTextCentered(screen, a.fonts.small,
			fmt.Sprintf("Enter replays last table of %d", s.lastCount), baseWidth/2, 350, colorMuted)
	}

	if s.status != "" {
		drawTextCentered(screen, a.fonts.small, s.status, baseWidth/2, 420, colorWarning)
	}

	// Decorative row of dice across the bottom
	for i := 0; i < 5; i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(dieRowX+i*dieSpacing), 480)
		screen.DrawImage(a.sprites.dieFace(i+1), op)
	}
}
