package gui

import (
	"context"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/KirkDiggler/yahtzee/internal/services/messaging"
	"github.com/KirkDiggler/yahtzee/internal/services/stats"
)

// gameOverScene shows the final standings and offers a rematch
type gameOverScene struct {
	standings []*game.PlayerStanding
	message   string
	best      *stats.GetBestScoreOutput
}

func newGameOverScene(a *App, standings []*game.PlayerStanding) *gameOverScene {
	scene := &gameOverScene{
		standings: standings,
	}

	winner, tied := winnerOf(standings)
	if winner != nil {
		msg, err := a.messagingService.GetGameOverMessage(context.Background(), &messaging.GetGameOverMessageInput{
			WinnerName:   winner.PlayerName,
			WinningScore: winner.Total,
			Tied:         tied,
		})
		if err != nil {
			log.Printf("failed to get game over message: %v", err)
		} else {
			scene.message = msg.Message
		}
	}

	best, err := a.statsService.GetBestScore(context.Background(), &stats.GetBestScoreInput{})
	if err != nil {
		log.Printf("failed to get best score: %v", err)
	} else {
		scene.best = best
	}

	return scene
}

// winnerOf returns the first placed player and whether first is shared
func winnerOf(standings []*game.PlayerStanding) (*game.PlayerStanding, bool) {
	var winner *game.PlayerStanding
	firsts := 0
	for _, standing := range standings {
		if standing.Position != 1 {
			continue
		}
		if winner == nil {
			winner = standing
		}
		firsts++
	}
	return winner, firsts > 1
}

// Update implements Scene
func (s *gameOverScene) Update(a *App) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.scene = newPlayerCountScene(a)
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if image.Pt(x, y).In(playAgainRect()) {
			a.scene = newPlayerCountScene(a)
		}
	}

	return nil
}

// Draw implements Scene
func (s *gameOverScene) Draw(a *App, screen *ebiten.Image) {
	vector.DrawFilledRect(screen, overBoxX, overBoxY, overBoxW, overBoxH, colorBox, false)

	drawTextCentered(screen, a.fonts.title, "GAME OVER", baseWidth/2, 120, colorGold)
	if s.message != "" {
		drawTextCentered(screen, a.fonts.small, s.message, baseWidth/2, 160, colorWhite)
	}

	y := 220
	for _, standing := range s.standings {
		line := fmt.Sprintf("%s  %s", ordinal(standing.Position), standing.PlayerName)
		drawText(screen, a.fonts.body, line, overBoxX+40, y, colorWhite)

		detail := fmt.Sprintf("upper %d + bonus %d + lower %d = %d",
			standing.Upper, standing.Bonus, standing.Lower, standing.Total)
		drawText(screen, a.fonts.small, detail, overBoxX+80, y+26, colorMuted)

		y += 64
	}

	if s.best != nil && s.best.Found {
		line := fmt.Sprintf("Best ever: %s with %d on %s",
			s.best.PlayerName, s.best.TotalScore, s.best.PlayedAt.Format("Jan 2 2006"))
		drawTextCentered(screen, a.fonts.small, line, baseWidth/2, y+10, colorMuted)
	}

	button := playAgainRect()
	vector.DrawFilledRect(screen,
		float32(button.Min.X), float32(button.Min.Y),
		float32(button.Dx()), float32(button.Dy()),
		colorGold, false)
	drawTextCentered(screen, a.fonts.body, "Play Again",
		button.Min.X+button.Dx()/2, button.Min.Y+button.Dy()/2+8, colorBlack)

	drawTextCentered(screen, a.fonts.small, "[Enter] Play again", baseWidth/2, button.Max.Y+36, colorMuted)
}

// ordinal formats a placing like 1st, 2nd, 3rd
func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
