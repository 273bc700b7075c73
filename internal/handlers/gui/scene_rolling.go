package gui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/KirkDiggler/yahtzee/internal/services/messaging"
)

// rollingScene is the table view where the acting player shakes the cup
// and holds dice between rolls
type rollingScene struct {
	game   *models.Game
	status string
	anim   *rollAnimation
}

func newRollingScene(a *App, g *models.Game) *rollingScene {
	scene := &rollingScene{
		game: g,
	}

	player := g.Players[g.CurrentPlayer]
	msg, err := a.messagingService.GetTurnStartMessage(context.Background(), &messaging.GetTurnStartMessageInput{
		PlayerName: player.Name,
		Round:      g.Round,
		FinalRound: g.Round == a.rounds,
	})
	if err != nil {
		log.Printf("failed to get turn message: %v", err)
	} else {
		scene.status = msg.Message
	}

	return scene
}

// Update implements Scene
func (s *rollingScene) Update(a *App) error {
	// Let a running shake play out before taking any input
	if s.anim != nil {
		if s.anim.step() {
			s.applyRoll(a)
		}
		if s.anim.done() {
			s.anim = nil
			// The service moves the turn on once the rolls run out
			if s.game.Turn != nil && s.game.Turn.Phase == models.TurnPhaseChoosing {
				a.scene = newScorecardScene(a, s.game, s.status)
			}
		}
		return nil
	}

	// Hold or release a die
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.handleDieClick(a, x, y)
	}

	// R shakes the cup
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if s.game.Turn != nil && s.game.Turn.RollsRemaining > 0 {
			s.anim = &rollAnimation{}
		}
		return nil
	}

	// E stops rolling early and goes to the scorecard
	if inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		output, err := a.gameService.EndRolling(context.Background(), &game.EndRollingInput{
			GameID: a.gameID,
		})
		if err != nil {
			if !errors.Is(err, game.ErrInvalidTurnPhase) {
				log.Printf("failed to end rolling: %v", err)
			}
			return nil
		}

		s.game = output.Game
		a.scene = newScorecardScene(a, s.game, s.status)
	}

	return nil
}

// applyRoll lands the roll that the cup shake has been building up
func (s *rollingScene) applyRoll(a *App) {
	output, err := a.gameService.RollDice(context.Background(), &game.RollDiceInput{
		GameID: a.gameID,
	})
	if err != nil {
		log.Printf("failed to roll dice: %v", err)
		return
	}
	s.game = output.Game

	reaction, err := a.messagingService.GetRollReactionMessage(context.Background(), &messaging.GetRollReactionMessageInput{
		PlayerName: s.game.Players[s.game.CurrentPlayer].Name,
		Dice:       output.Dice,
	})
	if err != nil {
		log.Printf("failed to get roll reaction: %v", err)
		return
	}
	s.status = reaction.Message
}

func (s *rollingScene) handleDieClick(a *App, x, y int) {
	if s.game.Turn == nil {
		return
	}

	for i, die := range s.game.Turn.Dice {
		if !image.Pt(x, y).In(dieRect(i, die.Kept)) {
			continue
		}

		output, err := a.gameService.ToggleKeep(context.Background(), &game.ToggleKeepInput{
			GameID:   a.gameID,
			DieIndex: i,
		})
		if err != nil {
			log.Printf("failed to toggle die: %v", err)
			return
		}

		s.game = output.Game
		return
	}
}

// Draw implements Scene
func (s *rollingScene) Draw(a *App, screen *ebiten.Image) {
	player := s.game.Players[s.game.CurrentPlayer]

	drawText(screen, a.fonts.body, fmt.Sprintf("Round %d of %d", s.game.Round, a.rounds), 40, 50, colorMuted)
	drawTextCentered(screen, a.fonts.title, player.Name, baseWidth/2, 100, colorGold)
	if s.status != "" {
		drawTextCentered(screen, a.fonts.small, s.status, baseWidth/2, 140, colorWhite)
	}

	turn := s.game.Turn
	if turn == nil {
		return
	}

	shaking := s.anim != nil && s.anim.shaking()

	// Dice row. Loose dice stay under the cup while it shakes.
	for i, die := range turn.Dice {
		if shaking && !die.Kept {
			continue
		}

		rect := dieRect(i, die.Kept)
		op := &ebiten.DrawImageOptions{}

		scale := 1.0
		if s.anim != nil && !die.Kept {
			scale = s.anim.settleScale()
		}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(
			float64(rect.Min.X)+dieSize*(1-scale)/2,
			float64(rect.Min.Y)+dieSize*(1-scale)/2,
		)
		screen.DrawImage(a.sprites.dieFace(die.Value), op)

		if die.Kept {
			vector.StrokeRect(screen,
				float32(rect.Min.X)-3, float32(rect.Min.Y)-3,
				dieSize+6, dieSize+6, 3, colorWarning, true)
			drawTextCentered(screen, a.fonts.small, "held", rect.Min.X+dieSize/2, rect.Max.Y+24, colorMuted)
		}
	}

	// The cup rattles over the table during a shake
	if shaking {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-cupSize/2, -cupSize/2)
		op.GeoM.Rotate(s.anim.tilt())
		op.GeoM.Translate(cupX+cupSize/2, cupY+cupSize/2)
		screen.DrawImage(a.sprites.cup, op)
	}

	help := fmt.Sprintf("Rolls left: %d    [R] Roll    [E] Score    [Click] Hold",
		turn.RollsRemaining)
	drawTextCentered(screen, a.fonts.small, help, baseWidth/2, 640, colorMuted)
}
