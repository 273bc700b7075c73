package gui

import (
	"context"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/KirkDiggler/yahtzee/internal/services/messaging"
)

// categoryKey binds one keyboard key to one scorecard row
type categoryKey struct {
	key      ebiten.Key
	label    string
	category models.Category
}

// categoryKeys lays the scorecard out in display order
var categoryKeys = []categoryKey{
	{ebiten.Key1, "1", models.CategoryOnes},
	{ebiten.Key2, "2", models.CategoryTwos},
	{ebiten.Key3, "3", models.CategoryThrees},
	{ebiten.Key4, "4", models.CategoryFours},
	{ebiten.Key5, "5", models.CategoryFives},
	{ebiten.Key6, "6", models.CategorySixes},
	{ebiten.KeyA, "A", models.CategoryThreeOfAKind},
	{ebiten.KeyB, "B", models.CategoryFourOfAKind},
	{ebiten.KeyC, "C", models.CategoryFullHouse},
	{ebiten.KeyD, "D", models.CategorySmallStraight},
	{ebiten.KeyE, "E", models.CategoryLargeStraight},
	{ebiten.KeyF, "F", models.CategoryYahtzee},
	{ebiten.KeyG, "G", models.CategoryChance},
}

// scorecardScene is the category selection view at the end of a turn
type scorecardScene struct {
	game       *models.Game
	playerName string
	zeroMode   bool
	options    map[models.Category]*game.ScoreOption
	status     string
}

func newScorecardScene(a *App, g *models.Game, status string) *scorecardScene {
	scene := &scorecardScene{
		game:   g,
		status: status,
	}
	scene.refresh(a)
	return scene
}

// refresh pulls the current options so the rows show live numbers
func (s *scorecardScene) refresh(a *App) {
	output, err := a.gameService.GetScoreOptions(context.Background(), &game.GetScoreOptionsInput{
		GameID: a.gameID,
	})
	if err != nil {
		log.Printf("failed to get score options: %v", err)
		return
	}

	s.playerName = output.PlayerName
	s.zeroMode = output.ZeroMode
	s.options = make(map[models.Category]*game.ScoreOption, len(output.Options))
	for _, option := range output.Options {
		s.options[option.Category] = option
	}
}

// Update implements Scene
func (s *scorecardScene) Update(a *App) error {
	// Zero mode arms on 0 and sticks for the rest of the turn
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		output, err := a.gameService.ArmZeroMode(context.Background(), &game.ArmZeroModeInput{
			GameID: a.gameID,
		})
		if err != nil {
			log.Printf("failed to arm zero mode: %v", err)
			return nil
		}

		s.game = output.Game
		s.refresh(a)

		msg, err := a.messagingService.GetZeroModeMessage(context.Background(), &messaging.GetZeroModeMessageInput{
			PlayerName: s.playerName,
		})
		if err != nil {
			log.Printf("failed to get zero mode message: %v", err)
			return nil
		}
		s.status = msg.Message
		return nil
	}

	for _, row := range categoryKeys {
		if inpututil.IsKeyJustPressed(row.key) {
			s.scoreCategory(a, row.category)
			return nil
		}
	}

	return nil
}

func (s *scorecardScene) scoreCategory(a *App, category models.Category) {
	option, ok := s.options[category]
	if !ok {
		return
	}

	if option.Used {
		s.status = fmt.Sprintf("%s is already scored", option.DisplayName)
		return
	}
	if !option.Selectable {
		s.status = fmt.Sprintf("The dice do not make a %s", option.DisplayName)
		return
	}

	output, err := a.gameService.ScoreCategory(context.Background(), &game.ScoreCategoryInput{
		GameID:   a.gameID,
		Category: category,
	})
	if err != nil {
		log.Printf("failed to score category: %v", err)
		return
	}

	if output.GameCompleted {
		a.finishGame()
		return
	}

	a.scene = newRollingScene(a, output.Game)
}

// Draw implements Scene
func (s *scorecardScene) Draw(a *App, screen *ebiten.Image) {
	drawTextCentered(screen, a.fonts.title, fmt.Sprintf("%s's scorecard", s.playerName), baseWidth/2, 70, colorGold)

	if s.zeroMode {
		drawTextCentered(screen, a.fonts.small, "ZERO MODE: the next row scores nothing", baseWidth/2, 105, colorWarning)
	}

	y := cardTopY
	for _, row := range categoryKeys {
		option := s.options[row.category]
		if option == nil {
			continue
		}

		prompt := fmt.Sprintf("[%s] %s", row.label, option.DisplayName)
		switch {
		case option.Used:
			drawText(screen, a.fonts.body, prompt, cardPromptX, y, colorDim)
			drawText(screen, a.fonts.body, fmt.Sprintf("%d", option.Score), cardScoreX, y, colorWhite)
		case option.Selectable:
			worth := option.Possible
			if s.zeroMode {
				worth = 0
			}
			drawText(screen, a.fonts.body, prompt, cardPromptX, y, colorWhite)
			drawText(screen, a.fonts.body, fmt.Sprintf("worth %d", worth), cardScoreX, y, colorGold)
		default:
			drawText(screen, a.fonts.body, prompt, cardPromptX, y, colorDim)
			drawText(screen, a.fonts.body, "-", cardScoreX, y, colorDim)
		}
		y += cardRowStep
	}

	if !s.zeroMode {
		drawText(screen, a.fonts.small, "[0] take a zero", cardScoreX, y+10, colorMuted)
	}

	if s.status != "" {
		drawText(screen, a.fonts.small, s.status, cardPromptX, 600, colorWhite)
	}

	// Small dice preview so the player can see what they are scoring
	if s.game.Turn != nil {
		for i, die := range s.game.Turn.Dice {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(0.5, 0.5)
			op.GeoM.Translate(float64(cardPromptX+i*(dieSize/2+14)), 620)
			screen.DrawImage(a.sprites.dieFace(die.Value), op)
		}
	}
}
