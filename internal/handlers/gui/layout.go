package gui

import (
	"image"
	"image/color"
)

// Screen constants
const (
	baseWidth   = 1000
	baseHeight  = 700
	windowTitle = "Yahtzee"
)

// Dice layout
const (
	dieSize    = 96
	dieSpacing = 150
	dieRowX    = 100
	dieRowY    = 250

	// Kept dice drop below the rolling row
	keptOffset = 26
)

// Cup layout
const (
	cupSize = 160
	cupX    = (baseWidth - cupSize) / 2
	cupY    = 240
)

// Scorecard layout
const (
	cardPromptX = 60
	cardScoreX  = 640
	cardTopY    = 130
	cardRowStep = 36
)

// Game over layout
const (
	overBoxX = 200
	overBoxY = 60
	overBoxW = 600
	overBoxH = 480

	buttonW = 220
	buttonH = 56
)

// Palette
var (
	colorFelt    = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	colorWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlack   = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colorGold    = color.RGBA{R: 218, G: 165, B: 32, A: 255}
	colorMuted   = color.RGBA{R: 210, G: 230, B: 210, A: 255}
	colorDim     = color.RGBA{R: 120, G: 160, B: 120, A: 255}
	colorCup     = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	colorCupRim  = color.RGBA{R: 101, G: 50, B: 12, A: 255}
	colorBox     = color.RGBA{R: 0, G: 80, B: 0, A: 230}
	colorWarning = color.RGBA{R: 255, G: 120, B: 100, A: 255}
)

// dieRect is the clickable area of the die at the given slot
func dieRect(slot int, kept bool) image.Rectangle {
	x := dieRowX + slot*dieSpacing
	y := dieRowY
	if kept {
		y += keptOffset
	}

	return image.Rect(x, y, x+dieSize, y+dieSize)
}

// playAgainRect is the clickable area of the game over button
func playAgainRect() image.Rectangle {
	x := (baseWidth - buttonW) / 2
	y := overBoxY + overBoxH - buttonH - 30

	return image.Rect(x, y, x+buttonW, y+buttonH)
}
