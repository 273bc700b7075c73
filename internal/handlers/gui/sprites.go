package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// pip grid coordinates inside a die face
const (
	pipLeft   = 26
	pipMid    = 48
	pipRight  = 70
	pipRadius = 9
)

type pip struct {
	x, y float32
}

// pipLayouts maps a face value to its pip positions
var pipLayouts = map[int][]pip{
	1: {{pipMid, pipMid}},
	2: {{pipLeft, pipLeft}, {pipRight, pipRight}},
	3: {{pipLeft, pipLeft}, {pipMid, pipMid}, {pipRight, pipRight}},
	4: {{pipLeft, pipLeft}, {pipRight, pipLeft}, {pipLeft, pipRight}, {pipRight, pipRight}},
	5: {{pipLeft, pipLeft}, {pipRight, pipLeft}, {pipMid, pipMid}, {pipLeft, pipRight}, {pipRight, pipRight}},
	6: {{pipLeft, pipLeft}, {pipLeft, pipMid}, {pipLeft, pipRight}, {pipRight, pipLeft}, {pipRight, pipMid}, {pipRight, pipRight}},
}

// sprites holds the procedurally drawn images the app reuses every frame
type sprites struct {
	dieFaces [6]*ebiten.Image
	cup      *ebiten.Image
}

func newSprites() *sprites {
	s := &sprites{}
	for value := 1; value <= 6; value++ {
		s.dieFaces[value-1] = newDieFace(value)
	}
	s.cup = newCup()

	return s
}

// dieFace returns the image for a face value, clamping junk values to one
func (s *sprites) dieFace(value int) *ebiten.Image {
	if value < 1 || value > 6 {
		value = 1
	}
	return s.dieFaces[value-1]
}

func newDieFace(value int) *ebiten.Image {
	img := ebiten.NewImage(dieSize, dieSize)
	vector.DrawFilledRect(img, 0, 0, dieSize, dieSize, colorWhite, true)
	vector.StrokeRect(img, 2, 2, dieSize-4, dieSize-4, 3, colorBlack, true)

	for _, p := range pipLayouts[value] {
		vector.DrawFilledCircle(img, p.x, p.y, pipRadius, colorBlack, true)
	}

	return img
}

func newCup() *ebiten.Image {
	img := ebiten.NewImage(cupSize, cupSize)

	// Body with a rim at the mouth and a highlight down the side
	vector.DrawFilledRect(img, 24, 14, 112, 140, colorCup, true)
	vector.DrawFilledRect(img, 14, 0, 132, 26, colorCupRim, true)
	vector.DrawFilledRect(img, 36, 30, 12, 116, colorCupRim, true)

	return img
}
