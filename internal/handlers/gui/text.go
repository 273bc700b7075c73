package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// fonts holds the faces used across the scenes
type fonts struct {
	title font.Face
	body  font.Face
	small font.Face
}

func newFonts() (*fonts, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	f := &fonts{}
	for _, face := range []struct {
		size float64
		dst  *font.Face
	}{
		{36, &f.title},
		{24, &f.body},
		{18, &f.small},
	} {
		parsed, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    face.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build font face: %w", err)
		}
		*face.dst = parsed
	}

	return f, nil
}

// drawText draws str with its baseline at x, y
func drawText(dst *ebiten.Image, face font.Face, str string, x, y int, clr color.Color) {
	text.Draw(dst, str, face, x, y, clr)
}

// drawTextCentered draws str horizontally centered on cx
func drawTextCentered(dst *ebiten.Image, face font.Face, str string, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, str)
	text.Draw(dst, str, face, cx-bounds.Dx()/2, y, clr)
}
