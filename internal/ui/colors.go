package ui

import (
	"image/color"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

var (
	backgroundColor = color.RGBA{R: 185, G: 185, B: 185, A: 255}
	gridColor       = color.RGBA{A: 255}

	xColor = color.RGBA{G: 150, B: 20, A: 255}
	oColor = color.RGBA{R: 200, A: 255}

	// Teal at half opacity, premultiplied.
	highlightColor = color.RGBA{R: 14, G: 120, B: 100, A: 128}
)

func markColor(mark entity.Mark) color.RGBA {
	if mark == entity.PlayerX {
		return xColor
	}

	return oColor
}
