package ui

import (
	"image"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// Pixel geometry of the board. One panel is a gapless 3x3 block of tiles;
// panels sit 15px apart inside a 20px outer margin, with a strip at the
// bottom for the turn text.
const (
	TileSize   = 50
	TileGap    = 0
	BoardGap   = 15
	OutsideGap = 20

	BoardSize = 3*TileSize + 2*TileGap

	StatusStripHeight = 40

	ScreenWidth  = 3*BoardSize + 2*BoardGap + 2*OutsideGap
	ScreenHeight = 3*BoardSize + 2*BoardGap + 2*OutsideGap + StatusStripHeight
)

// PanelRect returns the screen rectangle of one panel.
func PanelRect(panel entity.Index) image.Rectangle {
	x := OutsideGap + panel.Col*(BoardSize+BoardGap)
	y := OutsideGap + panel.Row*(BoardSize+BoardGap)

	return image.Rect(x, y, x+BoardSize, y+BoardSize)
}

// CellRect returns the screen rectangle of one cell.
func CellRect(panel, cell entity.Index) image.Rectangle {
	origin := PanelRect(panel).Min
	x := origin.X + cell.Col*(TileSize+TileGap)
	y := origin.Y + cell.Row*(TileSize+TileGap)

	return image.Rect(x, y, x+TileSize, y+TileSize)
}

// HitTest decodes a pointer position into the cell under it. The board
// gaps belong to no cell, so clicks there report ok=false.
func HitTest(x, y int) (panel, cell entity.Index, ok bool) {
	point := image.Pt(x, y)

	for p := 0; p < entity.GridCells; p++ {
		panelIndex := entity.IndexFromFlat(p)
		if !point.In(PanelRect(panelIndex)) {
			continue
		}

		for c := 0; c < entity.GridCells; c++ {
			cellIndex := entity.IndexFromFlat(c)
			if point.In(CellRect(panelIndex, cellIndex)) {
				return panelIndex, cellIndex, true
			}
		}
	}

	return entity.Index{}, entity.Index{}, false
}
