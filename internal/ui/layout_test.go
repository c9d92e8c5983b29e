package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

func TestPanelRect(t *testing.T) {
	// Then: the first panel starts at the outer margin
	first := PanelRect(entity.Index{})
	assert.Equal(t, OutsideGap, first.Min.X)
	assert.Equal(t, OutsideGap, first.Min.Y)
	assert.Equal(t, BoardSize, first.Dx())

	// Then: the last panel ends at the opposite margin
	last := PanelRect(entity.Index{Row: 2, Col: 2})
	assert.Equal(t, ScreenWidth-OutsideGap, last.Max.X)
}

func TestHitTest(t *testing.T) {
	t.Run("Decodes the center of every cell back to its indexes", func(t *testing.T) {
		for p := 0; p < entity.GridCells; p++ {
			for c := 0; c < entity.GridCells; c++ {
				panelIndex := entity.IndexFromFlat(p)
				cellIndex := entity.IndexFromFlat(c)

				// Given: the center pixel of the cell
				rect := CellRect(panelIndex, cellIndex)
				center := rect.Min.Add(rect.Max).Div(2)

				// When: hit-testing that pixel
				panel, cell, ok := HitTest(center.X, center.Y)

				// Then: the same cell comes back
				assert.True(t, ok)
				assert.Equal(t, panelIndex, panel)
				assert.Equal(t, cellIndex, cell)
			}
		}
	})

	t.Run("Misses the gap between panels", func(t *testing.T) {
		// Given: a pixel in the horizontal gap after the first panel
		x := OutsideGap + BoardSize + BoardGap/2
		y := OutsideGap + BoardSize/2

		// When: hit-testing it
		_, _, ok := HitTest(x, y)

		// Then: no cell is reported
		assert.False(t, ok)
	})

	t.Run("Misses the status strip and the margins", func(t *testing.T) {
		_, _, ok := HitTest(ScreenWidth/2, ScreenHeight-StatusStripHeight/2)
		assert.False(t, ok)

		_, _, ok = HitTest(OutsideGap/2, OutsideGap/2)
		assert.False(t, ok)

		_, _, ok = HitTest(-5, 10)
		assert.False(t, ok)
	})
}
