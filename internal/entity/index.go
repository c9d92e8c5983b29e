package entity

import "fmt"

// Index addresses a position on a 3x3 grid. The same type addresses a panel
// within the match and a cell within a panel; the unlock rule relies on the
// two spaces sharing coordinates.
type Index struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Flat maps the index onto a row-major [9] array.
func (that Index) Flat() int {
	return that.Row*gridSize + that.Col
}

func (that Index) InBounds() bool {
	return that.Row >= 0 && that.Row < gridSize && that.Col >= 0 && that.Col < gridSize
}

func (that Index) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// IndexFromFlat is the inverse of Flat.
func IndexFromFlat(i int) Index {
	return Index{Row: i / gridSize, Col: i % gridSize}
}
