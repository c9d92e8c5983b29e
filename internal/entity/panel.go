package entity

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"

const gridSize = 3

// GridCells is the number of cells on a 3x3 grid, and equally the number of
// panels in a match.
const GridCells = gridSize * gridSize

type PanelStatus string

const (
	PanelOpen  PanelStatus = "open"
	PanelWon   PanelStatus = "won"
	PanelDrawn PanelStatus = "drawn"
)

// WinLines are the 8 winning triples of a 3x3 grid: rows, columns, diagonals.
var WinLines = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// ScanLines returns the mark owning any complete line, or Empty.
func ScanLines(cells [GridCells]Mark) Mark {
	for _, line := range WinLines {
		a, b, c := cells[line[0]], cells[line[1]], cells[line[2]]
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

// IsFull reports whether every cell carries a mark.
func IsFull(cells [GridCells]Mark) bool {
	for _, cell := range cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Panel is one of the 9 sub-boards of the match.
type Panel struct {
	Index  Index           `json:"panel_index"`
	Cells  [GridCells]Cell `json:"cells"`
	Status PanelStatus     `json:"status"`
	Winner Mark            `json:"winner,omitempty"`
}

func NewPanel(index Index) *Panel {
	panel := &Panel{Index: index, Status: PanelOpen}

	for i := range panel.Cells {
		panel.Cells[i] = Cell{PanelIndex: index, Index: IndexFromFlat(i)}
	}

	return panel
}

func (that *Panel) Cell(index Index) *Cell {
	return &that.Cells[index.Flat()]
}

// ApplyMove claims a cell for player. The panel must be open and the cell
// empty; a rejected move changes nothing.
func (that *Panel) ApplyMove(cellIndex Index, player Mark) error {
	if that.Status != PanelOpen {
		return apperror.ErrPanelCompleted
	}

	if !that.Cells[cellIndex.Flat()].Occupy(player) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Evaluate recomputes the status from the current cell owners. It is
// idempotent: status is never anything but the result of this scan.
func (that *Panel) Evaluate() PanelStatus {
	owners := that.Owners()

	if winner := ScanLines(owners); winner != Empty {
		that.Status = PanelWon
		that.Winner = winner

		return that.Status
	}

	if IsFull(owners) {
		that.Status = PanelDrawn
	} else {
		that.Status = PanelOpen
	}
	that.Winner = Empty

	return that.Status
}

// Reset clears every cell and reopens the panel. Used when a full panel has
// no winning line: drawn panels are replayed, not retired.
func (that *Panel) Reset() {
	for i := range that.Cells {
		that.Cells[i].Owner = Empty
	}

	that.Status = PanelOpen
	that.Winner = Empty
}

func (that *Panel) Owners() [GridCells]Mark {
	var owners [GridCells]Mark
	for i, cell := range that.Cells {
		owners[i] = cell.Owner
	}

	return owners
}

func (that *Panel) IsOpen() bool {
	return that.Status == PanelOpen
}

func (that *Panel) IsWon() bool {
	return that.Status == PanelWon
}
