package usecase

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

// Event is one decoded input delivered by the window. Raw pointer positions
// and key codes never reach the session; the window translates them first.
type Event interface {
	isEvent()
}

// CellClicked reports that the pointer went down inside a cell.
type CellClicked struct {
	Panel entity.Index
	Cell  entity.Index
}

// RestartRequested reports the restart gesture.
type RestartRequested struct{}

// QuitRequested reports the quit gesture or window close.
type QuitRequested struct{}

func (CellClicked) isEvent()      {}
func (RestartRequested) isEvent() {}
func (QuitRequested) isEvent()    {}
