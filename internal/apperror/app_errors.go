package apperror

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is the kind behind every rejected move. A rejected move
// leaves the match untouched and is safe to ignore.
var ErrIllegalMove = errors.New("illegal move")

var (
	ErrMatchFinished    = fmt.Errorf("%w: match already has a winner", ErrIllegalMove)
	ErrPanelNotPlayable = fmt.Errorf("%w: panel is not playable this turn", ErrIllegalMove)
	ErrPanelCompleted   = fmt.Errorf("%w: panel is already completed", ErrIllegalMove)
	ErrCellOccupied     = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
)
