package ultimate

import (
	"sort"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// Match owns the 9 panels, the turn, and the playable/completed panel sets.
// It is exclusively owned by the event loop; every mutation goes through
// Play or Reset.
type Match struct {
	panels    [entity.GridCells]*entity.Panel
	turn      entity.Mark
	playable  map[entity.Index]struct{}
	completed map[entity.Index]struct{}
	winner    entity.Mark
}

func NewMatch() *Match {
	match := &Match{}
	match.Reset()

	return match
}

// Reset reinitializes the match in place: fresh panels, every panel
// playable, X to move. Fires on explicit restart and when all 9 panels
// complete with no winner.
func (that *Match) Reset() {
	that.turn = entity.PlayerX
	that.winner = entity.Empty
	that.playable = make(map[entity.Index]struct{}, entity.GridCells)
	that.completed = make(map[entity.Index]struct{})

	for i := range that.panels {
		index := entity.IndexFromFlat(i)
		that.panels[i] = entity.NewPanel(index)
		that.playable[index] = struct{}{}
	}
}

func (that *Match) Panel(index entity.Index) *entity.Panel {
	return that.panels[index.Flat()]
}

func (that *Match) Turn() entity.Mark {
	return that.turn
}

func (that *Match) Winner() entity.Mark {
	return that.winner
}

func (that *Match) IsOver() bool {
	return that.winner != entity.Empty
}

// PlayResult describes what one accepted move changed, enough for a
// renderer to redraw without re-deriving state.
type PlayResult struct {
	Player      entity.Mark
	PanelStatus entity.PanelStatus
	PanelWinner entity.Mark
	PanelReset  bool
	MatchWinner entity.Mark
	MatchOver   bool
	BoardReset  bool
	Playable    []entity.Index
}

// Play applies the current player's move to the given cell. It validates
// legality, mutates the cell, re-evaluates the panel and the match, and
// recomputes the playable set. A returned error means nothing changed.
func (that *Match) Play(panelIndex, cellIndex entity.Index) (*PlayResult, error) {
	if that.IsOver() {
		return nil, apperror.ErrMatchFinished
	}

	if !panelIndex.InBounds() || !cellIndex.InBounds() {
		return nil, apperror.ErrPanelNotPlayable
	}

	if _, ok := that.playable[panelIndex]; !ok {
		return nil, apperror.ErrPanelNotPlayable
	}

	panel := that.Panel(panelIndex)
	if err := panel.ApplyMove(cellIndex, that.turn); err != nil {
		return nil, err
	}

	result := &PlayResult{Player: that.turn}

	switch panel.Evaluate() {
	case entity.PanelWon:
		that.completed[panelIndex] = struct{}{}
		result.PanelWinner = panel.Winner
	case entity.PanelDrawn:
		// A full panel with no line clears and reopens instead of
		// closing for good.
		panel.Reset()
		result.PanelReset = true
	case entity.PanelOpen:
	}
	result.PanelStatus = panel.Status

	if winner := that.evaluateMeta(); winner != entity.Empty {
		that.winner = winner
		that.playable = make(map[entity.Index]struct{})
		result.MatchWinner = winner
		result.MatchOver = true

		return result, nil
	}

	if len(that.completed) == len(that.panels) {
		// Every panel is decided but no panel line is: restart from
		// scratch rather than end in a stalemate. X moves first again.
		that.Reset()
		result.BoardReset = true
		result.Playable = that.PlayableIndexes()

		return result, nil
	}

	that.recomputePlayable(cellIndex)
	that.turn = that.turn.Opponent()
	result.Playable = that.PlayableIndexes()

	return result, nil
}

// evaluateMeta treats each panel's winner as a meta-cell and applies the
// same 8-line scan at the match level.
func (that *Match) evaluateMeta() entity.Mark {
	var meta [entity.GridCells]entity.Mark
	for i, panel := range that.panels {
		meta[i] = panel.Winner
	}

	return entity.ScanLines(meta)
}

// recomputePlayable applies the unlock rule: the next move goes to the
// panel whose index matches the just-played cell, unless that panel is
// already decided, in which case every undecided panel opens up.
func (that *Match) recomputePlayable(cellIndex entity.Index) {
	that.playable = make(map[entity.Index]struct{}, len(that.panels))

	if _, done := that.completed[cellIndex]; !done {
		that.playable[cellIndex] = struct{}{}

		return
	}

	for i := range that.panels {
		index := entity.IndexFromFlat(i)
		if _, done := that.completed[index]; !done {
			that.playable[index] = struct{}{}
		}
	}
}

// PlayableIndexes returns the panels the next move may target, in
// row-major order.
func (that *Match) PlayableIndexes() []entity.Index {
	return sortedIndexes(that.playable)
}

// CompletedIndexes returns the won panels, in row-major order.
func (that *Match) CompletedIndexes() []entity.Index {
	return sortedIndexes(that.completed)
}

func (that *Match) IsPlayable(index entity.Index) bool {
	_, ok := that.playable[index]
	return ok
}

func (that *Match) IsCompleted(index entity.Index) bool {
	_, ok := that.completed[index]
	return ok
}

func sortedIndexes(set map[entity.Index]struct{}) []entity.Index {
	indexes := make([]entity.Index, 0, len(set))
	for index := range set {
		indexes = append(indexes, index)
	}

	sort.Slice(indexes, func(i, j int) bool {
		return indexes[i].Flat() < indexes[j].Flat()
	})

	return indexes
}
