package ultimate

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

// Snapshot is a read-only view of the whole match, taken after a Play call
// fully returns. Renderers draw from it instead of touching the match.
type Snapshot struct {
	Turn      entity.Mark
	Winner    entity.Mark
	Over      bool
	Panels    [entity.GridCells]PanelView
	Playable  []entity.Index
	Completed []entity.Index
}

// PanelView is one panel's slice of the snapshot.
type PanelView struct {
	Index  entity.Index
	Status entity.PanelStatus
	Winner entity.Mark
	Cells  [entity.GridCells]entity.Mark
}

func (that *Match) Snapshot() Snapshot {
	snapshot := Snapshot{
		Turn:      that.turn,
		Winner:    that.winner,
		Over:      that.IsOver(),
		Playable:  that.PlayableIndexes(),
		Completed: that.CompletedIndexes(),
	}

	for i, panel := range that.panels {
		snapshot.Panels[i] = PanelView{
			Index:  panel.Index,
			Status: panel.Status,
			Winner: panel.Winner,
			Cells:  panel.Owners(),
		}
	}

	return snapshot
}

// Panel returns the view of one panel.
func (that Snapshot) Panel(index entity.Index) PanelView {
	return that.Panels[index.Flat()]
}

// IsPlayable reports whether the next move may target the panel.
func (that Snapshot) IsPlayable(index entity.Index) bool {
	for _, playable := range that.Playable {
		if playable == index {
			return true
		}
	}

	return false
}
