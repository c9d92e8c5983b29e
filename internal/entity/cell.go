package entity

// Cell is the smallest playable position inside a panel.
type Cell struct {
	PanelIndex Index `json:"panel_index"`
	Index      Index `json:"cell_index"`
	Owner      Mark  `json:"owner"`
}

// Occupy claims the cell for player and reports whether the claim succeeded.
// An occupied cell is left untouched.
func (that *Cell) Occupy(player Mark) bool {
	if that.Owner != Empty {
		return false
	}

	that.Owner = player

	return true
}
