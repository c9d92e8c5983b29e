package entity

// Mark identifies who owns a cell, a panel, or the whole match.
type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}

	return PlayerX
}
