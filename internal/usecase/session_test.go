package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/ultimate"
)

func newTestSession(t *testing.T) (GameSession, *ultimate.Match) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	match := ultimate.NewMatch()

	return NewGameSession(logger, match), match
}

// winPanelRow hands the top row of a panel to a player so tests can start
// from late-game positions.
func winPanelRow(t *testing.T, match *ultimate.Match, index entity.Index, player entity.Mark) {
	t.Helper()

	panel := match.Panel(index)
	for col := 0; col < 3; col++ {
		require.True(t, panel.Cell(entity.Index{Row: 0, Col: col}).Occupy(player))
	}
	require.Equal(t, entity.PanelWon, panel.Evaluate())
}

func TestGameSession_Handle(t *testing.T) {
	t.Run("Applies a legal cell click to the match", func(t *testing.T) {
		// Given: a fresh session
		session, _ := newTestSession(t)

		// When: the window reports a click on the center panel's top-left cell
		session.Handle(CellClicked{Panel: entity.Index{Row: 1, Col: 1}, Cell: entity.Index{}})

		// Then: the move landed and the turn passed to O
		snapshot := session.Snapshot()
		assert.Equal(t, entity.PlayerO, snapshot.Turn)
		assert.Equal(t, entity.PlayerX, snapshot.Panel(entity.Index{Row: 1, Col: 1}).Cells[0])
	})

	t.Run("Treats an illegal click as a no-op", func(t *testing.T) {
		// Given: a session where only panel (0,0) is playable
		session, _ := newTestSession(t)
		session.Handle(CellClicked{Panel: entity.Index{Row: 1, Col: 1}, Cell: entity.Index{}})
		before := session.Snapshot()

		// When: the next click lands on a locked panel
		session.Handle(CellClicked{Panel: entity.Index{Row: 2, Col: 2}, Cell: entity.Index{}})

		// Then: nothing changed
		assert.Equal(t, before, session.Snapshot())
	})

	t.Run("Ignores a restart request mid-game", func(t *testing.T) {
		// Given: a session with one move played
		session, _ := newTestSession(t)
		session.Handle(CellClicked{Panel: entity.Index{Row: 1, Col: 1}, Cell: entity.Index{}})
		before := session.Snapshot()

		// When: the restart gesture arrives while the match is running
		session.Handle(RestartRequested{})

		// Then: the board is untouched
		assert.Equal(t, before, session.Snapshot())
	})

	t.Run("Restarts the match from the win screen", func(t *testing.T) {
		// Given: a session one move away from a match win for X
		session, match := newTestSession(t)
		winPanelRow(t, match, entity.Index{}, entity.PlayerX)
		winPanelRow(t, match, entity.Index{Row: 1, Col: 1}, entity.PlayerX)

		panel := match.Panel(entity.Index{Row: 2, Col: 2})
		require.True(t, panel.Cell(entity.Index{}).Occupy(entity.PlayerX))
		require.True(t, panel.Cell(entity.Index{Col: 1}).Occupy(entity.PlayerX))

		// When: X wins the third panel of the diagonal
		session.Handle(CellClicked{Panel: entity.Index{Row: 2, Col: 2}, Cell: entity.Index{Col: 2}})

		// Then: the match is over
		require.True(t, session.Snapshot().Over)
		assert.Equal(t, entity.PlayerX, session.Snapshot().Winner)

		// When: the restart gesture arrives
		session.Handle(RestartRequested{})

		// Then: a fresh board with X to move
		snapshot := session.Snapshot()
		assert.False(t, snapshot.Over)
		assert.Equal(t, entity.PlayerX, snapshot.Turn)
		assert.Len(t, snapshot.Playable, entity.GridCells)
	})

	t.Run("Marks the session done on quit", func(t *testing.T) {
		// Given: a fresh session
		session, _ := newTestSession(t)
		require.False(t, session.Done())

		// When: the quit gesture arrives
		session.Handle(QuitRequested{})

		// Then: the session reports done
		assert.True(t, session.Done())
	})
}
