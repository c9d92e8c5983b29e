package usecase

import (
	"log/slog"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/ultimate"
)

type GameSession interface {
	Handle(event Event)
	Snapshot() ultimate.Snapshot
	Done() bool
}

// gameSession owns the match and processes one event at a time to
// completion. Rejected moves surface as a no-op, not a failure.
type gameSession struct {
	logger *slog.Logger
	match  *ultimate.Match
	done   bool
}

func NewGameSession(logger *slog.Logger, match *ultimate.Match) GameSession {
	return &gameSession{
		logger: logger.With("component", "session"),
		match:  match,
	}
}

func (that *gameSession) Handle(event Event) {
	switch event := event.(type) {
	case CellClicked:
		that.handleCellClicked(event)
	case RestartRequested:
		that.handleRestart()
	case QuitRequested:
		that.logger.Info("quit requested")
		that.done = true
	}
}

func (that *gameSession) Snapshot() ultimate.Snapshot {
	return that.match.Snapshot()
}

func (that *gameSession) Done() bool {
	return that.done
}

func (that *gameSession) handleCellClicked(event CellClicked) {
	result, err := that.match.Play(event.Panel, event.Cell)
	if err != nil {
		// Clicking an occupied cell or a locked panel is part of normal
		// play; nothing changed, so there is nothing to report.
		return
	}

	if result.PanelStatus == entity.PanelWon {
		that.logger.Info("panel won", "panel", event.Panel, "player", result.PanelWinner)
	}

	if result.PanelReset {
		that.logger.Info("panel drawn, cleared for replay", "panel", event.Panel)
	}

	if result.MatchOver {
		that.logger.Info("match won", "player", result.MatchWinner)
	}

	if result.BoardReset {
		that.logger.Info("all panels decided with no winner, match restarted")
	}
}

// handleRestart honors the restart gesture only on the win screen, so a
// stray keypress mid-game cannot wipe the board.
func (that *gameSession) handleRestart() {
	if !that.match.IsOver() {
		return
	}

	that.match.Reset()
	that.logger.Info("match restarted")
}
