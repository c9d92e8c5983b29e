package application

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/ui"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/ultimate"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
)

// RunApp - runs the application. It wires the match, the session, and the
// window, then hands control to the game loop until quit or window close.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	match := ultimate.NewMatch()
	session := usecase.NewGameSession(logger, match)
	window := ui.NewWindow(session)

	ebiten.SetWindowTitle(conf.Window.Title)
	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetTPS(conf.Window.TicksPerSecond)

	log.Info("starting game window", "title", conf.Window.Title, "tps", conf.Window.TicksPerSecond)

	if err := ebiten.RunGame(window); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Info("game window closed")

	return nil
}
