package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/ultimate"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
)

const (
	cellStrokeWidth  = 2
	panelStrokeWidth = 5
	markInset        = 10
	bigMarkInset     = 20

	// Face7x13 glyph advance, for centering strings.
	glyphWidth = 7
)

// Window is the rendering and input collaborator. It decodes raw pointer
// and key events into session events and redraws from the session's
// snapshot every frame.
type Window struct {
	session usecase.GameSession
}

func NewWindow(session usecase.GameSession) *Window {
	return &Window{session: session}
}

// Update polls input and feeds decoded events to the session. Rendering
// happens only after the session fully processed the event.
func (that *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		that.session.Handle(usecase.QuitRequested{})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		that.session.Handle(usecase.RestartRequested{})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if panel, cell, ok := HitTest(ebiten.CursorPosition()); ok {
			that.session.Handle(usecase.CellClicked{Panel: panel, Cell: cell})
		}
	}

	if that.session.Done() {
		return ebiten.Termination
	}

	return nil
}

func (that *Window) Draw(screen *ebiten.Image) {
	snapshot := that.session.Snapshot()

	screen.Fill(backgroundColor)

	if snapshot.Over {
		that.drawWinScreen(screen, snapshot.Winner)
		return
	}

	for _, panel := range snapshot.Panels {
		that.drawPanel(screen, snapshot, panel)
	}

	that.drawStatusLine(screen, snapshot.Turn)
}

func (that *Window) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (that *Window) drawPanel(screen *ebiten.Image, snapshot ultimate.Snapshot, panel ultimate.PanelView) {
	rect := PanelRect(panel.Index)

	if panel.Status == entity.PanelWon {
		drawMark(screen, rect.Inset(bigMarkInset), panel.Winner, panelStrokeWidth)
		strokeRect(screen, rect, panelStrokeWidth, markColor(panel.Winner))

		return
	}

	if snapshot.IsPlayable(panel.Index) {
		fillRect(screen, rect, highlightColor)
	}

	for c, owner := range panel.Cells {
		cellRect := CellRect(panel.Index, entity.IndexFromFlat(c))

		outline := gridColor
		if owner != entity.Empty {
			outline = markColor(owner)
			drawMark(screen, cellRect.Inset(markInset), owner, cellStrokeWidth)
		}

		strokeRect(screen, cellRect, cellStrokeWidth, outline)
	}
}

func (that *Window) drawStatusLine(screen *ebiten.Image, turn entity.Mark) {
	message := fmt.Sprintf("It's %s's turn!", turn)
	x := (ScreenWidth - glyphWidth*len(message)) / 2
	y := ScreenHeight - StatusStripHeight/2

	text.Draw(screen, message, basicfont.Face7x13, x, y, markColor(turn))
}

func (that *Window) drawWinScreen(screen *ebiten.Image, winner entity.Mark) {
	board := image.Rect(OutsideGap, OutsideGap, ScreenWidth-OutsideGap, ScreenWidth-OutsideGap)
	drawMark(screen, board.Inset(BoardSize/2), winner, panelStrokeWidth*2)

	message := fmt.Sprintf("%s wins! Press SPACE to play again", winner)
	x := (ScreenWidth - glyphWidth*len(message)) / 2
	y := ScreenHeight - StatusStripHeight/2

	text.Draw(screen, message, basicfont.Face7x13, x, y, markColor(winner))
}

// drawMark strokes an X as two diagonals or an O as a circle inside rect.
func drawMark(screen *ebiten.Image, rect image.Rectangle, mark entity.Mark, width float32) {
	clr := markColor(mark)

	x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
	x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)

	if mark == entity.PlayerX {
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
		vector.StrokeLine(screen, x1, y0, x0, y1, width, clr, true)

		return
	}

	cx := (x0 + x1) / 2
	cy := (y0 + y1) / 2
	radius := (x1 - x0) / 2
	vector.StrokeCircle(screen, cx, cy, radius, width, clr, true)
}

func strokeRect(screen *ebiten.Image, rect image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()), width, clr, false)
}

func fillRect(screen *ebiten.Image, rect image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()), clr, false)
}
