package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/diegok/pingpong/internal/game"
)

const (
	Title    = "PONG"
	HelpText = "SPACE: START/PAUSE | W/S: PLAYER 1 | ↑/↓: PLAYER 2 | Q: QUIT"

	IdleText     = "PRESS SPACE TO START"
	GameOverText = "GAME OVER"

	centerDash = CellHeight // Dash length of the center line, one row on and one off
	scoreY     = 30 // Baseline of the score digits
)

// DefaultMargin leaves a row above and below the court for the title and
// help line.
var DefaultMargin = game.Margin{X: 2 * CellWidth, Y: 4 * CellHeight}

// ViewportDims fits the court to the current terminal size
func ViewportDims(s *Screen) game.Dimensions {
	cols, rows := s.Size()
	return game.Fit(float64(cols)*CellWidth, float64(rows)*CellHeight, DefaultMargin)
}

// Renderer paints the game on the terminal once per frame
type Renderer struct {
	screen  *Screen
	canvas  *CellCanvas
	palette Palette
}

func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		canvas:  NewCellCanvas(screen),
		palette: DefaultPalette(),
	}
}

// Render draws gs. It runs every frame whatever the phase.
func (r *Renderer) Render(gs *game.GameState) {
	r.screen.Clear()
	r.canvas.Layout(gs.Dims)

	Paint(r.canvas, gs, r.palette)
	r.renderChrome()

	r.screen.Show()
}

// renderChrome draws the title above the court and the key help below it
func (r *Renderer) renderChrome() {
	screenW, screenH := r.screen.Size()
	_, row, _, rows := r.canvas.Bounds()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(r.palette.Foreground)
	r.screen.DrawText(centerColumn(screenW, Title), max(row-1, 0), Title, titleStyle)

	helpStyle := tcell.StyleDefault.Foreground(r.palette.Chrome)
	r.screen.DrawText(centerColumn(screenW, HelpText), min(row+rows, screenH-1), HelpText, helpStyle)
}

// centerColumn is the first column of text centered on a screen cols wide
func centerColumn(cols int, text string) int {
	return max((cols-uniseg.StringWidth(text))/2, 0)
}

// Paint draws a frame of gs on cv
func Paint(cv Canvas, gs *game.GameState, p Palette) {
	d := gs.Dims
	c := gs.Constants()

	cv.Clear(p.Background)

	// Center line and border
	cv.StrokeLine(d.Width/2, 0, d.Width/2, d.Height, centerDash, p.Line)
	cv.StrokeRect(2, 2, d.Width-4, d.Height-4, p.Line)

	cv.FillRect(gs.Left.X(c), gs.Left.Y, c.PaddleWidth, c.PaddleHeight, p.Foreground)
	cv.FillRect(gs.Right.X(c), gs.Right.Y, c.PaddleWidth, c.PaddleHeight, p.Foreground)

	if gs.Phase == game.PhasePlaying {
		cv.FillCircle(gs.Ball.X, gs.Ball.Y, c.BallRadius, p.Foreground)
	}

	cv.FillText(d.Width*0.25, scoreY, strconv.Itoa(gs.Score.Player1), p.Foreground)
	cv.FillText(d.Width*0.75, scoreY, strconv.Itoa(gs.Score.Player2), p.Foreground)

	switch gs.Phase {
	case game.PhaseIdle:
		cv.FillText(d.Width/2, d.Height/2, IdleText, p.Foreground)
	case game.PhaseGameOver:
		cv.FillText(d.Width/2, d.Height/2, GameOverText, p.Foreground)
	}
}
