package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/diegok/pingpong/internal/game"
)

// Court units covered by one terminal cell. Cells are roughly twice as tall
// as they are wide.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Canvas is the drawing surface the renderer paints a frame on.
// Coordinates are court units: origin top-left, +x right, +y down.
type Canvas interface {
	Clear(bg tcell.Color)
	FillRect(x, y, w, h float64, c tcell.Color)
	StrokeRect(x, y, w, h float64, c tcell.Color)
	FillCircle(cx, cy, r float64, c tcell.Color)
	// StrokeLine draws a line; dash > 0 alternates drawn and skipped
	// segments of that length.
	StrokeLine(x1, y1, x2, y2, dash float64, c tcell.Color)
	// FillText draws text horizontally centered on x
	FillText(x, y float64, text string, c tcell.Color)
}

// CellCanvas rasterizes court units onto terminal cells. The court is
// centered on the screen and everything outside it is clipped.
type CellCanvas struct {
	screen *Screen
	bg     tcell.Color

	originCol, originRow int
	cols, rows           int
}

func NewCellCanvas(screen *Screen) *CellCanvas {
	return &CellCanvas{screen: screen}
}

// Layout sizes and centers the court area for dims on the current screen
func (cv *CellCanvas) Layout(dims game.Dimensions) {
	screenW, screenH := cv.screen.Size()
	cv.cols = int(math.Ceil(dims.Width / CellWidth))
	cv.rows = int(math.Ceil(dims.Height / CellHeight))
	cv.originCol = max((screenW-cv.cols)/2, 0)
	cv.originRow = max((screenH-cv.rows)/2, 0)
}

// Bounds returns the court area in screen cells
func (cv *CellCanvas) Bounds() (col, row, cols, rows int) {
	return cv.originCol, cv.originRow, cv.cols, cv.rows
}

func (cv *CellCanvas) Clear(bg tcell.Color) {
	cv.bg = bg
	style := tcell.StyleDefault.Background(bg)
	for row := 0; row < cv.rows; row++ {
		for col := 0; col < cv.cols; col++ {
			cv.set(col, row, ' ', style)
		}
	}
}

func (cv *CellCanvas) FillRect(x, y, w, h float64, c tcell.Color) {
	col0, col1 := span(x, w, CellWidth)
	row0, row1 := span(y, h, CellHeight)
	style := tcell.StyleDefault.Background(c)

	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			cv.set(col, row, ' ', style)
		}
	}
}

func (cv *CellCanvas) StrokeRect(x, y, w, h float64, c tcell.Color) {
	col0, col1 := span(x, w, CellWidth)
	row0, row1 := span(y, h, CellHeight)
	style := cv.fg(c)

	for col := col0 + 1; col < col1; col++ {
		cv.set(col, row0, tcell.RuneHLine, style)
		cv.set(col, row1, tcell.RuneHLine, style)
	}
	for row := row0 + 1; row < row1; row++ {
		cv.set(col0, row, tcell.RuneVLine, style)
		cv.set(col1, row, tcell.RuneVLine, style)
	}
	cv.set(col0, row0, tcell.RuneULCorner, style)
	cv.set(col1, row0, tcell.RuneURCorner, style)
	cv.set(col0, row1, tcell.RuneLLCorner, style)
	cv.set(col1, row1, tcell.RuneLRCorner, style)
}

// FillCircle fills every cell whose center lies inside the circle. A circle
// smaller than a cell still marks the cell holding its center.
func (cv *CellCanvas) FillCircle(cx, cy, r float64, c tcell.Color) {
	col0, col1 := span(cx-r, 2*r, CellWidth)
	row0, row1 := span(cy-r, 2*r, CellHeight)
	style := tcell.StyleDefault.Background(c)

	filled := false
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			px := (float64(col) + 0.5) * CellWidth
			py := (float64(row) + 0.5) * CellHeight
			if math.Hypot(px-cx, py-cy) <= r {
				cv.set(col, row, ' ', style)
				filled = true
			}
		}
	}

	if !filled {
		cv.set(cell(cx, CellWidth), cell(cy, CellHeight), '●', cv.fg(c))
	}
}

func (cv *CellCanvas) StrokeLine(x1, y1, x2, y2, dash float64, c tcell.Color) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	glyph := tcell.RuneHLine
	if math.Abs(dy) > math.Abs(dx) {
		glyph = tcell.RuneVLine
	}
	style := cv.fg(c)

	if length == 0 {
		cv.set(cell(x1, CellWidth), cell(y1, CellHeight), glyph, style)
		return
	}

	step := math.Min(CellWidth, CellHeight) / 2
	for d := 0.0; d <= length; d += step {
		if dash > 0 && int(d/dash)%2 == 1 {
			continue
		}
		x := x1 + dx*d/length
		y := y1 + dy*d/length
		cv.set(cell(x, CellWidth), cell(y, CellHeight), glyph, style)
	}
}

func (cv *CellCanvas) FillText(x, y float64, text string, c tcell.Color) {
	style := cv.fg(c)
	col := cell(x, CellWidth) - uniseg.StringWidth(text)/2
	row := cell(y, CellHeight)

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		cv.setContent(col, row, runes[0], runes[1:], style)
		col += g.Width()
	}
}

func (cv *CellCanvas) fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c).Background(cv.bg)
}

func (cv *CellCanvas) set(col, row int, r rune, style tcell.Style) {
	cv.setContent(col, row, r, nil, style)
}

func (cv *CellCanvas) setContent(col, row int, r rune, combining []rune, style tcell.Style) {
	if col < 0 || col >= cv.cols || row < 0 || row >= cv.rows {
		return
	}
	cv.screen.SetContent(cv.originCol+col, cv.originRow+row, r, combining, style)
}

// cell maps a court coordinate to the cell containing it
func cell(v, size float64) int {
	return int(math.Floor(v / size))
}

// span returns the first and last cell covered by [v, v+length)
func span(v, length, size float64) (int, int) {
	first := cell(v, size)
	last := int(math.Ceil((v+length)/size)) - 1
	return first, max(first, last)
}
