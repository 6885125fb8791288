package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colors used to paint the court
type Palette struct {
	Background tcell.Color
	Foreground tcell.Color
	Line       tcell.Color // Court markings, dimmer than the foreground
	Chrome     tcell.Color // Title and help text around the court
}

func DefaultPalette() Palette {
	bg := mustHex("#111111")
	fg := mustHex("#cccccc")

	return Palette{
		Background: toTcell(bg),
		Foreground: toTcell(fg),
		Line:       toTcell(bg.BlendLab(fg, 0.45)),
		Chrome:     toTcell(mustHex("#9ca3af")),
	}
}

// mustHex parses a palette literal; a malformed literal is a programming error.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
