package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"editbox/config"
)

// TermColor converts a packed ARGB color to a terminal color, ignoring alpha.
func TermColor(c config.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(r, g, b)
}

// CellMeasurer measures text in terminal cells.
type CellMeasurer struct{}

func (CellMeasurer) TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

type cell struct {
	ch     rune
	fg, bg config.Color
}

type point struct{ x, y int }

// Painter draws editor frames onto a tcell screen, one cell per unit.
// FillRect only changes backgrounds and DrawText only changes glyphs, so
// the editor can layer selection, text and cursor. Translucent fills are
// blended over what is already in the cell.
type Painter struct {
	screen tcell.Screen
	base   config.Color
	cells  map[point]cell
}

func NewPainter(screen tcell.Screen, base config.Color) *Painter {
	return &Painter{screen: screen, base: base, cells: make(map[point]cell)}
}

// Reset forgets the previous frame.
func (p *Painter) Reset(base config.Color) {
	p.base = base
	clear(p.cells)
}

func (p *Painter) FillRect(x0, y0, x1, y1 int, color config.Color) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := p.at(x, y)
			c.bg = color.Over(c.bg)
			p.put(x, y, c)
		}
	}
}

func (p *Painter) DrawText(s string, x, y int, color config.Color) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c := p.at(x, y)
		c.ch = r
		c.fg = color
		p.put(x, y, c)
		// The trailing half of a wide glyph keeps the background only.
		for i := 1; i < w; i++ {
			tail := p.at(x+i, y)
			tail.ch = 0
			p.cells[point{x + i, y}] = tail
		}
		x += w
	}
}

func (p *Painter) at(x, y int) cell {
	if c, ok := p.cells[point{x, y}]; ok {
		return c
	}
	return cell{ch: ' ', fg: p.base, bg: p.base}
}

func (p *Painter) put(x, y int, c cell) {
	p.cells[point{x, y}] = c
	if c.ch == 0 {
		return // covered by the wide glyph to the left
	}
	style := tcell.StyleDefault.Foreground(TermColor(c.fg)).Background(TermColor(c.bg))
	p.screen.SetContent(x, y, c.ch, nil, style)
}

// Cell reports what was painted at (x, y) this frame.
func (p *Painter) Cell(x, y int) (ch rune, fg, bg config.Color) {
	c := p.at(x, y)
	return c.ch, c.fg, c.bg
}
