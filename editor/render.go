package editor

import (
	"editbox/buffer"
)

// Render paints the widget: background, scrollbar thumb, selection
// highlight, visible lines and the cursor bar. It only reads state.
func (e *Editor) Render(p Painter) {
	theme := e.cfg.GetTheme()
	pad := e.cfg.Padding
	lh := e.cfg.LineHeight
	glyphH := max(1, lh*4/5)

	p.FillRect(e.x, e.y, e.x+e.width, e.y+e.height, theme.Background)

	if top, h, ok := e.ScrollbarThumb(); ok {
		sx := e.x + e.width - e.cfg.ScrollbarWidth
		p.FillRect(sx, top, sx+e.cfg.ScrollbarWidth, top+h, theme.Scrollbar)
	}

	textX := e.x + pad
	textW := e.textWidth()
	lineY := e.y + pad
	sel, hasSel := e.Selection()
	first, last := sel.Lines()
	for i := e.view.Offset; i < e.view.End(e.buf.LineCount()); i++ {
		line := e.buf.Line(i)
		if hasSel && i >= first && i <= last {
			from, to := selectedColumns(sel, i, buffer.RuneLen(line))
			x0 := textX + e.measure.TextWidth(buffer.Prefix(line, from))
			x1 := min(textX+e.measure.TextWidth(buffer.Prefix(line, to)), textX+textW)
			if x1 > x0 {
				p.FillRect(x0, lineY, x1, lineY+glyphH, theme.Selection)
			}
		}
		p.DrawText(buffer.Prefix(line, fitColumns(e.measure, line, textW)), textX, lineY, theme.Text)
		lineY += lh
	}

	if e.view.Visible(e.cursor.Line) {
		line := e.buf.Line(e.cursor.Line)
		cx := textX + e.measure.TextWidth(buffer.Prefix(line, e.cursor.Col))
		cx = min(cx, textX+max(0, textW-e.cfg.CursorWidth))
		cy := e.y + pad + (e.cursor.Line-e.view.Offset)*lh
		p.FillRect(cx, cy, cx+e.cfg.CursorWidth, cy+glyphH, theme.Cursor)
	}
}

// textWidth is the room for text between the padding and the scrollbar.
func (e *Editor) textWidth() int {
	return max(0, e.width-2*e.cfg.Padding-e.cfg.ScrollbarWidth)
}

// fitColumns counts the leading characters of text that fit in width.
func fitColumns(m TextMeasurer, text string, width int) int {
	acc, col := 0, 0
	for _, r := range text {
		acc += m.TextWidth(string(r))
		if acc > width {
			break
		}
		col++
	}
	return col
}

// selectedColumns is the part of line i covered by sel.
func selectedColumns(sel buffer.Range, i, lineLen int) (from, to int) {
	from, to = 0, lineLen
	if i == sel.Start.Line {
		from = sel.Start.Col
	}
	if i == sel.End.Line {
		to = sel.End.Col
	}
	return from, to
}

// ScrollbarThumb returns the vertical extent of the scrollbar thumb in
// surface coordinates. ok is false when there is no scrollbar.
func (e *Editor) ScrollbarThumb() (top, height int, ok bool) {
	if e.cfg.ScrollbarWidth <= 0 || e.height <= 0 {
		return 0, 0, false
	}
	total := max(1, e.buf.LineCount())
	track := e.height

	height = max(e.cfg.MinThumbHeight, e.view.VisibleLines*track/total)
	height = min(height, track)

	maxOffset := e.view.MaxOffset(total)
	top = e.y
	if maxOffset > 0 {
		top += e.view.Offset * (track - height) / maxOffset
	}
	top = clamp(top, e.y, e.y+track-height)
	return top, height, true
}
