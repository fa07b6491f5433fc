package editor

import "editbox/buffer"

// PositionAt maps a point relative to the top-left of the text area to a
// buffer position. Rows outside the buffer clamp to the first or last line;
// the column snaps to the nearest character boundary.
func (e *Editor) PositionAt(x, y int) buffer.Cursor {
	line := floorDiv(y, e.cfg.LineHeight) + e.view.Offset
	line = clamp(line, 0, e.buf.LineCount()-1)
	return buffer.Cursor{Line: line, Col: ColumnAt(e.measure, e.buf.Line(line), x)}
}

func (e *Editor) positionAtSurface(x, y int) buffer.Cursor {
	pad := e.cfg.Padding
	return e.PositionAt(x-e.x-pad, y-e.y-pad)
}

// ColumnAt returns the column in text closest to x: the first character
// whose horizontal midpoint lies right of x, or the line length.
func ColumnAt(m TextMeasurer, text string, x int) int {
	acc := 0
	col := 0
	for _, r := range text {
		w := m.TextWidth(string(r))
		// acc + w/2 > x without losing the half.
		if 2*acc+w > 2*x {
			return col
		}
		acc += w
		col++
	}
	return col
}

func floorDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
