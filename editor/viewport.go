package editor

import "math"

// Viewport is the window of lines currently shown: VisibleLines lines
// starting at Offset.
type Viewport struct {
	Offset       int
	VisibleLines int
}

// MaxOffset is the largest offset that still fills the viewport.
func (v Viewport) MaxOffset(lineCount int) int {
	return max(0, lineCount-v.VisibleLines)
}

// Adjust scrolls the minimum amount that brings cursorLine into view.
func (v *Viewport) Adjust(cursorLine, lineCount int) {
	v.Offset = AdjustOffset(cursorLine, lineCount, v.VisibleLines, v.Offset)
}

// AdjustOffset returns the scroll offset that keeps cursorLine visible,
// moving as little as possible from currentOffset.
func AdjustOffset(cursorLine, lineCount, visibleCount, currentOffset int) int {
	offset := currentOffset
	if cursorLine < offset {
		offset = cursorLine
	} else if cursorLine >= offset+visibleCount {
		offset = cursorLine - visibleCount + 1
	}
	return clamp(offset, 0, max(0, lineCount-visibleCount))
}

// ScrollToFraction positions the viewport at fraction f (0 = top, 1 =
// bottom) of the scrollable range.
func (v *Viewport) ScrollToFraction(f float64, lineCount int) {
	if math.IsNaN(f) {
		f = 0
	}
	f = math.Max(0, math.Min(1, f))
	maxOffset := v.MaxOffset(lineCount)
	v.Offset = clamp(int(math.Round(f*float64(maxOffset))), 0, maxOffset)
}

// Clamp pulls the offset back into range after the buffer shrank.
func (v *Viewport) Clamp(lineCount int) {
	v.Offset = clamp(v.Offset, 0, v.MaxOffset(lineCount))
}

func (v Viewport) Visible(line int) bool {
	return line >= v.Offset && line < v.Offset+v.VisibleLines
}

// End is one past the last visible line.
func (v Viewport) End(lineCount int) int {
	return min(lineCount, v.Offset+v.VisibleLines)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
