package editor

import (
	"testing"

	"editbox/buffer"
	"editbox/config"
)

// fixedMeasurer gives every character the same width, like a monospace font.
type fixedMeasurer int

func (m fixedMeasurer) TextWidth(s string) int { return int(m) * buffer.RuneLen(s) }

// wideMeasurer makes 'W' three units wide and everything else one.
type wideMeasurer struct{}

func (wideMeasurer) TextWidth(s string) int {
	w := 0
	for _, r := range s {
		if r == 'W' {
			w += 3
		} else {
			w++
		}
	}
	return w
}

func TestColumnAtSnapsToNearestBoundary(t *testing.T) {
	m := fixedMeasurer(6)
	tests := []struct {
		x, want int
	}{
		{-10, 0},
		{0, 0},
		{2, 0},
		{3, 1},
		{8, 1},
		{9, 2},
		{17, 3},
		{100, 3},
	}
	for _, tt := range tests {
		if got := ColumnAt(m, "abc", tt.x); got != tt.want {
			t.Fatalf("x=%d: expected column %d, got %d", tt.x, tt.want, got)
		}
	}
	if got := ColumnAt(m, "", 40); got != 0 {
		t.Fatalf("expected 0 on empty line, got %d", got)
	}
}

func TestColumnAtOddWidths(t *testing.T) {
	// W spans [0,3), midpoint 1.5.
	if got := ColumnAt(wideMeasurer{}, "Wa", 1); got != 0 {
		t.Fatalf("expected 0 left of the midpoint, got %d", got)
	}
	if got := ColumnAt(wideMeasurer{}, "Wa", 2); got != 1 {
		t.Fatalf("expected 1 right of the midpoint, got %d", got)
	}
}

// Midpoints keep their half unit. Halving widths with integer division
// would make a click on cell 0 of a one-cell glyph land after it.
func TestColumnAtOneCellGlyphs(t *testing.T) {
	m := fixedMeasurer(1)
	for x := 0; x < 3; x++ {
		if got := ColumnAt(m, "abc", x); got != x {
			t.Fatalf("x=%d: expected the cell's own column %d, got %d", x, x, got)
		}
	}
}

func TestPositionAtPixels(t *testing.T) {
	cfg := config.Default()
	cfg.LineHeight = 15
	cfg.Padding = 5
	cfg.VisibleLines = 2
	e := New(cfg, "abc\ndefgh\nij", fixedMeasurer(6), nil)

	if got := e.PositionAt(10, 20); got != pos(1, 2) {
		t.Fatalf("expected (1,2), got %+v", got)
	}
	if got := e.PositionAt(10, -5); got != pos(0, 2) {
		t.Fatalf("expected rows above the text to clamp to line 0, got %+v", got)
	}
	if got := e.PositionAt(500, 1000); got != pos(2, 2) {
		t.Fatalf("expected clamp to last line end, got %+v", got)
	}

	e.SetCursor(pos(2, 0))
	if e.ScrollOffset() != 1 {
		t.Fatalf("expected offset 1, got %d", e.ScrollOffset())
	}
	if got := e.PositionAt(0, 0); got != pos(1, 0) {
		t.Fatalf("expected scroll offset applied, got %+v", got)
	}
}

func TestPositionAtSurfaceSubtractsBoundsAndPadding(t *testing.T) {
	cfg := config.Default()
	cfg.LineHeight = 15
	cfg.Padding = 5
	e := New(cfg, "abc\ndef", fixedMeasurer(6), nil)
	e.SetBounds(100, 50, 200, 100)

	// Text origin is (105, 55).
	if got := e.positionAtSurface(105+9, 55+15); got != pos(1, 2) {
		t.Fatalf("expected (1,2), got %+v", got)
	}
	if got := e.positionAtSurface(101, 51); got != pos(0, 0) {
		t.Fatalf("expected padding area to map to (0,0), got %+v", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 3, 2},
		{-1, 3, -1},
		{-3, 3, -1},
		{-4, 3, -2},
		{0, 3, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Fatalf("floorDiv(%d,%d): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}
