package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"editbox/config"
	"editbox/editor"
)

func newTestPainter(t *testing.T, base config.Color) *Painter {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 5)
	return NewPainter(screen, base)
}

func TestPainterLayersFillsUnderText(t *testing.T) {
	p := newTestPainter(t, 0xFF000000)
	p.FillRect(0, 0, 4, 1, 0xFF112233)
	p.DrawText("ab", 1, 0, 0xFFFFFFFF)
	p.FillRect(2, 0, 3, 1, 0xFFFFAA00)

	ch, fg, bg := p.Cell(1, 0)
	if ch != 'a' || fg != 0xFFFFFFFF || bg != 0xFF112233 {
		t.Fatalf("expected a over the first fill, got %q %#x %#x", ch, uint32(fg), uint32(bg))
	}
	ch, _, bg = p.Cell(2, 0)
	if ch != 'b' || bg != 0xFFFFAA00 {
		t.Fatalf("expected cursor fill to keep the glyph, got %q %#x", ch, uint32(bg))
	}
	if ch, _, bg := p.Cell(10, 3); ch != ' ' || bg != 0xFF000000 {
		t.Fatalf("expected untouched cells to show the base, got %q %#x", ch, uint32(bg))
	}
}

func TestPainterBlendsTranslucentFills(t *testing.T) {
	p := newTestPainter(t, 0xFF222222)
	p.FillRect(0, 0, 1, 1, 0x80808080)
	if _, _, bg := p.Cell(0, 0); bg != 0xFF515151 {
		t.Fatalf("expected blended 0xFF515151, got %#x", uint32(bg))
	}

	p.Reset(0xFF000000)
	if _, _, bg := p.Cell(0, 0); bg != 0xFF000000 {
		t.Fatalf("expected Reset to forget the frame, got %#x", uint32(bg))
	}
}

func TestPainterWideGlyphs(t *testing.T) {
	p := newTestPainter(t, 0xFF000000)
	p.DrawText("日a", 0, 0, 0xFFFFFFFF)
	if ch, _, _ := p.Cell(0, 0); ch != '日' {
		t.Fatalf("expected wide glyph at 0, got %q", ch)
	}
	if ch, _, _ := p.Cell(1, 0); ch != 0 {
		t.Fatalf("expected continuation cell at 1, got %q", ch)
	}
	if ch, _, _ := p.Cell(2, 0); ch != 'a' {
		t.Fatalf("expected a at 2, got %q", ch)
	}
}

func TestCellMeasurer(t *testing.T) {
	var m editor.TextMeasurer = CellMeasurer{}
	if got := m.TextWidth("abc"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := m.TextWidth("日本"); got != 4 {
		t.Fatalf("expected 4 cells for two wide runes, got %d", got)
	}
	if got := editor.ColumnAt(m, "日本", 3); got != 2 {
		t.Fatalf("expected click on the right half of the second glyph to land after it, got %d", got)
	}
}
