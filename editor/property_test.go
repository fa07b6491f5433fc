package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"editbox/clipboardx"
)

var propertyKeys = []KeyEvent{
	{Key: KeyEnter},
	{Key: KeyBackspace},
	{Key: KeyDelete},
	{Key: KeyUp},
	{Key: KeyDown},
	{Key: KeyLeft},
	{Key: KeyRight},
	{Key: KeyUp, Mod: ModShift},
	{Key: KeyDown, Mod: ModShift},
	{Key: KeyLeft, Mod: ModShift},
	{Key: KeyRight, Mod: ModShift},
	{Key: KeyRune, Rune: 'a', Mod: ModCtrl},
	{Key: KeyRune, Rune: 'c', Mod: ModCtrl},
	{Key: KeyRune, Rune: 'x', Mod: ModCtrl},
	{Key: KeyRune, Rune: 'v', Mod: ModCtrl},
}

func textGen() *rapid.Generator[string] {
	line := rapid.StringOfN(rapid.RuneFrom([]rune("ab xyz")), 0, 8, -1)
	return rapid.Custom(func(t *rapid.T) string {
		return strings.Join(rapid.SliceOfN(line, 1, 12).Draw(t, "lines"), "\n")
	})
}

func requireInvariants(t require.TestingT, e *Editor) {
	require.GreaterOrEqual(t, e.LineCount(), 1)

	c := e.Cursor()
	require.GreaterOrEqual(t, c.Line, 0)
	require.Less(t, c.Line, e.LineCount())
	require.GreaterOrEqual(t, c.Col, 0)
	require.LessOrEqual(t, c.Col, len([]rune(e.Line(c.Line))))

	off := e.ScrollOffset()
	require.GreaterOrEqual(t, off, 0)
	require.LessOrEqual(t, off, max(0, e.LineCount()-e.VisibleLines()))
	require.GreaterOrEqual(t, c.Line, off)
	require.Less(t, c.Line, off+e.VisibleLines())

	if r, ok := e.Selection(); ok {
		require.True(t, r.Start.Before(r.End))
		require.Less(t, r.End.Line, e.LineCount())
	}
}

func TestEditorInvariantsUnderRandomInput(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		clip := &clipboardx.Memory{Text: rapid.SampledFrom([]string{"", "q", "1\n2", "\r\nz"}).Draw(rt, "clip")}
		e := New(testConfig(rapid.IntRange(1, 6).Draw(rt, "visible")), textGen().Draw(rt, "text"), nil, clip)
		requireInvariants(rt, e)

		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 3).Draw(rt, "kind") {
			case 0:
				e.HandleKey(rapid.SampledFrom(propertyKeys).Draw(rt, "key"))
			case 1:
				e.HandleChar(rapid.RuneFrom([]rune("abc \t~")).Draw(rt, "char"), ModNone)
			case 2:
				_, _, w, h := e.Bounds()
				x := rapid.IntRange(-2, w-2).Draw(rt, "x")
				y := rapid.IntRange(-2, h+2).Draw(rt, "y")
				e.HandleMousePress(x, y, ButtonLeft, ModNone)
				e.HandleMouseDrag(rapid.IntRange(0, w-2).Draw(rt, "dragX"), y, ButtonLeft, 0, 0)
				e.HandleMouseRelease(x, y, ButtonLeft)
			case 3:
				e.SetCursor(pos(rapid.IntRange(-1, 20).Draw(rt, "line"), rapid.IntRange(-1, 20).Draw(rt, "col")))
			}
			requireInvariants(rt, e)
		}
	})
}

func TestColumnAtStaysInLine(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringOfN(rapid.RuneFrom([]rune("aWb")), 0, 10, -1).Draw(rt, "text")
		x := rapid.IntRange(-50, 50).Draw(rt, "x")
		col := ColumnAt(wideMeasurer{}, text, x)
		require.GreaterOrEqual(rt, col, 0)
		require.LessOrEqual(rt, col, len([]rune(text)))
		if x <= 0 {
			require.Equal(rt, 0, col)
		}
	})
}
