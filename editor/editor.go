package editor

import (
	"editbox/buffer"
	"editbox/config"
)

// TextMeasurer reports the rendered width of a string in the host's units
// (pixels, terminal cells, ...).
type TextMeasurer interface {
	TextWidth(s string) int
}

// Painter draws on the host surface. FillRect covers [x0,x1) x [y0,y1).
type Painter interface {
	DrawText(s string, x, y int, color config.Color)
	FillRect(x0, y0, x1, y1 int, color config.Color)
}

// Clipboard is the host clipboard. Read returns "" when nothing is
// available; failures are never reported as errors.
type Clipboard interface {
	Read() string
	Write(text string) bool
}

// Editor is one editing session: a buffer plus the cursor, selection and
// scroll state over it. It is not safe for concurrent use; the host event
// loop is its only caller.
type Editor struct {
	buf       *buffer.Buffer
	cursor    buffer.Cursor
	selection *buffer.Selection // nil when nothing is selected
	view      Viewport

	cfg       *config.Config
	measure   TextMeasurer
	clipboard Clipboard

	x, y, width, height int

	draggingScrollbar bool
	mouseDown         bool

	savedSnapshot string
}

func New(cfg *config.Config, text string, measure TextMeasurer, clipboard Clipboard) *Editor {
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.Validate()
	if measure == nil {
		measure = runeMeasurer{}
	}
	if clipboard == nil {
		clipboard = &localClipboard{}
	}
	e := &Editor{
		buf:       buffer.New(),
		view:      Viewport{VisibleLines: cfg.VisibleLines},
		cfg:       cfg,
		measure:   measure,
		clipboard: clipboard,
		width:     cfg.Width,
		height:    cfg.VisibleLines*cfg.LineHeight + 2*cfg.Padding,
	}
	e.LoadText(text)
	return e
}

// LoadText replaces the whole content and resets cursor, selection and
// scroll. The loaded text becomes the clean state for Dirty.
func (e *Editor) LoadText(text string) {
	e.reset(text)
	e.savedSnapshot = e.buf.Text()
}

// SetText replaces the content like LoadText but keeps the clean state, so
// the result counts as an edit.
func (e *Editor) SetText(text string) {
	e.reset(text)
	e.adjustScroll()
}

// Clear empties the buffer without touching the clean state.
func (e *Editor) Clear() {
	e.SetText("")
}

func (e *Editor) reset(text string) {
	e.buf.LoadText(text)
	e.cursor = buffer.Cursor{}
	e.selection = nil
	e.view.Offset = 0
	e.draggingScrollbar = false
	e.mouseDown = false
}

// Text serializes the buffer.
func (e *Editor) Text() string {
	return e.buf.Text()
}

func (e *Editor) Dirty() bool {
	return e.buf.Text() != e.savedSnapshot
}

// MarkSaved records the current content as the clean state.
func (e *Editor) MarkSaved() {
	e.savedSnapshot = e.buf.Text()
}

func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

func (e *Editor) Line(i int) string {
	return e.buf.Line(i)
}

func (e *Editor) Cursor() buffer.Cursor {
	return e.cursor
}

// SetCursor moves the cursor to pos, clamped, and drops the selection.
func (e *Editor) SetCursor(pos buffer.Cursor) {
	e.selection = nil
	e.cursor = e.buf.Clamp(pos)
	e.adjustScroll()
}

// SelectionSize counts the selected characters (line breaks included) and
// the lines the selection touches.
func (e *Editor) SelectionSize() (chars, lines int) {
	r, ok := e.Selection()
	if !ok {
		return 0, 0
	}
	return buffer.RuneLen(e.buf.TextInRange(r)), r.End.Line - r.Start.Line + 1
}

func (e *Editor) ScrollOffset() int {
	return e.view.Offset
}

func (e *Editor) VisibleLines() int {
	return e.view.VisibleLines
}

// SetVisibleLines resizes the viewport, keeping the cursor in view.
func (e *Editor) SetVisibleLines(n int) {
	e.view.VisibleLines = max(1, n)
	e.adjustScroll()
}

// ScrollBy moves the viewport by delta lines without moving the cursor.
func (e *Editor) ScrollBy(delta int) bool {
	old := e.view.Offset
	e.view.Offset += delta
	e.view.Clamp(e.buf.LineCount())
	return e.view.Offset != old
}

// SetBounds places the widget on the host surface.
func (e *Editor) SetBounds(x, y, width, height int) {
	e.x, e.y, e.width, e.height = x, y, width, height
}

func (e *Editor) Bounds() (x, y, width, height int) {
	return e.x, e.y, e.width, e.height
}

func (e *Editor) adjustScroll() {
	e.view.Adjust(e.cursor.Line, e.buf.LineCount())
}

// runeMeasurer counts one unit per character.
type runeMeasurer struct{}

func (runeMeasurer) TextWidth(s string) int { return buffer.RuneLen(s) }

type localClipboard struct{ text string }

func (c *localClipboard) Read() string { return c.text }

func (c *localClipboard) Write(text string) bool {
	c.text = text
	return true
}
