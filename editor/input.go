package editor

import (
	"strings"
	"unicode"

	"editbox/buffer"
	"editbox/log"
)

type Key int

const (
	KeyNone Key = iota
	KeyRune     // a character key, see KeyEvent.Rune
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModNone Modifier = 0
)

// KeyEvent is a key press. Control combinations arrive as KeyRune with
// ModCtrl set, e.g. {KeyRune, 'c', ModCtrl}.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// HandleKey applies a key press and reports whether it was consumed.
// Unconsumed events belong to the host.
func (e *Editor) HandleKey(ev KeyEvent) bool {
	if ev.Key == KeyRune {
		if ev.Mod&ModCtrl == 0 {
			return false
		}
		switch unicode.ToLower(ev.Rune) {
		case 'c':
			return e.Copy()
		case 'x':
			return e.Cut()
		case 'v':
			return e.Paste()
		case 'a':
			e.SelectAll()
			return true
		}
		return false
	}

	shift := ev.Mod&ModShift != 0
	switch ev.Key {
	case KeyEnter:
		e.Newline()
		return true
	case KeyBackspace:
		e.Backspace()
		return true
	case KeyDelete:
		e.DeleteForward()
		return true
	case KeyUp:
		return e.move(e.MoveUp, shift)
	case KeyDown:
		return e.move(e.MoveDown, shift)
	case KeyLeft:
		return e.move(e.MoveLeft, shift)
	case KeyRight:
		return e.move(e.MoveRight, shift)
	}
	return false
}

// HandleChar types ch at the cursor, replacing the selection. Characters
// outside the printable ASCII band are rejected.
func (e *Editor) HandleChar(ch rune, mod Modifier) bool {
	if !buffer.IsPrintable(ch) {
		return false
	}
	e.deleteSelection()
	e.cursor = e.buf.InsertChar(e.cursor, ch)
	e.adjustScroll()
	return true
}

// Copy puts the selected text on the clipboard. It reports false when
// nothing is selected.
func (e *Editor) Copy() bool {
	text := e.SelectedText()
	if text == "" {
		return false
	}
	if !e.clipboard.Write(text) {
		log.Debug(log.CatEditor, "clipboard rejected copy", "chars", buffer.RuneLen(text))
	}
	return true
}

// Cut copies the selection to the clipboard and removes it. When no
// clipboard takes the text the selection stays in place.
func (e *Editor) Cut() bool {
	text := e.SelectedText()
	if text == "" {
		return false
	}
	if !e.clipboard.Write(text) {
		log.Debug(log.CatEditor, "clipboard rejected cut", "chars", buffer.RuneLen(text))
		return true
	}
	e.deleteSelection()
	e.adjustScroll()
	return true
}

// Paste replaces the selection with the clipboard text. An empty or
// unavailable clipboard leaves everything untouched.
func (e *Editor) Paste() bool {
	text := e.clipboard.Read()
	if text == "" {
		return false
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	e.deleteSelection()
	e.cursor = e.buf.InsertText(e.cursor, text)
	e.adjustScroll()
	return true
}

// Newline splits the current line at the cursor.
func (e *Editor) Newline() {
	e.deleteSelection()
	e.cursor = e.buf.SplitLine(e.cursor)
	e.adjustScroll()
}

func (e *Editor) Backspace() {
	if !e.deleteSelection() {
		e.cursor = e.buf.DeleteBackward(e.cursor)
	}
	e.adjustScroll()
}

func (e *Editor) DeleteForward() {
	if !e.deleteSelection() {
		e.cursor = e.buf.DeleteForward(e.cursor)
	}
	e.adjustScroll()
}

// Mouse handling. Coordinates are in the host's surface space, the same
// space SetBounds uses.

func (e *Editor) HandleMousePress(x, y int, button MouseButton, mod Modifier) bool {
	if button != ButtonLeft {
		return false
	}
	if e.inScrollbar(x, y) {
		e.draggingScrollbar = true
		e.scrollToPointer(y)
		return true
	}
	if !e.contains(x, y) {
		return false
	}

	pos := e.positionAtSurface(x, y)
	if mod&ModShift != 0 {
		if !e.Selecting() {
			e.StartSelection()
		}
		e.cursor = pos
		e.ExtendTo(pos)
	} else {
		e.ClearSelection()
		e.cursor = pos
	}
	e.mouseDown = true
	e.adjustScroll()
	return true
}

// HandleMouseDrag extends the selection from the press position, or moves
// the viewport while the scrollbar is held.
func (e *Editor) HandleMouseDrag(x, y int, button MouseButton, dx, dy int) bool {
	if button != ButtonLeft {
		return false
	}
	if e.draggingScrollbar {
		e.scrollToPointer(y)
		return true
	}
	// Only a press in the text area starts a drag selection.
	if !e.mouseDown {
		return false
	}

	pos := e.positionAtSurface(x, y)
	if !e.Selecting() {
		e.StartSelection()
	}
	e.cursor = pos
	e.ExtendTo(pos)
	e.adjustScroll()
	return true
}

func (e *Editor) HandleMouseRelease(x, y int, button MouseButton) bool {
	handled := e.draggingScrollbar || e.mouseDown
	e.draggingScrollbar = false
	e.mouseDown = false
	return handled
}

func (e *Editor) contains(x, y int) bool {
	return x >= e.x && x < e.x+e.width && y >= e.y && y < e.y+e.height
}

func (e *Editor) inScrollbar(x, y int) bool {
	sw := e.cfg.ScrollbarWidth
	if sw <= 0 {
		return false
	}
	right := e.x + e.width
	return x >= right-sw && x < right && y >= e.y && y < e.y+e.height
}

func (e *Editor) scrollToPointer(y int) {
	if e.height <= 0 {
		return
	}
	f := float64(y-e.y) / float64(e.height)
	e.view.ScrollToFraction(f, e.buf.LineCount())
}
