package editor

import "editbox/buffer"

// Cursor movement. Left and right stop at the line edges instead of
// wrapping onto the neighbouring line. Each move reports whether the cursor
// actually moved.

func (e *Editor) MoveUp() bool {
	if e.cursor.Line == 0 {
		return false
	}
	e.cursor.Line--
	e.clampCol()
	e.adjustScroll()
	return true
}

func (e *Editor) MoveDown() bool {
	if e.cursor.Line >= e.buf.LineCount()-1 {
		return false
	}
	e.cursor.Line++
	e.clampCol()
	e.adjustScroll()
	return true
}

func (e *Editor) MoveLeft() bool {
	if e.cursor.Col == 0 {
		return false
	}
	e.cursor.Col--
	e.adjustScroll()
	return true
}

func (e *Editor) MoveRight() bool {
	if e.cursor.Col >= e.buf.LineLen(e.cursor.Line) {
		return false
	}
	e.cursor.Col++
	e.adjustScroll()
	return true
}

func (e *Editor) clampCol() {
	if lineLen := e.buf.LineLen(e.cursor.Line); e.cursor.Col > lineLen {
		e.cursor.Col = lineLen
	}
}

// move runs a cursor movement. Without shift the selection is dropped
// first; with shift a selection is started at the old cursor if none is in
// progress and extended to the new one.
func (e *Editor) move(step func() bool, shift bool) bool {
	if !shift {
		e.ClearSelection()
		return step()
	}
	from := e.cursor
	if !step() {
		return false
	}
	if !e.Selecting() {
		e.startSelectionAt(from)
	}
	e.ExtendTo(e.cursor)
	return true
}

// Selection model.

func (e *Editor) Selecting() bool {
	return e.selection != nil
}

// StartSelection anchors a new selection at the cursor.
func (e *Editor) StartSelection() {
	e.startSelectionAt(e.cursor)
}

func (e *Editor) startSelectionAt(anchor buffer.Cursor) {
	sel := buffer.NewSelection(anchor, anchor)
	e.selection = &sel
}

// ExtendTo moves the active end of the selection. It does nothing when no
// selection is in progress.
func (e *Editor) ExtendTo(pos buffer.Cursor) {
	if e.selection == nil {
		return
	}
	e.selection.Active = e.buf.Clamp(pos)
}

func (e *Editor) ClearSelection() {
	e.selection = nil
}

func (e *Editor) SelectAll() {
	sel := buffer.NewSelection(buffer.Cursor{}, e.buf.End())
	e.selection = &sel
	e.cursor = sel.Active
	e.adjustScroll()
}

// Selection returns the normalized selected range. ok is false when nothing
// or only an empty span is selected.
func (e *Editor) Selection() (r buffer.Range, ok bool) {
	if e.selection == nil || e.selection.Empty() {
		return buffer.Range{}, false
	}
	return e.selection.Range(), true
}

func (e *Editor) SelectedText() string {
	r, ok := e.Selection()
	if !ok {
		return ""
	}
	return e.buf.TextInRange(r)
}

// deleteSelection removes the selected text and reports whether there was
// any. An empty selection is dropped.
func (e *Editor) deleteSelection() bool {
	r, ok := e.Selection()
	e.selection = nil
	if !ok {
		return false
	}
	e.cursor = e.buf.DeleteRange(r.Start, r.End)
	return true
}
