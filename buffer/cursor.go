package buffer

// Cursor is a position between characters: Col 0 is before the first
// character of Line, Col == RuneLen(line) is after the last one.
type Cursor struct {
	Line, Col int
}

func (c Cursor) Before(other Cursor) bool {
	if c.Line != other.Line {
		return c.Line < other.Line
	}
	return c.Col < other.Col
}

func (c Cursor) Equal(other Cursor) bool {
	return c.Line == other.Line && c.Col == other.Col
}

// Range is a normalized span, Start never after End.
type Range struct {
	Start, End Cursor
}

func NewRange(a, b Cursor) Range {
	if a.Before(b) {
		return Range{Start: a, End: b}
	}
	return Range{Start: b, End: a}
}

func (r Range) Empty() bool {
	return r.Start.Equal(r.End)
}

// Lines reports the first and last line touched by the range.
func (r Range) Lines() (first, last int) {
	return r.Start.Line, r.End.Line
}

// Selection keeps the fixed end (Anchor) and the moving end (Active) of a
// selection in the order the user made them.
type Selection struct {
	Anchor, Active Cursor
}

func NewSelection(anchor, active Cursor) Selection {
	return Selection{Anchor: anchor, Active: active}
}

func (s Selection) Range() Range {
	return NewRange(s.Anchor, s.Active)
}

func (s Selection) Empty() bool {
	return s.Anchor.Equal(s.Active)
}
