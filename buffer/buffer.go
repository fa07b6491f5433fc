package buffer

import (
	"strings"
	"unicode/utf8"
)

// Buffer is an ordered list of lines. It always holds at least one line.
// Columns are counted in runes.
type Buffer struct {
	Lines []string
}

func New() *Buffer {
	return &Buffer{Lines: []string{""}}
}

func NewFromText(text string) *Buffer {
	b := New()
	b.LoadText(text)
	return b
}

// LoadText replaces every line with text split on '\n'.
func (b *Buffer) LoadText(text string) {
	b.Lines = strings.Split(text, "\n")
	if len(b.Lines) == 0 {
		b.Lines = []string{""}
	}
}

// Text joins the lines with '\n'. It is the inverse of LoadText.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines, "\n")
}

func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

// Line returns line i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.Lines) {
		return ""
	}
	return b.Lines[i]
}

func (b *Buffer) LineLen(i int) int {
	return RuneLen(b.Line(i))
}

// End is the position after the last character of the last line.
func (b *Buffer) End() Cursor {
	last := len(b.Lines) - 1
	return Cursor{Line: last, Col: b.LineLen(last)}
}

// Clamp moves pos to the nearest valid position.
func (b *Buffer) Clamp(pos Cursor) Cursor {
	if len(b.Lines) == 0 {
		b.Lines = []string{""}
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(b.Lines) {
		pos.Line = len(b.Lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if lineLen := b.LineLen(pos.Line); pos.Col > lineLen {
		pos.Col = lineLen
	}
	return pos
}

// IsPrintable reports whether ch may be typed into the buffer: the ASCII
// band from space to '~'.
func IsPrintable(ch rune) bool {
	return ch >= ' ' && ch <= '~'
}

// InsertChar inserts ch at pos and returns the position after it.
// Non-printable characters are ignored.
func (b *Buffer) InsertChar(pos Cursor, ch rune) Cursor {
	pos = b.Clamp(pos)
	if !IsPrintable(ch) {
		return pos
	}
	line := b.Lines[pos.Line]
	at := byteOffset(line, pos.Col)
	b.Lines[pos.Line] = line[:at] + string(ch) + line[at:]
	pos.Col++
	return pos
}

// InsertText inserts text at pos and returns the position at the end of the
// inserted text.
func (b *Buffer) InsertText(pos Cursor, text string) Cursor {
	pos = b.Clamp(pos)
	line := b.Lines[pos.Line]
	at := byteOffset(line, pos.Col)

	segments := strings.Split(text, "\n")
	if len(segments) == 1 {
		b.Lines[pos.Line] = line[:at] + text + line[at:]
		pos.Col += RuneLen(text)
		return pos
	}

	rest := line[at:]
	b.Lines[pos.Line] = line[:at] + segments[0]

	newLines := make([]string, len(segments)-1)
	copy(newLines, segments[1:])
	last := newLines[len(newLines)-1]
	newLines[len(newLines)-1] += rest

	after := append([]string(nil), b.Lines[pos.Line+1:]...)
	b.Lines = append(b.Lines[:pos.Line+1], newLines...)
	b.Lines = append(b.Lines, after...)

	return Cursor{Line: pos.Line + len(segments) - 1, Col: RuneLen(last)}
}

// DeleteRange removes the text between start and end (in either order) and
// returns the start of the removed span.
func (b *Buffer) DeleteRange(start, end Cursor) Cursor {
	r := NewRange(b.Clamp(start), b.Clamp(end))
	if r.Empty() {
		return r.Start
	}

	first := b.Lines[r.Start.Line]
	last := b.Lines[r.End.Line]
	b.Lines[r.Start.Line] = first[:byteOffset(first, r.Start.Col)] + last[byteOffset(last, r.End.Col):]
	if r.End.Line > r.Start.Line {
		b.Lines = append(b.Lines[:r.Start.Line+1], b.Lines[r.End.Line+1:]...)
	}
	return r.Start
}

// DeleteBackward removes the character before pos. At column 0 it joins the
// line onto the previous one. It is a no-op at the start of the buffer.
func (b *Buffer) DeleteBackward(pos Cursor) Cursor {
	pos = b.Clamp(pos)
	if pos.Col > 0 {
		prev := Cursor{Line: pos.Line, Col: pos.Col - 1}
		return b.DeleteRange(prev, pos)
	}
	if pos.Line == 0 {
		return pos
	}
	return b.JoinLines(pos.Line - 1)
}

// DeleteForward removes the character after pos. At the end of a line it
// joins the next line onto it. It is a no-op at the end of the buffer.
func (b *Buffer) DeleteForward(pos Cursor) Cursor {
	pos = b.Clamp(pos)
	if pos.Col < b.LineLen(pos.Line) {
		next := Cursor{Line: pos.Line, Col: pos.Col + 1}
		return b.DeleteRange(pos, next)
	}
	if pos.Line >= len(b.Lines)-1 {
		return pos
	}
	b.JoinLines(pos.Line)
	return pos
}

// SplitLine breaks the line at pos in two and returns the start of the new
// line.
func (b *Buffer) SplitLine(pos Cursor) Cursor {
	pos = b.Clamp(pos)
	line := b.Lines[pos.Line]
	at := byteOffset(line, pos.Col)
	b.Lines[pos.Line] = line[:at]
	b.Lines = append(b.Lines, "")
	copy(b.Lines[pos.Line+2:], b.Lines[pos.Line+1:])
	b.Lines[pos.Line+1] = line[at:]
	return Cursor{Line: pos.Line + 1, Col: 0}
}

// JoinLines appends line+1 to line and returns the join point.
func (b *Buffer) JoinLines(line int) Cursor {
	if line < 0 || line >= len(b.Lines)-1 {
		return b.Clamp(Cursor{Line: line, Col: b.LineLen(line)})
	}
	joint := Cursor{Line: line, Col: b.LineLen(line)}
	b.Lines[line] += b.Lines[line+1]
	b.Lines = append(b.Lines[:line+1], b.Lines[line+2:]...)
	return joint
}

// TextInRange returns the text covered by r, with '\n' between lines.
func (b *Buffer) TextInRange(r Range) string {
	r = NewRange(b.Clamp(r.Start), b.Clamp(r.End))
	if r.Start.Line == r.End.Line {
		return sliceRunes(b.Lines[r.Start.Line], r.Start.Col, r.End.Col)
	}

	var sb strings.Builder
	firstLine := b.Lines[r.Start.Line]
	sb.WriteString(firstLine[byteOffset(firstLine, r.Start.Col):])
	for i := r.Start.Line + 1; i < r.End.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.Lines[i])
	}
	sb.WriteByte('\n')
	lastLine := b.Lines[r.End.Line]
	sb.WriteString(lastLine[:byteOffset(lastLine, r.End.Col)])
	return sb.String()
}

// RuneLen is the length of s in characters.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Prefix returns the first col characters of s.
func Prefix(s string, col int) string {
	return s[:byteOffset(s, col)]
}

func sliceRunes(s string, from, to int) string {
	if from >= to {
		return ""
	}
	return s[byteOffset(s, from):byteOffset(s, to)]
}

// byteOffset converts a rune column into a byte index, clamped to len(s).
func byteOffset(s string, col int) int {
	if col <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == col {
			return i
		}
		n++
	}
	return len(s)
}
