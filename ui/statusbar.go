package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"editbox/config"
)

// MessageDuration is how long a temporary status message stays up.
const MessageDuration = 3 * time.Second

type StatusBar struct {
	Filename string
	Line     int
	Col      int
	SelChars int // number of selected characters (0 = no selection)
	SelLines int // number of selected lines
	Dirty    bool
	Message  string // temporary status message
	Theme    *config.ColorScheme

	messageUntil time.Time
}

func NewStatusBar(theme *config.ColorScheme) *StatusBar {
	return &StatusBar{Theme: theme}
}

// SetMessage shows msg in place of the file name for MessageDuration.
func (s *StatusBar) SetMessage(msg string, now time.Time) {
	s.Message = msg
	s.messageUntil = now.Add(MessageDuration)
}

func (s *StatusBar) ClearExpired(now time.Time) {
	if s.Message != "" && now.After(s.messageUntil) {
		s.Message = ""
	}
}

// Right is the position summary drawn at the right edge.
func (s *StatusBar) Right() string {
	pos := fmt.Sprintf("Ln %d, Col %d", s.Line+1, s.Col+1)
	if s.SelChars > 0 {
		pos = fmt.Sprintf("Sel: %d chars, %d lines │ %s", s.SelChars, s.SelLines, pos)
	}
	return pos + " │ ^S save  Esc cancel  ^L clear "
}

func (s *StatusBar) Render(screen tcell.Screen, x, y, width int) {
	theme := s.Theme
	if theme == nil {
		theme = config.Themes["classic"]
	}
	style := tcell.StyleDefault.Background(TermColor(theme.StatusBarBg)).Foreground(TermColor(theme.StatusBarFg))

	// Clear the line
	for cx := x; cx < x+width; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}

	col := x + 1
	left := s.Message
	if left == "" {
		left = s.Filename
		if left == "" {
			left = "note"
		}
		if s.Dirty {
			left += " [+]"
		}
	}
	for _, ch := range left {
		if col < x+width {
			screen.SetContent(col, y, ch, nil, style)
			col++
		}
	}

	rightRunes := []rune(s.Right())
	rightStart := x + width - len(rightRunes)
	if rightStart > col+1 {
		for i, ch := range rightRunes {
			screen.SetContent(rightStart+i, y, ch, nil, style)
		}
	}
}
