package ui

import (
	"github.com/gdamore/tcell/v2"
)

type DialogType int

const (
	DialogSaveConfirm DialogType = iota
	DialogReloadConfirm
)

// Dialog is a one-line yes/no prompt drawn over the status bar.
type Dialog struct {
	Type  DialogType
	Input string // name of the note the prompt is about

	OnConfirm func(answer rune) // 'y', 'n' or 'c'
}

func NewSaveConfirmDialog(name string) *Dialog {
	return &Dialog{Type: DialogSaveConfirm, Input: name}
}

func NewReloadConfirmDialog(name string) *Dialog {
	return &Dialog{Type: DialogReloadConfirm, Input: name}
}

func (d *Dialog) Message() string {
	if d.Type == DialogReloadConfirm {
		return " " + d.Input + " changed on disk. Reload and lose your edits? [Y]es [C]ancel "
	}
	return " Save changes to " + d.Input + "? [Y]es [N]o [C]ancel "
}

func (d *Dialog) Render(screen tcell.Screen, x, y, width int) {
	style := tcell.StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite)
	if d.Type == DialogReloadConfirm {
		style = tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack)
	}

	for cx := x; cx < x+width; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}

	col := x
	for _, ch := range d.Message() {
		if col < x+width {
			screen.SetContent(col, y, ch, nil, style)
			col++
		}
	}
}

// HandleKey answers the prompt. Every key is swallowed while it is open.
func (d *Dialog) HandleKey(ev *tcell.EventKey) bool {
	ch := ev.Rune()
	if ev.Key() != tcell.KeyRune {
		ch = 0
	}
	switch {
	case ch == 'y' || ch == 'Y':
		d.confirm('y')
	case (ch == 'n' || ch == 'N') && d.Type == DialogSaveConfirm:
		d.confirm('n')
	case ch == 'c' || ch == 'C' || ev.Key() == tcell.KeyEscape:
		d.confirm('c')
	}
	return true
}

func (d *Dialog) confirm(answer rune) {
	if d.OnConfirm != nil {
		d.OnConfirm(answer)
	}
}
