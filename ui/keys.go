package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"editbox/editor"
)

// TranslateKey maps a tcell key event onto the editor's key model. Control
// letters arrive either as tcell.KeyCtrlA..KeyCtrlZ or as a rune with
// ModCtrl depending on the terminal; both become {KeyRune, letter, ModCtrl}.
func TranslateKey(ev *tcell.EventKey) editor.KeyEvent {
	mod := translateMod(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyEnter:
		return editor.KeyEvent{Key: editor.KeyEnter, Mod: mod}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.KeyEvent{Key: editor.KeyBackspace, Mod: mod}
	case tcell.KeyDelete:
		return editor.KeyEvent{Key: editor.KeyDelete, Mod: mod}
	case tcell.KeyUp:
		return editor.KeyEvent{Key: editor.KeyUp, Mod: mod}
	case tcell.KeyDown:
		return editor.KeyEvent{Key: editor.KeyDown, Mod: mod}
	case tcell.KeyLeft:
		return editor.KeyEvent{Key: editor.KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return editor.KeyEvent{Key: editor.KeyRight, Mod: mod}
	case tcell.KeyRune:
		r := ev.Rune()
		if mod&editor.ModCtrl != 0 {
			r = unicode.ToLower(r)
		}
		return editor.KeyEvent{Key: editor.KeyRune, Rune: r, Mod: mod}
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return editor.KeyEvent{Key: editor.KeyRune, Rune: r, Mod: mod | editor.ModCtrl}
	}
	return editor.KeyEvent{Key: editor.KeyNone, Mod: mod}
}

func translateMod(m tcell.ModMask) editor.Modifier {
	var mod editor.Modifier
	if m&tcell.ModShift != 0 {
		mod |= editor.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= editor.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= editor.ModAlt
	}
	return mod
}

// isCtrl reports whether ev is Ctrl+letter.
func isCtrl(ev editor.KeyEvent, letter rune) bool {
	return ev.Key == editor.KeyRune && ev.Mod&editor.ModCtrl != 0 && ev.Rune == letter
}

// typed reports whether ev should be offered to the editor as a character.
func typed(ev editor.KeyEvent) bool {
	return ev.Key == editor.KeyRune && ev.Mod&(editor.ModCtrl|editor.ModAlt) == 0
}
