// Package ui hosts the editor in a terminal: it owns the tcell screen,
// translates its events, saves the note and shows a status bar.
package ui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"editbox/buffer"
	"editbox/config"
	"editbox/editor"
	"editbox/log"
	"editbox/notes"
)

// wheelLines is how far one wheel notch scrolls.
const wheelLines = 3

// NoteChangedEvent carries watcher notifications into the event loop.
type NoteChangedEvent struct {
	tcell.EventTime
	Change notes.Change
}

// DraftTickEvent asks the loop to write the unsaved draft.
type DraftTickEvent struct {
	tcell.EventTime
}

// App is the note editing screen: the editor above a status line.
type App struct {
	screen  tcell.Screen
	cfg     *config.Config
	theme   *config.ColorScheme
	store   *notes.Store
	editor  *editor.Editor
	painter *Painter
	status  *StatusBar
	dialog  *Dialog
	now     func() time.Time

	quit  bool
	saved bool

	pendingReload string // note changed on disk while a dialog was open

	mouseDown    bool
	lastX, lastY int
}

// NewApp loads the note from store and lays the editor out on screen,
// which must already be initialized.
func NewApp(screen tcell.Screen, cfg *config.Config, store *notes.Store, clip editor.Clipboard) (*App, error) {
	text, err := store.Load()
	if err != nil {
		return nil, err
	}

	theme := cfg.GetTheme()
	a := &App{
		screen:  screen,
		cfg:     cfg,
		theme:   theme,
		store:   store,
		editor:  editor.New(cfg, text, CellMeasurer{}, clip),
		painter: NewPainter(screen, theme.Background),
		status:  NewStatusBar(theme),
		now:     time.Now,
	}
	a.status.Filename = filepath.Base(store.Path)
	a.layout()
	if !a.recoverDraft(text) {
		a.restoreView()
	}
	return a, nil
}

// recoverDraft loads unsaved text left behind by a previous run.
func (a *App) recoverDraft(stored string) bool {
	d, ok := notes.LoadDraft(a.store.Path)
	if !ok {
		return false
	}
	if d.Text == stored {
		a.removeDraft()
		return false
	}
	text, _ := notes.Truncate(d.Text, a.store.MaxLength)
	a.editor.SetText(text)
	a.status.SetMessage("Recovered unsaved draft from "+d.Timestamp.Local().Format("15:04:05"), a.now())
	log.Info(log.CatNotes, "recovered draft", "path", a.store.Path, "saved_at", d.Timestamp)
	return true
}

func (a *App) restoreView() {
	vs, ok := notes.LoadViewState(a.store.Path)
	if !ok {
		return
	}
	a.editor.SetCursor(buffer.Cursor{Line: vs.Line, Col: vs.Col})
	cur := a.editor.Cursor().Line
	if cur >= vs.ScrollY && cur < vs.ScrollY+a.editor.VisibleLines() {
		a.editor.ScrollBy(vs.ScrollY - a.editor.ScrollOffset())
	}
}

func (a *App) saveView() {
	cur := a.editor.Cursor()
	vs := notes.ViewState{
		NotePath: a.store.Path,
		Line:     cur.Line,
		Col:      cur.Col,
		ScrollY:  a.editor.ScrollOffset(),
	}
	if err := notes.SaveViewState(vs); err != nil {
		log.ErrorErr(log.CatNotes, "saving view state failed", err)
	}
}

func (a *App) writeDraft() {
	if !a.editor.Dirty() {
		a.removeDraft()
		return
	}
	if err := notes.SaveDraft(a.store.Path, a.editor.Text(), a.now()); err != nil {
		log.ErrorErr(log.CatNotes, "saving draft failed", err)
	}
}

func (a *App) removeDraft() {
	if err := notes.RemoveDraft(a.store.Path); err != nil {
		log.ErrorErr(log.CatNotes, "removing draft failed", err)
	}
}

// finish records where the user was and closes the screen. The draft is
// dropped whether the edits were saved or discarded.
func (a *App) finish() {
	a.removeDraft()
	a.saveView()
	a.quit = true
}

// Run opens the terminal, edits the note until the user saves or cancels,
// and reports whether the note was saved.
func Run(cfg *config.Config, store *notes.Store, clip editor.Clipboard) (bool, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return false, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return false, fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	a, err := NewApp(screen, cfg, store, clip)
	if err != nil {
		return false, err
	}
	log.Info(log.CatUI, "editing note", "path", store.Path, "lines", a.editor.LineCount())

	w, err := notes.Watch(store.Path, notes.DefaultDebounce, func(c notes.Change) {
		ev := &NoteChangedEvent{Change: c}
		ev.SetEventNow()
		screen.PostEvent(ev)
	})
	if err != nil {
		// Graceful degradation - continue without reloading
		log.ErrorErr(log.CatNotes, "watching note failed", err)
	} else {
		defer w.Close()
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(notes.DraftInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				ev := &DraftTickEvent{}
				ev.SetEventNow()
				screen.PostEvent(ev)
			}
		}
	}()

	return a.Loop(), nil
}

// Loop draws and dispatches events until the screen is closed.
func (a *App) Loop() bool {
	for !a.quit {
		a.Draw()
		a.HandleEvent(a.screen.PollEvent())
	}
	return a.saved
}

func (a *App) Editor() *editor.Editor { return a.editor }
func (a *App) Status() *StatusBar     { return a.status }
func (a *App) Dialog() *Dialog        { return a.dialog }
func (a *App) Done() bool             { return a.quit }
func (a *App) Saved() bool            { return a.saved }

// layout fits the editor into the screen above the status line.
func (a *App) layout() {
	w, h := a.screen.Size()
	pad, lh := a.cfg.Padding, a.cfg.LineHeight
	lines := max(1, min(a.cfg.VisibleLines, (h-1-2*pad)/lh))
	a.editor.SetVisibleLines(lines)
	a.editor.SetBounds(0, 0, min(a.cfg.Width, w), lines*lh+2*pad)
}

func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case nil:
		a.quit = true
	case *tcell.EventResize:
		a.screen.Sync()
		a.layout()
		w, h := a.screen.Size()
		log.Debug(log.CatUI, "screen resized", "width", w, "height", h, "lines", a.editor.VisibleLines())
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *NoteChangedEvent:
		a.handleNoteChanged(ev.Change)
	case *DraftTickEvent:
		a.writeDraft()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.dialog != nil {
		a.dialog.HandleKey(ev)
		if a.dialog == nil && a.pendingReload != "" && !a.quit {
			name := a.pendingReload
			a.pendingReload = ""
			a.resolveExternalChange(name)
		}
		return
	}
	if ev.Key() == tcell.KeyEscape {
		a.cancel()
		return
	}

	ke := TranslateKey(ev)
	switch {
	case isCtrl(ke, 's'):
		a.save()
		return
	case isCtrl(ke, 'l'):
		a.editor.Clear()
		return
	}

	if a.editor.HandleKey(ke) {
		return
	}
	if typed(ke) {
		a.editor.HandleChar(ke.Rune, ke.Mod)
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	if a.dialog != nil {
		return
	}
	x, y := ev.Position()
	btn := ev.Buttons()
	mod := translateMod(ev.Modifiers())

	switch {
	case btn&tcell.WheelUp != 0:
		a.editor.ScrollBy(-wheelLines)
	case btn&tcell.WheelDown != 0:
		a.editor.ScrollBy(wheelLines)
	case btn&tcell.Button1 != 0:
		if !a.mouseDown {
			a.mouseDown = true
			a.editor.HandleMousePress(x, y, editor.ButtonLeft, mod)
		} else if x != a.lastX || y != a.lastY {
			// Dragging with button held
			a.editor.HandleMouseDrag(x, y, editor.ButtonLeft, x-a.lastX, y-a.lastY)
		}
		a.lastX, a.lastY = x, y
	case btn&tcell.Button2 != 0:
		a.editor.HandleMousePress(x, y, editor.ButtonRight, mod)
	case btn&tcell.Button3 != 0:
		a.editor.HandleMousePress(x, y, editor.ButtonMiddle, mod)
	case btn == tcell.ButtonNone:
		if a.mouseDown {
			a.mouseDown = false
			a.editor.HandleMouseRelease(x, y, editor.ButtonLeft)
		}
	}
}

// save writes the note and closes the screen. On failure the screen stays
// open with the error in the status bar.
func (a *App) save() {
	if err := a.store.Save(a.editor.Text()); err != nil {
		log.ErrorErr(log.CatNotes, "saving note failed", err, "path", a.store.Path)
		a.status.SetMessage("Error: "+err.Error(), a.now())
		return
	}
	a.editor.MarkSaved()
	a.saved = true
	a.finish()
	log.Info(log.CatNotes, "note saved, closing", "path", a.store.Path)
}

// cancel closes without saving, asking first when there are edits.
func (a *App) cancel() {
	if !a.editor.Dirty() {
		a.finish()
		return
	}
	d := NewSaveConfirmDialog(a.status.Filename)
	d.OnConfirm = func(answer rune) {
		a.dialog = nil
		switch answer {
		case 'y':
			a.save()
		case 'n':
			a.finish()
		}
	}
	a.dialog = d
}

func (a *App) handleNoteChanged(c notes.Change) {
	name := filepath.Base(c.Path)
	if c.Removed() {
		a.status.SetMessage("Warning: "+name+" was deleted externally", a.now())
		return
	}
	if !a.store.ChangedExternally(c.ModTime) {
		return
	}
	if a.dialog != nil {
		// Asked again once the open prompt is answered.
		a.pendingReload = name
		return
	}
	a.resolveExternalChange(name)
}

func (a *App) resolveExternalChange(name string) {
	if !a.editor.Dirty() {
		a.reload()
		return
	}

	// Buffer has unsaved changes - ask before throwing them away
	a.status.SetMessage("⚠ "+name+" was modified externally! (unsaved changes)", a.now())
	d := NewReloadConfirmDialog(name)
	d.OnConfirm = func(answer rune) {
		a.dialog = nil
		if answer == 'y' {
			a.reload()
		}
	}
	a.dialog = d
}

func (a *App) reload() {
	text, err := a.store.Load()
	if err != nil {
		log.ErrorErr(log.CatNotes, "reloading note failed", err)
		a.status.SetMessage("Error: "+err.Error(), a.now())
		return
	}
	cur := a.editor.Cursor()
	a.editor.LoadText(text)
	a.editor.SetCursor(cur)
	a.status.SetMessage("↻ "+a.status.Filename+" (reloaded)", a.now())
	log.Debug(log.CatNotes, "note reloaded", "path", a.store.Path)
}

// Draw renders one frame.
func (a *App) Draw() {
	a.status.ClearExpired(a.now())

	a.screen.Clear()
	a.painter.Reset(a.theme.Background)
	a.editor.Render(a.painter)

	cur := a.editor.Cursor()
	a.status.Line, a.status.Col = cur.Line, cur.Col
	a.status.SelChars, a.status.SelLines = a.editor.SelectionSize()
	a.status.Dirty = a.editor.Dirty()

	w, h := a.screen.Size()
	if a.dialog != nil {
		a.dialog.Render(a.screen, 0, h-1, w)
	} else {
		a.status.Render(a.screen, 0, h-1, w)
	}
	a.screen.Show()
}
