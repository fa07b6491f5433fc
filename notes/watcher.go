package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"editbox/log"
)

// DefaultDebounce is the quiet period before a burst of events is reported.
const DefaultDebounce = 100 * time.Millisecond

// Change describes a modification of the watched file.
type Change struct {
	Path    string
	Op      fsnotify.Op
	ModTime time.Time // zero when the file is gone
}

func (c Change) Removed() bool {
	return c.Op&(fsnotify.Remove|fsnotify.Rename) != 0 && c.ModTime.IsZero()
}

// Watcher reports changes to a single file. The parent directory is watched
// so that editors replacing the file by rename are noticed too.
type Watcher struct {
	fw     *fsnotify.Watcher
	path   string
	notify func(Change)
	wait   time.Duration

	done chan struct{}
	wg   sync.WaitGroup
}

// Watch starts watching path. notify is called from the watcher goroutine
// once per debounced burst with the merged operations.
func Watch(path string, debounce time.Duration, notify func(Change)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		fw:     fw,
		path:   abs,
		notify: notify,
		wait:   debounce,
		done:   make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	timer := time.NewTimer(w.wait)
	timer.Stop()
	var pending fsnotify.Op

	for {
		select {
		case <-w.done:
			timer.Stop()
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			pending |= event.Op
			timer.Reset(w.wait)

		case <-timer.C:
			if pending == 0 {
				continue
			}
			c := Change{Path: w.path, Op: pending}
			if info, err := os.Stat(w.path); err == nil {
				c.ModTime = info.ModTime()
			}
			pending = 0
			log.Debug(log.CatNotes, "note file changed", "op", c.Op.String())
			w.notify(c)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatNotes, "watcher error", err)
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fw.Close()
	w.wg.Wait()
	return err
}
