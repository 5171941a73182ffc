// Package watcher notifies the editor when the open file changes on disk.
package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"quillpad/internal/log"
)

// Watcher watches a single file and delivers change notifications on Events.
// Editors watch the directory rather than the file itself: many tools save by
// rename, which replaces the watched inode.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	events chan struct{}
	done   chan struct{}
}

// Watch starts watching path's directory for events touching path.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w := &Watcher{
		fsw:    fsw,
		path:   abs,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Events delivers one value per batch of on-disk changes to the watched file.
func (w *Watcher) Events() <-chan struct{} { return w.events }

// Close stops the watcher and closes Events.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			log.Debug(log.CatWatcher, "file changed on disk", "path", ev.Name, "op", ev.Op.String())
			select {
			case w.events <- struct{}{}:
			default: // a notification is already pending
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "watch error", err, "path", w.path)
		}
	}
}
