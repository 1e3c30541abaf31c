package configuration

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/patlog/patlog"
	"github.com/patlog/patlog/selflog"
)

// Watcher re-applies a configuration file to a manager whenever the
// file changes, so levels, flush levels and patterns can be adjusted
// on a running process. Sink topology is fixed after the first apply:
// reloads never add or remove sinks (see Config.Apply).
type Watcher struct {
	path    string
	manager *patlog.Manager
	fw      *fsnotify.Watcher

	closeOnce sync.Once
	done      chan struct{}
}

// Watch loads and applies the configuration file, then starts
// watching it for changes. Close the returned watcher to stop.
func Watch(path string, manager *patlog.Manager) (*Watcher, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(manager); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors and config rollouts
	// commonly replace the file via rename, which drops a file-level
	// watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		manager: manager,
		fw:      fw,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops watching. It does not touch the manager.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fw.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if selflog.IsEnabled() {
				selflog.Printf("[configuration] watch error: %v", err)
			}
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		// Partial writes surface as parse errors; keep the current
		// configuration and wait for the next event.
		if selflog.IsEnabled() {
			selflog.Printf("[configuration] reload skipped: %v", err)
		}
		return
	}
	if err := cfg.Apply(w.manager); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[configuration] reload failed: %v", err)
		}
		return
	}
	if selflog.IsEnabled() {
		selflog.Printf("[configuration] reloaded %s", w.path)
	}
}
