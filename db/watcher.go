package db

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/veldt-labs/argdb/errors"
	"github.com/veldt-labs/argdb/logger"
)

// Watcher watches the schema definition file and triggers callbacks after
// it changes, debouncing rapid successive writes from editors.
type Watcher struct {
	path           string
	watcher        *fsnotify.Watcher
	callbacks      []func() error
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	isOwnWrite     bool
	ownWriteMu     sync.Mutex
}

// NewDefinitionWatcher returns a watcher over the database's schema
// definition file with the migration pipeline registered: merge the
// definition into the store, then regenerate the argument declarations.
func (d *Database) NewDefinitionWatcher() (*Watcher, error) {
	w, err := NewWatcher(d.cfg.DefinitionPath())
	if err != nil {
		return nil, err
	}
	w.OnChange(d.Migrate)
	w.OnChange(d.GenerateCode)
	return w, nil
}

// NewWatcher creates a watcher over the given schema definition file.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch schema definition %s", path)
	}

	return &Watcher{
		path:           path,
		watcher:        fsw,
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid file changes
	}, nil
}

// OnChange registers a callback to run after the definition changes.
func (w *Watcher) OnChange(fn func() error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// MarkOwnWrite marks the next write as coming from us (prevents reload loops)
func (w *Watcher) MarkOwnWrite() {
	w.ownWriteMu.Lock()
	defer w.ownWriteMu.Unlock()
	w.isOwnWrite = true
}

// checkOwnWrite checks and clears the own-write flag
func (w *Watcher) checkOwnWrite() bool {
	w.ownWriteMu.Lock()
	defer w.ownWriteMu.Unlock()
	if w.isOwnWrite {
		w.isOwnWrite = false
		return true
	}
	return false
}

// Start begins watching for definition changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops watching.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if w.checkOwnWrite() {
					logger.Debugw("schema watcher ignoring own write", "file", event.Name)
					continue
				}
				logger.Infow("schema watcher detected change",
					"file", event.Name,
					"op", event.Op.String())
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("schema watcher error", "error", err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers the callbacks
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.reload(); err != nil {
			logger.Errorw("schema reload failed", "error", err)
		}
	})
}

func (w *Watcher) reload() error {
	logger.Infow("schema definition changed", "path", w.path)

	w.mu.RLock()
	callbacks := make([]func() error, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(); err != nil {
			logger.Warnw("schema reload callback error", "error", err)
			// Continue calling other callbacks even if one fails
		}
	}
	return nil
}
