package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 500 * time.Millisecond

// Watcher watches for configuration changes.
type Watcher struct {
	path       string
	schemaPath string
	onReload   func(*Config, error)
	fsw        *fsnotify.Watcher
	current    *Config
	mu         sync.RWMutex
	reloads    atomic.Uint32
	done       chan struct{}
	closeOnce  sync.Once

	timerMu  sync.Mutex
	timer    *time.Timer
	reloadMu sync.Mutex
}

// NewWatcher creates a new config watcher.
// onReload may be nil.
func NewWatcher(path string, schemaPath string, onReload func(*Config, error)) (*Watcher, error) {
	cfg, err := LoadAndValidate(path, schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial config: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory so that editors replacing the file are noticed.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch config file %s: %w", path, err)
	}

	watcher := &Watcher{
		path:       path,
		schemaPath: schemaPath,
		onReload:   onReload,
		fsw:        fsw,
		current:    cfg,
		done:       make(chan struct{}),
	}

	go watcher.watch()

	return watcher, nil
}

// watch watches for configuration changes.
func (cw *Watcher) watch() {
	defer cw.stopTimer()

	target := filepath.Clean(cw.path)

	for {
		select {
		case <-cw.done:
			return

		case event, ok := <-cw.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				cw.schedule()
			}

		case err, ok := <-cw.fsw.Errors:
			if !ok {
				return
			}

			slog.Error("Watcher error", "error", err)
		}
	}
}

// schedule (re)arms the debounce timer unless the watcher is closed.
func (cw *Watcher) schedule() {
	cw.timerMu.Lock()
	defer cw.timerMu.Unlock()

	if cw.closed() {
		return
	}
	if cw.timer != nil {
		cw.timer.Stop()
	}
	cw.timer = time.AfterFunc(debounce, cw.reload)
}

func (cw *Watcher) stopTimer() {
	cw.timerMu.Lock()
	defer cw.timerMu.Unlock()

	if cw.timer != nil {
		cw.timer.Stop()
		cw.timer = nil
	}
}

func (cw *Watcher) closed() bool {
	select {
	case <-cw.done:
		return true
	default:
		return false
	}
}

// reload reloads the config file. Reloads run one at a time so the
// snapshot always reflects the latest read of the file.
func (cw *Watcher) reload() {
	cw.reloadMu.Lock()
	defer cw.reloadMu.Unlock()

	if cw.closed() {
		return
	}

	count := cw.reloads.Add(1)
	slog.Info("Reloading config file", "path", cw.path, "count", count)

	cfg, err := LoadAndValidate(cw.path, cw.schemaPath)
	if cw.closed() {
		return
	}
	if err != nil {
		slog.Error("Failed to reload config", "error", err)
		if cw.onReload != nil {
			cw.onReload(nil, err)
		}
		return
	}

	cw.mu.Lock()
	cw.current = cfg
	cw.mu.Unlock()

	slog.Info("Config reloaded successfully", "count", count)
	if cw.onReload != nil {
		cw.onReload(cfg, nil)
	}
}

// Snapshot returns the current config snapshot (thread-safe).
func (cw *Watcher) Snapshot() *Config {
	cw.mu.RLock()
	defer cw.mu.RUnlock()

	return cw.current
}

// ReloadCount returns the number of times the config has been reloaded.
func (cw *Watcher) ReloadCount() uint32 {
	return cw.reloads.Load()
}

// String reads key from the current snapshot.
func (cw *Watcher) String(key string) string {
	return cw.Snapshot().String(key)
}

// StringList reads key from the current snapshot.
func (cw *Watcher) StringList(key string) []string {
	return cw.Snapshot().StringList(key)
}

// Close stops watching the config file and cancels a pending reload.
func (cw *Watcher) Close() error {
	var err error
	cw.closeOnce.Do(func() {
		cw.timerMu.Lock()
		close(cw.done)
		cw.timerMu.Unlock()

		cw.stopTimer()
		err = cw.fsw.Close()
	})

	return err
}
