package blacklist

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/kernelvet/kernelvet/internal/log"
)

// debounceDuration coalesces rapid file events into a single reload.
const debounceDuration = 500 * time.Millisecond

// Holder holds a RuleSet and reloads it when the underlying file changes.
// The current set is swapped atomically; readers always see a complete set.
type Holder struct {
	mu      sync.RWMutex
	current *RuleSet

	path    string
	watcher *fsnotify.Watcher
	logger  zerolog.Logger

	reloadMu        sync.RWMutex
	reloadListeners []chan<- *RuleSet
}

// NewHolder creates a holder for the blacklist file at path, loading it once.
func NewHolder(path string) (*Holder, error) {
	rs, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &Holder{
		current: rs,
		path:    path,
		logger:  log.WithComponent("blacklist.watch"),
	}, nil
}

// Get returns the current rule set.
func (h *Holder) Get() *RuleSet {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Reload re-reads the blacklist file and swaps in the new rule set.
func (h *Holder) Reload() error {
	rs, err := LoadFile(h.path)
	if err != nil {
		h.logger.Error().Err(err).Msg("reload failed, keeping previous rules")
		return err
	}

	h.mu.Lock()
	h.current = rs
	h.mu.Unlock()

	h.notifyListeners(rs)
	h.logger.Debug().Int("rules", rs.Len()).Msg("blacklist reloaded")
	return nil
}

// Watch starts watching the blacklist file until ctx is cancelled.
func (h *Holder) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	h.watcher = watcher

	if err := watcher.Add(h.path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch blacklist file: %w", err)
	}

	go h.watchLoop(ctx)
	return nil
}

func (h *Holder) watchLoop(ctx context.Context) {
	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			_ = h.watcher.Close()
			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			// Write and Create cover editors that replace the file.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDuration, func() {
					_ = h.Reload()
				})
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().Err(err).Msg("watcher error")
		}
	}
}

// RegisterListener registers a channel that receives the new rule set after
// every successful reload. Sends are non-blocking; a full channel is skipped.
func (h *Holder) RegisterListener(ch chan<- *RuleSet) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()
	h.reloadListeners = append(h.reloadListeners, ch)
}

func (h *Holder) notifyListeners(rs *RuleSet) {
	h.reloadMu.RLock()
	defer h.reloadMu.RUnlock()
	for _, ch := range h.reloadListeners {
		select {
		case ch <- rs:
		default:
			h.logger.Warn().Msg("skipped notifying listener (channel full)")
		}
	}
}
