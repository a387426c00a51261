package lexicon

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is how long Watch waits for a burst of file events
// to settle before reloading.
const DefaultWatchDebounce = 500 * time.Millisecond

// Watch reloads the manager whenever a lexicon file or the hierarchy file
// in its directory is written, created, removed or renamed. Appends made by
// the augmenter are writes too, so a watched manager picks them up without
// an explicit Reload. It blocks until ctx is done.
func (m *Manager) Watch(ctx context.Context, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.Add(m.dir); err != nil {
		return fmt.Errorf("watch dir %q: %w", m.dir, err)
	}
	m.logger.Info("fsnotify watching lexicon dir", "dir", m.dir)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			m.logger.Debug("fsnotify event", "file", event.Name, "event", event.Op)
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			m.logger.Warn("fsnotify error", "dir", m.dir, "error", err)
		case <-timer.C:
			report := m.Reload()
			m.logger.Info("Lexicons reloaded after change",
				"languages", len(report.Loaded),
				"failed", len(report.Failed),
				"duration", report.Duration)
		}
	}
}

func relevantEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return IsLexiconFile(event.Name) || filepath.Base(event.Name) == HierarchyFile
}
