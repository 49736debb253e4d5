package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Debounce for editor save storms: most editors fire several writes (or a
// rename) per save, and we only want one reload per save.
const reloadCooldown = 300 * time.Millisecond

// Watch reloads the config whenever the file changes and hands every valid
// result to apply. Invalid or unreadable configs are logged and skipped, so
// a half-saved file never replaces a good one. Blocks until ctx is done.
//
// The parent directory is watched rather than the file itself because many
// editors replace the file on save, which would drop a direct watch.
func Watch(ctx context.Context, path string, log *zap.Logger, apply func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}

	var lastReload time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if time.Since(lastReload) < reloadCooldown {
				continue
			}

			cfg, err := LoadFromFile(abs)
			if err != nil {
				// No cooldown stamp here: a partial write must not
				// shadow the complete write that follows it.
				log.Warn("config reload skipped", zap.Error(err))
				continue
			}
			lastReload = time.Now()
			log.Info("config reloaded", zap.String("path", abs))
			apply(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", zap.Error(err))
		}
	}
}
