package classweights

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
)

// Watch reloads the table whenever the config file changes on disk. It blocks
// until the context is cancelled, so run it in its own goroutine. A reload
// failure keeps the previous table and is logged, never fatal.
func (p *Provider) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors and config pushes often replace the file,
	// which drops the watch on the file itself.
	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	target := filepath.Clean(p.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := p.Reload(); err != nil {
				log.Warn("Class weight reload failed, keeping previous table", "error", err)
				continue
			}
			log.Info("Class weight table reloaded", "path", p.path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Class weight watcher error", "error", err)
		}
	}
}
