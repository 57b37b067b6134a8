package catalog

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the catalog whenever the lang directory changes on disk.
// It returns once the watcher is installed; reloads happen on a
// background goroutine until ctx is canceled. Only meaningful when the
// catalog reads from the OS filesystem.
func (c *Catalog) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(c.dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if err := c.Reload(); err != nil {
					slog.Error("Failed to reload string packs", "error", err)
					continue
				}
				slog.Debug("Reloaded string packs", "dir", c.dir, "trigger", event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Lang directory watcher error", "error", err)
			}
		}
	}()

	return nil
}
