package fx

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchPlatform loads a platform profile and reloads it whenever the file is
// written. The initial profile and every successfully reloaded one are sent
// to the returned channel. Profiles which fail to load are traced and
// skipped. The channel is closed when ctx is cancelled.
func WatchPlatform(ctx context.Context, path string) (<-chan Platform, error) {
	pf, err := LoadPlatform(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch platform: %w", err)
	}
	// editors often replace files, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch platform: %w", err)
	}
	ch := make(chan Platform, 1)
	ch <- pf
	go func() {
		defer close(ch)
		defer watcher.Close()
		base := filepath.Base(path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					continue
				}
				pf, err := LoadPlatform(path)
				if err != nil {
					tracer().Errorf("reload platform: %v", err)
					continue
				}
				select {
				case ch <- pf:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				tracer().Errorf("watch platform: %v", err)
			}
		}
	}()
	return ch, nil
}
