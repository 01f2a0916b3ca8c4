package input

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchKeymap reloads the keymap whenever its file is written or
// replaced, delivering each successfully parsed version on the returned
// channel. Only the newest reload is kept if the receiver lags. The
// watcher stops when ctx is cancelled.
func WatchKeymap(ctx context.Context, path string, log *zap.Logger) (<-chan *Keymap, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("keymap watcher: %w", err)
	}
	// Watch the directory: editors often save by rename, which drops a
	// watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	out := make(chan *Keymap, 1)
	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				km, err := LoadKeymap(path)
				if err != nil {
					log.Warn("keymap reload failed", zap.String("file", path), zap.Error(err))
					continue
				}
				select {
				case <-out:
				default:
				}
				out <- km
				log.Info("keymap reloaded", zap.String("file", path), zap.Int("bindings", km.Len()))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("keymap watcher error", zap.Error(err))
			}
		}
	}()
	return out, nil
}
