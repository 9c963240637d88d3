package db

import (
	"context"
	"path/filepath"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/jsphweid/fretdex/constants"
)

// Watch reloads the library whenever the chords db file changes, until ctx
// is done. The parent directory is watched so atomic renames are seen.
func (s *Source) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return err
	}

	go s.watch(ctx, watcher)
	return nil
}

func (s *Source) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	debounced := debounce.New(constants.ReloadDebounce)
	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.logger.Debug("Chords db changed", zap.String("op", event.Op.String()))
			debounced(func() {
				if err := s.Reload(); err != nil {
					s.logger.Warn("Keeping previous chord library", zap.Error(err))
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("Chords db watcher error", zap.Error(err))
		}
	}
}
