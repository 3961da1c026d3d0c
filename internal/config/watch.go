package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/corenotes/corenotes/internal/logging"
)

// WatchProfiles reloads the profile file whenever it is written or replaced
// and hands the new store to onChange. Reload failures are passed as err.
//
// The directory is watched rather than the file, so editors that save by
// renaming a temporary file are picked up too. Watching stops when ctx is done.
func WatchProfiles(ctx context.Context, path string, onChange func(ProfileStore, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return err
	}

	logger := logging.NewModuleLogger("config", "profiles-watcher")
	target := filepath.Clean(path)

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				logger.Debug("profiles file changed", "path", ev.Name, "op", ev.Op.String())
				store, err := LoadProfileStore(path)
				onChange(store, err)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("profiles watcher error", "error", err)
			}
		}
	}()
	return nil
}
