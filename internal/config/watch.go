package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/zhubert/canvas/internal/errors"
	"github.com/zhubert/canvas/internal/logger"
)

// Watch calls onChange whenever the config file at path is written or
// replaced. The parent directory is watched so editors that save by rename
// are seen too. The returned stop function ends the watch.
func Watch(path string, onChange func()) (stop func() error, err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.ConfigWatchFailed(path, err)
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, errors.ConfigWatchFailed(dir, err)
	}

	log := logger.WithComponent("config")
	name := filepath.Clean(path)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != name {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					log.Debug("config changed", "path", path, "op", event.Op.String())
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("config watch error", "error", err)
			}
		}
	}()
	return watcher.Close, nil
}
