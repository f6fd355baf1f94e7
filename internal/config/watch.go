package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/furgroom/internal/logger"
)

// Watch reloads path whenever it changes and delivers each valid config on
// the returned channel. Only the latest config is buffered; a reader that
// falls behind sees the newest one. Invalid files are logged and skipped.
// The channel closes when ctx is done.
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	out := make(chan *Config, 1)
	log := logger.Named("config").With(zap.String("path", path))

	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadFile(abs)
				if err != nil {
					log.Warn("config reload rejected", zap.Error(err))
					continue
				}
				log.Info("config reloaded")
				deliver(out, cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("config watcher error", zap.Error(err))
			}
		}
	}()
	return out, nil
}

// deliver replaces any config still waiting in out with cfg.
func deliver(out chan *Config, cfg *Config) {
	for {
		select {
		case out <- cfg:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
