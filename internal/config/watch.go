package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gabe/togglebar/internal/logging"
)

// Watch returns a channel that receives the reloaded config whenever the file
// at path is written or created. Configs that fail to load are logged to the
// logger carried by ctx and skipped. The channel closes when ctx is done.
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory, since editors often replace the file
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	log := logging.FromContext(ctx)
	name := filepath.Base(path)
	configs := make(chan *Config, 1)

	go func() {
		defer watcher.Close()
		defer close(configs)

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					log.Warn().Err(err).Str("path", path).Msg("ignoring invalid config")
					continue
				}
				log.Info().Str("path", path).Msg("config reloaded")
				select {
				case configs <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error().Err(err).Msg("watch error")
			}
		}
	}()

	return configs, nil
}
