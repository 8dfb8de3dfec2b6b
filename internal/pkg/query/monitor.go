package query

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gethiox/intervals/internal/pkg/logger"
)

var log = logger.GetLogger()

// DetectChanges notifies whenever given file is written or recreated.
// Parent directory is watched as editors tend to replace files instead of writing them.
func DetectChanges(ctx context.Context, path string) (<-chan bool, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("cannot create watcher: %w", err)
	}

	err = watcher.Add(filepath.Dir(path))
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("cannot watch \"%s\": %w", filepath.Dir(path), err)
	}

	var change = make(chan bool)
	name := filepath.Base(path)

	go func() {
		<-ctx.Done()
		err := watcher.Close()
		if err != nil {
			log.Info(fmt.Sprintf("closing watcher failed: %v", err), logger.Debug)
		}
	}()

	go func() {
		defer close(change)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				log.Info(fmt.Sprintf("query file change detected: %s", event.Name), logger.Debug)
				select {
				case change <- true:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Info(fmt.Sprintf("watcher error: %v", err), logger.Warning)
			}
		}
	}()

	return change, nil
}
