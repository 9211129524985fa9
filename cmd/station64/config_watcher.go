package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/azcoigreach/station-64/internal/config"
	"github.com/azcoigreach/station-64/internal/logging"
)

// ConfigWatcher watches the server config file and applies the
// settings that are safe to change at runtime. Listener addresses and
// menu wiring still require a restart.
type ConfigWatcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	done       chan struct{}
}

// NewConfigWatcher starts watching the directory containing
// configPath. Watching the directory rather than the file itself
// survives editors that replace the file on save.
func NewConfigWatcher(configPath string) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		watcher.Close()
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		watcher:    watcher,
		configPath: absPath,
		done:       make(chan struct{}),
	}
	go cw.watch()
	log.Printf("INFO: Watching config file %s for changes", absPath)
	return cw, nil
}

func (cw *ConfigWatcher) watch() {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if !cw.isConfigEvent(event) {
				continue
			}
			cw.reload()
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("WARN: Config watcher error: %v", err)
		case <-cw.done:
			return
		}
	}
}

func (cw *ConfigWatcher) isConfigEvent(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Clean(event.Name), cw.configPath) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

func (cw *ConfigWatcher) reload() {
	cfg, err := config.LoadServerConfig(cw.configPath)
	if err != nil {
		log.Printf("WARN: Config reload failed: %v", err)
		return
	}
	logging.SetDebug(cfg.Debug)
	log.Printf("INFO: Config reloaded (debug=%v)", cfg.Debug)
}

// Close stops the watcher.
func (cw *ConfigWatcher) Close() error {
	close(cw.done)
	return cw.watcher.Close()
}
