package configwatcher

import (
	"biotutor_backend/internal/config"
	"biotutor_backend/pkg/logger"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type ConfigReloader func(cfg *config.Config)

// WatchConfig reloads the config file on change, debounced to one reload per
// write burst, and hands the fresh config to the reloader.
func WatchConfig(configPath string, reloader ConfigReloader) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal("Failed to create config watcher:", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		log.Fatal("Failed to get absolute path:", err)
	}

	if err := watcher.Add(absPath); err != nil {
		log.Fatal("Failed to watch config file:", err)
	}

	var mu sync.Mutex
	timer := time.NewTimer(0)
	<-timer.C

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				mu.Lock()
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(1 * time.Second)
				mu.Unlock()
			}
		case <-timer.C:
			dirPath := filepath.Dir(configPath)
			newCfg, err := config.LoadConfig(dirPath)
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			reloader(newCfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
