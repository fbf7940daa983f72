package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// 监听配置变化
type ConfigChangeCallback func(*Config)

// WatchConfig 监听配置文件，文件被修改后重新加载并调用 callback
// callback 在监听 goroutine 中执行；返回的函数用于停止监听
func (m *Manager) WatchConfig(callback ConfigChangeCallback) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// 监听目录而不是文件，编辑器保存时常常是先写临时文件再改名
	if err := watcher.Add(filepath.Dir(m.configPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	target := filepath.Clean(m.configPath)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := m.loadConfig(); err != nil {
					m.logger.Warn("config reload failed", "path", m.configPath, "error", err)
					continue
				}
				m.logger.Debug("config reloaded", "path", m.configPath)
				if callback != nil {
					callback(m.GetConfig())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				m.logger.Warn("config watcher error", "error", err)
			}
		}
	}()

	return watcher.Close, nil
}
