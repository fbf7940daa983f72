package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/Davidcrz14/Temporizador/internal/config"
	"github.com/Davidcrz14/Temporizador/internal/ui"
)

func main() {
	logLevel := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// 初始化配置管理器，失败时使用默认配置继续运行
	cfg := config.DefaultConfig()
	configManager, err := config.NewManager(logger)
	if err != nil {
		logger.Error("config unavailable, using defaults", "error", err)
	} else {
		cfg = configManager.GetConfig()
	}
	logLevel.Set(cfg.Log.SlogLevel())

	// 创建应用
	myApp := app.New()

	// 创建主窗口
	mainWindow := ui.NewMainWindow(myApp, cfg, logger)

	// 配置文件变化时在界面线程上重新应用
	if configManager != nil {
		stop, err := configManager.WatchConfig(func(c *config.Config) {
			fyne.Do(func() {
				logLevel.Set(c.Log.SlogLevel())
				mainWindow.ApplyConfig(c)
			})
		})
		if err != nil {
			logger.Warn("config watch disabled", "error", err)
		} else {
			defer stop()
		}
	}

	mainWindow.Show()
}
