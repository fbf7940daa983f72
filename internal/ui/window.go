package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/Davidcrz14/Temporizador/internal/alert"
	"github.com/Davidcrz14/Temporizador/internal/config"
	"github.com/Davidcrz14/Temporizador/internal/scheduler"
)

type MainWindow struct {
	app        fyne.App
	window     fyne.Window
	view       *TimerView
	controller *Controller
	beeper     *alert.Beeper
	logger     *slog.Logger
}

func NewMainWindow(app fyne.App, cfg *config.Config, logger *slog.Logger) *MainWindow {
	w := &MainWindow{
		app:    app,
		window: app.NewWindow(cfg.App.Name),
		beeper: alert.NewBeeper(cfg.Alert.Volume, cfg.Alert.Enabled),
		logger: logger,
	}

	w.view = NewTimerView(w.window, cfg.App.Name)
	w.controller = NewController(NewAppState(), scheduler.UI{}, w.beeper, w.view, logger)
	w.view.Bind(w.controller)

	w.window.SetContent(w.view.Container())
	w.ApplyConfig(cfg)

	w.controller.Run()
	return w
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

// ApplyConfig 应用配置，启动时和配置文件变化时调用
func (w *MainWindow) ApplyConfig(cfg *config.Config) {
	w.window.SetTitle(cfg.App.Name)
	w.view.SetTitle(cfg.App.Name)
	w.SetSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))
	w.app.Settings().SetTheme(newVariantTheme(cfg.Theme.DarkMode))
	w.beeper.SetEnabled(cfg.Alert.Enabled)
	w.beeper.SetVolume(cfg.Alert.Volume)
	w.logger.Debug("config applied", "dark_mode", cfg.Theme.DarkMode, "alert", cfg.Alert.Enabled)
}

func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}
