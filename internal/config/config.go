package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App   AppConfig   `yaml:"app"`
	Theme ThemeConfig `yaml:"theme"`
	Alert AlertConfig `yaml:"alert"`
	Log   LogConfig   `yaml:"log"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type ThemeConfig struct {
	DarkMode bool `yaml:"dark_mode"`
}

// AlertConfig 提示音设置，音高和时长是固定的
type AlertConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 以 2 为底的增益指数，0 为原始音量
}

type LogConfig struct {
	Level string `yaml:"level"`
}

const (
	minWindowWidth  = 300
	minWindowHeight = 450
	minVolume       = -10
	maxVolume       = 2
)

// 默认配置
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "Temporizador",
			WindowWidth:  500,
			WindowHeight: 600,
		},
		Theme: ThemeConfig{
			DarkMode: false,
		},
		Alert: AlertConfig{
			Enabled: true,
			Volume:  0,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate 把不合法的值修正为可用的值
func (c *Config) Validate() {
	def := DefaultConfig()
	if c.App.Name == "" {
		c.App.Name = def.App.Name
	}
	if c.App.WindowWidth < minWindowWidth {
		c.App.WindowWidth = minWindowWidth
	}
	if c.App.WindowHeight < minWindowHeight {
		c.App.WindowHeight = minWindowHeight
	}
	if c.Alert.Volume < minVolume {
		c.Alert.Volume = minVolume
	}
	if c.Alert.Volume > maxVolume {
		c.Alert.Volume = maxVolume
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// SlogLevel 解析日志级别，无法识别时使用 info
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

type Manager struct {
	mu         sync.RWMutex
	config     *Config
	configPath string
	logger     *slog.Logger
}

// NewManager 使用用户目录下的默认配置文件
func NewManager(logger *slog.Logger) (*Manager, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(filepath.Join(configDir, "config.yaml"), logger)
}

// NewManagerAt 加载指定路径的配置，文件不存在或无法解析时写入默认配置
func NewManagerAt(configPath string, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	manager := &Manager{
		configPath: configPath,
		logger:     logger,
	}

	// 加载或创建配置
	if err := manager.loadConfig(); err != nil {
		logger.Info("using default config", "path", configPath, "reason", err)
		manager.config = DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

func (m *Manager) loadConfig() error {
	cfg, err := readConfig(m.configPath)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()
	return nil
}

func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Validate()
	return cfg, nil
}

func (m *Manager) SaveConfig() error {
	m.mu.RLock()
	data, err := yaml.Marshal(m.config)
	m.mu.RUnlock()
	if err != nil {
		return err
	}

	// 确保配置目录存在
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

// GetConfig 返回当前配置的副本
func (m *Manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg := *m.config
	return &cfg
}

func (m *Manager) Path() string {
	return m.configPath
}

// 获取配置文件目录
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".temporizador"), nil
}

// 更新配置的便捷方法
func (m *Manager) UpdateThemeConfig(config ThemeConfig) error {
	m.mu.Lock()
	m.config.Theme = config
	m.mu.Unlock()
	return m.SaveConfig()
}

func (m *Manager) UpdateAlertConfig(config AlertConfig) error {
	m.mu.Lock()
	m.config.Alert = config
	m.config.Validate()
	m.mu.Unlock()
	return m.SaveConfig()
}
