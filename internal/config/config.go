package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация приложения, загружаемая из config.toml
// Секреты сервисного аккаунта берутся из окружения (.env), а не из файла
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Backend BackendConfig `toml:"backend"`
	Wizard  WizardConfig  `toml:"wizard"`
	Refresh RefreshConfig `toml:"refresh"`
	CORS    CORSConfig    `toml:"cors"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BackendConfig настройки подключения к backend API салона
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds

	// Сервисный аккаунт для фонового обновления данных,
	// заполняется из окружения в Load
	ServiceEmail    string `toml:"-"`
	ServicePassword string `toml:"-"`
}

// WizardConfig настройки мастера публичной записи
type WizardConfig struct {
	SessionTTLMinutes int `toml:"session_ttl_minutes"`
}

// RefreshConfig настройки фонового обновления коллекций
type RefreshConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron-выражение, например "@every 5m"
}

// CORSConfig настройки CORS для собственного API
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load загружает конфигурацию из TOML файла и окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyDefaults(cfg)

	// Секреты только из окружения
	cfg.Backend.ServiceEmail = os.Getenv("SALON_SERVICE_EMAIL")
	cfg.Backend.ServicePassword = os.Getenv("SALON_SERVICE_PASSWORD")
	if url := os.Getenv("SALON_BACKEND_URL"); url != "" {
		cfg.Backend.URL = url
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "booking-web"
	}
	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = 10
	}
	if cfg.Wizard.SessionTTLMinutes == 0 {
		cfg.Wizard.SessionTTLMinutes = 30
	}
	if cfg.Refresh.Schedule == "" {
		cfg.Refresh.Schedule = "@every 5m"
	}
}

func validate(cfg *Config) error {
	if cfg.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if cfg.Refresh.Enabled && cfg.Backend.ServiceEmail == "" {
		return fmt.Errorf("SALON_SERVICE_EMAIL is required when refresh is enabled")
	}
	if cfg.Refresh.Enabled && cfg.Backend.ServicePassword == "" {
		return fmt.Errorf("SALON_SERVICE_PASSWORD is required when refresh is enabled")
	}
	return nil
}
