package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port            int     `yaml:"port"`
		APIKey          string  `yaml:"api_key"`
		RatePerSecond   float64 `yaml:"rate_per_second"`
		RateBurst       int     `yaml:"rate_burst"`
		SessionTimeoutM int     `yaml:"session_timeout_minutes"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Backup struct {
		Enabled       bool   `yaml:"enabled"`
		IntervalHours int    `yaml:"interval_hours"`
		Path          string `yaml:"path"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"backup"`

	Redis struct {
		Enabled         bool   `yaml:"enabled"`
		Address         string `yaml:"address"`
		Password        string `yaml:"password"`
		DB              int    `yaml:"db"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	} `yaml:"redis"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port"`
	} `yaml:"monitoring"`

	Marina struct {
		Docks []string `yaml:"docks"`
	} `yaml:"marina"`

	Telegram struct {
		Enabled  bool    `yaml:"enabled"`
		BotToken string  `yaml:"bot_token"`
		Debug    bool    `yaml:"debug"`
		Managers []int64 `yaml:"managers"`
	} `yaml:"telegram"`

	Sheets struct {
		Enabled         bool   `yaml:"enabled"`
		CredentialsFile string `yaml:"credentials_file"`
		SpreadsheetID   string `yaml:"spreadsheet_id"`
		SheetName       string `yaml:"sheet_name"`
	} `yaml:"sheets"`
}

// DefaultDocks is the slip inventory used when the config lists none.
var DefaultDocks = []string{"102", "112", "113", "114", "300", "301", "310"}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err = os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/marina.db"
	}
	if len(cfg.Marina.Docks) == 0 {
		cfg.Marina.Docks = append([]string(nil), DefaultDocks...)
	}
	if cfg.Sheets.SheetName == "" {
		cfg.Sheets.SheetName = "Reservations"
	}
}

func (c *Config) CacheTTL() time.Duration {
	if c.Redis.CacheTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.Redis.CacheTTLSeconds) * time.Second
}

func (c *Config) SessionTimeout() time.Duration {
	if c.Server.SessionTimeoutM <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.Server.SessionTimeoutM) * time.Minute
}

func (c *Config) RateLimit() (float64, int) {
	rate := c.Server.RatePerSecond
	if rate <= 0 {
		rate = 10
	}
	burst := c.Server.RateBurst
	if burst <= 0 {
		burst = 20
	}
	return rate, burst
}

func (c *Config) BackupInterval() time.Duration {
	if c.Backup.IntervalHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Backup.IntervalHours) * time.Hour
}
