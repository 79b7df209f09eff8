package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SymbolConfig routes one watched instrument to its alert chat.
// Loaded once at startup; read-only for the process lifetime.
type SymbolConfig struct {
	Symbol    string `yaml:"symbol"`
	ChatID    string `yaml:"chat_id"`
	Timeframe string `yaml:"timeframe"`
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
	} `yaml:"telegram"`
	Watchlist  []SymbolConfig `yaml:"watchlist"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Schedule struct {
		AlertCron string `yaml:"alert_cron"`
	} `yaml:"schedule"`
	Probe struct {
		Addr string `yaml:"addr"`
	} `yaml:"probe"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	Proxy        string        `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("BARS_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("ALERT_CRON"); v != "" {
		cfg.Schedule.AlertCron = v
	}
	if v := os.Getenv("PROBE_ADDR"); v != "" {
		cfg.Probe.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Schedule.AlertCron == "" {
		cfg.Schedule.AlertCron = "0 */5 * * * *" // every 5 minutes
	}
	if cfg.Probe.Addr == "" {
		cfg.Probe.Addr = ":8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	for i := range cfg.Watchlist {
		if cfg.Watchlist[i].Timeframe == "" {
			cfg.Watchlist[i].Timeframe = "1d"
		}
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must contain at least one symbol")
	}
	for _, sc := range c.Watchlist {
		if sc.Symbol == "" {
			return fmt.Errorf("watchlist entries require a symbol")
		}
		if sc.ChatID == "" {
			return fmt.Errorf("watchlist entry %s requires a chat_id", sc.Symbol)
		}
	}
	return nil
}
