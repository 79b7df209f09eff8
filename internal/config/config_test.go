package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: "123:abc"
watchlist:
  - symbol: "SOL-USD"
    chat_id: "-100200300"
  - symbol: "BHARATFORG.NS"
    chat_id: "-100200300"
    timeframe: "1h"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.BotToken != "123:abc" {
		t.Errorf("bot token = %q", cfg.Telegram.BotToken)
	}
	if cfg.Schedule.AlertCron != "0 */5 * * * *" {
		t.Errorf("default cron = %q", cfg.Schedule.AlertCron)
	}
	if cfg.Probe.Addr != ":8080" {
		t.Errorf("default probe addr = %q", cfg.Probe.Addr)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q", cfg.Log.Level)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("default fetch timeout = %v", cfg.FetchTimeout)
	}
	if cfg.Watchlist[0].Timeframe != "1d" {
		t.Errorf("missing timeframe must default to 1d, got %q", cfg.Watchlist[0].Timeframe)
	}
	if cfg.Watchlist[1].Timeframe != "1h" {
		t.Errorf("explicit timeframe overwritten: %q", cfg.Watchlist[1].Timeframe)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: "from-file"
`)
	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")
	t.Setenv("ALERT_CRON", "0 0 * * * *")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.BotToken != "from-env" {
		t.Errorf("env must win over file, got %q", cfg.Telegram.BotToken)
	}
	if cfg.Schedule.AlertCron != "0 0 * * * *" {
		t.Errorf("cron override not applied: %q", cfg.Schedule.AlertCron)
	}
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-only")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("a missing file is not an error: %v", err)
	}
	if cfg.Telegram.BotToken != "env-only" {
		t.Errorf("bot token = %q", cfg.Telegram.BotToken)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "telegram: [not a map")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Telegram.BotToken = "123:abc"
		cfg.Watchlist = []SymbolConfig{{Symbol: "SOL-USD", ChatID: "1", Timeframe: "1d"}}
		return cfg
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg := valid()
	cfg.Telegram.BotToken = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing bot token must fail validation")
	}

	cfg = valid()
	cfg.Watchlist = nil
	if err := cfg.Validate(); err == nil {
		t.Error("empty watchlist must fail validation")
	}

	cfg = valid()
	cfg.Watchlist[0].ChatID = ""
	if err := cfg.Validate(); err == nil {
		t.Error("watchlist entry without chat_id must fail validation")
	}

	cfg = valid()
	cfg.Watchlist[0].Symbol = ""
	if err := cfg.Validate(); err == nil {
		t.Error("watchlist entry without symbol must fail validation")
	}
}
