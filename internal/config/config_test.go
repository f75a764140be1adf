package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FileAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  addr: ":9090"
scheduler:
  interval: 30s
dashboard:
  top_coins: 20
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr: %q", cfg.Server.Addr)
	}
	if cfg.Scheduler.Interval != 30*time.Second || cfg.Scheduler.Disabled {
		t.Fatalf("scheduler: %+v", cfg.Scheduler)
	}
	if cfg.Dashboard.TopCoins != 20 || cfg.Dashboard.Currency != "usd" || cfg.Dashboard.PageSize != 6 {
		t.Fatalf("dashboard: %+v", cfg.Dashboard)
	}
	if cfg.CoinGecko.BaseURL != "https://api.coingecko.com/api/v3" {
		t.Fatalf("coingecko base url: %q", cfg.CoinGecko.BaseURL)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":7070" || cfg.Logger.Level != "debug" {
		t.Fatalf("env not applied: %+v %+v", cfg.Server, cfg.Logger)
	}
}

// Выключенный в файле планировщик остаётся выключенным после подстановки значений по умолчанию
func TestLoad_SchedulerDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scheduler:\n  disabled: true\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Scheduler.Disabled {
		t.Fatalf("scheduler must stay disabled: %+v", cfg.Scheduler)
	}
	if cfg.Scheduler.Interval != 5*time.Minute {
		t.Fatalf("interval default: %v", cfg.Scheduler.Interval)
	}
}

func TestLoad_SchedulerDisabledFromEnv(t *testing.T) {
	t.Setenv("SCHEDULER_DISABLED", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Scheduler.Disabled {
		t.Fatal("SCHEDULER_DISABLED not applied")
	}
}
