package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Auth.TokenTTLMinutes != 60 {
		t.Fatalf("default token ttl: got %d want 60", cfg.Auth.TokenTTLMinutes)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("default bcrypt cost: got %d want 12", cfg.Auth.BcryptCost)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("default port: got %q want 8080", cfg.App.Port)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_TOKEN_TTL_MINUTES", "5")
	t.Setenv("AUTH_LOGIN_WINDOW_MINUTES", "2")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := cfg.App.Addr(); got != "127.0.0.1:9090" {
		t.Fatalf("addr: got %q", got)
	}
	if cfg.Auth.TokenTTLMinutes != 5 {
		t.Fatalf("token ttl override: got %d", cfg.Auth.TokenTTLMinutes)
	}
	if got := cfg.Auth.LoginWindow(); got != 2*time.Minute {
		t.Fatalf("login window: got %v", got)
	}
	if cfg.Postgres.RunMigrations {
		t.Fatalf("expected migrations disabled")
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("expected fallback cost 12, got %d", cfg.Auth.BcryptCost)
	}
}
