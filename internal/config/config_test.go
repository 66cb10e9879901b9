package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(newViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("expected postgres driver, got %s", cfg.Database.Driver)
	}
	if cfg.JWTExpirationDur != 24*time.Hour {
		t.Errorf("expected 24h expiry, got %s", cfg.JWTExpirationDur)
	}
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("JWT_EXPIRES_IN", "2h")

	cfg, err := FromViper(newViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("expected db path /tmp/test.db, got %s", cfg.Database.Path)
	}
	if cfg.JWTExpirationDur != 2*time.Hour {
		t.Errorf("expected 2h expiry, got %s", cfg.JWTExpirationDur)
	}
}

func TestFromViper_InvalidExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "soon")

	cfg, err := FromViper(newViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTExpirationDur != 24*time.Hour {
		t.Errorf("expected fallback to 24h, got %s", cfg.JWTExpirationDur)
	}
}

func TestFromViper_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown_driver", env: map[string]string{"DB_DRIVER": "mysql"}},
		{name: "production_default_secret", env: map[string]string{"ENV": "production"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := FromViper(newViper()); err == nil {
				t.Fatal("expected configuration error")
			}
		})
	}
}

func TestFromViper_ExplicitValues(t *testing.T) {
	v := viper.New()
	v.Set("ENV", "production")
	v.Set("DB_DRIVER", "postgres")
	v.Set("JWT_SECRET", "a-real-secret")
	v.Set("JWT_EXPIRES_IN", "15m")

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("expected production config")
	}
	if cfg.JWTSecret != "a-real-secret" {
		t.Errorf("expected configured secret, got %s", cfg.JWTSecret)
	}
}
