package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_USER", "festival")
		t.Setenv("DB_NAME", "proj1part2")

		cfg, err := Load()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.DB.Driver != DriverPostgres {
			t.Errorf("expected driver %q, got %q", DriverPostgres, cfg.DB.Driver)
		}
		if cfg.Addr() != "0.0.0.0:8111" {
			t.Errorf("expected default addr 0.0.0.0:8111, got %s", cfg.Addr())
		}
		if cfg.DB.MaxOpenConns != 25 {
			t.Errorf("expected 25 max open conns, got %d", cfg.DB.MaxOpenConns)
		}
		if cfg.EventsEnabled {
			t.Error("events should be disabled by default")
		}
	})

	t.Run("DatabaseURLSkipsParts", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "postgresql://u:p@db/proj1part2")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "")

		cfg, err := Load()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.DB.URL != "postgresql://u:p@db/proj1part2" {
			t.Errorf("unexpected url %q", cfg.DB.URL)
		}
	})

	t.Run("SQLiteNeedsNoUser", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "SQLite")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "festival.db")

		cfg, err := Load()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.DB.Driver != DriverSQLite {
			t.Errorf("expected driver to be lower-cased, got %q", cfg.DB.Driver)
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_USER", "root")
		t.Setenv("DB_NAME", "")

		if _, err := Load(); err == nil {
			t.Error("expected an error without DB_NAME")
		}
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		t.Setenv("DATABASE_URL", "x")

		_, err := Load()
		if !errors.Is(err, ErrUnknownDriver) {
			t.Errorf("expected ErrUnknownDriver, got %v", err)
		}
	})
}

func TestLoadRateLimitConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 5 {
		t.Errorf("expected burst to override capacity, got %d", cfg.Capacity)
	}
	if cfg.RefillInterval != 2*time.Second || cfg.RefillTokens != 1 {
		t.Errorf("unexpected refill %d/%s", cfg.RefillTokens, cfg.RefillInterval)
	}
	if cfg.TTL != 10*time.Second {
		t.Errorf("expected ttl raised to 10s, got %s", cfg.TTL)
	}
}

func TestLoadCacheConfig(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "nonsense")

	cfg := LoadCacheConfig()
	if !cfg.Methods["GET"] || !cfg.Methods["HEAD"] || cfg.Methods["POST"] {
		t.Errorf("unexpected methods %v", cfg.Methods)
	}
	if cfg.TTL != 30*time.Second {
		t.Errorf("expected default ttl on parse error, got %s", cfg.TTL)
	}
}
