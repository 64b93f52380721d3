package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("STORE_URL", "postgres://pos@localhost:5432/kopitiam?sslmode=disable")
	t.Setenv("STORE_SERVICE_KEY", "service-key")
}

func TestNewFailsFastWithoutStoreURL(t *testing.T) {
	t.Setenv("STORE_URL", "")
	t.Setenv("STORE_SERVICE_KEY", "service-key")
	if _, err := New(); err == nil {
		t.Fatal("expected fatal error for missing STORE_URL")
	}
}

func TestNewFailsFastWithoutServiceKey(t *testing.T) {
	t.Setenv("STORE_URL", "postgres://pos@localhost:5432/kopitiam")
	t.Setenv("STORE_SERVICE_KEY", "")
	if _, err := New(); err == nil {
		t.Fatal("expected fatal error for missing STORE_SERVICE_KEY")
	}
}

func TestNewDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store.ReaderURL != cfg.Store.URL {
		t.Fatal("reader URL must default to the writer URL")
	}
	if cfg.Pos.WaitingNumbers != 30 {
		t.Fatalf("expected 30 waiting numbers, got %d", cfg.Pos.WaitingNumbers)
	}
	if cfg.Pos.PollInterval != 4*time.Second {
		t.Fatalf("expected 4s poll interval, got %s", cfg.Pos.PollInterval)
	}
	if cfg.Pos.Currency != "MYR" || cfg.Pos.Locale != "ms-MY" {
		t.Fatalf("unexpected currency defaults: %+v", cfg.Pos)
	}
	if cfg.Pos.DisableAuthRedirect {
		t.Fatal("auth redirect check must default to enabled")
	}
}

func TestNewOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("POS_WAITING_NUMBERS", "12")
	t.Setenv("POS_POLL_INTERVAL", "10s")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("MESSAGING_ENABLED", "false")

	cfg, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pos.WaitingNumbers != 12 {
		t.Fatalf("expected 12 waiting numbers, got %d", cfg.Pos.WaitingNumbers)
	}
	if cfg.Pos.PollInterval != 10*time.Second {
		t.Fatalf("expected 10s poll interval, got %s", cfg.Pos.PollInterval)
	}
	if cfg.Cache.Driver != "noop" {
		t.Fatalf("disabling the cache must select the noop driver, got %s", cfg.Cache.Driver)
	}
	if cfg.Messaging.Driver != "noop" {
		t.Fatalf("disabling messaging must select the noop driver, got %s", cfg.Messaging.Driver)
	}
}

func TestNewRejectsUnknownDrivers(t *testing.T) {
	setRequired(t)
	t.Setenv("CACHE_DRIVER", "memcached")
	if _, err := New(); err == nil {
		t.Fatal("expected error for unsupported cache driver")
	}
}
