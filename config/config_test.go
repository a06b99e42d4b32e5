package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEFAULT_TIMEZONE", "")
	t.Setenv("CARE_PACKAGE_DURATION", "")
	t.Setenv("BACKEND_URL", "http://backend.local/api/")

	cfg := Load()

	if cfg.DefaultTimezone != "Africa/Cairo" {
		t.Errorf("DefaultTimezone = %q, want Africa/Cairo", cfg.DefaultTimezone)
	}
	if cfg.CarePackageDuration != time.Hour {
		t.Errorf("CarePackageDuration = %s, want 1h", cfg.CarePackageDuration)
	}
	if cfg.BackendURL != "http://backend.local/api" {
		t.Errorf("BackendURL = %q, trailing slash should be trimmed", cfg.BackendURL)
	}
	if cfg.CacheStaleTime != 5*time.Minute || cfg.CacheGCTime != 10*time.Minute {
		t.Errorf("cache lifetimes = %s/%s, want 5m/10m", cfg.CacheStaleTime, cfg.CacheGCTime)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DEFAULT_TIMEZONE", "Asia/Dubai")
	t.Setenv("CARE_PACKAGE_DURATION", "45m")
	t.Setenv("UPSTREAM_RETRIES", "not-a-number")

	cfg := Load()

	if cfg.DefaultTimezone != "Asia/Dubai" {
		t.Errorf("DefaultTimezone = %q, want Asia/Dubai", cfg.DefaultTimezone)
	}
	if cfg.CarePackageDuration != 45*time.Minute {
		t.Errorf("CarePackageDuration = %s, want 45m", cfg.CarePackageDuration)
	}
	if cfg.UpstreamRetries != 3 {
		t.Errorf("UpstreamRetries = %d, want fallback 3", cfg.UpstreamRetries)
	}
}
