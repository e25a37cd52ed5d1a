package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VIDTHUMBS_HOST", "")
	t.Setenv("VIDTHUMBS_PORT", "")
	t.Setenv("VIDTHUMBS_JWT_SECRET", "")
	t.Setenv("VIDTHUMBS_UPLOAD_RATE_WINDOW", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Host != "localhost" || cfg.AppPort != 8091 {
		t.Fatalf("unexpected address defaults: %s:%d", cfg.Host, cfg.AppPort)
	}
	if cfg.UploadRateLimit.Window != time.Minute {
		t.Fatalf("unexpected rate window %v", cfg.UploadRateLimit.Window)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected missing secret error got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("VIDTHUMBS_HOST", "thumbs.internal")
	t.Setenv("VIDTHUMBS_PORT", "9000")
	t.Setenv("VIDTHUMBS_JWT_SECRET", "s3cret")
	t.Setenv("VIDTHUMBS_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("VIDTHUMBS_UPLOAD_RATE_BURST", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Host != "thumbs.internal" || cfg.AppPort != 9000 {
		t.Fatalf("unexpected address: %s:%d", cfg.Host, cfg.AppPort)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if cfg.UploadRateLimit.Burst != 5 {
		t.Fatalf("expected invalid burst to fall back to default, got %d", cfg.UploadRateLimit.Burst)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
