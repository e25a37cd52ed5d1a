package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vidfriends/vidthumbs/internal/config"
	"github.com/vidfriends/vidthumbs/internal/logging"
)

func TestIPRateLimiterBurstAndRefill(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(1, time.Second, 2, time.Minute)
	limiter.WithNowFunc(func() time.Time { return now })

	if !limiter.Allow("ip-a") || !limiter.Allow("ip-a") {
		t.Fatal("expected burst of two to be allowed")
	}
	if limiter.Allow("ip-a") {
		t.Fatal("expected third request to be limited")
	}
	if !limiter.Allow("ip-b") {
		t.Fatal("expected a different key to have its own bucket")
	}

	now = now.Add(time.Second)
	if !limiter.Allow("ip-a") {
		t.Fatal("expected a token after one window")
	}
}

func TestIPRateLimiterSweepsIdleKeys(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(1, time.Second, 1, time.Minute)
	limiter.WithNowFunc(func() time.Time { return now })

	limiter.Allow("ip-a")
	limiter.Allow("ip-b")
	if got := limiter.Len(); got != 2 {
		t.Fatalf("expected 2 tracked keys got %d", got)
	}

	now = now.Add(2 * time.Minute)
	limiter.Allow("ip-c")
	if got := limiter.Len(); got != 1 {
		t.Fatalf("expected idle keys to be swept, %d tracked", got)
	}
}

func TestNewUploadLimiter(t *testing.T) {
	limiter := NewUploadLimiter(config.RateLimitConfig{Requests: 10, Window: time.Minute, Burst: 3})
	if limiter.ttl != 10*time.Minute {
		t.Fatalf("expected ttl of ten windows got %s", limiter.ttl)
	}
	if limiter.burst != 3 {
		t.Fatalf("expected burst 3 got %d", limiter.burst)
	}
}

func TestRequestLoggerAttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var seen string
	handler := RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen == "" {
		t.Fatal("expected request id in context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("expected response header %q got %q", seen, got)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["request_id"] != seen || entry["status"] != float64(http.StatusCreated) {
		t.Fatalf("unexpected log entry %v", entry)
	}
}

func TestRequestLoggerHonoursIncomingID(t *testing.T) {
	base := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	var seen string
	handler := RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "req-123" {
		t.Fatalf("expected incoming request id, got %q", seen)
	}
}

func TestRequestLoggerRecoversPanic(t *testing.T) {
	base := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	handler := RequestLogger(base)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}
