package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tmarchal/vitrine/internal/api/tenantctx"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLimiter(t *testing.T, cfg *Config) (*Limiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.Clock = clock
	limiter := New(cfg)
	t.Cleanup(limiter.Close)
	return limiter, clock
}

func TestCheckWriteCooldown(t *testing.T) {
	limiter, clock := newTestLimiter(t, nil)

	if result := limiter.CheckWrite("tenant-1", "10.0.0.1"); !result.Allowed {
		t.Fatalf("first write denied: %+v", result)
	}

	result := limiter.CheckWrite("tenant-1", "10.0.0.1")
	if result.Allowed {
		t.Fatal("write allowed within cooldown")
	}
	if result.Reason != "cooldown" {
		t.Fatalf("reason: %s", result.Reason)
	}
	if result.RetryAfter <= 0 {
		t.Fatalf("retry after: %v", result.RetryAfter)
	}

	clock.advance(time.Second)
	if result := limiter.CheckWrite("tenant-1", "10.0.0.1"); !result.Allowed {
		t.Fatalf("write denied after cooldown: %+v", result)
	}
}

func TestCheckWriteCooldownIsPerTenant(t *testing.T) {
	limiter, _ := newTestLimiter(t, nil)

	if result := limiter.CheckWrite("tenant-1", "10.0.0.1"); !result.Allowed {
		t.Fatalf("first write denied: %+v", result)
	}
	if result := limiter.CheckWrite("tenant-2", "10.0.0.2"); !result.Allowed {
		t.Fatalf("other tenant throttled: %+v", result)
	}
}

func TestCheckWriteHourlyLimit(t *testing.T) {
	limiter, clock := newTestLimiter(t, &Config{
		WriteCooldown:     0,
		WriteMaxPerHour:   3,
		WriteMaxIPPerHour: 100,
	})

	for i := 0; i < 3; i++ {
		if result := limiter.CheckWrite("tenant-1", "10.0.0.1"); !result.Allowed {
			t.Fatalf("write %d denied: %+v", i, result)
		}
		clock.advance(time.Millisecond)
	}

	result := limiter.CheckWrite("tenant-1", "10.0.0.1")
	if result.Allowed {
		t.Fatal("write allowed past hourly limit")
	}
	if result.Reason != "hourly_limit" {
		t.Fatalf("reason: %s", result.Reason)
	}

	// Window expires an hour after the first write.
	clock.advance(time.Hour)
	if result := limiter.CheckWrite("tenant-1", "10.0.0.1"); !result.Allowed {
		t.Fatalf("write denied after window reset: %+v", result)
	}
}

func TestCheckWriteIPLimit(t *testing.T) {
	limiter, clock := newTestLimiter(t, &Config{
		WriteCooldown:     0,
		WriteMaxPerHour:   100,
		WriteMaxIPPerHour: 2,
	})

	limiter.CheckWrite("tenant-1", "10.0.0.1")
	clock.advance(time.Millisecond)
	limiter.CheckWrite("tenant-2", "10.0.0.1")
	clock.advance(time.Millisecond)

	result := limiter.CheckWrite("tenant-3", "10.0.0.1")
	if result.Allowed {
		t.Fatal("write allowed past IP limit")
	}
	if result.Reason != "ip_hourly_limit" {
		t.Fatalf("reason: %s", result.Reason)
	}
}

func TestWrapReturns429(t *testing.T) {
	limiter, _ := newTestLimiter(t, nil)

	var calls int
	handler := limiter.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	request := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/themes/activate", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		ctx := tenantctx.ContextWithTenant(req.Context(), &tenantctx.Tenant{ID: "tenant-1"})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req.WithContext(ctx))
		return recorder
	}

	if recorder := request(); recorder.Code != http.StatusOK {
		t.Fatalf("first request status: %d", recorder.Code)
	}

	recorder := request()
	if recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("throttled request status: %d", recorder.Code)
	}
	if recorder.Header().Get("Retry-After") == "" {
		t.Fatal("missing Retry-After header")
	}
	if calls != 1 {
		t.Fatalf("handler calls: %d", calls)
	}
}
