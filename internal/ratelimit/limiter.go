// Package ratelimit provides rate limiting for theme write operations.
package ratelimit

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tmarchal/vitrine/internal/api/tenantctx"
)

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config holds rate limit configuration for theme writes (activations and
// customization saves).
type Config struct {
	WriteCooldown     time.Duration // Minimum time between writes per tenant (default: 1s)
	WriteMaxPerHour   int           // Max writes per tenant per hour (default: 120)
	WriteMaxIPPerHour int           // Max writes per IP per hour (default: 300)

	// Clock for testing (nil uses real time)
	Clock Clock
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		WriteCooldown:     time.Second,
		WriteMaxPerHour:   120,
		WriteMaxIPPerHour: 300,
	}
}

// LimitResult contains the result of a rate limit check.
type LimitResult struct {
	Allowed    bool
	RetryAfter time.Duration
	Reason     string // For logging
}

// entry tracks request counts and timestamps.
type entry struct {
	count   int
	firstAt time.Time // First request in window
	lastAt  time.Time // Most recent request (for cooldown)
}

// Limiter throttles theme write operations per tenant and per source IP.
type Limiter struct {
	config *Config
	clock  Clock
	mu     sync.Mutex

	byTenant map[string]*entry
	byIP     map[string]*entry

	// Cleanup goroutine management
	cleanupCtx    context.Context
	cleanupCancel context.CancelFunc
	cleanupOnce   sync.Once
	cleanupWg     sync.WaitGroup
}

// New creates a new rate limiter with the given config.
func New(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Limiter{
		config:        cfg,
		clock:         clock,
		byTenant:      make(map[string]*entry),
		byIP:          make(map[string]*entry),
		cleanupCtx:    ctx,
		cleanupCancel: cancel,
	}
}

// Close stops the cleanup goroutine and releases resources.
func (l *Limiter) Close() {
	l.cleanupCancel()
	l.cleanupWg.Wait()
}

// CheckWrite reports whether a write for the tenant from the given IP is
// allowed, and records it when it is.
func (l *Limiter) CheckWrite(tenantID, ip string) LimitResult {
	l.startCleanup()
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if e := l.byTenant[tenantID]; e != nil {
		elapsed := now.Sub(e.lastAt)
		if elapsed < l.config.WriteCooldown {
			return LimitResult{
				Allowed:    false,
				RetryAfter: l.config.WriteCooldown - elapsed,
				Reason:     "cooldown",
			}
		}
		if now.Sub(e.firstAt) < time.Hour && e.count >= l.config.WriteMaxPerHour {
			return LimitResult{
				Allowed:    false,
				RetryAfter: time.Hour - now.Sub(e.firstAt),
				Reason:     "hourly_limit",
			}
		}
	}

	if e := l.byIP[ip]; e != nil {
		if now.Sub(e.firstAt) < time.Hour && e.count >= l.config.WriteMaxIPPerHour {
			return LimitResult{
				Allowed:    false,
				RetryAfter: time.Hour - now.Sub(e.firstAt),
				Reason:     "ip_hourly_limit",
			}
		}
	}

	l.record(l.byTenant, tenantID, now)
	l.record(l.byIP, ip, now)
	return LimitResult{Allowed: true}
}

func (l *Limiter) record(m map[string]*entry, key string, now time.Time) {
	e := m[key]
	if e == nil || now.Sub(e.firstAt) >= time.Hour {
		m[key] = &entry{count: 1, firstAt: now, lastAt: now}
		return
	}
	e.count++
	e.lastAt = now
}

// Wrap limits the wrapped write handler, keyed by the tenant resolved from
// the request (falling back to the source IP for untagged requests).
func (l *Limiter) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		key := ip
		if tenant := tenantctx.TenantFromContext(r.Context()); tenant != nil {
			key = tenant.ID
		}

		result := l.CheckWrite(key, ip)
		if !result.Allowed {
			log.Ctx(r.Context()).Warn().
				Str("key", key).
				Str("reason", result.Reason).
				Dur("retry_after", result.RetryAfter).
				Msg("Theme write rate limited")
			w.Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())+1))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// startCleanup launches the background eviction loop on first use.
func (l *Limiter) startCleanup() {
	l.cleanupOnce.Do(func() {
		l.cleanupWg.Add(1)
		go func() {
			defer l.cleanupWg.Done()
			ticker := time.NewTicker(10 * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-l.cleanupCtx.Done():
					return
				case <-ticker.C:
					l.evictExpired()
				}
			}
		}()
	})
}

func (l *Limiter) evictExpired() {
	now := l.clock.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, e := range l.byTenant {
		if now.Sub(e.firstAt) >= time.Hour {
			delete(l.byTenant, key)
		}
	}
	for key, e := range l.byIP {
		if now.Sub(e.firstAt) >= time.Hour {
			delete(l.byIP, key)
		}
	}
}
