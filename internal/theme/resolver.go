// internal/theme/resolver.go
package theme

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tmarchal/vitrine/internal/models"
)

const defaultCacheTTL = 30 * time.Second

// Resolver computes the effective configuration for a tenant or an explicit
// preview theme. Precedence: explicit theme id, then the tenant's assignment,
// then the platform default. A saved customization for the resolved (tenant,
// theme) pair is merged on top before the result is returned.
//
// Results are cached per scope for a bounded TTL; activation invalidates the
// tenant's entries so a stale assignment never outlives the window. When two
// resolutions for the same scope overlap, the later one wins: the earlier
// call returns ErrSuperseded and its result must be discarded.
type Resolver struct {
	store Store
	ttl   time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
	gens  map[string]uint64
}

type cacheEntry struct {
	cfg     models.ThemeConfig
	expires time.Time
}

type ResolverOption func(*Resolver)

// WithCacheTTL bounds how long a resolved configuration may be served
// without revalidating against the store. Zero disables caching.
func WithCacheTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.ttl = ttl
	}
}

func NewResolver(store Store, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store: store,
		ttl:   defaultCacheTTL,
		cache: make(map[string]cacheEntry),
		gens:  make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the effective configuration for the given scope. Either
// argument may be empty; with both empty the platform default is returned.
// Engine-internal failures (missing theme, invalid stored config, storage
// read errors) degrade to the best available fallback; only a missing
// platform default or a superseded call surfaces as an error.
func (r *Resolver) Resolve(ctx context.Context, tenantID, explicitThemeID string) (models.ThemeConfig, error) {
	key := resolveKey(tenantID, explicitThemeID)
	if cfg, ok := r.cached(key); ok {
		return cfg, nil
	}

	gen := r.begin(key)

	cfg, err := r.load(ctx, tenantID, explicitThemeID)
	if err != nil {
		return models.ThemeConfig{}, err
	}

	if !r.commit(key, gen, cfg) {
		return models.ThemeConfig{}, ErrSuperseded
	}
	return cfg, nil
}

// CurrentTheme is the tenant-scoped "which theme is active" read used by the
// storefront and the dashboard; it does not resolve the full configuration.
func (r *Resolver) CurrentTheme(ctx context.Context, tenantID string) (models.ThemeSummary, error) {
	logger := log.Ctx(ctx)

	if tenantID != "" {
		tenant, err := r.store.TenantByID(ctx, tenantID)
		switch {
		case err != nil:
			logger.Warn().Err(err).Str("tenant_id", tenantID).Msg("Tenant lookup failed; falling back to default theme")
		case tenant.ActiveThemeID != nil:
			assigned, err := r.store.ThemeByID(ctx, *tenant.ActiveThemeID)
			if err == nil {
				return assigned.Summary(), nil
			}
			logger.Warn().Err(err).Str("tenant_id", tenantID).Str("theme_id", *tenant.ActiveThemeID).
				Msg("Assigned theme missing; falling back to default theme")
		}
	}

	fallback, err := r.store.DefaultTheme(ctx)
	if err != nil {
		if errors.Is(err, ErrThemeNotFound) {
			return models.ThemeSummary{}, ErrNoDefaultTheme
		}
		return models.ThemeSummary{}, err
	}
	return fallback.Summary(), nil
}

// Invalidate drops the tenant's cached resolutions. Called after activation
// or a customization write so dependent views re-resolve immediately.
func (r *Resolver) Invalidate(tenantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.cache {
		if strings.HasPrefix(key, tenantID+"|") {
			delete(r.cache, key)
		}
	}
}

// Sweep removes expired cache entries and reports how many were dropped.
// Run periodically by the revalidation job.
func (r *Resolver) Sweep() int {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := 0
	for key, entry := range r.cache {
		if now.After(entry.expires) {
			delete(r.cache, key)
			dropped++
		}
	}
	return dropped
}

func (r *Resolver) load(ctx context.Context, tenantID, explicitThemeID string) (models.ThemeConfig, error) {
	logger := log.Ctx(ctx)

	base, err := r.loadBase(ctx, tenantID, explicitThemeID)
	if err != nil {
		return models.ThemeConfig{}, err
	}

	cfg := base.Config
	if verr := ValidateConfig(cfg); verr != nil {
		logger.Warn().Err(verr).Str("theme_id", base.ID).Msg("Stored theme config incomplete; falling back to default theme")
		if !base.IsDefault {
			fallback, derr := r.defaultTheme(ctx)
			if derr != nil {
				return models.ThemeConfig{}, derr
			}
			base = fallback
			cfg = fallback.Config
		}
	}

	if tenantID == "" {
		return cfg, nil
	}

	customization, ok, err := r.store.Customization(ctx, tenantID, base.ID)
	if err != nil {
		logger.Warn().Err(err).Str("tenant_id", tenantID).Str("theme_id", base.ID).
			Msg("Customization lookup failed; serving base theme")
		return cfg, nil
	}
	if !ok {
		return cfg, nil
	}

	merged := Merge(cfg, customization.Config)
	if verr := ValidateConfig(merged); verr != nil {
		logger.Warn().Err(verr).Str("tenant_id", tenantID).Str("theme_id", base.ID).
			Msg("Merged customization invalid; serving base theme")
		return cfg, nil
	}
	return merged, nil
}

// loadBase picks the base theme per the precedence rules. A dangling
// reference or a read failure degrades to the platform default; only a
// missing default is unrecoverable.
func (r *Resolver) loadBase(ctx context.Context, tenantID, explicitThemeID string) (models.Theme, error) {
	logger := log.Ctx(ctx)

	if explicitThemeID != "" {
		base, err := r.store.ThemeByID(ctx, explicitThemeID)
		if err == nil {
			return base, nil
		}
		logger.Warn().Err(err).Str("theme_id", explicitThemeID).Msg("Explicit theme unavailable; falling back to default theme")
		return r.defaultTheme(ctx)
	}

	if tenantID != "" {
		tenant, err := r.store.TenantByID(ctx, tenantID)
		switch {
		case err != nil:
			logger.Warn().Err(err).Str("tenant_id", tenantID).Msg("Tenant lookup failed; falling back to default theme")
		case tenant.ActiveThemeID != nil:
			base, err := r.store.ThemeByID(ctx, *tenant.ActiveThemeID)
			if err == nil {
				return base, nil
			}
			logger.Warn().Err(err).Str("tenant_id", tenantID).Str("theme_id", *tenant.ActiveThemeID).
				Msg("Assigned theme unavailable; falling back to default theme")
		}
	}

	return r.defaultTheme(ctx)
}

func (r *Resolver) defaultTheme(ctx context.Context) (models.Theme, error) {
	fallback, err := r.store.DefaultTheme(ctx)
	if err != nil {
		if errors.Is(err, ErrThemeNotFound) {
			return models.Theme{}, ErrNoDefaultTheme
		}
		return models.Theme{}, err
	}
	return fallback, nil
}

func (r *Resolver) cached(key string) (models.ThemeConfig, bool) {
	if r.ttl <= 0 {
		return models.ThemeConfig{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.cache[key]
	if !ok || time.Now().After(entry.expires) {
		return models.ThemeConfig{}, false
	}
	return entry.cfg, true
}

// begin registers a new in-flight resolution for the scope and returns its
// generation. commit only accepts the result if no later resolution started.
func (r *Resolver) begin(key string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gens[key]++
	return r.gens[key]
}

func (r *Resolver) commit(key string, gen uint64, cfg models.ThemeConfig) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gens[key] != gen {
		return false
	}
	if r.ttl > 0 {
		r.cache[key] = cacheEntry{cfg: cfg, expires: time.Now().Add(r.ttl)}
	}
	return true
}

func resolveKey(tenantID, explicitThemeID string) string {
	return tenantID + "|" + explicitThemeID
}
