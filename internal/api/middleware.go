// internal/api/middleware.go
package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tmarchal/vitrine/internal/api/tenantctx"
	dbgen "github.com/tmarchal/vitrine/internal/db/generated"
)

type Middleware func(http.Handler) http.Handler

func ChainMiddleware(h http.Handler, middleware ...Middleware) http.Handler {
	for _, m := range middleware {
		h = m(h)
	}
	return h
}

func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create response wrapper to capture status code
		wrapped := wrapResponseWriter(w)

		next.ServeHTTP(wrapped, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.status).
			Dur("duration", time.Since(start)).
			Str("request_id", requestIDFromContext(r.Context())).
			Msg("Request completed")
	})
}

func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger := log.Ctx(r.Context())
				stack := debug.Stack()
				logger.Error().
					Interface("error", err).
					Str("stack", string(stack)).
					Msg("Panic recovered")

				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type requestIDContextKey struct{}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()

		// Create a logger with the request ID
		logger := log.With().Str("request_id", requestID).Logger()

		ctx := context.WithValue(r.Context(), requestIDContextKey{}, requestID)
		ctx = logger.WithContext(ctx)

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithTenant resolves the storefront tenant from the request subdomain and
// adds it to context. Host format: {tenant-slug}.{base_domain}. A host with
// no subdomain falls back to defaultSlug when one is configured; requests
// that resolve no tenant pass through untagged and tenant-scoped handlers
// reject them.
func WithTenant(queries *dbgen.Queries, baseDomain, defaultSlug string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if strings.HasPrefix(path, "/static/") || path == "/health" || path == "/favicon.ico" {
				next.ServeHTTP(w, r)
				return
			}

			logger := log.Ctx(r.Context())

			host := r.Host
			if idx := strings.LastIndex(host, ":"); idx != -1 {
				host = host[:idx]
			}

			slug := defaultSlug
			if strings.HasSuffix(host, "."+baseDomain) {
				slug = strings.TrimSuffix(host, "."+baseDomain)
			}
			if slug == "" {
				next.ServeHTTP(w, r)
				return
			}

			// Timeout only applies to this DB query.
			queryCtx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()

			tenant, err := queries.GetTenantBySlug(queryCtx, slug)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					logger.Warn().Str("slug", slug).Msg("Tenant not found")
					http.Error(w, "Tenant not found", http.StatusNotFound)
					return
				}
				logger.Error().Err(err).Str("slug", slug).Msg("Failed to look up tenant")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			ctx := tenantctx.ContextWithTenant(r.Context(), &tenantctx.Tenant{
				ID:   tenant.ID,
				Slug: tenant.Slug,
				Name: tenant.Name,
			})
			r = r.WithContext(ctx)

			logger.Debug().Str("tenant_id", tenant.ID).Str("tenant_slug", tenant.Slug).Msg("Tenant resolved from subdomain")
			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wrapper to capture status code
type responseWriter struct {
	http.ResponseWriter
	status int
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
