// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tmarchal/vitrine/internal/api"
	"github.com/tmarchal/vitrine/internal/api/themes"
	"github.com/tmarchal/vitrine/internal/config"
	dbgen "github.com/tmarchal/vitrine/internal/db/generated"
	"github.com/tmarchal/vitrine/internal/ratelimit"
	"github.com/tmarchal/vitrine/internal/theme"
)

func newServer(cfg *config.Config, queries *dbgen.Queries, store *theme.SQLStore, resolver *theme.Resolver) *http.Server {
	themes.InitHandlers(store, resolver, cfg.Theme.AllowCustomScript)

	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithTenant(queries, cfg.App.BaseDomain, "default"),
		api.WithRecovery,
		api.WithRequestID,
	)

	registerRoutes(router, ratelimit.New(nil))

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, limiter *ratelimit.Limiter) {
	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Theme catalog and engine routes; writes are rate limited per tenant.
	mux.HandleFunc("GET /api/v1/themes", themes.HandleThemesList)
	mux.HandleFunc("GET /api/v1/themes/active", themes.HandleActiveTheme)
	mux.HandleFunc("GET /api/v1/themes/resolved", themes.HandleResolvedConfig)
	mux.HandleFunc("GET /api/v1/themes/customize", themes.HandleCustomizationGet)
	mux.Handle("PUT /api/v1/themes/customize", limiter.Wrap(http.HandlerFunc(themes.HandleCustomizationSave)))
	mux.Handle("POST /api/v1/themes/activate", limiter.Wrap(http.HandlerFunc(themes.HandleActivate)))
	mux.HandleFunc("GET /api/v1/themes/{id}", themes.HandleThemeDetail)

	// Storefront projection
	mux.HandleFunc("GET /storefront/theme.css", themes.HandleStorefrontCSS)
}
