// internal/api/themes/handlers.go
package themes

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tmarchal/vitrine/internal/api/apiutil"
	"github.com/tmarchal/vitrine/internal/models"
	"github.com/tmarchal/vitrine/internal/theme"
)

const (
	themeQueryTimeout = 5 * time.Second
	themeIDParam      = "id"
	themeIDQueryKey   = "theme_id"
	resolveRetries    = 2
)

var (
	store       themeStore
	resolver    configResolver
	allowScript bool
	initOnce    sync.Once
)

// themeStore is what the handlers need from persistence: the engine's store
// contract plus the listing and customization-write reads.
type themeStore interface {
	theme.AssignmentStore
	ListThemes(ctx context.Context) ([]models.Theme, error)
	ListActiveThemes(ctx context.Context) ([]models.Theme, error)
	SaveCustomization(ctx context.Context, tenantID, themeID string, cfg models.ThemeConfig) (models.Customization, error)
}

type configResolver interface {
	Resolve(ctx context.Context, tenantID, explicitThemeID string) (models.ThemeConfig, error)
	CurrentTheme(ctx context.Context, tenantID string) (models.ThemeSummary, error)
	Invalidate(tenantID string)
}

type activateRequest struct {
	ThemeID string `json:"themeId"`
}

type customizeRequest struct {
	ThemeID        string             `json:"themeId"`
	Customizations models.ThemeConfig `json:"customizations"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s themeStore, r configResolver, scriptInjection bool) {
	if s == nil || r == nil {
		return
	}
	initOnce.Do(func() {
		store = s
		resolver = r
		allowScript = scriptInjection
	})
}

// /api/v1/themes
func HandleThemesList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	if s == nil {
		logger.Error().Msg("Theme store not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	var (
		themes []models.Theme
		err    error
	)
	if strings.EqualFold(r.URL.Query().Get("active"), "true") {
		themes, err = s.ListActiveThemes(ctx)
	} else {
		themes, err = s.ListThemes(ctx)
	}
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list themes")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load themes")
		return
	}

	summaries := make([]models.ThemeSummary, 0, len(themes))
	for _, t := range themes {
		summaries = append(summaries, t.Summary())
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"themes": summaries}); err != nil {
		logger.Error().Err(err).Msg("Failed to write themes list response")
	}
}

// /api/v1/themes/{id}
func HandleThemeDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	if s == nil {
		logger.Error().Msg("Theme store not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	themeID, err := apiutil.ParseID(r.PathValue(themeIDParam), themeIDQueryKey)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, "Invalid theme ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	selected, err := s.ThemeByID(ctx, themeID)
	if err != nil {
		if errors.Is(err, theme.ErrThemeNotFound) {
			apiutil.WriteError(w, http.StatusNotFound, "Theme not found")
			return
		}
		logger.Error().Err(err).Str("theme_id", themeID).Msg("Failed to fetch theme")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load theme")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, selected); err != nil {
		logger.Error().Err(err).Str("theme_id", themeID).Msg("Failed to write theme detail response")
	}
}

// /api/v1/themes/active — the tenant-scoped "current theme" read used by the
// storefront and the dashboard.
func HandleActiveTheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	res := loadResolver()
	if res == nil {
		logger.Error().Msg("Theme resolver not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	tenant, ok := apiutil.RequireTenant(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	summary, err := res.CurrentTheme(ctx, tenant.ID)
	if err != nil {
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Failed to load active theme")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load active theme")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, summary); err != nil {
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Failed to write active theme response")
	}
}

// /api/v1/themes/activate
func HandleActivate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	res := loadResolver()
	if s == nil || res == nil {
		logger.Error().Msg("Theme handlers not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	tenant, ok := apiutil.RequireTenant(w, r)
	if !ok {
		return
	}

	var req activateRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	themeID, err := apiutil.ParseID(req.ThemeID, "themeId")
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	themeName, err := theme.Activate(ctx, s, tenant.ID, themeID)
	if err != nil {
		switch {
		case errors.Is(err, theme.ErrThemeNotFound):
			apiutil.WriteError(w, http.StatusNotFound, "Theme not found")
		case errors.Is(err, theme.ErrThemeNotAvailable):
			apiutil.WriteError(w, http.StatusConflict, "Theme is not available")
		case errors.Is(err, theme.ErrTenantNotFound):
			apiutil.WriteError(w, http.StatusNotFound, "Tenant not found")
		default:
			logger.Error().Err(err).Str("tenant_id", tenant.ID).Str("theme_id", themeID).Msg("Failed to activate theme")
			apiutil.WriteError(w, http.StatusInternalServerError, "Failed to activate theme")
		}
		return
	}

	// Dependent views re-resolve on their next read; dropping the cached
	// resolution is what makes that read see the new assignment.
	res.Invalidate(tenant.ID)

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Theme activated successfully",
		"themeName": themeName,
	}); err != nil {
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Failed to write activation response")
	}
}

// /api/v1/themes/customize (GET)
func HandleCustomizationGet(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	if s == nil {
		logger.Error().Msg("Theme store not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	tenant, ok := apiutil.RequireTenant(w, r)
	if !ok {
		return
	}

	themeID, err := apiutil.ParseID(apiutil.FirstNonEmpty(r.URL.Query().Get(themeIDQueryKey), r.URL.Query().Get("themeId")), themeIDQueryKey)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	customization, found, err := s.Customization(ctx, tenant.ID, themeID)
	if err != nil {
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Str("theme_id", themeID).Msg("Failed to fetch customization")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load customization")
		return
	}
	if !found {
		// No saved customization is an empty partial, not an error.
		if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"customizations": models.ThemeConfig{}}); err != nil {
			logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Failed to write customization response")
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, customization); err != nil {
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Failed to write customization response")
	}
}

// /api/v1/themes/customize (PUT)
func HandleCustomizationSave(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	s := loadStore()
	res := loadResolver()
	if s == nil || res == nil {
		logger.Error().Msg("Theme handlers not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	tenant, ok := apiutil.RequireTenant(w, r)
	if !ok {
		return
	}

	var req customizeRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	themeID, err := apiutil.ParseID(req.ThemeID, "themeId")
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	// The referenced theme must exist; the partial itself is not required to
	// be structurally complete, completeness is enforced on the merge result.
	if _, err := s.ThemeByID(ctx, themeID); err != nil {
		if errors.Is(err, theme.ErrThemeNotFound) {
			apiutil.WriteError(w, http.StatusNotFound, "Theme not found")
			return
		}
		logger.Error().Err(err).Str("theme_id", themeID).Msg("Failed to fetch theme")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load theme")
		return
	}

	saved, err := s.SaveCustomization(ctx, tenant.ID, themeID, req.Customizations)
	if err != nil {
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Str("theme_id", themeID).Msg("Failed to save customization")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to save customization")
		return
	}

	res.Invalidate(tenant.ID)

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"settings": saved,
	}); err != nil {
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Failed to write customization save response")
	}
}

// /api/v1/themes/resolved — the effective configuration for the calling
// tenant; admin preview may pass ?theme_id= to resolve an explicit theme.
func HandleResolvedConfig(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	res := loadResolver()
	if res == nil {
		logger.Error().Msg("Theme resolver not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	tenant, ok := apiutil.RequireTenant(w, r)
	if !ok {
		return
	}

	explicitThemeID, err := apiutil.ParseOptionalID(apiutil.FirstNonEmpty(r.URL.Query().Get(themeIDQueryKey), r.URL.Query().Get("themeId")), themeIDQueryKey)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	cfg, err := resolveConfig(ctx, res, tenant.ID, explicitThemeID)
	if err != nil {
		if errors.Is(err, theme.ErrNoDefaultTheme) {
			logger.Error().Err(err).Msg("Platform default theme missing")
			apiutil.WriteError(w, http.StatusInternalServerError, "Platform default theme missing")
			return
		}
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Failed to resolve theme config")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to resolve theme")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, cfg); err != nil {
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Failed to write resolved config response")
	}
}

// /storefront/theme.css — the live presentation surface rendered as CSS
// custom properties. Each request gets its own surface; the applier refuses
// to project an incomplete configuration, so a broken customization can
// never blank the storefront.
func HandleStorefrontCSS(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	res := loadResolver()
	if res == nil {
		logger.Error().Msg("Theme resolver not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	tenant, ok := apiutil.RequireTenant(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), themeQueryTimeout)
	defer cancel()

	cfg, err := resolveConfig(ctx, res, tenant.ID, "")
	if err != nil {
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Failed to resolve theme for storefront")
		http.Error(w, "Failed to resolve theme", http.StatusInternalServerError)
		return
	}

	surface := theme.NewStylesheetSurface()
	applier := theme.NewApplier(surface)
	applier.AllowScript = allowScript
	if err := applier.Apply(cfg); err != nil {
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Resolved config failed validation")
		http.Error(w, "Failed to apply theme", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write([]byte(surface.Stylesheet())); err != nil {
		logger.Error().Err(err).Str("tenant_id", tenant.ID).Msg("Failed to write stylesheet")
	}
}

// resolveConfig retries when a concurrent resolution for the same scope
// superseded ours; the winner's cached result is returned on the next pass.
func resolveConfig(ctx context.Context, res configResolver, tenantID, explicitThemeID string) (models.ThemeConfig, error) {
	var cfg models.ThemeConfig
	var err error
	for attempt := 0; attempt <= resolveRetries; attempt++ {
		cfg, err = res.Resolve(ctx, tenantID, explicitThemeID)
		if !errors.Is(err, theme.ErrSuperseded) {
			return cfg, err
		}
	}
	return cfg, err
}

func loadStore() themeStore {
	return store
}

func loadResolver() configResolver {
	return resolver
}
