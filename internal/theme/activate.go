// internal/theme/activate.go
package theme

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Activate assigns a theme to a tenant. The theme must exist and be
// available platform-wide; the write is a single-row upsert, so an unknown
// theme or a storage failure leaves the prior assignment untouched. Saved
// customizations are never touched: re-activating a theme later restores the
// tenant's customization for it.
//
// The returned name is the activated theme's display name, for confirmation
// messaging. Activation does not push updates to running sessions; callers
// trigger re-resolution (the handlers invalidate the resolver cache).
func Activate(ctx context.Context, store AssignmentStore, tenantID, themeID string) (string, error) {
	selected, err := store.ThemeByID(ctx, themeID)
	if err != nil {
		return "", err
	}
	if !selected.IsActive {
		return "", fmt.Errorf("theme %s: %w", themeID, ErrThemeNotAvailable)
	}

	if _, err := store.TenantByID(ctx, tenantID); err != nil {
		return "", err
	}

	if err := store.SetActiveTheme(ctx, tenantID, themeID); err != nil {
		return "", fmt.Errorf("persist theme assignment: %w", err)
	}

	log.Ctx(ctx).Info().
		Str("tenant_id", tenantID).
		Str("theme_id", themeID).
		Str("theme_name", selected.Name).
		Msg("Theme activated")
	return selected.Name, nil
}
