// internal/theme/store.go
package theme

import (
	"context"

	"github.com/tmarchal/vitrine/internal/models"
)

// Store is the persistence collaborator the engine reads from. Lookups that
// find nothing return the package sentinels (ErrThemeNotFound,
// ErrTenantNotFound) rather than driver-level errors, so resolution can
// distinguish "absent" from "storage failed".
type Store interface {
	ThemeByID(ctx context.Context, id string) (models.Theme, error)
	DefaultTheme(ctx context.Context) (models.Theme, error)
	TenantByID(ctx context.Context, id string) (models.Tenant, error)
	// Customization returns the tenant's saved partial for the theme; the
	// bool reports whether one exists.
	Customization(ctx context.Context, tenantID, themeID string) (models.Customization, bool, error)
}

// AssignmentStore is the additional write surface the activation workflow
// needs: a single-row, all-or-nothing upsert of the tenant's assignment.
type AssignmentStore interface {
	Store
	SetActiveTheme(ctx context.Context, tenantID, themeID string) error
}
