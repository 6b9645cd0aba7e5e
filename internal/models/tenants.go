// internal/models/tenants.go
package models

import (
	"time"

	dbgen "github.com/tmarchal/vitrine/internal/db/generated"
)

// Tenant statuses mirror the platform account lifecycle; only the slug-based
// storefront routing cares about them here.
const (
	TenantStatusActive    = "active"
	TenantStatusTrial     = "trial"
	TenantStatusSuspended = "suspended"
	TenantStatusInactive  = "inactive"
)

// Tenant is a storefront account. ActiveThemeID is the tenant's theme
// assignment: nil means no assignment and the platform default applies.
// A tenant has at most one assignment; activation overwrites it.
type Tenant struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	ActiveThemeID *string   `json:"activeThemeId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func TenantFromDB(row dbgen.Tenant) Tenant {
	var activeThemeID *string
	if row.ActiveThemeID.Valid {
		id := row.ActiveThemeID.String
		activeThemeID = &id
	}
	return Tenant{
		ID:            row.ID,
		Slug:          row.Slug,
		Name:          row.Name,
		Status:        row.Status,
		ActiveThemeID: activeThemeID,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
