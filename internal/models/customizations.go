// internal/models/customizations.go
package models

import (
	"fmt"
	"time"

	dbgen "github.com/tmarchal/vitrine/internal/db/generated"
)

// Customization is a tenant's partial override of a Theme's configuration.
// Config carries only the deltas; absent sections inherit from the base
// theme at resolution time. One row per (tenant, theme), upserted.
type Customization struct {
	ID        string      `json:"id"`
	TenantID  string      `json:"tenantId"`
	ThemeID   string      `json:"themeId"`
	Config    ThemeConfig `json:"config"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func CustomizationFromDB(row dbgen.ThemeCustomization) (Customization, error) {
	cfg, err := ParseThemeConfig([]byte(row.Config))
	if err != nil {
		return Customization{}, fmt.Errorf("customization %s: %w", row.ID, err)
	}
	return Customization{
		ID:        row.ID,
		TenantID:  row.TenantID,
		ThemeID:   row.ThemeID,
		Config:    cfg,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
