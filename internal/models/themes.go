// internal/models/themes.go
package models

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	dbgen "github.com/tmarchal/vitrine/internal/db/generated"
)

const maxThemeNameLength = 100

var themeSlugRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
var themeNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ()-]*$`)

// Theme is a named, shareable, complete style configuration available
// platform-wide. Tenants never mutate a Theme directly; their changes live in
// a Customization keyed on (tenant, theme).
type Theme struct {
	ID           string      `json:"id"`
	Slug         string      `json:"slug"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	IsActive     bool        `json:"isActive"`
	IsDefault    bool        `json:"isDefault"`
	PreviewImage string      `json:"previewImage,omitempty"`
	Version      string      `json:"version"`
	Config       ThemeConfig `json:"config"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// ThemeSummary is the listing/confirmation projection of a Theme, without
// the full configuration payload.
type ThemeSummary struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"isActive"`
	IsDefault    bool   `json:"isDefault"`
	PreviewImage string `json:"previewImage,omitempty"`
	Version      string `json:"version"`
}

func (t Theme) Summary() ThemeSummary {
	return ThemeSummary{
		ID:           t.ID,
		Slug:         t.Slug,
		Name:         t.Name,
		Description:  t.Description,
		IsActive:     t.IsActive,
		IsDefault:    t.IsDefault,
		PreviewImage: t.PreviewImage,
		Version:      t.Version,
	}
}

func (t Theme) Validate() error {
	slug := strings.TrimSpace(t.Slug)
	if slug == "" {
		return fmt.Errorf("slug is required")
	}
	if !themeSlugRegex.MatchString(slug) {
		return fmt.Errorf("slug may only contain lowercase letters, numbers, and hyphens")
	}

	name := strings.TrimSpace(t.Name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if name != t.Name {
		return fmt.Errorf("name must not have leading or trailing whitespace")
	}
	if len(name) > maxThemeNameLength {
		return fmt.Errorf("name must be %d characters or fewer", maxThemeNameLength)
	}
	if !themeNameRegex.MatchString(name) {
		return fmt.Errorf("name may only contain letters, numbers, spaces, hyphens, and parentheses")
	}

	return nil
}

// ThemeFromDB converts a stored row, decoding the embedded configuration.
func ThemeFromDB(row dbgen.Theme) (Theme, error) {
	cfg, err := ParseThemeConfig([]byte(row.Config))
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", row.ID, err)
	}
	return Theme{
		ID:           row.ID,
		Slug:         row.Slug,
		Name:         row.Name,
		Description:  row.Description.String,
		IsActive:     row.IsActive,
		IsDefault:    row.IsDefault,
		PreviewImage: row.PreviewImage.String,
		Version:      row.Version,
		Config:       cfg,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func ThemesFromDB(rows []dbgen.Theme) ([]Theme, error) {
	results := make([]Theme, 0, len(rows))
	for _, row := range rows {
		theme, err := ThemeFromDB(row)
		if err != nil {
			return nil, err
		}
		results = append(results, theme)
	}
	return results, nil
}

func ToNullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
