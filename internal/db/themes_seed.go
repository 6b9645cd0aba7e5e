// internal/db/themes_seed.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/google/uuid"

	"github.com/tmarchal/vitrine/assets"
	dbgen "github.com/tmarchal/vitrine/internal/db/generated"
	"github.com/tmarchal/vitrine/internal/models"
	"github.com/tmarchal/vitrine/internal/theme"
)

// SeedTheme is one bundled platform theme definition.
type SeedTheme struct {
	Slug         string             `json:"slug"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Default      bool               `json:"default"`
	PreviewImage string             `json:"previewImage"`
	Version      string             `json:"version"`
	Config       models.ThemeConfig `json:"config"`
}

// ParseSeedThemes reads the embedded theme definitions in filename order.
// Exactly one definition must be marked default, and every config must pass
// the structural check; anything else is a packaging error caught at
// startup rather than at first resolution.
func ParseSeedThemes() ([]SeedTheme, error) {
	entries, err := fs.ReadDir(assets.ThemesFS, assets.ThemesDir)
	if err != nil {
		return nil, fmt.Errorf("read embedded themes dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	seeds := make([]SeedTheme, 0, len(entries))
	defaultSlug := ""
	for _, entry := range entries {
		data, err := fs.ReadFile(assets.ThemesFS, path.Join(assets.ThemesDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read embedded theme %s: %w", entry.Name(), err)
		}

		var seed SeedTheme
		if err := json.Unmarshal(data, &seed); err != nil {
			return nil, fmt.Errorf("parse embedded theme %s: %w", entry.Name(), err)
		}

		entity := models.Theme{Slug: seed.Slug, Name: seed.Name}
		if err := entity.Validate(); err != nil {
			return nil, fmt.Errorf("invalid theme %s: %w", entry.Name(), err)
		}
		if err := theme.ValidateConfig(seed.Config); err != nil {
			return nil, fmt.Errorf("invalid theme %s: %w", entry.Name(), err)
		}

		if seed.Default {
			if defaultSlug != "" {
				return nil, fmt.Errorf("multiple default themes: %q and %q", defaultSlug, seed.Slug)
			}
			defaultSlug = seed.Slug
		}
		seeds = append(seeds, seed)
	}

	if defaultSlug == "" {
		return nil, fmt.Errorf("no default theme among %d seed themes", len(seeds))
	}
	return seeds, nil
}

// seedSystemThemes upserts the bundled themes by slug so redeploys pick up
// definition changes without duplicating rows. Tenant customizations refer
// to theme ids, which upserting by slug preserves.
func seedSystemThemes(ctx context.Context, queries *dbgen.Queries) error {
	seeds, err := ParseSeedThemes()
	if err != nil {
		return err
	}

	for _, seed := range seeds {
		configJSON, err := models.EncodeThemeConfig(seed.Config)
		if err != nil {
			return fmt.Errorf("theme %q: %w", seed.Slug, err)
		}

		_, err = queries.GetThemeBySlug(ctx, seed.Slug)
		switch {
		case err == nil:
			_, err = queries.UpdateThemeBySlug(ctx, dbgen.UpdateThemeBySlugParams{
				Name:         seed.Name,
				Description:  models.ToNullString(seed.Description),
				IsActive:     true,
				IsDefault:    seed.Default,
				PreviewImage: models.ToNullString(seed.PreviewImage),
				Version:      seed.Version,
				Config:       string(configJSON),
				Slug:         seed.Slug,
			})
			if err != nil {
				return fmt.Errorf("update theme %q: %w", seed.Slug, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			_, err = queries.CreateTheme(ctx, dbgen.CreateThemeParams{
				ID:           uuid.New().String(),
				Slug:         seed.Slug,
				Name:         seed.Name,
				Description:  models.ToNullString(seed.Description),
				IsActive:     true,
				IsDefault:    seed.Default,
				PreviewImage: models.ToNullString(seed.PreviewImage),
				Version:      seed.Version,
				Config:       string(configJSON),
			})
			if err != nil {
				return fmt.Errorf("create theme %q: %w", seed.Slug, err)
			}
		default:
			return fmt.Errorf("look up theme %q: %w", seed.Slug, err)
		}
	}
	return nil
}
