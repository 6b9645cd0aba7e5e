// internal/theme/sqlstore.go
package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	dbgen "github.com/tmarchal/vitrine/internal/db/generated"
	"github.com/tmarchal/vitrine/internal/models"
)

// SQLStore adapts the generated query layer to the engine's Store contract,
// mapping sql.ErrNoRows onto the package sentinels.
type SQLStore struct {
	queries *dbgen.Queries
}

var _ AssignmentStore = (*SQLStore)(nil)

func NewSQLStore(queries *dbgen.Queries) *SQLStore {
	return &SQLStore{queries: queries}
}

func (s *SQLStore) ThemeByID(ctx context.Context, id string) (models.Theme, error) {
	row, err := s.queries.GetTheme(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Theme{}, ErrThemeNotFound
		}
		return models.Theme{}, fmt.Errorf("get theme: %w", err)
	}
	return models.ThemeFromDB(row)
}

func (s *SQLStore) DefaultTheme(ctx context.Context) (models.Theme, error) {
	row, err := s.queries.GetDefaultTheme(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Theme{}, ErrThemeNotFound
		}
		return models.Theme{}, fmt.Errorf("get default theme: %w", err)
	}
	return models.ThemeFromDB(row)
}

func (s *SQLStore) TenantByID(ctx context.Context, id string) (models.Tenant, error) {
	row, err := s.queries.GetTenant(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tenant{}, ErrTenantNotFound
		}
		return models.Tenant{}, fmt.Errorf("get tenant: %w", err)
	}
	return models.TenantFromDB(row), nil
}

func (s *SQLStore) Customization(ctx context.Context, tenantID, themeID string) (models.Customization, bool, error) {
	row, err := s.queries.GetCustomization(ctx, dbgen.GetCustomizationParams{
		TenantID: tenantID,
		ThemeID:  themeID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customization{}, false, nil
		}
		return models.Customization{}, false, fmt.Errorf("get customization: %w", err)
	}
	customization, err := models.CustomizationFromDB(row)
	if err != nil {
		return models.Customization{}, false, err
	}
	return customization, true, nil
}

func (s *SQLStore) SetActiveTheme(ctx context.Context, tenantID, themeID string) error {
	updated, err := s.queries.UpdateTenantActiveTheme(ctx, dbgen.UpdateTenantActiveThemeParams{
		ActiveThemeID: models.ToNullString(themeID),
		ID:            tenantID,
	})
	if err != nil {
		return fmt.Errorf("update tenant active theme: %w", err)
	}
	if updated == 0 {
		return ErrTenantNotFound
	}
	return nil
}

// ListThemes returns every stored theme in creation order.
func (s *SQLStore) ListThemes(ctx context.Context) ([]models.Theme, error) {
	rows, err := s.queries.ListThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	return models.ThemesFromDB(rows)
}

// ListActiveThemes returns the themes available for selection platform-wide.
func (s *SQLStore) ListActiveThemes(ctx context.Context) ([]models.Theme, error) {
	rows, err := s.queries.ListActiveThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active themes: %w", err)
	}
	return models.ThemesFromDB(rows)
}

// SaveCustomization upserts the tenant's partial for a theme and returns the
// stored row. Used by the customization handler, not by resolution.
func (s *SQLStore) SaveCustomization(ctx context.Context, tenantID, themeID string, cfg models.ThemeConfig) (models.Customization, error) {
	data, err := models.EncodeThemeConfig(cfg)
	if err != nil {
		return models.Customization{}, err
	}
	row, err := s.queries.UpsertCustomization(ctx, dbgen.UpsertCustomizationParams{
		ID:       uuid.New().String(),
		TenantID: tenantID,
		ThemeID:  themeID,
		Config:   string(data),
	})
	if err != nil {
		return models.Customization{}, fmt.Errorf("upsert customization: %w", err)
	}
	return models.CustomizationFromDB(row)
}
