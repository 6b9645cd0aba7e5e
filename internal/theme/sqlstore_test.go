package theme_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	dbgen "github.com/tmarchal/vitrine/internal/db/generated"
	"github.com/tmarchal/vitrine/internal/models"
	"github.com/tmarchal/vitrine/internal/testutil"
	"github.com/tmarchal/vitrine/internal/theme"
)

func newSQLStore(t *testing.T) (*theme.SQLStore, *dbgen.Queries) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return theme.NewSQLStore(database.Queries), database.Queries
}

func createTenant(t *testing.T, queries *dbgen.Queries, slug string) dbgen.Tenant {
	t.Helper()
	tenant, err := queries.CreateTenant(context.Background(), dbgen.CreateTenantParams{
		ID:     uuid.New().String(),
		Slug:   slug,
		Name:   slug,
		Status: models.TenantStatusActive,
	})
	require.NoError(t, err)
	return tenant
}

func TestSQLStoreThemeLookups(t *testing.T) {
	store, _ := newSQLStore(t)
	ctx := context.Background()

	// Seeded default theme is reachable through the store contract.
	fallback, err := store.DefaultTheme(ctx)
	require.NoError(t, err)
	require.True(t, fallback.IsDefault)
	require.NoError(t, theme.ValidateConfig(fallback.Config))

	byID, err := store.ThemeByID(ctx, fallback.ID)
	require.NoError(t, err)
	require.Equal(t, fallback.Slug, byID.Slug)

	_, err = store.ThemeByID(ctx, uuid.New().String())
	require.ErrorIs(t, err, theme.ErrThemeNotFound)

	themes, err := store.ListThemes(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, themes)

	active, err := store.ListActiveThemes(ctx)
	require.NoError(t, err)
	require.Len(t, active, len(themes))
}

func TestSQLStoreTenantLookups(t *testing.T) {
	store, queries := newSQLStore(t)
	ctx := context.Background()

	created := createTenant(t, queries, "sarainah")

	tenant, err := store.TenantByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "sarainah", tenant.Slug)
	require.Nil(t, tenant.ActiveThemeID)

	_, err = store.TenantByID(ctx, uuid.New().String())
	require.ErrorIs(t, err, theme.ErrTenantNotFound)
}

func TestSQLStoreSetActiveTheme(t *testing.T) {
	store, queries := newSQLStore(t)
	ctx := context.Background()

	tenant := createTenant(t, queries, "sarainah")
	fallback, err := store.DefaultTheme(ctx)
	require.NoError(t, err)

	require.NoError(t, store.SetActiveTheme(ctx, tenant.ID, fallback.ID))

	reloaded, err := store.TenantByID(ctx, tenant.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ActiveThemeID)
	require.Equal(t, fallback.ID, *reloaded.ActiveThemeID)

	err = store.SetActiveTheme(ctx, uuid.New().String(), fallback.ID)
	require.ErrorIs(t, err, theme.ErrTenantNotFound)
}

func TestSQLStoreCustomizationRoundTrip(t *testing.T) {
	store, queries := newSQLStore(t)
	ctx := context.Background()

	tenant := createTenant(t, queries, "sarainah")
	fallback, err := store.DefaultTheme(ctx)
	require.NoError(t, err)

	_, found, err := store.Customization(ctx, tenant.ID, fallback.ID)
	require.NoError(t, err)
	require.False(t, found)

	partial := models.ThemeConfig{
		Colors: map[string]string{"primary": "#ABCDEF"},
	}
	saved, err := store.SaveCustomization(ctx, tenant.ID, fallback.ID, partial)
	require.NoError(t, err)
	require.Equal(t, "#ABCDEF", saved.Config.Colors["primary"])

	loaded, found, err := store.Customization(ctx, tenant.ID, fallback.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "#ABCDEF", loaded.Config.Colors["primary"])
	// Partial shape survives storage.
	require.Nil(t, loaded.Config.Spacing)

	// Saving again for the same (tenant, theme) replaces, not duplicates.
	partial.Colors["primary"] = "#123456"
	_, err = store.SaveCustomization(ctx, tenant.ID, fallback.ID, partial)
	require.NoError(t, err)

	loaded, found, err = store.Customization(ctx, tenant.ID, fallback.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "#123456", loaded.Config.Colors["primary"])
}

func TestResolverAgainstSQLStore(t *testing.T) {
	store, queries := newSQLStore(t)
	ctx := context.Background()

	tenant := createTenant(t, queries, "sarainah")
	resolver := theme.NewResolver(store, theme.WithCacheTTL(0))

	// No assignment resolves to the platform default.
	cfg, err := resolver.Resolve(ctx, tenant.ID, "")
	require.NoError(t, err)
	require.NoError(t, theme.ValidateConfig(cfg))

	fallback, err := store.DefaultTheme(ctx)
	require.NoError(t, err)

	name, err := theme.Activate(ctx, store, tenant.ID, fallback.ID)
	require.NoError(t, err)
	require.Equal(t, fallback.Name, name)

	_, err = store.SaveCustomization(ctx, tenant.ID, fallback.ID, models.ThemeConfig{
		Colors: map[string]string{"primary": "#ABCDEF"},
	})
	require.NoError(t, err)

	cfg, err = resolver.Resolve(ctx, tenant.ID, "")
	require.NoError(t, err)
	require.Equal(t, "#ABCDEF", cfg.Colors["primary"])
}
