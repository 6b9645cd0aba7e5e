package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmarchal/vitrine/internal/models"
)

func surfaceVariable(t *testing.T, s *StylesheetSurface, name string) string {
	t.Helper()
	value, ok := s.Variable(name)
	require.True(t, ok, "variable %s not set", name)
	return value
}

func TestApplyProjectsFlatNamespace(t *testing.T) {
	surface := NewStylesheetSurface()
	applier := NewApplier(surface)

	require.NoError(t, applier.Apply(completeConfig()))

	require.Equal(t, "#53131C", surfaceVariable(t, surface, "color-primary"))
	require.Equal(t, "Inter, sans-serif", surfaceVariable(t, surface, "font-primary"))
	require.Equal(t, "1.125rem", surfaceVariable(t, surface, "font-size-lg"))
	require.Equal(t, "700", surfaceVariable(t, surface, "font-weight-bold"))
	require.Equal(t, "1.5", surfaceVariable(t, surface, "line-height-normal"))
	require.Equal(t, "0.05em", surfaceVariable(t, surface, "letter-spacing-wide"))
	require.Equal(t, "1rem", surfaceVariable(t, surface, "spacing-md"))
	require.Equal(t, "0 4px 6px rgba(0,0,0,0.1)", surfaceVariable(t, surface, "shadow-md"))
	require.Equal(t, "0.25rem", surfaceVariable(t, surface, "radius-sm"))
	require.Equal(t, "1px", surfaceVariable(t, surface, "border-width-thin"))
	require.Equal(t, "1280px", surfaceVariable(t, surface, "layout-maxWidth"))
	require.Equal(t, "rounded", surfaceVariable(t, surface, "variant-button"))
}

func TestApplyInvalidConfigLeavesSurfaceUntouched(t *testing.T) {
	surface := NewStylesheetSurface()
	applier := NewApplier(surface)
	require.NoError(t, applier.Apply(completeConfig()))

	broken := completeConfig()
	broken.Colors = nil

	err := applier.Apply(broken)
	require.Error(t, err)

	// Last-known-good projection survives.
	require.Equal(t, "#53131C", surfaceVariable(t, surface, "color-primary"))
	require.Contains(t, surface.Stylesheet(), ".hero { padding: 4rem; }")
}

func TestApplyClearsStaleVariables(t *testing.T) {
	surface := NewStylesheetSurface()
	applier := NewApplier(surface)

	first := completeConfig()
	first.Colors["accent"] = "#C8A24B"
	require.NoError(t, applier.Apply(first))
	require.Equal(t, "#C8A24B", surfaceVariable(t, surface, "color-accent"))

	second := completeConfig()
	delete(second.Colors, "accent")
	require.NoError(t, applier.Apply(second))

	_, ok := surface.Variable("color-accent")
	require.False(t, ok, "stale variable leaked through re-apply")
}

func TestApplyIsIdempotent(t *testing.T) {
	surface := NewStylesheetSurface()
	applier := NewApplier(surface)

	require.NoError(t, applier.Apply(completeConfig()))
	before := surface.Stylesheet()
	require.NoError(t, applier.Apply(completeConfig()))
	require.Equal(t, before, surface.Stylesheet())
}

func TestApplyReplacesStyleBlockWholesale(t *testing.T) {
	surface := NewStylesheetSurface()
	applier := NewApplier(surface)

	require.NoError(t, applier.Apply(completeConfig()))
	require.Contains(t, surface.Stylesheet(), ".hero { padding: 4rem; }")

	next := completeConfig()
	next.CustomStyle = ".hero { padding: 1rem; }"
	require.NoError(t, applier.Apply(next))

	sheet := surface.Stylesheet()
	require.Contains(t, sheet, ".hero { padding: 1rem; }")
	require.NotContains(t, sheet, "4rem")

	// Empty block removes the previous one.
	next.CustomStyle = ""
	require.NoError(t, applier.Apply(next))
	require.NotContains(t, surface.Stylesheet(), ".hero")
}

func TestApplyScriptGatedByAllowScript(t *testing.T) {
	surface := NewStylesheetSurface()
	applier := NewApplier(surface)

	require.NoError(t, applier.Apply(completeConfig()))
	require.Empty(t, surface.ScriptBlock(), "script injected without opt-in")

	applier.AllowScript = true
	require.NoError(t, applier.Apply(completeConfig()))
	require.Equal(t, "console.log('base');", surface.ScriptBlock())

	// Turning the gate back off clears the injected block.
	applier.AllowScript = false
	require.NoError(t, applier.Apply(completeConfig()))
	require.Empty(t, surface.ScriptBlock())
}

func TestStylesheetRendersSortedCustomProperties(t *testing.T) {
	surface := NewStylesheetSurface()
	applier := NewApplier(surface)
	require.NoError(t, applier.Apply(completeConfig()))

	sheet := surface.Stylesheet()
	require.True(t, strings.HasPrefix(sheet, ":root {\n"))
	require.Contains(t, sheet, "  --color-primary: #53131C;\n")

	// Deterministic ordering.
	idxBackground := strings.Index(sheet, "--color-background")
	idxPrimary := strings.Index(sheet, "--color-primary")
	require.Greater(t, idxPrimary, idxBackground)
}

func TestVariablesEmptyConfig(t *testing.T) {
	require.Empty(t, Variables(models.ThemeConfig{}))
}
