// internal/theme/apply.go
package theme

import (
	"sort"
	"strconv"

	"github.com/tmarchal/vitrine/internal/models"
)

// Surface is the live presentation namespace the applier writes to. It is an
// owned, injected collaborator rather than an ambient singleton so tests can
// instantiate isolated surfaces. Single writer: only the Applier mutates it,
// last write wins.
type Surface interface {
	SetVariable(name, value string)
	ClearVariables()
	// SetStyleBlock and SetScriptBlock replace the previously injected block
	// wholesale; an empty string removes it.
	SetStyleBlock(css string)
	SetScriptBlock(js string)
}

// Applier projects a resolved configuration onto a surface as a flat
// namespace of named style variables plus the raw override blocks.
//
// The injected blocks are a trust boundary: the applier performs no
// sanitization, so custom style and script must only ever be authored by
// trusted administrators. Script injection is additionally gated by
// AllowScript.
type Applier struct {
	surface Surface

	// AllowScript enables customScript injection. Off by default; the
	// platform operator opts in via configuration.
	AllowScript bool
}

func NewApplier(surface Surface) *Applier {
	return &Applier{surface: surface}
}

// Apply validates the configuration and, only if it passes, replaces the
// surface's entire projection. On validation failure the surface keeps the
// last-known-good projection and the error is returned. Applying the same
// configuration twice yields the same surface state: the namespace is
// cleared first so no variable from a previous configuration leaks through.
func (a *Applier) Apply(cfg models.ThemeConfig) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	a.surface.ClearVariables()
	for _, v := range Variables(cfg) {
		a.surface.SetVariable(v.Name, v.Value)
	}

	a.surface.SetStyleBlock(cfg.CustomStyle)
	if a.AllowScript {
		a.surface.SetScriptBlock(cfg.CustomScript)
	} else {
		a.surface.SetScriptBlock("")
	}
	return nil
}

// Variable is one projected leaf of the configuration.
type Variable struct {
	Name  string
	Value string
}

// Variables flattens every leaf of the configuration into the stable
// section-prefixed naming the presentation layer reads (color-primary,
// font-size-lg, radius-sm, ...). Component variant selectors are passed
// through under variant-<component>; unknown keys are the consumer's problem
// by design.
func Variables(cfg models.ThemeConfig) []Variable {
	var out []Variable
	appendScale := func(prefix string, m map[string]string) {
		for _, k := range sortedKeys(m) {
			out = append(out, Variable{Name: prefix + "-" + k, Value: m[k]})
		}
	}

	appendScale("color", cfg.Colors)
	appendScale("font", cfg.Typography.FontFamily)
	appendScale("font-size", cfg.Typography.FontSize)
	for _, k := range sortedKeys(cfg.Typography.FontWeight) {
		out = append(out, Variable{Name: "font-weight-" + k, Value: strconv.Itoa(cfg.Typography.FontWeight[k])})
	}
	for _, k := range sortedKeys(cfg.Typography.LineHeight) {
		out = append(out, Variable{Name: "line-height-" + k, Value: strconv.FormatFloat(cfg.Typography.LineHeight[k], 'f', -1, 64)})
	}
	appendScale("letter-spacing", cfg.Typography.LetterSpacing)
	appendScale("spacing", cfg.Spacing)
	appendScale("shadow", cfg.Shadows)
	appendScale("radius", cfg.Borders.Radius)
	appendScale("border-width", cfg.Borders.Width)
	appendScale("layout", cfg.Layout)
	appendScale("variant", cfg.ComponentVariants)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
