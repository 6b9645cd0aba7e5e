// internal/theme/merge.go
package theme

import (
	"github.com/tmarchal/vitrine/internal/models"
)

// sectionMerge is one row of the merge strategy table. The merge depth is
// irregular on purpose: typography and borders merge their nested scales,
// everything else merges entry-by-entry one level deep, and the raw override
// blocks replace wholesale. Keeping the table explicit keeps that depth a
// stated contract instead of an accident of a generic deep-merge.
type sectionMerge struct {
	section string
	apply   func(dst *models.ThemeConfig, override models.ThemeConfig)
}

var mergeStrategy = []sectionMerge{
	{"colors", func(dst *models.ThemeConfig, o models.ThemeConfig) {
		dst.Colors = mergeScale(dst.Colors, o.Colors)
	}},
	{"typography", func(dst *models.ThemeConfig, o models.ThemeConfig) {
		dst.Typography.FontFamily = mergeScale(dst.Typography.FontFamily, o.Typography.FontFamily)
		dst.Typography.FontSize = mergeScale(dst.Typography.FontSize, o.Typography.FontSize)
		dst.Typography.FontWeight = mergeScale(dst.Typography.FontWeight, o.Typography.FontWeight)
		dst.Typography.LineHeight = mergeScale(dst.Typography.LineHeight, o.Typography.LineHeight)
		dst.Typography.LetterSpacing = mergeScale(dst.Typography.LetterSpacing, o.Typography.LetterSpacing)
	}},
	{"spacing", func(dst *models.ThemeConfig, o models.ThemeConfig) {
		dst.Spacing = mergeScale(dst.Spacing, o.Spacing)
	}},
	{"shadows", func(dst *models.ThemeConfig, o models.ThemeConfig) {
		dst.Shadows = mergeScale(dst.Shadows, o.Shadows)
	}},
	{"borders", func(dst *models.ThemeConfig, o models.ThemeConfig) {
		dst.Borders.Radius = mergeScale(dst.Borders.Radius, o.Borders.Radius)
		dst.Borders.Width = mergeScale(dst.Borders.Width, o.Borders.Width)
	}},
	{"layout", func(dst *models.ThemeConfig, o models.ThemeConfig) {
		dst.Layout = mergeScale(dst.Layout, o.Layout)
	}},
	{"componentVariants", func(dst *models.ThemeConfig, o models.ThemeConfig) {
		dst.ComponentVariants = mergeScale(dst.ComponentVariants, o.ComponentVariants)
	}},
	{"custom", func(dst *models.ThemeConfig, o models.ThemeConfig) {
		// Replaced wholesale, never concatenated: appending injected code
		// across merges would duplicate it on the surface.
		if o.CustomStyle != "" {
			dst.CustomStyle = o.CustomStyle
		}
		if o.CustomScript != "" {
			dst.CustomScript = o.CustomScript
		}
	}},
	{"version", func(dst *models.ThemeConfig, o models.ThemeConfig) {
		if o.Version != "" {
			dst.Version = o.Version
		}
	}},
}

// Merge layers a partial override onto a complete base configuration. Every
// base entry the override does not name survives unchanged; an entry the
// override names is replaced wholesale at that key. The result never aliases
// either input. Chained merges apply in precedence order: platform default,
// then published theme, then tenant customization.
func Merge(base, override models.ThemeConfig) models.ThemeConfig {
	out := base.Clone()
	for _, row := range mergeStrategy {
		row.apply(&out, override)
	}
	return out
}

// mergeScale merges one named scale entry-by-entry. A nil override scale
// leaves the base scale untouched; supplied entries replace base entries at
// the same key.
func mergeScale[V any](base, override map[string]V) map[string]V {
	if override == nil {
		return base
	}
	out := make(map[string]V, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
