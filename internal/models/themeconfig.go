// internal/models/themeconfig.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Required color roles every complete configuration must carry. Additional
// roles (accent, muted, success, ...) are allowed and passed through.
var RequiredColorRoles = []string{"primary", "secondary", "background", "foreground"}

// ThemeConfig is the canonical shape of a theme: design tokens, layout
// dimensions, component variant selectors, and raw override blocks. It is
// pure data. A nil map means the section is absent, which is how partial
// configurations (customizations) are represented; an empty map is an
// explicit empty section and survives JSON round-trips as such.
type ThemeConfig struct {
	Version           string            `json:"version,omitempty"`
	Colors            map[string]string `json:"colors,omitempty"`
	Typography        Typography        `json:"typography,omitzero"`
	Spacing           map[string]string `json:"spacing,omitempty"`
	Shadows           map[string]string `json:"shadows,omitempty"`
	Borders           Borders           `json:"borders,omitzero"`
	Layout            map[string]string `json:"layout,omitempty"`
	ComponentVariants map[string]string `json:"componentVariants,omitempty"`
	CustomStyle       string            `json:"customStyle,omitempty"`
	CustomScript      string            `json:"customScript,omitempty"`
}

// Typography groups the font token scales. FontFamily is expected to bind at
// least primary, secondary, and heading; the engine does not enforce that
// (see theme.ValidateConfig for what is actually checked).
type Typography struct {
	FontFamily    map[string]string  `json:"fontFamily,omitempty"`
	FontSize      map[string]string  `json:"fontSize,omitempty"`
	FontWeight    map[string]int     `json:"fontWeight,omitempty"`
	LineHeight    map[string]float64 `json:"lineHeight,omitempty"`
	LetterSpacing map[string]string  `json:"letterSpacing,omitempty"`
}

// Borders nests the radius scale and the optional width scale.
type Borders struct {
	Radius map[string]string `json:"radius,omitempty"`
	Width  map[string]string `json:"width,omitempty"`
}

// IsZero reports whether no typography scale is present. Used by omitzero so
// absent typography is dropped from serialized partials.
func (t Typography) IsZero() bool {
	return t.FontFamily == nil && t.FontSize == nil && t.FontWeight == nil &&
		t.LineHeight == nil && t.LetterSpacing == nil
}

// IsZero reports whether neither border scale is present.
func (b Borders) IsZero() bool {
	return b.Radius == nil && b.Width == nil
}

// ParseThemeConfig decodes a stored or submitted configuration document.
// Unknown fields are rejected so a typo in an authored customization fails
// loudly instead of being silently dropped.
func ParseThemeConfig(data []byte) (ThemeConfig, error) {
	var cfg ThemeConfig
	if len(data) == 0 {
		return cfg, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return ThemeConfig{}, fmt.Errorf("parse theme config: %w", err)
	}
	return cfg, nil
}

// EncodeThemeConfig serializes a configuration for storage. Partials encode
// only the sections they carry.
func EncodeThemeConfig(cfg ThemeConfig) ([]byte, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode theme config: %w", err)
	}
	return data, nil
}

// Clone returns a deep copy. Merge results must never alias the base maps.
func (c ThemeConfig) Clone() ThemeConfig {
	out := c
	out.Colors = cloneStringMap(c.Colors)
	out.Spacing = cloneStringMap(c.Spacing)
	out.Shadows = cloneStringMap(c.Shadows)
	out.Layout = cloneStringMap(c.Layout)
	out.ComponentVariants = cloneStringMap(c.ComponentVariants)
	out.Typography = Typography{
		FontFamily:    cloneStringMap(c.Typography.FontFamily),
		FontSize:      cloneStringMap(c.Typography.FontSize),
		FontWeight:    cloneMap(c.Typography.FontWeight),
		LineHeight:    cloneMap(c.Typography.LineHeight),
		LetterSpacing: cloneStringMap(c.Typography.LetterSpacing),
	}
	out.Borders = Borders{
		Radius: cloneStringMap(c.Borders.Radius),
		Width:  cloneStringMap(c.Borders.Width),
	}
	return out
}

func cloneStringMap(m map[string]string) map[string]string {
	return cloneMap(m)
}

func cloneMap[V any](m map[string]V) map[string]V {
	if m == nil {
		return nil
	}
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
