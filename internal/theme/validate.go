// internal/theme/validate.go
package theme

import (
	"fmt"
	"strings"

	"github.com/tmarchal/vitrine/internal/models"
)

// ValidationError lists the fields that failed the structural check, so the
// authoring UI can point at what is missing instead of a bare boolean.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("theme config invalid: missing %s", strings.Join(e.Fields, ", "))
}

// ValidateConfig performs the structural completeness check a configuration
// must pass before it is trusted: the colors, typography, and spacing
// sections must be present, and colors must bind the four required roles.
//
// This is a shallow check. Typography sub-scales are not inspected, so a
// typography section carrying only an empty fontFamily scale passes; callers
// must not assume validity beyond what is checked here.
func ValidateConfig(cfg models.ThemeConfig) error {
	var missing []string

	if cfg.Colors == nil {
		missing = append(missing, "colors")
	} else {
		for _, role := range models.RequiredColorRoles {
			if cfg.Colors[role] == "" {
				missing = append(missing, "colors."+role)
			}
		}
	}

	if cfg.Typography.IsZero() {
		missing = append(missing, "typography")
	}
	if cfg.Spacing == nil {
		missing = append(missing, "spacing")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
