// assets/assets.go
package assets

import "embed"

// ThemesFS carries the bundled platform theme definitions seeded at startup.
//
//go:embed themes/*.json
var ThemesFS embed.FS

const ThemesDir = "themes"
