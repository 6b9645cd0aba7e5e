// internal/theme/errors.go
package theme

import "errors"

var (
	// ErrThemeNotFound means a referenced theme id does not resolve to a
	// stored theme. Resolution degrades to the platform default; activation
	// surfaces it to the caller.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrTenantNotFound means the tenant id has no stored account.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrThemeNotAvailable means the theme exists but is not available for
	// selection platform-wide.
	ErrThemeNotAvailable = errors.New("theme not available")

	// ErrNoDefaultTheme means the platform default theme is missing. This is
	// a fatal configuration error, not a recoverable condition.
	ErrNoDefaultTheme = errors.New("platform default theme not found")

	// ErrSuperseded is returned by Resolve when a newer resolution for the
	// same scope started before this one finished. The caller must discard
	// the result instead of applying it out of order.
	ErrSuperseded = errors.New("resolution superseded")
)
