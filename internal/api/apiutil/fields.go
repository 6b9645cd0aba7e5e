// internal/api/apiutil/fields.go
package apiutil

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/tmarchal/vitrine/internal/api/tenantctx"
)

// RequireTenant fetches the tenant resolved by the middleware, writing a
// 400 when the request reached a tenant-scoped handler without one.
func RequireTenant(w http.ResponseWriter, r *http.Request) (*tenantctx.Tenant, bool) {
	tenant := tenantctx.TenantFromContext(r.Context())
	if tenant == nil {
		WriteError(w, http.StatusBadRequest, "Tenant not specified")
		return nil, false
	}
	return tenant, true
}

// ParseID validates a uuid-shaped identifier from a path or query value.
func ParseID(raw string, field string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", FieldError{Field: field, Reason: "is required"}
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", FieldError{Field: field, Reason: "must be a valid id"}
	}
	return raw, nil
}

// ParseOptionalID is ParseID for values that may be absent.
func ParseOptionalID(raw string, field string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return ParseID(raw, field)
}

func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// RequireField returns a consistent error for missing request fields.
func RequireField(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
