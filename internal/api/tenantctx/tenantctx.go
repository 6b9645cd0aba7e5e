// internal/api/tenantctx/tenantctx.go
package tenantctx

import "context"

// Tenant is the storefront account resolved from the request host, carried
// through the request context.
type Tenant struct {
	ID   string
	Slug string
	Name string
}

type tenantContextKey struct{}

func ContextWithTenant(ctx context.Context, tenant *Tenant) context.Context {
	return context.WithValue(ctx, tenantContextKey{}, tenant)
}

// TenantFromContext returns the tenant stored in ctx, or nil when the
// request was not tenant-scoped.
func TenantFromContext(ctx context.Context) *Tenant {
	if ctx == nil {
		return nil
	}
	tenant, ok := ctx.Value(tenantContextKey{}).(*Tenant)
	if !ok {
		return nil
	}
	return tenant
}
