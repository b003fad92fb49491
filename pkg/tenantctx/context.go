package tenantctx

import "context"

type keyType string

const (
	TenantIDKey keyType = "tenant_id"
)

// WithTenantID returns a context carrying the caller's tenant identifier.
func WithTenantID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, TenantIDKey, id)
}

func TenantID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(TenantIDKey).(string)
	return id, ok
}
