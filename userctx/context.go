package userctx

import "context"

// Context key type
type contextKey string

const uidKey contextKey = "uid"

// SetUID adds the authenticated shop UID to the request context
func SetUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, uidKey, uid)
}

// GetUID retrieves the authenticated shop UID from the request context
func GetUID(ctx context.Context) string {
	if uid, ok := ctx.Value(uidKey).(string); ok {
		return uid
	}
	return ""
}
