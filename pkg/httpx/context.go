package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID      ctxKey = "user_id"
	CtxKeyUserEmail   ctxKey = "user_email"
	CtxKeyDisplayName ctxKey = "display_name"
	CtxKeyRole        ctxKey = "role"
)

// UserIDFromContext returns the verified user ID attached by the session
// middleware, or "" for anonymous requests.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// RoleFromContext returns the role name attached by role-gating middleware,
// or "" when the route did not require one.
func RoleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
