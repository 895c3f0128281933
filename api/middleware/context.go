package middleware

import "context"

type contextKey string

const (
	ctxUserID contextKey = "user_id"
	ctxEmail  contextKey = "email"
)

// ContextWithUser seeds the context with the authenticated identity. Exposed
// so handler tests can stand in for the Auth middleware.
func ContextWithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, ctxUserID, userID)
	return context.WithValue(ctx, ctxEmail, email)
}

// UserIDFromContext returns the authenticated user id seeded by Auth, or "".
func UserIDFromContext(ctx context.Context) string {
	if value, ok := ctx.Value(ctxUserID).(string); ok {
		return value
	}
	return ""
}

// EmailFromContext returns the authenticated user email seeded by Auth, or "".
func EmailFromContext(ctx context.Context) string {
	if value, ok := ctx.Value(ctxEmail).(string); ok {
		return value
	}
	return ""
}
