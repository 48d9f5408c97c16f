// Package utils holds small helpers shared by the client and the reference
// server: context keys, JSON responses, the resty client, JWT handling and
// UUID v7 generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey holds the authenticated user id on server requests.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under [UserIDCtxKey].
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext reports the user id stored by [WithUserID]. An empty
// or mistyped value counts as missing.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}
