package utils

import (
	"context"
)

type contextKey string

const ContextIdentityKey contextKey = "identity"

// Identity is the authenticated caller attached to the request context by
// the auth middleware. It is the sole source of truth for ownership checks
// downstream of token verification.
type Identity struct {
	ID    string
	Email string
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(ContextIdentityKey).(Identity)
	return identity, ok
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	identity, ok := GetIdentityFromContext(ctx)
	return identity.ID, ok
}
