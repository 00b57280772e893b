// Package auth issues and verifies access tokens, hashes passwords and
// carries the authenticated identity of a request.
package auth

import "context"

// Identity is the authentication state of a single request. The zero value
// is anonymous. It is immutable once constructed.
type Identity struct {
	userID        int64
	authenticated bool
}

func Anonymous() Identity {
	return Identity{}
}

func NewIdentity(userID int64) Identity {
	return Identity{userID: userID, authenticated: true}
}

// UserID returns the authenticated user's id; ok is false for anonymous identities.
func (i Identity) UserID() (int64, bool) {
	return i.userID, i.authenticated
}

func (i Identity) Authenticated() bool {
	return i.authenticated
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored in ctx, or an anonymous one.
func IdentityFromContext(ctx context.Context) Identity {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok {
		return Anonymous()
	}
	return id
}
