// Package session resolves which owner partition a request acts on. It has
// no mutation authority; stores consult it indirectly through the request
// middleware.
package session

import (
	"github.com/maheshrc27/postdeck/pkg/utils"
)

// DefaultOwner is the shared demo partition. Unauthenticated traffic is
// bound to it explicitly so nothing below this package branches on a
// missing identity.
const DefaultOwner = "default"

type Resolver struct {
	secretKey string
}

func NewResolver(secretKey string) *Resolver {
	return &Resolver{secretKey: secretKey}
}

// Resolve maps a session token to an owner id. An absent, expired or
// otherwise invalid token binds the caller to the default partition; that is
// the dashboard's logged-out demo mode, not an error.
func (r *Resolver) Resolve(tokenString string) string {
	if tokenString == "" {
		return DefaultOwner
	}

	claims, err := utils.ValidateToken(r.secretKey, tokenString)
	if err != nil || claims.UserID == "" {
		return DefaultOwner
	}

	return claims.UserID
}
