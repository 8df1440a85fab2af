package api

import (
	"context"

	"github.com/OpenStag/openstage-website/auth"
)

type keyType string

const identityKey keyType = "identity"

// ctxWithIdentity adds the authenticated identity to the context
func ctxWithIdentity(ctx context.Context, ident *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// identityFromCtx retrieves the authenticated identity, or nil when the
// request carried no valid session.
func identityFromCtx(ctx context.Context) *auth.Identity {
	if value := ctx.Value(identityKey); value != nil {
		if ident, ok := value.(*auth.Identity); ok {
			return ident
		}
	}
	return nil
}
