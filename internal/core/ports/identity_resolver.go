package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/auth"
)

// IdentityResolver maps a bearer token to the acting principal.
// Implementations return errs.ErrAuthFailed for unknown or expired tokens;
// they never distinguish the two cases to the caller.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string, now time.Time) (auth.Principal, error)
}
