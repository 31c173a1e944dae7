package tokenrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/auth"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIdentityResolver implements ports.IdentityResolver against the
// access_tokens table.
type GormIdentityResolver struct {
	db *gorm.DB
}

// NewGormIdentityResolver creates a new GORM identity resolver.
func NewGormIdentityResolver(db *gorm.DB) *GormIdentityResolver {
	return &GormIdentityResolver{db: db}
}

// Resolve looks up the token and returns the principal it belongs to.
// Unknown and expired tokens produce the same AuthError; callers must not be
// able to tell whether a token ever existed.
func (r *GormIdentityResolver) Resolve(
	ctx context.Context, token string, now time.Time,
) (auth.Principal, error) {
	if token == "" {
		return auth.Principal{}, errs.NewAuthError("access token is required")
	}

	var dto AccessTokenDTO
	err := r.db.WithContext(ctx).First(&dto, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auth.Principal{}, errs.NewAuthError("invalid access token")
		}
		return auth.Principal{}, err
	}

	if !dto.ExpiresAt.After(now) {
		return auth.Principal{}, errs.NewAuthError("invalid access token")
	}

	id, err := kernel.UUIDFromBytes(dto.PrincipalID[:])
	if err != nil {
		return auth.Principal{}, err
	}

	principal := auth.Principal{
		Kind: auth.PrincipalKind(dto.PrincipalKind),
		ID:   id,
	}
	if err = principal.Validate(); err != nil {
		return auth.Principal{}, errs.NewAuthErrorWithCause("invalid access token", err)
	}
	return principal, nil
}

// DeleteExpired removes tokens whose expiry is at or before now. Returns the
// number of rows deleted. Used by the periodic sweep job.
func (r *GormIdentityResolver) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&AccessTokenDTO{})
	return result.RowsAffected, result.Error
}
