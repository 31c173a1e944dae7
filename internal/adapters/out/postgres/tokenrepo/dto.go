package tokenrepo

import (
	"time"

	"github.com/google/uuid"
)

// AccessTokenDTO represents an access token row. Tokens are issued out of
// band (registration is a separate surface); this service only resolves and
// expires them.
type AccessTokenDTO struct {
	Token         string    `gorm:"primaryKey"`
	PrincipalKind string    `gorm:"column:principal_kind"`
	PrincipalID   uuid.UUID `gorm:"type:uuid;column:principal_id"`
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

// TableName overrides the default table name.
func (AccessTokenDTO) TableName() string {
	return "access_tokens"
}
