// Package refreshtokens persists the opaque refresh tokens that back a
// client session.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/server/models"
)

type Repository interface {
	// Create stores token for userID and returns its expiry.
	Create(ctx context.Context, userID string, token string, validity time.Duration) (time.Time, error)

	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete returns common.ErrorNotFound when no row was removed, so a
	// token consumed by a concurrent rotation is not used twice.
	Delete(ctx context.Context, token string) error

	// DeleteForUser revokes every session of the user.
	DeleteForUser(ctx context.Context, userID string) error
}
