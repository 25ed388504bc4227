package ports

import (
	"context"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	// Verify checks signature and expiry, then re-resolves the principal
	// against the account stores. A token alone is never proof that the
	// account still exists.
	Verify(ctx context.Context, token string) (*domain.Principal, error)
}
