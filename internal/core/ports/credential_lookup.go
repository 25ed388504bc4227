package ports

import (
	"context"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// CredentialLookup is the single routine through which callers confirm that
// an account still exists and fetch its password hash for verification.
// Services never query account stores directly for authorization checks.
type CredentialLookup interface {
	AdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// Resolve branches on the role and returns the live principal behind the
	// given email, or ErrUnauthorized when the role is unknown or the
	// account no longer exists.
	Resolve(ctx context.Context, role domain.Role, email string) (*domain.Principal, error)
}
