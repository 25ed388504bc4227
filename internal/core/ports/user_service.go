package ports

import (
	"context"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

type UserService interface {
	// Create registers a new user account. Signup is open.
	Create(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Update(ctx context.Context, caller domain.Principal, username, email, password string) error
	// Delete removes the caller's own account.
	Delete(ctx context.Context, caller domain.Principal) error
}
