package ports

import (
	"context"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// AdminRepository defines persistence for admin accounts. Reads through this
// interface include the stored password hash; it is the handlers'
// responsibility never to serialize it.
type AdminRepository interface {
	// Insert stores a new admin. The password is plaintext here; the store
	// hashes it in its pre-insert hook. A taken email maps to ErrEmailInUse.
	Insert(ctx context.Context, username, email, password string) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	// List returns admins, optionally filtered by a case-insensitive
	// substring match on email.
	List(ctx context.Context, emailFilter string) ([]domain.Admin, error)
	// Update rewrites username, email and password hash by primary id.
	// Zero affected rows map to ErrUpdateFailed.
	Update(ctx context.Context, id, username, email, passwordHash string) error
}
