package ports

import (
	"context"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Insert(ctx context.Context, username, email, password string) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns one page of users plus the unpaginated total count.
	List(ctx context.Context, emailFilter string, offset, limit int) ([]domain.User, int64, error)
	Update(ctx context.Context, id, username, email, passwordHash string) error
	// Delete removes a user by id. Zero affected rows map to ErrDeleteFailed.
	Delete(ctx context.Context, id string) error
}
