package ports

import (
	"context"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// UserPage is one page of a user listing.
type UserPage struct {
	Users        []domain.User `json:"users"`
	Page         int           `json:"page"`
	UsersPerPage int           `json:"usersPerPage"`
	CountUsers   int64         `json:"countUsers"`
}

type AdminService interface {
	// Create registers a new admin account. The caller must be a live admin.
	Create(ctx context.Context, caller domain.Principal, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	// Update rewrites the caller's own account.
	Update(ctx context.Context, caller domain.Principal, username, email, password string) error
	List(ctx context.Context, caller domain.Principal, emailFilter string) ([]domain.Admin, error)
	DeleteUser(ctx context.Context, caller domain.Principal, userID string) error
	ListUsers(ctx context.Context, caller domain.Principal, page, usersPerPage int, emailFilter string) (*UserPage, error)
}
