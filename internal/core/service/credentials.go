package service

import (
	"context"

	"github.com/teuslab/publishing-api/internal/core/domain"
	"github.com/teuslab/publishing-api/internal/core/ports"
)

// CredentialStore is the shared credential lookup. Both principal kinds are
// resolved here and nowhere else, so "does this account still exist" and
// "does this password match" always run against the same queries.
type CredentialStore struct {
	admins ports.AdminRepository
	users  ports.UserRepository
}

func NewCredentialStore(admins ports.AdminRepository, users ports.UserRepository) *CredentialStore {
	return &CredentialStore{admins: admins, users: users}
}

// AdminByEmail fetches an admin by exact email match, password hash included.
func (s *CredentialStore) AdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return s.admins.FindByEmail(ctx, email)
}

// UserByEmail fetches a user by exact email match, password hash included.
func (s *CredentialStore) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// Resolve returns the live principal behind role+email. The branch is
// exhaustive over the Role enum; anything else is ErrUnauthorized.
func (s *CredentialStore) Resolve(ctx context.Context, role domain.Role, email string) (*domain.Principal, error) {
	switch role {
	case domain.RoleAdmin:
		admin, err := s.AdminByEmail(ctx, email)
		if err != nil {
			return nil, domain.ErrUnauthorized
		}
		return &domain.Principal{
			AccountID: admin.ID,
			Email:     admin.Email,
			Username:  admin.Username,
			Role:      domain.RoleAdmin,
		}, nil
	case domain.RoleUser:
		user, err := s.UserByEmail(ctx, email)
		if err != nil {
			return nil, domain.ErrUnauthorized
		}
		return &domain.Principal{
			AccountID: user.ID,
			Email:     user.Email,
			Username:  user.Username,
			Role:      domain.RoleUser,
		}, nil
	}
	return nil, domain.ErrUnauthorized
}
