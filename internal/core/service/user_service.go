package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/teuslab/publishing-api/internal/core/domain"
	"github.com/teuslab/publishing-api/internal/core/ports"
)

// UserService implements the self-service user flows. The shape mirrors
// AdminService; the two kinds share the credential lookup but never each
// other's stores.
type UserService struct {
	users       ports.UserRepository
	credentials ports.CredentialLookup
	tokens      ports.TokenService
	throttle    loginThrottle
}

func NewUserService(
	users ports.UserRepository,
	credentials ports.CredentialLookup,
	tokens ports.TokenService,
	limiter LoginLimiter,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		users:       users,
		credentials: credentials,
		tokens:      tokens,
		throttle:    loginThrottle{limiter: limiter, log: log},
	}
}

// requireUser confirms the caller is still a legitimate, existing user.
func (s *UserService) requireUser(ctx context.Context, caller domain.Principal) (*domain.User, error) {
	if caller.Role != domain.RoleUser {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.credentials.UserByEmail(ctx, caller.Email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// Create registers a new user. Signup is open, no caller gate.
func (s *UserService) Create(ctx context.Context, username, email, password string) (string, error) {
	if _, err := s.credentials.UserByEmail(ctx, email); err == nil {
		return "", domain.ErrEmailInUse
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return "", err
	}

	return s.users.Insert(ctx, username, email, password)
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if err := s.throttle.check(ctx, email); err != nil {
		return "", err
	}

	user, err := s.credentials.UserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !CheckPassword(password, user.PasswordHash) {
		s.throttle.fail(ctx, email)
		return "", domain.ErrInvalidCredentials
	}
	s.throttle.reset(ctx, email)

	return s.tokens.Issue(domain.Claims{
		Email:    user.Email,
		Username: user.Username,
		Role:     domain.RoleUser,
	})
}

func (s *UserService) Update(ctx context.Context, caller domain.Principal, username, email, password string) error {
	me, err := s.requireUser(ctx, caller)
	if err != nil {
		return err
	}

	other, err := s.credentials.UserByEmail(ctx, email)
	switch {
	case err == nil && other.ID != me.ID:
		return domain.ErrEmailInUse
	case err != nil && !errors.Is(err, domain.ErrAccountNotFound):
		return err
	}

	hash := me.PasswordHash
	if password != "" {
		if hash, err = HashPassword(password); err != nil {
			return err
		}
	}

	return s.users.Update(ctx, me.ID, username, email, hash)
}

// Delete removes the caller's own account.
func (s *UserService) Delete(ctx context.Context, caller domain.Principal) error {
	me, err := s.requireUser(ctx, caller)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, me.ID)
}
