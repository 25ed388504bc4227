package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/teuslab/publishing-api/internal/core/domain"
	"github.com/teuslab/publishing-api/internal/core/ports"
)

const (
	defaultUsersPerPage = 20
	maxUsersPerPage     = 100
)

// LoginLimiter abstracts the failed-login throttle (Redis).
type LoginLimiter interface {
	// Allow reports whether another attempt for this email may proceed.
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AdminService implements the admin account flows.
type AdminService struct {
	admins      ports.AdminRepository
	users       ports.UserRepository
	credentials ports.CredentialLookup
	tokens      ports.TokenService
	throttle    loginThrottle
}

func NewAdminService(
	admins ports.AdminRepository,
	users ports.UserRepository,
	credentials ports.CredentialLookup,
	tokens ports.TokenService,
	limiter LoginLimiter,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		admins:      admins,
		users:       users,
		credentials: credentials,
		tokens:      tokens,
		throttle:    loginThrottle{limiter: limiter, log: log},
	}
}

// requireAdmin confirms the caller is still a legitimate, existing admin.
func (s *AdminService) requireAdmin(ctx context.Context, caller domain.Principal) (*domain.Admin, error) {
	if caller.Role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorized
	}
	admin, err := s.credentials.AdminByEmail(ctx, caller.Email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return admin, nil
}

func (s *AdminService) Create(ctx context.Context, caller domain.Principal, username, email, password string) (string, error) {
	if _, err := s.requireAdmin(ctx, caller); err != nil {
		return "", err
	}

	// Pre-check keeps the common case cheap; the unique constraint on email
	// still closes the race between check and insert.
	if _, err := s.credentials.AdminByEmail(ctx, email); err == nil {
		return "", domain.ErrEmailInUse
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return "", err
	}

	return s.admins.Insert(ctx, username, email, password)
}

func (s *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	if err := s.throttle.check(ctx, email); err != nil {
		return "", err
	}

	admin, err := s.credentials.AdminByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !CheckPassword(password, admin.PasswordHash) {
		s.throttle.fail(ctx, email)
		return "", domain.ErrInvalidCredentials
	}
	s.throttle.reset(ctx, email)

	return s.tokens.Issue(domain.Claims{
		Email:    admin.Email,
		Username: admin.Username,
		Role:     domain.RoleAdmin,
	})
}

func (s *AdminService) Update(ctx context.Context, caller domain.Principal, username, email, password string) error {
	me, err := s.requireAdmin(ctx, caller)
	if err != nil {
		return err
	}

	other, err := s.credentials.AdminByEmail(ctx, email)
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

	return s.admins.Update(ctx, me.ID, username, email, hash)
}

func (s *AdminService) List(ctx context.Context, caller domain.Principal, emailFilter string) ([]domain.Admin, error) {
	if _, err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}
	return s.admins.List(ctx, emailFilter)
}

func (s *AdminService) DeleteUser(ctx context.Context, caller domain.Principal, userID string) error {
	if _, err := s.requireAdmin(ctx, caller); err != nil {
		return err
	}
	// Validate before touching the store; a malformed id must never reach it.
	if _, err := uuid.Parse(userID); err != nil {
		return domain.ErrInvalidUserID
	}
	return s.users.Delete(ctx, userID)
}

func (s *AdminService) ListUsers(ctx context.Context, caller domain.Principal, page, usersPerPage int, emailFilter string) (*ports.UserPage, error) {
	if _, err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if usersPerPage < 1 {
		usersPerPage = defaultUsersPerPage
	}
	if usersPerPage > maxUsersPerPage {
		usersPerPage = maxUsersPerPage
	}

	users, total, err := s.users.List(ctx, emailFilter, (page-1)*usersPerPage, usersPerPage)
	if err != nil {
		return nil, err
	}
	return &ports.UserPage{
		Users:        users,
		Page:         page,
		UsersPerPage: usersPerPage,
		CountUsers:   total,
	}, nil
}
