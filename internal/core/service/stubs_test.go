package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// --- In-memory repositories mirroring the store contracts, including the
// pre-insert password hashing performed by the real hooks. ---

type stubAdminRepo struct {
	byEmail map[string]*domain.Admin
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{byEmail: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) seed(username, email, password string) *domain.Admin {
	hash, _ := HashPassword(password)
	now := time.Now()
	a := &domain.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.byEmail[email] = a
	return a
}

func (r *stubAdminRepo) Insert(_ context.Context, username, email, password string) (string, error) {
	if _, exists := r.byEmail[email]; exists {
		return "", domain.ErrEmailInUse
	}
	return r.seed(username, email, password).ID, nil
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAdminRepo) List(_ context.Context, emailFilter string) ([]domain.Admin, error) {
	out := make([]domain.Admin, 0, len(r.byEmail))
	for _, a := range r.byEmail {
		if emailFilter == "" || strings.Contains(strings.ToLower(a.Email), strings.ToLower(emailFilter)) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAdminRepo) Update(_ context.Context, id, username, email, passwordHash string) error {
	for _, a := range r.byEmail {
		if a.ID == id {
			delete(r.byEmail, a.Email)
			a.Username, a.Email, a.PasswordHash = username, email, passwordHash
			r.byEmail[email] = a
			return nil
		}
	}
	return domain.ErrUpdateFailed
}

type stubUserRepo struct {
	users   []*domain.User
	deleted []string // ids passed to Delete, hit or miss
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func (r *stubUserRepo) seed(username, email, password string) *domain.User {
	hash, _ := HashPassword(password)
	now := time.Now()
	u := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users = append(r.users, u)
	return u
}

func (r *stubUserRepo) find(email string) *domain.User {
	for _, u := range r.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (r *stubUserRepo) Insert(_ context.Context, username, email, password string) (string, error) {
	if r.find(email) != nil {
		return "", domain.ErrEmailInUse
	}
	return r.seed(username, email, password).ID, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u := r.find(email)
	if u == nil {
		return nil, domain.ErrAccountNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context, emailFilter string, offset, limit int) ([]domain.User, int64, error) {
	var matched []domain.User
	for _, u := range r.users {
		if emailFilter == "" || strings.Contains(strings.ToLower(u.Email), strings.ToLower(emailFilter)) {
			matched = append(matched, *u)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *stubUserRepo) Update(_ context.Context, id, username, email, passwordHash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Username, u.Email, u.PasswordHash = username, email, passwordHash
			return nil
		}
	}
	return domain.ErrUpdateFailed
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrDeleteFailed
}

type stubArticleRepo struct {
	articles []*domain.Article
}

func (r *stubArticleRepo) Insert(_ context.Context, article *domain.Article) (*domain.Article, error) {
	clone := *article
	clone.ID = uuid.NewString()
	clone.CreatedAt = time.Now()
	clone.UpdatedAt = clone.CreatedAt
	r.articles = append(r.articles, &clone)
	out := clone
	return &out, nil
}

func (r *stubArticleRepo) List(_ context.Context) ([]domain.Article, error) {
	out := make([]domain.Article, 0, len(r.articles))
	for i := len(r.articles) - 1; i >= 0; i-- {
		out = append(out, *r.articles[i])
	}
	return out, nil
}

type stubLimiter struct {
	failures map[string]int
	max      int
}

func newStubLimiter(max int) *stubLimiter {
	return &stubLimiter{failures: make(map[string]int), max: max}
}

func (l *stubLimiter) Allow(_ context.Context, email string) (bool, error) {
	return l.failures[email] < l.max, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, email string) error {
	l.failures[email]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, email string) error {
	delete(l.failures, email)
	return nil
}

// --- Shared wiring helpers ---

const testSecret = "secret"

func newTestStack() (*stubAdminRepo, *stubUserRepo, *CredentialStore, *TokenIssuer) {
	admins := newStubAdminRepo()
	users := newStubUserRepo()
	credentials := NewCredentialStore(admins, users)
	tokens := NewTokenIssuer(testSecret, time.Hour, credentials)
	return admins, users, credentials, tokens
}

func newTestAdminService(admins *stubAdminRepo, users *stubUserRepo, credentials *CredentialStore, tokens *TokenIssuer) *AdminService {
	return NewAdminService(admins, users, credentials, tokens, nil, zerolog.Nop())
}

func newTestUserService(users *stubUserRepo, credentials *CredentialStore, tokens *TokenIssuer) *UserService {
	return NewUserService(users, credentials, tokens, nil, zerolog.Nop())
}

func adminPrincipal(a *domain.Admin) domain.Principal {
	return domain.Principal{AccountID: a.ID, Email: a.Email, Username: a.Username, Role: domain.RoleAdmin}
}

func userPrincipal(u *domain.User) domain.Principal {
	return domain.Principal{AccountID: u.ID, Email: u.Email, Username: u.Username, Role: domain.RoleUser}
}
