package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/teuslab/publishing-api/internal/api/middleware"
	"github.com/teuslab/publishing-api/internal/core/domain"
	"github.com/teuslab/publishing-api/internal/core/ports"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setPrincipal(c echo.Context, role domain.Role) domain.Principal {
	principal := domain.Principal{
		AccountID: "caller-id",
		Email:     "caller@example.com",
		Username:  "caller",
		Role:      role,
	}
	c.Set(middleware.PrincipalKey, principal)
	return principal
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != code {
		t.Fatalf("expected status %d, got %d (%v)", code, httpErr.Code, httpErr.Message)
	}
}

// --- Stub services recording the arguments they were called with ---

type stubAdminService struct {
	loginToken string
	loginErr   error
	createdID  string
	createErr  error
	updateErr  error
	deleteErr  error
	admins     []domain.Admin
	page       *ports.UserPage

	lastCaller   domain.Principal
	lastEmail    string
	lastPassword string
	lastUsername string
	lastFilter   string
	lastUserID   string
	lastPage     int
	lastPerPage  int
}

func (s *stubAdminService) Create(_ context.Context, caller domain.Principal, username, email, password string) (string, error) {
	s.lastCaller, s.lastUsername, s.lastEmail, s.lastPassword = caller, username, email, password
	return s.createdID, s.createErr
}

func (s *stubAdminService) Login(_ context.Context, email, password string) (string, error) {
	s.lastEmail, s.lastPassword = email, password
	return s.loginToken, s.loginErr
}

func (s *stubAdminService) Update(_ context.Context, caller domain.Principal, username, email, password string) error {
	s.lastCaller, s.lastUsername, s.lastEmail, s.lastPassword = caller, username, email, password
	return s.updateErr
}

func (s *stubAdminService) List(_ context.Context, caller domain.Principal, emailFilter string) ([]domain.Admin, error) {
	s.lastCaller, s.lastFilter = caller, emailFilter
	return s.admins, nil
}

func (s *stubAdminService) DeleteUser(_ context.Context, caller domain.Principal, userID string) error {
	s.lastCaller, s.lastUserID = caller, userID
	return s.deleteErr
}

func (s *stubAdminService) ListUsers(_ context.Context, caller domain.Principal, page, usersPerPage int, emailFilter string) (*ports.UserPage, error) {
	s.lastCaller, s.lastPage, s.lastPerPage, s.lastFilter = caller, page, usersPerPage, emailFilter
	return s.page, nil
}

type stubUserService struct {
	loginToken string
	loginErr   error
	createdID  string
	createErr  error
	updateErr  error
	deleteErr  error

	lastCaller   domain.Principal
	lastEmail    string
	lastPassword string
	lastUsername string
}

func (s *stubUserService) Create(_ context.Context, username, email, password string) (string, error) {
	s.lastUsername, s.lastEmail, s.lastPassword = username, email, password
	return s.createdID, s.createErr
}

func (s *stubUserService) Login(_ context.Context, email, password string) (string, error) {
	s.lastEmail, s.lastPassword = email, password
	return s.loginToken, s.loginErr
}

func (s *stubUserService) Update(_ context.Context, caller domain.Principal, username, email, password string) error {
	s.lastCaller, s.lastUsername, s.lastEmail, s.lastPassword = caller, username, email, password
	return s.updateErr
}

func (s *stubUserService) Delete(_ context.Context, caller domain.Principal) error {
	s.lastCaller = caller
	return s.deleteErr
}

type stubArticleService struct {
	article   *domain.Article
	articles  []domain.Article
	createErr error

	lastCaller domain.Principal
	lastTitle  string
}

func (s *stubArticleService) Create(_ context.Context, caller domain.Principal, title, body, imageURL string) (*domain.Article, error) {
	s.lastCaller, s.lastTitle = caller, title
	return s.article, s.createErr
}

func (s *stubArticleService) List(_ context.Context) ([]domain.Article, error) {
	return s.articles, nil
}
