package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/teuslab/publishing-api/internal/core/domain"
)

// stubTokenService verifies exactly one token string.
type stubTokenService struct {
	accepted  string
	principal domain.Principal
}

func (s *stubTokenService) Issue(domain.Claims) (string, error) {
	return s.accepted, nil
}

func (s *stubTokenService) Verify(_ context.Context, token string) (*domain.Principal, error) {
	if token != s.accepted {
		return nil, &domain.AuthError{Kind: domain.AuthInvalidSignature}
	}
	p := s.principal
	return &p, nil
}

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMissingHeader(t *testing.T) {
	tokens := &stubTokenService{accepted: "good-token"}
	c, _ := newAuthTestContext(t, "")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatal("handler must not run without a token")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	tokens := &stubTokenService{accepted: "good-token"}
	c, _ := newAuthTestContext(t, "Basic abc123")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatal("handler must not run with a non-bearer header")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	tokens := &stubTokenService{accepted: "good-token"}
	c, _ := newAuthTestContext(t, "Bearer forged-token")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatal("handler must not run with an invalid token")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthInjectsPrincipal(t *testing.T) {
	want := domain.Principal{AccountID: "id-1", Email: "root@example.com", Username: "root", Role: domain.RoleAdmin}
	tokens := &stubTokenService{accepted: "good-token", principal: want}
	c, _ := newAuthTestContext(t, "Bearer good-token")

	var got domain.Principal
	handler := Auth(tokens)(func(c echo.Context) error {
		got, _ = c.Get(PrincipalKey).(domain.Principal)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if got != want {
		t.Fatalf("expected principal %+v, got %+v", want, got)
	}
}

func TestAuthAcceptsLowercaseBearer(t *testing.T) {
	want := domain.Principal{AccountID: "id-1", Email: "root@example.com", Role: domain.RoleAdmin}
	tokens := &stubTokenService{accepted: "good-token", principal: want}
	c, _ := newAuthTestContext(t, "bearer good-token")

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !called {
		t.Fatal("handler was not invoked")
	}
}
