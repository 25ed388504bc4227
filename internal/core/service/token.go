package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teuslab/publishing-api/internal/core/domain"
	"github.com/teuslab/publishing-api/internal/core/ports"
)

// The observed deployments keep tokens alive for five days.
const defaultTokenTTL = 120 * time.Hour

// TokenIssuer signs and verifies HS256 access tokens. Verification does not
// stop at signature and expiry: the principal is re-resolved through the
// credential lookup, so a token for a deleted account is rejected.
type TokenIssuer struct {
	secret      []byte
	ttl         time.Duration
	credentials ports.CredentialLookup
}

func NewTokenIssuer(secret string, ttl time.Duration, credentials ports.CredentialLookup) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, credentials: credentials}
}

// Issue signs the claims with a fixed expiry.
func (t *TokenIssuer) Issue(claims domain.Claims) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":    claims.Email,
		"username": claims.Username,
		"role":     string(claims.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(t.ttl).Unix(),
	})
	return tok.SignedString(t.secret)
}

// Verify checks signature and expiry, then resolves the live account behind
// the claims. All failures surface as *domain.AuthError.
func (t *TokenIssuer) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, &domain.AuthError{Kind: classifyTokenError(err)}
	}

	role, ok := domain.ParseRole(stringClaim(claims, "role"))
	if !ok {
		return nil, &domain.AuthError{Kind: domain.AuthUnauthorized}
	}

	principal, err := t.credentials.Resolve(ctx, role, stringClaim(claims, "email"))
	if err != nil {
		return nil, &domain.AuthError{Kind: domain.AuthUnauthorized}
	}
	return principal, nil
}

func classifyTokenError(err error) domain.AuthFailureKind {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.AuthExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.AuthInvalidSignature
	default:
		return domain.AuthMalformed
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
