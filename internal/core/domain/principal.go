package domain

// Claims is the payload embedded in a signed access token.
type Claims struct {
	Email    string
	Username string
	Role     Role
}

// Principal is the authenticated identity attached to a request after the
// token has been verified and the account re-resolved against the store. It
// is never persisted.
type Principal struct {
	AccountID string
	Email     string
	Username  string
	Role      Role
}

// AuthFailureKind classifies why authentication was rejected.
type AuthFailureKind string

const (
	AuthMalformed        AuthFailureKind = "malformed"
	AuthInvalidSignature AuthFailureKind = "invalid_signature"
	AuthExpired          AuthFailureKind = "expired"
	AuthUnauthorized     AuthFailureKind = "unauthorized"
)

// AuthError is returned by token verification. Every kind maps to a 401; the
// kind only feeds logs and metrics, never the response body.
type AuthError struct {
	Kind AuthFailureKind
}

func (e *AuthError) Error() string {
	return "authentication failed: " + string(e.Kind)
}
