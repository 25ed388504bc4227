package domain

import (
	"errors"
	"time"
)

// Role is the closed set of principal kinds the platform knows about.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole maps a raw claims value onto the closed Role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

var ErrAccountNotFound = errors.New("account not found")
var ErrEmailInUse = errors.New("email already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthorized = errors.New("not connected or not allowed")
var ErrInvalidUserID = errors.New("invalid user id")
var ErrInsertFailed = errors.New("could not insert record")
var ErrUpdateFailed = errors.New("could not update account")
var ErrDeleteFailed = errors.New("could not delete account")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// Admin is a back-office account. Admins own articles and manage users.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// User is a self-service reader account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
