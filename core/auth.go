package core

import (
	"context"
	"errors"
)

// Principal is the identity established for the duration of one request
// after successful token validation.
type Principal struct {
	Username string
}

var (
	// ErrInvalidCredentials is returned when username/password is wrong.
	// Unknown usernames and wrong passwords are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateUsername is returned when registering an already-taken username.
	ErrDuplicateUsername = errors.New("username already exists")
)

// AuthService defines registration and authentication behaviour.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (Principal, error)
}
