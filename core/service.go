package core

import (
	"context"
	"fmt"
)

// antiEnumHash is a valid bcrypt hash that no account uses. When a login
// names an unknown username the authenticator still runs one bcrypt
// comparison against it, so the missing-user path costs the same as the
// wrong-password path.
const antiEnumHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// RepositoryAuthService implements AuthService over a UserRepository and a
// password Hasher.
type RepositoryAuthService struct {
	users  UserRepository
	hasher Hasher
}

func NewRepositoryAuthService(users UserRepository, hasher Hasher) *RepositoryAuthService {
	return &RepositoryAuthService{users: users, hasher: hasher}
}

// Register hashes the password and persists a new credential record.
// Uniqueness is decided by the store's constraint, not a pre-check, so two
// concurrent registrations of the same username cannot both succeed.
func (s *RepositoryAuthService) Register(ctx context.Context, username, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.users.Create(ctx, username, hash); err != nil {
		return err
	}
	return nil
}

// Authenticate verifies a username/password pair against the credential
// store. Unknown usernames and wrong passwords both return
// ErrInvalidCredentials; callers cannot tell the two apart.
func (s *RepositoryAuthService) Authenticate(ctx context.Context, username, password string) (Principal, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return Principal{}, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		_ = s.hasher.Verify(password, antiEnumHash)
		return Principal{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return Principal{}, ErrInvalidCredentials
	}
	return Principal{Username: u.Username}, nil
}
