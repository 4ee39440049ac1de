package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/config"
)

// Service implements registration and login on top of a Repository and
// the auth primitives. It holds no mutable state of its own; every call
// is independent and safe for concurrent use.
type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewService wires a Service to its account store and resolved config.
// The signing secret is a startup invariant: an empty value is rejected
// here rather than on the first login.
func NewService(repo Repository, cfg *config.Config) (*Service, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: empty signing secret", common.ErrorConfiguration)
	}
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}, nil
}

// NormalizeUsername lowercases a username. Normalization happens at the
// service boundary, at write time; the store's unique index is the
// backstop for anything that slips past.
func NormalizeUsername(userName string) string {
	return strings.ToLower(userName)
}

// Register creates a new account for the normalized username. The
// plaintext password is hashed before anything is handed to the store
// and is never retained. A duplicate username fails with
// common.ErrorUsernameTaken and causes no store write.
func (s *Service) Register(ctx context.Context, userName, password string) (*User, error) {

	userName = NormalizeUsername(userName)

	exists, err := s.repo.Exists(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, common.ErrorUsernameTaken
	}

	hash, salt, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		UserName:     userName,
		PasswordHash: hash,
		PasswordSalt: salt,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		// The store may detect a concurrent duplicate that the Exists
		// check could not see.
		if errors.Is(err, common.ErrorUsernameTaken) {
			return nil, common.ErrorUsernameTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a signed bearer token for
// the account. An unknown username and a wrong password both fail with
// common.ErrorInvalidCredentials so the two cases cannot be told apart
// from outside. Login performs no store writes.
func (s *Service) Login(ctx context.Context, userName, password string) (string, error) {

	userName = NormalizeUsername(userName)

	user, err := s.repo.FindByUsername(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("error finding user: %w", err)
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash, user.PasswordSalt)
	if err != nil {
		// Corrupt stored material is a system fault, reported as such.
		return "", fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.UserName, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}
